package repository

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jengzang/geopick-backend-go/internal/database"
	"github.com/jengzang/geopick-backend-go/internal/models"
)

func testRepo(t *testing.T) *FingerprintRepository {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewFingerprintRepository(db)
}

func testFp(i int) models.Fingerprint {
	return models.Fingerprint{
		ImageryID:    fmt.Sprintf("pano-%d", i),
		LocationHash: fmt.Sprintf("hash-%d", i),
		Province:     "Ankara",
		ClusterID:    fmt.Sprintf("Ankara__hash-%d", i),
		CreatedAt:    time.Unix(1700000000+int64(i), 0),
	}
}

func TestSaveAndLoadRecent(t *testing.T) {
	repo := testRepo(t)

	for i := 0; i < 5; i++ {
		if err := repo.Save(testFp(i)); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	fps, err := repo.LoadRecent(3)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(fps) != 3 {
		t.Fatalf("loaded %d fingerprints, want 3", len(fps))
	}
	// Newest three, oldest first
	for i, fp := range fps {
		want := fmt.Sprintf("pano-%d", i+2)
		if fp.ImageryID != want {
			t.Errorf("fingerprint %d imagery = %q, want %q", i, fp.ImageryID, want)
		}
	}
	if !fps[0].CreatedAt.Equal(time.Unix(1700000002, 0)) {
		t.Errorf("created_at round trip lost: %v", fps[0].CreatedAt)
	}
}

func TestSaveAndTrimKeepsCap(t *testing.T) {
	repo := testRepo(t)
	const keep = 5

	for i := 0; i < keep+3; i++ {
		if err := repo.SaveAndTrim(testFp(i), keep); err != nil {
			t.Fatalf("save and trim %d: %v", i, err)
		}
		fps, err := repo.LoadRecent(100)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		want := i + 1
		if want > keep {
			want = keep
		}
		if len(fps) != want {
			t.Fatalf("after insert %d: %d fingerprints, want %d", i, len(fps), want)
		}
	}

	// The newest entries survive eviction
	fps, err := repo.LoadRecent(100)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if fps[0].ImageryID != "pano-3" || fps[len(fps)-1].ImageryID != "pano-7" {
		t.Errorf("kept range %q..%q, want pano-3..pano-7", fps[0].ImageryID, fps[len(fps)-1].ImageryID)
	}
}

func TestClear(t *testing.T) {
	repo := testRepo(t)
	if err := repo.Save(testFp(1)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}

	fps, err := repo.LoadRecent(10)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(fps) != 0 {
		t.Errorf("after clear: %d fingerprints, want 0", len(fps))
	}
}
