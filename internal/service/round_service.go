package service

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jengzang/geopick-backend-go/internal/engine"
	"github.com/jengzang/geopick-backend-go/internal/models"
	"github.com/jengzang/geopick-backend-go/internal/repository"
	"github.com/jengzang/geopick-backend-go/internal/resolver"
	"github.com/jengzang/geopick-backend-go/internal/spatial"
)

// ErrSessionNotFound is returned for unknown or expired session ids
var ErrSessionNotFound = errors.New("session not found")

// ErrModeEmpty is returned when the curated dataset has no records for
// the requested mode
var ErrModeEmpty = errors.New("no curated records for mode")

// session pairs one engine with the mutex that enforces its single-writer
// contract: round N must be recorded before round N+1 is requested
type session struct {
	mu  sync.Mutex
	eng *engine.Engine
}

// RoundService owns engine sessions and wires them to the imagery
// resolver and the fingerprint store
type RoundService struct {
	mu       sync.RWMutex
	sessions map[string]*session

	dataset map[models.Mode][]models.LocationRecord
	res     resolver.Resolver
	repo    *repository.FingerprintRepository
	rngSeed int64
}

// NewRoundService creates a new round service. repo may be nil when
// fingerprint persistence is disabled; rngSeed zero means time-based.
func NewRoundService(dataset map[models.Mode][]models.LocationRecord, res resolver.Resolver, repo *repository.FingerprintRepository, rngSeed int64) *RoundService {
	return &RoundService{
		sessions: make(map[string]*session),
		dataset:  dataset,
		res:      res,
		repo:     repo,
		rngSeed:  rngSeed,
	}
}

// CreateSession builds a fresh engine for one game session. Construction
// replaces reset: stale windows or bag state can never leak in.
func (s *RoundService) CreateSession(mode models.Mode) (string, error) {
	records, ok := s.dataset[mode]
	if !ok || len(records) == 0 {
		return "", ErrModeEmpty
	}

	var fps []models.Fingerprint
	if s.repo != nil {
		loaded, err := s.repo.LoadRecent(engine.HistoryCap)
		if err != nil {
			log.Printf("fingerprint load failed, starting with empty history: %v", err)
		} else {
			fps = loaded
		}
	}

	seed := s.rngSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	eng := engine.New(records, mode, engine.Options{
		RNG:          rand.New(rand.NewSource(seed)),
		Resolver:     s.res,
		Fingerprints: fps,
	})

	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = &session{eng: eng}
	s.mu.Unlock()
	return id, nil
}

// CloseSession drops a session's engine
func (s *RoundService) CloseSession(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *RoundService) get(id string) (*session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// SelectStatic draws one curated location for the session. A nil record
// with nil error means the static pool is exhausted and the caller should
// try a dynamic mint.
func (s *RoundService) SelectStatic(id, preferred string) (*models.EnrichedLocation, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.eng.SelectStatic(preferred), nil
}

// MintDynamic mints a new location for the province and persists its
// fingerprint
func (s *RoundService) MintDynamic(ctx context.Context, id, province string) (models.MintResult, error) {
	sess, err := s.get(id)
	if err != nil {
		return models.MintResult{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	result := sess.eng.Mint(ctx, province, sess.eng.LastProvince())
	if result.Package != nil && s.repo != nil {
		hash := spatial.GridHash(result.Package.Primary.Lat, result.Package.Primary.Lng)
		fp := models.Fingerprint{
			ImageryID:    result.Package.Primary.ImageryID,
			LocationHash: hash,
			Province:     province,
			ClusterID:    spatial.ClusterID(province, hash),
			CreatedAt:    time.Now(),
		}
		if err := s.repo.SaveAndTrim(fp, engine.HistoryCap); err != nil {
			log.Printf("fingerprint save failed: %v", err)
		}
	}
	return result, nil
}

// RecordDynamicSelection reports a used dynamic pick back into the
// session's anti-repeat state
func (s *RoundService) RecordDynamicSelection(id string, rec *models.LocationRecord) error {
	sess, err := s.get(id)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.eng.RecordDynamicSelection(rec)
	return nil
}

// EnrichedLocations returns the session's enriched dataset
func (s *RoundService) EnrichedLocations(id string) ([]models.EnrichedLocation, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return sess.eng.EnrichedLocations(), nil
}

// EligibleProvinces returns the provinces with selectable candidates
func (s *RoundService) EligibleProvinces(id string) ([]string, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return sess.eng.EligibleProvinceList(), nil
}

// AntiRepeatState returns the session's anti-repeat diagnostics
func (s *RoundService) AntiRepeatState(id string) (engine.AntiRepeatState, error) {
	sess, err := s.get(id)
	if err != nil {
		return engine.AntiRepeatState{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.eng.AntiRepeatState(), nil
}

// MintMetrics returns the session's minting counters
func (s *RoundService) MintMetrics(id string) (models.MintMetrics, error) {
	sess, err := s.get(id)
	if err != nil {
		return models.MintMetrics{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.eng.MintMetrics(), nil
}

// Simulate runs n draws against a snapshot of the session state
func (s *RoundService) Simulate(id string, n int) (engine.SimulationReport, error) {
	sess, err := s.get(id)
	if err != nil {
		return engine.SimulationReport{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.eng.Simulate(n), nil
}
