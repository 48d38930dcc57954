package engine

import (
	"fmt"
	"math/rand"

	"github.com/jengzang/geopick-backend-go/internal/models"
	"github.com/jengzang/geopick-backend-go/internal/regions"
)

var testProvinces = []string{
	"İstanbul", "Ankara", "İzmir", "Bursa", "Antalya", "Konya",
	"Adana", "Trabzon", "Gaziantep", "Kayseri", "Samsun", "Eskişehir",
}

// testRecord builds one curated record with a unique panorama id
func testRecord(id, place string, lat, lng float64, quality int, banned bool) models.LocationRecord {
	rec := models.LocationRecord{
		ID:        id,
		Mode:      models.ModeUrban,
		Quality:   quality,
		Banned:    banned,
		PlaceName: place,
		Primary: models.ImageryRef{
			ImageryID: "pano-" + id,
			Lat:       lat,
			Lng:       lng,
		},
	}
	for i := 0; i < 3; i++ {
		rec.Branches[i] = models.ImageryRef{
			ImageryID: "pano-" + id,
			Lat:       lat,
			Lng:       lng,
			Heading:   float64(i+1) * 90,
		}
	}
	return rec
}

// testDataset spreads perProvince records around each province center,
// every record in its own grid cell with its own imagery id
func testDataset(provinces []string, perProvince int) []models.LocationRecord {
	var records []models.LocationRecord
	for _, prov := range provinces {
		p, ok := regions.Lookup(prov)
		if !ok {
			panic("unknown test province: " + prov)
		}
		for j := 0; j < perProvince; j++ {
			id := fmt.Sprintf("%s-%d", prov, j)
			records = append(records, testRecord(
				id,
				fmt.Sprintf("Merkez %d, %s", j, prov),
				p.CenterLat+float64(j)*0.01,
				p.CenterLng+float64(j)*0.005,
				1+j%5,
				false,
			))
		}
	}
	return records
}

func testEngine(records []models.LocationRecord, seed int64) *Engine {
	return New(records, models.ModeUrban, Options{
		RNG: rand.New(rand.NewSource(seed)),
	})
}
