package models

// SeedEntry is one approximate sampling zone inside a province's known
// footprint: a disk the minter draws candidate coordinates from
type SeedEntry struct {
	CenterLat float64 `json:"center_lat"`
	CenterLng float64 `json:"center_lng"`
	RadiusKm  float64 `json:"radius_km"`
	District  string  `json:"district,omitempty"`
}

// ProvinceSeed groups a province's sampling zones together with how many
// curated records produced them (a recognizability proxy for difficulty
// estimation)
type ProvinceSeed struct {
	Province            string      `json:"province"`
	Entries             []SeedEntry `json:"entries"`
	TotalStaticPackages int         `json:"total_static_packages"`
}
