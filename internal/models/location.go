package models

// Mode is the closed set of gameplay modes. Each mode carries its own
// selection configuration instead of branching on raw strings.
type Mode string

const (
	ModeUrban Mode = "urban"
	ModeRural Mode = "rural"
)

// Difficulty classifies how recognizable a location is, assigned by
// percentile rank of the composite easy score.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ImageryRef points at a single 360° panorama view
type ImageryRef struct {
	ImageryID string  `json:"imagery_id"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Heading   float64 `json:"heading"` // degrees, 0 = north
}

// LocationRecord is one curated (or minted) playable location
type LocationRecord struct {
	ID   string `json:"id"`
	Mode Mode   `json:"mode"`

	// Curation metadata
	ProvinceHint string   `json:"province_hint,omitempty"`
	RoadType     string   `json:"road_type,omitempty"`
	HintTags     []string `json:"hint_tags,omitempty"`
	Quality      int      `json:"quality"` // 1-5
	Banned       bool     `json:"banned"`

	// Imagery: one primary view plus three directional branches
	Primary  ImageryRef    `json:"primary"`
	Branches [3]ImageryRef `json:"branches"`

	// "District, Province" or just "Province"
	PlaceName string `json:"place_name"`

	// True for records minted at runtime rather than curated
	Dynamic bool `json:"dynamic,omitempty"`

	// Heuristic difficulty for minted records; curated records get
	// theirs from enrichment percentiles instead
	EstimatedDifficulty Difficulty `json:"estimated_difficulty,omitempty"`
}

// EnrichedLocation wraps a LocationRecord with the derived fields the
// selector operates on
type EnrichedLocation struct {
	Record LocationRecord `json:"record"`

	Province   string     `json:"province"`
	Difficulty Difficulty `json:"difficulty"`
	Banned     bool       `json:"banned"`

	// Grid cell at 3 decimal degrees (~111 m) and its province-scoped cluster
	LocationHash string `json:"location_hash"`
	ClusterID    string `json:"cluster_id"`
	ClusterSize  int    `json:"cluster_size"`

	// Records sharing the primary imagery id
	ImageryGroupSize int `json:"imagery_group_size"`

	// Composite recognizability score, 0-100
	EasyScore float64 `json:"easy_score"`
}
