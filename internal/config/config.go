package config

import (
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	Port        string
	DBPath      string
	DatasetPath string
	JWTSecret   string
	ResolverURL string

	// RNGSeed seeds new engine sessions when nonzero; zero falls back
	// to time-based seeding
	RNGSeed int64
}

// Load reads configuration from the environment with defaults
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/fingerprints.db"
	}

	datasetPath := os.Getenv("DATASET_PATH")
	if datasetPath == "" {
		datasetPath = "./data/locations.json"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	resolverURL := os.Getenv("RESOLVER_URL")

	var seed int64
	if s := os.Getenv("RNG_SEED"); s != "" {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil {
			seed = v
		}
	}

	return &Config{
		Port:        port,
		DBPath:      dbPath,
		DatasetPath: datasetPath,
		JWTSecret:   jwtSecret,
		ResolverURL: resolverURL,
		RNGSeed:     seed,
	}
}
