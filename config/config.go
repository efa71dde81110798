package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port      string
	Timezone  string
	DataDir   string
	UsersFile string
	StaticDir string
	CenterLat float64
	CenterLon float64
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getFloat := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
		return def
	}
	cfg := AppConfig{
		Port:      get("PORT", "8080"),
		Timezone:  get("TZ", "Asia/Jakarta"),
		DataDir:   get("DATA_DIR", "data"),
		UsersFile: get("USERS_FILE", "users.csv"),
		StaticDir: get("STATIC_DIR", "static"),
		CenterLat: getFloat("CENTER_LAT", -3.316),
		CenterLon: getFloat("CENTER_LON", 114.602),
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
