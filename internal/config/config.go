package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Port      string
	MongoURI  string
	MongoDB   string
	CORSAllow []string
}

func Load() Config {
	port := getenv("APP_PORT", "5000")
	uri := os.Getenv("MONGO_URI")
	if strings.TrimSpace(uri) == "" {
		host := getenv("DB_HOST", "localhost")
		portDB := getenv("DB_PORT", "27017")
		uri = fmt.Sprintf("mongodb://%s:%s", host, portDB)
	}
	name := getenv("DB_NAME", "customerdb")
	var cors []string
	if s := os.Getenv("CORS_ALLOW_ORIGINS"); s != "" {
		for _, p := range strings.Split(s, ",") {
			if v := strings.TrimSpace(p); v != "" {
				cors = append(cors, v)
			}
		}
	}
	return Config{Port: port, MongoURI: uri, MongoDB: name, CORSAllow: cors}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
