// SPDX-License-Identifier: EPL-2.0

// Package config reads runtime settings from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Store kinds accepted in MURMUR_STORE.
const (
	StoreBadger = "badger"
	StoreGData  = "gdata"
	StoreMemory = "memory"
)

// Config holds everything the command line needs to build an App.
type Config struct {
	AssetsDir  string // root the catalog's asset paths resolve against
	Catalog    string // catalog file inside AssetsDir
	Store      string // one of StoreBadger, StoreGData, StoreMemory
	DataDir    string // badger directory
	AppName    string // gdata application name
	SampleRate int
	BufferSize time.Duration

	LogLevel      string
	LogFile       string
	LogMaxSize    int // megabytes
	LogMaxBackups int
	LogMaxAge     int // days
	LogCompress   bool
}

// Load reads a .env file from the working directory when there is one; it
// does not override variables that are already set. Missing variables take
// their defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AssetsDir:  getEnv("MURMUR_ASSETS_DIR", "assets"),
		Catalog:    getEnv("MURMUR_CATALOG", "sounds.json"),
		Store:      getEnv("MURMUR_STORE", StoreBadger),
		DataDir:    getEnv("MURMUR_DATA_DIR", defaultDataDir()),
		AppName:    getEnv("MURMUR_APP_NAME", "murmur"),
		SampleRate: getEnvInt("MURMUR_SAMPLE_RATE", 44100),
		BufferSize: time.Duration(getEnvInt("MURMUR_BUFFER_MS", 100)) * time.Millisecond,

		LogLevel:      getEnv("MURMUR_LOG_LEVEL", "info"),
		LogFile:       getEnv("MURMUR_LOG_FILE", ""),
		LogMaxSize:    getEnvInt("MURMUR_LOG_MAX_SIZE", 10),
		LogMaxBackups: getEnvInt("MURMUR_LOG_MAX_BACKUPS", 3),
		LogMaxAge:     getEnvInt("MURMUR_LOG_MAX_AGE", 28),
		LogCompress:   getEnvBool("MURMUR_LOG_COMPRESS", false),
	}
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".murmur"
	}
	return filepath.Join(dir, "murmur")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
