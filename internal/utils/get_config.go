package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	AppPort      string `yaml:"APP_PORT"`
	LogLevel     string `yaml:"LOG_LEVEL"`
	LogFile      string `yaml:"LOG_FILE"`
	RateLimitMax int    `yaml:"RATE_LIMIT_MAX"`

	// Catalog configuration
	CatalogSource string `yaml:"CATALOG_SOURCE"` // csv, s3 or db
	CatalogPath   string `yaml:"CATALOG_PATH"`
	DefaultTopN   int    `yaml:"DEFAULT_TOP_N"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Session tokens
	JWTSecret         string `yaml:"JWT_SECRET"`
	SessionTTLMinutes int    `yaml:"SESSION_TTL_MINUTES"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

var config = defaultConfig()

func defaultConfig() Config {
	return Config{
		AppPort:           "8080",
		LogLevel:          "info",
		RateLimitMax:      20,
		CatalogSource:     "csv",
		CatalogPath:       "recipes.csv",
		DefaultTopN:       5,
		DBPort:            "5432",
		DBHost:            "localhost",
		SessionTTLMinutes: 720,
	}
}

// LoadConfig reads the YAML file at path on top of the defaults and then
// applies environment overrides. A missing file is not an error.
func LoadConfig(path string) error {
	cfg := defaultConfig()

	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return fmt.Errorf("read %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	config = cfg
	return nil
}

// Current returns a copy of the loaded configuration.
func Current() Config {
	return config
}

func (c *Config) applyEnvOverrides() {
	strs := map[string]*string{
		"APP_PORT":       &c.AppPort,
		"LOG_LEVEL":      &c.LogLevel,
		"LOG_FILE":       &c.LogFile,
		"CATALOG_SOURCE": &c.CatalogSource,
		"CATALOG_PATH":   &c.CatalogPath,
		"DB_USER":        &c.DBUser,
		"DB_NAME":        &c.DBName,
		"DB_PASSWORD":    &c.DBPassword,
		"DB_PORT":        &c.DBPort,
		"DB_HOST":        &c.DBHost,
		"JWT_SECRET":     &c.JWTSecret,
		"AWS_S3_BUCKET":  &c.AWSS3Bucket,
		"AWS_S3_REGION":  &c.AWSS3Region,
		"AWS_ACCESS_KEY": &c.AWSAccessKey,
		"AWS_SECRET_KEY": &c.AWSSecretKey,
	}
	for key, dst := range strs {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	ints := map[string]*int{
		"RATE_LIMIT_MAX":      &c.RateLimitMax,
		"DEFAULT_TOP_N":       &c.DefaultTopN,
		"SESSION_TTL_MINUTES": &c.SessionTTLMinutes,
	}
	for key, dst := range ints {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "LOG_LEVEL":
		return config.LogLevel
	case "LOG_FILE":
		return config.LogFile
	case "RATE_LIMIT_MAX":
		return strconv.Itoa(config.RateLimitMax)
	case "CATALOG_SOURCE":
		return config.CatalogSource
	case "CATALOG_PATH":
		return config.CatalogPath
	case "DEFAULT_TOP_N":
		return strconv.Itoa(config.DefaultTopN)
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		return config.JWTSecret
	case "SESSION_TTL_MINUTES":
		return strconv.Itoa(config.SessionTTLMinutes)
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	default:
		return ""
	}
}
