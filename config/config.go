package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds optional file-based settings. Everything here can also be set
// through environment variables; env wins when both are present.
type Config struct {
	Port           string         `yaml:"port"`
	JWTSecretKey   string         `yaml:"jwt_secret"`
	PlantersDir    string         `yaml:"planters_dir"`
	RendersDir     string         `yaml:"renders_dir"`
	PostgresConfig PostgresConfig `yaml:"database"`
}

type PostgresConfig struct {
	Host     string `yaml:"host"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	Port     string `yaml:"port"`
	SSLMode  string `yaml:"sslmode"`
}

var fileConfig Config

// ReadConfig reads the configuration from the YAML file and keeps it as the
// fallback layer behind environment variables.
func ReadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	fileConfig = cfg
	return &cfg, nil
}

// GetEnv returns the environment variable value, then the file config value
// for known keys, then the fallback.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	if v := fromFile(key); v != "" {
		return v
	}
	return fallback
}

func fromFile(key string) string {
	switch key {
	case "PORT":
		return fileConfig.Port
	case "JWT_SECRET":
		return fileConfig.JWTSecretKey
	case "PLANTERS_DIR":
		return fileConfig.PlantersDir
	case "RENDERS_DIR":
		return fileConfig.RendersDir
	case "DB_HOST":
		return fileConfig.PostgresConfig.Host
	case "DB_USER":
		return fileConfig.PostgresConfig.User
	case "DB_PASSWORD":
		return fileConfig.PostgresConfig.Password
	case "DB_NAME":
		return fileConfig.PostgresConfig.DBName
	case "DB_PORT":
		return fileConfig.PostgresConfig.Port
	case "DB_SSLMODE":
		return fileConfig.PostgresConfig.SSLMode
	}
	return ""
}
