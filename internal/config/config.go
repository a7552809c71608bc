package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Auth struct {
		JWTSecret   string `yaml:"jwt_secret"`
		TokenTTLMin int    `yaml:"token_ttl_min"`
		MockOTPCode string `yaml:"mock_otp_code"`
	} `yaml:"auth"`

	Mock struct {
		LatencyMS int   `yaml:"latency_ms"` // artificial delay per facade call
		Seed      int64 `yaml:"seed"`       // shuffle seed, 0 = time-based
	} `yaml:"mock"`

	Client struct {
		SnapshotPath     string `yaml:"snapshot_path"`
		ServerURL        string `yaml:"server_url"`
		RequestTimeoutMS int    `yaml:"request_timeout_ms"`
		RetryAttempts    int    `yaml:"retry_attempts"`
	} `yaml:"client"`
}

var AppConfig *Config

// LoadConfig reads config.yaml, or falls back to environment variables when
// SERVER_ENV is set (test / container mode).
func LoadConfig() {
	var cfg Config

	serverEnv := os.Getenv("SERVER_ENV")

	if serverEnv == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	log.Println("Loading configuration from environment variables")

	cfg.Server.Env = serverEnv
	cfg.Server.Host = os.Getenv("SERVER_HOST")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.Auth.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.Auth.MockOTPCode = os.Getenv("MOCK_OTP_CODE")
	cfg.Client.SnapshotPath = os.Getenv("SNAPSHOT_PATH")
	cfg.Client.ServerURL = os.Getenv("SERVER_URL")

	if ms := os.Getenv("MOCK_LATENCY_MS"); ms != "" {
		cfg.Mock.LatencyMS, _ = strconv.Atoi(ms)
	}

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}
	if cfg.Auth.TokenTTLMin == 0 {
		cfg.Auth.TokenTTLMin = 60
	}
	if cfg.Auth.MockOTPCode == "" {
		cfg.Auth.MockOTPCode = "1234"
	}
	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = "inflo-dev-secret"
	}
	if cfg.Client.SnapshotPath == "" {
		cfg.Client.SnapshotPath = "inflo-storage.json"
	}
	if cfg.Client.ServerURL == "" {
		cfg.Client.ServerURL = "http://localhost:3000"
	}
	if cfg.Client.RequestTimeoutMS == 0 {
		cfg.Client.RequestTimeoutMS = 5000
	}
	if cfg.Client.RetryAttempts == 0 {
		cfg.Client.RetryAttempts = 3
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
