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

	Mongo struct {
		URI         string `yaml:"uri"`
		Database    string `yaml:"database"`
		MaxPoolSize uint64 `yaml:"max_pool_size"`
		MinPoolSize uint64 `yaml:"min_pool_size"`
	} `yaml:"mongo"`

	JWT struct {
		Secret   string `yaml:"secret"`
		TTLHours int    `yaml:"ttl_hours"`
	} `yaml:"jwt"`

	CORS struct {
		Origins []string `yaml:"origins"`
	} `yaml:"cors"`

	Stripe struct {
		SecretKey string `yaml:"secret_key"`
	} `yaml:"stripe"`
}

var AppConfig *Config

// LoadConfig reads config.yaml unless MONGODB_URI is set, in which case the
// whole configuration comes from environment variables (container/test mode).
func LoadConfig() {
	var cfg Config

	mongoURI := os.Getenv("MONGODB_URI")

	if mongoURI == "" {
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

	cfg.Mongo.URI = mongoURI
	cfg.Mongo.Database = getEnvOrDefault("MONGODB_DATABASE", "matchMateDB")
	cfg.Server.Env = getEnvOrDefault("SERVER_ENV", "development")
	cfg.Server.Port, _ = strconv.Atoi(getEnvOrDefault("SERVER_PORT", "4000"))
	cfg.JWT.Secret = os.Getenv("ACCESS_TOKEN")
	cfg.Stripe.SecretKey = os.Getenv("STRIPE_SECRET_KEY")
	cfg.CORS.Origins = []string{getEnvOrDefault("CLIENT_ORIGIN", "http://localhost:5173")}

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.JWT.TTLHours == 0 {
		cfg.JWT.TTLHours = 72 // credential lives for 3 days
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = "matchMateDB"
	}
	if cfg.Mongo.MaxPoolSize == 0 {
		cfg.Mongo.MaxPoolSize = 25
	}
	if len(cfg.CORS.Origins) == 0 {
		cfg.CORS.Origins = []string{"http://localhost:5173"}
	}
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

// IsProduction toggles the credential cookie attributes (Secure, SameSite=None).
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}
