package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string      `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer  HTTPServer  `yaml:"http_server"`
	DB          DB          `yaml:"db"`
	Cache       Cache       `yaml:"cache"`
	FileStorage FileStorage `yaml:"file_storage"`
	Auth        Auth        `yaml:"auth"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type DB struct {
	Addr     string `yaml:"addr" env:"DB_ADDR" env-default:"localhost"`
	Port     string `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-required:"true"`
	Password string `yaml:"password" env:"DB_PASSWORD" env-required:"true"`
	DB       string `yaml:"db" env:"DB_NAME" env-required:"true"`
}

type Cache struct {
	Addr       string        `yaml:"addr" env:"CACHE_ADDR" env-default:"localhost:6379"`
	Password   string        `yaml:"password" env:"CACHE_PASSWORD"`
	DB         int           `yaml:"db" env:"CACHE_DB" env-default:"0"`
	ContentTTL time.Duration `yaml:"content_ttl" env-default:"5m"`
}

type FileStorage struct {
	Path string `yaml:"path" env:"FILE_STORAGE_PATH" env-default:"./uploads"`
}

type Auth struct {
	JWTSecret string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	TokenTTL  time.Duration `yaml:"token_ttl" env:"TOKEN_TTL" env-default:"24h"`
}

// MustLoad reads the config file pointed to by CONFIG_PATH and panics on failure.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
