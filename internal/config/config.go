package config

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `yaml:"env" env:"APP_ENV" env-default:"development"`
	HTTPServer `yaml:"http_server"`
	DB         `yaml:"db"`
	Redis      `yaml:"redis"`
	Kafka      `yaml:"kafka"`
	N8N        `yaml:"n8n"`
	Auth       `yaml:"auth"`
	Uploads    `yaml:"uploads"`
	Bot        `yaml:"bot"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8000" validate:"required"`
}

type DB struct {
	Dsn            string `yaml:"dsn" env:"DATABASE_DSN" validate:"required"`
	MigrationsPath string `yaml:"migrations_path" env-default:"migrations"`
}

type Redis struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env-default:"0"`
}

type Kafka struct {
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
	Topic   string   `yaml:"topic" env-default:"order-events"`
}

type N8N struct {
	URL           string `yaml:"url" env:"N8N_URL"`
	WebhookSecret string `yaml:"webhook_secret" env:"N8N_WEBHOOK_SECRET"`
	TimeoutSec    int    `yaml:"timeout_sec" env-default:"30"`
}

type Auth struct {
	JWTSecret         string `yaml:"jwt_secret" env:"JWT_SECRET" validate:"required,min=32"`
	TokenTTLHours     int    `yaml:"token_ttl_hours" env-default:"24"`
	AdminUsername     string `yaml:"admin_username" env:"ADMIN_USERNAME" env-default:"admin"`
	AdminPasswordHash string `yaml:"admin_password_hash" env:"ADMIN_PASSWORD_HASH" validate:"required"`
}

type Uploads struct {
	Dir         string `yaml:"dir" env-default:"./uploads"`
	MaxFileSize int64  `yaml:"max_file_size" env-default:"10485760"`
}

type Bot struct {
	Token            string `yaml:"token" env:"BOT_TOKEN"`
	BackendURL       string `yaml:"backend_url" env:"BACKEND_URL" env-default:"http://localhost:8000"`
	ManagerChannelID int64  `yaml:"manager_channel_id" env:"MANAGER_CHANNEL_ID"`
}

// MustLoad reads the YAML config named by PIZZAMAT_CONFIG_PATH, layers
// environment overrides on top and validates the result. Any failure is
// fatal: the process has nothing useful to do without config.
func MustLoad() *Config {
	configPath := os.Getenv("PIZZAMAT_CONFIG_PATH")
	if configPath == "" {
		log.Fatalf("PIZZAMAT_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	return &cfg
}
