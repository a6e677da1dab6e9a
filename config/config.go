package config

import (
	"github.com/ilyakaznacheev/cleanenv"
)

// AppConfig is the full environment surface of the service.
type AppConfig struct {
	Port   string `env:"PORT" env-default:"8080"`
	Locale string `env:"LOCALE" env-default:"es"`

	DBHost     string `env:"DB_HOST" env-default:"localhost"`
	DBPort     string `env:"DB_PORT" env-default:"5432"`
	DBUser     string `env:"DB_USER" env-default:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" env-default:"cms"`
	DBSSLMode  string `env:"DB_SSLMODE" env-default:"disable"`

	JWTSecret string `env:"JWT_SECRET"`

	S3Region          string `env:"S3_REGION" env-default:"us-east-1"`
	S3Bucket          string `env:"S3_BUCKET"`
	S3AccessKeyID     string `env:"S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"S3_SECRET_ACCESS_KEY"`
	S3Endpoint        string `env:"S3_ENDPOINT"`
	S3UsePathStyle    bool   `env:"S3_USE_PATH_STYLE" env-default:"false"`
	S3ACL             string `env:"S3_ACL" env-default:"public-read"`
	S3KeyPrefix       string `env:"S3_KEY_PREFIX" env-default:"media"`
	S3PublicBaseURL   string `env:"S3_PUBLIC_BASE_URL"`
}

func Load() (*AppConfig, error) {
	var cfg AppConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
