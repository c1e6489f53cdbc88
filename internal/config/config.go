package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config regroupe toute la configuration du service, chargée depuis
// l'environnement.
type Config struct {
	Port string `envconfig:"PORT" default:"8080"`
	URL  string `envconfig:"APP_URL" default:"http://localhost:8080"`

	DBHost     string `envconfig:"DATABASE_HOST" default:"localhost"`
	DBPort     string `envconfig:"DATABASE_PORT" default:"5432"`
	DBUser     string `envconfig:"DATABASE_USER" required:"true"`
	DBPassword string `envconfig:"DATABASE_PASSWORD" required:"true"`
	DBName     string `envconfig:"DATABASE_NAME" default:"karma"`

	CloudinaryCloudName string `envconfig:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `envconfig:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `envconfig:"CLOUDINARY_API_SECRET"`
}

// LoadConfig charge la configuration depuis les variables d'environnement.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
