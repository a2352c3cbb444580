package config

import "github.com/caarlos0/env/v9"

type Config struct {
	Port                   string `env:"PORT" envDefault:"8080"`
	DBUser                 string `env:"DB_USER,required"`
	DBPassword             string `env:"DB_PASSWORD,required"`
	DBHost                 string `env:"DB_HOST,required"` // e.g. tcp(host:3306) or unix(/cloudsql/instance)
	DBName                 string `env:"DB_NAME,required"`
	DBPort                 string `env:"DB_PORT" envDefault:"3306"`
	InstanceConnectionName string `env:"INSTANCE_CONNECTION_NAME"`

	// Image storage. When StorageBucket is empty, uploads go to local disk
	// under UploadDir and are served from /uploads.
	StorageBucket string `env:"STORAGE_BUCKET"`
	UploadDir     string `env:"UPLOAD_DIR" envDefault:"public/uploads/listings"`

	// Atlas of Living Australia species lookup endpoints.
	SpeciesSearchBase string `env:"SPECIES_SEARCH_BASE" envDefault:"https://api.ala.org.au/species"`
	SpeciesBIEBase    string `env:"SPECIES_BIE_BASE" envDefault:"https://bie.ala.org.au/ws"`
	SpeciesImagesBase string `env:"SPECIES_IMAGES_BASE" envDefault:"https://images.ala.org.au/image"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
