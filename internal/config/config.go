package config

import "github.com/caarlos0/env/v10"

// Config centraliza a configuração do serviço.
type Config struct {
	HTTPPort       string `env:"PORT" envDefault:"8080"`
	GinMode        string `env:"GIN_MODE"`
	MongoURI       string `env:"MONGO_URI,required"`
	MongoDBName    string `env:"MONGO_DB" envDefault:"portfolio"`
	EmailHost      string `env:"EMAIL_HOST"`
	EmailPort      int    `env:"EMAIL_PORT" envDefault:"587"`
	EmailUser      string `env:"EMAIL_USER"`
	EmailPass      string `env:"EMAIL_PASS"`
	EmailFrom      string `env:"EMAIL_FROM"`
	EmailFromName  string `env:"EMAIL_FROM_NAME"`
	EmailSecure    bool   `env:"EMAIL_SECURE" envDefault:"false"`
	RecipientEmail string `env:"RECIPIENT_EMAIL"`
	PublicBaseURL  string `env:"PUBLIC_BASE_URL"`
}

// LoadConfig carrega a configuração a partir de variáveis de ambiente.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
