package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	JWT           JWTConfig
	Turso         TursoConfig
	ProjectID     string
}

type JWTConfig struct {
	Secret string
	Issuer string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
