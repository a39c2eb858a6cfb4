package cmd

// Config carries the runtime settings loaded from the environment.
type Config struct {
	HTTPPort        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSslMode       string
	JWTSecret       string
	BacklogSchedule string
}
