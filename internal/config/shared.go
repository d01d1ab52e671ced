package config

// --- Shared Configs ---

type ServerConfig struct {
	Port      string // TCP port for the line protocol listener
	AdminPort string // HTTP port for the admin surface
	LogLevel  string // debug, info, warn, error
	LogFile   string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host string
	Port string
}
