package config

// BaccaratConfig holds all configuration for the baccarat server
type BaccaratConfig struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Game     GameConfig
}

// GameConfig holds game engine settings
type GameConfig struct {
	Decks       int    // number of 52-card decks in the shoe
	MaxWorkers  int    // bounded connection pool size
	ShoeBackend string // db or redis
}

// LoadBaccaratConfig loads the server configuration from the environment
func LoadBaccaratConfig() *BaccaratConfig {
	return &BaccaratConfig{
		Server: ServerConfig{
			Port:      getEnv("BACCARAT_PORT", "9090"),
			AdminPort: getEnv("BACCARAT_ADMIN_PORT", "8081"),
			LogLevel:  getEnv("BACCARAT_LOG_LEVEL", "info"),
			LogFile:   getEnv("BACCARAT_LOG_FILE", "logs/baccarat/server.log"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Name:     getEnv("DB_NAME", "baccarat"),
		},
		Redis: RedisConfig{
			Host: getEnv("REDIS_HOST", "localhost"),
			Port: getEnv("REDIS_PORT", "6379"),
		},
		Game: GameConfig{
			Decks:       getEnvInt("BACCARAT_DECKS", 8),
			MaxWorkers:  getEnvInt("BACCARAT_MAX_WORKERS", 10),
			ShoeBackend: getEnv("BACCARAT_SHOE_BACKEND", "db"),
		},
	}
}
