package config

import (
	"fmt"
	"os"
	"strconv"

	logger "github.com/beka-birhanu/vinom-maze/infrastruture/log"
	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP        string // Host IP for the server
	RESTPort      int    // Port for the REST API
	GinMode       string // Mode for the Gin framework (e.g., release, debug, test)
	RedisAddr     string // Address of the Redis seed store; empty disables it
	RedisPassword string // Password for Redis
	RedisDB       int    // Redis database number
	DailySeedTTL  int    // Seconds a daily seed is kept in Redis
	MaxDimension  int    // Largest width or height the API will build
	MazeWidth     int    // Default maze width (columns)
	MazeHeight    int    // Default maze height (rows)
	CellWidth     int    // Characters per rendered cell
	CellHeight    int    // Lines per rendered cell
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

var configLogger, _ = logger.New("CONFIG", ColorBlue, os.Stderr)

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		configLogger.Info(fmt.Sprintf(".env file not found or could not be loaded: %v", err))
	}

	return Config{
		HostIP:        getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:      getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:       getEnvWithDefault("GIN_MODE", "release"),
		RedisAddr:     getEnvWithDefault("REDIS_ADDR", ""),
		RedisPassword: getEnvWithDefault("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsIntWithDefault("REDIS_DB", 0),
		DailySeedTTL:  getEnvAsIntWithDefault("DAILY_SEED_TTL", 48*60*60),
		MaxDimension:  getEnvAsIntWithDefault("MAX_DIMENSION", 100),
		MazeWidth:     getEnvAsIntWithDefault("MAZE_WIDTH", 20),
		MazeHeight:    getEnvAsIntWithDefault("MAZE_HEIGHT", 20),
		CellWidth:     getEnvAsIntWithDefault("CELL_WIDTH", 5),
		CellHeight:    getEnvAsIntWithDefault("CELL_HEIGHT", 2),
	}
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer, or a
// default value if not set. A value that cannot be parsed is fatal.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := parseInt(key, valueStr)
	if err != nil {
		configLogger.Fatal(err.Error())
	}
	return value
}

func parseInt(key, valueStr string) (int, error) {
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
