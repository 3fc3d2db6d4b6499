package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port       string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	LobbyCapacity int
	QuestionCount int
	ScoreAward    int
}

func LoadConfig() *Config {
	return &Config{
		Port:       getEnv("PORT", "8000"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "user"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "quizduel"),

		LobbyCapacity: getEnvInt("LOBBY_CAPACITY", 2),
		QuestionCount: getEnvInt("QUESTION_COUNT", 10),
		ScoreAward:    getEnvInt("SCORE_AWARD", 10),
	}
}

// getEnv reads an environment variable and returns its value or a default value
func getEnv(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = defaultValue
		log.Printf("Environment variable %s not set, using default value: %s", key, defaultValue)
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Environment variable %s is not a number, using default value: %d", key, defaultValue)
		return defaultValue
	}
	return n
}
