package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBName    string
	JWTKey    string
	SaltRound int

	SheetScriptURL string // Apps Script endpoint backing quizzes and notes

	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	EmailSender string
	Password    string // SMTP Password
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		DBName:    getEnv("DB_NAME", "vidya"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		SheetScriptURL: getEnv("SHEET_SCRIPT_URL", ""),

		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),

		EmailSender: getEnv("EMAIL_SENDER", ""),
		Password:    getEnv("PASSWORD", ""),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY is not set. AI features will be unavailable.")
	}
	if AppConfig.SheetScriptURL == "" {
		log.Println("Warning: SHEET_SCRIPT_URL is not set. Quiz and notes storage will be unavailable.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
