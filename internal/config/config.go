package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI       string
	DBName         string
	JWTSecret      string
	AccessTokenTTL time.Duration

	// AdminEmail is the reserved owner login identifier.
	AdminEmail string

	// TrialDays is the free-trial window for business accounts.
	TrialDays int

	// Base fees in USD, multiplied by the country exchange rate when no
	// fixed local price exists.
	IndividualBaseFee float64
	BusinessBaseFee   float64

	// PaymentDelay is how long the simulated payment provider "processes".
	PaymentDelay time.Duration

	// RedisAddr enables live activity fan-out when set.
	RedisAddr string

	GenAIKey     string
	GenAIBaseURL string
	GenAIModel   string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI:          getEnvOrDefault("MONGO_URI", ""),
		DBName:            getEnvOrDefault("DB_NAME", "eventmanager"),
		JWTSecret:         getEnvOrDefault("JWT_SECRET", ""),
		AccessTokenTTL:    getDurationEnv("ACCESS_TOKEN_TTL", 12, time.Hour),
		AdminEmail:        getEnvOrDefault("ADMIN_EMAIL", "admin@eventmanager.com"),
		TrialDays:         getIntEnv("TRIAL_DAYS", 15),
		IndividualBaseFee: getFloatEnv("INDIVIDUAL_BASE_FEE", 5),
		BusinessBaseFee:   getFloatEnv("BUSINESS_BASE_FEE", 40),
		PaymentDelay:      getDurationEnv("PAYMENT_DELAY_SECONDS", 2, time.Second),
		RedisAddr:         getEnvOrDefault("REDIS_ADDR", ""),
		GenAIKey:          getEnvOrDefault("GENAI_API_KEY", ""),
		GenAIBaseURL:      getEnvOrDefault("GENAI_BASE_URL", "https://generativelanguage.googleapis.com"),
		GenAIModel:        getEnvOrDefault("GENAI_MODEL", "gemini-2.0-flash"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}

func getIntEnv(key string, defaultValue int) int {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}
