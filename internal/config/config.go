package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port            string
	MongoURI        string
	MongoDB         string
	SessionBackend  string
	SessionTTLHours int
	SecureCookies   bool
	RedisAddr       string
	RedisPassword   string
	RabbitMQURI     string
	RabbitExchange  string
	DictionaryURL   string
	BcryptCost      int
}

func New() *Config {
	ttl, _ := strconv.Atoi(getEnv("SESSION_TTL_HOURS", "24"))
	cost, _ := strconv.Atoi(getEnv("BCRYPT_COST", "10"))
	secure, _ := strconv.ParseBool(getEnv("SECURE_COOKIES", "false"))

	return &Config{
		Port:            getEnv("PORT", "8080"),
		MongoURI:        getEnv("MONGO_URI", ""),
		MongoDB:         getEnv("MONGO_DB", "vocab_service"),
		SessionBackend:  getEnv("SESSION_BACKEND", "memory"),
		SessionTTLHours: ttl,
		SecureCookies:   secure,
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RabbitMQURI:     getEnv("RABBITMQ_URI", ""),
		RabbitExchange:  getEnv("RABBITMQ_EXCHANGE", ""),
		DictionaryURL:   getEnv("DICTIONARY_API_URL", "https://api.urbandictionary.com/v0"),
		BcryptCost:      cost,
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
