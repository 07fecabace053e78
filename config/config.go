package config

import (
	"sync"
	"time"

	"github.com/careerbuilder24/e-commerce-project/structs"
)

var (
	configInstance *structs.Config
	configOnce     sync.Once
)

func GetConfig() *structs.Config {
	configOnce.Do(func() {
		configInstance = &structs.Config{
			Server: &structs.ServerConfig{
				AppName:        getEnvAsString("APP_NAME", "Marketplace"),
				Environment:    getEnvAsString("APP_ENV", "development"),
				Port:           getEnvAsString("APP_PORT", ":8080"),
				ReadTimeout:    getEnvAsSeconds("SERVER_READ_TIMEOUT", 15*time.Second),
				WriteTimeout:   getEnvAsSeconds("SERVER_WRITE_TIMEOUT", 15*time.Second),
				IdleTimeout:    getEnvAsSeconds("SERVER_IDLE_TIMEOUT", 60*time.Second),
				MaxHeaderBytes: getEnvAsInt("SERVER_MAX_HEADER_BYTES", 1<<20), // 1 MB
			},
			Cors: &structs.CorsConfig{
				AllowedOrigins:   getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
				AllowedMethods:   getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
				AllowedHeaders:   getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization"}),
				ExposedHeaders:   getEnvAsSlice("CORS_EXPOSED_HEADERS", []string{"Content-Length"}),
				AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", true),
				MaxAge:           getEnvAsInt("CORS_MAX_AGE", 300),
			},
			Database: &structs.DatabaseConfig{
				Host:         getEnvAsString("DB_HOST", "localhost"),
				Port:         getEnvAsInt("DB_PORT", 5432),
				User:         getEnvAsString("DB_USER", "postgres"),
				Password:     getEnvAsString("DB_PASSWORD", "password"),
				Name:         getEnvAsString("DB_NAME", "marketplace_db"),
				UseTLS:       getEnvAsBool("DB_TLS", false),
				MaxConns:     getEnvAsInt("DB_MAX_CONNS", 10),
				MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 2),
				MaxLifetime:  getEnvAsSeconds("DB_MAX_LIFETIME", 30*time.Minute),
				MaxIdleTime:  getEnvAsSeconds("DB_MAX_IDLE_TIME", 5*time.Minute),
				ReadTimeout:  getEnvAsSeconds("DB_READ_TIMEOUT", 5*time.Second),
				WriteTimeout: getEnvAsSeconds("DB_WRITE_TIMEOUT", 5*time.Second),
			},
			Cache: &structs.CacheConfig{
				Address:      getEnvAsString("REDIS_ADDRESS", "localhost:6379"),
				Username:     getEnvAsString("REDIS_USERNAME", ""),
				Password:     getEnvAsString("REDIS_PASSWORD", ""),
				DB:           getEnvAsInt("REDIS_DB", 0),
				PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
				MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 2),
				DialTimeout:  getEnvAsSeconds("REDIS_DIAL_TIMEOUT", 5*time.Second),
				ReadTimeout:  getEnvAsSeconds("REDIS_READ_TIMEOUT", 3*time.Second),
				WriteTimeout: getEnvAsSeconds("REDIS_WRITE_TIMEOUT", 3*time.Second),
				CatalogTTL:   getEnvAsSeconds("CACHE_CATALOG_TTL", 5*time.Minute),
				UserTTL:      getEnvAsSeconds("CACHE_USER_TTL", 15*time.Minute),
			},
			Auth: &structs.AuthConfig{
				SessionSecret: getEnvAsString("AUTH_SESSION_SECRET", "default_session_secret"),
				SessionExpiry: getEnvAsSeconds("AUTH_SESSION_EXPIRY", 7*24*time.Hour),
			},
			RateLimit: &structs.RateLimitConfig{
				Enabled:       getEnvAsBool("RATE_LIMIT_ENABLED", true),
				GeneralLimit:  getEnvAsInt("RATE_LIMIT_GENERAL", 120),
				GeneralWindow: getEnvAsSeconds("RATE_LIMIT_GENERAL_WINDOW", time.Minute),
				AuthLimit:     getEnvAsInt("RATE_LIMIT_AUTH", 10),
				AuthWindow:    getEnvAsSeconds("RATE_LIMIT_AUTH_WINDOW", time.Minute),
				VendorLimit:   getEnvAsInt("RATE_LIMIT_VENDOR", 60),
				VendorWindow:  getEnvAsSeconds("RATE_LIMIT_VENDOR_WINDOW", time.Minute),
			},
			Email: &structs.EmailConfig{
				Enabled:      getEnvAsBool("EMAIL_ENABLED", false),
				ResendAPIKey: getEnvAsString("RESEND_API_KEY", ""),
				From:         getEnvAsString("EMAIL_FROM", "Marketplace <noreply@example.com>"),
			},
		}
	})
	return configInstance
}

func GetLogLevel() string {
	if GetConfig().Server.Environment == "production" {
		return "info"
	}
	return "debug"
}

func IsProduction() bool {
	return GetConfig().Server.Environment == "production"
}
