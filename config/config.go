package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Firebase configuration.
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`
	FirebaseProjectID       string `mapstructure:"FIREBASE_PROJECT_ID"`
	FirebaseStorageBucket   string `mapstructure:"FIREBASE_STORAGE_BUCKET"`

	// Media storage backend: "firebase" or "cloudinary".
	StorageBackend string `mapstructure:"STORAGE_BACKEND"`

	// Redis configuration.
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB     int    `mapstructure:"REDIS_CACHE_DB"`
	RedisPushQueueDB int    `mapstructure:"REDIS_PUSH_QUEUE_DB"`

	// Content cache freshness window and search debounce windows, in milliseconds.
	ContentCacheTTLMs    int `mapstructure:"CONTENT_CACHE_TTL_MS"`
	SearchDebounceMs     int `mapstructure:"SEARCH_DEBOUNCE_MS"`
	QuizSearchDebounceMs int `mapstructure:"QUIZ_SEARCH_DEBOUNCE_MS"`

	// Admin credentials. The password is stored as a bcrypt hash.
	AdminEmail        string `mapstructure:"ADMIN_EMAIL"`
	AdminPasswordHash string `mapstructure:"ADMIN_PASSWORD_HASH"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`

	// Default locale for the localization tables.
	DefaultLocale string `mapstructure:"DEFAULT_LOCALE"`

	// Bundled hymnal datasets and localization tables.
	AssetsDir string `mapstructure:"ASSETS_DIR"`
	I18nFile  string `mapstructure:"I18N_FILE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "config/serviceAccountKey.json")
	viper.SetDefault("FIREBASE_STORAGE_BUCKET", FirebaseBucketName)
	viper.SetDefault("STORAGE_BACKEND", "firebase")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_PUSH_QUEUE_DB", 3)
	viper.SetDefault("CONTENT_CACHE_TTL_MS", 300000)
	viper.SetDefault("SEARCH_DEBOUNCE_MS", 300)
	viper.SetDefault("QUIZ_SEARCH_DEBOUNCE_MS", 500)
	viper.SetDefault("DEFAULT_LOCALE", "en")
	viper.SetDefault("ASSETS_DIR", "assets")
	viper.SetDefault("I18N_FILE", "config/i18n.yaml")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
