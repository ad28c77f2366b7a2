package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Log struct {
		Level     string
		Format    string
		Component string
		Source    bool
	}

	App struct {
		ENV string
	}

	DB struct {
		Driver   string
		DSN      string
		Host     string
		Port     string
		User     string
		Password string
		Name     string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	GRPC struct {
		Host string
		Port string
	}

	Bot struct {
		Token       string
		AdminID     int64
		PollTimeout int
	}

	Admin struct {
		// KeyHash is a bcrypt hash of the key admin tools send as x-admin-key.
		KeyHash string
	}

	Coins struct {
		MessageCost       int64
		ViewAllLikersCost int64
		RegistrationBonus int64
	}

	Discovery struct {
		// RefetchCooldown is how long a depleted session waits before a manual
		// retry may query again. Zero disables the cooldown.
		RefetchCooldown   time.Duration
		LikersPreview     int
		CountCacheTTL     time.Duration
		// ConversationLimit caps the messages shown in a conversation view.
		ConversationLimit int
	}

	Registration struct {
		MinAge        int
		MaxAge        int
		MinPhotos     int
		MaxPhotos     int
		FinalizeDelay time.Duration
	}
}

func New() *Config {
	cfg := &Config{}

	// Logger
	cfg.Log.Level = getEnvDefault("LOG_LEVEL", "info")
	cfg.Log.Format = getEnvDefault("LOG_FORMAT", "text")
	cfg.Log.Component = getEnvDefault("LOG_COMPONENT", "matchbot")
	cfg.Log.Source = isTruthy(os.Getenv("LOG_SOURCE"))

	cfg.App.ENV = getEnvDefault("APP_ENV", "production")

	// Database
	cfg.DB.Driver = strings.ToLower(getEnvDefault("DB_DRIVER", "mysql"))
	cfg.DB.DSN = firstNonEmpty(os.Getenv("DB_DSN"), os.Getenv("MYSQL_DSN"), os.Getenv("DATABASE_URL"))
	if cfg.DB.DSN == "" {
		cfg.DB.Host = getEnvDefault("DB_HOST", "localhost")
		cfg.DB.User = getEnvDefault("DB_USER", "root")
		cfg.DB.Password = getEnvDefault("DB_PASSWORD", "root")
		cfg.DB.Name = getEnvDefault("DB_NAME", "matchbot")

		switch cfg.DB.Driver {
		case "postgres":
			cfg.DB.Port = getEnvDefault("DB_PORT", "5432")
			cfg.DB.DSN = fmt.Sprintf(
				"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
				cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name,
			)
		case "sqlite":
			cfg.DB.DSN = "file:" + cfg.DB.Name + ".db?cache=shared"
		default:
			cfg.DB.Port = getEnvDefault("DB_PORT", "3306")
			cfg.DB.DSN = fmt.Sprintf(
				"%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
				cfg.DB.User, cfg.DB.Password, cfg.DB.Host, cfg.DB.Port, cfg.DB.Name,
			)
		}
	}

	// Redis
	cfg.Redis.Addr = getEnvDefault("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnvDefault("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)

	// gRPC
	cfg.GRPC.Host = getEnvDefault("GRPC_HOST", "127.0.0.1")
	cfg.GRPC.Port = getEnvDefault("GRPC_PORT", "50051")

	// Telegram
	cfg.Bot.Token = getEnvDefault("BOT_TOKEN", "")
	cfg.Bot.AdminID = int64(getEnvInt("ADMIN_ID", 0))
	cfg.Bot.PollTimeout = getEnvInt("BOT_POLL_TIMEOUT", 30)

	cfg.Admin.KeyHash = getEnvDefault("ADMIN_KEY_HASH", "")

	// Coin economy
	cfg.Coins.MessageCost = int64(getEnvInt("COIN_MESSAGE_COST", 2))
	cfg.Coins.ViewAllLikersCost = int64(getEnvInt("COIN_VIEW_ALL_LIKERS_COST", 10))
	cfg.Coins.RegistrationBonus = int64(getEnvInt("COIN_REGISTRATION_BONUS", 10))

	// Discovery
	cfg.Discovery.RefetchCooldown = getEnvDuration("DISCOVERY_REFETCH_COOLDOWN", 0)
	cfg.Discovery.LikersPreview = getEnvInt("DISCOVERY_LIKERS_PREVIEW", 5)
	cfg.Discovery.CountCacheTTL = getEnvDuration("DISCOVERY_COUNT_CACHE_TTL", time.Hour)
	cfg.Discovery.ConversationLimit = getEnvInt("DISCOVERY_CONVERSATION_LIMIT", 20)

	// Registration
	cfg.Registration.MinAge = getEnvInt("REGISTRATION_MIN_AGE", 18)
	cfg.Registration.MaxAge = getEnvInt("REGISTRATION_MAX_AGE", 100)
	cfg.Registration.MinPhotos = getEnvInt("REGISTRATION_MIN_PHOTOS", 2)
	cfg.Registration.MaxPhotos = getEnvInt("REGISTRATION_MAX_PHOTOS", 5)
	cfg.Registration.FinalizeDelay = getEnvDuration("REGISTRATION_FINALIZE_DELAY", 30*time.Second)

	return cfg
}

func getEnvDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// getEnvDuration accepts Go duration strings ("90s", "5m") or plain seconds.
func getEnvDuration(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return def
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}
