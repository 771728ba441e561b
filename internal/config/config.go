package config

import (
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	DatabaseURL      string
	Port             string
	SessionStore     string
	EnforceOwnership bool
	BcryptCost       int
	LogLevel         string
	LogFormat        string
	AllowedOrigins   []string
	RequestTimeout   time.Duration
}

const (
	SessionStoreSQL   = "sql"
	SessionStoreRedis = "redis"
)

// Load reads .env when present and lets the environment override it.
func Load() *Config {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("server.port", "PORT")
	viper.BindEnv("server.request_timeout", "REQUEST_TIMEOUT")
	viper.BindEnv("session.store", "SESSION_STORE")
	viper.BindEnv("values.enforce_ownership", "ENFORCE_ENTRY_OWNERSHIP")
	viper.BindEnv("bcrypt.cost", "BCRYPT_COST")
	viper.BindEnv("log.level", "LOG_LEVEL")
	viper.BindEnv("log.format", "LOG_FORMAT")
	viper.BindEnv("cors.allowed_origins", "CORS_ALLOWED_ORIGINS")

	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("redis.db", "REDIS_DB")

	viper.SetDefault("database.url", "sqlite://mywallet.db")
	viper.SetDefault("server.port", "5000")
	viper.SetDefault("server.request_timeout", 60*time.Second)
	viper.SetDefault("session.store", SessionStoreSQL)
	viper.SetDefault("values.enforce_ownership", true)
	viper.SetDefault("bcrypt.cost", 10)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("cors.allowed_origins", "*")

	if err := viper.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Debug("Config file not loaded, using environment and defaults")
	}

	return &Config{
		DatabaseURL:      viper.GetString("database.url"),
		Port:             viper.GetString("server.port"),
		SessionStore:     strings.ToLower(viper.GetString("session.store")),
		EnforceOwnership: viper.GetBool("values.enforce_ownership"),
		BcryptCost:       viper.GetInt("bcrypt.cost"),
		LogLevel:         viper.GetString("log.level"),
		LogFormat:        viper.GetString("log.format"),
		AllowedOrigins:   splitList(viper.GetString("cors.allowed_origins")),
		RequestTimeout:   viper.GetDuration("server.request_timeout"),
	}
}

// ConfigureLogging applies level and format to the standard logrus logger.
func (c *Config) ConfigureLogging() {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		log.WithField("level", c.LogLevel).Warn("Unknown log level, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if strings.EqualFold(c.LogFormat, "json") {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

func splitList(val string) []string {
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
