package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	AppPort            string
	DbHost             string
	DbPort             string
	DbUser             string
	DbPassword         string
	DbName             string
	DbSSLMode          string
	DbMaxOpenConns     int
	DbMinIdleConns     int
	DbStatementTimeout time.Duration
	Timezone           string
	DefaultPageLimit   int
	MaxPageLimit       int
	TrustedProxies     []string
	TranslationFolder  string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return &Config{
		AppPort:            v.GetString("APP_PORT"),
		DbHost:             v.GetString("PG_HOST"),
		DbPort:             v.GetString("PG_PORT"),
		DbUser:             v.GetString("PG_USER"),
		DbPassword:         v.GetString("PG_PASSWORD"),
		DbName:             v.GetString("PG_DB"),
		DbSSLMode:          v.GetString("PG_SSLMODE"),
		DbMaxOpenConns:     v.GetInt("DB_MAX_OPEN_CONNS"),
		DbMinIdleConns:     v.GetInt("DB_MIN_IDLE_CONNS"),
		DbStatementTimeout: v.GetDuration("DB_STATEMENT_TIMEOUT"),
		Timezone:           v.GetString("APP_TIMEZONE"),
		DefaultPageLimit:   v.GetInt("DEFAULT_PAGE_LIMIT"),
		MaxPageLimit:       v.GetInt("MAX_PAGE_LIMIT"),
		TrustedProxies:     parseTrustedProxies(v.GetString("TRUSTED_PROXIES")),
		TranslationFolder:  v.GetString("TRANSLATION_FOLDER"),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("PG_HOST", "localhost")
	v.SetDefault("PG_PORT", "5432")
	v.SetDefault("PG_USER", "postgres")
	v.SetDefault("PG_PASSWORD", "postgres")
	v.SetDefault("PG_DB", "todos")
	v.SetDefault("PG_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 50)
	v.SetDefault("DB_MIN_IDLE_CONNS", 1)
	v.SetDefault("DB_STATEMENT_TIMEOUT", 10*time.Second)
	v.SetDefault("APP_TIMEZONE", "Europe/Moscow")
	v.SetDefault("DEFAULT_PAGE_LIMIT", 10)
	v.SetDefault("MAX_PAGE_LIMIT", 100)
	v.SetDefault("TRUSTED_PROXIES", "")
	v.SetDefault("TRANSLATION_FOLDER", "pkg/translator/translation")
}

// DatabaseURL returns the pgx connection string for the configured database.
func (c *Config) DatabaseURL() string {
	return c.databaseURL(c.DbName)
}

// AdminDatabaseURL points at the maintenance database used to create or drop
// the application database.
func (c *Config) AdminDatabaseURL() string {
	return c.databaseURL("postgres")
}

func (c *Config) databaseURL(database string) string {
	query := url.Values{}
	if c.DbSSLMode != "" {
		query.Set("sslmode", c.DbSSLMode)
	}
	if c.DbStatementTimeout > 0 {
		query.Set("statement_timeout", fmt.Sprintf("%d", c.DbStatementTimeout.Milliseconds()))
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DbUser, c.DbPassword),
		Host:     c.DbHost + ":" + c.DbPort,
		Path:     "/" + database,
		RawQuery: query.Encode(),
	}
	return u.String()
}

// Location resolves Timezone, falling back to UTC when it cannot be loaded.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		zap.L().Warn("unknown timezone, using UTC", zap.String("timezone", c.Timezone), zap.Error(err))
		return time.UTC
	}
	return loc
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
