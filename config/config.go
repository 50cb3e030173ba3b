package config

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string

	// Sync runs GORM AutoMigrate on start; MigrationsRun applies the SQL
	// migrations in db/migrations. Both are environment-togglable.
	Sync          bool
	MigrationsRun bool
	Logging       bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// LoadConfig reads .env (when present) plus the process environment. The
// documented defaults match a local development database.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// A missing .env is fine; the environment still applies.
	if err := viper.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "password")
	viper.SetDefault("DB_NAME", "redeem")
	viper.SetDefault("DB_SYNC", false)
	viper.SetDefault("DB_MIGRATIONS_RUN", true)
	viper.SetDefault("DB_LOGGING", false)
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:          viper.GetString("DB_HOST"),
			Port:          viper.GetString("DB_PORT"),
			User:          viper.GetString("DB_USER"),
			Password:      viper.GetString("DB_PASSWORD"),
			Name:          viper.GetString("DB_NAME"),
			Sync:          viper.GetBool("DB_SYNC"),
			MigrationsRun: viper.GetBool("DB_MIGRATIONS_RUN"),
			Logging:       viper.GetBool("DB_LOGGING"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
	}

	return config, nil
}
