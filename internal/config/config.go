package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Redis   RedisConfig
	Archive ArchiveConfig
	Advisor AdvisorConfig
	Results ResultsConfig
	Logger  LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// ArchiveConfig configures the saved-results archive.
type ArchiveConfig struct {
	SQLitePath string // path of the embedded database file
	MaxPerUser int    // oldest entries are evicted beyond this cap
}

// AdvisorConfig configures the LLM-backed health advisor.
type AdvisorConfig struct {
	ServerURL string
	Model     string
	Timeout   time.Duration
}

// ResultsConfig configures the result persistence gateway.
type ResultsConfig struct {
	TTL       time.Duration // how long a stored result is kept
	RecentAge time.Duration // a result younger than this counts as recent
}

type LoggerConfig struct {
	Level string
	Env   string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("archive.sqlite_path", "fytai.db")
	viper.SetDefault("archive.max_per_user", 5)
	viper.SetDefault("advisor.model", "qwen3:0.6b")
	viper.SetDefault("advisor.timeout", 20)
	viper.SetDefault("results.ttl_days", 30)
	viper.SetDefault("results.recent_days", 30)
	viper.SetDefault("logger.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Archive: ArchiveConfig{
			SQLitePath: viper.GetString("archive.sqlite_path"),
			MaxPerUser: viper.GetInt("archive.max_per_user"),
		},
		Advisor: AdvisorConfig{
			ServerURL: viper.GetString("advisor.server_url"),
			Model:     viper.GetString("advisor.model"),
			Timeout:   viper.GetDuration("advisor.timeout") * time.Second,
		},
		Results: ResultsConfig{
			TTL:       viper.GetDuration("results.ttl_days") * 24 * time.Hour,
			RecentAge: viper.GetDuration("results.recent_days") * 24 * time.Hour,
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
	}

	// Override with environment variables if set
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if advisorServer := os.Getenv("ADVISOR_SERVER"); advisorServer != "" {
		config.Advisor.ServerURL = advisorServer
	}
	if sqlitePath := os.Getenv("ARCHIVE_SQLITE_PATH"); sqlitePath != "" {
		config.Archive.SQLitePath = sqlitePath
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}

	return config, nil
}
