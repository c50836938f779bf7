package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"quest_admin/internal/repository"
	"quest_admin/pkg/auth"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configPath   = "./"
	configName   = "config"
	configFormat = "yaml"
)

type Config struct {
	Database  repository.Config `yaml:"database"`
	Server    ServerConfig      `yaml:"server"`
	Privy     auth.PrivyConfig  `yaml:"privy"`
	Auth      AuthConfig        `yaml:"auth"`
	Review    ReviewConfig      `yaml:"review"`
	Dashboard DashboardConfig   `yaml:"dashboard"`
	Monitor   MonitorConfig     `yaml:"monitor"`

	LogLevel    string `yaml:"logLevel"`
	LogEncoding string `yaml:"logEncoding"`
}

type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            string        `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
	AllowedOrigins  []string      `yaml:"allowedOrigins"`
}

type AuthConfig struct {
	AllowList    []string `yaml:"allowList"`
	ProtectReads bool     `yaml:"protectReads"`
}

type ReviewConfig struct {
	AtomicApproval bool `yaml:"atomicApproval"`
	FeedBuffer     int  `yaml:"feedBuffer"`
}

type DashboardConfig struct {
	RecentLimit int `yaml:"recentLimit"`
}

type MonitorConfig struct {
	Interval time.Duration `yaml:"interval"`
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.shutdownTimeout", 10*time.Second)
	viper.SetDefault("server.allowedOrigins", []string{})

	viper.SetDefault("database.host", "")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.user", "")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.name", "")
	viper.SetDefault("database.sslMode", "require")
	viper.SetDefault("database.maxOpenConns", 10)
	viper.SetDefault("database.connTimeout", 5*time.Second)

	viper.SetDefault("privy.baseURL", auth.DefaultPrivyBaseURL)
	viper.SetDefault("privy.appID", "")
	viper.SetDefault("privy.timeout", 10*time.Second)
	viper.SetDefault("privy.cacheTTL", time.Duration(0))

	viper.SetDefault("auth.allowList", []string{})
	viper.SetDefault("auth.protectReads", false)

	viper.SetDefault("review.atomicApproval", false)
	viper.SetDefault("review.feedBuffer", 16)

	viper.SetDefault("dashboard.recentLimit", 10)
	viper.SetDefault("monitor.interval", 30*time.Second)

	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logEncoding", "json")
}

func LoadConfig() (*Config, error) {
	// .env is optional; real deployments set APP_* directly.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	viper.SetConfigName(configName)
	viper.AddConfigPath(configPath)
	viper.SetConfigType(configFormat)

	viper.AutomaticEnv()
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
