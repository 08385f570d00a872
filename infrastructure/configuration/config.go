package configuration

import (
	"fmt"
	"os"
	"strconv"

	"jarayid-admin/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App         App         `json:"app"`
	Automation  Automation  `json:"automation"`
	Dashboard   Dashboard   `json:"dashboard"`
	Video       Video       `json:"video"`
	Database    Database    `json:"database"`
	RedisClient RedisClient `json:"redisClient"`
	Logger      Logger      `json:"logger"`
	Operator    Operator    `json:"operator"`
}

type App struct {
	Port int `json:"port"`
}

// Automation points at the news-automation backend that owns bulletins,
// sources, schedulers and the video trigger.
type Automation struct {
	Host           string `json:"host"`
	TimeoutSeconds int    `json:"timeoutSeconds"`
}

// Dashboard points at the legacy admin-dashboard API serving the
// category and RSS-source catalogues.
type Dashboard struct {
	Host           string `json:"host"`
	TimeoutSeconds int    `json:"timeoutSeconds"`
}

// Video bounds the external render call; it is much slower than the
// regular CRUD traffic and gets its own deadline.
type Video struct {
	TimeoutSeconds int `json:"timeoutSeconds"`
}

type Database struct {
	Psql Db `json:"psql"`
}

type Db struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
}

type RedisClient struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	Password     string `json:"password"`
	DatabaseName string `json:"databaseName"`
	Username     string `json:"username"`
}

type Logger struct {
	Format string `json:"format"`
}

// Operator holds the fallback identity used when a request carries no
// X-Operator header.
type Operator struct {
	Default string `json:"default"`
}

var C Config

func init() {
	LoadConfig()
	initDatabase(&C)
	initApp(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initDatabase(C *Config) {
	if C.Database.Psql.Name == "" {
		C.Database.Psql.Name = os.Getenv("DB_NAME")
	}
	if C.Database.Psql.Host == "" {
		C.Database.Psql.Host = os.Getenv("DB_HOST")
	}
	if C.Database.Psql.User == "" {
		C.Database.Psql.User = os.Getenv("DB_USER")
	}
	if C.Database.Psql.Password == "" {
		C.Database.Psql.Password = os.Getenv("DB_PASSWORD")
	}
	if C.Database.Psql.Port == "" {
		C.Database.Psql.Port = os.Getenv("DB_PORT")
	}
}

func initApp(C *Config) {
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default 10001
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 10001
	}

	if v := os.Getenv("AUTOMATION_HOST"); v != "" {
		C.Automation.Host = v
	}
	if v := os.Getenv("DASHBOARD_HOST"); v != "" {
		C.Dashboard.Host = v
	}
	if C.Automation.TimeoutSeconds == 0 {
		C.Automation.TimeoutSeconds = 30
	}
	if C.Dashboard.TimeoutSeconds == 0 {
		C.Dashboard.TimeoutSeconds = 30
	}
	if C.Video.TimeoutSeconds == 0 {
		C.Video.TimeoutSeconds = 120
	}
	if v := os.Getenv("DEFAULT_OPERATOR"); v != "" {
		C.Operator.Default = v
	}
	if C.Operator.Default == "" {
		C.Operator.Default = "admin"
	}
	if C.Automation.Host == "" {
		logger.GetLogger().Warn("Automation.Host not set; provide AUTOMATION_HOST via environment or config")
	}
	if C.Dashboard.Host == "" {
		logger.GetLogger().Warn("Dashboard.Host not set; provide DASHBOARD_HOST via environment or config")
	}
}
