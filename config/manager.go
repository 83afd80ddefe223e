package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

const (
	EnvironmentTypeLocal = "local"

	defaultSessionTTLHours = 12
)

var GlobalConfig IConfigureManager

type IConfigureManager interface {
	GetWebConfig() WebConfig
	GetMysqlDBConfig() MysqlDBConfig
	GetSessionConfig() SessionConfig
	GetSeedConfig() SeedConfig
	GetLanguageConfig() LanguageConfig
	GetLogstashConfig() LogstashConfig
}

type configureManager struct {
	Web      WebConfig
	Mysql    MysqlDBConfig
	Session  SessionConfig
	Seed     SeedConfig
	Language LanguageConfig
	Logstash LogstashConfig
}

func NewConfigureManager() IConfigureManager {
	configPath := "./"

	if os.Getenv("GO_VAULT_PATH") != "" {
		configPath = os.Getenv("GO_VAULT_PATH")
	}

	viper.SetConfigFile(fmt.Sprintf("%sconfig-%s.json", configPath, os.Getenv("golang_env")))
	viper.SetConfigType("json")

	_ = viper.ReadInConfig()

	GlobalConfig = &configureManager{
		Web:      loadWebConfig(),
		Language: loadLanguageConfig(),
		Mysql:    loadMysqlDBConfig(),
		Session:  loadSessionConfig(),
		Seed:     loadSeedConfig(),
		Logstash: loadLogstashConfig(),
	}

	return GlobalConfig
}

func loadWebConfig() WebConfig {
	return WebConfig{
		AppName: viper.GetString("APP_NAME"),
		Port:    viper.GetString("PORT"),
		Env:     viper.GetString("ENV"),
		Version: viper.GetString("VERSION"),
	}
}

func loadLanguageConfig() LanguageConfig {
	return LanguageConfig{
		Default: language.English,
		Languages: []language.Tag{
			language.English,
		},
	}
}

func loadMysqlDBConfig() MysqlDBConfig {
	return MysqlDBConfig{
		URL: viper.GetString("MYSQL_URL"),
	}
}

func loadSessionConfig() SessionConfig {
	ttl := viper.GetInt("SESSION_TTL_HOURS")
	if ttl <= 0 {
		ttl = defaultSessionTTLHours
	}

	return SessionConfig{
		Secret:   viper.GetString("SESSION_SECRET"),
		TTLHours: ttl,
	}
}

func loadSeedConfig() SeedConfig {
	return SeedConfig{
		UsersFile:       viper.GetString("SEED_USERS_FILE"),
		DefaultPassword: viper.GetString("SEED_DEFAULT_PASSWORD"),
	}
}

func loadLogstashConfig() LogstashConfig {
	return LogstashConfig{
		Host: viper.GetString("LOGSTASH_HOST"),
		Port: viper.GetInt("LOGSTASH_PORT"),
	}
}

func (c *configureManager) GetWebConfig() WebConfig {
	return c.Web
}

func (c *configureManager) GetLanguageConfig() LanguageConfig {
	return c.Language
}

func (c *configureManager) GetMysqlDBConfig() MysqlDBConfig {
	return c.Mysql
}

func (c *configureManager) GetSessionConfig() SessionConfig {
	return c.Session
}

func (c *configureManager) GetSeedConfig() SeedConfig {
	return c.Seed
}

func (c *configureManager) GetLogstashConfig() LogstashConfig {
	return c.Logstash
}
