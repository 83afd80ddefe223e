package config

import (
	"golang.org/x/text/language"
)

const (
	productionEnv = "production"
)

type WebConfig struct {
	AppName string
	Port    string
	Env     string
	Version string
}

type LanguageConfig struct {
	Default   language.Tag
	Languages []language.Tag
}

type MysqlDBConfig struct {
	URL string
}

type SessionConfig struct {
	Secret   string
	TTLHours int
}

type SeedConfig struct {
	UsersFile       string
	DefaultPassword string
}

type LogstashConfig struct {
	Host string
	Port int
}

func (w WebConfig) IsProductionEnv() bool {
	return w.Env == productionEnv
}
