package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tolaram/sapkb/config"
	"github.com/tolaram/sapkb/pkg/healthcheck"
	"github.com/tolaram/sapkb/pkg/localizer"
	"github.com/tolaram/sapkb/pkg/logging"
	"github.com/tolaram/sapkb/pkg/mysqldb"
)

func main() {
	configureManager := config.NewConfigureManager()
	logger := logging.NewLogger(logging.Config{
		Service: logging.ServiceConfig{
			Env:     configureManager.GetWebConfig().Env,
			AppName: configureManager.GetWebConfig().AppName,
		},
		Logstash: &logging.LogstashConfig{
			Host: configureManager.GetLogstashConfig().Host,
			Port: configureManager.GetLogstashConfig().Port,
		},
	})

	logger.Info("starting app")

	mysqlInstance, err := mysqldb.InitMysqlDB(configureManager.GetMysqlDBConfig().URL)
	if err != nil {
		logger.Fatalf("connection: mysql %v", err)
	}

	app := initApplication(&application{
		Logger: logger,
		LanguageBundle: localizer.InitLocalizer(
			configureManager.GetLanguageConfig().Default, configureManager.GetLanguageConfig().Languages,
		),
		MysqlInstance: mysqlInstance,
	})

	go func() {
		healthcheck.InitHealthCheck()

		if serveErr := app.Listen(fmt.Sprintf(":%s", configureManager.GetWebConfig().Port)); serveErr != nil {
			logger.Fatalf("connection: web server %v", serveErr)
		}
	}()

	// Wait for gracefully shutdown (Interrupt)
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)

	<-c

	healthcheck.ServerShutdown()
	if shutdownErr := app.Shutdown(); shutdownErr != nil {
		logger.Error(shutdownErr)
	}

	if closeErr := mysqlInstance.Close(); closeErr != nil {
		logger.Error(closeErr)
	}
}
