// entry point of the flag composer service
package main

import (
	"github.com/ds124wfegd/flagcomposer/config"
	"github.com/ds124wfegd/flagcomposer/internal/appServer"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(new(logrus.JSONFormatter))

	viperInstance, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Cannot load config. Error: {%s}", err.Error())
	}

	cfg, err := config.ParseConfig(viperInstance)
	if err != nil {
		logrus.Fatalf("Cannot parse config. Error: {%s}", err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"version":   cfg.Server.AppVersion,
		"uploads":   cfg.Storage.UploadsDir,
		"processed": cfg.Storage.ProcessedDir,
		"templates": cfg.Storage.TemplatesDir,
	}).Info("Config loaded")

	appServer.NewServer(cfg)
}
