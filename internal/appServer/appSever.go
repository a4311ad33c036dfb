// launching the server, storage layout, kafka producer
package appServer

import (
	"context"
	"crypto/tls"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ds124wfegd/flagcomposer/config"
	"github.com/ds124wfegd/flagcomposer/internal/database"
	"github.com/ds124wfegd/flagcomposer/internal/pkg/composer"
	"github.com/ds124wfegd/flagcomposer/internal/pkg/kafka"
	"github.com/ds124wfegd/flagcomposer/internal/pkg/storage"
	"github.com/ds124wfegd/flagcomposer/internal/service"
	"github.com/ds124wfegd/flagcomposer/internal/transport"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
		ErrorLog:          log.New(logrus.StandardLogger().WriterLevel(logrus.ErrorLevel), "", 0),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// NewHandler builds the layout, the service graph and the router. The
// returned producer must be closed by the caller.
func NewHandler(cfg *config.Config) (http.Handler, kafka.Producer, error) {
	layout, err := storage.PrepareLayout(storage.Layout{
		Uploads:   cfg.Storage.UploadsDir,
		Processed: cfg.Storage.ProcessedDir,
		Templates: cfg.Storage.TemplatesDir,
	})
	if err != nil {
		return nil, nil, err
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	brokers := config.KafkaConfig{Brokers: config.GetEnv("KAFKA_BROKERS", cfg.Kafka.Brokers)}.BrokerList()
	producer := kafka.NewProducer(cfg.Kafka.Enabled, brokers, cfg.Kafka.Topic)

	flagRepo := database.NewLayoutRepository(layout)
	flagService := service.NewFlagService(flagRepo, producer, composer.NewFlagComposer(cfg.Server.MaxPixels), cfg.Storage.HeartMask)
	flagHandler := transport.NewFlagHandler(flagService)

	router := transport.InitRoutes(flagHandler, transport.RouterOptions{
		Timeout:        cfg.Server.Timeout,
		MaxUploadBytes: cfg.Server.MaxUploadBytes(),
	})
	return router, producer, nil
}

func NewServer(cfg *config.Config) {
	handler, producer, err := NewHandler(cfg)
	if err != nil {
		logrus.Fatalf("error occured while preparing storage: %s", err.Error())
	}
	defer producer.Close()

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, handler); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.WithField("port", cfg.Server.Port).Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
