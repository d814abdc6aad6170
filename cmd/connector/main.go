package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	app "github.com/cermati/iamx-redash/internal/application/account"
	"github.com/cermati/iamx-redash/internal/bootstrap"
	"github.com/cermati/iamx-redash/internal/config"
	domain "github.com/cermati/iamx-redash/internal/domain/account"
	"github.com/cermati/iamx-redash/internal/infrastructure/redash"
	"github.com/cermati/iamx-redash/internal/infrastructure/repository"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	directory, err := redash.NewClient(redash.Config{
		BaseURL:  cfg.Redash.BaseURI,
		Email:    cfg.Redash.Email,
		Password: cfg.Redash.Password,
		Timeout:  cfg.Redash.Timeout(),
		TLS:      tlsConfig(cfg.Redash.TLS),
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create redash client")
	}

	var audit domain.AuditRecorder = app.NopAuditRecorder{}
	var snapshots domain.SnapshotStore

	if cfg.DatabaseURL != "" {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
		if err != nil {
			logrus.WithError(err).Fatal("failed to connect database")
		}
		audit = repository.NewAuditLogRepository(db)

		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logrus.WithError(err).Fatal("failed to create pgx pool")
		}
		defer pool.Close()
		snapshots = repository.NewUserSnapshotRepository(pool)
	} else {
		logrus.Warn("no database configured; audit log and snapshots disabled")
	}

	server := bootstrap.NewHTTPServer(directory, audit, snapshots, app.GroupCatalogConfig{
		DefaultGroup:      cfg.Groups.Default,
		Excluded:          cfg.Groups.Excluded,
		FullCatalogOwners: cfg.Groups.FullCatalogOwners,
	})

	go func() {
		if err := server.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logrus.WithError(err).Fatal("graceful shutdown failed")
	}
}

func tlsConfig(tls *config.TLSConfig) *redash.TLSConfig {
	if tls == nil {
		return nil
	}
	return &redash.TLSConfig{
		CertFile: tls.Cert,
		KeyFile:  tls.Key,
		CAFile:   tls.CA,
	}
}
