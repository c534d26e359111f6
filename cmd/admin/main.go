package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"byaura/internal/console"
	"byaura/internal/database"
	"byaura/pkg/factory"
)

func main() {
	appFactory, err := factory.NewFactory()
	if err != nil {
		fmt.Printf("Factory oluşturulamadı: %v\n", err)
		os.Exit(1)
	}

	log := appFactory.GetLogger()
	cfg := appFactory.GetConfig()
	db := appFactory.GetDB()

	defer db.Close()

	log.Info("Uygulama başlatılıyor", map[string]interface{}{"env": cfg.AppEnv, "api": cfg.API.BaseURL})

	migrationService := database.NewMigrationService(db, log)
	if err := migrationService.RunMigrations(); err != nil {
		log.Fatal("Migrationlar uygulanamadı", map[string]interface{}{"error": err.Error()})
	}

	if err := appFactory.GetSessionStore().Restore(); err != nil {
		log.Warn("Oturum geri yüklenemedi", map[string]interface{}{"error": err.Error()})
	}

	if cfg.Metrics.Port != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())

			log.Info("Metrik sunucusu başlatılıyor", map[string]interface{}{"port": cfg.Metrics.Port})
			if err := http.ListenAndServe(":"+cfg.Metrics.Port, mux); err != nil && err != http.ErrServerClosed {
				log.Error("Metrik sunucusu başlatılamadı", map[string]interface{}{"error": err.Error()})
			}
		}()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Info("Kapatma sinyali alındı", map[string]interface{}{})
		cancel()
	}()

	ui := console.New(appFactory, os.Stdin, os.Stdout)
	if err := ui.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("Konsol beklenmedik şekilde sonlandı", map[string]interface{}{"error": err.Error()})
	}

	log.Info("Uygulama kapatıldı", map[string]interface{}{})
}
