package main

import (
	"go.uber.org/zap"

	"github.com/Yukirp/NutriEmp/config"
	"github.com/Yukirp/NutriEmp/logger"
	"github.com/Yukirp/NutriEmp/routes"
	"github.com/Yukirp/NutriEmp/storage"
)

func main() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	log := logger.L()
	cfg := config.Load(log)

	var store storage.Storage
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		gs, err := storage.NewGormStorage(cfg.DB.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database", zap.Error(err))
		}
		store = gs
	default:
		store = storage.NewMemoryStorage()
	}
	log.Info("Storage ready", zap.String("backend", cfg.StorageBackend))

	r := routes.SetupRouter(store, log, cfg.AllowedOrigins)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server stopped", zap.Error(err))
	}
}
