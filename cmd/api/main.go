package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/treemarket/treemarket-backend/internal/config"
	"github.com/treemarket/treemarket-backend/internal/db"
	"github.com/treemarket/treemarket-backend/internal/model"
	"github.com/treemarket/treemarket-backend/internal/server"
	"github.com/treemarket/treemarket-backend/internal/storage"
)

func main() {
	_ = godotenv.Load()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	conn, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	if err := conn.AutoMigrate(
		&model.User{},
		&model.Listing{},
		&model.Bid{},
		&model.SiteSettings{},
	); err != nil {
		log.Fatalf("auto migrate error: %v", err)
	}

	var uploader storage.Uploader
	if cfg.StorageBucket != "" {
		gcsUploader, err := storage.NewGCSUploader(ctx, cfg.StorageBucket)
		if err != nil {
			log.Fatalf("storage init error: %v", err)
		}
		defer gcsUploader.Close()
		uploader = gcsUploader
	} else {
		localUploader, err := storage.NewLocalUploader(cfg.UploadDir)
		if err != nil {
			log.Fatalf("upload dir error: %v", err)
		}
		uploader = localUploader
		log.Printf("STORAGE_BUCKET not set; storing uploads under %s", cfg.UploadDir)
	}

	srv := server.New(conn, cfg, uploader)

	// Settings are initialized once here so reads never have to create.
	if err := srv.SettingsSvc.EnsureDefaults(ctx); err != nil {
		log.Fatalf("settings init error: %v", err)
	}

	addr := ":" + cfg.Port
	log.Printf("starting server on %s", addr)
	if err := srv.Start(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
