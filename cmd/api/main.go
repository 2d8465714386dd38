package main

import (
	"context"
	"log"

	"github.com/Srilaxmigavvalapally/AI-Personal-Health-Manager/config"
	"github.com/Srilaxmigavvalapally/AI-Personal-Health-Manager/routes"
	"github.com/Srilaxmigavvalapally/AI-Personal-Health-Manager/utils"
)

func main() {
	cfg := config.Load()

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	var store utils.ObjectStore
	if s3, err := utils.NewS3Store(context.Background(), cfg.S3Bucket, cfg.S3Region); err != nil {
		log.Printf("document uploads disabled: %v", err)
	} else {
		store = s3
	}

	r := routes.SetupRouter(db, cfg, store)
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
