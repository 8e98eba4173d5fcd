package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"mzip_go/internal/config"
	"mzip_go/internal/handler"
	"mzip_go/internal/repo"
	"mzip_go/internal/router"
	"mzip_go/internal/service"
	"mzip_go/pkg/logger"
)

func main() {
	// 설정/로거 초기화
	cfg := config.Load()
	logg := logger.New()

	// 의존성 생성
	runRepo := repo.NewRunRepoInMemory()
	if cfg.DatabaseURL != "" {
		ctx := context.Background()
		pool, err := repo.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		if err := repo.Migrate(ctx, pool); err != nil {
			log.Fatal(err)
		}
		runRepo = repo.NewRunRepoPG(pool)
	}
	encSvc, err := service.NewEncodeService(runRepo, logg)
	if err != nil {
		log.Fatal(err)
	}
	encH := handler.NewEncodeHandler(encSvc)

	// Gin 라우터 생성 및 라우팅 구성
	r := gin.Default()
	router.Register(r, router.Dependencies{
		EncodeHandler: encH,
	})

	addr := ":" + cfg.Port
	log.Printf("starting server at %s\n", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
