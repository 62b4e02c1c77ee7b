// File: sokohub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sokohub/config"
	"sokohub/cron"
	"sokohub/database"
	businessRepo "sokohub/database/repository/business"
	postRepo "sokohub/database/repository/post"
	tagRepo "sokohub/database/repository/tag"
	"sokohub/handlers"
	"sokohub/middleware"
	"sokohub/routes"
	"sokohub/services/content"
	"sokohub/services/directory"
	"sokohub/services/media"
	"sokohub/services/tags"
	"sokohub/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	mediaService, err := media.NewGCSService(
		config.AppConfig.ServiceAccountFile,
		config.AppConfig.StorageBucket,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize media storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bizRepo := businessRepo.NewMongoBusinessRepo()
	pstRepo := postRepo.NewMongoPostRepo()
	businessTagRepo := tagRepo.NewMongoTagRepo("business_tags")
	postTagRepo := tagRepo.NewMongoTagRepo("post_tags")

	// services.
	directoryService := &directory.DefaultDirectoryService{
		Repo:  bizRepo,
		Media: mediaService,
		Cache: utils.GetCacheClient(),
	}
	contentService := &content.DefaultContentService{
		Repo:  pstRepo,
		Media: mediaService,
		Cache: utils.GetCacheClient(),
	}
	businessTagService := &tags.DefaultTagService{Repo: businessTagRepo}
	postTagService := &tags.DefaultTagService{Repo: postTagRepo}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Business:     handlers.NewBusinessHandler(directoryService),
		Post:         handlers.NewPostHandler(contentService),
		BusinessTags: handlers.NewTagHandler(businessTagService),
		PostTags:     handlers.NewTagHandler(postTagService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background reconciliation of orphaned media folders.
	cron.InitOrphanSweeper(&cron.OrphanSweeper{
		Media:      mediaService,
		Businesses: bizRepo,
		Posts:      pstRepo,
	})

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
