package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Omoefe-bazunu/hhaven/config"
	"github.com/Omoefe-bazunu/hhaven/cron"
	"github.com/Omoefe-bazunu/hhaven/database/store"
	"github.com/Omoefe-bazunu/hhaven/handlers"
	"github.com/Omoefe-bazunu/hhaven/routes"
	"github.com/Omoefe-bazunu/hhaven/services/contact"
	"github.com/Omoefe-bazunu/hhaven/services/content"
	"github.com/Omoefe-bazunu/hhaven/services/hymnal"
	"github.com/Omoefe-bazunu/hhaven/services/i18n"
	"github.com/Omoefe-bazunu/hhaven/services/notice"
	"github.com/Omoefe-bazunu/hhaven/services/notification"
	"github.com/Omoefe-bazunu/hhaven/services/quiz"
	storagePkg "github.com/Omoefe-bazunu/hhaven/services/storage"
	"github.com/Omoefe-bazunu/hhaven/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()
	utils.FirebaseInit()

	cacheTTL := time.Duration(config.AppConfig.ContentCacheTTLMs) * time.Millisecond
	refreshWindow := time.Duration(config.AppConfig.SearchDebounceMs) * time.Millisecond

	// Media storage backend.
	var storageService storagePkg.StorageService
	var err error
	switch config.AppConfig.StorageBackend {
	case "cloudinary":
		storageService, err = utils.Cloudinary()
	default:
		storageService, err = storagePkg.NewFirebaseStorageService(
			config.AppConfig.FirebaseCredentialsFile,
			config.AppConfig.FirebaseStorageBucket,
		)
	}
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize storage service: %v", err)
	}

	// Store and services.
	docStore := store.NewFirestoreStore(utils.GetFirestoreClient())
	recentCache := content.NewRecentCache(utils.GetCacheClient(), cacheTTL)
	contentService := content.NewDefaultContentService(docStore, recentCache, cacheTTL)

	pushQueue := notification.NewQueueBroadcaster()
	defer pushQueue.Close()

	noticeService := &notice.DefaultNoticeService{
		Store: docStore,
		Push:  pushQueue,
	}
	quizService := &quiz.DefaultQuizService{Store: docStore}
	contactService := &contact.DefaultContactService{Store: docStore}
	hymnalService := hymnal.NewService(config.AppConfig.AssetsDir, cacheTTL)

	i18nTables, err := i18n.LoadTables(config.AppConfig.I18nFile)
	if err != nil {
		logger.Sugar().Warnf("main: failed to load i18n tables: %v", err)
		i18nTables = map[string]map[string]string{}
	}
	i18nService := i18n.NewService(config.AppConfig.DefaultLocale, i18nTables)

	// Background workers: push broadcasts, cache refresh, health probes.
	cron.InitNoticePushWorker(&notification.DefaultNotificationService{})
	refresher := content.StartRefresher(contentService, refreshWindow)
	defer refresher.Stop()
	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient()}, utils.GetFirestoreClient())

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	handlerBundle := &handlers.HandlerBundle{
		Store:      docStore,
		ContentSvc: contentService,
		NoticeSvc:  noticeService,
		QuizSvc:    quizService,
		ContactSvc: contactService,
		HymnalSvc:  hymnalService,
		I18nSvc:    i18nService,
		StorageSvc: storageService,
		Logger:     logger,
	}

	routes.RegisterRoutes(router, handlerBundle)

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
