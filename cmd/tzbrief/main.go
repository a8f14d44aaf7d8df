package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/common/webapi"
	"go.uber.org/zap"

	"github.com/astrumlab/tzbrief/internal/config"
	"github.com/astrumlab/tzbrief/internal/db"
	"github.com/astrumlab/tzbrief/internal/filestore"
	"github.com/astrumlab/tzbrief/internal/gateway"
	"github.com/astrumlab/tzbrief/internal/handler"
	"github.com/astrumlab/tzbrief/internal/middleware"
	"github.com/astrumlab/tzbrief/internal/notify"
	"github.com/astrumlab/tzbrief/internal/repo"
	"github.com/astrumlab/tzbrief/internal/service"
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "tzbrief",
		Short: "tzbrief backend server",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run tzbrief server",
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger.Init(
				cfg.LogConfig.File,
				cfg.LogConfig.Level,
				int(cfg.LogConfig.FileCount),
				int(cfg.LogConfig.FileSize),
				int(cfg.LogConfig.KeepDays),
				cfg.LogConfig.Console,
			)
			return runServer(cfg)
		},
	}

	runCmd.Flags().StringVar(&configPath, "config", "", "path to config.json (optional, defaults run without external services)")
	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func runServer(cfg *config.Config) error {
	log := logutil.GetLogger(context.Background())
	log.Info("starting server",
		zap.Int("port", cfg.Port),
		zap.String("env", cfg.Env),
		zap.Bool("database_configured", cfg.Database.Configured()),
		zap.String("file_store", cfg.FileStore.Type),
	)

	var docRepo *repo.DocumentRepo
	if cfg.Database.Configured() {
		conn, err := db.Open(cfg.Database)
		if err != nil {
			log.Warn("database unavailable, serving seed data", zap.Error(err))
		} else {
			if err := db.ApplyMigrations(conn); err != nil {
				return fmt.Errorf("migrations: %w", err)
			}
			docRepo = repo.NewDocumentRepo(conn)
		}
	} else {
		log.Warn("no database configured, serving seed data")
	}

	store, err := filestore.New(cfg.FileStore)
	if err != nil {
		return fmt.Errorf("init file store: %w", err)
	}
	if store == nil {
		log.Warn("no blob store configured, uploads return placeholder urls")
	}

	var notifier notify.Notifier = notify.Mock{}
	if cfg.Telegram.BotToken != "" {
		notifier = notify.NewTelegram(cfg.Telegram.BotToken, cfg.LinkBase)
	} else {
		log.Warn("no bot token configured, notifications are simulated")
	}

	gw := gateway.New(docRepo, gateway.Seed())
	documentService := service.NewDocumentService(gw)
	sendService := service.NewSendService(documentService, notifier)

	deps := handler.RouterDeps{
		Documents:  handler.NewDocumentHandler(documentService),
		Upload:     handler.NewUploadHandler(store),
		Send:       handler.NewSendHandler(sendService),
		Production: cfg.Production(),
	}

	engine, err := webapi.NewEngine(
		"/api",
		fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.CORS(nil),
			middleware.RequestID(),
			gzip.Gzip(gzip.DefaultCompression),
		),
	)
	if err != nil {
		return fmt.Errorf("init web engine: %w", err)
	}
	log.Info("http server listening", zap.String("addr", fmt.Sprintf("0.0.0.0:%d", cfg.Port)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := engine.Run(); err != nil && err != http.ErrServerClosed {
			logutil.GetLogger(context.Background()).Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("server stopping...")
	return nil
}
