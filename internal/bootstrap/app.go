package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-importer/internal/drafts"
	"resume-importer/internal/extract"
	"resume-importer/internal/importer"
	"resume-importer/internal/imports"
	"resume-importer/internal/ocr"
	"resume-importer/internal/shared/config"
	"resume-importer/internal/shared/server"
	"resume-importer/internal/shared/storage/db"
	"resume-importer/internal/shared/storage/object"
	localstore "resume-importer/internal/shared/storage/object/local"
	s3store "resume-importer/internal/shared/storage/object/s3"
	"resume-importer/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config         config.Config
	Logger         *slog.Logger
	Router         *gin.Engine
	DB             *sql.DB
	Store          object.ObjectStore
	Importer       *importer.Coordinator
	DraftsService  *drafts.Service
	ImportsService *imports.Service
}

// Build prepares shared dependencies and the HTTP router.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	logger := telemetry.NewJSONLogger("resume-importer", cfg.LogLevel)
	telemetry.SetLogger(logger)

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:   cfg,
		Logger:   logger,
		DB:       sqlDB,
		Store:    store,
		Importer: NewCoordinator(cfg, logger),
	}

	var (
		draftRepo  drafts.Repo
		importRepo imports.Repo
	)
	if sqlDB != nil {
		draftRepo = &drafts.PGRepo{DB: sqlDB}
		importRepo = &imports.PGRepo{DB: sqlDB}
	} else {
		draftRepo = drafts.NewMemoryRepo()
		importRepo = imports.NewMemoryRepo()
	}

	app.DraftsService = drafts.NewService(draftRepo)
	app.ImportsService = &imports.Service{
		Importer: app.Importer,
		Drafts:   app.DraftsService,
		Store:    store,
		Repo:     importRepo,
		Logger:   logger,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config: cfg,
		Handlers: []server.RouteRegistrar{
			drafts.NewHandler(app.DraftsService),
			imports.NewHandler(app.ImportsService, cfg.MaxUploadBytes(), cfg.ImportMaxFiles),
		},
	})
	return app, nil
}

// NewCoordinator wires the import pipeline with the Tesseract OCR provider.
func NewCoordinator(cfg config.Config, logger *slog.Logger) *importer.Coordinator {
	provider := ocr.NewTesseract(ocr.Config{
		Binary:      cfg.OCRTesseractBin,
		Lang:        cfg.OCRLang,
		TessdataDir: cfg.OCRTessdataDir,
		PSM:         cfg.OCRPSM,
	}, logger)
	adapters := extract.NewAdapters(provider, cfg.OCRLang)
	return importer.New(adapters, nil, logger, cfg.ImportConcurrency)
}

// Close releases resources held by the app.
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Info("bootstrap.memory_repos", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_repos", map[string]any{"reason": "database connect failed", "error": err.Error()})
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	case "none":
		return nil, nil
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
