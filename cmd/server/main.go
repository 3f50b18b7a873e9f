package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"fruitstars/internal/auth"
	"fruitstars/internal/config"
	"fruitstars/internal/domain"
	"fruitstars/internal/domain/models"
	"fruitstars/internal/domain/repositories"
	"fruitstars/internal/handler"
	"fruitstars/internal/labels"
	"fruitstars/internal/middleware"
	"fruitstars/internal/repository/memory"
	"fruitstars/internal/repository/postgres"
	"fruitstars/internal/seed"
	"fruitstars/internal/service"
	"fruitstars/internal/service/suggest"
	"fruitstars/internal/tree"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
	)

	// Create token verifier
	var verifier auth.Verifier
	if cfg.JWKSURL != "" {
		v, err := auth.NewJWKSVerifier(cfg.JWKSURL, logger)
		if err != nil {
			log.Fatalf("Failed to create token verifier: %v", err)
		}
		verifier = v
	} else {
		if cfg.Environment == "prod" {
			log.Fatal("AUTH_JWKS_URL is required in production")
		}
		verifier = auth.NewInsecureVerifier(logger)
	}
	defer verifier.Close()

	// Create repository: postgres when a database is configured, otherwise
	// in-memory only
	ctx := context.Background()
	var repo repositories.TreeRepository
	if cfg.DatabaseURL != "" {
		pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to create connection pool: %v", err)
		}
		defer pool.Close()

		logger.Info("database connected",
			"max_conns", 25,
			"min_conns", 5,
		)

		tables := postgres.NewTableNames(cfg.TablePrefix)
		if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to ensure schema: %v", err)
		}

		repo = postgres.NewTreeRepository(&postgres.RepositoryConfig{
			Pool:   pool,
			Tables: tables,
			Logger: logger,
		})
	} else {
		logger.Info("no database configured, running in-memory only")
		repo = memory.NewTreeRepository()
	}

	// Load the label catalog
	catalog := labels.Default()
	if cfg.LabelsFile != "" {
		c, err := labels.LoadFile(cfg.LabelsFile)
		if err != nil {
			log.Fatalf("Failed to load label catalog: %v", err)
		}
		catalog = c
		logger.Info("label catalog loaded", "path", cfg.LabelsFile)
	}

	// Load the initial tree: persisted snapshot first, then seed file, then
	// the builtin company structure
	initial, err := loadInitialTree(ctx, cfg, repo, logger)
	if err != nil {
		log.Fatalf("Failed to load initial tree: %v", err)
	}

	store := tree.NewStore(initial)
	logger.Info("tree loaded",
		"folders", initial.FolderCount(),
		"files", initial.FileCount(),
	)

	// Create services
	authorizer := service.NewRoleAuthorizer()
	treeService := service.NewTreeService(store, repo, catalog, logger)

	var provider suggest.Provider
	if cfg.GeminiAPIKey != "" {
		p, err := suggest.NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.SuggestionModel, logger)
		if err != nil {
			log.Fatalf("Failed to create suggestion provider: %v", err)
		}
		provider = p
		logger.Info("suggestion provider ready", "model", cfg.SuggestionModel)
	} else {
		provider = suggest.NewHeuristicProvider()
		logger.Info("no Gemini key configured, using heuristic suggestions")
	}
	suggestService := suggest.NewService(provider, catalog, logger)

	// Create handlers
	treeHandler := handler.NewTreeHandler(treeService, authorizer, logger)
	folderHandler := handler.NewFolderHandler(treeService, authorizer, logger)
	fileHandler := handler.NewFileHandler(treeService, authorizer, logger)
	labelHandler := handler.NewLabelHandler(treeService, authorizer, logger)
	suggestionHandler := handler.NewSuggestionHandler(treeService, suggestService, authorizer, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.HealthCheck)

	// Tree and search
	mux.HandleFunc("GET /api/tree", treeHandler.GetTree)
	mux.HandleFunc("GET /api/search", treeHandler.Search)

	// Folder routes
	mux.HandleFunc("POST /api/folders", folderHandler.CreateFolder)
	mux.HandleFunc("GET /api/folders/destinations", folderHandler.ListDestinations) // Must come before {id} route
	mux.HandleFunc("GET /api/folders/{id}", folderHandler.GetFolder)
	mux.HandleFunc("GET /api/folders/{id}/labels", folderHandler.GetFolderLabels)
	mux.HandleFunc("PATCH /api/folders/{id}", folderHandler.UpdateFolder)
	mux.HandleFunc("DELETE /api/folders/{id}", folderHandler.DeleteFolder)

	// File routes
	mux.HandleFunc("POST /api/files", fileHandler.AddFile)
	mux.HandleFunc("GET /api/files/expiring", fileHandler.ListExpiring) // Must come before {id} route
	mux.HandleFunc("DELETE /api/files/{id}", fileHandler.DeleteFile)
	mux.HandleFunc("POST /api/files/{id}/move", fileHandler.MoveFile)
	mux.HandleFunc("POST /api/files/{id}/labels", fileHandler.AddLabel)

	// Label catalog
	mux.HandleFunc("GET /api/labels", labelHandler.ListLabels)

	// Placement suggestions
	mux.HandleFunc("POST /api/suggestions", suggestionHandler.SuggestPlacement)

	// Build middleware chain
	var httpHandler http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → RequestLog → Recovery → Auth → Routes
	httpHandler = middleware.AuthMiddleware(verifier, logger)(httpHandler)
	httpHandler = middleware.Recovery(logger)(httpHandler)
	httpHandler = middleware.RequestLog(logger)(httpHandler)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	httpHandler = corsHandler.Handler(httpHandler)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// loadInitialTree resolves the tree the store starts from. A previously
// persisted snapshot wins; a fresh deployment falls back to the seed file or
// the builtin company structure, which is then written through so the next
// start finds it.
func loadInitialTree(
	ctx context.Context,
	cfg *config.Config,
	repo repositories.TreeRepository,
	logger *slog.Logger,
) (*models.Folder, error) {
	root, err := repo.LoadTree(ctx)
	if err == nil {
		logger.Info("tree restored from repository")
		return root, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if cfg.SeedFile != "" {
		root, err = seed.LoadTree(cfg.SeedFile)
		if err != nil {
			return nil, err
		}
		logger.Info("tree seeded from file", "path", cfg.SeedFile)
	} else {
		root = seed.DefaultTree(time.Now())
		logger.Info("tree seeded from builtin structure")
	}

	if err := repo.SaveTree(ctx, root); err != nil {
		return nil, err
	}
	return root, nil
}
