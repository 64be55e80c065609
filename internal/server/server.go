package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/smartinvest/apiserver/config"
	"github.com/smartinvest/apiserver/internal/db"
	"github.com/smartinvest/apiserver/internal/handlers"
	"github.com/smartinvest/apiserver/internal/model"
	"github.com/smartinvest/apiserver/internal/mq"
	"github.com/smartinvest/apiserver/internal/predlog"
	"github.com/smartinvest/apiserver/internal/services"
	"github.com/smartinvest/apiserver/internal/storage"
	"github.com/smartinvest/apiserver/internal/store"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
	events     mq.Publisher
}

// New constructs a Server: loads the model artifacts, selects the user
// store and event broker backends, seeds the admin account and wires the
// routes.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	jwtSecret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if jwtSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	userRepo, dbConn, err := newUserRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}

	userService := services.NewUserService(userRepo)
	if err := userService.EnsureAdmin(ctx); err != nil {
		closeDB(dbConn)
		return nil, fmt.Errorf("seed admin account: %w", err)
	}

	artifactStore, err := storage.NewFromConfig(ctx, cfg)
	if err != nil {
		closeDB(dbConn)
		return nil, fmt.Errorf("init artifact storage: %w", err)
	}
	artifacts, err := model.LoadArtifacts(ctx, artifactStore)
	if err != nil {
		closeDB(dbConn)
		return nil, fmt.Errorf("load model artifacts: %w", err)
	}

	assembler := model.NewFeatureAssembler(artifacts.ColumnOrder, &artifacts.Encoder)
	classifier := model.NewRiskClassifier(artifacts)

	events, err := mq.NewFromConfig(ctx, cfg)
	if err != nil {
		closeDB(dbConn)
		return nil, fmt.Errorf("init event broker: %w", err)
	}

	predictionLog := predlog.NewLog(cfg.PredictionLogPath)
	predictionService := services.NewPredictionService(assembler, classifier, predictionLog, events, cfg.MQ.Channel)

	authMiddleware := handlers.RequireAuth(jwtSecret)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Get("/healthz", handlers.Healthz)
	router.Get("/", handlers.Home)
	router.With(authMiddleware).Get("/about", handlers.About)
	router.Route("/auth", func(r chi.Router) {
		handlers.AuthRouter(r, userService, jwtSecret)
	})
	router.Route("/predict", func(r chi.Router) {
		handlers.PredictRouter(r, predictionService, authMiddleware)
	})
	router.Route("/records", func(r chi.Router) {
		handlers.RecordsRouter(r, predictionService, authMiddleware)
	})

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
		events:     events,
	}, nil
}

func newUserRepository(ctx context.Context, cfg config.Config) (services.UserRepository, *sql.DB, error) {
	switch cfg.UserStore {
	case config.UserStoreMemory, "":
		return store.NewMemoryUserRepository(), nil, nil
	case config.UserStorePostgres:
		dbConn, err := db.Open(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return store.NewPostgresUserRepository(dbConn), dbConn, nil
	default:
		return nil, nil, fmt.Errorf("unknown user store %q", cfg.UserStore)
	}
}

func closeDB(dbConn *sql.DB) {
	if dbConn != nil {
		_ = dbConn.Close()
	}
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.events != nil {
		_ = s.events.Close()
	}
	if s.db != nil {
		_ = s.db.Close()
	}
	return s.httpServer.Close()
}
