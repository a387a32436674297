package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"placement-backend/internal/analysis"
	"placement-backend/internal/shared/config"
	"placement-backend/internal/shared/server/middleware"
	"placement-backend/internal/shared/server/respond"
	"placement-backend/internal/shared/storage/db"
	"placement-backend/internal/shared/storage/kv"
	filekv "placement-backend/internal/shared/storage/kv/file"
	memorykv "placement-backend/internal/shared/storage/kv/memory"
	"placement-backend/internal/shared/storage/kv/pgkv"
	"placement-backend/internal/shared/storage/kv/rediskv"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"ANALYZE": {Rate: 1, Burst: 5},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost {
					return "ANALYZE"
				}
				return ""
			},
		}),
	)

	historyKey := cfg.HistoryKey
	if historyKey == "" {
		historyKey = analysis.DefaultHistoryKey
	}
	store := analysis.NewStore(newBackend(cfg), historyKey)
	svc := &analysis.Service{Store: store}
	handler := analysis.NewHandler(svc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	handler.RegisterRoutes(api)

	return r
}

// newBackend selects the key-value backend from configuration. Backend
// failures fall back to the in-memory store so the API stays up.
func newBackend(cfg config.Config) kv.Store {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return memorykv.New()
	case config.BackendRedis:
		store, err := rediskv.New(context.Background(), rediskv.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			log.Printf("failed to connect redis, falling back to memory: %v", err)
			return memorykv.New()
		}
		return store
	case config.BackendPostgres:
		sqlDB, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
			return memorykv.New()
		}
		if err := db.RunMigrations(context.Background(), sqlDB); err != nil {
			log.Printf("failed to run migrations, falling back to memory: %v", err)
			return memorykv.New()
		}
		return &pgkv.Store{DB: sqlDB}
	default:
		return filekv.New(cfg.DataDir)
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
