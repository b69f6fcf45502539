package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "smartresume-backend/internal/auth"
	"smartresume-backend/internal/generations"
	"smartresume-backend/internal/llm"
	"smartresume-backend/internal/llm/gemini"
	"smartresume-backend/internal/models"
	"smartresume-backend/internal/profiles"
	"smartresume-backend/internal/shared/config"
	"smartresume-backend/internal/shared/metrics"
	"smartresume-backend/internal/shared/server/middleware"
	"smartresume-backend/internal/shared/server/respond"
	"smartresume-backend/internal/shared/storage/db"
	"smartresume-backend/internal/shared/storage/object"
	localstore "smartresume-backend/internal/shared/storage/object/local"
	s3store "smartresume-backend/internal/shared/storage/object/s3"
)

const generateRateGroup = "GENERATE"

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(cfg.Env),
	)

	store := newObjectStore(cfg)
	sqlDB := connectDatabase(cfg)

	var generationRepo generations.Repo
	if sqlDB != nil {
		generationRepo = &generations.PGRepo{DB: sqlDB}
	} else {
		generationRepo = generations.NewMemoryRepo()
	}

	llmClient := newLLMClient(cfg)
	generationSvc := generations.NewService(generationRepo, store, llmClient, cfg.GeminiModel)
	generationHandler := &generations.Handler{Service: generationSvc, Store: store}
	catalog := models.NewCatalog(llmClient)
	googleAuthSvc := googleauth.NewGoogleService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.UIRedirectURL)

	generateLimit := middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			generateRateGroup: {Rate: 0.2, Burst: 3},
		},
		DefaultGroup: generateRateGroup,
	})

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	googleAuthSvc.RegisterRoutes(api)
	registerMeRoutes(api)
	profiles.RegisterRoutes(api)
	models.RegisterRoutes(api, catalog)
	generationHandler.RegisterRoutes(api, generateLimit)

	return r
}

func newObjectStore(cfg config.Config) object.ObjectStore {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3store.New(context.Background(), cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err == nil {
			return store
		}
		log.Printf("failed to initialize s3 store, falling back to local: %v", err)
	}
	return localstore.New(cfg.LocalStoreDir)
}

func connectDatabase(cfg config.Config) *sql.DB {
	if cfg.DatabaseURL == "" {
		return nil
	}
	conn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		log.Printf("failed to connect database, falling back to memory: %v", err)
		return nil
	}
	if err := db.RunMigrations(context.Background(), conn); err != nil {
		log.Printf("failed to run migrations, falling back to memory: %v", err)
		return nil
	}
	return conn
}

func newLLMClient(cfg config.Config) llm.Client {
	if cfg.GeminiAPIKey == "" {
		log.Printf("GEMINI_API_KEY not set, resume generation disabled")
		return llm.PlaceholderClient{}
	}
	client, err := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiBaseURL)
	if err != nil {
		log.Printf("failed to initialize gemini client: %v", err)
		return llm.PlaceholderClient{}
	}
	return client
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
