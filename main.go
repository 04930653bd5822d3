package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tigerwc/clubsite/handlers"
	"github.com/tigerwc/clubsite/internal/admins"
	"github.com/tigerwc/clubsite/internal/config"
	contenthandler "github.com/tigerwc/clubsite/internal/content/handler"
	"github.com/tigerwc/clubsite/internal/content/repository"
	"github.com/tigerwc/clubsite/internal/content/service"
	"github.com/tigerwc/clubsite/internal/database"
	"github.com/tigerwc/clubsite/internal/render"
	"github.com/tigerwc/clubsite/internal/sessions"
	"github.com/tigerwc/clubsite/internal/storage"
	"github.com/tigerwc/clubsite/internal/tokens"
	"github.com/tigerwc/clubsite/pkg/logger"
	"github.com/tigerwc/clubsite/pkg/metrics"
	"github.com/tigerwc/clubsite/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging level controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v minio=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.MinIO.Endpoint != "")

	r := gin.New()

	// Lightweight CORS middleware so the panel frontend can be served from a
	// different origin during development.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	r.Use(gin.Logger(), gin.Recovery())

	// Connect to Redis early so the rate limiter and token blacklist can use
	// it when configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := redisClient.Ping(context.Background()).Err(); err == nil {
			sessions.SetBlacklistClient(redisClient)
			logger.Infof("connected to Redis at %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		} else {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		}
	}

	// Global rate limiter (per-user when authenticated, otherwise per-IP);
	// the sign-in endpoint gets its own tighter limiter further down.
	var loginLimit gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
		if cfg.RateLimit.UseRedis && redisClient != nil {
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, "api", cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
			loginLimit = middleware.RedisRateLimitMiddleware(redisClient, "login", cfg.RateLimit.LoginRPS, cfg.RateLimit.LoginBurst, win)
		} else {
			r.Use(middleware.RateLimitMiddleware("api", cfg.RateLimit.RPS, cfg.RateLimit.Burst))
			loginLimit = middleware.RateLimitMiddleware("login", cfg.RateLimit.LoginRPS, cfg.RateLimit.LoginBurst)
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// Connect to MongoDB with retry/backoff to tolerate startup races
	ctx := context.Background()
	var mongoClient *mongo.Client
	if cfg.MongoDB.URI != "" {
		const maxAttempts = 5
		backoff := time.Second
		var errConn error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			mongoClient, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
			if errConn == nil {
				break
			}
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
			if attempt < maxAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
		if errConn != nil {
			logger.Warnf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
			mongoClient = nil
		} else {
			defer func() { _ = mongoClient.Disconnect(ctx) }()
		}
	}

	// Content store: Mongo-backed when available, otherwise an in-memory
	// store so the public site still serves (with empty placeholders).
	var store repository.Store
	var adminsSvc *admins.Service
	if mongoClient != nil {
		db := mongoClient.Database(cfg.MongoDB.Database)
		store = repository.NewMongoStore(db)
		adminsSvc = admins.NewService(admins.NewMongoRepository(db.Collection("admins")))
	} else {
		logger.Warnf("no MongoDB: falling back to in-memory content store, edits will not persist")
		store = repository.NewMemoryStore()
		adminsSvc = admins.NewService(admins.NewMemoryRepository())
	}
	contentSvc := service.NewService(store)

	// Sessions: prefer Redis (fast, self-expiring), fall back to Mongo
	var sessionsSvc *sessions.Service
	if redisClient != nil {
		sessionsSvc = sessions.NewService(sessions.NewRedisRepository(redisClient, "session:"))
		logger.Infof("using Redis for session storage")
	} else if mongoClient != nil {
		col := mongoClient.Database(cfg.MongoDB.Database).Collection("sessions")
		sessionsSvc = sessions.NewService(sessions.NewMongoRepository(col))
		logger.Infof("using MongoDB for session storage")
	}

	// readiness endpoint — 200 only when critical dependencies are available
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{
			"mongo":    mongoClient != nil,
			"sessions": sessionsSvc != nil,
		}
		if !deps["mongo"] || !deps["sessions"] {
			ready = false
		}
		if cfg.Redis.Host != "" {
			deps["redis"] = redisClient != nil
			if !deps["redis"] {
				ready = false
			}
		}
		status := http.StatusOK
		state := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			state = "not_ready"
		}
		c.JSON(status, gin.H{"status": state, "deps": deps, "uptime": fmt.Sprintf("%s", time.Since(startTime))})
	})

	// Public surface: rendered page and read-only content API
	renderer := render.NewRenderer(contentSvc)
	handlers.NewPublicHandler(renderer, cfg.Server.SiteTitle).Register(r)
	contentHandler := contenthandler.NewHandler(contentSvc)
	contentHandler.RegisterPublic(r)

	// Auth + editing API
	verifier := tokens.NewVerifier(cfg)
	if sessionsSvc != nil {
		handlers.NewAuthHandler(cfg, adminsSvc, sessionsSvc).Register(r.Group("/"), loginLimit)
	} else {
		logger.Warnf("auth handlers not registered because no session store is available")
	}
	adminGroup := r.Group("/api/admin", middleware.AuthMiddleware(verifier))
	contentHandler.RegisterAdmin(adminGroup)

	// Image uploads when an object store is configured
	if cfg.MinIO.Endpoint != "" {
		objStore, err := storage.NewMinIOStorage(&cfg.MinIO)
		if err != nil {
			logger.Warnf("object storage unavailable, uploads disabled: %v", err)
		} else {
			uploads := handlers.NewUploadsHandler(objStore)
			uploads.RegisterAdmin(adminGroup)
			uploads.RegisterPublic(r)
		}
	}

	handlers.RegisterSwagger(r)

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("starting clubsite on %s (env=%s)", addr, cfg.Server.Environment)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
