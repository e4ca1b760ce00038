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
	"github.com/userhub/userhub/handlers"
	"github.com/userhub/userhub/internal/config"
	"github.com/userhub/userhub/internal/database"
	"github.com/userhub/userhub/internal/storage"
	"github.com/userhub/userhub/internal/users"
	"github.com/userhub/userhub/pkg/logger"
	"github.com/userhub/userhub/pkg/metrics"
	"github.com/userhub/userhub/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v minio=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.MinIO.Endpoint != "")

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple — production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Global middlewares: logging + recovery
	r.Use(gin.Logger(), gin.Recovery())

	ctx := context.Background()

	// Connect to Redis early so the rate-limiter and user cache can use it
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("Connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Optional global per-IP rate limiter
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// User repository: Mongo when configured, in-memory fallback otherwise
	var repo users.UserRepository
	if cfg.MongoDB.URI != "" {
		client, errConn := database.ConnectMongoWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, 5)
		if errConn != nil {
			logger.Warnf("could not connect to MongoDB: %v — using in-memory user store", errConn)
		} else {
			defer func() { _ = client.Disconnect(ctx) }()
			usersCol := client.Database(cfg.MongoDB.Database).Collection("users")
			mrepo := users.NewMongoUserRepository(usersCol)
			if err := mrepo.EnsureIndexes(ctx); err != nil {
				logger.Warnf("failed to ensure user indexes: %v", err)
			}
			repo = mrepo
		}
	}
	mongoBacked := repo != nil
	if repo == nil {
		logger.Warnf("no MongoDB configured — user records are not durable")
		repo = users.NewMemoryRepository()
	}
	if redisClient != nil {
		repo = users.NewCachedRepository(repo, redisClient, "user:", 5*time.Minute)
	}
	userSvc := users.NewService(repo)

	// Avatar object storage (optional)
	var avatars handlers.AvatarStore
	if cfg.MinIO.Endpoint != "" {
		st, err := storage.NewAvatarStorage(cfg.MinIO)
		if err != nil {
			logger.Warnf("failed to initialize avatar storage: %v", err)
		} else {
			avatars = st
		}
	}

	// Basic health endpoint
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness endpoint — report per-dependency status; the memory fallback
	// keeps the service usable, so only a configured-but-broken dependency
	// makes us not ready
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		deps["users"] = true
		if cfg.MongoDB.URI != "" {
			deps["mongo"] = mongoBacked
			if !mongoBacked {
				ready = false
			}
		}
		if cfg.Redis.Host != "" {
			deps["redis"] = redisClient != nil
			if redisClient == nil {
				ready = false
			}
		}
		if cfg.MinIO.Endpoint != "" {
			deps["storage"] = avatars != nil
			if avatars == nil {
				ready = false
			}
		}

		if !ready {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": fmt.Sprintf("%s", time.Since(startTime))})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": fmt.Sprintf("%s", time.Since(startTime))})
	})

	// User API + swagger
	h := handlers.NewUserHandler(userSvc, avatars)
	h.Register(r.Group("/api/v1"))
	handlers.RegisterSwagger(r)

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Config summary: mongo=%v redis=%v minio=%v rate_limit=%v", mongoBacked, redisClient != nil, avatars != nil, cfg.RateLimit.Enabled)
	logger.Infof("Starting user service on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
