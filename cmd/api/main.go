package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"psymetric/internal/config"
	"psymetric/internal/db"
	"psymetric/internal/email"
	apihttp "psymetric/internal/http"
	"psymetric/internal/itembank"
	"psymetric/internal/repository"
	"psymetric/internal/scoring"
	"psymetric/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	bank := itembank.Default()
	if cfg.ItemBankPath != "" {
		loaded, err := itembank.LoadFile(cfg.ItemBankPath)
		if err != nil {
			logger.Fatal("item bank load", zap.String("path", cfg.ItemBankPath), zap.Error(err))
		}
		bank = loaded
	}
	engine := scoring.NewEngine(bank, scoring.DefaultNorms())
	logger.Info("item bank ready", zap.String("version", bank.Version()))

	userRepo := repository.NewPgUserRepository(pool)
	reportRepo := repository.NewPgReportRepository(pool)

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	submitWindow := time.Duration(cfg.SubmitWindowMinutes) * time.Minute
	limiter := service.NewSubmissionRateLimiter(submitWindow, cfg.SubmitMaxPerWindow)
	var tokenStore service.RefreshTokenStore
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			limiter = service.NewRedisSubmissionRateLimiter(redisClient, submitWindow, cfg.SubmitMaxPerWindow)
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
		}
		cancel()
	}

	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
		time.Duration(cfg.JWTRefreshTTLMinutes)*time.Minute,
		tokenStore,
	)

	userSvc := service.NewUserService(logger, userRepo)
	assessSvc := service.NewAssessmentService(logger, engine, reportRepo, limiter, emailSender)

	userHandler := apihttp.NewUserHandler(logger, userSvc, jwtSvc)
	assessHandler := apihttp.NewAssessmentHandler(logger, assessSvc, userSvc)
	router := apihttp.NewRouter(logger, jwtSvc, userHandler, assessHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
