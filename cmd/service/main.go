// File: cmd/service/main.go
// @title        PMCO Site API
// @version      1.0
// @description  行銷網站後端 API：公開表單、產品/服務內容與後台管理
// @host         localhost:3000
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"pmco-site/internal/cache"
	"pmco-site/internal/database"
	"pmco-site/internal/router"
	"pmco-site/internal/service"
	"pmco-site/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "pmco-site/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newWorkerPool   = worker.NewPool
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	mkdirAll        = os.MkdirAll
	exitFunc        = os.Exit
)

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func run() error {
	// .env 不存在時沿用既有環境變數
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		return fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}
	redisIndex := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("無效的 REDIS_DB: %v", err)
		}
		redisIndex = i
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")

	if os.Getenv("JWT_SECRET") == "" {
		return fmt.Errorf("環境變數 JWT_SECRET 未設定")
	}
	if os.Getenv("ADMIN_EMAIL") == "" || os.Getenv("ADMIN_PASSWORD") == "" {
		return fmt.Errorf("環境變數 ADMIN_EMAIL / ADMIN_PASSWORD 未設定")
	}

	mailUser := os.Getenv("GMAIL_USER")
	mailPass := os.Getenv("GMAIL_PASS")
	if mailUser == "" || mailPass == "" {
		return fmt.Errorf("環境變數 GMAIL_USER / GMAIL_PASS 未設定")
	}
	smtpHost := getenvDefault("SMTP_HOST", "smtp.gmail.com")
	smtpPort := 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("無效的 SMTP_PORT: %v", err)
		}
		smtpPort = p
	}

	workerCount := 1
	if v := os.Getenv("WORKER_COUNT"); v != "" {
		c, err := strconv.Atoi(v)
		if err != nil || c <= 0 {
			return fmt.Errorf("無效的 WORKER_COUNT: %v", err)
		}
		workerCount = c
	}

	port := getenvDefault("PORT", "3000")
	webRoot := getenvDefault("WEB_ROOT", "web")
	uploadsDir := getenvDefault("UPLOADS_DIR", "uploads")
	if err := mkdirAll(uploadsDir, 0o755); err != nil {
		return fmt.Errorf("建立上傳目錄失敗: %v", err)
	}

	db, err := newPgxPool(context.Background(), dbURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	redis, err := newRedisClient(redisAddr, redisPassword, redisIndex)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer redis.Close()

	if err := runMigrationsFn(dbURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	wp := newWorkerPool(workerCount)
	defer wp.Stop()

	mailer := service.NewSMTPMailer(smtpHost, smtpPort, mailUser, mailPass)

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, db, redis, mailer, wp, uploadsDir)

	// 上傳檔與網站本體；找不到的路徑回首頁（SPA fallback）
	e.Static("/uploads", uploadsDir)
	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Root:  webRoot,
		Index: "index.html",
		HTML5: true,
	}))

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, ":"+port)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
