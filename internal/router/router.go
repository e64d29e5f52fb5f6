// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"pmco-site/internal/cache"
	"pmco-site/internal/database"
	"pmco-site/internal/handler"
	"pmco-site/internal/handler/admin"
	"pmco-site/internal/handler/auth"
	"pmco-site/internal/handler/catalog"
	"pmco-site/internal/handler/leads"
	"pmco-site/internal/middleware"
	"pmco-site/internal/service"
	"pmco-site/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, mailer service.Mailer, wp worker.Pool, uploadDir string) {
	api := e.Group("/api")

	// 公開路由
	api.GET("/products", catalog.ListProductsHandler(db, rdb))
	api.GET("/services", catalog.ListServicesHandler(db, rdb))
	api.POST("/contact", leads.SubmitHandler(db, mailer, wp))

	// 健康檢查（需後台認證）
	api.GET("/ping", handler.PingHandler(db, rdb), middleware.RequireAdmin)

	// 後台：所有 /api/admin 路由一律停用快取，login 以外都要通過認證
	apiAdmin := api.Group("/admin", middleware.NoCache)
	apiAdmin.POST("/login", auth.LoginHandler())

	gated := apiAdmin.Group("", middleware.RequireAdmin)

	gated.GET("/products", admin.Products.ListHandler(db))
	gated.POST("/products", admin.Products.CreateHandler(db, rdb))
	gated.GET("/products/:id", admin.Products.GetHandler(db))
	gated.PUT("/products/:id", admin.Products.UpdateHandler(db, rdb))
	gated.DELETE("/products/:id", admin.Products.DeleteHandler(db, rdb))

	gated.GET("/services", admin.Services.ListHandler(db))
	gated.POST("/services", admin.Services.CreateHandler(db, rdb))
	gated.GET("/services/:id", admin.Services.GetHandler(db))
	gated.PUT("/services/:id", admin.Services.UpdateHandler(db, rdb))
	gated.DELETE("/services/:id", admin.Services.DeleteHandler(db, rdb))

	gated.GET("/contacts", admin.Contacts.ListHandler(db))
	gated.PUT("/contacts/:id", admin.UpdateRemarkHandler(db))
	gated.DELETE("/contacts/:id", admin.Contacts.DeleteHandler(db, nil))

	gated.POST("/upload", admin.UploadHandler(uploadDir))
}
