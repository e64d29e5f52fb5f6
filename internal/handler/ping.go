// File: internal/handler/ping.go
package handler

import (
	"errors"
	"net/http"

	"pmco-site/internal/api"
	"pmco-site/internal/cache"
	"pmco-site/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// PingResponse 健康檢查回應模型
// swagger:model PingResponse
type PingResponse struct {
	// 回應訊息
	Message string `json:"message" example:"pong"`
}

// PingHandler 健康檢查（需通過後台認證）
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫與快取連線是否正常
// @Tags        health
// @Accept      json
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /ping [get]
func PingHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "database unhealthy"})
		}
		if rdb != nil {
			// 鍵不存在 (redis.Nil) 代表連線正常
			if err := rdb.Get(c.Request().Context(), "healthcheck").Err(); err != nil && !errors.Is(err, redis.Nil) {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "cache unhealthy"})
			}
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
