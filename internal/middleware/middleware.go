package middleware

import (
	"net/http"
	"strings"

	"pmco-site/internal/api"
	"pmco-site/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextClaimsKey = "adminClaims"

func extractClaims(c echo.Context) (*service.AdminClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Access denied. No token provided."})
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Access denied. No token provided."})
	}
	claims, err := service.VerifyAdminToken(parts[1])
	if err != nil {
		return nil, c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid or expired token."})
	}
	return claims, nil
}

// RequireAdmin 驗證 Bearer Token 並確認 admin 角色；
// 驗證失敗即回應，不會碰到任何資料存取。
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := extractClaims(c)
		if claims == nil {
			return err
		}
		if claims.Role != service.AdminRole {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Admin access required."})
		}
		c.Set(ContextClaimsKey, claims)
		return next(c)
	}
}

// NoCache 替後台路由加上停用快取的回應標頭（含 login）。
func NoCache(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		h := c.Response().Header()
		h.Set("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate")
		h.Set("Pragma", "no-cache")
		h.Set("Expires", "0")
		return next(c)
	}
}
