// File: internal/handler/auth/login.go
package auth

import (
	"net/http"

	"pmco-site/internal/api"
	"pmco-site/internal/service"

	"github.com/labstack/echo/v4"
)

var (
	authenticateAdmin = service.AuthenticateAdmin
	issueAdminToken   = service.IssueAdminToken
)

// LoginHandler 驗證管理員帳密並回傳 JWT
// @Summary     後台登入
// @Description 比對環境設定的管理員帳密，成功回傳一小時效期的存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.LoginRequest true "管理員帳密"
// @Success     200  {object} api.LoginResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /admin/login [post]
func LoginHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid credentials"})
		}

		// 不區分哪個欄位錯誤
		if err := authenticateAdmin(req.Email, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid credentials"})
		}

		token, err := issueAdminToken(service.AdminTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{Success: true, Token: token})
	}
}
