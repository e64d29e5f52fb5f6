// File: internal/handler/leads/submit.go
package leads

import (
	"context"
	"net"
	"net/http"
	"regexp"
	"strings"

	"pmco-site/internal/api"
	"pmco-site/internal/database"
	"pmco-site/internal/model"
	"pmco-site/internal/service"
	"pmco-site/internal/store"
	"pmco-site/internal/worker"

	"github.com/labstack/echo/v4"
)

var (
	createContact = store.CreateContact
	emailPattern  = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	digitPattern  = regexp.MustCompile(`\D`)
)

// clientIP 依序取 X-Forwarded-For、連線來源位址；IPv6 loopback 正規化為 127.0.0.1。
// 取不到位址時回空字串，不視為錯誤。
func clientIP(c echo.Context) string {
	ip := c.Request().Header.Get("X-Forwarded-For")
	if ip == "" {
		remote := c.Request().RemoteAddr
		if host, _, err := net.SplitHostPort(remote); err == nil {
			ip = host
		} else {
			ip = remote
		}
	}
	if i := strings.IndexByte(ip, ','); i >= 0 {
		ip = strings.TrimSpace(ip[:i])
	}
	if ip == "::1" || ip == "::ffff:127.0.0.1" {
		ip = "127.0.0.1"
	}
	return ip
}

// SubmitHandler 公開表單送出流程：
// 欄位檢查 → email/電話格式檢查 → 寫入名單 → 背景寄送通知。
// 通知寄送是 best-effort：名單寫入成功即回 200，寄送失敗只記 log，
// 避免紀錄已存在卻告知使用者失敗的狀態不一致。
// @Summary     公開表單送出
// @Description 建立一筆名單並通知營運信箱
// @Tags        contact
// @Accept      json
// @Produce     json
// @Param       body body api.ContactRequest true "表單內容"
// @Success     200 {object} api.StatusResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /contact [post]
func SubmitHandler(db database.DB, mailer service.Mailer, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ContactRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "All fields are required."})
		}

		if req.Name == "" || req.Email == "" || req.Phone == "" || req.Interest == "" || req.Message == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "All fields are required."})
		}

		if !emailPattern.MatchString(req.Email) {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Please enter a valid email address."})
		}

		digits := digitPattern.ReplaceAllString(req.Phone, "")
		if len(digits) < 10 || len(digits) > 15 {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Please enter a valid phone number (10–15 digits)."})
		}

		contact := &model.Contact{
			Name:      req.Name,
			Email:     req.Email,
			Phone:     req.Phone,
			Interest:  req.Interest,
			Message:   req.Message,
			IPAddress: clientIP(c),
		}
		contact, err := createContact(c.Request().Context(), db, contact)
		if err != nil {
			c.Logger().Errorf("submission error: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Something went wrong. Please try again."})
		}

		lead := *contact
		logger := c.Logger()
		wp.Submit(func() {
			if err := mailer.SendLeadNotification(context.Background(), lead); err != nil {
				logger.Errorf("lead notification failed for contact %d: %v", lead.ID, err)
			}
		})

		return c.JSON(http.StatusOK, api.StatusResponse{Success: true, Message: "Thank you! We'll contact you shortly."})
	}
}
