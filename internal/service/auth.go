// File: internal/service/auth.go
package service

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminRole 後台唯一的角色宣告
const AdminRole = "admin"

// AdminTokenTTL 後台令牌有效時間
const AdminTokenTTL = time.Hour

// AdminClaims 定義 JWT 負載內容
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// ErrInvalidCredentials 不透露是帳號還是密碼錯誤
var ErrInvalidCredentials = errors.New("invalid credentials")

// 以下變數供測試覆寫
var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// AuthenticateAdmin 將帳密與環境設定的唯一管理員做完整比對
func AuthenticateAdmin(email, password string) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		return ErrInvalidCredentials
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(adminEmail)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(adminPassword)) == 1
	if !emailOK || !passwordOK {
		return ErrInvalidCredentials
	}
	return nil
}

// IssueAdminToken 簽發帶有 admin 角色宣告的 JWT
func IssueAdminToken(ttl time.Duration) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET not set")
	}

	now := timeNow()
	claims := AdminClaims{
		Role: AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyAdminToken 驗證並解析 JWT 令牌，簽章錯誤或過期都會回傳錯誤
func VerifyAdminToken(tokenString string) (*AdminClaims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}

	token, err := parseWithClaims(tokenString, &AdminClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
