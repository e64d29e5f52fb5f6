package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func restoreGlobals() {
	timeNow = time.Now
	parseWithClaims = jwt.ParseWithClaims
}

func TestAuthenticateAdmin(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD", "pw")

	require.NoError(t, AuthenticateAdmin("admin@example.com", "pw"))
	require.ErrorIs(t, AuthenticateAdmin("admin@example.com", "bad"), ErrInvalidCredentials)
	require.ErrorIs(t, AuthenticateAdmin("other@example.com", "pw"), ErrInvalidCredentials)
	require.ErrorIs(t, AuthenticateAdmin("", ""), ErrInvalidCredentials)

	// 未設定管理員帳密時一律拒絕
	t.Setenv("ADMIN_EMAIL", "")
	require.ErrorIs(t, AuthenticateAdmin("admin@example.com", "pw"), ErrInvalidCredentials)
}

func TestIssueAdminToken(t *testing.T) {
	t.Cleanup(restoreGlobals)

	t.Setenv("JWT_SECRET", "")
	_, err := IssueAdminToken(time.Minute)
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "s")
	tok, err := IssueAdminToken(time.Minute)
	require.NoError(t, err)

	claims := &AdminClaims{}
	_, err = jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (any, error) { return []byte("s"), nil })
	require.NoError(t, err)
	require.Equal(t, AdminRole, claims.Role)
	require.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestVerifyAdminToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	t.Setenv("JWT_SECRET", "s")

	tok, err := IssueAdminToken(AdminTokenTTL)
	require.NoError(t, err)

	claims, err := VerifyAdminToken(tok)
	require.NoError(t, err)
	require.Equal(t, AdminRole, claims.Role)

	// 竄改後簽章不符
	_, err = VerifyAdminToken(tok + "x")
	require.Error(t, err)

	// 過期令牌
	timeNow = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := IssueAdminToken(time.Hour)
	require.NoError(t, err)
	timeNow = time.Now
	_, err = VerifyAdminToken(expired)
	require.Error(t, err)

	// 其他密鑰簽出的令牌
	other := jwt.NewWithClaims(jwt.SigningMethodHS256, AdminClaims{Role: AdminRole})
	otherTok, err := other.SignedString([]byte("different"))
	require.NoError(t, err)
	_, err = VerifyAdminToken(otherTok)
	require.Error(t, err)

	// 非 HMAC 簽章演算法
	none := jwt.NewWithClaims(jwt.SigningMethodNone, AdminClaims{Role: AdminRole})
	noneTok, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = VerifyAdminToken(noneTok)
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "")
	_, err = VerifyAdminToken(tok)
	require.Error(t, err)
}

func TestVerifyAdminTokenKeepsForeignRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	viewer := jwt.NewWithClaims(jwt.SigningMethodHS256, AdminClaims{
		Role: "viewer",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	tok, err := viewer.SignedString([]byte("s"))
	require.NoError(t, err)

	// 簽章正確但角色不同：驗證通過，角色判斷交給 middleware
	claims, err := VerifyAdminToken(tok)
	require.NoError(t, err)
	require.NotEqual(t, AdminRole, claims.Role)
}
