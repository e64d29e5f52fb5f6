// File: internal/handler/admin/upload.go
package admin

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pmco-site/internal/api"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// MaxUploadSize 單檔上限 5 MiB
const MaxUploadSize = 5 << 20

// UploadHandler 接收單一 "image" 欄位的圖片並存入 uploadDir。
// 檔名以時間戳加亂數後綴組成，保留原始副檔名；回傳可直接使用的 /uploads 路徑。
// @Summary     上傳圖片
// @Description 僅接受 image/* 內容，超過 5 MiB 會被拒絕
// @Tags        admin-upload
// @Accept      multipart/form-data
// @Produce     json
// @Param       image formData file true "圖片檔案"
// @Success     200 {object} api.UploadResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/upload [post]
func UploadHandler(uploadDir string) echo.HandlerFunc {
	return func(c echo.Context) error {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "No file uploaded"})
		}
		if fileHeader.Size > MaxUploadSize {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "File too large (max 5 MB)"})
		}

		src, err := fileHeader.Open()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to read upload"})
		}
		defer src.Close()

		// 以內容判斷型別，不信任 client 提供的 Content-Type
		head := make([]byte, 512)
		n, err := src.Read(head)
		if err != nil && err != io.EOF {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to read upload"})
		}
		if !strings.HasPrefix(http.DetectContentType(head[:n]), "image/") {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Only image files allowed"})
		}
		if _, err := src.Seek(0, io.SeekStart); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to read upload"})
		}

		name := fmt.Sprintf("image-%d-%s%s",
			time.Now().UnixMilli(),
			uuid.NewString()[:8],
			filepath.Ext(fileHeader.Filename),
		)

		dst, err := os.Create(filepath.Join(uploadDir, name))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to store upload"})
		}
		defer dst.Close()
		if _, err := io.Copy(dst, src); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to store upload"})
		}

		return c.JSON(http.StatusOK, api.UploadResponse{ImageURL: "/uploads/" + name})
	}
}
