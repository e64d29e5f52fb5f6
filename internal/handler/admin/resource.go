// File: internal/handler/admin/resource.go
package admin

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"pmco-site/internal/api"
	"pmco-site/internal/cache"
	"pmco-site/internal/database"
	"pmco-site/internal/store"

	"github.com/labstack/echo/v4"
)

// Resource 是後台 CRUD 的共用元件：三個集合的流程完全相同，
// 只有欄位結構與對應的 store 函式不同，因此以型別參數收斂成一份。
// Contacts 只掛 List/Delete，其餘函式留空即可。
type Resource[Req any, M any] struct {
	// Name 單數小寫（"product"），Plural 複數小寫（"products"），用於組錯誤訊息
	Name   string
	Plural string

	Build  func(req Req) *M
	List   func(ctx context.Context, db database.DB) ([]M, error)
	Get    func(ctx context.Context, db database.DB, id int) (*M, error)
	Create func(ctx context.Context, db database.DB, m *M) (*M, error)
	Update func(ctx context.Context, db database.DB, id int, m *M) (*M, error)
	Delete func(ctx context.Context, db database.DB, id int) error

	// CacheKey 對應的公開列表快取鍵；異動後清除，空字串表示無公開快取
	CacheKey string
}

func (r Resource[Req, M]) title() string {
	if r.Name == "" {
		return ""
	}
	return strings.ToUpper(r.Name[:1]) + r.Name[1:]
}

// paramID 解析路徑參數；格式錯誤時直接寫入 400 回應並回傳 false。
func (r Resource[Req, M]) paramID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		_ = c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid " + r.Name + " ID"})
		return 0, false
	}
	return id, true
}

func (r Resource[Req, M]) invalidate(c echo.Context, rdb cache.Cache) {
	if rdb == nil || r.CacheKey == "" {
		return
	}
	if err := rdb.Del(c.Request().Context(), r.CacheKey).Err(); err != nil {
		c.Logger().Warnf("failed to invalidate %s cache: %v", r.Name, err)
	}
}

// ListHandler 回傳全部紀錄，依建立時間新到舊排序
func (r Resource[Req, M]) ListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		records, err := r.List(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch " + r.Plural})
		}
		return c.JSON(http.StatusOK, records)
	}
}

// CreateHandler 驗證欄位後寫入新紀錄並清除公開快取
func (r Resource[Req, M]) CreateHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req Req
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid " + r.Name + " data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid " + r.Name + " data"})
		}

		record, err := r.Create(c.Request().Context(), db, r.Build(req))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create " + r.Name})
		}
		r.invalidate(c, rdb)
		return c.JSON(http.StatusCreated, record)
	}
}

// GetHandler 依 ID 查詢單筆紀錄
func (r Resource[Req, M]) GetHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := r.paramID(c)
		if !ok {
			return nil
		}
		record, err := r.Get(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: r.title() + " not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch " + r.Name})
		}
		return c.JSON(http.StatusOK, record)
	}
}

// UpdateHandler 全欄位覆寫更新，欄位驗證與建立時相同
func (r Resource[Req, M]) UpdateHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := r.paramID(c)
		if !ok {
			return nil
		}

		var req Req
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid update data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid update data"})
		}

		record, err := r.Update(c.Request().Context(), db, id, r.Build(req))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: r.title() + " not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update " + r.Name})
		}
		r.invalidate(c, rdb)
		return c.JSON(http.StatusOK, record)
	}
}

// DeleteHandler 刪除紀錄並回傳確認訊息
func (r Resource[Req, M]) DeleteHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := r.paramID(c)
		if !ok {
			return nil
		}
		if err := r.Delete(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: r.title() + " not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete " + r.Name})
		}
		r.invalidate(c, rdb)
		return c.JSON(http.StatusOK, api.StatusResponse{Success: true, Message: r.title() + " deleted"})
	}
}
