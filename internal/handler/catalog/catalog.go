// File: internal/handler/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"net/http"
	"time"

	"pmco-site/internal/cache"
	"pmco-site/internal/database"
	"pmco-site/internal/model"
	"pmco-site/internal/store"

	"github.com/labstack/echo/v4"
)

// 公開列表的快取鍵，後台異動時由 admin handlers 清除
const (
	ProductsCacheKey = "catalog:products"
	ServicesCacheKey = "catalog:services"
)

// catalogTTL 公開列表快取時間；後台異動會主動清除，所以可以稍長
const catalogTTL = 5 * time.Minute

var (
	listProducts = store.ListProducts
	listServices = store.ListServices
	jsonMarshal  = json.Marshal
)

func respondCached(c echo.Context, rdb cache.Cache, key string) bool {
	if rdb == nil {
		return false
	}
	cached, err := rdb.Get(c.Request().Context(), key).Result()
	if err != nil {
		return false
	}
	return c.JSONBlob(http.StatusOK, []byte(cached)) == nil
}

func storeCached(c echo.Context, rdb cache.Cache, key string, payload []byte) {
	if rdb == nil {
		return
	}
	if err := rdb.Set(c.Request().Context(), key, payload, catalogTTL).Err(); err != nil {
		c.Logger().Warnf("failed to cache %s: %v", key, err)
	}
}

// ListProductsHandler 公開產品列表，結果進 Redis 快取。
// 讀取失敗時回 500 與空陣列，公開頁面據此顯示空狀態。
// @Summary     公開產品列表
// @Tags        catalog
// @Produce     json
// @Success     200 {array} model.Product
// @Router      /products [get]
func ListProductsHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		if respondCached(c, rdb, ProductsCacheKey) {
			return nil
		}
		products, err := listProducts(c.Request().Context(), db)
		if err != nil {
			c.Logger().Errorf("products fetch error: %v", err)
			return c.JSON(http.StatusInternalServerError, []model.Product{})
		}
		payload, err := jsonMarshal(products)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, []model.Product{})
		}
		storeCached(c, rdb, ProductsCacheKey, payload)
		return c.JSONBlob(http.StatusOK, payload)
	}
}

// ListServicesHandler 公開服務列表，行為與產品列表相同。
// @Summary     公開服務列表
// @Tags        catalog
// @Produce     json
// @Success     200 {array} model.Service
// @Router      /services [get]
func ListServicesHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		if respondCached(c, rdb, ServicesCacheKey) {
			return nil
		}
		services, err := listServices(c.Request().Context(), db)
		if err != nil {
			c.Logger().Errorf("services fetch error: %v", err)
			return c.JSON(http.StatusInternalServerError, []model.Service{})
		}
		payload, err := jsonMarshal(services)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, []model.Service{})
		}
		storeCached(c, rdb, ServicesCacheKey, payload)
		return c.JSONBlob(http.StatusOK, payload)
	}
}
