package admin

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pmco-site/internal/cache"
	"pmco-site/internal/database"
	"pmco-site/internal/model"
	"pmco-site/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

func restore() {
	listProducts = store.ListProducts
	getProduct = store.GetProductByID
	createProduct = store.CreateProduct
	updateProduct = store.UpdateProduct
	deleteProduct = store.DeleteProduct
	listServices = store.ListServices
	getService = store.GetServiceByID
	createService = store.CreateService
	updateService = store.UpdateService
	deleteService = store.DeleteService
	listContacts = store.ListContacts
	updateContactRemark = store.UpdateContactRemark
	deleteContact = store.DeleteContact
}

func newJSONCtx(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newIDCtx(e *echo.Echo, method, id, body string) (echo.Context, *httptest.ResponseRecorder) {
	ctx, rec := newJSONCtx(e, method, body)
	ctx.SetPath("/api/admin/products/:id")
	ctx.SetParamNames("id")
	ctx.SetParamValues(id)
	return ctx, rec
}

// trackingCache 記錄被清除的快取鍵
func trackingCache(deleted *[]string) *cache.FakeCache {
	return &cache.FakeCache{
		DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
			*deleted = append(*deleted, keys...)
			return redis.NewIntResult(int64(len(keys)), nil)
		},
	}
}

func TestProductListHandler(t *testing.T) {
	e := echo.New()

	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restore)
		now := time.Now()
		listProducts = func(context.Context, database.DB) ([]model.Product, error) {
			return []model.Product{{ID: 2, Title: "newer", SubmittedAt: now}, {ID: 1, Title: "older", SubmittedAt: now.Add(-time.Hour)}}, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodGet, "")
		require.NoError(t, Products.ListHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		// 新到舊的順序由 store 排序保證，回應保持原序
		require.Less(t, strings.Index(rec.Body.String(), "newer"), strings.Index(rec.Body.String(), "older"))
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		listProducts = func(context.Context, database.DB) ([]model.Product, error) { return nil, errors.New("down") }
		ctx, rec := newJSONCtx(e, http.MethodGet, "")
		require.NoError(t, Products.ListHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "Failed to fetch products")
	})
}

func TestProductCreateHandler(t *testing.T) {
	e := echo.New()

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newJSONCtx(e, http.MethodPost, "{")
		require.NoError(t, Products.CreateHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Invalid product data")
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("required")}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"title":"t"}`)
		require.NoError(t, Products.CreateHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Invalid product data")
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		createProduct = func(context.Context, database.DB, *model.Product) (*model.Product, error) {
			return nil, errors.New("down")
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"title":"t","description":"d","imageUrl":"/uploads/x.jpg"}`)
		require.NoError(t, Products.CreateHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success invalidates cache", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		createProduct = func(_ context.Context, _ database.DB, p *model.Product) (*model.Product, error) {
			require.Equal(t, "t", p.Title)
			require.Equal(t, "d", p.Description)
			require.Equal(t, "/uploads/x.jpg", p.ImageURL)
			p.ID = 1
			p.SubmittedAt = time.Now()
			return p, nil
		}
		deleted := []string{}
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"title":"t","description":"d","imageUrl":"/uploads/x.jpg"}`)
		require.NoError(t, Products.CreateHandler(nil, trackingCache(&deleted))(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Contains(t, rec.Body.String(), `"id":1`)
		require.Equal(t, []string{Products.CacheKey}, deleted)
	})
}

func TestProductGetHandler(t *testing.T) {
	e := echo.New()

	t.Run("invalid id", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newIDCtx(e, http.MethodGet, "abc", "")
		require.NoError(t, Products.GetHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Invalid product ID")
	})

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		getProduct = func(context.Context, database.DB, int) (*model.Product, error) { return nil, store.ErrNotFound }
		ctx, rec := newIDCtx(e, http.MethodGet, "9", "")
		require.NoError(t, Products.GetHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "Product not found")
	})

	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restore)
		getProduct = func(_ context.Context, _ database.DB, id int) (*model.Product, error) {
			require.Equal(t, 9, id)
			return &model.Product{ID: 9, Title: "t"}, nil
		}
		ctx, rec := newIDCtx(e, http.MethodGet, "9", "")
		require.NoError(t, Products.GetHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"id":9`)
	})
}

func TestProductUpdateHandler(t *testing.T) {
	e := echo.New()

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		updateProduct = func(context.Context, database.DB, int, *model.Product) (*model.Product, error) {
			return nil, store.ErrNotFound
		}
		ctx, rec := newIDCtx(e, http.MethodPut, "9", `{"title":"t","description":"d","imageUrl":"u"}`)
		require.NoError(t, Products.UpdateHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("required")}
		ctx, rec := newIDCtx(e, http.MethodPut, "9", `{}`)
		require.NoError(t, Products.UpdateHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Invalid update data")
	})

	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		updateProduct = func(_ context.Context, _ database.DB, id int, p *model.Product) (*model.Product, error) {
			require.Equal(t, 9, id)
			p.ID = id
			return p, nil
		}
		deleted := []string{}
		ctx, rec := newIDCtx(e, http.MethodPut, "9", `{"title":"t","description":"d","imageUrl":"u"}`)
		require.NoError(t, Products.UpdateHandler(nil, trackingCache(&deleted))(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, []string{Products.CacheKey}, deleted)
	})
}

func TestProductDeleteHandler(t *testing.T) {
	e := echo.New()

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		deleteProduct = func(context.Context, database.DB, int) error { return store.ErrNotFound }
		ctx, rec := newIDCtx(e, http.MethodDelete, "9", "")
		require.NoError(t, Products.DeleteHandler(nil, nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restore)
		deleteProduct = func(context.Context, database.DB, int) error { return nil }
		deleted := []string{}
		ctx, rec := newIDCtx(e, http.MethodDelete, "9", "")
		require.NoError(t, Products.DeleteHandler(nil, trackingCache(&deleted))(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Product deleted")
		require.Equal(t, []string{Products.CacheKey}, deleted)
	})
}

func TestServiceResourceMessages(t *testing.T) {
	e := echo.New()
	t.Cleanup(restore)

	deleteService = func(context.Context, database.DB, int) error { return store.ErrNotFound }
	ctx, rec := newIDCtx(e, http.MethodDelete, "1", "")
	require.NoError(t, Services.DeleteHandler(nil, nil)(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Service not found")

	listServices = func(context.Context, database.DB) ([]model.Service, error) { return nil, errors.New("down") }
	ctx, rec = newJSONCtx(e, http.MethodGet, "")
	require.NoError(t, Services.ListHandler(nil)(ctx))
	require.Contains(t, rec.Body.String(), "Failed to fetch services")
}
