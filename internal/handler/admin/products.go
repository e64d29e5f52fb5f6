// File: internal/handler/admin/products.go
package admin

import (
	"context"

	"pmco-site/internal/api"
	"pmco-site/internal/database"
	"pmco-site/internal/handler/catalog"
	"pmco-site/internal/model"
	"pmco-site/internal/store"
)

var (
	listProducts  = store.ListProducts
	getProduct    = store.GetProductByID
	createProduct = store.CreateProduct
	updateProduct = store.UpdateProduct
	deleteProduct = store.DeleteProduct
)

// Products 後台產品集合的 Resource 定義
var Products = Resource[api.ProductRequest, model.Product]{
	Name:   "product",
	Plural: "products",
	Build: func(req api.ProductRequest) *model.Product {
		return &model.Product{
			Title:       req.Title,
			Description: req.Description,
			ImageURL:    req.ImageURL,
		}
	},
	List: func(ctx context.Context, db database.DB) ([]model.Product, error) {
		return listProducts(ctx, db)
	},
	Get: func(ctx context.Context, db database.DB, id int) (*model.Product, error) {
		return getProduct(ctx, db, id)
	},
	Create: func(ctx context.Context, db database.DB, p *model.Product) (*model.Product, error) {
		return createProduct(ctx, db, p)
	},
	Update: func(ctx context.Context, db database.DB, id int, p *model.Product) (*model.Product, error) {
		return updateProduct(ctx, db, id, p)
	},
	Delete: func(ctx context.Context, db database.DB, id int) error {
		return deleteProduct(ctx, db, id)
	},
	CacheKey: catalog.ProductsCacheKey,
}
