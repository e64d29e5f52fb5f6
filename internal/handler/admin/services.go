// File: internal/handler/admin/services.go
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
	listServices  = store.ListServices
	getService    = store.GetServiceByID
	createService = store.CreateService
	updateService = store.UpdateService
	deleteService = store.DeleteService
)

// Services 後台服務集合的 Resource 定義
var Services = Resource[api.ServiceRequest, model.Service]{
	Name:   "service",
	Plural: "services",
	Build: func(req api.ServiceRequest) *model.Service {
		return &model.Service{
			Title:       req.Title,
			Description: req.Description,
			Icon:        req.Icon,
		}
	},
	List: func(ctx context.Context, db database.DB) ([]model.Service, error) {
		return listServices(ctx, db)
	},
	Get: func(ctx context.Context, db database.DB, id int) (*model.Service, error) {
		return getService(ctx, db, id)
	},
	Create: func(ctx context.Context, db database.DB, s *model.Service) (*model.Service, error) {
		return createService(ctx, db, s)
	},
	Update: func(ctx context.Context, db database.DB, id int, s *model.Service) (*model.Service, error) {
		return updateService(ctx, db, id, s)
	},
	Delete: func(ctx context.Context, db database.DB, id int) error {
		return deleteService(ctx, db, id)
	},
	CacheKey: catalog.ServicesCacheKey,
}
