package api

// ProductRequest 建立與更新共用，全部欄位必填
// swagger:model api.ProductRequest
type ProductRequest struct {
	Title       string `json:"title" validate:"required" example:"Premium Package"`
	Description string `json:"description" validate:"required" example:"Our flagship offering"`
	ImageURL    string `json:"imageUrl" validate:"required" example:"/uploads/image-1717171717-abcd1234.jpg"`
}
