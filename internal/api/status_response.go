package api

// StatusResponse 操作完成的通用回應
// swagger:model api.StatusResponse
type StatusResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Product deleted"`
}
