package api

// ErrorResponse 全域錯誤響應模型
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	// error 錯誤描述
	Error string `json:"error" example:"Invalid credentials"`
}
