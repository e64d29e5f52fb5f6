package api

// ServiceRequest 建立與更新共用，全部欄位必填
// swagger:model api.ServiceRequest
type ServiceRequest struct {
	Title       string `json:"title" validate:"required" example:"Consulting"`
	Description string `json:"description" validate:"required" example:"One-on-one consulting"`
	Icon        string `json:"icon" validate:"required" example:"fa-briefcase"`
}
