package api

// swagger:model api.RemarkRequest
type RemarkRequest struct {
	ActionRemark string `json:"actionRemark" example:"Called back on Monday"`
}
