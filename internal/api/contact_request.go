package api

// ContactRequest 公開表單送出內容；欄位檢查在 handler 內逐項進行，
// 以回傳與前端相符的訊息文案。
// swagger:model api.ContactRequest
type ContactRequest struct {
	Name     string `json:"name" example:"Alice"`
	Email    string `json:"email" example:"alice@example.com"`
	Phone    string `json:"phone" example:"+1 (234) 567-8901"`
	Interest string `json:"interest" example:"consulting"`
	Message  string `json:"message" example:"I would like to book a consultation."`
}
