// File: internal/model/contact.go
package model

import "time"

// Contact 公開表單送出的潛在客戶資料，後台僅能修改 ActionRemark 與 AttendedStatus。
type Contact struct {
	ID             int       `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Email          string    `db:"email" json:"email"`
	Phone          string    `db:"phone" json:"phone"`
	Interest       string    `db:"interest" json:"interest"`
	Message        string    `db:"message" json:"message"`
	ActionRemark   string    `db:"action_remark" json:"actionRemark"`
	IPAddress      string    `db:"ip_address" json:"ipAddress"`
	AttendedStatus string    `db:"attended_status" json:"attendedStatus"`
	SubmittedAt    time.Time `db:"submitted_at" json:"submittedAt"`
}
