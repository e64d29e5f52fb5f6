package store

import (
	"context"
	"errors"
	"fmt"

	"pmco-site/internal/database"
	"pmco-site/internal/model"

	"github.com/jackc/pgx/v5"
)

func ListContacts(ctx context.Context, db database.DB) ([]model.Contact, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, email, phone, interest, message,
		        action_remark, ip_address, attended_status, submitted_at
		 FROM contacts ORDER BY submitted_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListContacts: %w", err)
	}
	defer rows.Close()

	contacts := []model.Contact{}
	for rows.Next() {
		var ct model.Contact
		if err := rows.Scan(
			&ct.ID,
			&ct.Name,
			&ct.Email,
			&ct.Phone,
			&ct.Interest,
			&ct.Message,
			&ct.ActionRemark,
			&ct.IPAddress,
			&ct.AttendedStatus,
			&ct.SubmittedAt,
		); err != nil {
			return nil, fmt.Errorf("ListContacts: %w", err)
		}
		contacts = append(contacts, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListContacts: %w", err)
	}
	return contacts, nil
}

// CreateContact 寫入公開表單送出的資料；remark 與 attended_status 由資料庫預設值帶入。
func CreateContact(ctx context.Context, db database.DB, ct *model.Contact) (*model.Contact, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO contacts (name, email, phone, interest, message, ip_address)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, action_remark, attended_status, submitted_at`,
		ct.Name,
		ct.Email,
		ct.Phone,
		ct.Interest,
		ct.Message,
		ct.IPAddress,
	)
	if err := row.Scan(&ct.ID, &ct.ActionRemark, &ct.AttendedStatus, &ct.SubmittedAt); err != nil {
		return nil, fmt.Errorf("CreateContact: %w", err)
	}
	return ct, nil
}

// UpdateContactRemark 只更新後台備註欄位，其餘欄位維持原值。
func UpdateContactRemark(ctx context.Context, db database.DB, contactID int, remark string) (*model.Contact, error) {
	row := db.QueryRow(ctx,
		`UPDATE contacts SET action_remark = $1
		 WHERE id = $2
		 RETURNING id, name, email, phone, interest, message,
		           action_remark, ip_address, attended_status, submitted_at`,
		remark,
		contactID,
	)
	ct := &model.Contact{}
	if err := row.Scan(
		&ct.ID,
		&ct.Name,
		&ct.Email,
		&ct.Phone,
		&ct.Interest,
		&ct.Message,
		&ct.ActionRemark,
		&ct.IPAddress,
		&ct.AttendedStatus,
		&ct.SubmittedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("UpdateContactRemark: %w", err)
	}
	return ct, nil
}

func DeleteContact(ctx context.Context, db database.DB, contactID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM contacts WHERE id = $1`,
		contactID,
	)
	if err != nil {
		return fmt.Errorf("DeleteContact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
