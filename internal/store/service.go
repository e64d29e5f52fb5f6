package store

import (
	"context"
	"errors"
	"fmt"

	"pmco-site/internal/database"
	"pmco-site/internal/model"

	"github.com/jackc/pgx/v5"
)

func ListServices(ctx context.Context, db database.DB) ([]model.Service, error) {
	rows, err := db.Query(ctx,
		`SELECT id, title, description, icon, submitted_at
		 FROM services ORDER BY submitted_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListServices: %w", err)
	}
	defer rows.Close()

	services := []model.Service{}
	for rows.Next() {
		var s model.Service
		if err := rows.Scan(
			&s.ID,
			&s.Title,
			&s.Description,
			&s.Icon,
			&s.SubmittedAt,
		); err != nil {
			return nil, fmt.Errorf("ListServices: %w", err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListServices: %w", err)
	}
	return services, nil
}

func GetServiceByID(ctx context.Context, db database.DB, serviceID int) (*model.Service, error) {
	row := db.QueryRow(ctx,
		`SELECT id, title, description, icon, submitted_at
		 FROM services WHERE id = $1`,
		serviceID,
	)
	s := &model.Service{}
	if err := row.Scan(
		&s.ID,
		&s.Title,
		&s.Description,
		&s.Icon,
		&s.SubmittedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetServiceByID: %w", err)
	}
	return s, nil
}

func CreateService(ctx context.Context, db database.DB, s *model.Service) (*model.Service, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO services (title, description, icon)
		 VALUES ($1, $2, $3)
		 RETURNING id, submitted_at`,
		s.Title,
		s.Description,
		s.Icon,
	)
	if err := row.Scan(&s.ID, &s.SubmittedAt); err != nil {
		return nil, fmt.Errorf("CreateService: %w", err)
	}
	return s, nil
}

func UpdateService(ctx context.Context, db database.DB, serviceID int, s *model.Service) (*model.Service, error) {
	row := db.QueryRow(ctx,
		`UPDATE services SET title = $1, description = $2, icon = $3
		 WHERE id = $4
		 RETURNING id, submitted_at`,
		s.Title,
		s.Description,
		s.Icon,
		serviceID,
	)
	if err := row.Scan(&s.ID, &s.SubmittedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("UpdateService: %w", err)
	}
	return s, nil
}

func DeleteService(ctx context.Context, db database.DB, serviceID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM services WHERE id = $1`,
		serviceID,
	)
	if err != nil {
		return fmt.Errorf("DeleteService: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
