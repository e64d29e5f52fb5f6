package store

import (
	"context"
	"errors"
	"fmt"

	"pmco-site/internal/database"
	"pmco-site/internal/model"

	"github.com/jackc/pgx/v5"
)

func ListProducts(ctx context.Context, db database.DB) ([]model.Product, error) {
	rows, err := db.Query(ctx,
		`SELECT id, title, description, image_url, submitted_at
		 FROM products ORDER BY submitted_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Description,
			&p.ImageURL,
			&p.SubmittedAt,
		); err != nil {
			return nil, fmt.Errorf("ListProducts: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListProducts: %w", err)
	}
	return products, nil
}

func GetProductByID(ctx context.Context, db database.DB, productID int) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`SELECT id, title, description, image_url, submitted_at
		 FROM products WHERE id = $1`,
		productID,
	)
	p := &model.Product{}
	if err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.ImageURL,
		&p.SubmittedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetProductByID: %w", err)
	}
	return p, nil
}

func CreateProduct(ctx context.Context, db database.DB, p *model.Product) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO products (title, description, image_url)
		 VALUES ($1, $2, $3)
		 RETURNING id, submitted_at`,
		p.Title,
		p.Description,
		p.ImageURL,
	)
	if err := row.Scan(&p.ID, &p.SubmittedAt); err != nil {
		return nil, fmt.Errorf("CreateProduct: %w", err)
	}
	return p, nil
}

func UpdateProduct(ctx context.Context, db database.DB, productID int, p *model.Product) (*model.Product, error) {
	row := db.QueryRow(ctx,
		`UPDATE products SET title = $1, description = $2, image_url = $3
		 WHERE id = $4
		 RETURNING id, submitted_at`,
		p.Title,
		p.Description,
		p.ImageURL,
		productID,
	)
	if err := row.Scan(&p.ID, &p.SubmittedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("UpdateProduct: %w", err)
	}
	return p, nil
}

func DeleteProduct(ctx context.Context, db database.DB, productID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM products WHERE id = $1`,
		productID,
	)
	if err != nil {
		return fmt.Errorf("DeleteProduct: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
