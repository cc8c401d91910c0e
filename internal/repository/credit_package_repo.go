package repository

import (
	"context"
	"errors"
	"fmt"

	"coaching_marketplace/internal/model"

	"github.com/jackc/pgx/v5"
)

// CreditPackageRepository defines operations for credit package data
type CreditPackageRepository interface {
	FindAll(ctx context.Context) ([]model.CreditPackage, error)
	FindByName(ctx context.Context, name string) (*model.CreditPackage, error)
	Create(ctx context.Context, pkg *model.CreditPackage) error
	Delete(ctx context.Context, id string) (int64, error)
}

type creditPackageRepository struct {
	db DB
}

// NewCreditPackageRepository creates a new CreditPackageRepository
func NewCreditPackageRepository(db DB) CreditPackageRepository {
	return &creditPackageRepository{db: db}
}

// FindAll retrieves every credit package
func (r *creditPackageRepository) FindAll(ctx context.Context) ([]model.CreditPackage, error) {
	sql := `SELECT id, name, credit_amount, price, created_at FROM credit_packages ORDER BY created_at`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query credit packages: %w", err)
	}
	defer rows.Close()

	var packages []model.CreditPackage
	for rows.Next() {
		var p model.CreditPackage
		if err := rows.Scan(&p.ID, &p.Name, &p.CreditAmount, &p.Price, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan credit package row: %w", err)
		}
		packages = append(packages, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating credit package rows: %w", err)
	}
	return packages, nil
}

// FindByName retrieves a credit package by its exact name
func (r *creditPackageRepository) FindByName(ctx context.Context, name string) (*model.CreditPackage, error) {
	p := &model.CreditPackage{}
	sql := `SELECT id, name, credit_amount, price, created_at FROM credit_packages WHERE name = $1`
	err := r.db.QueryRow(ctx, sql, name).Scan(&p.ID, &p.Name, &p.CreditAmount, &p.Price, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found, caller decides whether that is an error
		}
		return nil, fmt.Errorf("failed to find credit package by name: %w", err)
	}
	return p, nil
}

// Create inserts a new credit package into the database
func (r *creditPackageRepository) Create(ctx context.Context, pkg *model.CreditPackage) error {
	sql := `INSERT INTO credit_packages (id, name, credit_amount, price, created_at)
            VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, sql, pkg.ID, pkg.Name, pkg.CreditAmount, pkg.Price, pkg.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create credit package: %w", err)
	}
	return nil
}

// Delete removes a credit package by ID and reports the affected row count
func (r *creditPackageRepository) Delete(ctx context.Context, id string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM credit_packages WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete credit package: %w", err)
	}
	return tag.RowsAffected(), nil
}
