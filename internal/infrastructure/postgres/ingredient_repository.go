package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/amasasystem/amasa-api/internal/domain"
	"github.com/amasasystem/amasa-api/internal/domain/entity"
	"github.com/amasasystem/amasa-api/internal/domain/repository"
)

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

// IngredientRepo implementación de IngredientRepository sobre PostgreSQL
// (usable con pool o tx).
type IngredientRepo struct {
	q Querier
}

// NewIngredientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIngredientRepository(q Querier) *IngredientRepo {
	return &IngredientRepo{q: q}
}

// Create persiste un insumo; el ID lo asigna la BD y queda en ing.ID.
func (r *IngredientRepo) Create(ing *entity.Ingredient) error {
	query := `
		INSERT INTO ingredients (organization_id, name, unit, current_stock, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		ing.OrganizationID, ing.Name, ing.Unit, ing.CurrentStock, ing.CreatedAt,
	).Scan(&ing.ID)
	if err != nil {
		return fmt.Errorf("insert ingredient: %w", err)
	}
	return nil
}

// GetByID obtiene un insumo de la organización.
func (r *IngredientRepo) GetByID(organizationID string, id int) (*entity.Ingredient, error) {
	return r.getOne(organizationID, id, false)
}

// GetForUpdate obtiene el insumo bloqueando la fila (SELECT FOR UPDATE).
// Usar solo dentro de una transacción.
func (r *IngredientRepo) GetForUpdate(organizationID string, id int) (*entity.Ingredient, error) {
	return r.getOne(organizationID, id, true)
}

func (r *IngredientRepo) getOne(organizationID string, id int, forUpdate bool) (*entity.Ingredient, error) {
	query := `
		SELECT id, organization_id, name, unit, current_stock, created_at
		FROM ingredients WHERE organization_id = $1 AND id = $2`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var ing entity.Ingredient
	err := r.q.QueryRow(context.Background(), query, organizationID, id).Scan(
		&ing.ID, &ing.OrganizationID, &ing.Name, &ing.Unit, &ing.CurrentStock, &ing.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get ingredient: %w", err)
	}
	return &ing, nil
}

// ListByOrganization devuelve los insumos ordenados por nombre.
func (r *IngredientRepo) ListByOrganization(organizationID string) ([]*entity.Ingredient, error) {
	query := `
		SELECT id, organization_id, name, unit, current_stock, created_at
		FROM ingredients WHERE organization_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()

	var out []*entity.Ingredient
	for rows.Next() {
		var ing entity.Ingredient
		if err := rows.Scan(
			&ing.ID, &ing.OrganizationID, &ing.Name, &ing.Unit, &ing.CurrentStock, &ing.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		out = append(out, &ing)
	}
	return out, rows.Err()
}

// UpdateStock fija el stock del insumo en unidad base.
func (r *IngredientRepo) UpdateStock(organizationID string, id int, newStock decimal.Decimal) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE ingredients SET current_stock = $3 WHERE organization_id = $1 AND id = $2`,
		organizationID, id, newStock,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el insumo.
func (r *IngredientRepo) Delete(organizationID string, id int) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM ingredients WHERE organization_id = $1 AND id = $2`, organizationID, id)
	if err != nil {
		return fmt.Errorf("delete ingredient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
