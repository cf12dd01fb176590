package postgres

import (
	"context"
	"fmt"

	"github.com/amasasystem/amasa-api/internal/domain"
	"github.com/amasasystem/amasa-api/internal/domain/entity"
	"github.com/amasasystem/amasa-api/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo implementación de RecipeRepository sobre PostgreSQL (usable con
// pool o tx).
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

// Create persiste una línea de receta; el ID lo asigna la BD.
func (r *RecipeRepo) Create(line *entity.RecipeLine) error {
	query := `
		INSERT INTO recipe_lines (organization_id, product_id, ingredient_id, quantity)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		line.OrganizationID, line.ProductID, line.IngredientID, line.Quantity,
	).Scan(&line.ID)
	if err != nil {
		return fmt.Errorf("insert recipe line: %w", err)
	}
	return nil
}

// ListByProduct devuelve la receta de un producto.
func (r *RecipeRepo) ListByProduct(organizationID string, productID int) ([]*entity.RecipeLine, error) {
	return r.list(`
		SELECT id, organization_id, product_id, ingredient_id, quantity
		FROM recipe_lines WHERE organization_id = $1 AND product_id = $2 ORDER BY id`,
		organizationID, productID)
}

// ListByOrganization devuelve todas las líneas de receta del tenant
// (snapshot del pronóstico de producción).
func (r *RecipeRepo) ListByOrganization(organizationID string) ([]*entity.RecipeLine, error) {
	return r.list(`
		SELECT id, organization_id, product_id, ingredient_id, quantity
		FROM recipe_lines WHERE organization_id = $1 ORDER BY id`,
		organizationID)
}

func (r *RecipeRepo) list(query string, args ...any) ([]*entity.RecipeLine, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list recipe lines: %w", err)
	}
	defer rows.Close()

	var out []*entity.RecipeLine
	for rows.Next() {
		var line entity.RecipeLine
		if err := rows.Scan(
			&line.ID, &line.OrganizationID, &line.ProductID, &line.IngredientID, &line.Quantity,
		); err != nil {
			return nil, fmt.Errorf("scan recipe line: %w", err)
		}
		out = append(out, &line)
	}
	return out, rows.Err()
}

// Delete elimina una línea de receta.
func (r *RecipeRepo) Delete(organizationID string, id int) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM recipe_lines WHERE organization_id = $1 AND id = $2`, organizationID, id)
	if err != nil {
		return fmt.Errorf("delete recipe line: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
