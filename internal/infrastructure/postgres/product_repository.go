package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/amasasystem/amasa-api/internal/domain"
	"github.com/amasasystem/amasa-api/internal/domain/entity"
	"github.com/amasasystem/amasa-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL (usable con
// pool o tx). La PK es compuesta (organization_id, id): la numeración de
// familias es por organización.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto con su ID explícito de familia.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (organization_id, id, name, price, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		product.OrganizationID, product.ID, product.Name, product.Price, product.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto de la organización.
func (r *ProductRepo) GetByID(organizationID string, id int) (*entity.Product, error) {
	query := `
		SELECT organization_id, id, name, price, created_at
		FROM products WHERE organization_id = $1 AND id = $2`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, organizationID, id).Scan(
		&p.OrganizationID, &p.ID, &p.Name, &p.Price, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListByOrganization devuelve el catálogo ordenado por ID (agrupa familias).
func (r *ProductRepo) ListByOrganization(organizationID string) ([]*entity.Product, error) {
	query := `
		SELECT organization_id, id, name, price, created_at
		FROM products WHERE organization_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.OrganizationID, &p.ID, &p.Name, &p.Price, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// Update modifica nombre y precio.
func (r *ProductRepo) Update(product *entity.Product) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE products SET name = $3, price = $4 WHERE organization_id = $1 AND id = $2`,
		product.OrganizationID, product.ID, product.Name, product.Price,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el producto. Los movimientos históricos no se tocan.
func (r *ProductRepo) Delete(organizationID string, id int) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM products WHERE organization_id = $1 AND id = $2`, organizationID, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MaxIDInRange devuelve el mayor ID usado dentro del rango de la familia,
// o 0 si la familia está vacía.
func (r *ProductRepo) MaxIDInRange(organizationID string, base, max int) (int, error) {
	var maxUsed int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(id), 0) FROM products WHERE organization_id = $1 AND id BETWEEN $2 AND $3`,
		organizationID, base, max,
	).Scan(&maxUsed)
	if err != nil {
		return 0, fmt.Errorf("max product id in range: %w", err)
	}
	return maxUsed, nil
}
