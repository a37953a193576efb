package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/soulsisters/joyeria-api/internal/domain"
	"github.com/soulsisters/joyeria-api/internal/domain/entity"
	"github.com/soulsisters/joyeria-api/internal/domain/repository"
)

// Querier abstrae pool o transacción de pgx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, quantity, store_price, suggested_price, profit_percentage, category, status, notes, image, date_added, created_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Quantity, product.StorePrice, product.SuggestedPrice,
		product.ProfitPercentage, product.Category, product.Status, product.Notes, product.Image,
		product.DateAdded, product.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: insert product: %v", domain.ErrRemoteUnavailable, err)
	}
	return nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := r.scanRow(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: get product: %v", domain.ErrRemoteUnavailable, err)
	}
	return p, nil
}

// List devuelve el inventario completo, más recientes primero.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	return r.queryList(query)
}

// ListByCategory filtra por categoría exacta.
func (r *ProductRepo) ListByCategory(category string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category = $1 ORDER BY created_at DESC`
	return r.queryList(query, category)
}

// likeEscaper escapa los metacaracteres de LIKE/ILIKE para que el término
// se compare como subcadena literal ("100%" no es un comodín).
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search busca por subcadena insensible a mayúsculas en nombre o notas.
func (r *ProductRepo) Search(term string) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + ` FROM products
		WHERE name ILIKE '%' || $1 || '%' OR notes ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC`
	return r.queryList(query, likeEscaper.Replace(term))
}

// Update pisa todos los campos mutables del producto.
// Devuelve domain.ErrNotFound si el id no existe.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, quantity = $3, store_price = $4, suggested_price = $5,
		    profit_percentage = $6, category = $7, status = $8, notes = $9, image = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Quantity, product.StorePrice, product.SuggestedPrice,
		product.ProfitPercentage, product.Category, product.Status, product.Notes, product.Image,
	)
	if err != nil {
		return fmt.Errorf("%w: update product: %v", domain.ErrRemoteUnavailable, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID. Un segundo delete del mismo id devuelve
// domain.ErrNotFound.
func (r *ProductRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: delete product: %v", domain.ErrRemoteUnavailable, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) queryList(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list products: %v", domain.ErrRemoteUnavailable, err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ProductRepo) scanRow(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Quantity, &p.StorePrice, &p.SuggestedPrice,
		&p.ProfitPercentage, &p.Category, &p.Status, &p.Notes, &p.Image,
		&p.DateAdded, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
