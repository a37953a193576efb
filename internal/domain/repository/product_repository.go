package repository

import "github.com/soulsisters/joyeria-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) cuando el id no existe; Update y Delete
// devuelven domain.ErrNotFound si no afectan ninguna fila.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	ListByCategory(category string) ([]*entity.Product, error)
	Search(term string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
}
