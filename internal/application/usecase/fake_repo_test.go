package usecase

import (
	"strings"

	"github.com/soulsisters/joyeria-api/internal/domain"
	"github.com/soulsisters/joyeria-api/internal/domain/entity"
	"github.com/soulsisters/joyeria-api/internal/domain/repository"
)

// fakeProductRepo implementación en memoria del puerto para los tests de
// casos de uso. Mantiene orden de inserción; List devuelve más recientes
// primero, igual que el adaptador real.
type fakeProductRepo struct {
	products []*entity.Product
	failOn   map[string]error // nombre de producto -> error forzado en Create
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func newFakeRepo() *fakeProductRepo {
	return &fakeProductRepo{failOn: make(map[string]error)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	if err, ok := r.failOn[p.Name]; ok {
		return err
	}
	cp := *p
	r.products = append(r.products, &cp)
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for i := len(r.products) - 1; i >= 0; i-- {
		cp := *r.products[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) ListByCategory(category string) ([]*entity.Product, error) {
	var out []*entity.Product
	for i := len(r.products) - 1; i >= 0; i-- {
		if r.products[i].Category == category {
			cp := *r.products[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Search(term string) ([]*entity.Product, error) {
	needle := strings.ToLower(term)
	var out []*entity.Product
	for i := len(r.products) - 1; i >= 0; i-- {
		p := r.products[i]
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Notes), needle) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	for i, existing := range r.products {
		if existing.ID == p.ID {
			cp := *p
			r.products[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeProductRepo) Delete(id string) error {
	for i, existing := range r.products {
		if existing.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
