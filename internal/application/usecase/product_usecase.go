package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/soulsisters/joyeria-api/internal/application/dto"
	"github.com/soulsisters/joyeria-api/internal/domain"
	"github.com/soulsisters/joyeria-api/internal/domain/entity"
	"github.com/soulsisters/joyeria-api/internal/domain/inventory"
	"github.com/soulsisters/joyeria-api/internal/domain/repository"
)

// ProductUseCase casos de uso del inventario: CRUD, búsqueda, venta y carga
// masiva. ProfitPercentage y Status son derivados y se recalculan en cada
// escritura; ninguna ruta puede persistir un par cantidad/estado inconsistente.
type ProductUseCase struct {
	repo repository.ProductRepository
	now  func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, now: time.Now}
}

// Create crea un producto. dateAdded lo fija el servidor; status y
// profitPercentage se derivan de la entrada.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.buildProduct(in.Name, in.Quantity, in.StorePrice, in.SuggestedPrice,
		in.Category, in.Status, in.Notes, in.Image, "")
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista todo el inventario, más recientes primero.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	return uc.toList(uc.repo.List())
}

// ListByCategory filtra por categoría exacta.
func (uc *ProductUseCase) ListByCategory(category string) (*dto.ProductListResponse, error) {
	if !entity.ValidCategory(category) {
		return nil, fmt.Errorf("%w: categoría desconocida %q", domain.ErrInvalidInput, category)
	}
	return uc.toList(uc.repo.ListByCategory(category))
}

// Search busca por subcadena (insensible a mayúsculas) en nombre o notas.
// Sin coincidencias devuelve lista vacía, nunca error.
func (uc *ProductUseCase) Search(term string) (*dto.ProductListResponse, error) {
	return uc.toList(uc.repo.Search(term))
}

// Update aplica un patch parcial; los campos no enviados quedan intactos.
// Tras aplicar el patch se re-derivan status y profitPercentage.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}
	if in.StorePrice != nil {
		product.StorePrice = *in.StorePrice
	}
	if in.SuggestedPrice != nil {
		product.SuggestedPrice = *in.SuggestedPrice
	}
	if in.Category != nil {
		if !entity.ValidCategory(*in.Category) {
			return nil, fmt.Errorf("%w: categoría desconocida %q", domain.ErrInvalidInput, *in.Category)
		}
		product.Category = *in.Category
	}
	if in.Notes != nil {
		product.Notes = *in.Notes
	}
	if in.Image != nil {
		product.Image = *in.Image
	}

	// Status es estrictamente derivado: un status explícito solo se acepta
	// si coincide con el que dicta la cantidad resultante.
	derived := inventory.StatusForQuantity(product.Quantity)
	if in.Status != nil && *in.Status != derived {
		return nil, fmt.Errorf("%w: status %q inconsistente con cantidad %d",
			domain.ErrInvalidInput, *in.Status, product.Quantity)
	}
	product.Status = derived
	product.ProfitPercentage = inventory.ProfitPercentage(product.StorePrice, product.SuggestedPrice)

	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto. Un segundo delete del mismo id falla con
// ErrNotFound (la eliminación no es idempotente).
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// Sell registra una venta: descuenta cantidad (recortando a cero si la venta
// excede el stock) y recalcula el estado después del recorte.
func (uc *ProductUseCase) Sell(id string, quantity int) (*dto.SellResponse, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("%w: cantidad de venta negativa", domain.ErrInvalidInput)
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	product.Quantity, product.Status = inventory.ApplySale(product.Quantity, quantity)
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}

	return &dto.SellResponse{
		Product: *toProductResponse(product),
		Notification: dto.Notification{
			Title:       "Venta registrada",
			Description: fmt.Sprintf("%s: quedan %d unidades", product.Name, product.Quantity),
			Severity:    "success",
		},
	}, nil
}

// BulkImport crea los productos fila por fila con resultados independientes:
// una fila mal formada se reporta fallida y no aborta el resto.
func (uc *ProductUseCase) BulkImport(in dto.BulkImportRequest) *dto.BulkImportResponse {
	out := &dto.BulkImportResponse{Results: make([]dto.BulkRowResult, 0, len(in.Products))}
	for _, row := range in.Products {
		product, err := uc.buildProduct(row.Name, row.Quantity, row.StorePrice, row.SuggestedPrice,
			row.Category, row.Status, row.Notes, row.Image, row.DateAdded)
		if err == nil {
			err = uc.repo.Create(product)
		}
		if err != nil {
			out.Results = append(out.Results, dto.BulkRowResult{Name: row.Name, Error: err.Error()})
			out.Failed++
			continue
		}
		out.Results = append(out.Results, dto.BulkRowResult{Success: true, ID: product.ID, Name: row.Name})
		out.Succeeded++
	}
	return out
}

// ExportAll devuelve el inventario completo para respaldo.
func (uc *ProductUseCase) ExportAll() (*dto.ProductListResponse, error) {
	return uc.toList(uc.repo.List())
}

// buildProduct valida y arma la entidad con los campos derivados calculados.
// dateAdded vacío usa la fecha actual del servidor.
func (uc *ProductUseCase) buildProduct(name string, quantity, storePrice, suggestedPrice int,
	category, status, notes, image, dateAdded string) (*entity.Product, error) {

	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if quantity < 0 || storePrice < 0 || suggestedPrice < 0 {
		return nil, fmt.Errorf("%w: cantidad y precios deben ser no negativos", domain.ErrInvalidInput)
	}
	if !entity.ValidCategory(category) {
		return nil, fmt.Errorf("%w: categoría desconocida %q", domain.ErrInvalidInput, category)
	}
	derived := inventory.StatusForQuantity(quantity)
	if status != "" {
		if !entity.ValidStatus(status) {
			return nil, fmt.Errorf("%w: status desconocido %q", domain.ErrInvalidInput, status)
		}
		if status != derived {
			return nil, fmt.Errorf("%w: status %q inconsistente con cantidad %d",
				domain.ErrInvalidInput, status, quantity)
		}
	}

	now := uc.now()
	added := now
	if dateAdded != "" {
		parsed, err := time.Parse(dto.DateLayout, dateAdded)
		if err != nil {
			return nil, fmt.Errorf("%w: dateAdded debe ser YYYY-MM-DD", domain.ErrInvalidInput)
		}
		added = parsed
	}

	return &entity.Product{
		ID:               uuid.New().String(),
		Name:             name,
		Quantity:         quantity,
		StorePrice:       storePrice,
		SuggestedPrice:   suggestedPrice,
		ProfitPercentage: inventory.ProfitPercentage(storePrice, suggestedPrice),
		Category:         category,
		Status:           derived,
		Notes:            notes,
		Image:            image,
		DateAdded:        added,
		CreatedAt:        now,
	}, nil
}

func (uc *ProductUseCase) toList(list []*entity.Product, err error) (*dto.ProductListResponse, error) {
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Quantity:         p.Quantity,
		StorePrice:       p.StorePrice,
		SuggestedPrice:   p.SuggestedPrice,
		ProfitPercentage: p.ProfitPercentage,
		Category:         p.Category,
		Status:           p.Status,
		Notes:            p.Notes,
		Image:            p.Image,
		DateAdded:        p.DateAdded.Format(dto.DateLayout),
		CreatedAt:        p.CreatedAt.Format(time.RFC3339),
	}
}
