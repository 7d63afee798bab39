package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/distribuidora-api/internal/application/dto"
	"github.com/jhoicas/distribuidora-api/internal/domain"
	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
)

// Mensajes de validación de productos.
const (
	MsgProductValidation = "Errores de validación"
	MsgCodeRequired      = "El código es requerido"
	MsgNameRequired      = "El nombre es requerido"
	MsgDescRequired      = "La descripción es requerida"
	MsgPurchasePrice     = "El precio de compra debe ser mayor a 0"
	MsgSalePrice         = "El precio de venta debe ser mayor a 0"
	MsgNegativeStock     = "El stock no puede ser negativo"
	MsgStockRequired     = "El stock es requerido"
	MsgSaleOverPurchase  = "El precio de venta debe ser mayor al precio de compra"
	MsgSearchTerm        = "Debe indicar un término de búsqueda"
)

// defaultInitialStock stock inicial cuando el alta no lo indica.
const defaultInitialStock = 1

// ProductUseCase casos de uso CRUD para productos. El stock cambia normalmente vía movimientos.
type ProductUseCase struct {
	repo    repository.ProductRepository
	movRepo repository.MovementRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, movRepo repository.MovementRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, movRepo: movRepo}
}

// List lista productos, opcionalmente filtrando por código o nombre.
func (uc *ProductUseCase) List(ctx context.Context, search string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Search busca por código, nombre o descripción.
func (uc *ProductUseCase) Search(ctx context.Context, term string) ([]dto.ProductResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domain.NewValidationError(MsgSearchTerm, "termino")
	}
	list, err := uc.repo.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// LowStock productos con stock menor o igual al umbral.
func (uc *ProductUseCase) LowStock(ctx context.Context, maxStock int) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListLowStock(ctx, maxStock)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// CodeExists indica si ya hay un producto con ese código.
func (uc *ProductUseCase) CodeExists(ctx context.Context, code string) (bool, error) {
	p, err := uc.repo.GetByCode(ctx, strings.TrimSpace(code))
	if err != nil {
		return false, err
	}
	return p != nil, nil
}

// GetByID obtiene un producto o domain.ErrNotFound.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Create valida todos los campos (reporta todos los errores juntos) y persiste.
// El código duplicado lo detecta el UNIQUE de la tabla: domain.ErrDuplicate.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	stock := defaultInitialStock
	if in.StockActual != nil {
		stock = *in.StockActual
	}
	product := &entity.Product{
		Code:          strings.TrimSpace(in.Codigo),
		Name:          strings.TrimSpace(in.Nombre),
		Description:   strings.TrimSpace(in.Descripcion),
		PurchasePrice: in.PrecioCompra.Round(2),
		SalePrice:     in.PrecioVenta.Round(2),
		StockActual:   stock,
	}

	errs := validateProductFields(product, true)
	if product.PurchasePrice.IsPositive() && product.SalePrice.IsPositive() &&
		product.SalePrice.LessThanOrEqual(product.PurchasePrice) {
		errs = append(errs, MsgSaleOverPurchase)
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationError(MsgProductValidation, errs...)
	}

	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Update reemplaza los datos del producto. Solo valida presencia y rangos.
// stock_actual es obligatorio: omitirlo no puede dejar el stock en 0.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product := &entity.Product{
		ID:            id,
		Code:          strings.TrimSpace(in.Codigo),
		Name:          strings.TrimSpace(in.Nombre),
		Description:   strings.TrimSpace(in.Descripcion),
		PurchasePrice: in.PrecioCompra.Round(2),
		SalePrice:     in.PrecioVenta.Round(2),
	}
	errs := validateProductFields(product, false)
	if in.StockActual == nil {
		errs = append(errs, MsgStockRequired)
	} else {
		product.StockActual = *in.StockActual
		if product.StockActual < 0 {
			errs = append(errs, MsgNegativeStock)
		}
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationError(MsgProductValidation, errs...)
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Delete elimina el producto si ningún movimiento lo referencia; si no, domain.ErrConflict.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	n, err := uc.movRepo.CountByProduct(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrConflict
	}
	// La FK RESTRICT cubre el caso de un movimiento insertado entre el conteo y el borrado.
	return uc.repo.Delete(ctx, id)
}

func validateProductFields(p *entity.Product, requireDescription bool) []string {
	var errs []string
	if p.Code == "" {
		errs = append(errs, MsgCodeRequired)
	}
	if p.Name == "" {
		errs = append(errs, MsgNameRequired)
	}
	if requireDescription && p.Description == "" {
		errs = append(errs, MsgDescRequired)
	}
	if !p.PurchasePrice.GreaterThan(decimal.Zero) {
		errs = append(errs, MsgPurchasePrice)
	}
	if !p.SalePrice.GreaterThan(decimal.Zero) {
		errs = append(errs, MsgSalePrice)
	}
	if p.StockActual < 0 {
		errs = append(errs, MsgNegativeStock)
	}
	return errs
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:                 p.ID,
		Codigo:             p.Code,
		Nombre:             p.Name,
		Descripcion:        p.Description,
		PrecioCompra:       p.PurchasePrice.StringFixed(2),
		PrecioVenta:        p.SalePrice.StringFixed(2),
		StockActual:        p.StockActual,
		FechaCreacion:      p.CreatedAt,
		FechaActualizacion: p.UpdatedAt,
	}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out
}
