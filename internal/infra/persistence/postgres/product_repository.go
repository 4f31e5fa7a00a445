package postgres

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/domain/repository"
	"market/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindProductByID returns a product with its variants ordered by position.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Variants", orderByPosition).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindVariantByID returns a single variant.
func (repo *productRepository) FindVariantByID(ctx context.Context, id uuid.UUID) (*entity.ProductVariant, error) {
	var variantM model.ProductVariantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&variantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVariantNotFound
		}

		return nil, errors.Wrap(err, "failed to find variant by ID")
	}

	variant := toVariantDomain(&variantM)

	return &variant, nil
}

// FindVariantsByIDs returns the variants found among ids, keyed by id.
func (repo *productRepository) FindVariantsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.ProductVariant, error) {
	variants := make(map[uuid.UUID]*entity.ProductVariant, len(ids))
	if len(ids) == 0 {
		return variants, nil
	}

	var variantModels []*model.ProductVariantModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&variantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find variants by IDs")
	}

	for _, variantM := range variantModels {
		variant := toVariantDomain(variantM)
		variants[variant.ID] = &variant
	}

	return variants, nil
}

// ListStoreProducts returns the products shown in store with their variants.
func (repo *productRepository) ListStoreProducts(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Variants", orderByPosition).
		Where("show_in_store = ?", true).
		Order("category ASC, name ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list store products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// FindPanyenByID returns a panyen with its components.
func (repo *productRepository) FindPanyenByID(ctx context.Context, id uuid.UUID) (*entity.Panyen, error) {
	var panyenM model.PanyenModel

	if err := repo.db.WithContext(ctx).
		Preload("Components").
		Where("id = ?", id).
		First(&panyenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPanyenNotFound
		}

		return nil, errors.Wrap(err, "failed to find panyen by ID")
	}

	components := make([]entity.PanyenComponent, 0, len(panyenM.Components))
	for _, c := range panyenM.Components {
		components = append(components, entity.PanyenComponent{VariantID: c.VariantID, Quantity: c.Quantity})
	}

	return &entity.Panyen{
		ID:          panyenM.ID,
		Name:        panyenM.Name,
		Price:       panyenM.Price,
		ShowInStore: panyenM.ShowInStore,
		Components:  components,
		CreatedAt:   panyenM.CreatedAt,
		UpdatedAt:   panyenM.UpdatedAt,
	}, nil
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	variants := make([]entity.ProductVariant, 0, len(data.Variants))
	for i := range data.Variants {
		variants = append(variants, toVariantDomain(&data.Variants[i]))
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Category:    data.Category,
		Description: data.Description,
		ShowInStore: data.ShowInStore,
		BaseUnitID:  data.BaseUnitID,
		Variants:    variants,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toVariantDomain(data *model.ProductVariantModel) entity.ProductVariant {
	return entity.ProductVariant{
		ID:                             data.ID,
		ProductID:                      data.ProductID,
		Position:                       data.Position,
		OptionSet:                      data.OptionSet,
		OptionValue:                    data.OptionValue,
		Quantity:                       data.Quantity,
		UnitID:                         data.UnitID,
		Price:                          data.Price,
		Stock:                          data.Stock,
		VATRateID:                      data.VATRateID,
		ShowDescriptionOnPrintDelivery: data.ShowDescriptionOnPrintDelivery,
	}
}
