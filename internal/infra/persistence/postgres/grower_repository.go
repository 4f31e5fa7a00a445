package postgres

import (
	"context"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// growerRepository implements the repository.GrowerRepository interface.
type growerRepository struct {
	db *gorm.DB
}

// NewGrowerRepository is the constructor for growerRepository.
func NewGrowerRepository(db *gorm.DB) repository.GrowerRepository {
	return &growerRepository{
		db: db,
	}
}

// FindGrowerByID retrieves a grower by id.
func (repo *growerRepository) FindGrowerByID(ctx context.Context, id uuid.UUID) (*entity.Grower, error) {
	var growerM model.GrowerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&growerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGrowerNotFound
		}

		return nil, errors.Wrap(err, "failed to find grower by ID")
	}

	return &entity.Grower{
		ID:        growerM.ID,
		Email:     growerM.Email,
		Name:      growerM.Name,
		FarmName:  growerM.FarmName,
		CreatedAt: growerM.CreatedAt,
	}, nil
}

// FindGrowerProduct returns the grower's association with a product, with variant prices.
func (repo *growerRepository) FindGrowerProduct(ctx context.Context, growerID, productID uuid.UUID) (*entity.GrowerProduct, error) {
	var gpM model.GrowerProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Variants").
		Where("grower_id = ? AND product_id = ?", growerID, productID).
		First(&gpM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGrowerProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find grower product")
	}

	return toGrowerProductDomain(&gpM), nil
}

// ListGrowerProducts returns every product association of a grower.
func (repo *growerRepository) ListGrowerProducts(ctx context.Context, growerID uuid.UUID) ([]*entity.GrowerProduct, error) {
	var gpModels []*model.GrowerProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Variants").
		Where("grower_id = ?", growerID).
		Order("created_at ASC").
		Find(&gpModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list grower products")
	}

	gps := make([]*entity.GrowerProduct, 0, len(gpModels))
	for _, gpM := range gpModels {
		gps = append(gps, toGrowerProductDomain(gpM))
	}

	return gps, nil
}

// CreateGrowerProduct inserts the association and its variant prices.
func (repo *growerRepository) CreateGrowerProduct(ctx context.Context, gp *entity.GrowerProduct) error {
	gpM := &model.GrowerProductModel{
		ID:        gp.ID,
		GrowerID:  gp.GrowerID,
		ProductID: gp.ProductID,
		Stock:     gp.Stock,
	}
	db := repo.db.WithContext(ctx)

	if err := db.Omit(clause.Associations).Create(gpM).Error; err != nil {
		if isUniqueViolationOn(err, growerProductIndex) {
			return repository.ErrDuplicateGrowerProduct
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrNegativeStock
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create grower product")
	}

	if err := repo.insertVariantPrices(ctx, gpM.ID, gp.Variants); err != nil {
		return err
	}

	gp.ID = gpM.ID
	gp.CreatedAt = gpM.CreatedAt
	gp.UpdatedAt = gpM.UpdatedAt
	for i := range gp.Variants {
		gp.Variants[i].GrowerProductID = gpM.ID
	}

	return nil
}

// ReplaceGrowerProduct overwrites stock and variant prices of the existing association.
func (repo *growerRepository) ReplaceGrowerProduct(ctx context.Context, gp *entity.GrowerProduct) error {
	existing, err := repo.FindGrowerProduct(ctx, gp.GrowerID, gp.ProductID)
	if err != nil {
		return err
	}
	db := repo.db.WithContext(ctx)

	if err := db.Model(&model.GrowerProductModel{}).
		Where("id = ?", existing.ID).
		Update("stock", gp.Stock).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrNegativeStock
		}

		return errors.Wrap(err, "failed to replace grower product stock")
	}

	if err := db.Where("grower_product_id = ?", existing.ID).
		Delete(&model.GrowerProductVariantModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear grower variant prices")
	}

	if err := repo.insertVariantPrices(ctx, existing.ID, gp.Variants); err != nil {
		return err
	}

	gp.ID = existing.ID
	gp.CreatedAt = existing.CreatedAt
	for i := range gp.Variants {
		gp.Variants[i].GrowerProductID = existing.ID
	}

	return nil
}

// DeleteGrowerProduct removes the association; variant prices go with it through the cascade.
func (repo *growerRepository) DeleteGrowerProduct(ctx context.Context, growerID, productID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("grower_id = ? AND product_id = ?", growerID, productID).
		Delete(&model.GrowerProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete grower product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGrowerProductNotFound
	}

	return nil
}

// UpdateGrowerProductStock sets the grower's stock for a product.
func (repo *growerRepository) UpdateGrowerProductStock(ctx context.Context, growerID, productID uuid.UUID, stock int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GrowerProductModel{}).
		Where("grower_id = ? AND product_id = ?", growerID, productID).
		Update("stock", stock)

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrNegativeStock
		}

		return errors.Wrap(result.Error, "failed to update grower product stock")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGrowerProductNotFound
	}

	return nil
}

// UpsertVariantPrice sets the grower's price for a variant of a product the grower stocks.
func (repo *growerRepository) UpsertVariantPrice(ctx context.Context, growerID uuid.UUID, price entity.VariantPrice) error {
	db := repo.db.WithContext(ctx)

	var growerProductID uuid.UUID
	result := db.Model(&model.GrowerProductModel{}).
		Select("grower_products.id").
		Joins("JOIN product_variants ON product_variants.product_id = grower_products.product_id").
		Where("grower_products.grower_id = ? AND product_variants.id = ?", growerID, price.VariantID).
		Limit(1).
		Scan(&growerProductID)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to resolve grower product for variant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGrowerProductNotFound
	}

	row := &model.GrowerProductVariantModel{
		GrowerProductID: growerProductID,
		VariantID:       price.VariantID,
		Price:           price.Price,
	}
	if err := db.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "grower_product_id"}, {Name: "variant_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"price", "updated_at"}),
	}).Create(row).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrNegativePrice
		}

		return errors.Wrap(err, "failed to upsert grower variant price")
	}

	return nil
}

// SumStockByProduct returns the stock of a product summed over all growers.
func (repo *growerRepository) SumStockByProduct(ctx context.Context, productID uuid.UUID) (int, error) {
	var total int

	if err := repo.db.WithContext(ctx).
		Model(&model.GrowerProductModel{}).
		Select("COALESCE(SUM(stock), 0)").
		Where("product_id = ?", productID).
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum product stock")
	}

	return total, nil
}

// SumStockByProducts is SumStockByProduct for several products at once.
// Products without any grower are reported with zero stock.
func (repo *growerRepository) SumStockByProducts(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	totals := make(map[uuid.UUID]int, len(productIDs))
	if len(productIDs) == 0 {
		return totals, nil
	}

	var rows []struct {
		ProductID uuid.UUID
		Total     int
	}
	if err := repo.db.WithContext(ctx).
		Model(&model.GrowerProductModel{}).
		Select("product_id, COALESCE(SUM(stock), 0) AS total").
		Where("product_id IN ?", productIDs).
		Group("product_id").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum stock by products")
	}

	for _, id := range productIDs {
		totals[id] = 0
	}
	for _, row := range rows {
		totals[row.ProductID] = row.Total
	}

	return totals, nil
}

func (repo *growerRepository) insertVariantPrices(ctx context.Context, growerProductID uuid.UUID, variants []entity.GrowerProductVariant) error {
	if len(variants) == 0 {
		return nil
	}

	rows := make([]*model.GrowerProductVariantModel, 0, len(variants))
	for _, v := range variants {
		rows = append(rows, &model.GrowerProductVariantModel{
			GrowerProductID: growerProductID,
			VariantID:       v.VariantID,
			Price:           v.Price,
		})
	}

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(&rows).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrNegativePrice
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVariantNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create grower variant prices")
	}

	for i, row := range rows {
		variants[i].ID = row.ID
	}

	return nil
}

// --- Mapper Functions ---

func toGrowerProductDomain(data *model.GrowerProductModel) *entity.GrowerProduct {
	if data == nil {
		return nil
	}

	variants := make([]entity.GrowerProductVariant, 0, len(data.Variants))
	for _, v := range data.Variants {
		variants = append(variants, entity.GrowerProductVariant{
			ID:              v.ID,
			GrowerProductID: v.GrowerProductID,
			VariantID:       v.VariantID,
			Price:           v.Price,
		})
	}

	return &entity.GrowerProduct{
		ID:        data.ID,
		GrowerID:  data.GrowerID,
		ProductID: data.ProductID,
		Stock:     data.Stock,
		Variants:  variants,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
