package postgres

import (
	"context"
	"encoding/json"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

const defaultStockUpdateListLimit = 100

// stockUpdateRepository implements the repository.StockUpdateRepository interface.
type stockUpdateRepository struct {
	db *gorm.DB
}

// NewStockUpdateRepository is the constructor for stockUpdateRepository.
func NewStockUpdateRepository(db *gorm.DB) repository.StockUpdateRepository {
	return &stockUpdateRepository{
		db: db,
	}
}

// CreateStockUpdate persists a PENDING request. The partial unique index rejects a second
// PENDING request for the same variant.
func (repo *stockUpdateRepository) CreateStockUpdate(ctx context.Context, update *entity.GrowerStockUpdate) error {
	updateM, err := fromStockUpdateDomain(update)
	if err != nil {
		return err
	}
	updateM.Status = string(entity.StockUpdatePending)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(updateM).Error; err != nil {
		if isUniqueViolationOn(err, pendingStockUpdateIndex) {
			return repository.ErrPendingStockUpdateExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVariantNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create stock update request")
	}

	update.ID = updateM.ID
	update.Status = entity.StockUpdatePending
	update.RequestDate = updateM.RequestDate

	return nil
}

// FindStockUpdateByID retrieves a request by id.
func (repo *stockUpdateRepository) FindStockUpdateByID(ctx context.Context, id uuid.UUID) (*entity.GrowerStockUpdate, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(dbresolver.Write).Where("id = ?", id))
}

// FindPendingByVariant returns the PENDING request of a variant.
func (repo *stockUpdateRepository) FindPendingByVariant(ctx context.Context, variantID uuid.UUID) (*entity.GrowerStockUpdate, error) {
	return repo.findOne(repo.db.WithContext(ctx).
		Where("variant_id = ? AND status = ?", variantID, string(entity.StockUpdatePending)))
}

// FindPendingByProduct returns the PENDING request of any variant of the grower's product.
func (repo *stockUpdateRepository) FindPendingByProduct(ctx context.Context, growerID, productID uuid.UUID) (*entity.GrowerStockUpdate, error) {
	return repo.findOne(repo.db.WithContext(ctx).
		Where("grower_id = ? AND product_id = ? AND status = ?", growerID, productID, string(entity.StockUpdatePending)).
		Order("request_date DESC"))
}

// ExistsPendingByVariant reports whether the variant has a PENDING request.
func (repo *stockUpdateRepository) ExistsPendingByVariant(ctx context.Context, variantID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.GrowerStockUpdateModel{}).
		Where("variant_id = ? AND status = ?", variantID, string(entity.StockUpdatePending)).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check pending stock update")
	}

	return count > 0, nil
}

// Decide moves a PENDING request to a terminal status; the status guard in the WHERE clause
// makes concurrent decisions race safely.
func (repo *stockUpdateRepository) Decide(ctx context.Context, id uuid.UUID, decision repository.StockUpdateDecision) error {
	if !entity.StockUpdatePending.CanTransitionTo(decision.Status) {
		return repository.ErrStockUpdateNotPending
	}

	result := repo.db.WithContext(ctx).
		Model(&model.GrowerStockUpdateModel{}).
		Where("id = ? AND status = ?", id, string(entity.StockUpdatePending)).
		Updates(map[string]any{
			"status":        string(decision.Status),
			"admin_comment": decision.Comment,
			"decided_by":    decision.DecidedBy,
			"decided_at":    decision.DecidedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to decide stock update request")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindStockUpdateByID(ctx, id); err != nil {
			return err
		}

		return repository.ErrStockUpdateNotPending
	}

	return nil
}

// DeletePending removes a PENDING request owned by the grower.
func (repo *stockUpdateRepository) DeletePending(ctx context.Context, id, growerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND grower_id = ? AND status = ?", id, growerID, string(entity.StockUpdatePending)).
		Delete(&model.GrowerStockUpdateModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete stock update request")
	}

	if result.RowsAffected == 0 {
		existing, err := repo.FindStockUpdateByID(ctx, id)
		if err != nil {
			return err
		}
		if existing.GrowerID != growerID {
			return repository.ErrStockUpdateNotFound
		}

		return repository.ErrStockUpdateNotPending
	}

	return nil
}

// ListStockUpdates returns requests matching the filter, newest first.
func (repo *stockUpdateRepository) ListStockUpdates(ctx context.Context, filter repository.StockUpdateFilter) ([]*entity.GrowerStockUpdate, error) {
	query := repo.db.WithContext(ctx)

	if filter.GrowerID != nil {
		query = query.Where("grower_id = ?", *filter.GrowerID)
	}
	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultStockUpdateListLimit
	}

	var updateModels []*model.GrowerStockUpdateModel
	if err := query.
		Order("request_date DESC").
		Limit(limit).
		Offset(filter.Offset).
		Find(&updateModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stock update requests")
	}

	updates := make([]*entity.GrowerStockUpdate, 0, len(updateModels))
	for _, updateM := range updateModels {
		update, err := toStockUpdateDomain(updateM)
		if err != nil {
			return nil, err
		}
		updates = append(updates, update)
	}

	return updates, nil
}

func (repo *stockUpdateRepository) findOne(query *gorm.DB) (*entity.GrowerStockUpdate, error) {
	var updateM model.GrowerStockUpdateModel

	if err := query.First(&updateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStockUpdateNotFound
		}

		return nil, errors.Wrap(err, "failed to find stock update request")
	}

	return toStockUpdateDomain(&updateM)
}

// --- Mapper Functions ---

func toStockUpdateDomain(data *model.GrowerStockUpdateModel) (*entity.GrowerStockUpdate, error) {
	requested, err := decodePrices(data.RequestedPrices)
	if err != nil {
		return nil, err
	}
	previous, err := decodePrices(data.PreviousPrices)
	if err != nil {
		return nil, err
	}

	return &entity.GrowerStockUpdate{
		ID:              data.ID,
		GrowerID:        data.GrowerID,
		ProductID:       data.ProductID,
		VariantID:       data.VariantID,
		NewStock:        data.NewStock,
		PreviousStock:   data.PreviousStock,
		RequestedPrices: requested,
		PreviousPrices:  previous,
		Reason:          data.Reason,
		Status:          entity.StockUpdateStatus(data.Status),
		RequestDate:     data.RequestDate,
		AdminComment:    data.AdminComment,
		DecidedAt:       data.DecidedAt,
		DecidedBy:       data.DecidedBy,
	}, nil
}

func fromStockUpdateDomain(data *entity.GrowerStockUpdate) (*model.GrowerStockUpdateModel, error) {
	requested, err := encodePrices(data.RequestedPrices)
	if err != nil {
		return nil, err
	}
	previous, err := encodePrices(data.PreviousPrices)
	if err != nil {
		return nil, err
	}

	return &model.GrowerStockUpdateModel{
		ID:              data.ID,
		GrowerID:        data.GrowerID,
		ProductID:       data.ProductID,
		VariantID:       data.VariantID,
		NewStock:        data.NewStock,
		PreviousStock:   data.PreviousStock,
		RequestedPrices: requested,
		PreviousPrices:  previous,
		Reason:          data.Reason,
		Status:          string(data.Status),
		RequestDate:     data.RequestDate,
		AdminComment:    data.AdminComment,
		DecidedAt:       data.DecidedAt,
		DecidedBy:       data.DecidedBy,
	}, nil
}

func encodePrices(prices map[uuid.UUID]decimal.Decimal) (datatypes.JSON, error) {
	if len(prices) == 0 {
		return nil, nil
	}

	raw, err := json.Marshal(prices)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode prices")
	}

	return datatypes.JSON(raw), nil
}

func decodePrices(raw datatypes.JSON) (map[uuid.UUID]decimal.Decimal, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var prices map[uuid.UUID]decimal.Decimal
	if err := json.Unmarshal(raw, &prices); err != nil {
		return nil, errors.Wrap(err, "failed to decode prices")
	}

	return prices, nil
}
