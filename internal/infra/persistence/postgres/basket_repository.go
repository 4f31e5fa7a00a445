package postgres

import (
	"context"
	"time"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultBasketListLimit = 50

// basketRepository implements the repository.BasketRepository interface.
type basketRepository struct {
	db *gorm.DB
}

// NewBasketRepository is the constructor for basketRepository.
func NewBasketRepository(db *gorm.DB) repository.BasketRepository {
	return &basketRepository{
		db: db,
	}
}

// CreateBasketSession inserts the basket row, then its items.
func (repo *basketRepository) CreateBasketSession(ctx context.Context, basket *entity.BasketSession) error {
	basketM := fromBasketDomain(basket)
	db := repo.db.WithContext(ctx)

	if err := db.Omit(clause.Associations).Create(basketM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCustomerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create basket session")
	}

	itemModels := make([]*model.BasketSessionItemModel, 0, len(basket.Items))
	for i := range basket.Items {
		itemM := fromBasketItemDomain(&basket.Items[i])
		itemM.BasketSessionID = basketM.ID
		itemM.Position = i
		itemModels = append(itemModels, itemM)
	}

	if len(itemModels) > 0 {
		if err := db.Omit(clause.Associations).Create(&itemModels).Error; err != nil {
			if isForeignKeyConstraintViolation(err) {
				return repository.ErrInvalidItemReference
			}
			if isCheckConstraintViolation(err) {
				return domainerrors.ErrInvalidBasketItem.WrapMessage("quantity must be greater than zero")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to create basket items")
		}
	}

	basket.ID = basketM.ID
	basket.OrderIndex = basketM.OrderIndex
	basket.CreatedAt = basketM.CreatedAt
	basket.UpdatedAt = basketM.UpdatedAt
	for i, itemM := range itemModels {
		basket.Items[i].ID = itemM.ID
		basket.Items[i].BasketSessionID = basketM.ID
	}

	return nil
}

// AttachAddress links an address to a basket.
func (repo *basketRepository) AttachAddress(ctx context.Context, basketID, addressID uuid.UUID) error {
	return repo.updateColumns(ctx, basketID, map[string]any{"address_id": addressID}, "failed to attach address")
}

// FindBasketSessionByID returns the basket with its items and address.
func (repo *basketRepository) FindBasketSessionByID(ctx context.Context, id uuid.UUID) (*entity.BasketSession, error) {
	var basketM model.BasketSessionModel

	if err := repo.withRelations(repo.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&basketM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBasketNotFound
		}

		return nil, errors.Wrap(err, "failed to find basket session by ID")
	}

	return toBasketDomain(&basketM), nil
}

// ListBasketSessions returns baskets matching the filter, newest first.
func (repo *basketRepository) ListBasketSessions(ctx context.Context, filter entity.BasketFilter) ([]*entity.BasketSession, error) {
	query := repo.withRelations(repo.db.WithContext(ctx))

	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.PaymentStatus != nil {
		query = query.Where("payment_status = ?", string(*filter.PaymentStatus))
	}
	if filter.DeliveryDay != nil {
		query = query.Where("delivery_day = ?", filter.DeliveryDay.Format(time.DateOnly))
	}
	if filter.Delivered != nil {
		if *filter.Delivered {
			query = query.Where("delivered IS NOT NULL")
		} else {
			query = query.Where("delivered IS NULL")
		}
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultBasketListLimit
	}

	var basketModels []*model.BasketSessionModel
	if err := query.
		Order("order_index DESC").
		Limit(limit).
		Offset(filter.Offset).
		Find(&basketModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list basket sessions")
	}

	baskets := make([]*entity.BasketSession, 0, len(basketModels))
	for _, basketM := range basketModels {
		baskets = append(baskets, toBasketDomain(basketM))
	}

	return baskets, nil
}

// UpdatePaymentStatus sets the payment status of a basket.
func (repo *basketRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	return repo.updateColumns(ctx, id, map[string]any{"payment_status": string(status)}, "failed to update basket payment status")
}

// SetDeliveryDate sets the day a basket is delivered.
func (repo *basketRepository) SetDeliveryDate(ctx context.Context, id uuid.UUID, day time.Time) error {
	return repo.updateColumns(ctx, id, map[string]any{"delivery_day": day.Format(time.DateOnly)}, "failed to set delivery date")
}

// MarkDelivered stamps a basket that has not been delivered yet.
func (repo *basketRepository) MarkDelivered(ctx context.Context, id, delivererID uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BasketSessionModel{}).
		Where("id = ? AND delivered IS NULL", id).
		Updates(map[string]any{"delivered": at, "delivered_by": delivererID})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark basket delivered")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindBasketSessionByID(ctx, id); err != nil {
			return err
		}

		return repository.ErrBasketAlreadyDelivered
	}

	return nil
}

// FindBasketItemByID retrieves a single basket item.
func (repo *basketRepository) FindBasketItemByID(ctx context.Context, itemID uuid.UUID) (*entity.BasketSessionItem, error) {
	var itemM model.BasketSessionItemModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", itemID).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBasketItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find basket item by ID")
	}

	item := toBasketItemDomain(&itemM)

	return &item, nil
}

// UpdateItemRefundStatus sets the refund status of one basket item.
func (repo *basketRepository) UpdateItemRefundStatus(ctx context.Context, itemID uuid.UUID, status entity.RefundStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BasketSessionItemModel{}).
		Where("id = ?", itemID).
		Update("refund_status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update item refund status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBasketItemNotFound
	}

	return nil
}

func (repo *basketRepository) withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Address")
}

func (repo *basketRepository) updateColumns(ctx context.Context, id uuid.UUID, columns map[string]any, msg string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BasketSessionModel{}).
		Where("id = ?", id).
		Updates(columns)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrAddressNotFound
		}

		return errors.Wrap(result.Error, msg)
	}

	if result.RowsAffected == 0 {
		return repository.ErrBasketNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toBasketDomain(data *model.BasketSessionModel) *entity.BasketSession {
	if data == nil {
		return nil
	}

	items := make([]entity.BasketSessionItem, 0, len(data.Items))
	for i := range data.Items {
		items = append(items, toBasketItemDomain(&data.Items[i]))
	}

	return &entity.BasketSession{
		ID:               data.ID,
		OrderIndex:       data.OrderIndex,
		CustomerID:       data.CustomerID,
		Items:            items,
		Total:            data.Total,
		PaymentStatus:    entity.PaymentStatus(data.PaymentStatus),
		AddressID:        data.AddressID,
		Address:          toAddressDomain(data.Address),
		DeliveryCost:     data.DeliveryCost,
		DeliveryDay:      data.DeliveryDay,
		Delivered:        data.Delivered,
		DeliveredBy:      data.DeliveredBy,
		WalletAmountUsed: data.WalletAmountUsed,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromBasketDomain(data *entity.BasketSession) *model.BasketSessionModel {
	if data == nil {
		return nil
	}

	status := data.PaymentStatus
	if status == "" {
		status = entity.PaymentStatusPending
	}

	return &model.BasketSessionModel{
		ID:               data.ID,
		CustomerID:       data.CustomerID,
		Total:            data.Total,
		PaymentStatus:    string(status),
		AddressID:        data.AddressID,
		DeliveryCost:     data.DeliveryCost,
		DeliveryDay:      data.DeliveryDay,
		Delivered:        data.Delivered,
		DeliveredBy:      data.DeliveredBy,
		WalletAmountUsed: data.WalletAmountUsed,
	}
}

func toBasketItemDomain(data *model.BasketSessionItemModel) entity.BasketSessionItem {
	return entity.BasketSessionItem{
		ID:               data.ID,
		BasketSessionID:  data.BasketSessionID,
		Kind:             entity.ItemKind(data.Kind),
		ProductID:        data.ProductID,
		ProductVariantID: data.ProductVariantID,
		PanyenID:         data.PanyenID,
		Quantity:         data.Quantity,
		Name:             data.Name,
		Price:            data.Price,
		Description:      data.Description,
		RefundStatus:     entity.RefundStatus(data.RefundStatus),
	}
}

func fromBasketItemDomain(data *entity.BasketSessionItem) *model.BasketSessionItemModel {
	refund := data.RefundStatus
	if refund == "" {
		refund = entity.RefundStatusNone
	}

	return &model.BasketSessionItemModel{
		ID:               data.ID,
		BasketSessionID:  data.BasketSessionID,
		Kind:             string(data.Kind),
		ProductID:        data.ProductID,
		ProductVariantID: data.ProductVariantID,
		PanyenID:         data.PanyenID,
		Quantity:         data.Quantity,
		Name:             data.Name,
		Price:            data.Price,
		Description:      data.Description,
		RefundStatus:     string(refund),
	}
}
