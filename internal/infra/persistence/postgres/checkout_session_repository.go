package postgres

import (
	"context"
	"encoding/json"
	"time"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// checkoutSessionRepository implements the repository.CheckoutSessionRepository interface.
type checkoutSessionRepository struct {
	db *gorm.DB
}

// NewCheckoutSessionRepository is the constructor for checkoutSessionRepository.
func NewCheckoutSessionRepository(db *gorm.DB) repository.CheckoutSessionRepository {
	return &checkoutSessionRepository{
		db: db,
	}
}

// CreateCheckoutSession persists a new checkout session.
func (repo *checkoutSessionRepository) CreateCheckoutSession(ctx context.Context, session *entity.CheckoutSession) error {
	sessionM := fromCheckoutSessionDomain(session)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(sessionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBasketNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create checkout session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt
	session.UpdatedAt = sessionM.UpdatedAt

	return nil
}

// FindCheckoutSessionByID reads on the primary: callers look sessions up right after the
// payment path wrote them.
func (repo *checkoutSessionRepository) FindCheckoutSessionByID(ctx context.Context, id uuid.UUID) (*entity.CheckoutSession, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(dbresolver.Write).Where("id = ?", id))
}

// FindCheckoutSessionByProviderID retrieves a checkout session by the provider's session id.
func (repo *checkoutSessionRepository) FindCheckoutSessionByProviderID(ctx context.Context, providerSessionID string) (*entity.CheckoutSession, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(dbresolver.Write).Where("provider_session_id = ?", providerSessionID))
}

// MarkPaid moves a non-paid session to paid. The status guard makes the transition happen once.
func (repo *checkoutSessionRepository) MarkPaid(ctx context.Context, id uuid.UUID, payload json.RawMessage, paidAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CheckoutSessionModel{}).
		Where("id = ? AND payment_status <> ?", id, string(entity.PaymentStatusPaid)).
		Updates(map[string]any{
			"payment_status":  string(entity.PaymentStatusPaid),
			"success_payload": datatypes.JSON(payload),
			"paid_at":         paidAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark checkout session paid")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindCheckoutSessionByID(ctx, id); err != nil {
			return err
		}

		return repository.ErrCheckoutSessionAlreadyPaid
	}

	return nil
}

// MarkFailed moves a pending session to failed. Only the first failure notice wins.
func (repo *checkoutSessionRepository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CheckoutSessionModel{}).
		Where("id = ? AND payment_status = ?", id, string(entity.PaymentStatusPending)).
		Update("payment_status", string(entity.PaymentStatusFailed))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark checkout session failed")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindCheckoutSessionByID(ctx, id); err != nil {
			return err
		}

		return repository.ErrCheckoutSessionNotPending
	}

	return nil
}

func (repo *checkoutSessionRepository) findOne(query *gorm.DB) (*entity.CheckoutSession, error) {
	var sessionM model.CheckoutSessionModel

	if err := query.First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCheckoutSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find checkout session")
	}

	return toCheckoutSessionDomain(&sessionM), nil
}

// --- Mapper Functions ---

func toCheckoutSessionDomain(data *model.CheckoutSessionModel) *entity.CheckoutSession {
	if data == nil {
		return nil
	}

	session := &entity.CheckoutSession{
		ID:              data.ID,
		BasketSessionID: data.BasketSessionID,
		PaymentStatus:   entity.PaymentStatus(data.PaymentStatus),
		PaymentAmount:   data.PaymentAmount,
		WalletReserved:  data.WalletReserved,
		Provider:        data.Provider,
		RedirectURL:     data.RedirectURL,
		PaidAt:          data.PaidAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	if data.ProviderSessionID != nil {
		session.ProviderSessionID = *data.ProviderSessionID
	}
	if len(data.SuccessPayload) > 0 {
		session.SuccessPayload = json.RawMessage(data.SuccessPayload)
	}

	return session
}

func fromCheckoutSessionDomain(data *entity.CheckoutSession) *model.CheckoutSessionModel {
	if data == nil {
		return nil
	}

	sessionM := &model.CheckoutSessionModel{
		ID:              data.ID,
		BasketSessionID: data.BasketSessionID,
		PaymentStatus:   string(data.PaymentStatus),
		PaymentAmount:   data.PaymentAmount,
		WalletReserved:  data.WalletReserved,
		Provider:        data.Provider,
		RedirectURL:     data.RedirectURL,
		PaidAt:          data.PaidAt,
	}
	if sessionM.PaymentStatus == "" {
		sessionM.PaymentStatus = string(entity.PaymentStatusPending)
	}
	if data.ProviderSessionID != "" {
		providerID := data.ProviderSessionID
		sessionM.ProviderSessionID = &providerID
	}
	if len(data.SuccessPayload) > 0 {
		sessionM.SuccessPayload = datatypes.JSON(data.SuccessPayload)
	}

	return sessionM
}
