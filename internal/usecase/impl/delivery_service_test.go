package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/errors"
	mockRepo "market/internal/mocks/repository"
	mockSvc "market/internal/mocks/service"
	mockUsecase "market/internal/mocks/usecase"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deliveryServiceFixtures holds all test dependencies for delivery service tests.
type deliveryServiceFixtures struct {
	service     usecase.DeliveryUsecase
	basketRepo  *mockRepo.MockBasketRepository
	productRepo *mockRepo.MockProductRepository
	checkout    *mockUsecase.MockCheckoutUsecase
	qrCode      *mockSvc.MockQRCodeService
	storage     *mockSvc.MockSlipStorage
}

func createTestDeliveryService(t *testing.T) deliveryServiceFixtures {
	f := deliveryServiceFixtures{
		basketRepo:  mockRepo.NewMockBasketRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		checkout:    mockUsecase.NewMockCheckoutUsecase(t),
		qrCode:      mockSvc.NewMockQRCodeService(t),
		storage:     mockSvc.NewMockSlipStorage(t),
	}

	f.service = NewDeliveryService(DeliveryServiceParams{
		BasketRepo:  f.basketRepo,
		ProductRepo: f.productRepo,
		Checkout:    f.checkout,
		QRCode:      f.qrCode,
		Storage:     f.storage,
		Logger:      newDiscardLogger(),
	})

	return f
}

func TestDeliveryService_ListDeliveries(t *testing.T) {
	f := createTestDeliveryService(t)
	day := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	baskets := []*entity.BasketSession{{ID: uuid.New()}}

	f.basketRepo.EXPECT().
		ListBasketSessions(mock.Anything, mock.MatchedBy(func(filter entity.BasketFilter) bool {
			return *filter.PaymentStatus == entity.PaymentStatusPaid && filter.DeliveryDay.Equal(day)
		})).
		Return(baskets, nil)

	got, err := f.service.ListDeliveries(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, baskets, got)
}

func TestDeliveryService_GenerateDeliverySlip(t *testing.T) {
	f := createTestDeliveryService(t)
	ctx := context.Background()

	printed, hidden := uuid.New(), uuid.New()
	productID, panyenID := uuid.New(), uuid.New()
	basket := &entity.BasketSession{
		ID:            uuid.New(),
		OrderIndex:    42,
		PaymentStatus: entity.PaymentStatusPaid,
		Total:         decimal.NewFromInt(30),
		Items: []entity.BasketSessionItem{
			{Kind: entity.ItemKindLeaf, ProductID: &productID, ProductVariantID: &printed, Name: "Eggs", Quantity: 2, Description: "free range"},
			{Kind: entity.ItemKindLeaf, ProductID: &productID, ProductVariantID: &hidden, Name: "Milk", Quantity: 1, Description: "internal note"},
			{Kind: entity.ItemKindComposite, PanyenID: &panyenID, Name: "Box", Quantity: 1, Description: "box note"},
		},
	}

	f.checkout.EXPECT().GetBasketSessionByID(ctx, basket.ID).Return(basket, nil)
	f.productRepo.EXPECT().FindVariantsByIDs(ctx, []uuid.UUID{printed, hidden}).Return(map[uuid.UUID]*entity.ProductVariant{
		printed: {ID: printed, ShowDescriptionOnPrintDelivery: true},
		hidden:  {ID: hidden},
	}, nil)
	f.qrCode.EXPECT().GenerateDeliveryQR(basket.ID).Return([]byte("png"), nil)

	var stored []byte
	f.storage.EXPECT().
		Put(ctx, "slips/"+basket.ID.String()+".json", slipContentType, mock.Anything).
		RunAndReturn(func(_ context.Context, _, _ string, data []byte) error {
			stored = data

			return nil
		})
	f.storage.EXPECT().Put(ctx, "slips/"+basket.ID.String()+".png", qrContentType, []byte("png")).Return(nil)

	out, err := f.service.GenerateDeliverySlip(ctx, basket.ID)
	require.NoError(t, err)
	require.Len(t, out.Slip.Lines, 3)
	assert.Equal(t, "free range", out.Slip.Lines[0].Description)
	assert.Empty(t, out.Slip.Lines[1].Description)
	assert.Empty(t, out.Slip.Lines[2].Description)

	var decoded usecase.DeliverySlip
	require.NoError(t, json.Unmarshal(stored, &decoded))
	assert.Equal(t, int64(42), decoded.OrderIndex)
}

func TestDeliveryService_GenerateDeliverySlip_Unpaid(t *testing.T) {
	f := createTestDeliveryService(t)
	basket := &entity.BasketSession{ID: uuid.New(), PaymentStatus: entity.PaymentStatusPending}
	f.checkout.EXPECT().GetBasketSessionByID(mock.Anything, basket.ID).Return(basket, nil)

	_, err := f.service.GenerateDeliverySlip(context.Background(), basket.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrBasketNotPaid))
}

func TestDeliveryService_ConfirmDeliveryByQR(t *testing.T) {
	t.Run("valid code", func(t *testing.T) {
		f := createTestDeliveryService(t)
		delivererID, basketID := uuid.New(), uuid.New()
		delivered := &entity.BasketSession{ID: basketID}

		f.qrCode.EXPECT().ParseDeliveryQR("payload").Return(basketID, nil)
		f.checkout.EXPECT().MarkDelivered(mock.Anything, basketID, delivererID).Return(delivered, nil)

		got, err := f.service.ConfirmDeliveryByQR(context.Background(), delivererID, "payload")
		require.NoError(t, err)
		assert.Equal(t, delivered, got)
	})

	t.Run("unreadable code", func(t *testing.T) {
		f := createTestDeliveryService(t)
		f.qrCode.EXPECT().ParseDeliveryQR("junk").Return(uuid.Nil, errors.New("bad json"))

		_, err := f.service.ConfirmDeliveryByQR(context.Background(), uuid.New(), "junk")
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidQRCode))
	})
}
