package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/domain/service"
	"market/internal/errors"
	"market/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	slipContentType = "application/json"
	qrContentType   = "image/png"
)

// deliveryService implements the DeliveryUsecase interface.
type deliveryService struct {
	basketRepo  repository.BasketRepository
	productRepo repository.ProductRepository
	checkout    usecase.CheckoutUsecase
	qrCode      service.QRCodeService
	storage     service.SlipStorage
	logger      *slog.Logger
}

// DeliveryServiceParams holds dependencies for DeliveryService, injected by Fx.
type DeliveryServiceParams struct {
	fx.In

	BasketRepo  repository.BasketRepository
	ProductRepo repository.ProductRepository
	Checkout    usecase.CheckoutUsecase
	QRCode      service.QRCodeService
	Storage     service.SlipStorage
	Logger      *slog.Logger
}

// NewDeliveryService is the constructor for deliveryService.
func NewDeliveryService(params DeliveryServiceParams) usecase.DeliveryUsecase {
	return &deliveryService{
		basketRepo:  params.BasketRepo,
		productRepo: params.ProductRepo,
		checkout:    params.Checkout,
		qrCode:      params.QRCode,
		storage:     params.Storage,
		logger:      params.Logger,
	}
}

func (srv *deliveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListDeliveries returns the paid baskets scheduled for day.
func (srv *deliveryService) ListDeliveries(ctx context.Context, day time.Time) ([]*entity.BasketSession, error) {
	paid := entity.PaymentStatusPaid
	baskets, err := srv.basketRepo.ListBasketSessions(ctx, entity.BasketFilter{
		PaymentStatus: &paid,
		DeliveryDay:   &day,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list deliveries")
	}

	return baskets, nil
}

// GenerateDeliverySlip renders the slip document and its QR code into slip storage.
func (srv *deliveryService) GenerateDeliverySlip(ctx context.Context, basketID uuid.UUID) (*usecase.DeliverySlipOutput, error) {
	basket, err := srv.checkout.GetBasketSessionByID(ctx, basketID)
	if err != nil {
		return nil, err
	}
	if basket.PaymentStatus != entity.PaymentStatusPaid {
		return nil, domainerrors.ErrBasketNotPaid
	}

	lines, err := srv.slipLines(ctx, basket.Items)
	if err != nil {
		return nil, err
	}

	slip := usecase.DeliverySlip{
		BasketID:    basket.ID,
		OrderIndex:  basket.OrderIndex,
		DeliveryDay: basket.DeliveryDay,
		Address:     basket.Address,
		Lines:       lines,
		Total:       basket.Total,
	}

	document, err := json.Marshal(slip)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode delivery slip")
	}
	png, err := srv.qrCode.GenerateDeliveryQR(basket.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate delivery QR code")
	}

	out := &usecase.DeliverySlipOutput{
		Slip:    slip,
		SlipKey: slipObjectKey(basket.ID, "json"),
		QRKey:   slipObjectKey(basket.ID, "png"),
	}
	if err := srv.storage.Put(ctx, out.SlipKey, slipContentType, document); err != nil {
		return nil, errors.Wrap(err, "failed to store delivery slip")
	}
	if err := srv.storage.Put(ctx, out.QRKey, qrContentType, png); err != nil {
		return nil, errors.Wrap(err, "failed to store delivery QR code")
	}

	srv.log(ctx).Info("Delivery slip generated",
		slog.String("basket_id", basket.ID.String()),
		slog.String("slip_key", out.SlipKey),
	)

	return out, nil
}

func slipObjectKey(basketID uuid.UUID, ext string) string {
	return fmt.Sprintf("slips/%s.%s", basketID, ext)
}

// slipLines keeps item descriptions only for variants flagged to print them.
func (srv *deliveryService) slipLines(ctx context.Context, items []entity.BasketSessionItem) ([]usecase.SlipLine, error) {
	var variantIDs []uuid.UUID
	for i := range items {
		if leaf, ok := items[i].Leaf(); ok {
			variantIDs = append(variantIDs, leaf.VariantID)
		}
	}

	variants := map[uuid.UUID]*entity.ProductVariant{}
	if len(variantIDs) > 0 {
		var err error
		variants, err = srv.productRepo.FindVariantsByIDs(ctx, variantIDs)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find slip variants")
		}
	}

	lines := make([]usecase.SlipLine, 0, len(items))
	for i := range items {
		item := &items[i]
		line := usecase.SlipLine{Name: item.Name, Quantity: item.Quantity}
		if leaf, ok := item.Leaf(); ok {
			if v, found := variants[leaf.VariantID]; found && v.ShowDescriptionOnPrintDelivery {
				line.Description = item.Description
			}
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// ConfirmDeliveryByQR marks the basket encoded in a scanned slip as delivered.
func (srv *deliveryService) ConfirmDeliveryByQR(ctx context.Context, delivererID uuid.UUID, qrPayload string) (*entity.BasketSession, error) {
	basketID, err := srv.qrCode.ParseDeliveryQR(qrPayload)
	if err != nil {
		srv.log(ctx).Warn("Unreadable delivery QR code", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidQRCode
	}

	return srv.checkout.MarkDelivered(ctx, basketID, delivererID)
}
