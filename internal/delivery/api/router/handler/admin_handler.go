package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"market/internal/delivery/api/middleware"
	"market/internal/delivery/api/response"
	"market/internal/delivery/api/validator"
	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/errors"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	WalletUC     usecase.WalletUsecase
	ValidationUC usecase.StockValidationUsecase
	CheckoutUC   usecase.CheckoutUsecase
	Logger       *slog.Logger
}

// AdminHandler serves the back office.
type AdminHandler struct {
	walletUC     usecase.WalletUsecase
	validationUC usecase.StockValidationUsecase
	checkoutUC   usecase.CheckoutUsecase
	logger       *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		walletUC:     params.WalletUC,
		validationUC: params.ValidationUC,
		checkoutUC:   params.CheckoutUC,
		logger:       params.Logger,
	}
}

// AllocateCreditRequest is the body of POST /api/admin/allocate-credit.
type AllocateCreditRequest struct {
	CustomerID uuid.UUID       `json:"customerId" validate:"required"`
	Amount     decimal.Decimal `json:"amount" validate:"dpositive"`
	Reason     string          `json:"reason,omitempty" validate:"max=500"`
}

// AllocateCredit credits a customer's wallet. It answers {message} or {error}.
func (h *AdminHandler) AllocateCredit(c echo.Context) error {
	ctx := c.Request().Context()

	var req AllocateCreditRequest
	if err := c.Bind(&req); err != nil {
		return response.PlainError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		if fields := validator.FieldErrors(err); fields["amount"] != "" {
			return response.PlainError(c, http.StatusBadRequest, domainerrors.ErrInvalidCreditAmount.Message())
		}

		return response.PlainError(c, http.StatusBadRequest, "customerId and a positive amount are required")
	}

	adminID, _ := middleware.GetSubjectID(c)
	tx, err := h.walletUC.AllocateCredit(ctx, &usecase.AllocateCreditInput{
		AdminID:    adminID,
		CustomerID: req.CustomerID,
		Amount:     req.Amount,
		Reason:     req.Reason,
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
			return response.PlainError(c, appErr.HTTPCode(), appErr.Message())
		}
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Failed to allocate credit",
			slog.String("customer_id", req.CustomerID.String()),
			slog.Any("error", err),
		)

		return response.PlainError(c, http.StatusInternalServerError, "Failed to allocate credit")
	}

	return response.Message(c, http.StatusOK,
		"Allocated "+tx.Amount.StringFixed(2)+" to customer "+req.CustomerID.String())
}

// WalletResponse is a customer's balance and movements.
type WalletResponse struct {
	Balance      decimal.Decimal             `json:"balance"`
	Transactions []*entity.WalletTransaction `json:"transactions"`
}

// GetCustomerWallet returns a customer's balance and movements.
func (h *AdminHandler) GetCustomerWallet(c echo.Context) error {
	customerID, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	ctx := c.Request().Context()
	balance, err := h.walletUC.GetBalance(ctx, customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	transactions, err := h.walletUC.ListTransactions(ctx, customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, WalletResponse{Balance: balance, Transactions: transactions})
}

// ListStockUpdateRequests lists validation requests, optionally by status or product.
func (h *AdminHandler) ListStockUpdateRequests(c echo.Context) error {
	filter, ok, err := stockUpdateFilter(c)
	if !ok {
		return err
	}

	updates, err := h.validationUC.ListRequests(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updates)
}

// DecisionRequest is the optional body of approve and reject.
type DecisionRequest struct {
	Comment string `json:"comment,omitempty" validate:"max=1000"`
}

// ApproveStockUpdate applies a pending request.
func (h *AdminHandler) ApproveStockUpdate(c echo.Context) error {
	return h.decide(c, h.validationUC.Approve)
}

// RejectStockUpdate restores the values recorded when the request was made.
func (h *AdminHandler) RejectStockUpdate(c echo.Context) error {
	return h.decide(c, h.validationUC.Reject)
}

type decideFunc func(ctx context.Context, adminID, requestID uuid.UUID, comment string) (*entity.GrowerStockUpdate, error)

func (h *AdminHandler) decide(c echo.Context, fn decideFunc) error {
	requestID, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	var req DecisionRequest
	if c.Request().ContentLength != 0 {
		if ok, err := bindAndValidate(c, &req); !ok {
			return err
		}
	}

	adminID, _ := middleware.GetSubjectID(c)
	update, err := fn(c.Request().Context(), adminID, requestID, req.Comment)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, update)
}

// ListBaskets lists baskets by ?customer_id=&payment_status=&day=&delivered=&limit=&offset=.
func (h *AdminHandler) ListBaskets(c echo.Context) error {
	filter, ok, err := basketFilter(c)
	if !ok {
		return err
	}

	baskets, err := h.checkoutUC.GetBasketSessions(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, baskets)
}

// SetDeliveryDateRequest is the body of PUT /baskets/:id/delivery-date.
type SetDeliveryDateRequest struct {
	Day string `json:"day" validate:"required,datetime=2006-01-02"`
}

// SetDeliveryDate schedules a basket.
func (h *AdminHandler) SetDeliveryDate(c echo.Context) error {
	basketID, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	var req SetDeliveryDateRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	day, _ := time.Parse(dayLayout, req.Day)
	if err := h.checkoutUC.SetDeliveryDate(c.Request().Context(), basketID, day); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, req)
}

// RefundStatusRequest is the body of PUT /baskets/items/:itemId/refund.
type RefundStatusRequest struct {
	Status entity.RefundStatus `json:"status" validate:"required,oneof=none refunded"`
}

// UpdateBasketItemRefundStatus marks one basket item refunded or not.
func (h *AdminHandler) UpdateBasketItemRefundStatus(c echo.Context) error {
	itemID, ok, err := uuidParam(c, "itemId")
	if !ok {
		return err
	}

	var req RefundStatusRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.checkoutUC.UpdateBasketItemRefundStatus(c.Request().Context(), itemID, req.Status); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, req)
}

func basketFilter(c echo.Context) (entity.BasketFilter, bool, error) {
	var filter entity.BasketFilter
	invalid := func(name string) (entity.BasketFilter, bool, error) {
		return filter, false, response.BadRequest(c, "INVALID_QUERY", "Invalid "+name)
	}

	if v := c.QueryParam("customer_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return invalid("customer_id")
		}
		filter.CustomerID = &id
	}
	if v := c.QueryParam("payment_status"); v != "" {
		status := entity.PaymentStatus(v)
		if !status.IsValid() {
			return invalid("payment_status")
		}
		filter.PaymentStatus = &status
	}
	if v := c.QueryParam("day"); v != "" {
		day, err := time.Parse(dayLayout, v)
		if err != nil {
			return invalid("day")
		}
		filter.DeliveryDay = &day
	}
	if v := c.QueryParam("delivered"); v != "" {
		delivered, err := strconv.ParseBool(v)
		if err != nil {
			return invalid("delivered")
		}
		filter.Delivered = &delivered
	}
	if v := c.QueryParam("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			return invalid("limit")
		}
		filter.Limit = limit
	}
	if v := c.QueryParam("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil || offset < 0 {
			return invalid("offset")
		}
		filter.Offset = offset
	}

	return filter, true, nil
}
