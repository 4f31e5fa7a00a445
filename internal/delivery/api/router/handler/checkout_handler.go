package handler

import (
	"io"
	"log/slog"
	"net/http"

	"market/internal/delivery/api/response"
	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderPaymentSignature carries the provider's webhook signature.
const HeaderPaymentSignature = "X-Payment-Signature"

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	StockUC    usecase.GrowerStockUsecase
	Logger     *slog.Logger
}

// CheckoutHandler serves the storefront: product listing, checkout and payment callbacks.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	stockUC    usecase.GrowerStockUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler.
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		stockUC:    params.StockUC,
		logger:     params.Logger,
	}
}

// ListStoreProducts returns the storefront listing with global stock.
func (h *CheckoutHandler) ListStoreProducts(c echo.Context) error {
	products, err := h.stockUC.ListStoreProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// GetProductGlobalStock returns one product's stock over all growers.
func (h *CheckoutHandler) GetProductGlobalStock(c echo.Context) error {
	id, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	stock, err := h.stockUC.GetProductGlobalStock(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entity.ProductStock{ProductID: id, GlobalStock: stock})
}

// Checkout creates the basket and opens its payment. Customers check out on their own
// account; requests without a token check out as a guest.
func (h *CheckoutHandler) Checkout(c echo.Context) error {
	var req usecase.CreateBasketInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	input := &usecase.CheckoutInput{Basket: req}
	if principal := deliverycontext.GetPrincipal(c); principal != nil {
		if !principal.Is(entity.RoleCustomer) {
			return response.Forbidden(c, domainerrors.ErrAccessDenied.ErrorCode(), "Access denied, please log in as customer or check out as a guest")
		}
		customerID := principal.Payload.SubjectID
		input.CustomerID = &customerID
	}

	output, err := h.checkoutUC.Checkout(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// GetCheckoutSession returns one checkout session, for polling after the provider redirect.
func (h *CheckoutHandler) GetCheckoutSession(c echo.Context) error {
	id, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	session, err := h.checkoutUC.GetCheckoutSessionByID(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// PaymentWebhook applies a signed payment provider callback. The raw body is what was signed.
func (h *CheckoutHandler) PaymentWebhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BindingError(c, "Unreadable webhook body")
	}

	signature := c.Request().Header.Get(HeaderPaymentSignature)
	if signature == "" {
		return response.Unauthorized(c, domainerrors.ErrInvalidWebhookSignature.ErrorCode(), "Missing "+HeaderPaymentSignature+" header")
	}

	if err := h.checkoutUC.HandlePaymentWebhook(c.Request().Context(), payload, signature); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
