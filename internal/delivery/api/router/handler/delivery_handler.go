package handler

import (
	"log/slog"
	"net/http"
	"time"

	"market/internal/delivery/api/middleware"
	"market/internal/delivery/api/response"
	"market/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeliveryHandlerParams holds dependencies for DeliveryHandler, injected by Fx.
type DeliveryHandlerParams struct {
	fx.In

	DeliveryUC usecase.DeliveryUsecase
	Logger     *slog.Logger
}

// DeliveryHandler serves the deliverer portal.
type DeliveryHandler struct {
	deliveryUC usecase.DeliveryUsecase
	logger     *slog.Logger
}

// NewDeliveryHandler is the constructor for DeliveryHandler.
func NewDeliveryHandler(params DeliveryHandlerParams) *DeliveryHandler {
	return &DeliveryHandler{deliveryUC: params.DeliveryUC, logger: params.Logger}
}

// ListDeliveries returns the paid baskets of ?day=YYYY-MM-DD, today when omitted.
func (h *DeliveryHandler) ListDeliveries(c echo.Context) error {
	day := time.Now().UTC().Truncate(24 * time.Hour)
	if v := c.QueryParam("day"); v != "" {
		parsed, err := time.Parse(dayLayout, v)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "day must be YYYY-MM-DD")
		}
		day = parsed
	}

	baskets, err := h.deliveryUC.ListDeliveries(c.Request().Context(), day)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, baskets)
}

// GenerateSlip renders and stores the delivery slip of a basket.
func (h *DeliveryHandler) GenerateSlip(c echo.Context) error {
	basketID, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	output, err := h.deliveryUC.GenerateDeliverySlip(c.Request().Context(), basketID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// ConfirmRequest is the body of POST /confirm: the scanned QR code content.
type ConfirmRequest struct {
	QRPayload string `json:"qr_payload" validate:"required"`
}

// ConfirmDelivery marks the scanned basket delivered by the authenticated deliverer.
func (h *DeliveryHandler) ConfirmDelivery(c echo.Context) error {
	delivererID, ok := middleware.GetSubjectID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req ConfirmRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	basket, err := h.deliveryUC.ConfirmDeliveryByQR(c.Request().Context(), delivererID, req.QRPayload)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, basket)
}
