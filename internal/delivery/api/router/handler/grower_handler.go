package handler

import (
	"log/slog"
	"net/http"

	"market/internal/delivery/api/middleware"
	"market/internal/delivery/api/response"
	"market/internal/domain/entity"
	"market/internal/domain/repository"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GrowerHandlerParams holds dependencies for GrowerHandler, injected by Fx.
type GrowerHandlerParams struct {
	fx.In

	StockUC      usecase.GrowerStockUsecase
	ValidationUC usecase.StockValidationUsecase
	Logger       *slog.Logger
}

// GrowerHandler serves the grower portal. Every action applies to the authenticated grower.
type GrowerHandler struct {
	stockUC      usecase.GrowerStockUsecase
	validationUC usecase.StockValidationUsecase
	logger       *slog.Logger
}

// NewGrowerHandler is the constructor for GrowerHandler.
func NewGrowerHandler(params GrowerHandlerParams) *GrowerHandler {
	return &GrowerHandler{
		stockUC:      params.StockUC,
		validationUC: params.ValidationUC,
		logger:       params.Logger,
	}
}

// AddGrowerProductRequest is the body of POST /products.
type AddGrowerProductRequest struct {
	ProductID    uuid.UUID `json:"product_id" validate:"required"`
	Stock        int       `json:"stock"`
	ForceReplace bool      `json:"force_replace"`
}

// UpdateStockRequest is the body of PUT /products/:productId/stock.
type UpdateStockRequest struct {
	Stock int `json:"stock"`
}

// UpdatePricesRequest is the body of PUT /variants/prices.
type UpdatePricesRequest struct {
	Prices []entity.VariantPrice `json:"prices" validate:"required,min=1"`
}

func (h *GrowerHandler) growerID(c echo.Context) (uuid.UUID, bool, error) {
	id, ok := middleware.GetSubjectID(c)
	if !ok {
		return uuid.Nil, false, response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	return id, true, nil
}

// ListGrowerProducts returns the grower's stocked products.
func (h *GrowerHandler) ListGrowerProducts(c echo.Context) error {
	growerID, ok, err := h.growerID(c)
	if !ok {
		return err
	}

	products, err := h.stockUC.ListGrowerProducts(c.Request().Context(), growerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// AddGrowerProduct starts stocking a product.
func (h *GrowerHandler) AddGrowerProduct(c echo.Context) error {
	growerID, ok, err := h.growerID(c)
	if !ok {
		return err
	}

	var req AddGrowerProductRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	gp, err := h.stockUC.AddGrowerProduct(c.Request().Context(), growerID, req.ProductID, req.Stock, req.ForceReplace)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, gp)
}

// RemoveGrowerProduct stops stocking a product.
func (h *GrowerHandler) RemoveGrowerProduct(c echo.Context) error {
	growerID, ok, err := h.growerID(c)
	if !ok {
		return err
	}

	productID, ok, err := uuidParam(c, "productId")
	if !ok {
		return err
	}

	if err := h.stockUC.RemoveGrowerProduct(c.Request().Context(), growerID, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateGrowerProductStock sets the grower's stock for a product.
func (h *GrowerHandler) UpdateGrowerProductStock(c echo.Context) error {
	growerID, ok, err := h.growerID(c)
	if !ok {
		return err
	}

	productID, ok, err := uuidParam(c, "productId")
	if !ok {
		return err
	}

	var req UpdateStockRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.stockUC.UpdateGrowerProductStock(c.Request().Context(), growerID, productID, req.Stock); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, req)
}

// UpdateMultipleVariantPrices sets several variant prices at once.
func (h *GrowerHandler) UpdateMultipleVariantPrices(c echo.Context) error {
	growerID, ok, err := h.growerID(c)
	if !ok {
		return err
	}

	var req UpdatePricesRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.stockUC.UpdateMultipleVariantPrices(c.Request().Context(), growerID, req.Prices); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, req)
}

// GetGrowerStockPageData returns the stock editor data for one product.
func (h *GrowerHandler) GetGrowerStockPageData(c echo.Context) error {
	growerID, ok, err := h.growerID(c)
	if !ok {
		return err
	}

	productID, ok, err := uuidParam(c, "productId")
	if !ok {
		return err
	}

	data, err := h.stockUC.GetGrowerStockPageData(c.Request().Context(), growerID, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, data)
}

// CreateStockUpdateRequest submits stock and price changes for admin sign-off.
func (h *GrowerHandler) CreateStockUpdateRequest(c echo.Context) error {
	growerID, ok, err := h.growerID(c)
	if !ok {
		return err
	}

	var req usecase.CreateStockUpdateInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	update, err := h.validationUC.CreateRequest(c.Request().Context(), growerID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, update)
}

// ListStockUpdateRequests returns the grower's own requests.
func (h *GrowerHandler) ListStockUpdateRequests(c echo.Context) error {
	growerID, ok, err := h.growerID(c)
	if !ok {
		return err
	}

	filter, ok, err := stockUpdateFilter(c)
	if !ok {
		return err
	}
	filter.GrowerID = &growerID

	updates, err := h.validationUC.ListRequests(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updates)
}

// CancelStockUpdateRequest withdraws one of the grower's pending requests.
func (h *GrowerHandler) CancelStockUpdateRequest(c echo.Context) error {
	growerID, ok, err := h.growerID(c)
	if !ok {
		return err
	}

	requestID, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}

	if err := h.validationUC.Cancel(c.Request().Context(), growerID, requestID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// PendingUpdateResponse answers whether a variant is locked by a pending request.
type PendingUpdateResponse struct {
	Pending bool                      `json:"pending"`
	Update  *entity.GrowerStockUpdate `json:"update,omitempty"`
}

// GetPendingUpdateForVariant returns the variant's pending request, if any.
func (h *GrowerHandler) GetPendingUpdateForVariant(c echo.Context) error {
	variantID, ok, err := uuidParam(c, "variantId")
	if !ok {
		return err
	}

	update, err := h.validationUC.GetPendingUpdateForVariant(c.Request().Context(), variantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, PendingUpdateResponse{Pending: update != nil, Update: update})
}

// stockUpdateFilter reads ?status=&product_id=&limit=&offset=.
func stockUpdateFilter(c echo.Context) (repository.StockUpdateFilter, bool, error) {
	var query struct {
		Status    string `query:"status"`
		ProductID string `query:"product_id"`
		Limit     int    `query:"limit"`
		Offset    int    `query:"offset"`
	}
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return repository.StockUpdateFilter{}, false, response.BadRequest(c, "INVALID_QUERY", "Invalid query parameters")
	}

	filter := repository.StockUpdateFilter{Limit: query.Limit, Offset: query.Offset}
	if query.Status != "" {
		status := entity.StockUpdateStatus(query.Status)
		if !status.IsValid() {
			return filter, false, response.BadRequest(c, "INVALID_QUERY", "Unknown status "+query.Status)
		}
		filter.Status = &status
	}
	if query.ProductID != "" {
		productID, err := uuid.Parse(query.ProductID)
		if err != nil {
			return filter, false, response.BadRequest(c, "INVALID_QUERY", "Invalid product_id")
		}
		filter.ProductID = &productID
	}

	return filter, true, nil
}
