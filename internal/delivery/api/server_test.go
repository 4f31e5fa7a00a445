package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"market/config"
	apimiddleware "market/internal/delivery/api/middleware"
	"market/internal/delivery/api/router"
	"market/internal/delivery/api/router/handler"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	mockUsecase "market/internal/mocks/usecase"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixture struct {
	e          *echo.Echo
	auth       *mockUsecase.MockAuthUsecase
	checkout   *mockUsecase.MockCheckoutUsecase
	stock      *mockUsecase.MockGrowerStockUsecase
	validation *mockUsecase.MockStockValidationUsecase
	wallet     *mockUsecase.MockWalletUsecase
	delivery   *mockUsecase.MockDeliveryUsecase
	subjects   map[entity.Role]uuid.UUID
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1M"

	f := &apiFixture{
		auth:       mockUsecase.NewMockAuthUsecase(t),
		checkout:   mockUsecase.NewMockCheckoutUsecase(t),
		stock:      mockUsecase.NewMockGrowerStockUsecase(t),
		validation: mockUsecase.NewMockStockValidationUsecase(t),
		wallet:     mockUsecase.NewMockWalletUsecase(t),
		delivery:   mockUsecase.NewMockDeliveryUsecase(t),
		subjects:   make(map[entity.Role]uuid.UUID),
	}

	for _, role := range []entity.Role{entity.RoleAdmin, entity.RoleCustomer, entity.RoleGrower, entity.RoleDeliverer} {
		subject := uuid.New()
		f.subjects[role] = subject
		f.auth.EXPECT().
			ResolvePrincipal(mock.Anything, "token-"+role.String()).
			Return(&entity.Principal{Role: role, Payload: entity.PrincipalPayload{SubjectID: subject}}, nil).
			Maybe()
	}
	f.auth.EXPECT().
		ResolvePrincipal(mock.Anything, "expired").
		Return(nil, domainerrors.ErrUnauthorized.WrapMessage("token is expired")).
		Maybe()

	f.e = NewEcho(cfg, logger, router.RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: f.auth, Logger: logger}),
		CheckoutHandler: handler.NewCheckoutHandler(handler.CheckoutHandlerParams{
			CheckoutUC: f.checkout, StockUC: f.stock, Logger: logger,
		}),
		GrowerHandler: handler.NewGrowerHandler(handler.GrowerHandlerParams{
			StockUC: f.stock, ValidationUC: f.validation, Logger: logger,
		}),
		AdminHandler: handler.NewAdminHandler(handler.AdminHandlerParams{
			WalletUC: f.wallet, ValidationUC: f.validation, CheckoutUC: f.checkout, Logger: logger,
		}),
		DeliveryHandler: handler.NewDeliveryHandler(handler.DeliveryHandlerParams{DeliveryUC: f.delivery, Logger: logger}),
		AuthMiddleware:  apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{AuthUC: f.auth, Logger: logger}),
	})

	return f
}

// do sends a request; token is "" for anonymous calls or a role name.
func (f *apiFixture) do(t *testing.T, method, path, token, body string, headers ...string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded), rec.Body.String())
	}

	return rec, decoded
}

func errorCode(body map[string]any) string {
	errInfo, _ := body["error"].(map[string]any)
	code, _ := errInfo["code"].(string)

	return code
}

func TestAPI_HealthAndRequestID(t *testing.T) {
	f := newAPIFixture(t)

	rec, body := f.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestAPI_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newAPIFixture(t)
		f.auth.EXPECT().
			Login(mock.Anything, entity.RoleGrower, "ana@farm.test", "secret").
			Return(&usecase.LoginOutput{Token: "signed"}, nil)

		rec, body := f.do(t, http.MethodPost, "/auth/grower/login", "", `{"email":"ana@farm.test","password":"secret"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		data := body["data"].(map[string]any)
		assert.Equal(t, "signed", data["token"])
		assert.NotEmpty(t, body["meta"].(map[string]any)["request_id"])
	})

	t.Run("validation failure lists fields", func(t *testing.T) {
		f := newAPIFixture(t)

		rec, body := f.do(t, http.MethodPost, "/auth/grower/login", "", `{"email":"not-an-email"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(body))
		details := body["error"].(map[string]any)["details"].(map[string]any)
		assert.Equal(t, "email", details["email"])
		assert.Equal(t, "required", details["password"])
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAPIFixture(t)
		f.auth.EXPECT().
			Login(mock.Anything, entity.RoleAdmin, "boss@market.test", "nope").
			Return(nil, domainerrors.ErrInvalidCredentials)

		rec, body := f.do(t, http.MethodPost, "/auth/admin/login", "", `{"email":"boss@market.test","password":"nope"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", errorCode(body))
	})
}

func TestAPI_RoleEnforcement(t *testing.T) {
	f := newAPIFixture(t)

	rec, body := f.do(t, http.MethodGet, "/api/v1/grower/products", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", errorCode(body))

	rec, body = f.do(t, http.MethodGet, "/api/v1/grower/products", "expired", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", errorCode(body))

	rec, body = f.do(t, http.MethodGet, "/api/v1/grower/products", "token-customer", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "ACCESS_DENIED", errorCode(body))
	assert.Contains(t, body["error"].(map[string]any)["message"], "log in as grower")

	rec, body = f.do(t, http.MethodPost, "/api/admin/allocate-credit", "token-grower", `{}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "ACCESS_DENIED", errorCode(body))
}

func TestAPI_GrowerStock(t *testing.T) {
	t.Run("add product for the authenticated grower", func(t *testing.T) {
		f := newAPIFixture(t)
		growerID := f.subjects[entity.RoleGrower]
		productID := uuid.New()

		f.stock.EXPECT().
			AddGrowerProduct(mock.Anything, growerID, productID, 12, true).
			Return(&entity.GrowerProduct{GrowerID: growerID, ProductID: productID, Stock: 12}, nil)

		rec, _ := f.do(t, http.MethodPost, "/api/v1/grower/products", "token-grower",
			`{"product_id":"`+productID.String()+`","stock":12,"force_replace":true}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("domain error keeps its code", func(t *testing.T) {
		f := newAPIFixture(t)
		productID := uuid.New()

		f.stock.EXPECT().
			UpdateGrowerProductStock(mock.Anything, f.subjects[entity.RoleGrower], productID, -1).
			Return(domainerrors.ErrNegativeStock)

		rec, body := f.do(t, http.MethodPut, "/api/v1/grower/products/"+productID.String()+"/stock", "token-grower", `{"stock":-1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "NEGATIVE_STOCK", errorCode(body))
	})

	t.Run("invalid path id", func(t *testing.T) {
		f := newAPIFixture(t)

		rec, body := f.do(t, http.MethodDelete, "/api/v1/grower/products/not-a-uuid", "token-grower", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", errorCode(body))
	})

	t.Run("batched prices", func(t *testing.T) {
		f := newAPIFixture(t)
		variantID := uuid.New()

		f.stock.EXPECT().
			UpdateMultipleVariantPrices(mock.Anything, f.subjects[entity.RoleGrower], mock.MatchedBy(func(prices []entity.VariantPrice) bool {
				return len(prices) == 1 && prices[0].VariantID == variantID && prices[0].Price.Equal(decimal.RequireFromString("3.25"))
			})).
			Return(nil)

		rec, _ := f.do(t, http.MethodPut, "/api/v1/grower/variants/prices", "token-grower",
			`{"prices":[{"variant_id":"`+variantID.String()+`","price":"3.25"}]}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("no pending update", func(t *testing.T) {
		f := newAPIFixture(t)
		variantID := uuid.New()

		f.validation.EXPECT().GetPendingUpdateForVariant(mock.Anything, variantID).Return(nil, nil)

		rec, body := f.do(t, http.MethodGet, "/api/v1/grower/variants/"+variantID.String()+"/pending", "token-grower", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, false, body["data"].(map[string]any)["pending"])
	})

	t.Run("stock update request conflict", func(t *testing.T) {
		f := newAPIFixture(t)
		productID := uuid.New()

		f.validation.EXPECT().
			CreateRequest(mock.Anything, f.subjects[entity.RoleGrower], mock.MatchedBy(func(in *usecase.CreateStockUpdateInput) bool {
				return in.ProductID == productID && in.NewStock != nil && *in.NewStock == 8 && in.Reason == "harvest"
			})).
			Return(nil, domainerrors.ErrPendingStockUpdateExists)

		rec, body := f.do(t, http.MethodPost, "/api/v1/grower/stock-updates", "token-grower",
			`{"product_id":"`+productID.String()+`","new_stock":8,"reason":"harvest"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "PENDING_STOCK_UPDATE_EXISTS", errorCode(body))
	})

	t.Run("own requests are filtered by grower", func(t *testing.T) {
		f := newAPIFixture(t)
		growerID := f.subjects[entity.RoleGrower]

		f.validation.EXPECT().
			ListRequests(mock.Anything, mock.MatchedBy(func(filter repository.StockUpdateFilter) bool {
				return filter.GrowerID != nil && *filter.GrowerID == growerID &&
					filter.Status != nil && *filter.Status == entity.StockUpdatePending
			})).
			Return(nil, nil)

		rec, _ := f.do(t, http.MethodGet, "/api/v1/grower/stock-updates?status=PENDING", "token-grower", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAPI_Checkout(t *testing.T) {
	variantID, productID := uuid.New(), uuid.New()
	body := `{"items":[{"kind":"leaf","product_id":"` + productID.String() + `","variant_id":"` + variantID.String() + `","quantity":2}],"delivery_cost":"3.50"}`

	t.Run("guest checkout", func(t *testing.T) {
		f := newAPIFixture(t)
		f.checkout.EXPECT().
			Checkout(mock.Anything, mock.MatchedBy(func(in *usecase.CheckoutInput) bool {
				return in.CustomerID == nil && len(in.Basket.Items) == 1 && in.Basket.DeliveryCost.Equal(decimal.RequireFromString("3.5"))
			})).
			Return(&usecase.CheckoutOutput{Session: &entity.CheckoutSession{RedirectURL: "https://pay.test/s/1"}}, nil)

		rec, _ := f.do(t, http.MethodPost, "/api/v1/checkout", "", body)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("customer checks out on own account", func(t *testing.T) {
		f := newAPIFixture(t)
		customerID := f.subjects[entity.RoleCustomer]
		f.checkout.EXPECT().
			Checkout(mock.Anything, mock.MatchedBy(func(in *usecase.CheckoutInput) bool {
				return in.CustomerID != nil && *in.CustomerID == customerID
			})).
			Return(&usecase.CheckoutOutput{Free: true}, nil)

		rec, resp := f.do(t, http.MethodPost, "/api/v1/checkout", "token-customer", body)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, true, resp["data"].(map[string]any)["free"])
	})

	t.Run("other roles cannot check out", func(t *testing.T) {
		f := newAPIFixture(t)

		rec, resp := f.do(t, http.MethodPost, "/api/v1/checkout", "token-grower", body)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "ACCESS_DENIED", errorCode(resp))
	})

	t.Run("empty basket is rejected before the usecase", func(t *testing.T) {
		f := newAPIFixture(t)

		rec, resp := f.do(t, http.MethodPost, "/api/v1/checkout", "", `{"items":[]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(resp))
	})
}

func TestAPI_PaymentWebhook(t *testing.T) {
	payload := `{"type":"payment.succeeded","session_id":"cs_1"}`

	t.Run("missing signature", func(t *testing.T) {
		f := newAPIFixture(t)

		rec, resp := f.do(t, http.MethodPost, "/api/v1/checkout/webhook", "", payload)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_WEBHOOK_SIGNATURE", errorCode(resp))
	})

	t.Run("raw body is verified", func(t *testing.T) {
		f := newAPIFixture(t)
		f.checkout.EXPECT().HandlePaymentWebhook(mock.Anything, []byte(payload), "sig").Return(nil)

		rec, _ := f.do(t, http.MethodPost, "/api/v1/checkout/webhook", "", payload, handler.HeaderPaymentSignature, "sig")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestAPI_AllocateCredit(t *testing.T) {
	customerID := uuid.New()

	t.Run("success answers with a message", func(t *testing.T) {
		f := newAPIFixture(t)
		adminID := f.subjects[entity.RoleAdmin]
		f.wallet.EXPECT().
			AllocateCredit(mock.Anything, mock.MatchedBy(func(in *usecase.AllocateCreditInput) bool {
				return in.AdminID == adminID && in.CustomerID == customerID &&
					in.Amount.Equal(decimal.NewFromInt(15)) && in.Reason == "late delivery"
			})).
			Return(&entity.WalletTransaction{Amount: decimal.NewFromInt(15)}, nil)

		rec, resp := f.do(t, http.MethodPost, "/api/admin/allocate-credit", "token-admin",
			`{"customerId":"`+customerID.String()+`","amount":15,"reason":"late delivery"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Allocated 15.00 to customer "+customerID.String(), resp["message"])
		assert.NotContains(t, resp, "error")
	})

	t.Run("non-positive amount answers with an error", func(t *testing.T) {
		f := newAPIFixture(t)

		rec, resp := f.do(t, http.MethodPost, "/api/admin/allocate-credit", "token-admin",
			`{"customerId":"`+customerID.String()+`","amount":0}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, domainerrors.ErrInvalidCreditAmount.Message(), resp["error"])
	})

	t.Run("unknown customer", func(t *testing.T) {
		f := newAPIFixture(t)
		f.wallet.EXPECT().AllocateCredit(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrCustomerNotFound)

		rec, resp := f.do(t, http.MethodPost, "/api/admin/allocate-credit", "token-admin",
			`{"customerId":"`+customerID.String()+`","amount":"2.5"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Customer not found", resp["error"])
	})
}

func TestAPI_StockUpdateDecisions(t *testing.T) {
	requestID := uuid.New()

	t.Run("approve with comment", func(t *testing.T) {
		f := newAPIFixture(t)
		f.validation.EXPECT().
			Approve(mock.Anything, f.subjects[entity.RoleAdmin], requestID, "ok").
			Return(&entity.GrowerStockUpdate{ID: requestID, Status: entity.StockUpdateApproved}, nil)

		rec, _ := f.do(t, http.MethodPost, "/api/admin/stock-updates/"+requestID.String()+"/approve", "token-admin", `{"comment":"ok"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("reject without body after a decision", func(t *testing.T) {
		f := newAPIFixture(t)
		f.validation.EXPECT().
			Reject(mock.Anything, f.subjects[entity.RoleAdmin], requestID, "").
			Return(nil, domainerrors.ErrStockUpdateNotPending)

		rec, resp := f.do(t, http.MethodPost, "/api/admin/stock-updates/"+requestID.String()+"/reject", "token-admin", "")
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "STOCK_UPDATE_NOT_PENDING", errorCode(resp))
	})
}

func TestAPI_AdminBaskets(t *testing.T) {
	f := newAPIFixture(t)
	day := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)

	f.checkout.EXPECT().
		GetBasketSessions(mock.Anything, mock.MatchedBy(func(filter entity.BasketFilter) bool {
			return filter.DeliveryDay != nil && filter.DeliveryDay.Equal(day) &&
				filter.PaymentStatus != nil && *filter.PaymentStatus == entity.PaymentStatusPaid &&
				filter.Delivered != nil && !*filter.Delivered && filter.Limit == 20
		})).
		Return([]*entity.BasketSession{}, nil)

	rec, _ := f.do(t, http.MethodGet, "/api/admin/baskets?day=2024-05-03&payment_status=paid&delivered=false&limit=20", "token-admin", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, resp := f.do(t, http.MethodGet, "/api/admin/baskets?payment_status=lost", "token-admin", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_QUERY", errorCode(resp))

	basketID := uuid.New()
	f.checkout.EXPECT().SetDeliveryDate(mock.Anything, basketID, day).Return(nil)
	rec, _ = f.do(t, http.MethodPut, "/api/admin/baskets/"+basketID.String()+"/delivery-date", "token-admin", `{"day":"2024-05-03"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	itemID := uuid.New()
	f.checkout.EXPECT().UpdateBasketItemRefundStatus(mock.Anything, itemID, entity.RefundStatusRefunded).Return(nil)
	rec, _ = f.do(t, http.MethodPut, "/api/admin/baskets/items/"+itemID.String()+"/refund", "token-admin", `{"status":"refunded"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_Delivery(t *testing.T) {
	f := newAPIFixture(t)

	rec, resp := f.do(t, http.MethodGet, "/api/v1/delivery/baskets?day=03/05/2024", "token-deliverer", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_QUERY", errorCode(resp))

	basketID := uuid.New()
	f.delivery.EXPECT().
		ConfirmDeliveryByQR(mock.Anything, f.subjects[entity.RoleDeliverer], basketID.String()).
		Return(nil, domainerrors.ErrAlreadyDelivered)

	rec, resp = f.do(t, http.MethodPost, "/api/v1/delivery/confirm", "token-deliverer", `{"qr_payload":"`+basketID.String()+`"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "ALREADY_DELIVERED", errorCode(resp))
}
