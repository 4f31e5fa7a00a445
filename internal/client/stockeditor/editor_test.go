package stockeditor

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"market/internal/client"
	"market/internal/domain/entity"
	"market/internal/errors"
	"market/internal/querycache"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type growerAPI struct {
	t    *testing.T
	page entity.GrowerStockPageData

	mu            sync.Mutex
	calls         map[string]int
	prices        []entity.VariantPrice
	stock         *int
	request       *usecase.CreateStockUpdateInput
	failPrices    bool
	failStock     bool
	failRequest   bool
	authorization string
	serverURL     string
}

func newGrowerAPI(t *testing.T) (*growerAPI, *httptest.Server) {
	productID := uuid.New()
	api := &growerAPI{
		t:     t,
		calls: make(map[string]int),
		page: entity.GrowerStockPageData{
			Product: entity.Product{
				ID:   productID,
				Name: "Carrots",
				Variants: []entity.ProductVariant{
					{ID: uuid.New(), ProductID: productID, Price: decimal.RequireFromString("2.50")},
					{ID: uuid.New(), ProductID: productID, Price: decimal.RequireFromString("4.00")},
				},
			},
			GlobalStock: 30,
		},
	}
	api.page.GrowerProduct = &entity.GrowerProduct{
		ID:        uuid.New(),
		ProductID: productID,
		Stock:     12,
		Variants: []entity.GrowerProductVariant{
			{VariantID: api.page.Product.Variants[0].ID, Price: decimal.RequireFromString("2.50")},
			{VariantID: api.page.Product.Variants[1].ID, Price: decimal.RequireFromString("3.80")},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/grower/products/{id}/stock", func(w http.ResponseWriter, r *http.Request) {
		api.record("page", r)
		writeData(w, http.StatusOK, api.page)
	})
	mux.HandleFunc("GET /api/v1/store/products", func(w http.ResponseWriter, r *http.Request) {
		api.record("store", r)
		writeData(w, http.StatusOK, []entity.StoreProduct{{Product: api.page.Product, GlobalStock: api.globalStock()}})
	})
	mux.HandleFunc("GET /api/v1/store/products/{id}/stock", func(w http.ResponseWriter, r *http.Request) {
		api.record("global", r)
		writeData(w, http.StatusOK, entity.ProductStock{ProductID: productID, GlobalStock: api.globalStock()})
	})
	mux.HandleFunc("PUT /api/v1/grower/variants/prices", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Prices []entity.VariantPrice `json:"prices"`
		}
		api.decode(r, &body)
		api.record("prices", r)
		if api.failPrices {
			writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")

			return
		}
		api.mu.Lock()
		api.prices = body.Prices
		api.mu.Unlock()
		writeData(w, http.StatusOK, map[string]string{"message": "ok"})
	})
	mux.HandleFunc("PUT /api/v1/grower/products/{id}/stock", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Stock int `json:"stock"`
		}
		api.decode(r, &body)
		api.record("stock", r)
		if api.failStock {
			writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")

			return
		}
		api.mu.Lock()
		api.stock = &body.Stock
		api.mu.Unlock()
		writeData(w, http.StatusOK, map[string]string{"message": "ok"})
	})
	mux.HandleFunc("POST /api/v1/grower/stock-updates", func(w http.ResponseWriter, r *http.Request) {
		var body usecase.CreateStockUpdateInput
		api.decode(r, &body)
		api.record("request", r)
		if api.failRequest {
			writeError(w, http.StatusConflict, "PENDING_STOCK_UPDATE_EXISTS", "A pending request already exists for this variant")

			return
		}
		api.mu.Lock()
		api.request = &body
		api.mu.Unlock()
		writeData(w, http.StatusCreated, entity.GrowerStockUpdate{
			ID:        uuid.New(),
			ProductID: body.ProductID,
			VariantID: *body.VariantID,
			Status:    entity.StockUpdatePending,
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	api.serverURL = srv.URL

	return api, srv
}

func (a *growerAPI) record(name string, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls[name]++
	a.authorization = r.Header.Get("Authorization")
}

func (a *growerAPI) count(name string) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.calls[name]
}

// globalStock is the page total with this grower's share replaced by the last stock written.
func (a *growerAPI) globalStock() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stock == nil {
		return a.page.GlobalStock
	}

	return a.page.GlobalStock - a.page.GrowerProduct.Stock + *a.stock
}

func (a *growerAPI) decode(r *http.Request, out any) {
	raw, err := io.ReadAll(r.Body)
	require.NoError(a.t, err)
	require.NoError(a.t, json.Unmarshal(raw, out))
}

func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"error": map[string]string{"code": code, "message": message}})
}

type editorFixture struct {
	api    *growerAPI
	cache  *querycache.Cache
	editor *Editor
	grower uuid.UUID
}

func openEditor(t *testing.T, configure ...func(*growerAPI)) editorFixture {
	api, srv := newGrowerAPI(t)
	for _, fn := range configure {
		fn(api)
	}

	f := editorFixture{api: api, cache: querycache.New(), grower: uuid.New()}
	f.editor = New(client.New(srv.URL, client.WithToken("grower-token")), f.cache, f.grower, api.page.Product.ID)

	catalog := client.New(srv.URL)
	_, err := StoreProducts(context.Background(), catalog, f.cache)
	require.NoError(t, err)
	_, err = ProductGlobalStock(context.Background(), catalog, f.cache, api.page.Product.ID)
	require.NoError(t, err)

	_, err = f.editor.Open(context.Background())
	require.NoError(t, err)
	require.Equal(t, Editing, f.editor.State())

	return f
}

func (f editorFixture) variant(i int) uuid.UUID {
	return f.api.page.Product.Variants[i].ID
}

func (f editorFixture) cachedPage(t *testing.T) entity.GrowerStockPageData {
	var page entity.GrowerStockPageData
	found, err := f.cache.Get(PageKey(f.grower, f.api.page.Product.ID), &page)
	require.NoError(t, err)
	require.True(t, found)

	return page
}

func TestEditor_Open_UsesCache(t *testing.T) {
	f := openEditor(t)
	f.editor.Close()
	assert.Equal(t, Idle, f.editor.State())

	_, err := f.editor.Open(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, f.api.count("page"))
	assert.Equal(t, "Bearer grower-token", f.api.authorization)
}

func TestEditor_Submit_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		input func(f editorFixture) Input
		field string
	}{
		{
			name:  "negative price",
			input: func(f editorFixture) Input { return Input{Prices: map[uuid.UUID]string{f.variant(0): "-0.01"}} },
			field: "price.",
		},
		{
			name:  "price not a number",
			input: func(f editorFixture) Input { return Input{Prices: map[uuid.UUID]string{f.variant(1): "abc"}} },
			field: "price.",
		},
		{
			name:  "unknown variant",
			input: func(editorFixture) Input { return Input{Prices: map[uuid.UUID]string{uuid.New(): "1"}} },
			field: "price.",
		},
		{
			name:  "negative stock",
			input: func(editorFixture) Input { return Input{Stock: "-1"} },
			field: "stock",
		},
		{
			name:  "fractional stock",
			input: func(editorFixture) Input { return Input{Stock: "1.5"} },
			field: "stock",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := openEditor(t)
			before := f.cache.Snapshot()

			_, err := f.editor.Submit(context.Background(), tt.input(f))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Field, tt.field)
			assert.Equal(t, Editing, f.editor.State())
			assert.Equal(t, err, f.editor.Err())
			assert.Equal(t, before, f.cache.Snapshot())
			assert.Zero(t, f.api.count("prices")+f.api.count("stock")+f.api.count("request"))
		})
	}
}

func TestEditor_Submit_NothingChanged(t *testing.T) {
	f := openEditor(t)

	// 2.5 equals the known 2.50 exactly; 12 is the current stock.
	result, err := f.editor.Submit(context.Background(), Input{
		Prices: map[uuid.UUID]string{f.variant(0): "2.5"},
		Stock:  "12",
	})
	require.NoError(t, err)
	assert.False(t, result.Changed())
	assert.Equal(t, Idle, f.editor.State())
	assert.Zero(t, f.api.count("prices")+f.api.count("stock")+f.api.count("request"))
}

func TestEditor_Submit_Success(t *testing.T) {
	f := openEditor(t)
	productID := f.api.page.Product.ID

	result, err := f.editor.Submit(context.Background(), Input{
		Prices: map[uuid.UUID]string{
			f.variant(0): "2.50",
			f.variant(1): "3.81",
		},
		Stock:  "20",
		Reason: "new harvest",
	})
	require.NoError(t, err)
	require.NoError(t, result.RequestErr)
	assert.Equal(t, Idle, f.editor.State())

	// Only the changed variant is sent.
	require.Len(t, f.api.prices, 1)
	assert.Equal(t, f.variant(1), f.api.prices[0].VariantID)
	assert.True(t, f.api.prices[0].Price.Equal(decimal.RequireFromString("3.81")))
	require.NotNil(t, f.api.stock)
	assert.Equal(t, 20, *f.api.stock)

	// The validation request names what a rejection restores.
	req := f.api.request
	require.NotNil(t, req)
	assert.Equal(t, productID, req.ProductID)
	assert.Equal(t, f.variant(1), *req.VariantID)
	assert.Equal(t, 20, *req.NewStock)
	assert.Equal(t, 12, *req.PreviousStock)
	require.Len(t, req.PreviousPrices, 1)
	assert.True(t, req.PreviousPrices[0].Price.Equal(decimal.RequireFromString("3.80")))
	assert.Equal(t, "new harvest", req.Reason)
	require.NotNil(t, result.Request)
	assert.Equal(t, entity.StockUpdatePending, result.Request.Status)

	// The optimistic values stay visible but are marked for refetch.
	page := f.cachedPage(t)
	assert.Equal(t, 20, page.GrowerProduct.Stock)
	assert.Equal(t, 38, page.GlobalStock)
	assert.True(t, f.cache.IsStale(PageKey(f.grower, productID)))
	assert.True(t, f.cache.IsStale(GlobalStockKey(productID)))
	assert.True(t, f.cache.IsStale(StoreProductsKey()))

	// Reopening refetches server truth.
	_, err = f.editor.Open(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, f.api.count("page"))
}

func TestStorefrontReads_RefetchAfterSubmit(t *testing.T) {
	f := openEditor(t)
	ctx := context.Background()
	productID := f.api.page.Product.ID
	catalog := client.New(f.api.serverURL)

	// Fresh entries are served from the cache.
	stock, err := ProductGlobalStock(ctx, catalog, f.cache, productID)
	require.NoError(t, err)
	assert.Equal(t, 30, stock)
	products, err := StoreProducts(ctx, catalog, f.cache)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 1, f.api.count("global"))
	assert.Equal(t, 1, f.api.count("store"))

	_, err = f.editor.Submit(ctx, Input{Stock: "20"})
	require.NoError(t, err)

	stock, err = ProductGlobalStock(ctx, catalog, f.cache, productID)
	require.NoError(t, err)
	assert.Equal(t, 38, stock)
	products, err = StoreProducts(ctx, catalog, f.cache)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 38, products[0].GlobalStock)
	assert.Equal(t, 2, f.api.count("global"))
	assert.Equal(t, 2, f.api.count("store"))
	assert.False(t, f.cache.IsStale(GlobalStockKey(productID)))
	assert.False(t, f.cache.IsStale(StoreProductsKey()))
}

func TestStorefrontReads_FailedSubmitKeepsCache(t *testing.T) {
	f := openEditor(t, func(a *growerAPI) { a.failStock = true })
	ctx := context.Background()
	catalog := client.New(f.api.serverURL)

	_, err := f.editor.Submit(ctx, Input{Stock: "20"})
	require.Error(t, err)

	stock, err := ProductGlobalStock(ctx, catalog, f.cache, f.api.page.Product.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, stock)
	assert.Equal(t, 1, f.api.count("global"))
}

func TestEditor_Submit_StockOnlyAnchorsFirstVariant(t *testing.T) {
	f := openEditor(t)

	result, err := f.editor.Submit(context.Background(), Input{Stock: "0"})
	require.NoError(t, err)
	assert.True(t, result.StockChanged)
	assert.Zero(t, f.api.count("prices"))
	require.NotNil(t, f.api.request)
	assert.Equal(t, f.variant(0), *f.api.request.VariantID)
	assert.Empty(t, f.api.request.Prices)
}

func TestEditor_Submit_FailureRollsBack(t *testing.T) {
	tests := []struct {
		name      string
		configure func(*growerAPI)
	}{
		{name: "price request fails", configure: func(a *growerAPI) { a.failPrices = true }},
		{name: "stock request fails", configure: func(a *growerAPI) { a.failStock = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := openEditor(t, tt.configure)
			before := f.cache.Snapshot()

			_, err := f.editor.Submit(context.Background(), Input{
				Prices: map[uuid.UUID]string{f.variant(0): "9.99"},
				Stock:  "3",
			})
			require.Error(t, err)
			assert.True(t, client.IsAPIError(err, "INTERNAL_ERROR"))

			assert.Equal(t, before, f.cache.Snapshot())
			assert.False(t, f.cache.IsStale(PageKey(f.grower, f.api.page.Product.ID)))
			assert.Equal(t, Editing, f.editor.State())
			assert.Equal(t, err, f.editor.Err())
			assert.Zero(t, f.api.count("request"))

			// Both requests were issued even though one failed.
			assert.Equal(t, 1, f.api.count("prices"))
			assert.Equal(t, 1, f.api.count("stock"))
		})
	}
}

func TestEditor_Submit_RequestFailureKeepsChanges(t *testing.T) {
	f := openEditor(t, func(a *growerAPI) { a.failRequest = true })

	result, err := f.editor.Submit(context.Background(), Input{Prices: map[uuid.UUID]string{f.variant(0): "2.75"}})
	require.NoError(t, err)
	assert.Nil(t, result.Request)
	assert.True(t, client.IsAPIError(result.RequestErr, "PENDING_STOCK_UPDATE_EXISTS"))
	assert.Equal(t, Idle, f.editor.State())

	page := f.cachedPage(t)
	price, ok := page.GrowerProduct.PriceOf(f.variant(0))
	require.True(t, ok)
	assert.True(t, price.Equal(decimal.RequireFromString("2.75")))
	assert.True(t, f.cache.IsStale(PageKey(f.grower, f.api.page.Product.ID)))
}

func TestEditor_Submit_NotEditing(t *testing.T) {
	api, srv := newGrowerAPI(t)
	editor := New(client.New(srv.URL), querycache.New(), uuid.New(), api.page.Product.ID)

	_, err := editor.Submit(context.Background(), Input{Stock: "1"})
	assert.ErrorIs(t, err, ErrNotEditing)
}
