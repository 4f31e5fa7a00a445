// Package stockeditor edits one product's variant prices and total stock for a grower.
//
// Edits are written optimistically into the query cache, sent to the API and
// rolled back from a snapshot when either request fails.
package stockeditor

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"market/internal/domain/entity"
	"market/internal/errors"
	"market/internal/querycache"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// State of an edit session.
type State int

const (
	Idle State = iota
	Editing
	Submitting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	default:
		return "unknown"
	}
}

var (
	// ErrNotEditing is returned by Submit outside the Editing state.
	ErrNotEditing = errors.New("stock editor is not editing")
	// ErrBusy is returned by Open while a submit is in flight.
	ErrBusy = errors.New("stock editor is submitting")
)

// ValidationError rejects a local field value before any request is sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// API is the part of the HTTP client the editor calls.
type API interface {
	GetGrowerStockPageData(ctx context.Context, productID uuid.UUID) (*entity.GrowerStockPageData, error)
	UpdateMultipleVariantPrices(ctx context.Context, prices []entity.VariantPrice) error
	UpdateGrowerProductStock(ctx context.Context, productID uuid.UUID, stock int) error
	CreateGrowerStockUpdateRequest(ctx context.Context, input *usecase.CreateStockUpdateInput) (*entity.GrowerStockUpdate, error)
}

// PageKey addresses the cached stock page of one grower product.
func PageKey(growerID, productID uuid.UUID) querycache.Key {
	return querycache.Key{"grower-stock", growerID, productID}
}

// Input holds the raw form values: variant id to price, and the total stock.
// An empty Stock keeps the current stock.
type Input struct {
	Prices map[uuid.UUID]string
	Stock  string
	Reason string
}

// Result describes a settled submit.
type Result struct {
	Prices       []entity.VariantPrice
	StockChanged bool
	NewStock     int
	// Request is the PENDING validation request, nil when nothing changed or its creation failed.
	Request *entity.GrowerStockUpdate
	// RequestErr reports a failed validation request; the price and stock changes stay committed.
	RequestErr error
}

// Changed reports whether the submit wrote anything.
func (r *Result) Changed() bool {
	return len(r.Prices) > 0 || r.StockChanged
}

// Editor is one grower's edit session for one product.
type Editor struct {
	api       API
	cache     *querycache.Cache
	growerID  uuid.UUID
	productID uuid.UUID
	logger    *slog.Logger

	mu    sync.Mutex
	state State
	data  *entity.GrowerStockPageData
	err   error
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets the editor logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Editor) { e.logger = logger }
}

// New creates an idle editor.
func New(api API, cache *querycache.Cache, growerID, productID uuid.UUID, opts ...Option) *Editor {
	e := &Editor{
		api:       api,
		cache:     cache,
		growerID:  growerID,
		productID: productID,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// State returns the current state.
func (e *Editor) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}

// Err returns the error of the last failed submit, if the editor is back in Editing.
func (e *Editor) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.err
}

// Data returns the page data the session edits against.
func (e *Editor) Data() *entity.GrowerStockPageData {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.data
}

// Open loads the page data through the cache and enters Editing.
func (e *Editor) Open(ctx context.Context) (*entity.GrowerStockPageData, error) {
	if e.State() == Submitting {
		return nil, ErrBusy
	}

	data, err := querycache.Fetch(ctx, e.cache, PageKey(e.growerID, e.productID),
		func(ctx context.Context) (*entity.GrowerStockPageData, error) {
			return e.api.GetGrowerStockPageData(ctx, e.productID)
		})
	if err != nil {
		return nil, errors.Wrap(err, "load stock page")
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.state, e.data, e.err = Editing, data, nil

	return data, nil
}

// Close abandons the session.
func (e *Editor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == Editing {
		e.state, e.data, e.err = Idle, nil, nil
	}
}

type change struct {
	prices         []entity.VariantPrice
	previousPrices []entity.VariantPrice
	stockChanged   bool
	stock          int
	previousStock  int
}

// Submit validates, diffs and sends the edit. A ValidationError leaves the editor in
// Editing without any request. A failed price or stock request restores the cache
// and returns the editor to Editing with the error. On success the editor is Idle,
// the affected queries are stale and a validation request has been attempted.
func (e *Editor) Submit(ctx context.Context, input Input) (*Result, error) {
	e.mu.Lock()
	if e.state != Editing {
		e.mu.Unlock()

		return nil, ErrNotEditing
	}
	data := e.data

	c, err := diff(data, input)
	if err != nil {
		e.err = err
		e.mu.Unlock()

		return nil, err
	}
	if len(c.prices) == 0 && !c.stockChanged {
		e.state, e.data, e.err = Idle, nil, nil
		e.mu.Unlock()

		return &Result{}, nil
	}
	e.state = Submitting
	e.mu.Unlock()

	snapshot := e.cache.Snapshot()
	if err := e.applyOptimistic(c); err != nil {
		e.logger.Warn("Optimistic stock page update failed", slog.Any("error", err))
	}

	if err := e.send(ctx, c); err != nil {
		e.cache.Restore(snapshot)

		e.mu.Lock()
		e.state, e.err = Editing, err
		e.mu.Unlock()

		return nil, err
	}

	e.invalidate()

	result := &Result{Prices: c.prices, StockChanged: c.stockChanged, NewStock: c.stock}
	result.Request, result.RequestErr = e.api.CreateGrowerStockUpdateRequest(ctx, e.requestInput(data, c, input.Reason))
	if result.RequestErr != nil {
		e.logger.Warn("Stock update request failed",
			slog.String("product_id", e.productID.String()),
			slog.Any("error", result.RequestErr),
		)
	}

	e.mu.Lock()
	e.state, e.data, e.err = Idle, nil, nil
	e.mu.Unlock()

	return result, nil
}

// diff validates the form and keeps the prices that differ exactly from the last known server price.
func diff(data *entity.GrowerStockPageData, input Input) (*change, error) {
	parsed := make(map[uuid.UUID]decimal.Decimal, len(input.Prices))
	for variantID, raw := range input.Prices {
		field := "price." + variantID.String()
		if data.Product.FindVariant(variantID) == nil {
			return nil, &ValidationError{Field: field, Message: "unknown variant"}
		}
		price, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			return nil, &ValidationError{Field: field, Message: "must be a number"}
		}
		if price.IsNegative() {
			return nil, &ValidationError{Field: field, Message: "must be greater than or equal to 0"}
		}
		parsed[variantID] = price
	}

	c := &change{}
	if data.GrowerProduct != nil {
		c.previousStock = data.GrowerProduct.Stock
	}
	c.stock = c.previousStock

	if raw := strings.TrimSpace(input.Stock); raw != "" {
		stock, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &ValidationError{Field: "stock", Message: "must be a whole number"}
		}
		if stock < 0 {
			return nil, &ValidationError{Field: "stock", Message: "must be greater than or equal to 0"}
		}
		c.stock = stock
		c.stockChanged = stock != c.previousStock
	}

	// Product order keeps the request deterministic.
	for _, v := range data.Product.Variants {
		price, ok := parsed[v.ID]
		if !ok {
			continue
		}
		current := currentPrice(data, v)
		if price.Equal(current) {
			continue
		}
		c.prices = append(c.prices, entity.VariantPrice{VariantID: v.ID, Price: price})
		c.previousPrices = append(c.previousPrices, entity.VariantPrice{VariantID: v.ID, Price: current})
	}

	return c, nil
}

func currentPrice(data *entity.GrowerStockPageData, v entity.ProductVariant) decimal.Decimal {
	if data.GrowerProduct != nil {
		if price, ok := data.GrowerProduct.PriceOf(v.ID); ok {
			return price
		}
	}

	return v.Price
}

func (e *Editor) applyOptimistic(c *change) error {
	_, err := querycache.UpdateAs(e.cache, PageKey(e.growerID, e.productID), func(data *entity.GrowerStockPageData) error {
		if data.GrowerProduct == nil {
			return nil
		}

		gp := data.GrowerProduct
		for _, p := range c.prices {
			found := false
			for i := range gp.Variants {
				if gp.Variants[i].VariantID == p.VariantID {
					gp.Variants[i].Price = p.Price
					found = true
				}
			}
			if !found {
				gp.Variants = append(gp.Variants, entity.GrowerProductVariant{VariantID: p.VariantID, Price: p.Price})
			}
		}
		if c.stockChanged {
			data.GlobalStock += c.stock - gp.Stock
			gp.Stock = c.stock
		}

		return nil
	})

	return err
}

// send runs the price and stock requests concurrently and waits for both.
// A failing request does not cancel the other one.
func (e *Editor) send(ctx context.Context, c *change) error {
	var g errgroup.Group
	if len(c.prices) > 0 {
		g.Go(func() error {
			return errors.Wrap(e.api.UpdateMultipleVariantPrices(ctx, c.prices), "update prices")
		})
	}
	if c.stockChanged {
		g.Go(func() error {
			return errors.Wrap(e.api.UpdateGrowerProductStock(ctx, e.productID, c.stock), "update stock")
		})
	}

	return g.Wait()
}

func (e *Editor) invalidate() {
	for _, prefix := range []querycache.Key{
		growerPrefix(e.growerID),
		GlobalStockKey(e.productID),
		StoreProductsKey(),
	} {
		if _, err := e.cache.Invalidate(prefix); err != nil {
			e.logger.Warn("Cache invalidation failed", slog.Any("key", prefix), slog.Any("error", err))
		}
	}
}

// requestInput anchors the request on the first changed variant, or the first variant for a stock-only edit.
func (e *Editor) requestInput(data *entity.GrowerStockPageData, c *change, reason string) *usecase.CreateStockUpdateInput {
	input := &usecase.CreateStockUpdateInput{
		ProductID:      e.productID,
		Prices:         c.prices,
		PreviousPrices: c.previousPrices,
		Reason:         reason,
	}

	switch {
	case len(c.prices) > 0:
		anchor := c.prices[0].VariantID
		input.VariantID = &anchor
	case len(data.Product.Variants) > 0:
		anchor := data.Product.Variants[0].ID
		input.VariantID = &anchor
	}

	if c.stockChanged {
		stock, previous := c.stock, c.previousStock
		input.NewStock, input.PreviousStock = &stock, &previous
	}

	return input
}
