package postgres

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"market/internal/domain/entity"
	"market/internal/domain/repository"
	"market/internal/errors"
	"market/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const postgresImage = "postgres:16-alpine"

var (
	testDB    *gorm.DB
	testDBErr error
)

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		terminate = startPostgres()
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

// startPostgres runs one migrated database for the whole package. Without Docker
// testDBErr is set and the repository tests skip.
func startPostgres() func() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	ctr, err := tcpostgres.Run(ctx, postgresImage,
		tcpostgres.WithDatabase("market"),
		tcpostgres.WithUsername("market"),
		tcpostgres.WithPassword("market"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		testDBErr = errors.Wrap(err, "start postgres container")

		return nil
	}
	terminate := func() { _ = testcontainers.TerminateContainer(ctr) }

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		testDBErr = errors.Wrap(err, "postgres connection string")

		return terminate
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger:                 logger.Discard,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		testDBErr = errors.Wrap(err, "open postgres")

		return terminate
	}

	if err := Migrate(ctx, db, slog.New(slog.NewTextHandler(io.Discard, nil))); err != nil {
		testDBErr = err

		return terminate
	}
	testDB = db

	return terminate
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("repository tests need Docker; skipped with -short")
	}
	if testDB == nil {
		t.Skipf("postgres unavailable: %v", testDBErr)
	}

	return testDB
}

type catalogFixture struct {
	product  model.ProductModel
	growerID uuid.UUID
}

func seedCatalog(t *testing.T, db *gorm.DB) catalogFixture {
	t.Helper()

	product := model.ProductModel{
		Name:        "Leeks " + uuid.NewString()[:8],
		ShowInStore: true,
		Variants: []model.ProductVariantModel{
			{Position: 0, OptionValue: "500 g", Price: decimal.RequireFromString("1.80")},
			{Position: 1, OptionValue: "1 kg", Price: decimal.RequireFromString("3.20")},
		},
	}
	require.NoError(t, db.Create(&product).Error)

	return catalogFixture{product: product, growerID: seedGrower(t, db)}
}

func seedGrower(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()

	grower := model.GrowerModel{Email: uuid.NewString() + "@farm.test", Name: "Grower"}
	require.NoError(t, db.Create(&grower).Error)

	return grower.ID
}

func (f catalogFixture) growerProduct(growerID uuid.UUID, stock int) *entity.GrowerProduct {
	gp := &entity.GrowerProduct{GrowerID: growerID, ProductID: f.product.ID, Stock: stock}
	for _, v := range f.product.Variants {
		gp.Variants = append(gp.Variants, entity.GrowerProductVariant{VariantID: v.ID, Price: v.Price})
	}

	return gp
}

func TestGrowerRepository(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	f := seedCatalog(t, db)
	repo := NewGrowerRepository(db)

	require.NoError(t, repo.CreateGrowerProduct(ctx, f.growerProduct(f.growerID, 5)))

	err := repo.CreateGrowerProduct(ctx, f.growerProduct(f.growerID, 1))
	assert.ErrorIs(t, err, repository.ErrDuplicateGrowerProduct)

	variantID := f.product.Variants[1].ID
	require.NoError(t, repo.UpsertVariantPrice(ctx, f.growerID, entity.VariantPrice{VariantID: variantID, Price: decimal.RequireFromString("2.95")}))
	require.NoError(t, repo.UpdateGrowerProductStock(ctx, f.growerID, f.product.ID, 8))

	gp, err := repo.FindGrowerProduct(ctx, f.growerID, f.product.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, gp.Stock)
	price, ok := gp.PriceOf(variantID)
	require.True(t, ok)
	assert.True(t, price.Equal(decimal.RequireFromString("2.95")))

	other := seedGrower(t, db)
	require.NoError(t, repo.CreateGrowerProduct(ctx, f.growerProduct(other, 4)))

	total, err := repo.SumStockByProduct(ctx, f.product.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, total)

	totals, err := repo.SumStockByProducts(ctx, []uuid.UUID{f.product.ID, uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, 12, totals[f.product.ID])

	require.NoError(t, repo.DeleteGrowerProduct(ctx, f.growerID, f.product.ID))
	_, err = repo.FindGrowerProduct(ctx, f.growerID, f.product.ID)
	assert.ErrorIs(t, err, repository.ErrGrowerProductNotFound)

	err = repo.UpdateGrowerProductStock(ctx, f.growerID, f.product.ID, 1)
	assert.ErrorIs(t, err, repository.ErrGrowerProductNotFound)
}

func TestStockUpdateRepository_OnePendingPerVariant(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	f := seedCatalog(t, db)
	repo := NewStockUpdateRepository(db)
	variantID := f.product.Variants[0].ID

	newPending := func() *entity.GrowerStockUpdate {
		stock, previous := 10, 5

		return &entity.GrowerStockUpdate{
			ID:            uuid.New(),
			GrowerID:      f.growerID,
			ProductID:     f.product.ID,
			VariantID:     variantID,
			NewStock:      &stock,
			PreviousStock: &previous,
			RequestedPrices: map[uuid.UUID]decimal.Decimal{
				variantID: decimal.RequireFromString("2.10"),
			},
			PreviousPrices: map[uuid.UUID]decimal.Decimal{
				variantID: decimal.RequireFromString("1.80"),
			},
			Status:      entity.StockUpdatePending,
			RequestDate: time.Now(),
		}
	}

	first := newPending()
	require.NoError(t, repo.CreateStockUpdate(ctx, first))

	err := repo.CreateStockUpdate(ctx, newPending())
	assert.ErrorIs(t, err, repository.ErrPendingStockUpdateExists)

	exists, err := repo.ExistsPendingByVariant(ctx, variantID)
	require.NoError(t, err)
	assert.True(t, exists)

	found, err := repo.FindPendingByVariant(ctx, variantID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
	assert.True(t, found.RequestedPrices[variantID].Equal(decimal.RequireFromString("2.10")))
	assert.Equal(t, 5, *found.PreviousStock)

	decision := repository.StockUpdateDecision{
		Status:    entity.StockUpdateApproved,
		Comment:   "ok",
		DecidedBy: uuid.New(),
		DecidedAt: time.Now(),
	}
	require.NoError(t, repo.Decide(ctx, first.ID, decision))
	assert.ErrorIs(t, repo.Decide(ctx, first.ID, decision), repository.ErrStockUpdateNotPending)

	decided, err := repo.FindStockUpdateByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StockUpdateApproved, decided.Status)
	assert.Equal(t, "ok", decided.AdminComment)

	// A decided request frees the variant for a new one.
	second := newPending()
	require.NoError(t, repo.CreateStockUpdate(ctx, second))

	status := entity.StockUpdatePending
	list, err := repo.ListStockUpdates(ctx, repository.StockUpdateFilter{GrowerID: &f.growerID, Status: &status})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, second.ID, list[0].ID)

	assert.ErrorIs(t, repo.DeletePending(ctx, first.ID, f.growerID), repository.ErrStockUpdateNotPending)
	require.NoError(t, repo.DeletePending(ctx, second.ID, f.growerID))

	_, err = repo.FindPendingByVariant(ctx, variantID)
	assert.ErrorIs(t, err, repository.ErrStockUpdateNotFound)
}

func TestCustomerRepository_Wallet(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewCustomerRepository(db)

	customer := &entity.Customer{Email: uuid.NewString() + "@example.test", Name: "Ada"}
	require.NoError(t, repo.CreateCustomer(ctx, customer))

	require.NoError(t, repo.CreditWallet(ctx, customer.ID, decimal.RequireFromString("10.00")))
	require.NoError(t, repo.DebitWallet(ctx, customer.ID, decimal.RequireFromString("7.50")))

	err := repo.DebitWallet(ctx, customer.ID, decimal.RequireFromString("2.51"))
	assert.ErrorIs(t, err, repository.ErrInsufficientWallet)

	got, err := repo.FindCustomerByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.True(t, got.WalletBalance.Equal(decimal.RequireFromString("2.50")), got.WalletBalance.String())

	err = repo.CreditWallet(ctx, uuid.New(), decimal.NewFromInt(1))
	assert.ErrorIs(t, err, repository.ErrCustomerNotFound)
}

func TestCredentialRepository(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewCredentialRepository(db)
	email := uuid.NewString() + "@example.test"

	cred := &entity.Credential{
		ID:           uuid.New(),
		Role:         entity.RoleGrower,
		SubjectID:    uuid.New(),
		Email:        email,
		PasswordHash: "hash",
	}
	require.NoError(t, repo.CreateCredential(ctx, cred))

	dup := *cred
	dup.ID = uuid.New()
	assert.ErrorIs(t, repo.CreateCredential(ctx, &dup), repository.ErrDuplicateCredential)

	// The same email may hold another role.
	admin := dup
	admin.Role = entity.RoleAdmin
	require.NoError(t, repo.CreateCredential(ctx, &admin))

	found, err := repo.FindCredential(ctx, entity.RoleGrower, email)
	require.NoError(t, err)
	assert.Equal(t, cred.ID, found.ID)

	_, err = repo.FindCredential(ctx, entity.RoleCustomer, email)
	assert.ErrorIs(t, err, repository.ErrCredentialNotFound)
}

func TestTransactionManager_RollsBack(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	tm := NewTransactionManager(db)
	customerID := uuid.New()
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		customer := &entity.Customer{ID: customerID, Email: uuid.NewString() + "@example.test"}
		if err := factory.NewCustomerRepository().CreateCustomer(ctx, customer); err != nil {
			return err
		}

		address := &entity.Address{
			CustomerID: &customerID,
			Address:    "1 Market Street",
			PostalCode: "75001",
			City:       "Paris",
			Country:    "FR",
			Type:       entity.AddressTypeDelivery,
		}
		if err := factory.NewAddressRepository().CreateAddress(ctx, address); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = NewCustomerRepository(db).FindCustomerByID(ctx, customerID)
	assert.ErrorIs(t, err, repository.ErrCustomerNotFound)

	addresses, err := NewAddressRepository(db).FindAddressesByCustomer(ctx, customerID)
	require.NoError(t, err)
	assert.Empty(t, addresses)
}

func TestAddressRepository_FindMatchingAddress(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := NewAddressRepository(db)
	postal := uuid.NewString()[:10]

	guest := &entity.Address{Address: "2 Rue Verte", PostalCode: postal, City: "Lyon", Country: "FR", Type: entity.AddressTypeDelivery}
	require.NoError(t, repo.CreateAddress(ctx, guest))

	found, err := repo.FindMatchingAddress(ctx, guest.Match(nil))
	require.NoError(t, err)
	assert.Equal(t, guest.ID, found.ID)

	// The anonymous scope never matches a customer's addresses.
	customerID := uuid.New()
	_, err = repo.FindMatchingAddress(ctx, guest.Match(&customerID))
	assert.ErrorIs(t, err, repository.ErrAddressNotFound)
}
