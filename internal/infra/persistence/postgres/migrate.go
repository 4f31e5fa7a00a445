package postgres

import (
	"context"
	"log/slog"

	"market/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Models lists every table owned by the service, in dependency order.
func Models() []any {
	return []any{
		&model.ProductModel{},
		&model.ProductVariantModel{},
		&model.PanyenModel{},
		&model.PanyenComponentModel{},
		&model.GrowerModel{},
		&model.GrowerProductModel{},
		&model.GrowerProductVariantModel{},
		&model.GrowerStockUpdateModel{},
		&model.CustomerModel{},
		&model.WalletTransactionModel{},
		&model.AddressModel{},
		&model.BasketSessionModel{},
		&model.BasketSessionItemModel{},
		&model.CheckoutSessionModel{},
		&model.CredentialModel{},
		&model.AdminModel{},
		&model.DelivererModel{},
	}
}

// statements that AutoMigrate cannot express.
var migrationStatements = []struct {
	name string
	sql  string
}{
	{
		name: "pending stock update per variant",
		sql: `CREATE UNIQUE INDEX IF NOT EXISTS ` + pendingStockUpdateIndex + `
ON grower_stock_updates (variant_id) WHERE status = 'PENDING'`,
	},
	{
		name: "stock update status values",
		sql: `ALTER TABLE grower_stock_updates
  DROP CONSTRAINT IF EXISTS chk_grower_stock_updates_status,
  ADD CONSTRAINT chk_grower_stock_updates_status CHECK (status IN ('PENDING', 'APPROVED', 'REJECTED'))`,
	},
	{
		name: "basket item kind",
		sql: `ALTER TABLE basket_session_items
  DROP CONSTRAINT IF EXISTS chk_basket_session_items_kind,
  ADD CONSTRAINT chk_basket_session_items_kind CHECK (
    (kind = 'leaf' AND product_variant_id IS NOT NULL AND panyen_id IS NULL) OR
    (kind = 'composite' AND panyen_id IS NOT NULL AND product_variant_id IS NULL))`,
	},
	{
		name: "payment status values",
		sql: `ALTER TABLE basket_sessions
  DROP CONSTRAINT IF EXISTS chk_basket_sessions_payment_status,
  ADD CONSTRAINT chk_basket_sessions_payment_status CHECK (payment_status IN ('pending', 'paid', 'failed'))`,
	},
	{
		name: "refund status values",
		sql: `ALTER TABLE basket_session_items
  DROP CONSTRAINT IF EXISTS chk_basket_session_items_refund_status,
  ADD CONSTRAINT chk_basket_session_items_refund_status CHECK (refund_status IN ('none', 'refunded'))`,
	},
	{
		name: "credential role values",
		sql: `ALTER TABLE credentials
  DROP CONSTRAINT IF EXISTS chk_credentials_role,
  ADD CONSTRAINT chk_credentials_role CHECK (role IN ('admin', 'customer', 'grower', 'deliverer'))`,
	},
	{
		name: "updated_at trigger function",
		sql: `CREATE OR REPLACE FUNCTION set_updated_at() RETURNS trigger AS $$
BEGIN NEW.updated_at = now(); RETURN NEW; END; $$ LANGUAGE plpgsql`,
	},
	{
		name: "drop grower_products updated_at trigger",
		sql:  `DROP TRIGGER IF EXISTS trg_grower_products_updated ON grower_products`,
	},
	{
		name: "grower_products updated_at trigger",
		sql: `CREATE TRIGGER trg_grower_products_updated BEFORE UPDATE ON grower_products
FOR EACH ROW EXECUTE FUNCTION set_updated_at()`,
	},
}

// Migrate creates or updates the schema: extensions, tables, then the partial indexes,
// CHECK constraints and triggers AutoMigrate does not know about.
func Migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	db = db.WithContext(ctx)

	logger.InfoContext(ctx, "Running database migration")

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return errors.Wrap(err, "failed to enable pgcrypto")
	}

	if err := db.AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "failed to auto-migrate tables")
	}

	for _, stmt := range migrationStatements {
		if err := db.Exec(stmt.sql).Error; err != nil {
			return errors.Wrapf(err, "failed to apply %s", stmt.name)
		}
		logger.DebugContext(ctx, "Applied migration statement", slog.String("name", stmt.name))
	}

	logger.InfoContext(ctx, "Database migration completed", slog.Int("tables", len(Models())))

	return nil
}
