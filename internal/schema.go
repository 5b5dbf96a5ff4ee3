package internal

import (
	"context"
	"database/sql"

	"go.uber.org/zap"
)

// SchemaGuard makes sure the remise/solde columns exist before the engine
// runs. Implementations must be idempotent and side-effect free when the
// columns are already there.
type SchemaGuard interface {
	EnsureRemiseSchema(ctx context.Context) error
}

// PgSchemaGuard bolts the remise/solde columns onto the base tables with
// ADD COLUMN IF NOT EXISTS, mirroring how these columns were introduced
// after the tables already carried data.
type PgSchemaGuard struct {
	Conn   *sql.DB
	Logger *zap.SugaredLogger
}

func NewPgSchemaGuard(conn *sql.DB, logger *zap.SugaredLogger) *PgSchemaGuard {
	return &PgSchemaGuard{Conn: conn, Logger: logger}
}

var ensureStatements = []string{
	`ALTER TABLE orders ADD COLUMN IF NOT EXISTS remise_used_amount DECIMAL(10,2) NOT NULL DEFAULT 0`,
	`ALTER TABLE orders ADD COLUMN IF NOT EXISTS remise_earned_amount DECIMAL(10,2) NOT NULL DEFAULT 0`,
	`ALTER TABLE orders ADD COLUMN IF NOT EXISTS remise_earned_at TIMESTAMP NULL DEFAULT NULL`,
	`ALTER TABLE orders ADD COLUMN IF NOT EXISTS is_solde BOOLEAN NOT NULL DEFAULT FALSE`,
	`ALTER TABLE orders ADD COLUMN IF NOT EXISTS solde_amount DECIMAL(10,2) NOT NULL DEFAULT 0`,
	`ALTER TABLE order_items ADD COLUMN IF NOT EXISTS remise_percent_applied DECIMAL(5,2) NOT NULL DEFAULT 0`,
	`ALTER TABLE order_items ADD COLUMN IF NOT EXISTS remise_amount DECIMAL(10,2) NOT NULL DEFAULT 0`,
	`ALTER TABLE products ADD COLUMN IF NOT EXISTS remise_client DECIMAL(5,2) NOT NULL DEFAULT 0`,
	`ALTER TABLE products ADD COLUMN IF NOT EXISTS remise_artisan DECIMAL(5,2) NOT NULL DEFAULT 0`,
	`ALTER TABLE accounts ADD COLUMN IF NOT EXISTS remise_balance DECIMAL(10,2) NOT NULL DEFAULT 0`,
}

func (g PgSchemaGuard) EnsureRemiseSchema(ctx context.Context) error {
	for _, stmt := range ensureStatements {
		if _, err := g.Conn.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	g.Logger.Debug("remise schema ensured")
	return nil
}
