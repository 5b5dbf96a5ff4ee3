package internal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgconn"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hbenali/comptoir/internal/migrations"
	"github.com/hbenali/comptoir/internal/model"
)

const orderFields = "id, order_number, account_id, status, payment_status, payment_method, " +
	"total_amount, remise_used_amount, remise_earned_amount, remise_earned_at, " +
	"is_solde, solde_amount, admin_notes, confirmed_at, shipped_at, delivered_at, cancelled_at, " +
	"created_at, updated_at"

const itemFields = "id, order_id, product_id, product_name, unit_price, quantity, subtotal, " +
	"remise_percent_applied, remise_amount"

// FinalizeFunc runs inside one finalize transaction, with the order row
// already locked. Returning an error rolls the whole transaction back.
type FinalizeFunc func(tx OrderTx, o model.Order) error

type IStore interface {
	FinalizeOrder(ctx context.Context, orderID int64, fn FinalizeFunc) error
	GetOrderDetail(ctx context.Context, orderID int64) (model.OrderDetail, error)
	GetOrders(ctx context.Context, accountID int64) ([]model.OrderSummary, error)
	GetRemiseBalance(ctx context.Context, accountID int64) (decimal.Decimal, error)
}

// OrderTx is the write surface available inside a finalize transaction.
type OrderTx interface {
	AppendHistory(ctx context.Context, ev model.StatusHistoryEvent) error
	ApplyOrderUpdate(ctx context.Context, orderID int64, u model.OrderUpdate) error
	UpdateSolde(ctx context.Context, orderID int64, amount decimal.Decimal, isSolde bool) error
	AccountClassification(ctx context.Context, accountID int64) (string, error)
	ItemRemiseRates(ctx context.Context, orderID int64, classification string) ([]model.ItemRemiseRate, error)
	MarkRemiseEarned(ctx context.Context, orderID int64, total decimal.Decimal) (bool, error)
	SnapshotItemRemise(ctx context.Context, itemID int64, perUnit, amount decimal.Decimal) error
	CreditRemiseBalance(ctx context.Context, accountID int64, amount decimal.Decimal) error
}

type Store struct {
	Conn   *sql.DB
	Logger *zap.SugaredLogger
}

func NewStore(connString string, logger *zap.SugaredLogger) (*Store, error) {
	db, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	goose.SetBaseFS(migrations.FS)
	if err = goose.SetDialect("postgres"); err != nil {
		return nil, err
	}
	if err = goose.Up(db, "."); err != nil {
		return nil, err
	}

	return &Store{Conn: db, Logger: logger}, nil
}

// FinalizeOrder runs fn inside a single transaction with the order row
// locked (SELECT ... FOR UPDATE), so concurrent finalize requests on the
// same order serialize. Lock-wait timeouts surface as ErrContention.
func (s Store) FinalizeOrder(ctx context.Context, orderID int64, fn FinalizeFunc) error {
	tx, err := s.Conn.BeginTx(ctx, nil)
	if err != nil {
		return translateErr(err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, "SELECT "+orderFields+" FROM orders WHERE id = $1 FOR UPDATE", orderID)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrOrderNotFound
		}
		return translateErr(err)
	}

	if err = fn(orderTx{tx: tx}, o); err != nil {
		return translateErr(err)
	}

	return translateErr(tx.Commit())
}

func (s Store) GetOrderDetail(ctx context.Context, orderID int64) (model.OrderDetail, error) {
	row := s.Conn.QueryRowContext(ctx, "SELECT "+orderFields+" FROM orders WHERE id = $1", orderID)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.OrderDetail{}, ErrOrderNotFound
		}
		return model.OrderDetail{}, err
	}

	detail := model.OrderDetail{Order: o}

	rows, err := s.Conn.QueryContext(ctx, "SELECT "+itemFields+" FROM order_items WHERE order_id = $1 ORDER BY id", orderID)
	if err != nil {
		return model.OrderDetail{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var it model.OrderItem
		err = rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.UnitPrice,
			&it.Quantity, &it.Subtotal, &it.RemisePercentApplied, &it.RemiseAmount)
		if err != nil {
			return model.OrderDetail{}, err
		}
		detail.Items = append(detail.Items, it)
	}
	if err = rows.Err(); err != nil {
		return model.OrderDetail{}, err
	}

	hrows, err := s.Conn.QueryContext(ctx,
		"SELECT old_status, new_status, changed_by_type, notes, created_at FROM order_status_history WHERE order_id = $1 ORDER BY created_at",
		orderID)
	if err != nil {
		return model.OrderDetail{}, err
	}
	defer hrows.Close()
	for hrows.Next() {
		var ev model.StatusHistoryEvent
		err = hrows.Scan(&ev.OldStatus, &ev.NewStatus, &ev.ChangedByType, &ev.Notes, &ev.CreatedAt)
		if err != nil {
			return model.OrderDetail{}, err
		}
		detail.History = append(detail.History, ev)
	}
	if err = hrows.Err(); err != nil {
		return model.OrderDetail{}, err
	}

	return detail, nil
}

func (s Store) GetOrders(ctx context.Context, accountID int64) ([]model.OrderSummary, error) {
	rows, err := s.Conn.QueryContext(ctx, `SELECT o.id, o.order_number, o.status, o.payment_status, o.payment_method,
		o.total_amount, COUNT(oi.id), o.created_at, o.confirmed_at, o.shipped_at, o.delivered_at
		FROM orders o
		LEFT JOIN order_items oi ON o.id = oi.order_id
		WHERE o.account_id = $1
		GROUP BY o.id
		ORDER BY o.created_at DESC`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []model.OrderSummary
	for rows.Next() {
		var o model.OrderSummary
		var confirmed, shipped, delivered sql.NullTime
		err = rows.Scan(&o.ID, &o.Number, &o.Status, &o.PaymentStatus, &o.PaymentMethod,
			&o.TotalAmount, &o.ItemsCount, &o.CreatedAt, &confirmed, &shipped, &delivered)
		if err != nil {
			return nil, err
		}
		o.ConfirmedAt = nullableTime(confirmed)
		o.ShippedAt = nullableTime(shipped)
		o.DeliveredAt = nullableTime(delivered)
		orders = append(orders, o)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (s Store) GetRemiseBalance(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := s.Conn.QueryRowContext(ctx, "SELECT remise_balance FROM accounts WHERE id = $1", accountID).Scan(&balance)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return balance, nil
}

type orderTx struct {
	tx *sql.Tx
}

func (t orderTx) AppendHistory(ctx context.Context, ev model.StatusHistoryEvent) error {
	_, err := t.tx.ExecContext(ctx,
		"INSERT INTO order_status_history (order_id, old_status, new_status, changed_by_type, notes) VALUES ($1, $2, $3, $4, $5)",
		ev.OrderID, ev.OldStatus, ev.NewStatus, ev.ChangedByType, ev.Notes)
	return err
}

func (t orderTx) ApplyOrderUpdate(ctx context.Context, orderID int64, u model.OrderUpdate) error {
	sets := []string{"updated_at = NOW()"}
	var args []interface{}

	if u.Status != nil {
		args = append(args, *u.Status)
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)))
	}
	if u.PaymentStatus != nil {
		args = append(args, *u.PaymentStatus)
		sets = append(sets, fmt.Sprintf("payment_status = $%d", len(args)))
	}
	if u.AdminNotes != nil {
		args = append(args, *u.AdminNotes)
		sets = append(sets, fmt.Sprintf("admin_notes = $%d", len(args)))
	}

	// Stamps are write-once: re-entering a status never refreshes them.
	if u.StampConfirmed {
		sets = append(sets, "confirmed_at = COALESCE(confirmed_at, NOW())")
	}
	if u.StampShipped {
		sets = append(sets, "shipped_at = COALESCE(shipped_at, NOW())")
	}
	if u.StampDelivered {
		sets = append(sets, "delivered_at = COALESCE(delivered_at, NOW())")
	}
	if u.StampCancelled {
		sets = append(sets, "cancelled_at = COALESCE(cancelled_at, NOW())")
	}

	args = append(args, orderID)
	query := fmt.Sprintf("UPDATE orders SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	_, err := t.tx.ExecContext(ctx, query, args...)
	return err
}

func (t orderTx) UpdateSolde(ctx context.Context, orderID int64, amount decimal.Decimal, isSolde bool) error {
	_, err := t.tx.ExecContext(ctx,
		"UPDATE orders SET is_solde = $1, solde_amount = $2, updated_at = NOW() WHERE id = $3",
		isSolde, amount, orderID)
	return err
}

func (t orderTx) AccountClassification(ctx context.Context, accountID int64) (string, error) {
	var kind sql.NullString
	err := t.tx.QueryRowContext(ctx, "SELECT type FROM accounts WHERE id = $1", accountID).Scan(&kind)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !kind.Valid) {
		return model.AccountTypeClient, nil
	}
	if err != nil {
		return "", err
	}
	return kind.String, nil
}

func (t orderTx) ItemRemiseRates(ctx context.Context, orderID int64, classification string) ([]model.ItemRemiseRate, error) {
	rows, err := t.tx.QueryContext(ctx, `SELECT oi.id, oi.quantity,
		CASE WHEN $1 = 'Artisan/Promoteur' THEN COALESCE(p.remise_artisan, 0) ELSE COALESCE(p.remise_client, 0) END
		FROM order_items oi
		INNER JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id = $2
		ORDER BY oi.id`, classification, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rates []model.ItemRemiseRate
	for rows.Next() {
		var r model.ItemRemiseRate
		if err = rows.Scan(&r.ItemID, &r.Quantity, &r.PerUnit); err != nil {
			return nil, err
		}
		rates = append(rates, r)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rates, nil
}

// MarkRemiseEarned is the award compare-and-set: the write only lands while
// remise_earned_at is still null, so a concurrent award that got there
// first makes this one report false. Correct even without the row lock.
func (t orderTx) MarkRemiseEarned(ctx context.Context, orderID int64, total decimal.Decimal) (bool, error) {
	res, err := t.tx.ExecContext(ctx,
		"UPDATE orders SET remise_earned_amount = $1, remise_earned_at = NOW() WHERE id = $2 AND remise_earned_at IS NULL",
		total, orderID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (t orderTx) SnapshotItemRemise(ctx context.Context, itemID int64, perUnit, amount decimal.Decimal) error {
	_, err := t.tx.ExecContext(ctx,
		"UPDATE order_items SET remise_percent_applied = $1, remise_amount = $2 WHERE id = $3",
		perUnit, amount, itemID)
	return err
}

// CreditRemiseBalance is an atomic increment, never an overwrite, so awards
// for different orders of the same account may land concurrently.
func (t orderTx) CreditRemiseBalance(ctx context.Context, accountID int64, amount decimal.Decimal) error {
	_, err := t.tx.ExecContext(ctx,
		"UPDATE accounts SET remise_balance = remise_balance + $1 WHERE id = $2",
		amount, accountID)
	return err
}

func scanOrder(row *sql.Row) (model.Order, error) {
	var o model.Order
	var accountID sql.NullInt64
	var earnedAt, confirmed, shipped, delivered, cancelled sql.NullTime
	var notes sql.NullString

	err := row.Scan(&o.ID, &o.Number, &accountID, &o.Status, &o.PaymentStatus, &o.PaymentMethod,
		&o.TotalAmount, &o.RemiseUsedAmount, &o.RemiseEarnedAmount, &earnedAt,
		&o.IsSolde, &o.SoldeAmount, &notes, &confirmed, &shipped, &delivered, &cancelled,
		&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return model.Order{}, err
	}

	if accountID.Valid {
		o.AccountID = &accountID.Int64
	}
	o.AdminNotes = notes.String
	o.RemiseEarnedAt = nullableTime(earnedAt)
	o.ConfirmedAt = nullableTime(confirmed)
	o.ShippedAt = nullableTime(shipped)
	o.DeliveredAt = nullableTime(delivered)
	o.CancelledAt = nullableTime(cancelled)

	return o, nil
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}

const (
	pgLockNotAvailable = "55P03"
	pgQueryCanceled    = "57014"
)

// translateErr maps lock-wait failures to the retryable ErrContention and
// leaves everything else untouched.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgLockNotAvailable || pgErr.Code == pgQueryCanceled {
			return ErrContention
		}
	}
	return err
}
