package operations

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound reports a lookup that matched no operation.
var ErrNotFound = errors.New("operation not found")

// Repository persists operations.
type Repository interface {
	Create(ctx context.Context, input CreateInput, userID string) (Operation, error)
	FindByID(ctx context.Context, id string) (Operation, error)
	FindByUser(ctx context.Context, userID string) ([]Operation, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed operation repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the operation inside a single transaction. Any failure
// rolls the transaction back entirely; no partial record is ever visible.
// The identifier is generated here and the timestamp by the database.
func (r *PostgresRepository) Create(ctx context.Context, input CreateInput, userID string) (Operation, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return Operation{}, err
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Operation{}, err
	}
	defer tx.Rollback(ctx) // nolint:errcheck

	op := Operation{
		ID:       uuid.NewString(),
		Type:     input.Type,
		Amount:   input.Amount,
		Currency: input.Currency,
		UserID:   ownerID.String(),
	}

	const insert = `INSERT INTO operations (id, type, amount, currency, user_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at`
	if err := tx.QueryRow(ctx, insert, op.ID, string(op.Type), op.Amount, op.Currency, ownerID).Scan(&op.CreatedAt); err != nil {
		return Operation{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Operation{}, err
	}

	op.CreatedAt = op.CreatedAt.UTC()
	return op, nil
}

// FindByID fetches a single operation.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (Operation, error) {
	row := r.db.QueryRow(ctx, `SELECT id, type, amount, currency, user_id, created_at
        FROM operations WHERE id = $1`, id)
	op, err := scanOperation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Operation{}, ErrNotFound
		}
		return Operation{}, err
	}
	return op, nil
}

// FindByUser returns the user's operations, newest first.
func (r *PostgresRepository) FindByUser(ctx context.Context, userID string) ([]Operation, error) {
	rows, err := r.db.Query(ctx, `SELECT id, type, amount, currency, user_id, created_at
        FROM operations WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ops []Operation
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, rows.Err()
}

func scanOperation(row pgx.Row) (Operation, error) {
	var (
		id        uuid.UUID
		ownerID   uuid.UUID
		kind      string
		createdAt time.Time
		op        Operation
	)
	if err := row.Scan(&id, &kind, &op.Amount, &op.Currency, &ownerID, &createdAt); err != nil {
		return Operation{}, err
	}
	op.ID = id.String()
	op.Type = Type(kind)
	op.UserID = ownerID.String()
	op.CreatedAt = createdAt.UTC()
	return op, nil
}
