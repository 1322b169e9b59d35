package repository

import (
	"context"
	"fmt"

	"ledgerlens/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

var transactionColumns = []string{"id", "date", "type", "description", "amount", "created_at"}

// CreateBatch inserts all transactions of one statement concurrently and
// waits for every insert to finish. Any single failure fails the batch as a
// whole; rows that already landed are not rolled back.
func (r *TransactionRepository) CreateBatch(ctx context.Context, transactions []*models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, tx := range transactions {
		g.Go(func() error {
			query := squirrel.Insert("transactions").
				Columns(transactionColumns...).
				Values(tx.ID, tx.Date, tx.Type, tx.Description, tx.Amount, tx.CreatedAt).
				PlaceholderFormat(squirrel.Dollar)

			sql, args, err := query.ToSql()
			if err != nil {
				return err
			}

			if _, err := r.db.Exec(ctx, sql, args...); err != nil {
				return fmt.Errorf("insert transaction %s: %w", tx.ID, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	r.logger.Info("Transactions saved", zap.Int("count", len(transactions)))
	return nil
}

func (r *TransactionRepository) ListRecent(ctx context.Context, limit, offset int) ([]*models.Transaction, error) {
	query := squirrel.Select(transactionColumns...).
		From("transactions").
		OrderBy("date DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(
			&tx.ID, &tx.Date, &tx.Type, &tx.Description, &tx.Amount, &tx.CreatedAt,
		); err != nil {
			return nil, err
		}
		transactions = append(transactions, &tx)
	}

	return transactions, rows.Err()
}
