package repository

import (
	"context"

	"ledgerlens/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ReceiptRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewReceiptRepository(db *pgxpool.Pool, logger *zap.Logger) *ReceiptRepository {
	return &ReceiptRepository{
		db:     db,
		logger: logger,
	}
}

var receiptColumns = []string{
	"id", "date", "merchant_name", "total_amount", "description",
	"category", "relief_category", "created_at", "updated_at",
}

func (r *ReceiptRepository) Create(ctx context.Context, receipt *models.Receipt) error {
	query := squirrel.Insert("receipts").
		Columns(receiptColumns...).
		Values(
			receipt.ID, receipt.Date, receipt.MerchantName, receipt.TotalAmount,
			receipt.Description, receipt.Category, receipt.ReliefCategory,
			receipt.CreatedAt, receipt.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ReceiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Receipt, error) {
	query := squirrel.Select(receiptColumns...).
		From("receipts").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var receipt models.Receipt
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&receipt.ID, &receipt.Date, &receipt.MerchantName, &receipt.TotalAmount,
		&receipt.Description, &receipt.Category, &receipt.ReliefCategory,
		&receipt.CreatedAt, &receipt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &receipt, nil
}

func (r *ReceiptRepository) List(ctx context.Context, limit, offset int) ([]*models.Receipt, error) {
	query := squirrel.Select(receiptColumns...).
		From("receipts").
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

	var receipts []*models.Receipt
	for rows.Next() {
		var receipt models.Receipt
		if err := rows.Scan(
			&receipt.ID, &receipt.Date, &receipt.MerchantName, &receipt.TotalAmount,
			&receipt.Description, &receipt.Category, &receipt.ReliefCategory,
			&receipt.CreatedAt, &receipt.UpdatedAt,
		); err != nil {
			return nil, err
		}
		receipts = append(receipts, &receipt)
	}

	return receipts, rows.Err()
}

func (r *ReceiptRepository) Update(ctx context.Context, receipt *models.Receipt) error {
	query := squirrel.Update("receipts").
		Set("date", receipt.Date).
		Set("merchant_name", receipt.MerchantName).
		Set("total_amount", receipt.TotalAmount).
		Set("description", receipt.Description).
		Set("category", receipt.Category).
		Set("relief_category", receipt.ReliefCategory).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": receipt.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ReceiptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("receipts").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
