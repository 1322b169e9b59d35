package service

import (
	"context"
	"fmt"
	"time"

	"ledgerlens/internal/models"
	"ledgerlens/pkg/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ModelClient is the outbound contract of the pipeline: one vision extraction
// call per document, plus text-only completion for classification.
type ModelClient interface {
	Extract(ctx context.Context, req ExtractionRequest) (string, error)
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// ReceiptStore and TransactionStore are the minimal persistence contracts the
// pipeline needs. Both are optional: a nil store disables persistence and
// every write becomes a no-op success.
type ReceiptStore interface {
	Create(ctx context.Context, receipt *models.Receipt) error
}

type TransactionStore interface {
	CreateBatch(ctx context.Context, transactions []*models.Transaction) error
}

// ReceiptResult carries the extracted record and the outcome of the
// best-effort persistence step. PersistenceError is informational; the
// extraction output is unaffected by storage failures.
type ReceiptResult struct {
	Receipt          *models.Receipt
	Persisted        bool
	PersistenceError string
}

// StatementResult carries extracted transactions including incomplete ones;
// Skipped counts records that were withheld from persistence because a
// required field was missing.
type StatementResult struct {
	Transactions     []*models.Transaction
	Skipped          int
	Persisted        bool
	PersistenceError string
}

// ExtractionService composes prompt building, the vision call, response
// parsing and field normalization into one extraction per document. It holds
// no per-call state; concurrent extractions are independent.
type ExtractionService struct {
	client       ModelClient
	receipts     ReceiptStore
	transactions TransactionStore
	defaultType  models.TransactionType
	dateOrder    DateOrder
	logger       *zap.Logger
}

func NewExtractionService(
	client ModelClient,
	receipts ReceiptStore,
	transactions TransactionStore,
	cfg *config.PipelineConfig,
	logger *zap.Logger,
) *ExtractionService {
	return &ExtractionService{
		client:       client,
		receipts:     receipts,
		transactions: transactions,
		defaultType:  models.ParseTransactionType(cfg.DefaultType),
		dateOrder:    ParseDateOrder(cfg.DateOrder),
		logger:       logger,
	}
}

// ProcessReceipt runs the full pipeline for one receipt image and returns
// exactly one record. Persistence is attempted only when a store is
// configured; its failure is reported in the result, not as an error.
func (s *ExtractionService) ProcessReceipt(ctx context.Context, doc models.RawDocument) (*ReceiptResult, error) {
	content, err := s.callModel(ctx, doc, models.KindReceipt)
	if err != nil {
		return nil, err
	}

	raw, err := ParseReceipt(content)
	if err != nil {
		return nil, err
	}

	date, recognized := NormalizeDateOrder(raw.Date, s.dateOrder)
	if !recognized && raw.Date != "" {
		s.logger.Debug("Date format not recognized, passing through",
			zap.String("date", raw.Date),
		)
	}

	classified := ClassifyAmount(string(raw.Amount), s.defaultType)
	if !classified.Parsed && raw.Amount != "" {
		s.logger.Warn("Amount not parseable, magnitude zeroed",
			zap.String("amount", string(raw.Amount)),
		)
	}

	now := time.Now()
	receipt := &models.Receipt{
		ID:           uuid.New(),
		Date:         date,
		MerchantName: sanitizeUTF8(raw.Merchant),
		TotalAmount:  classified.Magnitude,
		Description:  sanitizeUTF8(raw.Description),
		Category:     sanitizeUTF8(raw.Category),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	result := &ReceiptResult{Receipt: receipt}

	if s.receipts != nil {
		if err := s.receipts.Create(ctx, receipt); err != nil {
			perr := &PersistenceError{Op: "receipt insert", Err: err}
			s.logger.Warn("Failed to save receipt", zap.Error(perr))
			result.PersistenceError = perr.Error()
		} else {
			result.Persisted = true
		}
	}

	return result, nil
}

// ProcessStatement runs the full pipeline for one bank-statement image and
// returns zero or more transactions. Incomplete records are kept in the
// result but withheld from persistence. The batch insert is all-or-nothing:
// any single failure fails the whole write.
func (s *ExtractionService) ProcessStatement(ctx context.Context, doc models.RawDocument) (*StatementResult, error) {
	content, err := s.callModel(ctx, doc, models.KindBankStatement)
	if err != nil {
		return nil, err
	}

	raws, err := ParseStatement(content)
	if err != nil {
		return nil, err
	}

	if len(raws) == 0 {
		s.logger.Warn("No transactions extracted from statement",
			zap.String("file", doc.FileName),
		)
		return &StatementResult{Transactions: []*models.Transaction{}}, nil
	}

	now := time.Now()
	result := &StatementResult{}
	var persistable []*models.Transaction

	for _, raw := range raws {
		date, _ := NormalizeDateOrder(raw.Date, s.dateOrder)
		classified := ClassifyAmount(string(raw.Amount), s.defaultType)
		if !classified.Parsed && raw.Amount != "" {
			s.logger.Warn("Amount not parseable, magnitude zeroed",
				zap.String("amount", string(raw.Amount)),
			)
		}

		tx := &models.Transaction{
			ID:          uuid.New(),
			Date:        date,
			Type:        classified.Type,
			Description: sanitizeUTF8(raw.Description),
			Amount:      classified.Magnitude,
			CreatedAt:   now,
		}
		result.Transactions = append(result.Transactions, tx)

		if missing := raw.MissingField(); missing != "" {
			s.logger.Warn("Transaction missing required field, excluded from persistence",
				zap.String("field", missing),
			)
			result.Skipped++
			continue
		}
		persistable = append(persistable, tx)
	}

	if s.transactions != nil && len(persistable) > 0 {
		if err := s.transactions.CreateBatch(ctx, persistable); err != nil {
			perr := &PersistenceError{Op: "transaction batch insert", Err: err}
			s.logger.Warn("Failed to save transactions", zap.Error(perr))
			result.PersistenceError = perr.Error()
		} else {
			result.Persisted = true
		}
	}

	return result, nil
}

func (s *ExtractionService) callModel(ctx context.Context, doc models.RawDocument, kind models.DocumentKind) (string, error) {
	imageData := doc.Bytes
	mediaType := doc.MediaType

	if doc.ImageURL == "" {
		var err error
		imageData, mediaType, err = PrepareImage(doc.Bytes, doc.MediaType)
		if err != nil {
			return "", fmt.Errorf("failed to prepare image: %w", err)
		}
	}

	return s.client.Extract(ctx, ExtractionRequest{
		Kind:      kind,
		ImageData: imageData,
		MediaType: mediaType,
		ImageURL:  doc.ImageURL,
	})
}
