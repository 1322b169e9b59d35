package service

import (
	"context"
	"errors"
	"testing"

	"ledgerlens/internal/models"
	"ledgerlens/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubClient returns a canned model response without going over the network.
type stubClient struct {
	content  string
	err      error
	requests []ExtractionRequest
}

func (c *stubClient) Extract(_ context.Context, req ExtractionRequest) (string, error) {
	c.requests = append(c.requests, req)
	return c.content, c.err
}

func (c *stubClient) Complete(_ context.Context, _, _ string) (string, error) {
	return c.content, c.err
}

type stubReceiptStore struct {
	created []*models.Receipt
	err     error
}

func (s *stubReceiptStore) Create(_ context.Context, r *models.Receipt) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, r)
	return nil
}

type stubTransactionStore struct {
	created []*models.Transaction
	err     error
}

func (s *stubTransactionStore) CreateBatch(_ context.Context, txs []*models.Transaction) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, txs...)
	return nil
}

func newTestService(client ModelClient, receipts ReceiptStore, transactions TransactionStore) *ExtractionService {
	cfg := &config.PipelineConfig{DefaultType: "unknown", DateOrder: "day-first"}
	return NewExtractionService(client, receipts, transactions, cfg, zap.NewNop())
}

func pngDoc() models.RawDocument {
	return models.RawDocument{
		FileName:  "receipt.png",
		MediaType: "image/png",
		Bytes:     []byte("not a real png, never decoded"),
	}
}

func TestProcessReceipt(t *testing.T) {
	client := &stubClient{content: `{"date":"25/12/23","merchant":"ACME Mart","amount":"-42.75","description":"groceries","category":"groceries"}`}
	store := &stubReceiptStore{}
	svc := newTestService(client, store, nil)

	result, err := svc.ProcessReceipt(context.Background(), pngDoc())
	require.NoError(t, err)

	assert.Equal(t, "2023-12-25", result.Receipt.Date)
	assert.Equal(t, "ACME Mart", result.Receipt.MerchantName)
	assert.Equal(t, "42.75", result.Receipt.TotalAmount.StringFixed(2))
	assert.NotEqual(t, result.Receipt.ID.String(), "00000000-0000-0000-0000-000000000000")

	assert.True(t, result.Persisted)
	assert.Empty(t, result.PersistenceError)
	require.Len(t, store.created, 1)
	assert.Equal(t, result.Receipt, store.created[0])
}

func TestProcessReceipt_PersistenceFailureDoesNotFailExtraction(t *testing.T) {
	client := &stubClient{content: `{"date":"2023-12-25","merchant":"ACME","amount":"10.00","description":"x"}`}
	store := &stubReceiptStore{err: errors.New("connection refused")}
	svc := newTestService(client, store, nil)

	result, err := svc.ProcessReceipt(context.Background(), pngDoc())
	require.NoError(t, err)

	assert.False(t, result.Persisted)
	assert.Contains(t, result.PersistenceError, "connection refused")
	assert.NotNil(t, result.Receipt)
}

func TestProcessReceipt_NilStoreSkipsPersistence(t *testing.T) {
	client := &stubClient{content: `{"date":"2023-12-25","merchant":"ACME","amount":"10.00","description":"x"}`}
	svc := newTestService(client, nil, nil)

	result, err := svc.ProcessReceipt(context.Background(), pngDoc())
	require.NoError(t, err)
	assert.False(t, result.Persisted)
	assert.Empty(t, result.PersistenceError)
}

func TestProcessReceipt_ModelErrorPropagates(t *testing.T) {
	client := &stubClient{err: ErrEmptyResponse}
	svc := newTestService(client, nil, nil)

	_, err := svc.ProcessReceipt(context.Background(), pngDoc())
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestProcessReceipt_Deterministic(t *testing.T) {
	client := &stubClient{content: `{"date":"12/23","merchant":"ACME","amount":"1,200.50 CR","description":"x","category":"misc"}`}
	svc := newTestService(client, nil, nil)

	first, err := svc.ProcessReceipt(context.Background(), pngDoc())
	require.NoError(t, err)
	second, err := svc.ProcessReceipt(context.Background(), pngDoc())
	require.NoError(t, err)

	// Same input, same field values; only identity and timestamps differ.
	assert.Equal(t, first.Receipt.Date, second.Receipt.Date)
	assert.Equal(t, first.Receipt.MerchantName, second.Receipt.MerchantName)
	assert.True(t, first.Receipt.TotalAmount.Equal(second.Receipt.TotalAmount))
	assert.Equal(t, first.Receipt.Category, second.Receipt.Category)
}

func TestProcessStatement(t *testing.T) {
	client := &stubClient{content: `[
		{"date":"01/12/2023","description":"SALARY","amount":"+5000.00"},
		{"date":"02/12/2023","description":"GROCERY STORE","amount":"-120.50"}
	]`}
	store := &stubTransactionStore{}
	svc := newTestService(client, nil, store)

	result, err := svc.ProcessStatement(context.Background(), pngDoc())
	require.NoError(t, err)
	require.Len(t, result.Transactions, 2)

	assert.Equal(t, "2023-12-01", result.Transactions[0].Date)
	assert.Equal(t, models.TypeCredit, result.Transactions[0].Type)
	assert.Equal(t, "5000.00", result.Transactions[0].Amount.StringFixed(2))

	assert.Equal(t, models.TypeDebit, result.Transactions[1].Type)
	assert.Equal(t, "120.50", result.Transactions[1].Amount.StringFixed(2))

	assert.Zero(t, result.Skipped)
	assert.True(t, result.Persisted)
	assert.Len(t, store.created, 2)
}

func TestProcessStatement_TrailingSignAmounts(t *testing.T) {
	client := &stubClient{content: `[
		{"date":"01/12/2023","description":"WITHDRAWAL","amount":"500.00-"},
		{"date":"02/12/2023","description":"DEPOSIT","amount":"1000.00+"}
	]`}
	svc := newTestService(client, nil, nil)

	result, err := svc.ProcessStatement(context.Background(), pngDoc())
	require.NoError(t, err)
	require.Len(t, result.Transactions, 2)

	assert.Equal(t, models.TypeDebit, result.Transactions[0].Type)
	assert.Equal(t, "500.00", result.Transactions[0].Amount.StringFixed(2))
	assert.Equal(t, models.TypeCredit, result.Transactions[1].Type)
	assert.Equal(t, "1000.00", result.Transactions[1].Amount.StringFixed(2))
}

func TestProcessStatement_SingleObjectResponse(t *testing.T) {
	client := &stubClient{content: `{"date":"12/23","description":"opening balance","amount":"1000.00"}`}
	svc := newTestService(client, nil, nil)

	result, err := svc.ProcessStatement(context.Background(), pngDoc())
	require.NoError(t, err)
	require.Len(t, result.Transactions, 1)
	assert.Equal(t, "2023-12-01", result.Transactions[0].Date)
}

func TestProcessStatement_IncompleteRecordsKeptButNotPersisted(t *testing.T) {
	client := &stubClient{content: `[
		{"date":"01/12/2023","description":"SALARY","amount":"+5000.00"},
		{"date":"","description":"TORN ROW","amount":"9.99"}
	]`}
	store := &stubTransactionStore{}
	svc := newTestService(client, nil, store)

	result, err := svc.ProcessStatement(context.Background(), pngDoc())
	require.NoError(t, err)

	assert.Len(t, result.Transactions, 2, "incomplete record stays in the output")
	assert.Equal(t, 1, result.Skipped)
	assert.Len(t, store.created, 1, "only the complete record is written")
	assert.Equal(t, "SALARY", store.created[0].Description)
}

func TestProcessStatement_EmptyArrayIsValid(t *testing.T) {
	client := &stubClient{content: "[]"}
	store := &stubTransactionStore{}
	svc := newTestService(client, nil, store)

	result, err := svc.ProcessStatement(context.Background(), pngDoc())
	require.NoError(t, err)
	assert.Empty(t, result.Transactions)
	assert.False(t, result.Persisted)
	assert.Empty(t, store.created)
}

func TestProcessStatement_BatchFailureRecorded(t *testing.T) {
	client := &stubClient{content: `[{"date":"01/12/2023","description":"SALARY","amount":"+5000.00"}]`}
	store := &stubTransactionStore{err: errors.New("deadlock detected")}
	svc := newTestService(client, nil, store)

	result, err := svc.ProcessStatement(context.Background(), pngDoc())
	require.NoError(t, err)
	assert.False(t, result.Persisted)
	assert.Contains(t, result.PersistenceError, "deadlock detected")
	require.Len(t, result.Transactions, 1)
}

func TestProcessStatement_MalformedResponse(t *testing.T) {
	client := &stubClient{content: "the statement was too blurry to read"}
	svc := newTestService(client, nil, nil)

	_, err := svc.ProcessStatement(context.Background(), pngDoc())
	var malformed *MalformedResponseError
	assert.ErrorAs(t, err, &malformed)
}

func TestCallModel_ImageURLSkipsPreparation(t *testing.T) {
	client := &stubClient{content: `{"date":"2023-12-25","merchant":"ACME","amount":"10.00","description":"x"}`}
	svc := newTestService(client, nil, nil)

	doc := models.RawDocument{ImageURL: "https://example.com/receipt.jpg"}
	_, err := svc.ProcessReceipt(context.Background(), doc)
	require.NoError(t, err)

	require.Len(t, client.requests, 1)
	assert.Equal(t, "https://example.com/receipt.jpg", client.requests[0].ImageURL)
	assert.Empty(t, client.requests[0].ImageData)
}
