package implementation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"voicemart-be/internal/entity"
	"voicemart-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCatalogRepositoryLoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	writeFile(t, path, `[
  {"id": "prod-001", "name": "Whole Wheat Bread", "category": "bakery", "brand": "Baker's Best", "size": "500g", "price": 3.5, "in_stock": true, "tags": ["vegan"]},
  {"id": "prod-002", "name": "Whole Milk", "category": "dairy", "brand": "Green Valley", "size": "1L", "price": 2.2, "in_stock": false}
]`)

	repo := NewCatalogRepository(path, nopLogger{})

	require.Len(t, repo.All(), 2)
	item := repo.FindById("prod-001")
	require.NotNil(t, item)
	assert.Equal(t, "Whole Wheat Bread", item.Name)
	assert.Equal(t, 3.5, item.Price)
	assert.True(t, item.HasTag("vegan"))

	assert.False(t, repo.FindById("prod-002").InStock)
	assert.Nil(t, repo.FindById("prod-999"))
}

func TestCatalogRepositoryMissingFileIsEmpty(t *testing.T) {
	repo := NewCatalogRepository(filepath.Join(t.TempDir(), "nope.json"), nopLogger{})
	assert.Empty(t, repo.All())
}

func TestCatalogRepositoryBadJSONIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	writeFile(t, path, "{not json")

	repo := NewCatalogRepository(path, nopLogger{})
	assert.Empty(t, repo.All())
}

func TestOrderRepositoryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order_history.json")
	writeFile(t, path, `{
  "orders": [
    {
      "id": "aaaa1111",
      "timestamp": "2026-08-30T10:00:00Z",
      "items": [{"id": "prod-001", "name": "Whole Wheat Bread", "brand": "Baker's Best", "size": "500g", "price": 3.5, "quantity": 2}],
      "total": {"amount": 7.0, "currency": "USD"},
      "status": "received",
      "status_history": [{"status": "received", "timestamp": "2026-08-30T10:00:00Z"}]
    }
  ],
  "recipes": {"pasta": ["prod-005", "prod-006"]}
}`)

	repo := NewOrderRepository(path, nopLogger{})

	require.Len(t, repo.Orders(), 1)
	assert.Equal(t, []string{"prod-005", "prod-006"}, repo.Recipes()["pasta"])
	require.NotNil(t, repo.Find("aaaa1111"))
	assert.Nil(t, repo.Find("missing"))

	err := repo.Append(&entity.Order{
		Id:        "bbbb2222",
		Timestamp: "2026-08-30T11:00:00Z",
		Items:     []entity.CartLine{},
		Total:     entity.OrderTotal{Amount: 0, Currency: "USD"},
		Status:    entity.OrderStatusReceived,
	})
	require.NoError(t, err)

	// A fresh repo over the same file sees the appended order and the
	// untouched recipes.
	reloaded := NewOrderRepository(path, nopLogger{})
	require.Len(t, reloaded.Orders(), 2)
	assert.Equal(t, "bbbb2222", reloaded.Latest().Id)
	assert.Len(t, reloaded.Recipes(), 1)
}

func TestOrderRepositoryPersistsStatusMutation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order_history.json")
	repo := NewOrderRepository(path, nopLogger{})

	require.NoError(t, repo.Append(&entity.Order{
		Id:     "cccc3333",
		Status: entity.OrderStatusReceived,
	}))

	order := repo.Find("cccc3333")
	order.Status = entity.OrderStatusDelivered
	order.StatusHistory = append(order.StatusHistory, entity.StatusEntry{Status: entity.OrderStatusDelivered, Timestamp: "2026-08-30T12:00:00Z"})
	require.NoError(t, repo.Persist())

	reloaded := NewOrderRepository(path, nopLogger{})
	assert.Equal(t, entity.OrderStatusDelivered, reloaded.Find("cccc3333").Status)
}

func TestOrderRepositoryRecent(t *testing.T) {
	repo := NewOrderRepository(filepath.Join(t.TempDir(), "order_history.json"), nopLogger{})

	for _, id := range []string{"one", "two", "three"} {
		require.NoError(t, repo.Append(&entity.Order{Id: id}))
	}

	recent := repo.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "two", recent[0].Id)
	assert.Equal(t, "three", recent[1].Id)

	assert.Len(t, repo.Recent(10), 3)
}

func TestOrderRepositoryMissingFileStartsEmpty(t *testing.T) {
	repo := NewOrderRepository(filepath.Join(t.TempDir(), "order_history.json"), nopLogger{})
	assert.Empty(t, repo.Orders())
	assert.Nil(t, repo.Latest())
	assert.NotNil(t, repo.Recipes())
}

func fraudCasesFixture(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "fraud_cases.json")
	writeFile(t, path, `[
  {
    "id": "case-001",
    "userName": "John Smith",
    "securityIdentifier": "12345",
    "cardEnding": "4832",
    "transactionAmount": 899.99,
    "transactionCurrency": "USD",
    "transactionName": "TechWorld Electronics",
    "transactionCategory": "electronics",
    "transactionLocation": "Miami, FL",
    "transactionSource": "online",
    "transactionTime": "2026-08-28T03:14:00",
    "status": "pending_review"
  },
  {
    "id": "case-002",
    "userName": "Maria Garcia",
    "securityIdentifier": "67890",
    "cardEnding": "1157",
    "transactionAmount": 245.5,
    "transactionCurrency": "USD",
    "transactionName": "Luxe Boutique",
    "transactionCategory": "retail",
    "transactionLocation": "Paris, France",
    "transactionSource": "in-store",
    "transactionTime": "2026-08-29T16:42:00",
    "status": "pending_review"
  }
]`)
	return path
}

func TestFraudCaseRepositoryFindByUserName(t *testing.T) {
	repo := NewFraudCaseRepository(fraudCasesFixture(t), nopLogger{})

	c, err := repo.FindByUserName("JOHN SMITH")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "case-001", c.Id)
	assert.Equal(t, "12345", c.SecurityIdentifier)

	c, err = repo.FindByUserName("Nobody")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestFraudCaseRepositoryUpdateById(t *testing.T) {
	path := fraudCasesFixture(t)
	repo := NewFraudCaseRepository(path, nopLogger{})

	c, err := repo.FindByUserName("Maria Garcia")
	require.NoError(t, err)
	c.Status = entity.CaseStatusConfirmedFraud
	c.OutcomeNote = "Customer denied transaction."
	require.NoError(t, repo.Update(c))

	all, err := repo.LoadAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, entity.CaseStatusPendingReview, all[0].Status)
	assert.Equal(t, entity.CaseStatusConfirmedFraud, all[1].Status)
	assert.Equal(t, "Customer denied transaction.", all[1].OutcomeNote)
}

func TestFraudCaseRepositoryUpdateUnknownId(t *testing.T) {
	repo := NewFraudCaseRepository(fraudCasesFixture(t), nopLogger{})

	err := repo.Update(&entity.FraudCase{Id: "case-404"})
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestFraudCaseRepositoryMissingFile(t *testing.T) {
	repo := NewFraudCaseRepository(filepath.Join(t.TempDir(), "nope.json"), nopLogger{})

	cases, err := repo.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, cases)
}

func TestWriteJSONAtomicLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "store.json")

	require.NoError(t, writeJSONAtomic(path, map[string]string{"k": "v"}))
	require.NoError(t, writeJSONAtomic(path, map[string]string{"k": "v2"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "store.json", entries[0].Name())

	var got map[string]string
	require.NoError(t, readJSON(path, &got))
	assert.Equal(t, "v2", got["k"])

	// Output stays two-space indented for the legacy tooling.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "{\n  \""))
}
