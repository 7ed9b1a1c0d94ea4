package service

import (
	"errors"
	"strings"

	"voicemart-be/internal/entity"
)

// nopLogger keeps test output quiet.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// recordingBroadcaster captures state events for assertions.
type recordingBroadcaster struct {
	events []string
}

func (b *recordingBroadcaster) BroadcastState(sessionId string, event string, payload interface{}) {
	b.events = append(b.events, event)
}

type stubCatalogRepo struct {
	items []*entity.CatalogItem
}

func (r *stubCatalogRepo) All() []*entity.CatalogItem { return r.items }

func (r *stubCatalogRepo) FindById(id string) *entity.CatalogItem {
	for _, item := range r.items {
		if item.Id == id {
			return item
		}
	}
	return nil
}

// stubOrderRepo is an in-memory order store; failPersist simulates a broken
// disk so degraded-mode behavior can be exercised.
type stubOrderRepo struct {
	orders      []*entity.Order
	recipes     map[string][]string
	failPersist bool
	persists    int
}

func (r *stubOrderRepo) Orders() []*entity.Order      { return r.orders }
func (r *stubOrderRepo) Recipes() map[string][]string { return r.recipes }

func (r *stubOrderRepo) Latest() *entity.Order {
	if len(r.orders) == 0 {
		return nil
	}
	return r.orders[len(r.orders)-1]
}

func (r *stubOrderRepo) Find(orderId string) *entity.Order {
	for _, o := range r.orders {
		if o.Id == orderId {
			return o
		}
	}
	return nil
}

func (r *stubOrderRepo) Recent(n int) []*entity.Order {
	if n >= len(r.orders) {
		return r.orders
	}
	return r.orders[len(r.orders)-n:]
}

func (r *stubOrderRepo) Append(order *entity.Order) error {
	r.orders = append(r.orders, order)
	return r.Persist()
}

func (r *stubOrderRepo) Persist() error {
	if r.failPersist {
		return errors.New("disk full")
	}
	r.persists++
	return nil
}

// stubFraudCaseRepo holds cases in memory and records updates.
type stubFraudCaseRepo struct {
	cases      []*entity.FraudCase
	failUpdate bool
	updated    []*entity.FraudCase
}

func (r *stubFraudCaseRepo) LoadAll() ([]*entity.FraudCase, error) { return r.cases, nil }

func (r *stubFraudCaseRepo) FindByUserName(username string) (*entity.FraudCase, error) {
	for _, c := range r.cases {
		if strings.EqualFold(c.UserName, username) {
			return c, nil
		}
	}
	return nil, nil
}

func (r *stubFraudCaseRepo) Update(c *entity.FraudCase) error {
	if r.failUpdate {
		return errors.New("disk full")
	}
	r.updated = append(r.updated, c)
	return nil
}

func testCatalog() []*entity.CatalogItem {
	return []*entity.CatalogItem{
		{Id: "prod-001", Name: "Whole Wheat Bread", Category: "bakery", Brand: "Baker's Best", Size: "500g", Price: 3.50, Currency: "USD", InStock: true, Tags: []string{"vegetarian", "vegan"}},
		{Id: "prod-002", Name: "Whole Milk", Category: "dairy", Brand: "Green Valley", Size: "1L", Price: 2.20, Currency: "USD", InStock: true, Tags: []string{"vegetarian"}},
		{Id: "prod-003", Name: "Cheddar Cheese", Category: "dairy", Brand: "Green Valley", Size: "250g", Price: 4.40, Currency: "USD", InStock: true, Tags: []string{"vegetarian"}},
		{Id: "prod-004", Name: "Atlantic Salmon", Category: "seafood", Brand: "North Coast", Size: "300g", Price: 9.90, Currency: "USD", InStock: false, Tags: []string{"gluten-free"}},
		{Id: "prod-005", Name: "Spaghetti", Category: "pantry", Subcategory: "pasta", Brand: "Casa Nostra", Size: "500g", Price: 1.80, Currency: "USD", InStock: true, Tags: []string{"vegetarian", "vegan"}},
		{Id: "prod-006", Name: "Tomato Sauce", Category: "pantry", Brand: "Casa Nostra", Size: "400g", Price: 2.30, Currency: "USD", InStock: true, Tags: []string{"vegetarian", "vegan", "gluten-free"}},
		{Id: "prod-007", Name: "Ground Beef", Category: "meat", Brand: "Prairie Farms", Size: "500g", Price: 6.50, Currency: "USD", InStock: true},
		{Id: "prod-008", Name: "Cotton T-Shirt", Category: "clothing", Brand: "Plainwear", Size: "unisex", Price: 12.00, Currency: "USD", InStock: true, Attributes: map[string][]string{
			"color": {"black", "white"},
			"size":  {"S", "M", "L"},
		}},
		{Id: "prod-009", Name: "Oat Milk", Category: "dairy", Subcategory: "plant-based", Brand: "Oatly Fields", Size: "1L", Price: 3.10, Currency: "USD", InStock: true, Tags: []string{"vegetarian", "vegan"}},
		{Id: "prod-010", Name: "Almond Milk", Category: "dairy", Subcategory: "plant-based", Brand: "Oatly Fields", Size: "1L", Price: 3.30, Currency: "USD", InStock: true, Tags: []string{"vegetarian", "vegan"}},
		{Id: "prod-011", Name: "Soy Milk", Category: "dairy", Subcategory: "plant-based", Brand: "Oatly Fields", Size: "1L", Price: 2.90, Currency: "USD", InStock: true, Tags: []string{"vegetarian", "vegan"}},
		{Id: "prod-012", Name: "Condensed Milk", Category: "pantry", Brand: "Green Valley", Size: "397g", Price: 2.60, Currency: "USD", InStock: true, Tags: []string{"vegetarian"}},
		{Id: "prod-013", Name: "Buttermilk", Category: "dairy", Brand: "Green Valley", Size: "1L", Price: 3.40, Currency: "USD", InStock: true, Tags: []string{"vegetarian"}},
	}
}
