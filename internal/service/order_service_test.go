package service

import (
	"fmt"
	"testing"
	"time"

	"voicemart-be/internal/dto"
	"voicemart-be/internal/entity"
	"voicemart-be/internal/pkg/apperror"
	"voicemart-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	orders    IOrderService
	carts     ICartService
	orderRepo *stubOrderRepo
	sessionId string

	// svc is the concrete service so tests can pin the clock.
	svc *orderService
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	catalogSvc := NewCatalogService(&stubCatalogRepo{items: testCatalog()})
	orderRepo := &stubOrderRepo{recipes: map[string][]string{}}
	sessions := memory.NewShoppingSessionRepository()
	carts := NewCartService(catalogSvc, orderRepo, sessions, NewNoopBroadcaster(), nopLogger{})
	orders := NewOrderService(catalogSvc, orderRepo, sessions, NewNoopBroadcaster(), nopLogger{}, 2*time.Minute)

	return &orderFixture{
		orders:    orders,
		carts:     carts,
		orderRepo: orderRepo,
		sessionId: carts.CreateSession().SessionId,
		svc:       orders.(*orderService),
	}
}

func (f *orderFixture) setNow(t time.Time) {
	f.svc.now = func() time.Time { return t }
}

func TestOrderServiceStageDurationGuard(t *testing.T) {
	catalogSvc := NewCatalogService(&stubCatalogRepo{items: testCatalog()})
	orderRepo := &stubOrderRepo{recipes: map[string][]string{}}
	sessions := memory.NewShoppingSessionRepository()

	// A zero or negative duration from config must not reach the
	// elapsed/stageDuration division.
	for _, d := range []time.Duration{0, -time.Minute} {
		svc := NewOrderService(catalogSvc, orderRepo, sessions, NewNoopBroadcaster(), nopLogger{}, d).(*orderService)
		assert.Equal(t, 120*time.Second, svc.stageDuration)
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.orders.Place(f.sessionId, &dto.PlaceOrderRequest{})
	require.Error(t, err)
	assert.Equal(t, apperror.KindInvalidState, apperror.KindOf(err))
	assert.Contains(t, err.Error(), "Your cart is empty")
}

func TestPlaceOrderClearsCart(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.carts.Add(f.sessionId, &dto.AddToCartRequest{ItemName: "Whole Wheat Bread", Quantity: 2})
	require.NoError(t, err)

	res, err := f.orders.Place(f.sessionId, &dto.PlaceOrderRequest{BuyerName: "John Smith"})
	require.NoError(t, err)

	order := res.Order
	require.NotNil(t, order)
	assert.Len(t, order.Id, 8)
	assert.Equal(t, 7.00, order.Total.Amount)
	assert.Equal(t, "USD", order.Total.Currency)
	assert.Equal(t, entity.OrderStatusReceived, order.Status)
	require.Len(t, order.StatusHistory, 1)
	require.NotNil(t, order.Buyer)
	assert.Equal(t, "John Smith", order.Buyer.Name)
	assert.Equal(t, "john.smith@example.com", order.Buyer.Email)
	assert.Contains(t, res.Message, "Order placed successfully!")

	// The cart is emptied only after the order is recorded.
	view, err := f.carts.View(f.sessionId)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	require.Len(t, f.orderRepo.orders, 1)
}

func TestPlaceOrderSnapshotSurvivesCartMutation(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.carts.Add(f.sessionId, &dto.AddToCartRequest{ItemName: "Spaghetti"})
	require.NoError(t, err)

	res, err := f.orders.Place(f.sessionId, &dto.PlaceOrderRequest{})
	require.NoError(t, err)

	// Refill the cart; the placed order's items must not move.
	_, err = f.carts.Add(f.sessionId, &dto.AddToCartRequest{ItemName: "Tomato Sauce", Quantity: 3})
	require.NoError(t, err)

	require.Len(t, res.Order.Items, 1)
	assert.Equal(t, "Spaghetti", res.Order.Items[0].Name)
}

func TestPlaceOrderDefaultsToGuest(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.carts.Add(f.sessionId, &dto.AddToCartRequest{ItemName: "Spaghetti"})
	require.NoError(t, err)

	res, err := f.orders.Place(f.sessionId, &dto.PlaceOrderRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Guest", res.Order.Buyer.Name)
	assert.Equal(t, "guest@example.com", res.Order.Buyer.Email)
}

func TestPlaceOrderPersistFailureDegrades(t *testing.T) {
	f := newOrderFixture(t)
	f.orderRepo.failPersist = true

	_, err := f.carts.Add(f.sessionId, &dto.AddToCartRequest{ItemName: "Spaghetti"})
	require.NoError(t, err)

	res, err := f.orders.Place(f.sessionId, &dto.PlaceOrderRequest{})
	require.NoError(t, err)
	assert.Contains(t, res.Message, "saved in memory but could not be written to disk")

	// The order still exists in memory and the cart is still cleared.
	require.Len(t, f.orderRepo.orders, 1)
	view, err := f.carts.View(f.sessionId)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
}

func TestPlaceDirect(t *testing.T) {
	f := newOrderFixture(t)

	res, err := f.orders.PlaceDirect(&dto.DirectOrderRequest{
		BuyerName: "Maria Garcia",
		Items: []dto.DirectOrderItem{
			{ProductId: "prod-005", Quantity: 2},
			{ProductId: "prod-006"},
		},
	})
	require.NoError(t, err)

	order := res.Order
	require.Len(t, order.Items, 2)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 1, order.Items[1].Quantity)
	assert.Equal(t, 5.90, order.Total.Amount)
	assert.Contains(t, res.Message, fmt.Sprintf("Order ID: %s", order.Id))
}

func TestPlaceDirectErrors(t *testing.T) {
	f := newOrderFixture(t)

	tests := []struct {
		name     string
		items    []dto.DirectOrderItem
		wantKind apperror.Kind
	}{
		{
			name:     "unknown product",
			items:    []dto.DirectOrderItem{{ProductId: "prod-999"}},
			wantKind: apperror.KindNotFound,
		},
		{
			name:     "out of stock",
			items:    []dto.DirectOrderItem{{ProductId: "prod-004"}},
			wantKind: apperror.KindInvalidState,
		},
		{
			name:     "bad option",
			items:    []dto.DirectOrderItem{{ProductId: "prod-008", Options: map[string]string{"size": "XXL"}}},
			wantKind: apperror.KindValidationFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.orders.PlaceDirect(&dto.DirectOrderRequest{Items: tt.items})
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, apperror.KindOf(err))
		})
	}
}

func placedOrder(id string, placedAt time.Time) *entity.Order {
	return &entity.Order{
		Id:        id,
		Timestamp: placedAt.Format(time.RFC3339),
		Items:     []entity.CartLine{{Id: "prod-005", Name: "Spaghetti", Price: 1.80, Quantity: 1}},
		Total:     entity.OrderTotal{Amount: 1.80, Currency: "USD"},
		Status:    entity.OrderStatusReceived,
		StatusHistory: []entity.StatusEntry{
			{Status: entity.OrderStatusReceived, Timestamp: placedAt.Format(time.RFC3339)},
		},
	}
}

func TestTrackProgressesWithTime(t *testing.T) {
	f := newOrderFixture(t)
	placedAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	f.orderRepo.orders = []*entity.Order{placedOrder("abcd1234", placedAt)}

	tests := []struct {
		name       string
		elapsed    time.Duration
		wantStatus string
	}{
		{name: "immediately", elapsed: 0, wantStatus: entity.OrderStatusReceived},
		{name: "one stage", elapsed: 3 * time.Minute, wantStatus: entity.OrderStatusConfirmed},
		{name: "two stages", elapsed: 4 * time.Minute, wantStatus: entity.OrderStatusBeingPrepared},
		{name: "capped at delivered", elapsed: 11 * time.Minute, wantStatus: entity.OrderStatusDelivered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f.orderRepo.orders = []*entity.Order{placedOrder("abcd1234", placedAt)}
			f.setNow(placedAt.Add(tt.elapsed))

			res, err := f.orders.Track("abcd1234")
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Order.Status)
		})
	}
}

func TestTrackSkipsIntermediateHistoryEntries(t *testing.T) {
	f := newOrderFixture(t)
	placedAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	f.orderRepo.orders = []*entity.Order{placedOrder("abcd1234", placedAt)}

	// An 11 minute jump with 2 minute stages lands straight on delivered
	// with exactly one new history entry.
	f.setNow(placedAt.Add(11 * time.Minute))
	res, err := f.orders.Track("abcd1234")
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusDelivered, res.Order.Status)
	require.Len(t, res.Order.StatusHistory, 2)
	assert.Equal(t, entity.OrderStatusReceived, res.Order.StatusHistory[0].Status)
	assert.Equal(t, entity.OrderStatusDelivered, res.Order.StatusHistory[1].Status)
	assert.Contains(t, res.Message, "Your order has been delivered!")
}

func TestTrackDeliveredIsTerminal(t *testing.T) {
	f := newOrderFixture(t)
	placedAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	f.orderRepo.orders = []*entity.Order{placedOrder("abcd1234", placedAt)}

	f.setNow(placedAt.Add(30 * time.Minute))
	_, err := f.orders.Track("abcd1234")
	require.NoError(t, err)

	// Tracking again much later must not append anything.
	f.setNow(placedAt.Add(2 * time.Hour))
	res, err := f.orders.Track("abcd1234")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, res.Order.Status)
	assert.Len(t, res.Order.StatusHistory, 2)
}

func TestTrackEmptyIdUsesLatest(t *testing.T) {
	f := newOrderFixture(t)
	placedAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	f.orderRepo.orders = []*entity.Order{
		placedOrder("first001", placedAt.Add(-time.Hour)),
		placedOrder("last0002", placedAt),
	}
	f.setNow(placedAt)

	res, err := f.orders.Track("")
	require.NoError(t, err)
	assert.Equal(t, "last0002", res.Order.Id)
}

func TestTrackNotFound(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.orders.Track("missing1")
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	_, err = f.orders.Track("")
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestOrderHistoryShowsFiveNewestFirst(t *testing.T) {
	f := newOrderFixture(t)
	base := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		f.orderRepo.orders = append(f.orderRepo.orders, placedOrder(fmt.Sprintf("order%03d", i), base.Add(time.Duration(i)*time.Hour)))
	}

	res, err := f.orders.History()
	require.NoError(t, err)

	assert.Equal(t, 7, res.TotalOrders)
	require.Len(t, res.Orders, 5)
	assert.Equal(t, "order006", res.Orders[0].Id)
	assert.Equal(t, "order002", res.Orders[4].Id)
	assert.Contains(t, res.Message, "You have 7 past order(s)")
	assert.Contains(t, res.Message, "(Showing 5 most recent orders)")
}

func TestOrderHistoryEmpty(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.orders.History()
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestLastOrderSummary(t *testing.T) {
	f := newOrderFixture(t)
	placedAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	order := placedOrder("abcd1234", placedAt)
	order.Buyer = &entity.Buyer{Name: "John Smith", Email: "john.smith@example.com"}
	f.orderRepo.orders = []*entity.Order{order}

	res, err := f.orders.LastOrderSummary()
	require.NoError(t, err)
	assert.Equal(t, "abcd1234", res.Order.Id)
	assert.Contains(t, res.Message, "Buyer: John Smith")
	assert.Contains(t, res.Message, "Total: 1.80 USD")
}

func TestDeriveEmail(t *testing.T) {
	assert.Equal(t, "john.smith@example.com", deriveEmail("John Smith"))
	assert.Equal(t, "guest@example.com", deriveEmail("Guest"))
	assert.Equal(t, "mary.jane.watson@example.com", deriveEmail("Mary Jane Watson"))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Out For Delivery", statusLabel(entity.OrderStatusOutForDelivery))
	assert.Equal(t, "Received", statusLabel(entity.OrderStatusReceived))
}
