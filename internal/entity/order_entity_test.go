package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 7.0051, want: 7.01},
		{in: 7.0049, want: 7.0},
		{in: 0.1 + 0.2, want: 0.3},
		{in: 0, want: 0},
		{in: 3.5 * 2, want: 7.0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundMoney(tt.in))
	}
}

func TestCartTotal(t *testing.T) {
	s := &ShoppingSession{Cart: []CartLine{
		{Id: "a", Price: 3.50, Quantity: 2},
		{Id: "b", Price: 2.20, Quantity: 1},
	}}
	assert.Equal(t, 9.20, s.CartTotal())

	empty := &ShoppingSession{}
	assert.Equal(t, 0.0, empty.CartTotal())
}

func TestFindLine(t *testing.T) {
	s := &ShoppingSession{Cart: []CartLine{{Id: "a", Quantity: 1}}}

	line := s.FindLine("a")
	assert.NotNil(t, line)

	// The pointer aliases the slice entry so quantity merges stick.
	line.Quantity = 5
	assert.Equal(t, 5, s.Cart[0].Quantity)

	assert.Nil(t, s.FindLine("z"))
}

func TestStatusIndex(t *testing.T) {
	assert.Equal(t, 0, StatusIndex(OrderStatusReceived))
	assert.Equal(t, 4, StatusIndex(OrderStatusDelivered))
	assert.Equal(t, -1, StatusIndex("bogus"))
}

func TestOrderCreatedAt(t *testing.T) {
	o := &Order{Timestamp: "2026-08-30T10:00:00Z"}
	assert.Equal(t, time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC), o.CreatedAt())

	// Legacy records have no zone offset and are read as local time.
	legacy := &Order{Timestamp: "2026-08-30T10:00:00.123456"}
	assert.Equal(t, time.Date(2026, 8, 30, 10, 0, 0, 0, time.Local), legacy.CreatedAt())

	bad := &Order{Timestamp: "yesterday"}
	assert.True(t, bad.CreatedAt().IsZero())
}

func TestCatalogItemOptions(t *testing.T) {
	item := &CatalogItem{Attributes: map[string][]string{"color": {"black", "white"}}}

	assert.True(t, item.AllowsOption("color", "black"))
	assert.False(t, item.AllowsOption("color", "purple"))
	assert.False(t, item.AllowsOption("size", "M"))
}
