package dto

import "voicemart-be/internal/entity"

type PlaceOrderRequest struct {
	BuyerName string `json:"buyer_name,omitempty"`
}

type DirectOrderItem struct {
	ProductId string            `json:"product_id" validate:"required"`
	Quantity  int               `json:"quantity" validate:"omitempty,gt=0"`
	Options   map[string]string `json:"options,omitempty"`
}

// DirectOrderRequest places an order without going through a cart session.
type DirectOrderRequest struct {
	Items     []DirectOrderItem `json:"items" validate:"required,min=1,dive"`
	BuyerName string            `json:"buyer_name,omitempty"`
}

type OrderResponse struct {
	Message string        `json:"-"`
	Order   *entity.Order `json:"order"`
}

type TrackOrderResponse struct {
	Message string        `json:"-"`
	Order   *entity.Order `json:"order"`
}

type OrderSummary struct {
	Id        string  `json:"id"`
	Timestamp string  `json:"timestamp"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
	Status    string  `json:"status"`
}

type OrderHistoryResponse struct {
	Message     string         `json:"-"`
	TotalOrders int            `json:"total_orders"`
	Orders      []OrderSummary `json:"orders"`
}
