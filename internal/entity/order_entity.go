package entity

import "time"

// Order statuses, in fulfilment sequence. Progression is strictly forward and
// "delivered" is terminal.
const (
	OrderStatusReceived       = "received"
	OrderStatusConfirmed      = "confirmed"
	OrderStatusBeingPrepared  = "being_prepared"
	OrderStatusOutForDelivery = "out_for_delivery"
	OrderStatusDelivered      = "delivered"
)

// StatusProgression lists the stages in order; index arithmetic on this slice
// drives the time-based tracking simulation.
var StatusProgression = []string{
	OrderStatusReceived,
	OrderStatusConfirmed,
	OrderStatusBeingPrepared,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
}

// StatusIndex returns the position of a status in the progression, or -1.
func StatusIndex(status string) int {
	for i, s := range StatusProgression {
		if s == status {
			return i
		}
	}
	return -1
}

// StatusEntry is one append-only status_history record.
type StatusEntry struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// OrderTotal is the amount/currency pair recomputed from the item snapshot at
// placement time.
type OrderTotal struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Buyer identifies who placed the order. Email is derived from the name; no
// payment credentials are ever stored.
type Buyer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Order is an immutable record of a finalized purchase. Items are a deep copy
// of the cart at placement; only Status and StatusHistory mutate afterwards,
// and only through the tracking progression. Timestamps are ISO-8601 strings
// to stay bit-compatible with the existing order_history.json data.
type Order struct {
	Id            string        `json:"id"`
	Timestamp     string        `json:"timestamp"`
	Items         []CartLine    `json:"items"`
	Total         OrderTotal    `json:"total"`
	Buyer         *Buyer        `json:"buyer,omitempty"`
	Status        string        `json:"status"`
	StatusHistory []StatusEntry `json:"status_history"`
}

// CreatedAt parses the placement timestamp. Legacy records written without a
// zone offset are read as local time. The zero time is returned for a
// malformed record.
func (o *Order) CreatedAt() time.Time {
	if t, err := time.Parse(time.RFC3339, o.Timestamp); err == nil {
		return t
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", o.Timestamp[:min(19, len(o.Timestamp))], time.Local); err == nil {
		return t
	}
	return time.Time{}
}

// OrderHistory is the persisted order store file: the append-only order log
// plus the recipe name -> catalog item ids mapping used by the dish resolver.
type OrderHistory struct {
	Orders  []*Order            `json:"orders"`
	Recipes map[string][]string `json:"recipes"`
}
