package entity

import "math"

// CartLine is one entry in a shopping cart. Name, brand, size and price are
// snapshots taken when the item was first added; a later catalog price change
// never affects an open cart. The JSON field names match the order_history.json
// item format so a placed order can embed lines verbatim.
type CartLine struct {
	Id       string            `json:"id"`
	Name     string            `json:"name"`
	Brand    string            `json:"brand"`
	Size     string            `json:"size"`
	Price    float64           `json:"price"`
	Quantity int               `json:"quantity"`
	Options  map[string]string `json:"options,omitempty"`
}

// LineTotal is price times quantity for this line, unrounded.
func (l *CartLine) LineTotal() float64 {
	return l.Price * float64(l.Quantity)
}

// ShoppingSession is the per-conversation mutable state: the cart plus the
// customer's budget and dietary preferences. One session is owned by exactly
// one conversation; it lives in the in-memory session store.
type ShoppingSession struct {
	Id                  string     `json:"id"`
	Cart                []CartLine `json:"cart"`
	Budget              *float64   `json:"budget,omitempty"`
	DietaryRestrictions []string   `json:"dietary_restrictions,omitempty"`
	Currency            string     `json:"currency"`
}

// CartTotal sums price x quantity over all lines, rounded half-up to two
// decimal places. An empty cart totals exactly 0.
func (s *ShoppingSession) CartTotal() float64 {
	total := 0.0
	for i := range s.Cart {
		total += s.Cart[i].LineTotal()
	}
	return RoundMoney(total)
}

// FindLine returns the line holding the given catalog item id, or nil.
func (s *ShoppingSession) FindLine(itemId string) *CartLine {
	for i := range s.Cart {
		if s.Cart[i].Id == itemId {
			return &s.Cart[i]
		}
	}
	return nil
}

// RoundMoney rounds a currency amount half-up to two decimals. This is the
// single rounding convention used for every total in the system.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}
