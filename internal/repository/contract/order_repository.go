package contract

import "voicemart-be/internal/entity"

// IOrderRepository owns the persisted order history file. The file is the
// single source of truth: loaded once at startup and rewritten in full on
// every mutation. Implementations guard the rewrite with an in-process lock;
// cross-process concurrent mutation is out of scope.
type IOrderRepository interface {
	Orders() []*entity.Order
	Recipes() map[string][]string
	Find(orderId string) *entity.Order
	Latest() *entity.Order
	Recent(n int) []*entity.Order
	Append(order *entity.Order) error
	// Persist rewrites the whole file; called after in-place status mutation.
	Persist() error
}
