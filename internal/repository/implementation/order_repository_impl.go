package implementation

import (
	"os"
	"sync"

	"voicemart-be/internal/entity"
	"voicemart-be/internal/pkg/apperror"
	"voicemart-be/internal/pkg/logger"
	"voicemart-be/internal/repository/contract"
)

type orderRepository struct {
	filePath string
	log      logger.ILogger

	mu      sync.Mutex
	history *entity.OrderHistory
}

// NewOrderRepository loads order_history.json once. A missing file gets
// initialized to an empty history on the first persist.
func NewOrderRepository(filePath string, log logger.ILogger) contract.IOrderRepository {
	repo := &orderRepository{
		filePath: filePath,
		log:      log,
		history: &entity.OrderHistory{
			Orders:  []*entity.Order{},
			Recipes: map[string][]string{},
		},
	}

	if _, err := os.Stat(filePath); err != nil {
		log.Info("OrderRepository", "No order history file, starting empty", map[string]interface{}{
			"path": filePath,
		})
		return repo
	}

	if err := readJSON(filePath, repo.history); err != nil {
		log.Error("OrderRepository", "Error loading order history", map[string]interface{}{
			"path":  filePath,
			"error": err.Error(),
		})
		repo.history = &entity.OrderHistory{Orders: []*entity.Order{}, Recipes: map[string][]string{}}
		return repo
	}

	if repo.history.Orders == nil {
		repo.history.Orders = []*entity.Order{}
	}
	if repo.history.Recipes == nil {
		repo.history.Recipes = map[string][]string{}
	}

	log.Info("OrderRepository", "Order history loaded", map[string]interface{}{
		"orders":  len(repo.history.Orders),
		"recipes": len(repo.history.Recipes),
	})
	return repo
}

func (r *orderRepository) Orders() []*entity.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.history.Orders
}

func (r *orderRepository) Recipes() map[string][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.history.Recipes
}

func (r *orderRepository) Find(orderId string) *entity.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.history.Orders {
		if o.Id == orderId {
			return o
		}
	}
	return nil
}

func (r *orderRepository) Latest() *entity.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.history.Orders) == 0 {
		return nil
	}
	return r.history.Orders[len(r.history.Orders)-1]
}

func (r *orderRepository) Recent(n int) []*entity.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	orders := r.history.Orders
	if n >= len(orders) {
		return orders
	}
	return orders[len(orders)-n:]
}

func (r *orderRepository) Append(order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history.Orders = append(r.history.Orders, order)
	return r.persistLocked()
}

func (r *orderRepository) Persist() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.persistLocked()
}

func (r *orderRepository) persistLocked() error {
	if err := writeJSONAtomic(r.filePath, r.history); err != nil {
		return apperror.Persistence("failed to save order history", err)
	}
	r.log.Info("OrderRepository", "Order history saved", map[string]interface{}{
		"orders": len(r.history.Orders),
	})
	return nil
}
