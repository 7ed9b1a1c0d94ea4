package service

import (
	"fmt"
	"strings"
	"time"

	"voicemart-be/internal/dto"
	"voicemart-be/internal/entity"
	"voicemart-be/internal/pkg/apperror"
	"voicemart-be/internal/pkg/logger"
	"voicemart-be/internal/repository/contract"
	"voicemart-be/internal/repository/memory"

	"github.com/google/uuid"
)

// persistDegradedNote is appended to an otherwise successful outcome when the
// order file could not be written; the conversation continues on in-memory
// state instead of aborting the call.
const persistDegradedNote = " (Note: your order is saved in memory but could not be written to disk.)"

type IOrderService interface {
	// Place creates an order from the session's cart and clears the cart.
	Place(sessionId string, req *dto.PlaceOrderRequest) (*dto.OrderResponse, error)
	// PlaceDirect creates an order straight from a product list, re-reading
	// prices from the catalog.
	PlaceDirect(req *dto.DirectOrderRequest) (*dto.OrderResponse, error)
	// Track reports an order's status, advancing the simulated progression
	// first. An empty orderId tracks the most recent order.
	Track(orderId string) (*dto.TrackOrderResponse, error)
	History() (*dto.OrderHistoryResponse, error)
	LastOrderSummary() (*dto.OrderResponse, error)
}

type orderService struct {
	catalogService ICatalogService
	orderRepo      contract.IOrderRepository
	sessionRepo    *memory.ShoppingSessionRepository
	broadcaster    StateBroadcaster
	log            logger.ILogger

	// stageDuration is how long an order sits in each fulfilment stage of the
	// simulated progression.
	stageDuration time.Duration
	now           func() time.Time
}

func NewOrderService(
	catalogService ICatalogService,
	orderRepo contract.IOrderRepository,
	sessionRepo *memory.ShoppingSessionRepository,
	broadcaster StateBroadcaster,
	log logger.ILogger,
	stageDuration time.Duration,
) IOrderService {
	// Config is user-supplied; a zero duration would divide by zero when
	// computing the progression stage.
	if stageDuration <= 0 {
		stageDuration = 120 * time.Second
	}
	return &orderService{
		catalogService: catalogService,
		orderRepo:      orderRepo,
		sessionRepo:    sessionRepo,
		broadcaster:    broadcaster,
		log:            log,
		stageDuration:  stageDuration,
		now:            time.Now,
	}
}

func newOrderId() string {
	return uuid.NewString()[:8]
}

// deriveEmail builds the buyer's contact identifier from their name.
func deriveEmail(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", ".") + "@example.com"
}

func (s *orderService) Place(sessionId string, req *dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
	session, found := s.sessionRepo.Get(sessionId)
	if !found {
		return nil, apperror.NotFound("shopping session '%s' not found or expired", sessionId)
	}

	if len(session.Cart) == 0 {
		return nil, apperror.InvalidState("Your cart is empty. Add some items before placing an order!")
	}

	buyerName := req.BuyerName
	if buyerName == "" {
		buyerName = "Guest"
	}

	now := s.now()
	// Deep copy the cart so later session mutation can't touch the order.
	items := make([]entity.CartLine, len(session.Cart))
	copy(items, session.Cart)

	total := 0.0
	for i := range items {
		total += items[i].LineTotal()
	}

	order := &entity.Order{
		Id:        newOrderId(),
		Timestamp: now.Format(time.RFC3339),
		Items:     items,
		Total: entity.OrderTotal{
			Amount:   entity.RoundMoney(total),
			Currency: session.Currency,
		},
		Buyer:  &entity.Buyer{Name: buyerName, Email: deriveEmail(buyerName)},
		Status: entity.OrderStatusReceived,
		StatusHistory: []entity.StatusEntry{
			{Status: entity.OrderStatusReceived, Timestamp: now.Format(time.RFC3339)},
		},
	}

	degraded := false
	if err := s.orderRepo.Append(order); err != nil {
		// The order stays in the in-memory store; the conversation goes on.
		degraded = true
		s.log.Error("OrderService", "Failed to persist order", map[string]interface{}{
			"order_id": order.Id,
			"error":    err.Error(),
		})
	}

	// Clearing is all-or-nothing and only happens on successful placement.
	session.Cart = []entity.CartLine{}
	s.sessionRepo.Save(session)

	s.log.Info("OrderService", "Order placed", map[string]interface{}{
		"order_id": order.Id,
		"total":    order.Total.Amount,
	})

	var b strings.Builder
	b.WriteString("Order placed successfully!\n")
	fmt.Fprintf(&b, "Order ID: %s\n", order.Id)
	fmt.Fprintf(&b, "Order Time: %s\n", now.Format("3:04 PM, January 2, 2006"))
	b.WriteString("Items:\n")
	for i := range order.Items {
		item := &order.Items[i]
		fmt.Fprintf(&b, "- %d x %s = $%.2f\n", item.Quantity, item.Name, item.LineTotal())
	}
	fmt.Fprintf(&b, "Total: $%.2f\n", order.Total.Amount)
	b.WriteString("Your order has been received and will be prepared shortly. You can track it using the order ID.")
	if degraded {
		b.WriteString(persistDegradedNote)
	}

	res := &dto.OrderResponse{Message: b.String(), Order: order}
	s.broadcaster.BroadcastState(sessionId, "order_placed", res)
	return res, nil
}

func (s *orderService) PlaceDirect(req *dto.DirectOrderRequest) (*dto.OrderResponse, error) {
	buyerName := req.BuyerName
	if buyerName == "" {
		buyerName = "Guest"
	}

	now := s.now()
	var items []entity.CartLine
	total := 0.0
	currency := "USD"

	for _, reqItem := range req.Items {
		item := s.catalogService.FindById(reqItem.ProductId)
		if item == nil {
			return nil, apperror.NotFound("I couldn't find a product with ID '%s'.", reqItem.ProductId)
		}
		if !item.InStock {
			return nil, apperror.InvalidState("Sorry, %s is currently out of stock.", item.Name)
		}
		for name, value := range reqItem.Options {
			if !item.AllowsOption(name, value) {
				return nil, apperror.Validation("'%s' is not an available %s for %s", value, name, item.Name)
			}
		}

		quantity := reqItem.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		items = append(items, entity.CartLine{
			Id:       item.Id,
			Name:     item.Name,
			Brand:    item.Brand,
			Size:     item.Size,
			Price:    item.Price,
			Quantity: quantity,
			Options:  reqItem.Options,
		})
		total += item.Price * float64(quantity)
		if item.Currency != "" {
			currency = item.Currency
		}
	}

	order := &entity.Order{
		Id:        newOrderId(),
		Timestamp: now.Format(time.RFC3339),
		Items:     items,
		Total: entity.OrderTotal{
			Amount:   entity.RoundMoney(total),
			Currency: currency,
		},
		Buyer:  &entity.Buyer{Name: buyerName, Email: deriveEmail(buyerName)},
		Status: entity.OrderStatusReceived,
		StatusHistory: []entity.StatusEntry{
			{Status: entity.OrderStatusReceived, Timestamp: now.Format(time.RFC3339)},
		},
	}

	message := fmt.Sprintf("Order placed successfully! Order ID: %s. Total: %.2f %s.", order.Id, order.Total.Amount, order.Total.Currency)
	if err := s.orderRepo.Append(order); err != nil {
		message += persistDegradedNote
		s.log.Error("OrderService", "Failed to persist order", map[string]interface{}{
			"order_id": order.Id,
			"error":    err.Error(),
		})
	}

	s.log.Info("OrderService", "Direct order placed", map[string]interface{}{
		"order_id": order.Id,
		"total":    order.Total.Amount,
	})
	return &dto.OrderResponse{Message: message, Order: order}, nil
}

func (s *orderService) Track(orderId string) (*dto.TrackOrderResponse, error) {
	var order *entity.Order
	if orderId != "" {
		order = s.orderRepo.Find(orderId)
		if order == nil {
			return nil, apperror.NotFound("I couldn't find an order with ID '%s'.", orderId)
		}
	} else {
		order = s.orderRepo.Latest()
		if order == nil {
			return nil, apperror.NotFound("You don't have any orders yet. Place your first order to get started!")
		}
	}

	s.progressStatus(order)

	statusText := statusLabel(order.Status)
	var b strings.Builder
	fmt.Fprintf(&b, "Order Status: %s\n", statusText)
	fmt.Fprintf(&b, "Order ID: %s\n", order.Id)
	fmt.Fprintf(&b, "Order Time: %s\n", order.Timestamp)
	fmt.Fprintf(&b, "Total: $%.2f\n", order.Total.Amount)
	fmt.Fprintf(&b, "Items: %d", len(order.Items))

	switch order.Status {
	case entity.OrderStatusDelivered:
		b.WriteString("\nYour order has been delivered! Enjoy your food!")
	case entity.OrderStatusOutForDelivery:
		b.WriteString("\nYour order is on the way! Expected delivery in 15-30 minutes.")
	case entity.OrderStatusBeingPrepared:
		b.WriteString("\nYour order is being prepared. It should be ready soon!")
	}

	return &dto.TrackOrderResponse{Message: b.String(), Order: order}, nil
}

// progressStatus advances an order along the fulfilment stages based purely
// on elapsed time since placement, one stage per stageDuration. The jump goes
// straight to the target stage: stages skipped in between get no history
// entries, and at most one entry is appended per query. Delivered is
// terminal. This simulates a fulfilment pipeline and is not a real one.
func (s *orderService) progressStatus(order *entity.Order) {
	if order.Status == entity.OrderStatusDelivered {
		return
	}

	currentIndex := entity.StatusIndex(order.Status)
	if currentIndex < 0 {
		return
	}

	elapsed := s.now().Sub(order.CreatedAt())
	targetIndex := int(elapsed / s.stageDuration)
	if targetIndex > len(entity.StatusProgression)-1 {
		targetIndex = len(entity.StatusProgression) - 1
	}
	if targetIndex <= currentIndex {
		return
	}

	newStatus := entity.StatusProgression[targetIndex]
	order.Status = newStatus
	order.StatusHistory = append(order.StatusHistory, entity.StatusEntry{
		Status:    newStatus,
		Timestamp: s.now().Format(time.RFC3339),
	})

	if err := s.orderRepo.Persist(); err != nil {
		s.log.Error("OrderService", "Failed to persist status update", map[string]interface{}{
			"order_id": order.Id,
			"error":    err.Error(),
		})
	}

	s.log.Info("OrderService", "Order status updated", map[string]interface{}{
		"order_id": order.Id,
		"status":   newStatus,
	})
}

// statusLabel turns "out_for_delivery" into "Out For Delivery".
func statusLabel(status string) string {
	words := strings.Split(status, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func (s *orderService) History() (*dto.OrderHistoryResponse, error) {
	orders := s.orderRepo.Orders()
	if len(orders) == 0 {
		return nil, apperror.NotFound("You don't have any order history yet. Place your first order to get started!")
	}

	recent := s.orderRepo.Recent(5)

	var b strings.Builder
	fmt.Fprintf(&b, "You have %d past order(s):\n", len(orders))

	res := &dto.OrderHistoryResponse{TotalOrders: len(orders)}
	// Newest first.
	for i := len(recent) - 1; i >= 0; i-- {
		o := recent[i]
		fmt.Fprintf(&b, "- Order %s: $%.2f (%d items) - Status: %s\n", o.Id, o.Total.Amount, len(o.Items), o.Status)
		res.Orders = append(res.Orders, dto.OrderSummary{
			Id:        o.Id,
			Timestamp: o.Timestamp,
			Total:     o.Total.Amount,
			ItemCount: len(o.Items),
			Status:    o.Status,
		})
	}
	if len(orders) > 5 {
		b.WriteString("(Showing 5 most recent orders)")
	}

	res.Message = strings.TrimRight(b.String(), "\n")
	return res, nil
}

func (s *orderService) LastOrderSummary() (*dto.OrderResponse, error) {
	order := s.orderRepo.Latest()
	if order == nil {
		return nil, apperror.NotFound("No recent orders found.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Last Order (%s) - %s:\n", order.Id, order.Timestamp)
	fmt.Fprintf(&b, "Status: %s\n", order.Status)
	if order.Buyer != nil {
		fmt.Fprintf(&b, "Buyer: %s\n", order.Buyer.Name)
	}
	for i := range order.Items {
		item := &order.Items[i]
		fmt.Fprintf(&b, "- %dx %s @ %.2f = %.2f\n", item.Quantity, item.Name, item.Price, item.LineTotal())
	}
	fmt.Fprintf(&b, "Total: %.2f %s", order.Total.Amount, order.Total.Currency)

	return &dto.OrderResponse{Message: b.String(), Order: order}, nil
}
