package service

import (
	"fmt"
	"strings"

	"voicemart-be/internal/dto"
	"voicemart-be/internal/entity"
	"voicemart-be/internal/pkg/apperror"
	"voicemart-be/internal/pkg/logger"
	"voicemart-be/internal/repository/contract"
	"voicemart-be/internal/repository/memory"

	"github.com/google/uuid"
)

type ICartService interface {
	CreateSession() *dto.CreateSessionResponse
	View(sessionId string) (*dto.CartResponse, error)
	Add(sessionId string, req *dto.AddToCartRequest) (*dto.CartResponse, error)
	AddDish(sessionId string, req *dto.AddDishRequest) (*dto.CartResponse, error)
	UpdateQuantity(sessionId string, req *dto.UpdateQuantityRequest) (*dto.CartResponse, error)
	Remove(sessionId string, itemName string) (*dto.CartResponse, error)
	SetBudget(sessionId string, req *dto.SetBudgetRequest) (*dto.CartResponse, error)
	SetRestrictions(sessionId string, req *dto.SetRestrictionsRequest) (*dto.CartResponse, error)
	ReorderLast(sessionId string) (*dto.CartResponse, error)
}

type cartService struct {
	catalogService ICatalogService
	orderRepo      contract.IOrderRepository
	sessionRepo    *memory.ShoppingSessionRepository
	broadcaster    StateBroadcaster
	log            logger.ILogger
}

func NewCartService(
	catalogService ICatalogService,
	orderRepo contract.IOrderRepository,
	sessionRepo *memory.ShoppingSessionRepository,
	broadcaster StateBroadcaster,
	log logger.ILogger,
) ICartService {
	return &cartService{
		catalogService: catalogService,
		orderRepo:      orderRepo,
		sessionRepo:    sessionRepo,
		broadcaster:    broadcaster,
		log:            log,
	}
}

func (s *cartService) CreateSession() *dto.CreateSessionResponse {
	session := &entity.ShoppingSession{
		Id:       uuid.NewString(),
		Cart:     []entity.CartLine{},
		Currency: "USD",
	}
	s.sessionRepo.Save(session)

	s.log.Info("CartService", "Shopping session created", map[string]interface{}{
		"session_id": session.Id,
	})
	return &dto.CreateSessionResponse{
		Message:   "New shopping session started.",
		SessionId: session.Id,
	}
}

func (s *cartService) session(sessionId string) (*entity.ShoppingSession, error) {
	session, found := s.sessionRepo.Get(sessionId)
	if !found {
		return nil, apperror.NotFound("shopping session '%s' not found or expired", sessionId)
	}
	return session, nil
}

func (s *cartService) View(sessionId string) (*dto.CartResponse, error) {
	session, err := s.session(sessionId)
	if err != nil {
		return nil, err
	}

	if len(session.Cart) == 0 {
		res := s.cartResponse(session)
		res.Message = "Your cart is empty. Would you like to add some items?"
		return res, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here's what's in your cart (%d items):\n", len(session.Cart))
	for i := range session.Cart {
		line := &session.Cart[i]
		fmt.Fprintf(&b, "- %d x %s (%s, %s) = $%.2f\n", line.Quantity, line.Name, line.Brand, line.Size, line.LineTotal())
	}
	total := session.CartTotal()
	fmt.Fprintf(&b, "Total: $%.2f", total)

	if session.Budget != nil {
		check := WithinBudget(total, *session.Budget)
		if check.Within {
			fmt.Fprintf(&b, "\nBudget: $%.2f ($%.2f remaining)", *session.Budget, check.Remaining)
		} else {
			fmt.Fprintf(&b, "\nBudget: $%.2f ($%.2f over budget)", *session.Budget, check.Overage)
		}
	}

	res := s.cartResponse(session)
	res.Message = b.String()
	return res, nil
}

func (s *cartService) Add(sessionId string, req *dto.AddToCartRequest) (*dto.CartResponse, error) {
	session, err := s.session(sessionId)
	if err != nil {
		return nil, err
	}

	item := s.catalogService.FindByName(req.ItemName)
	if item == nil {
		return nil, apperror.NotFound("I couldn't find '%s' in our catalog. Would you like me to search for similar items?", req.ItemName)
	}

	if !item.InStock {
		return nil, apperror.InvalidState("Sorry, %s is currently out of stock. Can I suggest an alternative?", item.Name)
	}

	// Option values must come from the item's attribute sets.
	for name, value := range req.Options {
		if !item.AllowsOption(name, value) {
			return nil, apperror.Validation("'%s' is not an available %s for %s", value, name, item.Name)
		}
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	// Dietary restrictions warn but do not block; a forced re-add goes
	// through. The violation stays observable in the response.
	if len(session.DietaryRestrictions) > 0 && !MatchesRestrictions(item, session.DietaryRestrictions) && !req.Force {
		res := s.cartResponse(session)
		res.Warning = fmt.Sprintf("%s doesn't match your dietary restrictions (%s)", item.Name, strings.Join(session.DietaryRestrictions, ", "))
		res.Message = fmt.Sprintf("Note: %s doesn't match your dietary restrictions (%s). Would you still like to add it?", item.Name, strings.Join(session.DietaryRestrictions, ", "))
		return res, nil
	}

	var message string
	if existing := session.FindLine(item.Id); existing != nil {
		// Merge quantity; the price/brand/size snapshot is never refreshed.
		existing.Quantity += quantity
		message = fmt.Sprintf("Updated %s quantity to %d.", item.Name, existing.Quantity)
	} else {
		session.Cart = append(session.Cart, entity.CartLine{
			Id:       item.Id,
			Name:     item.Name,
			Brand:    item.Brand,
			Size:     item.Size,
			Price:    item.Price,
			Quantity: quantity,
			Options:  req.Options,
		})
		if item.Currency != "" {
			session.Currency = item.Currency
		}
		message = fmt.Sprintf("Added %d x %s (%s, %s) at $%.2f each to your cart.", quantity, item.Name, item.Brand, item.Size, item.Price)
	}

	total := session.CartTotal()
	message += fmt.Sprintf(" Cart total: $%.2f", total)

	if session.Budget != nil {
		if check := WithinBudget(total, *session.Budget); !check.Within {
			message += fmt.Sprintf(" Warning: You've exceeded your budget of $%.2f by $%.2f.", *session.Budget, check.Overage)
		}
	}

	s.sessionRepo.Save(session)
	s.log.Info("CartService", "Added to cart", map[string]interface{}{
		"session_id": sessionId,
		"item":       item.Name,
		"quantity":   quantity,
	})

	res := s.cartResponse(session)
	res.Message = message
	s.broadcaster.BroadcastState(sessionId, "cart_updated", res)
	return res, nil
}

func (s *cartService) AddDish(sessionId string, req *dto.AddDishRequest) (*dto.CartResponse, error) {
	session, err := s.session(sessionId)
	if err != nil {
		return nil, err
	}

	recipeName, itemIds := resolveRecipe(s.orderRepo.Recipes(), req.DishName)
	if recipeName == "" {
		return nil, apperror.NotFound("I don't have a specific recipe for '%s'. Try searching for individual items or ask me to add specific ingredients.", req.DishName)
	}

	var added []string
	for _, itemId := range itemIds {
		item := s.catalogService.FindById(itemId)
		if item == nil || !item.InStock {
			continue
		}
		// Ingredients already in the cart are not re-added.
		if session.FindLine(item.Id) != nil {
			continue
		}
		session.Cart = append(session.Cart, entity.CartLine{
			Id:       item.Id,
			Name:     item.Name,
			Brand:    item.Brand,
			Size:     item.Size,
			Price:    item.Price,
			Quantity: 1,
		})
		added = append(added, item.Name)
	}

	if len(added) == 0 {
		res := s.cartResponse(session)
		res.Message = fmt.Sprintf("All ingredients for %s are already in your cart!", recipeName)
		return res, nil
	}

	s.sessionRepo.Save(session)
	s.log.Info("CartService", "Added dish ingredients", map[string]interface{}{
		"session_id": sessionId,
		"recipe":     recipeName,
		"added":      added,
	})

	var b strings.Builder
	fmt.Fprintf(&b, "I've added these ingredients for %s:\n", recipeName)
	for _, name := range added {
		fmt.Fprintf(&b, "- %s\n", name)
	}
	fmt.Fprintf(&b, "Cart total: $%.2f", session.CartTotal())

	res := s.cartResponse(session)
	res.Message = b.String()
	s.broadcaster.BroadcastState(sessionId, "cart_updated", res)
	return res, nil
}

func (s *cartService) UpdateQuantity(sessionId string, req *dto.UpdateQuantityRequest) (*dto.CartResponse, error) {
	session, err := s.session(sessionId)
	if err != nil {
		return nil, err
	}

	idx := findCartLine(session, req.ItemName)
	if idx < 0 {
		return nil, apperror.NotFound("'%s' is not in your cart. Would you like to add it?", req.ItemName)
	}

	line := &session.Cart[idx]
	var message string
	if req.NewQuantity <= 0 {
		name := line.Name
		session.Cart = append(session.Cart[:idx], session.Cart[idx+1:]...)
		message = fmt.Sprintf("Removed %s from your cart. Cart total: $%.2f", name, session.CartTotal())
	} else {
		oldQuantity := line.Quantity
		line.Quantity = req.NewQuantity
		message = fmt.Sprintf("Updated %s from %d to %d. Cart total: $%.2f", line.Name, oldQuantity, req.NewQuantity, session.CartTotal())
	}

	s.sessionRepo.Save(session)

	res := s.cartResponse(session)
	res.Message = message
	s.broadcaster.BroadcastState(sessionId, "cart_updated", res)
	return res, nil
}

func (s *cartService) Remove(sessionId string, itemName string) (*dto.CartResponse, error) {
	session, err := s.session(sessionId)
	if err != nil {
		return nil, err
	}

	idx := findCartLine(session, itemName)
	if idx < 0 {
		return nil, apperror.NotFound("'%s' is not in your cart.", itemName)
	}

	name := session.Cart[idx].Name
	session.Cart = append(session.Cart[:idx], session.Cart[idx+1:]...)
	s.sessionRepo.Save(session)

	s.log.Info("CartService", "Removed from cart", map[string]interface{}{
		"session_id": sessionId,
		"item":       name,
	})

	res := s.cartResponse(session)
	res.Message = fmt.Sprintf("Removed %s from your cart. Cart total: $%.2f", name, session.CartTotal())
	s.broadcaster.BroadcastState(sessionId, "cart_updated", res)
	return res, nil
}

func (s *cartService) SetBudget(sessionId string, req *dto.SetBudgetRequest) (*dto.CartResponse, error) {
	session, err := s.session(sessionId)
	if err != nil {
		return nil, err
	}

	session.Budget = &req.Amount
	s.sessionRepo.Save(session)

	message := fmt.Sprintf("Budget set to $%.2f.", req.Amount)
	if total := session.CartTotal(); total > 0 {
		check := WithinBudget(total, req.Amount)
		if check.Within {
			message += fmt.Sprintf(" Current cart total is $%.2f. You have $%.2f remaining.", total, check.Remaining)
		} else {
			message += fmt.Sprintf(" Your current cart total ($%.2f) exceeds your budget by $%.2f.", total, check.Overage)
		}
	}

	res := s.cartResponse(session)
	res.Message = message
	s.broadcaster.BroadcastState(sessionId, "cart_updated", res)
	return res, nil
}

func (s *cartService) SetRestrictions(sessionId string, req *dto.SetRestrictionsRequest) (*dto.CartResponse, error) {
	session, err := s.session(sessionId)
	if err != nil {
		return nil, err
	}

	parts := strings.Split(req.Restrictions, ",")
	restrictions := make([]string, 0, len(parts))
	for _, p := range parts {
		if r := strings.ToLower(strings.TrimSpace(p)); r != "" {
			restrictions = append(restrictions, r)
		}
	}
	session.DietaryRestrictions = restrictions
	s.sessionRepo.Save(session)

	s.log.Info("CartService", "Dietary restrictions set", map[string]interface{}{
		"session_id":   sessionId,
		"restrictions": restrictions,
	})

	res := s.cartResponse(session)
	res.Message = fmt.Sprintf("I'll filter items to match your dietary needs: %s.", strings.Join(restrictions, ", "))
	s.broadcaster.BroadcastState(sessionId, "cart_updated", res)
	return res, nil
}

// ReorderLast merges the most recent order's still-available items into the
// current cart, keeping the ordered quantities.
func (s *cartService) ReorderLast(sessionId string) (*dto.CartResponse, error) {
	session, err := s.session(sessionId)
	if err != nil {
		return nil, err
	}

	last := s.orderRepo.Latest()
	if last == nil {
		return nil, apperror.NotFound("You don't have any previous orders to reorder from.")
	}

	var added []string
	for i := range last.Items {
		ordered := &last.Items[i]
		item := s.catalogService.FindById(ordered.Id)
		if item == nil || !item.InStock {
			continue
		}
		if existing := session.FindLine(item.Id); existing != nil {
			existing.Quantity += ordered.Quantity
		} else {
			session.Cart = append(session.Cart, entity.CartLine{
				Id:       item.Id,
				Name:     item.Name,
				Brand:    item.Brand,
				Size:     item.Size,
				Price:    item.Price,
				Quantity: ordered.Quantity,
			})
		}
		added = append(added, fmt.Sprintf("%d x %s", ordered.Quantity, item.Name))
	}

	if len(added) == 0 {
		return nil, apperror.InvalidState("None of the items from your last order are currently available.")
	}

	s.sessionRepo.Save(session)

	var b strings.Builder
	b.WriteString("I've added items from your last order to your cart:\n")
	for _, entry := range added {
		fmt.Fprintf(&b, "- %s\n", entry)
	}
	fmt.Fprintf(&b, "Cart total: $%.2f", session.CartTotal())

	res := s.cartResponse(session)
	res.Message = b.String()
	s.broadcaster.BroadcastState(sessionId, "cart_updated", res)
	return res, nil
}

// findCartLine matches by case-insensitive substring over the lines currently
// in the cart (first match), independent of catalog matching.
func findCartLine(session *entity.ShoppingSession, itemName string) int {
	query := strings.ToLower(itemName)
	for i := range session.Cart {
		if strings.Contains(strings.ToLower(session.Cart[i].Name), query) {
			return i
		}
	}
	return -1
}

func (s *cartService) cartResponse(session *entity.ShoppingSession) *dto.CartResponse {
	res := &dto.CartResponse{
		SessionId:           session.Id,
		Lines:               session.Cart,
		Total:               session.CartTotal(),
		Currency:            session.Currency,
		Budget:              session.Budget,
		DietaryRestrictions: session.DietaryRestrictions,
	}
	if session.Budget != nil {
		remaining := entity.RoundMoney(*session.Budget - res.Total)
		res.BudgetRemaining = &remaining
	}
	return res
}
