package dto

import "voicemart-be/internal/entity"

type CreateSessionResponse struct {
	Message   string `json:"-"`
	SessionId string `json:"session_id"`
}

type AddToCartRequest struct {
	ItemName string            `json:"item_name" validate:"required"`
	Quantity int               `json:"quantity" validate:"omitempty,gt=0"`
	Options  map[string]string `json:"options,omitempty"`
	// Force re-adds an item that violates the session's dietary
	// restrictions; the first attempt only warns.
	Force bool `json:"force,omitempty"`
}

type UpdateQuantityRequest struct {
	ItemName    string `json:"item_name" validate:"required"`
	NewQuantity int    `json:"new_quantity"`
}

type AddDishRequest struct {
	DishName string `json:"dish_name" validate:"required"`
}

type SetBudgetRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type SetRestrictionsRequest struct {
	// Comma-separated, e.g. "vegan, gluten-free".
	Restrictions string `json:"restrictions" validate:"required"`
}

// CartResponse is the state snapshot returned by every cart mutation and by
// the view endpoint; the same shape is broadcast to display collaborators.
type CartResponse struct {
	Message             string            `json:"-"`
	SessionId           string            `json:"session_id"`
	Lines               []entity.CartLine `json:"lines"`
	Total               float64           `json:"total"`
	Currency            string            `json:"currency"`
	Budget              *float64          `json:"budget,omitempty"`
	BudgetRemaining     *float64          `json:"budget_remaining,omitempty"`
	DietaryRestrictions []string          `json:"dietary_restrictions,omitempty"`
	Warning             string            `json:"warning,omitempty"`
}
