package dto

// SearchItemsRequest comes from query parameters; every filter is optional
// and filters are conjunctive.
type SearchItemsRequest struct {
	Term     string  `query:"q"`
	Category string  `query:"category"`
	MaxPrice float64 `query:"max_price"`
}

type ItemSummary struct {
	Id          string              `json:"id"`
	Name        string              `json:"name"`
	Category    string              `json:"category"`
	Subcategory string              `json:"subcategory,omitempty"`
	Brand       string              `json:"brand"`
	Size        string              `json:"size"`
	Price       float64             `json:"price"`
	Currency    string              `json:"currency,omitempty"`
	InStock     bool                `json:"in_stock"`
	Tags        []string            `json:"tags,omitempty"`
	Description string              `json:"description,omitempty"`
	Attributes  map[string][]string `json:"attributes,omitempty"`
}

type SearchItemsResponse struct {
	Message      string        `json:"-"`
	TotalMatches int           `json:"total_matches"`
	Items        []ItemSummary `json:"items"`
}

type ShowItemResponse struct {
	Message string      `json:"-"`
	Item    ItemSummary `json:"item"`
}
