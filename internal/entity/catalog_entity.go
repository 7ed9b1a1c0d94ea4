package entity

// CatalogItem is a single purchasable product. The catalog is loaded once at
// startup and treated as immutable for the lifetime of the process; the JSON
// field names mirror catalog.json and must not change.
type CatalogItem struct {
	Id          string            `json:"id"`
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	Subcategory string            `json:"subcategory,omitempty"`
	Brand       string            `json:"brand"`
	Size        string            `json:"size"`
	Price       float64           `json:"price"`
	Currency    string            `json:"currency,omitempty"`
	InStock     bool              `json:"in_stock"`
	Tags        []string          `json:"tags,omitempty"`
	Description string            `json:"description,omitempty"`

	// Attributes maps an option name (e.g. "color") to the set of values the
	// product can be ordered in.
	Attributes map[string][]string `json:"attributes,omitempty"`
}

// AllowsOption reports whether value is an allowed choice for the named
// option. Items without the option reject every value.
func (i *CatalogItem) AllowsOption(name, value string) bool {
	allowed, ok := i.Attributes[name]
	if !ok {
		return false
	}
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}

// HasTag reports whether the item carries the given dietary/feature tag.
func (i *CatalogItem) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
