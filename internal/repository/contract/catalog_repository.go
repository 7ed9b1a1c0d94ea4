package contract

import "voicemart-be/internal/entity"

// ICatalogRepository serves the read-only product catalog. Implementations
// load once at construction; All preserves file order, which is also the
// search result order.
type ICatalogRepository interface {
	All() []*entity.CatalogItem
	FindById(id string) *entity.CatalogItem
}
