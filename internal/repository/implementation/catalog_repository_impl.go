package implementation

import (
	"os"

	"voicemart-be/internal/entity"
	"voicemart-be/internal/pkg/logger"
	"voicemart-be/internal/repository/contract"
)

type catalogRepository struct {
	items []*entity.CatalogItem
}

// NewCatalogRepository loads catalog.json once. A missing or unreadable file
// yields an empty catalog rather than a startup failure; every lookup then
// reports "not found", which the conversation layer handles.
func NewCatalogRepository(filePath string, log logger.ILogger) contract.ICatalogRepository {
	repo := &catalogRepository{items: []*entity.CatalogItem{}}

	if _, err := os.Stat(filePath); err != nil {
		log.Error("CatalogRepository", "Catalog file not found", map[string]interface{}{
			"path": filePath,
		})
		return repo
	}

	if err := readJSON(filePath, &repo.items); err != nil {
		log.Error("CatalogRepository", "Error loading catalog", map[string]interface{}{
			"path":  filePath,
			"error": err.Error(),
		})
		repo.items = []*entity.CatalogItem{}
		return repo
	}

	log.Info("CatalogRepository", "Catalog loaded", map[string]interface{}{
		"items": len(repo.items),
	})
	return repo
}

func (r *catalogRepository) All() []*entity.CatalogItem {
	return r.items
}

func (r *catalogRepository) FindById(id string) *entity.CatalogItem {
	for _, item := range r.items {
		if item.Id == id {
			return item
		}
	}
	return nil
}
