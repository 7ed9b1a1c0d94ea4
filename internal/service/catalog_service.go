package service

import (
	"fmt"
	"strings"

	"voicemart-be/internal/dto"
	"voicemart-be/internal/entity"
	"voicemart-be/internal/pkg/apperror"
	"voicemart-be/internal/repository/contract"
)

// searchResultLimit caps how many matches are spoken back in one turn.
const searchResultLimit = 5

type ICatalogService interface {
	FindById(id string) *entity.CatalogItem
	// FindByName tries an exact case-insensitive match first, then falls back
	// to the first substring match in catalog order. Nil means not found.
	FindByName(name string) *entity.CatalogItem
	Search(req *dto.SearchItemsRequest) (*dto.SearchItemsResponse, error)
	Show(id string) (*dto.ShowItemResponse, error)
}

type catalogService struct {
	catalogRepo contract.ICatalogRepository
}

func NewCatalogService(catalogRepo contract.ICatalogRepository) ICatalogService {
	return &catalogService{catalogRepo: catalogRepo}
}

func (s *catalogService) FindById(id string) *entity.CatalogItem {
	return s.catalogRepo.FindById(id)
}

func (s *catalogService) FindByName(name string) *entity.CatalogItem {
	query := strings.ToLower(name)

	for _, item := range s.catalogRepo.All() {
		if strings.ToLower(item.Name) == query {
			return item
		}
	}
	for _, item := range s.catalogRepo.All() {
		if strings.Contains(strings.ToLower(item.Name), query) {
			return item
		}
	}
	return nil
}

// Search filters on term, category and max price conjunctively. The term
// matches name, category, subcategory or any tag as a case-insensitive
// substring. Result order is catalog load order, not relevance.
func (s *catalogService) Search(req *dto.SearchItemsRequest) (*dto.SearchItemsResponse, error) {
	term := strings.ToLower(req.Term)
	category := strings.ToLower(req.Category)

	var matches []*entity.CatalogItem
	for _, item := range s.catalogRepo.All() {
		if category != "" && strings.ToLower(item.Category) != category {
			continue
		}
		if req.MaxPrice > 0 && item.Price > req.MaxPrice {
			continue
		}
		if term != "" && !matchesTerm(item, term) {
			continue
		}
		matches = append(matches, item)
	}

	if len(matches) == 0 {
		label := req.Term
		if label == "" {
			label = req.Category
		}
		return &dto.SearchItemsResponse{
			Message: fmt.Sprintf("I couldn't find any items matching '%s'. Try searching for categories like 'bread', 'milk', 'snacks', or 'pizza'.", label),
			Items:   []dto.ItemSummary{},
		}, nil
	}

	shown := matches
	if len(shown) > searchResultLimit {
		shown = shown[:searchResultLimit]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I found %d items", len(matches))
	if len(matches) > searchResultLimit {
		b.WriteString(" (showing top 5)")
	}
	if req.Term != "" {
		fmt.Fprintf(&b, " matching '%s'", req.Term)
	}
	b.WriteString(":\n")
	for _, item := range shown {
		fmt.Fprintf(&b, "- %s (%s, %s) - $%.2f\n", item.Name, item.Brand, item.Size, item.Price)
	}

	res := &dto.SearchItemsResponse{
		Message:      b.String(),
		TotalMatches: len(matches),
		Items:        make([]dto.ItemSummary, 0, len(shown)),
	}
	for _, item := range shown {
		res.Items = append(res.Items, toItemSummary(item))
	}
	return res, nil
}

func (s *catalogService) Show(id string) (*dto.ShowItemResponse, error) {
	item := s.catalogRepo.FindById(id)
	if item == nil {
		return nil, apperror.NotFound("I couldn't find a product with ID '%s'.", id)
	}
	return &dto.ShowItemResponse{
		Message: fmt.Sprintf("%s (%s, %s) - $%.2f", item.Name, item.Brand, item.Size, item.Price),
		Item:    toItemSummary(item),
	}, nil
}

func matchesTerm(item *entity.CatalogItem, term string) bool {
	if strings.Contains(strings.ToLower(item.Name), term) ||
		strings.Contains(strings.ToLower(item.Category), term) ||
		strings.Contains(strings.ToLower(item.Subcategory), term) ||
		strings.Contains(strings.ToLower(item.Description), term) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func toItemSummary(item *entity.CatalogItem) dto.ItemSummary {
	return dto.ItemSummary{
		Id:          item.Id,
		Name:        item.Name,
		Category:    item.Category,
		Subcategory: item.Subcategory,
		Brand:       item.Brand,
		Size:        item.Size,
		Price:       item.Price,
		Currency:    item.Currency,
		InStock:     item.InStock,
		Tags:        item.Tags,
		Description: item.Description,
		Attributes:  item.Attributes,
	}
}
