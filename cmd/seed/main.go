package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"voicemart-be/internal/entity"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		color.Red("Failed to create data dir: %v", err)
		os.Exit(1)
	}

	color.Cyan("🚀 Seeding VoiceMart data files into %s\n", dataDir)

	seedFile(filepath.Join(dataDir, "catalog.json"), catalogItems())
	seedFile(filepath.Join(dataDir, "order_history.json"), &entity.OrderHistory{
		Orders:  []*entity.Order{},
		Recipes: recipes(),
	})
	seedFile(filepath.Join(dataDir, "fraud_cases.json"), fraudCases())

	color.Green("Seeding completed!")
}

// seedFile writes v as indented JSON, skipping files that already exist so
// reseeding never clobbers accumulated orders or processed cases.
func seedFile(path string, v interface{}) {
	if _, err := os.Stat(path); err == nil {
		color.Yellow("%s already exists, skipping...", path)
		return
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		color.Red("Failed to marshal %s: %v", path, err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		color.Red("Failed to write %s: %v", path, err)
		os.Exit(1)
	}
	color.Green("Created %s", path)
}

func catalogItems() []entity.CatalogItem {
	return []entity.CatalogItem{
		{Id: "prod-001", Name: "Whole Wheat Bread", Category: "bakery", Brand: "Baker's Best", Size: "500g", Price: 3.50, Currency: "USD", InStock: true, Tags: []string{"vegetarian", "vegan"}, Description: "Freshly baked whole wheat loaf"},
		{Id: "prod-002", Name: "Sourdough Bread", Category: "bakery", Brand: "Baker's Best", Size: "600g", Price: 4.75, Currency: "USD", InStock: true, Tags: []string{"vegetarian", "vegan"}, Description: "Slow-fermented sourdough loaf"},
		{Id: "prod-003", Name: "Whole Milk", Category: "dairy", Brand: "Green Valley", Size: "1L", Price: 2.20, Currency: "USD", InStock: true, Tags: []string{"vegetarian"}, Description: "Fresh whole milk"},
		{Id: "prod-004", Name: "Oat Milk", Category: "dairy", Subcategory: "plant-based", Brand: "Oatly Fields", Size: "1L", Price: 3.10, Currency: "USD", InStock: true, Tags: []string{"vegetarian", "vegan", "lactose-free"}, Description: "Creamy oat drink"},
		{Id: "prod-005", Name: "Cheddar Cheese", Category: "dairy", Brand: "Green Valley", Size: "250g", Price: 4.40, Currency: "USD", InStock: true, Tags: []string{"vegetarian"}, Description: "Mature cheddar block"},
		{Id: "prod-006", Name: "Free Range Eggs", Category: "dairy", Brand: "Happy Hen", Size: "12 pack", Price: 3.90, Currency: "USD", InStock: true, Tags: []string{"vegetarian"}, Description: "Dozen free range eggs"},
		{Id: "prod-007", Name: "Spaghetti", Category: "pantry", Subcategory: "pasta", Brand: "Casa Nostra", Size: "500g", Price: 1.80, Currency: "USD", InStock: true, Tags: []string{"vegetarian", "vegan"}, Description: "Durum wheat spaghetti"},
		{Id: "prod-008", Name: "Tomato Sauce", Category: "pantry", Brand: "Casa Nostra", Size: "400g", Price: 2.30, Currency: "USD", InStock: true, Tags: []string{"vegetarian", "vegan", "gluten-free"}, Description: "Classic basil tomato sauce"},
		{Id: "prod-009", Name: "Ground Beef", Category: "meat", Brand: "Prairie Farms", Size: "500g", Price: 6.50, Currency: "USD", InStock: true, Description: "Lean ground beef"},
		{Id: "prod-010", Name: "Chicken Breast", Category: "meat", Brand: "Prairie Farms", Size: "400g", Price: 5.80, Currency: "USD", InStock: true, Tags: []string{"gluten-free"}, Description: "Skinless chicken breast fillets"},
		{Id: "prod-011", Name: "Atlantic Salmon", Category: "seafood", Brand: "North Coast", Size: "300g", Price: 9.90, Currency: "USD", InStock: false, Tags: []string{"gluten-free"}, Description: "Fresh salmon fillet"},
		{Id: "prod-012", Name: "Bananas", Category: "produce", Brand: "Tropico", Size: "1kg", Price: 1.60, Currency: "USD", InStock: true, Tags: []string{"vegetarian", "vegan", "gluten-free"}, Description: "Ripe bananas"},
		{Id: "prod-013", Name: "Baby Spinach", Category: "produce", Brand: "Green Valley", Size: "200g", Price: 2.50, Currency: "USD", InStock: true, Tags: []string{"vegetarian", "vegan", "gluten-free"}, Description: "Washed baby spinach leaves"},
		{Id: "prod-014", Name: "Roma Tomatoes", Category: "produce", Brand: "Green Valley", Size: "500g", Price: 2.10, Currency: "USD", InStock: true, Tags: []string{"vegetarian", "vegan", "gluten-free"}, Description: "Vine-ripened roma tomatoes"},
		{Id: "prod-015", Name: "Yellow Onions", Category: "produce", Brand: "Green Valley", Size: "1kg", Price: 1.40, Currency: "USD", InStock: true, Tags: []string{"vegetarian", "vegan", "gluten-free"}, Description: "Yellow cooking onions"},
		{Id: "prod-016", Name: "Garlic", Category: "produce", Brand: "Green Valley", Size: "3 bulbs", Price: 1.20, Currency: "USD", InStock: true, Tags: []string{"vegetarian", "vegan", "gluten-free"}, Description: "Fresh garlic bulbs"},
		{Id: "prod-017", Name: "Olive Oil", Category: "pantry", Brand: "Casa Nostra", Size: "750ml", Price: 8.90, Currency: "USD", InStock: true, Tags: []string{"vegetarian", "vegan", "gluten-free"}, Description: "Extra virgin olive oil"},
		{Id: "prod-018", Name: "Basmati Rice", Category: "pantry", Brand: "Golden Grain", Size: "1kg", Price: 3.60, Currency: "USD", InStock: true, Tags: []string{"vegetarian", "vegan", "gluten-free"}, Description: "Long grain basmati rice"},
		{Id: "prod-019", Name: "Peanut Butter", Category: "pantry", Brand: "Nutty Co", Size: "340g", Price: 3.80, Currency: "USD", InStock: true, Tags: []string{"vegetarian", "vegan", "gluten-free", "contains-nuts"}, Description: "Smooth peanut butter"},
		{Id: "prod-020", Name: "Dark Chocolate", Category: "snacks", Brand: "Cocoa Works", Size: "100g", Price: 2.90, Currency: "USD", InStock: true, Tags: []string{"vegetarian", "gluten-free"}, Description: "70% dark chocolate bar"},
		{Id: "prod-021", Name: "Cotton T-Shirt", Category: "clothing", Brand: "Plainwear", Size: "unisex", Price: 12.00, Currency: "USD", InStock: true, Description: "Basic crew neck tee", Attributes: map[string][]string{
			"color": {"black", "white", "navy"},
			"size":  {"S", "M", "L", "XL"},
		}},
		{Id: "prod-022", Name: "Running Socks", Category: "clothing", Brand: "Plainwear", Size: "3 pack", Price: 7.50, Currency: "USD", InStock: true, Description: "Cushioned running socks", Attributes: map[string][]string{
			"size": {"S", "M", "L"},
		}},
		{Id: "prod-023", Name: "Sparkling Water", Category: "beverages", Brand: "Clearspring", Size: "6x330ml", Price: 4.20, Currency: "USD", InStock: true, Tags: []string{"vegetarian", "vegan", "gluten-free"}, Description: "Lightly carbonated spring water"},
		{Id: "prod-024", Name: "Ground Coffee", Category: "beverages", Brand: "Morning Roast", Size: "250g", Price: 6.80, Currency: "USD", InStock: true, Tags: []string{"vegetarian", "vegan", "gluten-free"}, Description: "Medium roast ground coffee"},
	}
}

func recipes() map[string][]string {
	return map[string][]string{
		"spaghetti bolognese": {"prod-007", "prod-008", "prod-009", "prod-015", "prod-016", "prod-017"},
		"pasta marinara":      {"prod-007", "prod-008", "prod-016", "prod-017"},
		"chicken and rice":    {"prod-010", "prod-018", "prod-015", "prod-016", "prod-017"},
		"spinach omelette":    {"prod-006", "prod-013", "prod-005", "prod-017"},
		"peanut butter toast": {"prod-001", "prod-019", "prod-012"},
	}
}

func fraudCases() []entity.FraudCase {
	return []entity.FraudCase{
		{
			Id:                  "case-001",
			UserName:            "John Smith",
			SecurityIdentifier:  "12345",
			CardEnding:          "4832",
			TransactionAmount:   899.99,
			TransactionCurrency: "USD",
			TransactionName:     "TechWorld Electronics",
			TransactionCategory: "electronics",
			TransactionLocation: "Miami, FL",
			TransactionSource:   "online",
			TransactionTime:     "2026-08-28T03:14:00",
			Status:              entity.CaseStatusPendingReview,
		},
		{
			Id:                  "case-002",
			UserName:            "Maria Garcia",
			SecurityIdentifier:  "67890",
			CardEnding:          "1157",
			TransactionAmount:   245.50,
			TransactionCurrency: "USD",
			TransactionName:     "Luxe Boutique",
			TransactionCategory: "retail",
			TransactionLocation: "Paris, France",
			TransactionSource:   "in-store",
			TransactionTime:     "2026-08-29T16:42:00",
			Status:              entity.CaseStatusPendingReview,
		},
		{
			Id:                  "case-003",
			UserName:            "David Chen",
			SecurityIdentifier:  "24680",
			CardEnding:          "9023",
			TransactionAmount:   1520.00,
			TransactionCurrency: "USD",
			TransactionName:     "Skyline Travel Agency",
			TransactionCategory: "travel",
			TransactionLocation: "Bangkok, Thailand",
			TransactionSource:   "online",
			TransactionTime:     "2026-08-30T09:05:00",
			Status:              entity.CaseStatusPendingReview,
		},
	}
}
