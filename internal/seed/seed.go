// Package seed holds the demo records used by the reset operation.
package seed

import "inventory-manager/internal/models"

// Items returns a fresh copy of the demo inventory. IDs and timestamps are
// assigned by the service when the seed is applied.
func Items() []models.Item {
	return []models.Item{
		{SKU: "CB-100", Name: "Coffee Beans", Quantity: 3, Price: 12.99},
		{SKU: "TEA-021", Name: "Earl Grey Tea", Quantity: 12, Price: 6.50},
		{SKU: "MUG-001", Name: "Ceramic Mug", Quantity: 25, Price: 8.00},
		{SKU: "FLT-V60", Name: "Paper Filters", Quantity: 140, Price: 4.25},
		{SKU: "GRD-STD", Name: "Burr Grinder", Quantity: 2, Price: 89.90},
	}
}
