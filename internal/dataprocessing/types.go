package dataprocessing

import "time"

// Product is one row of the products source.
type Product struct {
	ID       string
	Name     string
	Price    float64
	Quantity int
}

// LineItem is one row of the items source: a quantity of a product sold in one
// transaction. Not retained after revenue aggregation.
type LineItem struct {
	ProductID string
	Quantity  int
}

// SaleRecord is one row of the sales source. Not retained after period aggregation.
type SaleRecord struct {
	Date   time.Time
	Amount float64
}

// Inventory is the product mapping keyed by product ID. It remembers insertion
// order so that maximum searches can resolve ties by first-encountered order
// instead of map iteration order.
type Inventory struct {
	byID  map[string]Product
	order []string
}

// NewInventory returns an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{byID: make(map[string]Product)}
}

// Add inserts or replaces a product. A replaced product keeps its original
// position in the encounter order.
func (inv *Inventory) Add(p Product) {
	if _, exists := inv.byID[p.ID]; !exists {
		inv.order = append(inv.order, p.ID)
	}
	inv.byID[p.ID] = p
}

// Get returns the product with the given ID.
func (inv *Inventory) Get(id string) (Product, bool) {
	p, ok := inv.byID[id]
	return p, ok
}

// Len returns the number of products.
func (inv *Inventory) Len() int {
	return len(inv.order)
}

// Products returns all products in encounter order.
func (inv *Inventory) Products() []Product {
	products := make([]Product, 0, len(inv.order))
	for _, id := range inv.order {
		products = append(products, inv.byID[id])
	}
	return products
}

// Summary holds the four figures of the management report plus the period they
// were computed for.
type Summary struct {
	MostExpensiveName  string
	MostExpensivePrice float64
	InventoryValue     float64
	TopRevenueName     string
	TopRevenue         float64
	PeriodSales        float64
	Month              int
	Year               int
}
