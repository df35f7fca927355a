// internal/models/inventory.go
package models

import (
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Inventory owns a set of products keyed by product id. Listing order is
// insertion order.
type Inventory struct {
	products map[string]Product
	ids      []string
}

func NewInventory() *Inventory {
	return &Inventory{
		products: make(map[string]Product),
	}
}

// AddProduct stores product with its own quantity as the stock level.
func (inv *Inventory) AddProduct(product Product) error {
	return inv.add(product, nil)
}

// AddProductWithStock stores product after overwriting its quantity with
// initialStock.
func (inv *Inventory) AddProductWithStock(product Product, initialStock int) error {
	return inv.add(product, &initialStock)
}

func (inv *Inventory) add(product Product, initialStock *int) error {
	if product == nil {
		return invalidArgument("item to add must be a product")
	}
	if _, exists := inv.products[product.ID()]; exists {
		return newError(ErrDuplicateProduct, "product with ID %s already exists in inventory", product.ID())
	}
	if initialStock != nil {
		if *initialStock < 0 {
			return invalidArgument("initial stock must be a non-negative integer, got %d", *initialStock)
		}
		product.base().quantity = *initialStock
	}

	inv.products[product.ID()] = product
	inv.ids = append(inv.ids, product.ID())
	return nil
}

// RemoveProduct detaches the product from the inventory and hands it back.
func (inv *Inventory) RemoveProduct(productID string) (Product, error) {
	product, err := inv.GetProduct(productID)
	if err != nil {
		return nil, err
	}

	delete(inv.products, productID)
	for i, id := range inv.ids {
		if id == productID {
			inv.ids = append(inv.ids[:i], inv.ids[i+1:]...)
			break
		}
	}
	return product, nil
}

func (inv *Inventory) GetProduct(productID string) (Product, error) {
	product, exists := inv.products[productID]
	if !exists {
		return nil, notFound("product with ID %s not found in inventory", productID)
	}
	return product, nil
}

// UpdateStock applies delta to a held product. Exhausted stock is reported as
// ErrOutOfStock rather than the product-level ErrInvalidState.
func (inv *Inventory) UpdateStock(productID string, delta int) error {
	product, err := inv.GetProduct(productID)
	if err != nil {
		return err
	}

	if err := product.UpdateQuantity(delta); err != nil {
		if errors.Is(err, ErrInvalidState) {
			return newError(ErrOutOfStock, "stock update for %s failed: %s", productID, err.Error())
		}
		return err
	}
	return nil
}

func (inv *Inventory) StockLevel(productID string) (int, error) {
	product, err := inv.GetProduct(productID)
	if err != nil {
		return 0, err
	}
	return product.Quantity(), nil
}

// TotalValue sums price times quantity over every held product.
func (inv *Inventory) TotalValue() float64 {
	total := decimal.Zero
	for _, id := range inv.ids {
		product := inv.products[id]
		total = total.Add(lineTotal(product.Price(), product.Quantity()))
	}
	return total.Round(2).InexactFloat64()
}

// FindProductsByName returns products whose name contains term.
func (inv *Inventory) FindProductsByName(term string, caseSensitive bool) []Product {
	if !caseSensitive {
		term = strings.ToLower(term)
	}

	results := []Product{}
	for _, id := range inv.ids {
		product := inv.products[id]
		name := product.Name()
		if !caseSensitive {
			name = strings.ToLower(name)
		}
		if strings.Contains(name, term) {
			results = append(results, product)
		}
	}
	return results
}

// ProductsInPriceRange filters on min <= price <= max. Pass math.Inf(1) for
// an open upper bound.
func (inv *Inventory) ProductsInPriceRange(minPrice, maxPrice float64) ([]Product, error) {
	if math.IsNaN(minPrice) || minPrice < 0 {
		return nil, invalidArgument("minimum price must be a non-negative number")
	}
	if math.IsNaN(maxPrice) || maxPrice < minPrice {
		return nil, invalidArgument("maximum price must be a number greater than or equal to minimum price")
	}

	results := []Product{}
	for _, id := range inv.ids {
		product := inv.products[id]
		if product.Price() >= minPrice && product.Price() <= maxPrice {
			results = append(results, product)
		}
	}
	return results, nil
}

// Products lists every held product in insertion order.
func (inv *Inventory) Products() []Product {
	products := make([]Product, 0, len(inv.ids))
	for _, id := range inv.ids {
		products = append(products, inv.products[id])
	}
	return products
}

func (inv *Inventory) Len() int {
	return len(inv.ids)
}
