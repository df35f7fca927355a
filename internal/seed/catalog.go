// internal/seed/catalog.go
package seed

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/storefront/internal/services"
)

// Catalog is the on-disk seed format:
//
//	[[products]]
//	kind = "physical"
//	name = "Desk Lamp"
//	price = 45.5
//	initial_stock = 5
//	weight_kg = 0.5
//	shipping_dimensions_cm = [60, 40, 20]
type Catalog struct {
	Products []services.CreateProductRequest `toml:"products"`
}

func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return &catalog, nil
}

// Apply creates every catalog entry in order and stops at the first failure.
// It returns the number of products created.
func Apply(catalog *Catalog, inventoryService *services.InventoryService) (int, error) {
	for i := range catalog.Products {
		entry := &catalog.Products[i]
		product, err := inventoryService.CreateProduct(entry)
		if err != nil {
			return i, fmt.Errorf("catalog entry %d (%s): %w", i, entry.Name, err)
		}
		logrus.WithFields(logrus.Fields{
			"product_id": product["product_id"],
			"kind":       entry.Kind,
		}).Debug("Seeded product")
	}

	logrus.WithField("count", len(catalog.Products)).Info("Catalog seeded")
	return len(catalog.Products), nil
}
