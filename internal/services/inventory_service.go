// internal/services/inventory_service.go
package services

import (
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/storefront/internal/models"
	"github.com/javajoker/storefront/internal/utils"
)

type InventoryService struct {
	store *Store
}

type CreateProductRequest struct {
	Kind         string    `json:"kind" validate:"required,product_kind" toml:"kind"`
	ID           string    `json:"product_id,omitempty" toml:"id"`
	Name         string    `json:"name" validate:"required" toml:"name"`
	Price        float64   `json:"price" validate:"gt=0,finite" toml:"price"`
	Quantity     *int      `json:"quantity,omitempty" validate:"omitempty,min=0" toml:"quantity"`
	InitialStock *int      `json:"initial_stock,omitempty" validate:"omitempty,min=0" toml:"initial_stock"`
	DownloadLink string    `json:"download_link,omitempty" toml:"download_link"`
	FileSizeMB   float64   `json:"file_size_mb,omitempty" toml:"file_size_mb"`
	WeightKg     float64   `json:"weight_kg,omitempty" toml:"weight_kg"`
	Dimensions   []float64 `json:"shipping_dimensions_cm,omitempty" toml:"shipping_dimensions_cm"`
}

type ProductSearchParams struct {
	utils.PaginationParams
	CaseSensitive bool     `json:"case_sensitive,omitempty"`
	PriceMin      *float64 `json:"price_min,omitempty"`
	PriceMax      *float64 `json:"price_max,omitempty"`
}

type AdjustStockRequest struct {
	Delta int `json:"delta"`
}

type DiscountRequest struct {
	Percent float64 `json:"percent" validate:"gte=0,lte=100"`
}

type DownloadLinkRequest struct {
	BaseURL string `json:"base_url" validate:"required"`
}

type ShippingQuote struct {
	ProductID        string  `json:"product_id"`
	RatePerKg        float64 `json:"rate_per_kg"`
	VolumetricFactor int     `json:"volumetric_factor"`
	Cost             float64 `json:"cost"`
}

type InventoryValuation struct {
	ProductCount int     `json:"product_count"`
	TotalValue   float64 `json:"total_value"`
}

var productSortFields = []string{"name", "price", "quantity"}

func NewInventoryService(store *Store) *InventoryService {
	return &InventoryService{store: store}
}

func (s *InventoryService) CreateProduct(req *CreateProductRequest) (models.Details, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidArgument, utils.ValidationMessage(err))
	}

	product, err := buildProduct(req)
	if err != nil {
		return nil, err
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if req.InitialStock != nil {
		err = s.store.inventory.AddProductWithStock(product, *req.InitialStock)
	} else {
		err = s.store.inventory.AddProduct(product)
	}
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"product_id": product.ID(),
		"type":       product.Type(),
		"quantity":   product.Quantity(),
	}).Info("Product added to inventory")

	return product.Details(), nil
}

func buildProduct(req *CreateProductRequest) (models.Product, error) {
	base := models.ProductParams{
		ID:       req.ID,
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
	}

	switch req.Kind {
	case "digital":
		return models.NewDigitalProduct(models.DigitalProductParams{
			ProductParams: base,
			DownloadLink:  req.DownloadLink,
			FileSizeMB:    req.FileSizeMB,
		})
	case "physical":
		if len(req.Dimensions) != 3 {
			return nil, fmt.Errorf("%w: shipping_dimensions_cm must have exactly 3 values", models.ErrInvalidArgument)
		}
		return models.NewPhysicalProduct(models.PhysicalProductParams{
			ProductParams: base,
			WeightKg:      req.WeightKg,
			Dimensions:    models.Dimensions{req.Dimensions[0], req.Dimensions[1], req.Dimensions[2]},
		})
	default:
		return models.NewProduct(base)
	}
}

func (s *InventoryService) GetProduct(productID string) (models.Details, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	product, err := s.store.inventory.GetProduct(productID)
	if err != nil {
		return nil, err
	}
	return product.Details(), nil
}

// ListProducts filters by name and price range, sorts and paginates. It
// returns the page together with the number of matches before paging.
func (s *InventoryService) ListProducts(params ProductSearchParams) ([]models.Details, int64, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	products := s.store.inventory.FindProductsByName(params.Search, params.CaseSensitive)

	if params.PriceMin != nil || params.PriceMax != nil {
		minPrice, maxPrice := 0.0, math.Inf(1)
		if params.PriceMin != nil {
			minPrice = *params.PriceMin
		}
		if params.PriceMax != nil {
			maxPrice = *params.PriceMax
		}

		inRange, err := s.store.inventory.ProductsInPriceRange(minPrice, maxPrice)
		if err != nil {
			return nil, 0, err
		}
		products = intersect(products, inRange)
	}

	sortProducts(products, utils.SortField(params.PaginationParams, productSortFields), params.Order == "desc")

	page := utils.Paginate(products, params.PaginationParams)
	details := make([]models.Details, len(page))
	for i, product := range page {
		details[i] = product.Details()
	}
	return details, int64(len(products)), nil
}

func intersect(products, allowed []models.Product) []models.Product {
	ids := make(map[string]bool, len(allowed))
	for _, p := range allowed {
		ids[p.ID()] = true
	}

	filtered := products[:0:0]
	for _, p := range products {
		if ids[p.ID()] {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func sortProducts(products []models.Product, field string, descending bool) {
	var less func(a, b models.Product) bool
	switch field {
	case "name":
		less = func(a, b models.Product) bool { return a.Name() < b.Name() }
	case "price":
		less = func(a, b models.Product) bool { return a.Price() < b.Price() }
	case "quantity":
		less = func(a, b models.Product) bool { return a.Quantity() < b.Quantity() }
	default:
		if descending {
			for i, j := 0, len(products)-1; i < j; i, j = i+1, j-1 {
				products[i], products[j] = products[j], products[i]
			}
		}
		return
	}

	sort.SliceStable(products, func(i, j int) bool {
		if descending {
			return less(products[j], products[i])
		}
		return less(products[i], products[j])
	})
}

func (s *InventoryService) RemoveProduct(productID string) (models.Details, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	product, err := s.store.inventory.RemoveProduct(productID)
	if err != nil {
		return nil, err
	}

	logrus.WithField("product_id", productID).Info("Product removed from inventory")
	return product.Details(), nil
}

// AdjustStock applies delta to a product's stock and returns the new level.
func (s *InventoryService) AdjustStock(productID string, delta int) (int, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if err := s.store.inventory.UpdateStock(productID, delta); err != nil {
		return 0, err
	}
	level, err := s.store.inventory.StockLevel(productID)
	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"product_id": productID,
		"delta":      delta,
		"stock":      level,
	}).Info("Stock adjusted")
	return level, nil
}

func (s *InventoryService) StockLevel(productID string) (int, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	return s.store.inventory.StockLevel(productID)
}

func (s *InventoryService) ApplyDiscount(productID string, percent float64) (models.Details, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	product, err := s.store.inventory.GetProduct(productID)
	if err != nil {
		return nil, err
	}
	if err := product.ApplyDiscount(percent); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"product_id": productID,
		"percent":    percent,
		"price":      product.Price(),
	}).Info("Discount applied")
	return product.Details(), nil
}

func (s *InventoryService) RegenerateDownloadLink(productID, baseURL string) (string, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	product, err := s.store.inventory.GetProduct(productID)
	if err != nil {
		return "", err
	}
	digital, ok := product.(*models.DigitalProduct)
	if !ok {
		return "", fmt.Errorf("%w: product %s is not a digital product", models.ErrInvalidArgument, productID)
	}

	return digital.GenerateNewDownloadLink(baseURL)
}

func (s *InventoryService) QuoteShipping(productID string, ratePerKg float64, volumetricFactor int) (*ShippingQuote, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	product, err := s.store.inventory.GetProduct(productID)
	if err != nil {
		return nil, err
	}
	physical, ok := product.(*models.PhysicalProduct)
	if !ok {
		return nil, fmt.Errorf("%w: product %s is not a physical product", models.ErrInvalidArgument, productID)
	}

	cost, err := physical.CalculateShippingCost(ratePerKg, volumetricFactor)
	if err != nil {
		return nil, err
	}

	return &ShippingQuote{
		ProductID:        productID,
		RatePerKg:        ratePerKg,
		VolumetricFactor: volumetricFactor,
		Cost:             cost,
	}, nil
}

func (s *InventoryService) Valuation() InventoryValuation {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	return InventoryValuation{
		ProductCount: s.store.inventory.Len(),
		TotalValue:   s.store.inventory.TotalValue(),
	}
}
