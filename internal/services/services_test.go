// internal/services/services_test.go
package services

import (
	"fmt"
	"io"
	"math"
	"os"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/javajoker/storefront/internal/models"
	"github.com/javajoker/storefront/internal/utils"
)

func TestMain(m *testing.M) {
	logrus.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }

type StoreTestSuite struct {
	suite.Suite
	inventoryService *InventoryService
	orderService     *OrderService
}

func (suite *StoreTestSuite) SetupTest() {
	store := NewStore()
	suite.inventoryService = NewInventoryService(store)
	suite.orderService = NewOrderService(store)

	requests := []*CreateProductRequest{
		{Kind: "generic", ID: "book", Name: "Go Book", Price: 20, Quantity: intPtr(10)},
		{Kind: "digital", ID: "ebook", Name: "Go E-Book", Price: 9.99, DownloadLink: "https://cdn.example.com/ebook", FileSizeMB: 3},
		{Kind: "physical", ID: "lamp", Name: "Desk Lamp", Price: 45.5, InitialStock: intPtr(5), WeightKg: 0.5, Dimensions: []float64{60, 40, 20}},
	}
	for _, req := range requests {
		_, err := suite.inventoryService.CreateProduct(req)
		suite.Require().NoError(err)
	}
}

func (suite *StoreTestSuite) TestCreateProductDetails() {
	details, err := suite.inventoryService.GetProduct("lamp")
	suite.Require().NoError(err)
	suite.Equal("PhysicalProduct", details["type"])
	suite.Equal(5, details["quantity"])

	details, err = suite.inventoryService.GetProduct("ebook")
	suite.Require().NoError(err)
	suite.Equal(1, details["quantity"])
}

func (suite *StoreTestSuite) TestCreateProductValidation() {
	_, err := suite.inventoryService.CreateProduct(&CreateProductRequest{Kind: "vinyl", Name: "X", Price: 1})
	suite.ErrorIs(err, models.ErrInvalidArgument)

	_, err = suite.inventoryService.CreateProduct(&CreateProductRequest{Kind: "physical", Name: "Box", Price: 1, WeightKg: 1, Dimensions: []float64{1, 2}})
	suite.ErrorIs(err, models.ErrInvalidArgument)

	_, err = suite.inventoryService.CreateProduct(&CreateProductRequest{Kind: "digital", Name: "File", Price: 1, DownloadLink: "file:///tmp", FileSizeMB: 1})
	suite.ErrorIs(err, models.ErrInvalidArgument)

	_, err = suite.inventoryService.CreateProduct(&CreateProductRequest{Kind: "generic", Name: "Inf", Price: math.Inf(1)})
	suite.ErrorIs(err, models.ErrInvalidArgument)

	_, err = suite.inventoryService.CreateProduct(&CreateProductRequest{Kind: "physical", Name: "Box", Price: 1, WeightKg: math.Inf(1), Dimensions: []float64{1, 2, 3}})
	suite.ErrorIs(err, models.ErrInvalidArgument)

	_, err = suite.inventoryService.CreateProduct(&CreateProductRequest{Kind: "generic", ID: "book", Name: "Dup", Price: 1})
	suite.ErrorIs(err, models.ErrConflict)
}

func (suite *StoreTestSuite) TestListProducts() {
	params := ProductSearchParams{PaginationParams: utils.DefaultPaginationParams()}

	all, total, err := suite.inventoryService.ListProducts(params)
	suite.Require().NoError(err)
	suite.EqualValues(3, total)
	suite.Equal("book", all[0]["product_id"])

	params.Search = "go"
	found, total, err := suite.inventoryService.ListProducts(params)
	suite.Require().NoError(err)
	suite.EqualValues(2, total)
	suite.Len(found, 2)

	params.PriceMax = floatPtr(10)
	found, total, err = suite.inventoryService.ListProducts(params)
	suite.Require().NoError(err)
	suite.EqualValues(1, total)
	suite.Equal("ebook", found[0]["product_id"])

	params.PriceMin = floatPtr(50)
	_, _, err = suite.inventoryService.ListProducts(params)
	suite.ErrorIs(err, models.ErrInvalidArgument)
}

func (suite *StoreTestSuite) TestListProductsSortAndPage() {
	params := ProductSearchParams{PaginationParams: utils.PaginationParams{Page: 1, Limit: 2, Sort: "price", Order: "desc"}}

	page, total, err := suite.inventoryService.ListProducts(params)
	suite.Require().NoError(err)
	suite.EqualValues(3, total)
	suite.Require().Len(page, 2)
	suite.Equal("lamp", page[0]["product_id"])
	suite.Equal("book", page[1]["product_id"])

	params.Page = 2
	page, _, err = suite.inventoryService.ListProducts(params)
	suite.Require().NoError(err)
	suite.Require().Len(page, 1)
	suite.Equal("ebook", page[0]["product_id"])
}

func (suite *StoreTestSuite) TestAdjustStock() {
	level, err := suite.inventoryService.AdjustStock("book", -4)
	suite.Require().NoError(err)
	suite.Equal(6, level)

	_, err = suite.inventoryService.AdjustStock("book", -7)
	suite.ErrorIs(err, models.ErrOutOfStock)

	level, err = suite.inventoryService.StockLevel("book")
	suite.Require().NoError(err)
	suite.Equal(6, level)
}

func (suite *StoreTestSuite) TestVariantOperations() {
	link, err := suite.inventoryService.RegenerateDownloadLink("ebook", "https://files.example.com")
	suite.Require().NoError(err)
	suite.Contains(link, "https://files.example.com/ebook/download_")

	_, err = suite.inventoryService.RegenerateDownloadLink("lamp", "https://files.example.com")
	suite.ErrorIs(err, models.ErrInvalidArgument)

	quote, err := suite.inventoryService.QuoteShipping("lamp", 5, models.DefaultVolumetricFactor)
	suite.Require().NoError(err)
	suite.Equal(48.0, quote.Cost)

	_, err = suite.inventoryService.QuoteShipping("lamp", math.Inf(1), models.DefaultVolumetricFactor)
	suite.ErrorIs(err, models.ErrInvalidArgument)

	_, err = suite.inventoryService.QuoteShipping("book", 5, models.DefaultVolumetricFactor)
	suite.ErrorIs(err, models.ErrInvalidArgument)

	details, err := suite.inventoryService.ApplyDiscount("book", 10)
	suite.Require().NoError(err)
	suite.Equal(18.0, details["price"])
}

func (suite *StoreTestSuite) TestValuation() {
	valuation := suite.inventoryService.Valuation()
	suite.Equal(3, valuation.ProductCount)
	// 20*10 + 9.99*1 + 45.5*5
	suite.Equal(437.49, valuation.TotalValue)
}

func (suite *StoreTestSuite) TestOrderLifecycle() {
	summary, err := suite.orderService.CreateOrder(&CreateOrderRequest{OrderID: "o-1", CustomerID: "c-1"})
	suite.Require().NoError(err)
	suite.Equal(models.OrderStatusPending, summary.Status)

	_, err = suite.orderService.CreateOrder(&CreateOrderRequest{OrderID: "o-1"})
	suite.ErrorIs(err, models.ErrConflict)

	summary, err = suite.orderService.AddItem("o-1", &AddItemRequest{ProductID: "lamp", Quantity: 2})
	suite.Require().NoError(err)
	suite.Equal(91.0, summary.TotalCost)

	level, _ := suite.inventoryService.StockLevel("lamp")
	suite.Equal(3, level)

	_, err = suite.inventoryService.ApplyDiscount("lamp", 50)
	suite.Require().NoError(err)
	summary, err = suite.orderService.GetOrder("o-1")
	suite.Require().NoError(err)
	suite.Equal(91.0, summary.TotalCost)

	summary, err = suite.orderService.Finalize("o-1")
	suite.Require().NoError(err)
	suite.Equal(models.OrderStatusAwaitingPayment, summary.Status)

	summary, err = suite.orderService.RemoveItem("o-1", "lamp", 1)
	suite.Require().NoError(err)
	suite.Equal(1, summary.TotalItems)
	level, _ = suite.inventoryService.StockLevel("lamp")
	suite.Equal(4, level)

	_, err = suite.orderService.UpdateStatus("o-1", &UpdateStatusRequest{Status: "delivered"})
	suite.Require().NoError(err)
	_, err = suite.orderService.UpdateStatus("o-1", &UpdateStatusRequest{Status: "processing"})
	suite.ErrorIs(err, models.ErrInvalidState)
}

func (suite *StoreTestSuite) TestAddItemOutOfStockLeavesState() {
	_, err := suite.orderService.CreateOrder(&CreateOrderRequest{OrderID: "o-2"})
	suite.Require().NoError(err)

	_, err = suite.orderService.AddItem("o-2", &AddItemRequest{ProductID: "lamp", Quantity: 10})
	suite.ErrorIs(err, models.ErrConflict)

	level, _ := suite.inventoryService.StockLevel("lamp")
	suite.Equal(5, level)
	summary, _ := suite.orderService.GetOrder("o-2")
	suite.Empty(summary.Items)
}

func (suite *StoreTestSuite) TestRemoveItemAfterProductDeleted() {
	_, err := suite.orderService.CreateOrder(&CreateOrderRequest{OrderID: "o-3"})
	suite.Require().NoError(err)
	_, err = suite.orderService.AddItem("o-3", &AddItemRequest{ProductID: "book", Quantity: 1})
	suite.Require().NoError(err)
	_, err = suite.inventoryService.RemoveProduct("book")
	suite.Require().NoError(err)

	_, err = suite.orderService.RemoveItem("o-3", "book", 1)
	suite.ErrorIs(err, models.ErrInconsistentState)
}

func (suite *StoreTestSuite) TestUnknownOrder() {
	_, err := suite.orderService.GetOrder("missing")
	suite.ErrorIs(err, models.ErrNotFound)
	_, err = suite.orderService.Finalize("missing")
	suite.ErrorIs(err, models.ErrNotFound)
}

func (suite *StoreTestSuite) TestListOrdersByCustomer() {
	for i := 0; i < 3; i++ {
		customer := "alice"
		if i == 1 {
			customer = "bob"
		}
		_, err := suite.orderService.CreateOrder(&CreateOrderRequest{OrderID: fmt.Sprintf("o-%d", i), CustomerID: customer})
		suite.Require().NoError(err)
	}

	orders, total := suite.orderService.ListOrders("alice", utils.DefaultPaginationParams())
	suite.EqualValues(2, total)
	suite.Equal("o-0", orders[0].OrderID)
	suite.Equal("o-2", orders[1].OrderID)

	_, total = suite.orderService.ListOrders("", utils.DefaultPaginationParams())
	suite.EqualValues(3, total)
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func TestConcurrentAddItemNeverOversells(t *testing.T) {
	store := NewStore()
	inventoryService := NewInventoryService(store)
	orderService := NewOrderService(store)

	_, err := inventoryService.CreateProduct(&CreateProductRequest{Kind: "generic", ID: "widget", Name: "Widget", Price: 1, Quantity: intPtr(10)})
	require.NoError(t, err)

	const buyers = 25
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0

	for i := 0; i < buyers; i++ {
		orderID := fmt.Sprintf("order-%d", i)
		_, err := orderService.CreateOrder(&CreateOrderRequest{OrderID: orderID})
		require.NoError(t, err)

		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := orderService.AddItem(orderID, &AddItemRequest{ProductID: "widget", Quantity: 1}); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	level, err := inventoryService.StockLevel("widget")
	require.NoError(t, err)
	assert.Equal(t, 10, succeeded)
	assert.Equal(t, 0, level)
}
