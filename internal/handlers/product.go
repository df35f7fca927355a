// internal/handlers/product.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/storefront/internal/i18n"
	"github.com/javajoker/storefront/internal/services"
	"github.com/javajoker/storefront/internal/utils"
)

type ProductHandler struct {
	inventoryService *services.InventoryService
	volumetricFactor int
}

func NewProductHandler(inventoryService *services.InventoryService, volumetricFactor int) *ProductHandler {
	return &ProductHandler{
		inventoryService: inventoryService,
		volumetricFactor: volumetricFactor,
	}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	searchParams := services.ProductSearchParams{
		PaginationParams: params,
	}

	if caseSensitive, err := strconv.ParseBool(c.Query("case_sensitive")); err == nil {
		searchParams.CaseSensitive = caseSensitive
	}

	if priceMinStr := c.Query("price_min"); priceMinStr != "" {
		priceMin, err := strconv.ParseFloat(priceMinStr, 64)
		if err != nil {
			utils.BadRequestResponse(c, "price_min must be a number", nil)
			return
		}
		searchParams.PriceMin = &priceMin
	}

	if priceMaxStr := c.Query("price_max"); priceMaxStr != "" {
		priceMax, err := strconv.ParseFloat(priceMaxStr, 64)
		if err != nil {
			utils.BadRequestResponse(c, "price_max must be a number", nil)
			return
		}
		searchParams.PriceMax = &priceMax
	}

	products, total, err := h.inventoryService.ListProducts(searchParams)
	if err != nil {
		respondError(c, err)
		return
	}

	result := utils.CreatePaginationResult(products, total, params)
	utils.PaginatedResponse(c, result)
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.inventoryService.CreateProduct(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductCreated),
		"product": product,
	})
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.inventoryService.GetProduct(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
	})
}

// DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	product, err := h.inventoryService.RemoveProduct(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductDeleted),
		"product": product,
	})
}

// GET /products/:id/stock
func (h *ProductHandler) GetStock(c *gin.Context) {
	productID := c.Param("id")
	level, err := h.inventoryService.StockLevel(productID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product_id": productID,
		"quantity":   level,
	})
}

// PATCH /products/:id/stock
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	productID := c.Param("id")

	var req services.AdjustStockRequest
	if !bindJSON(c, &req) {
		return
	}

	level, err := h.inventoryService.AdjustStock(productID, req.Delta)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":    i18n.T(lang, i18n.KeyProductStockUpdated),
		"product_id": productID,
		"quantity":   level,
	})
}

// POST /products/:id/discount
func (h *ProductHandler) ApplyDiscount(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.DiscountRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.inventoryService.ApplyDiscount(c.Param("id"), req.Percent)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductDiscounted),
		"product": product,
	})
}

// POST /products/:id/download-link
func (h *ProductHandler) RegenerateDownloadLink(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	productID := c.Param("id")

	var req services.DownloadLinkRequest
	if !bindJSON(c, &req) {
		return
	}

	link, err := h.inventoryService.RegenerateDownloadLink(productID, req.BaseURL)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":       i18n.T(lang, i18n.KeyProductLinkRegenerated),
		"product_id":    productID,
		"download_link": link,
	})
}

// GET /products/:id/shipping-quote
func (h *ProductHandler) QuoteShipping(c *gin.Context) {
	ratePerKg, err := strconv.ParseFloat(c.Query("rate_per_kg"), 64)
	if err != nil {
		utils.BadRequestResponse(c, "rate_per_kg must be a number", nil)
		return
	}

	volumetricFactor := h.volumetricFactor
	if factorStr := c.Query("volumetric_factor"); factorStr != "" {
		if volumetricFactor, err = strconv.Atoi(factorStr); err != nil {
			utils.BadRequestResponse(c, "volumetric_factor must be an integer", nil)
			return
		}
	}

	quote, err := h.inventoryService.QuoteShipping(c.Param("id"), ratePerKg, volumetricFactor)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, quote)
}

// GET /inventory/value
func (h *ProductHandler) GetInventoryValue(c *gin.Context) {
	utils.SuccessResponse(c, h.inventoryService.Valuation())
}
