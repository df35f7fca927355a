// internal/handlers/order.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/storefront/internal/i18n"
	"github.com/javajoker/storefront/internal/services"
	"github.com/javajoker/storefront/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// customerScope returns the caller's own customer id when the token carries
// the customer role. Operators are unscoped.
func customerScope(c *gin.Context) (string, bool) {
	if role, _ := utils.GetRoleFromContext(c); role != utils.RoleCustomer {
		return "", false
	}
	subject, _ := utils.GetSubjectFromContext(c)
	return subject, true
}

// authorizeOrder writes a 404 when a customer addresses an order that is not
// theirs, so foreign order ids are indistinguishable from unknown ones.
func (h *OrderHandler) authorizeOrder(c *gin.Context, orderID string) bool {
	customerID, scoped := customerScope(c)
	if !scoped {
		return true
	}

	order, err := h.orderService.GetOrder(orderID)
	if err != nil {
		respondError(c, err)
		return false
	}
	if order.CustomerID != customerID {
		utils.NotFoundResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyOrderNotFound))
		return false
	}
	return true
}

// GET /orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	customerID := c.Query("customer_id")
	if subject, scoped := customerScope(c); scoped {
		customerID = subject
	}

	orders, total := h.orderService.ListOrders(customerID, params)

	result := utils.CreatePaginationResult(orders, total, params)
	utils.PaginatedResponse(c, result)
}

// POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateOrderRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}

	// Customers may only open orders for themselves.
	if subject, scoped := customerScope(c); scoped {
		if req.CustomerID != "" && req.CustomerID != subject {
			utils.ForbiddenResponse(c, "")
			return
		}
		req.CustomerID = subject
	}

	order, err := h.orderService.CreateOrder(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOrderCreated),
		"order":   order,
	})
}

// GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	if !h.authorizeOrder(c, c.Param("id")) {
		return
	}

	order, err := h.orderService.GetOrder(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"order": order,
	})
}

// POST /orders/:id/items
func (h *OrderHandler) AddItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.AddItemRequest
	if !bindJSON(c, &req) || !h.authorizeOrder(c, c.Param("id")) {
		return
	}

	order, err := h.orderService.AddItem(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOrderItemAdded),
		"order":   order,
	})
}

// DELETE /orders/:id/items/:product_id?quantity=n
func (h *OrderHandler) RemoveItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	quantity, err := strconv.Atoi(c.Query("quantity"))
	if err != nil {
		utils.BadRequestResponse(c, "quantity must be an integer", nil)
		return
	}
	if !h.authorizeOrder(c, c.Param("id")) {
		return
	}

	order, err := h.orderService.RemoveItem(c.Param("id"), c.Param("product_id"), quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOrderItemRemoved),
		"order":   order,
	})
}

// POST /orders/:id/finalize
func (h *OrderHandler) FinalizeOrder(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	if !h.authorizeOrder(c, c.Param("id")) {
		return
	}

	order, err := h.orderService.Finalize(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOrderFinalized),
		"order":   order,
	})
}

// PUT /orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.orderService.UpdateStatus(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOrderStatusUpdated),
		"order":   order,
	})
}
