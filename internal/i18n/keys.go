// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Authentication
	KeyAuthRequired     = "auth.required"
	KeyAuthInvalidToken = "auth.invalid_token"
	KeyAuthTokenExpired = "auth.token_expired"
	KeyAuthForbidden    = "auth.forbidden"

	// Products
	KeyProductCreated         = "product.created"
	KeyProductDeleted         = "product.deleted"
	KeyProductNotFound        = "product.not_found"
	KeyProductOutOfStock      = "product.out_of_stock"
	KeyProductStockUpdated    = "product.stock_updated"
	KeyProductDiscounted      = "product.discounted"
	KeyProductLinkRegenerated = "product.link_regenerated"

	// Orders
	KeyOrderCreated       = "order.created"
	KeyOrderNotFound      = "order.not_found"
	KeyOrderItemAdded     = "order.item_added"
	KeyOrderItemRemoved   = "order.item_removed"
	KeyOrderFinalized     = "order.finalized"
	KeyOrderStatusUpdated = "order.status_updated"

	// Error kinds
	KeyErrorInvalidArgument = "error.invalid_argument"
	KeyErrorNotFound        = "error.not_found"
	KeyErrorConflict        = "error.conflict"
	KeyErrorInvalidState    = "error.invalid_state"
	KeyErrorInternal        = "error.internal"
	KeyErrorRateLimited     = "error.rate_limited"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"
)
