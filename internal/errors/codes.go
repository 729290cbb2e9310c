package errors

// Error code constants returned in API error responses.
// Format: CATEGORY_SPECIFIC_DETAIL. The storefront client maps these codes
// to user-facing messages.

const (
	// Authentication (AUTH_)
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	AuthUsernameExists     = "AUTH_USERNAME_EXISTS"
	AuthEmailExists        = "AUTH_EMAIL_EXISTS"

	// Validation (VALIDATION_)
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID    = "VALIDATION_INVALID_ID"

	// Resources (RESOURCE_)
	ResourceNotFound = "RESOURCE_NOT_FOUND"

	// Catalog (CATEGORY_ / PRODUCT_)
	CategoryNotFound   = "CATEGORY_NOT_FOUND"
	ProductNotFound    = "PRODUCT_NOT_FOUND"
	ProductUnavailable = "PRODUCT_UNAVAILABLE"

	// Cart (CART_)
	CartItemNotFound = "CART_ITEM_NOT_FOUND"

	// Orders (ORDER_)
	OrderNotFound      = "ORDER_NOT_FOUND"
	OrderEmpty         = "ORDER_EMPTY"
	OrderInvalidStatus = "ORDER_INVALID_STATUS"

	// Internal (INTERNAL_)
	InternalServerError = "INTERNAL_SERVER_ERROR"
)
