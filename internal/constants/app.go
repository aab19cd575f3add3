package constants

const (
	APP_ORDER_SERVICE = "order-service"
	APP_CART_SERVICE  = "cart-service"
	APP_STOREFRONT    = "storefront"

	AUDIENCE_USER = "audience-user"
)
