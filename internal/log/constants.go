package log

const (
	KeyAppName        = "app"
	KeyTag            = "tag"
	KeyProcess        = "process"
	KeyRequestID      = "requestId"
	KeyConfig         = "config"
	KeyToken          = "token"
	KeyUserID         = "userId"
	KeyOrderID        = "orderId"
	KeyCartID         = "cartId"
	KeyCartItemID     = "cartItemId"
	KeyProductID      = "productId"
	KeyIdempotencyKey = "idempotencyKey"
	KeyCacheKey       = "cacheKey"
	KeyOrder          = "order"
	KeyOrders         = "orders"
	KeyCart           = "cart"
	KeyDbURL          = "dbURL"

	KeyRequest       = "request"
	KeyRequestBody   = "requestBody"
	KeyRequestHeader = "requestHeader"
	KeyRequestHost   = "host"
	KeyRequestIp     = "requesterIP"
	KeyRequestMethod = "requestMethod"
	KeyRequestURI    = "requestURI"
	KeyRequestURL    = "requestURL"
)
