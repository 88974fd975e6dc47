package bot

// Conversation waypoints. The driver stores the current waypoint in Redis
// keyed by telegram id, so any bot instance can pick up the next update.
const (
	WaypointIdle             = "idle"
	WaypointAwaitingPhone    = "awaiting_phone"
	WaypointAwaitingName     = "awaiting_name"
	WaypointChoosingHomeCity = "choosing_home_city"
	WaypointChoosingCity     = "choosing_city"
	WaypointChoosingStore    = "choosing_store"
	WaypointBrowsingMenu     = "browsing_menu"
	WaypointAwaitingReceipt  = "awaiting_receipt"
	WaypointSupportChat      = "support_chat"
)

// Callback data prefixes.
const (
	cbHomeCity       = "home_city_"
	cbCity           = "city_"
	cbLocation       = "location_"
	cbCategory       = "category_"
	cbAddProduct     = "add_"
	cbCheckout       = "checkout"
	cbClearCart      = "clear_cart"
	cbCancelOrder    = "cancel_order_"
	cbManagerConfirm = "manager_confirm_"
	cbManagerReject  = "manager_reject_"
)
