package store

// Storage layout. One key per collection, same names the frontend used, so
// an existing data set stays readable.
const (
	KeyUsers       = "mc_users"
	KeyProducts    = "mc_products"
	KeyPromos      = "mc_promos"
	KeyOrders      = "mc_orders"
	KeySettings    = "mc_settings"
	KeyCurrentUser = "mc_current_user"
	KeySupport     = "mc_support"
)
