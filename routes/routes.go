package routes

import (
	"mineshop/admin"
	"mineshop/auth"
	"mineshop/cart"
	"mineshop/catalog"
	"mineshop/live"
	"mineshop/middleware"
	"mineshop/orders"
	"mineshop/promos"
	"mineshop/ratelim"
	"mineshop/settings"
	"mineshop/support"
	"mineshop/utils"

	"github.com/julienschmidt/httprouter"
)

// Deps bundles the constructed handlers so registration stays declarative.
type Deps struct {
	Auth     *auth.Handler
	Catalog  *catalog.Handler
	Cart     *cart.Handler
	Promos   *promos.Handler
	Orders   *orders.Handler
	Settings *settings.Handler
	Admin    *admin.Handler
	Support  *support.Handler
	Hub      *live.Hub
}

func AddAuthRoutes(router *httprouter.Router, d Deps, rl *ratelim.RateLimiter) {
	router.GET("/api/auth/challenge", rl.Limit(d.Auth.Challenge))
	router.POST("/api/auth/register", rl.Limit(d.Auth.Register))
	router.POST("/api/auth/login", rl.Limit(d.Auth.Login))
	router.POST("/api/auth/logout", d.Auth.Logout)
	router.POST("/api/auth/password", middleware.Authenticate(d.Auth.ChangePassword))
	router.GET("/api/auth/session", d.Auth.Session)
}

func AddCatalogRoutes(router *httprouter.Router, d Deps) {
	router.GET("/api/products", d.Catalog.List)
	router.GET("/api/categories", d.Catalog.ListCategories)
	router.GET("/api/products/:id", d.Catalog.Get)
}

func AddCartRoutes(router *httprouter.Router, d Deps) {
	router.GET("/api/cart", middleware.OptionalAuth(d.Cart.Get))
	router.POST("/api/cart/items", middleware.OptionalAuth(d.Cart.Add))
	router.PATCH("/api/cart/items/:id", middleware.OptionalAuth(d.Cart.Update))
	router.DELETE("/api/cart/items/:id", middleware.OptionalAuth(d.Cart.Remove))
	router.DELETE("/api/cart", middleware.OptionalAuth(d.Cart.Clear))
}

func AddCheckoutRoutes(router *httprouter.Router, d Deps, rl *ratelim.RateLimiter) {
	router.POST("/api/promos/validate", rl.Limit(d.Promos.Validate))
	router.POST("/api/checkout", middleware.OptionalAuth(d.Orders.Checkout))
	router.POST("/api/checkout/buy/:id", middleware.OptionalAuth(d.Orders.BuyNow))
}

func AddOrderRoutes(router *httprouter.Router, d Deps) {
	router.GET("/api/orders", middleware.Authenticate(d.Orders.ListMine))
	router.GET("/api/orders/:id/receipt", middleware.Authenticate(d.Orders.Receipt))
}

func AddSettingsRoutes(router *httprouter.Router, d Deps) {
	router.GET("/api/settings", d.Settings.Get)
	router.PUT("/api/settings", middleware.RequireAdmin(d.Settings.Update))
}

func AddAdminRoutes(router *httprouter.Router, d Deps) {
	router.GET("/api/admin/stats", middleware.RequireAdmin(d.Admin.GetStats))
	router.GET("/api/admin/users", middleware.RequireAdmin(d.Admin.ListUsers))
	router.GET("/api/admin/orders", middleware.RequireAdmin(d.Orders.ListAll))

	router.POST("/api/admin/products", middleware.RequireAdmin(d.Admin.CreateProduct))
	router.PUT("/api/admin/products/:id", middleware.RequireAdmin(d.Admin.UpdateProduct))
	router.DELETE("/api/admin/products/:id", middleware.RequireAdmin(d.Admin.DeleteProduct))
	router.PATCH("/api/admin/products/:id/stock", middleware.RequireAdmin(d.Admin.ToggleStock))

	router.GET("/api/admin/promos", middleware.RequireAdmin(d.Admin.ListPromos))
	router.POST("/api/admin/promos", middleware.RequireAdmin(d.Admin.CreatePromo))
	router.PATCH("/api/admin/promos/:code", middleware.RequireAdmin(d.Admin.TogglePromo))
	router.DELETE("/api/admin/promos/:code", middleware.RequireAdmin(d.Admin.DeletePromo))

	router.GET("/api/admin/support", middleware.RequireAdmin(d.Support.List))
}

func AddSupportRoutes(router *httprouter.Router, d Deps, rl *ratelim.RateLimiter) {
	router.POST("/api/support", rl.Limit(d.Support.Submit))
}

func AddLiveRoutes(router *httprouter.Router, d Deps) {
	router.GET("/ws/live", live.WebSocketHandler(d.Hub))
	router.GET("/ws/live/:room", live.WebSocketHandler(d.Hub))
}

func AddUtilityRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/csrf", rl.Limit(utils.CSRF))
}

func RoutesWrapper(router *httprouter.Router, d Deps, rl *ratelim.RateLimiter) {
	AddAuthRoutes(router, d, rl)
	AddCatalogRoutes(router, d)
	AddCartRoutes(router, d)
	AddCheckoutRoutes(router, d, rl)
	AddOrderRoutes(router, d)
	AddSettingsRoutes(router, d)
	AddAdminRoutes(router, d)
	AddSupportRoutes(router, d, rl)
	AddLiveRoutes(router, d)
	AddUtilityRoutes(router, rl)
}
