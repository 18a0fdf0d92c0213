package api

import (
	"net"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/sneakstreet/storefront/internal/api/handler"
	"github.com/sneakstreet/storefront/internal/api/middleware"
	"github.com/sneakstreet/storefront/internal/core/domain"
	"github.com/sneakstreet/storefront/internal/core/ports"
	"github.com/sneakstreet/storefront/internal/infrastructure/http/handlers"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Log      zerolog.Logger
	Auth     ports.AuthService
	Sessions ports.SessionReader
	Cookie   middleware.SessionCookie
	Products ports.ProductService
	Carts    ports.CartService

	// Limiter throttles logins when set.
	Limiter ports.LoginLimiter
	// TrustedProxies lists the networks whose X-Forwarded-For is believed.
	// Empty means the peer address is the client address.
	TrustedProxies []*net.IPNet
	// Readiness serves /health/ready when set.
	Readiness *handlers.HealthDependenciesHandler
	// MetricsRegisterer enables HTTP metrics and /metrics when set.
	MetricsRegisterer prometheus.Registerer
	MetricsGatherer   prometheus.Gatherer
	// Docs serves the OpenAPI document under /swagger/.
	Docs bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)
	e.IPExtractor = ipExtractor(d.TrustedProxies)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Log))
	if d.MetricsRegisterer != nil {
		e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Subsystem:  "storefront",
			Registerer: d.MetricsRegisterer,
		}))
	}
	e.Use(middleware.Session(d.Sessions, d.Cookie))
	e.Use(middleware.RouteGuard(d.Log))

	authHandler := handler.NewAuthHandler(d.Auth, d.Cookie, d.Log)
	productHandler := handler.NewProductHandler(d.Products)
	cartHandler := handler.NewCartHandler(d.Carts)
	viewHandler := handler.NewViewHandler(d.Products, d.Carts, d.Log)

	// --- Views ---
	e.GET("/", viewHandler.Home)
	e.GET("/login", viewHandler.Login)
	e.GET("/admin", viewHandler.Admin)
	e.GET("/admin/*", viewHandler.Admin)

	// --- Auth ---
	auth := e.Group("/api/auth")
	if d.Limiter != nil {
		auth.POST("/login", authHandler.Login, middleware.LoginRateLimit(d.Limiter, d.Log))
	} else {
		auth.POST("/login", authHandler.Login)
	}
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/session", authHandler.Session)

	// --- Catalog ---
	e.GET("/api/products", productHandler.List)
	e.GET("/api/products/:id", productHandler.Get)

	adminOnly := middleware.RBAC(domain.RoleAdmin)
	e.POST("/api/products", productHandler.Create, adminOnly)
	e.PUT("/api/products/:id", productHandler.Update, adminOnly)
	e.DELETE("/api/products/:id", productHandler.Delete, adminOnly)

	// --- Cart & checkout ---
	buyerOnly := middleware.RBAC(domain.RoleClient, domain.RoleAdmin)
	buyer := e.Group("/api")
	buyer.GET("/cart", cartHandler.Get, buyerOnly)
	buyer.DELETE("/cart", cartHandler.Clear, buyerOnly)
	buyer.POST("/cart/items", cartHandler.AddItem, buyerOnly)
	buyer.PUT("/cart/items/:id", cartHandler.SetQuantity, buyerOnly)
	buyer.DELETE("/cart/items/:id", cartHandler.RemoveItem, buyerOnly)
	buyer.GET("/cart/quote", cartHandler.Quote, buyerOnly)
	buyer.POST("/checkout", cartHandler.Checkout, buyerOnly)
	buyer.POST("/favorites/:id", cartHandler.ToggleFavorite, buyerOnly)

	// --- Health probes (no auth required) ---
	e.GET("/health", handlers.NewHealthHandler().Liveness)
	if d.Readiness != nil {
		e.GET("/health/ready", d.Readiness.Readiness)
	}

	if d.MetricsRegisterer != nil {
		gatherer := d.MetricsGatherer
		if gatherer == nil {
			gatherer = prometheus.DefaultGatherer
		}
		e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	}
	if d.Docs {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	return e
}

// ipExtractor decides what c.RealIP returns. Forwarding headers are only
// honoured when they come from a listed proxy.
func ipExtractor(trusted []*net.IPNet) echo.IPExtractor {
	if len(trusted) == 0 {
		return echo.ExtractIPDirect()
	}
	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, n := range trusted {
		opts = append(opts, echo.TrustIPRange(n))
	}
	return echo.ExtractIPFromXFFHeader(opts...)
}
