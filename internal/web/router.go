package web

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	cartsession "minimart/internal/cart/session"
	catalogapp "minimart/internal/catalog/app"
	checkoutapp "minimart/internal/checkout/app"
	orderapp "minimart/internal/order/app"
)

type Handlers struct {
	log      *slog.Logger
	catalog  *catalogapp.Service
	checkout *checkoutapp.Service
	orders   *orderapp.Service
	carts    *cartsession.Store
}

func NewHandlers(log *slog.Logger, catalog *catalogapp.Service, checkout *checkoutapp.Service, orders *orderapp.Service, carts *cartsession.Store) *Handlers {
	return &Handlers{
		log:      log,
		catalog:  catalog,
		checkout: checkout,
		orders:   orders,
		carts:    carts,
	}
}

func NewRouter(h *Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(h.log))
	r.SetHTMLTemplate(loadTemplates())

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Server-rendered shop flow.
	r.GET("/", h.ProductList)
	r.GET("/products", h.ProductList)
	r.POST("/add_to_cart", h.AddToCart)
	r.GET("/cart", h.CartPage)
	r.POST("/cart", h.UpdateCart)
	r.GET("/checkout", h.CheckoutPage)
	r.POST("/checkout", h.Checkout)

	// JSON API for catalog management and order lookup.
	api := r.Group("/api")
	{
		api.GET("/products", h.APIListProducts)
		api.POST("/products", h.APICreateProduct)
		api.GET("/products/:id", h.APIGetProduct)
		api.GET("/orders/:id", h.APIGetOrder)
	}

	return r
}
