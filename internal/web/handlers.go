package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	cartdomain "minimart/internal/cart/domain"
	checkoutapp "minimart/internal/checkout/app"
	checkoutdomain "minimart/internal/checkout/domain"
)

func (h *Handlers) ProductList(c *gin.Context) {
	query := c.Query("q")

	products, _, err := h.catalog.ListProducts(c.Request.Context(), query, 100, 0)
	if err != nil {
		h.log.Error("list products failed", slog.Any("err", err))
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	c.HTML(http.StatusOK, "products.html", gin.H{
		"Products": products,
		"Query":    query,
	})
}

// AddToCart increments the session cart. Any invalid input redirects back to
// the product list without an error; that is the flow's contract.
func (h *Handlers) AddToCart(c *gin.Context) {
	productID := c.PostForm("product_id")
	qty, err := strconv.ParseInt(c.PostForm("quantity"), 10, 64)
	if productID == "" || err != nil || qty <= 0 {
		c.Redirect(http.StatusSeeOther, "/products")
		return
	}

	cart := h.carts.Load(c.Request)
	cart.Add(productID, qty)

	if err := h.carts.Save(c.Writer, c.Request, cart); err != nil {
		h.log.Error("save cart failed", slog.Any("err", err))
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	c.Redirect(http.StatusSeeOther, "/cart")
}

func (h *Handlers) CartPage(c *gin.Context) {
	cart := h.carts.Load(c.Request)
	h.renderCart(c, cart)
}

// UpdateCart rebuilds the cart from the submitted form: per existing entry a
// qty_<id> field and an optional remove_<id> checkbox. Entries the form does
// not mention are dropped.
func (h *Handlers) UpdateCart(c *gin.Context) {
	cart := h.carts.Load(c.Request)

	if err := c.Request.ParseForm(); err != nil {
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}

	next := cart.Replace(cartUpdatesFromForm(cart, c.Request.PostForm))
	if err := h.carts.Save(c.Writer, c.Request, next); err != nil {
		h.log.Error("save cart failed", slog.Any("err", err))
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	h.renderCart(c, next)
}

func (h *Handlers) renderCart(c *gin.Context, cart cartdomain.Cart) {
	quote, err := h.checkout.Quote(c.Request.Context(), cart)
	if err != nil {
		h.log.Error("quote failed", slog.Any("err", err))
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	c.HTML(http.StatusOK, "cart.html", gin.H{
		"Items": quote.Items,
		"Total": quote.Total,
	})
}

func (h *Handlers) CheckoutPage(c *gin.Context) {
	cart := h.carts.Load(c.Request)
	if cart.Empty() {
		c.Redirect(http.StatusSeeOther, "/products")
		return
	}

	quote, err := h.checkout.Quote(c.Request.Context(), cart)
	if err != nil {
		h.log.Error("quote failed", slog.Any("err", err))
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	c.HTML(http.StatusOK, "checkout.html", gin.H{
		"Items":   quote.Items,
		"Total":   quote.Total,
		"Error":   "",
		"Name":    "",
		"Phone":   "",
		"Address": "",
	})
}

func (h *Handlers) Checkout(c *gin.Context) {
	cart := h.carts.Load(c.Request)
	if cart.Empty() {
		c.Redirect(http.StatusSeeOther, "/products")
		return
	}

	customer := checkoutdomain.Customer{
		Name:    c.PostForm("name"),
		Phone:   c.PostForm("phone"),
		Address: c.PostForm("address"),
	}

	receipt, err := h.checkout.Checkout(c.Request.Context(), cart, customer)
	if err != nil {
		h.handleCheckoutError(c, cart, customer, err)
		return
	}

	if err := h.carts.Clear(c.Writer, c.Request); err != nil {
		// The order is already committed; losing the clear only leaves a
		// stale cookie behind.
		h.log.Warn("clear cart failed after checkout", slog.Any("err", err))
	}

	c.HTML(http.StatusOK, "success.html", gin.H{
		"OrderID": receipt.OrderID,
		"Total":   receipt.Total,
	})
}

func (h *Handlers) handleCheckoutError(c *gin.Context, cart cartdomain.Cart, customer checkoutdomain.Customer, err error) {
	if errors.Is(err, checkoutapp.ErrEmptyCart) {
		c.Redirect(http.StatusSeeOther, "/products")
		return
	}

	var valErr *checkoutapp.ValidationError
	if errors.As(err, &valErr) {
		// Re-render the form with the quote so the visitor keeps what they
		// typed in the cart.
		quote, qErr := h.checkout.Quote(c.Request.Context(), cart)
		if qErr != nil {
			h.log.Error("quote failed", slog.Any("err", qErr))
			c.String(http.StatusInternalServerError, "something went wrong")
			return
		}

		c.HTML(http.StatusOK, "checkout.html", gin.H{
			"Items":   quote.Items,
			"Total":   quote.Total,
			"Error":   valErr.Message,
			"Name":    customer.Name,
			"Phone":   customer.Phone,
			"Address": customer.Address,
		})
		return
	}

	h.log.Error("checkout failed", slog.Any("err", err))
	c.String(http.StatusInternalServerError, "something went wrong")
}
