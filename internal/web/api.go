package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	catalogapp "minimart/internal/catalog/app"
	orderapp "minimart/internal/order/app"
)

type createProductRequest struct {
	Name  string `json:"name" binding:"required"`
	Price int64  `json:"price"`
	Stock int64  `json:"stock"`
}

func (h *Handlers) APIListProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	cursor, _ := strconv.ParseInt(c.Query("cursor"), 10, 64)

	products, next, err := h.catalog.ListProducts(c.Request.Context(), c.Query("q"), limit, cursor)
	if err != nil {
		h.apiError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products, "next_cursor": next})
}

func (h *Handlers) APICreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.catalog.CreateProduct(c.Request.Context(), req.Name, req.Price, req.Stock)
	if err != nil {
		h.apiError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"product": product})
}

func (h *Handlers) APIGetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.apiError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (h *Handlers) APIGetOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, err := h.orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		h.apiError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (h *Handlers) apiError(c *gin.Context, err error) {
	status, code := statusFromErr(err)
	if status == http.StatusInternalServerError {
		h.log.Error("api error", slog.Any("err", err))
		c.JSON(status, gin.H{"error": "internal error", "code": code})
		return
	}
	c.JSON(status, gin.H{"error": err.Error(), "code": code})
}

func statusFromErr(err error) (int, string) {
	switch {
	case errors.Is(err, catalogapp.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_ARGUMENT"
	case errors.Is(err, catalogapp.ErrNotFound), errors.Is(err, orderapp.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}
