package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"florada/internal/services"
)

// OrderHandler confirms arrangement orders.
type OrderHandler struct {
	orderService services.OrderServicer
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService services.OrderServicer) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Submit forwards the session's saved arrangements to the order endpoint.
func (h *OrderHandler) Submit(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.orderService.SubmitOrder(c.Request.Context(), sessionID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order submitted"})
}
