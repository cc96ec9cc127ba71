package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"florada/internal/services"
)

// QuoteHandler serves the printable HTML documents.
type QuoteHandler struct {
	quoteService services.QuoteServicer
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(quoteService services.QuoteServicer) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// Full serves the combined quote. ?prices=false produces the production
// recipe with flower names and quantities only.
func (h *QuoteHandler) Full(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	showPrices := c.DefaultQuery("prices", "true") != "false"

	doc, err := h.quoteService.RenderFull(sessionID, showPrices)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", doc)
}

// Rental serves the furniture rental document.
func (h *QuoteHandler) Rental(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	doc, err := h.quoteService.RenderRental(sessionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", doc)
}

// Scenography serves the scenography materials document.
func (h *QuoteHandler) Scenography(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	doc, err := h.quoteService.RenderScenography(sessionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", doc)
}
