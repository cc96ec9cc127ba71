package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "florada/internal/errors"
	"florada/internal/models"
	"florada/internal/services"
	"florada/internal/session"
)

// BudgetHandler handles every budget session mutation.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// GetBudget returns the full session state with computed totals.
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	sess, err := h.budgetService.Snapshot(sessionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session": sess,
		"totals": gin.H{
			"arrangements": sess.ArrangementsTotal(),
			"in_progress":  sess.InProgressTotal(),
			"rental":       sess.RentalTotal(),
			"labor":        sess.ComputeLaborTotals(),
			"scenography":  sess.ComputeScenographyTotals(),
		},
	})
}

// StartArrangementRequest selects an arrangement category.
type StartArrangementRequest struct {
	Type string `json:"type" binding:"required,arrangement_type"`
}

// StartArrangement selects the category and enters the building step.
func (h *BudgetHandler) StartArrangement(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req StartArrangementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.budgetService.StartArrangement(sessionID, models.ArrangementType(req.Type)); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Arrangement started"})
}

// AddFlowerRequest adds a catalog flower to the in-progress arrangement.
type AddFlowerRequest struct {
	FlowerID int `json:"flower_id" binding:"required"`
	Quantity int `json:"quantity" binding:"omitempty,min=1"`
}

// AddFlower appends a flower line to the in-progress arrangement.
func (h *BudgetHandler) AddFlower(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddFlowerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.budgetService.AddFlower(sessionID, req.FlowerID, req.Quantity); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Flower added"})
}

// RemoveFlower drops the in-progress flower line at the index path param.
func (h *BudgetHandler) RemoveFlower(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	index, err := parsePathInt(c, "index")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetService.RemoveFlower(sessionID, index); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Flower removed"})
}

// SaveArrangementRequest finalizes the in-progress arrangement.
type SaveArrangementRequest struct {
	Quantity int `json:"quantity" binding:"omitempty,min=1"`
}

// SaveArrangement finalizes the in-progress arrangement. Saving with no
// flowers responds saved=false and changes nothing.
func (h *BudgetHandler) SaveArrangement(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SaveArrangementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	saved, err := h.budgetService.SaveArrangement(sessionID, req.Quantity)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": saved})
}

// NewArrangement returns to category selection for another arrangement.
func (h *BudgetHandler) NewArrangement(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetService.NewArrangement(sessionID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ready for a new arrangement"})
}

// RemoveArrangement drops the saved arrangement at the index path param.
func (h *BudgetHandler) RemoveArrangement(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	index, err := parsePathInt(c, "index")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetService.RemoveArrangement(sessionID, index); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Arrangement removed"})
}

// AddRentalRequest adds a furniture item to the rental cart.
type AddRentalRequest struct {
	ItemID    string `json:"item_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1"`
	StartDate string `json:"start_date" binding:"required,date_only"`
	EndDate   string `json:"end_date" binding:"required,date_only"`
	Location  string `json:"location" binding:"omitempty,max=200"`
}

// AddRental checks availability and appends a rental line.
func (h *BudgetHandler) AddRental(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	err = h.budgetService.AddRental(sessionID, services.RentalInput{
		ItemID:    req.ItemID,
		Quantity:  req.Quantity,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Location:  req.Location,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rental added"})
}

// RemoveRental drops the rental line at the index path param.
func (h *BudgetHandler) RemoveRental(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	index, err := parsePathInt(c, "index")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetService.RemoveRental(sessionID, index); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rental removed"})
}

// laborSection parses the labor section path parameter.
func laborSection(c *gin.Context) (session.LaborSection, error) {
	s := c.Param("section")
	if !session.ValidLaborSection(s) {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid labor section")
	}
	return session.LaborSection(s), nil
}

// AddLaborRow appends a blank row to a labor section.
func (h *BudgetHandler) AddLaborRow(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	section, err := laborSection(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetService.AddLaborRow(sessionID, section); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Row added"})
}

// UpdateLaborRowRequest patches a labor row. Omitted fields are untouched.
type UpdateLaborRowRequest struct {
	Name      *string          `json:"name" binding:"omitempty,max=100"`
	Quantity  *int             `json:"quantity" binding:"omitempty,min=0"`
	Unit      *string          `json:"unit" binding:"omitempty,unit_code"`
	UnitValue *decimal.Decimal `json:"unit_value"`
}

// UpdateLaborRow patches the labor row at the index path param.
func (h *BudgetHandler) UpdateLaborRow(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	section, err := laborSection(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	index, err := parsePathInt(c, "index")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateLaborRowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	err = h.budgetService.UpdateLaborRow(sessionID, section, index, session.LaborPatch{
		Name:      req.Name,
		Quantity:  req.Quantity,
		Unit:      req.Unit,
		UnitValue: req.UnitValue,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Row updated"})
}

// RemoveLaborRow drops the labor row at the index path param.
func (h *BudgetHandler) RemoveLaborRow(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	section, err := laborSection(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	index, err := parsePathInt(c, "index")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.budgetService.RemoveLaborRow(sessionID, section, index); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Row removed"})
}

// ReserveProfessionalRequest books a catalog professional for a period.
type ReserveProfessionalRequest struct {
	ProfessionalID int    `json:"professional_id" binding:"required"`
	StartDate      string `json:"start_date" binding:"required,date_only"`
	EndDate        string `json:"end_date" binding:"required,date_only"`
}

// ReserveProfessional checks availability and appends a readonly workers
// row priced per inclusive day.
func (h *BudgetHandler) ReserveProfessional(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ReserveProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	err = h.budgetService.ReserveProfessional(sessionID, services.ReserveInput{
		ProfessionalID: req.ProfessionalID,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Professional reserved"})
}

// SetDiscountRequest records the labor discount percentage.
type SetDiscountRequest struct {
	Discount decimal.Decimal `json:"discount"`
}

// SetDiscount records the labor discount percentage.
func (h *BudgetHandler) SetDiscount(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.budgetService.SetDiscount(sessionID, req.Discount); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Discount updated"})
}

// UpdateMaterialRequest patches a scenography row. Omitted fields are
// untouched.
type UpdateMaterialRequest struct {
	Quantity  *int             `json:"quantity" binding:"omitempty,min=0"`
	UnitValue *decimal.Decimal `json:"unit_value"`
}

func (r UpdateMaterialRequest) patch() session.MaterialPatch {
	return session.MaterialPatch{Quantity: r.Quantity, UnitValue: r.UnitValue}
}

// UpdateWood patches the distinguished wood line.
func (h *BudgetHandler) UpdateWood(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.budgetService.UpdateWood(sessionID, req.patch()); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Wood updated"})
}

// UpdateMaterial patches the scenography material row at the index param.
func (h *BudgetHandler) UpdateMaterial(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	index, err := parsePathInt(c, "index")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.budgetService.UpdateMaterial(sessionID, index, req.patch()); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Material updated"})
}

// UpdateCleaning patches the cleaning material row at the index param.
func (h *BudgetHandler) UpdateCleaning(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	index, err := parsePathInt(c, "index")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.budgetService.UpdateCleaning(sessionID, index, req.patch()); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Material updated"})
}

// AddSupplierItemRequest copies a supplier item into the scenography lists.
type AddSupplierItemRequest struct {
	SupplierID int    `json:"supplier_id" binding:"required"`
	ItemID     string `json:"item_id" binding:"required"`
}

// AddSupplierItem copies a supplier catalog item into the scenography
// lists at quantity zero.
func (h *BudgetHandler) AddSupplierItem(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddSupplierItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.budgetService.AddSupplierItem(sessionID, req.SupplierID, req.ItemID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Supplier item added"})
}
