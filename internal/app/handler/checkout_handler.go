package handler

import (
	"net/http"

	"adagency/internal/app/checkout"
	"adagency/internal/app/dto"
	"adagency/internal/app/payment"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Checkout resolves the buyer, then runs the cart through the orchestrator
// @Summary Checkout
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body dto.CheckoutRequest true "Buyer identity, payment number and cart items"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Router /api/checkout [post]
func (h *APIHandler) ProcessCheckout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	accountNo, err := payment.NormalizeAccountNo(req.WaafiNumber)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx := c.Request.Context()

	// Existing customers log in; new ones get an account created inline so
	// the purchase lands in a ledger they can sign into later.
	user, err := h.AuthHandler.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if req.ExistingCustomer {
			h.errorResponse(c, http.StatusUnauthorized, "invalid email or password")
			return
		}
		user, err = h.AuthHandler.CreateAccount(ctx, dto.RegisterRequest{
			FullName:    req.FullName,
			Email:       req.Email,
			Password:    req.Password,
			Phone:       req.Phone,
			CompanyName: req.CompanyName,
			Address:     req.Address,
			City:        req.City,
			Country:     req.Country,
		})
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	token, err := h.AuthHandler.IssueToken(user)
	if err != nil {
		logrus.Error("Error issuing token during checkout: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to issue session token")
		return
	}

	items := make([]checkout.LineItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, checkout.LineItem{
			ID:           it.ID,
			Type:         it.Type,
			Title:        it.Title,
			Subtitle:     it.Subtitle,
			Price:        it.Price,
			Options:      it.Options,
			RenewalPrice: it.RenewalPrice,
			ReferenceID:  it.ReferenceID,
		})
	}

	result := h.Checkout.Process(ctx, user, accountNo, items)

	message := "checkout completed"
	if !result.Success {
		message = "checkout completed with failed items"
	}

	c.JSON(http.StatusOK, dto.APIResponse{
		Success: result.Success,
		Message: message,
		Data: gin.H{
			"items": result.Items,
			"token": token,
			"user": gin.H{
				"id":    user.ID,
				"email": user.Email,
			},
		},
	})
}
