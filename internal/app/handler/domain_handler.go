package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"adagency/internal/app/ds"
	"adagency/internal/app/dto"
	"adagency/internal/app/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ Domain availability ============

// CheckDomain checks availability of a name across TLDs
// @Summary Check domain availability
// @Tags Domains
// @Produce json
// @Param domain query string true "Domain or base name, e.g. example or example.com"
// @Param tlds query string false "Comma-separated TLDs to check, e.g. .com,.so"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Router /api/domain/check-domain [get]
func (h *APIHandler) CheckDomain(c *gin.Context) {
	query := strings.TrimSpace(c.Query("domain"))
	if query == "" {
		h.errorResponse(c, http.StatusBadRequest, "domain query parameter is required")
		return
	}

	var selected []string
	if raw := c.Query("tlds"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				selected = append(selected, t)
			}
		}
	}

	results, err := h.Checker.Check(c.Request.Context(), query, selected)
	if err != nil {
		logrus.Error("Error checking domain availability: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to check domain availability")
		return
	}

	h.successResponse(c, http.StatusOK, "", results)
}

// ListMyDomains returns the domains owned by the current user
// @Summary List owned domains
// @Tags Domains
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /api/domains [get]
func (h *APIHandler) ListMyDomains(c *gin.Context) {
	userID, _, err := middleware.UserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	domains, err := h.Repository.ListDomainsByUser(c.Request.Context(), userID)
	if err != nil {
		logrus.Error("Error listing domains: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to list domains")
		return
	}

	resp := make([]dto.DomainResponse, 0, len(domains))
	for _, d := range domains {
		resp = append(resp, dto.DomainResponse{
			ID:               d.ID,
			Name:             d.Name,
			Status:           d.Status,
			RegistrationDate: d.RegistrationDate,
			ExpiryDate:       d.ExpiryDate,
			Price:            d.Price,
		})
	}

	h.successResponse(c, http.StatusOK, "", resp)
}

// ============ Domain pricing catalog ============

// ListDomainPrices returns the TLD pricing catalog
// @Summary List domain prices
// @Tags Pricing
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /api/domain-prices [get]
func (h *APIHandler) ListDomainPrices(c *gin.Context) {
	entries, err := h.Repository.ListPricing(c.Request.Context())
	if err != nil {
		logrus.Error("Error listing domain prices: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to list domain prices")
		return
	}

	resp := make([]dto.PricingResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, pricingToDTO(e))
	}

	h.successResponse(c, http.StatusOK, "", resp)
}

// CreateDomainPrice adds a TLD pricing entry
// @Summary Create domain price
// @Tags Pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePricingRequest true "Pricing entry"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Router /api/domain-prices [post]
func (h *APIHandler) CreateDomainPrice(c *gin.Context) {
	var req dto.CreatePricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	entry := &ds.PricingEntry{
		TLD:           normalizeTLDInput(req.TLD),
		Price:         req.Price,
		RenewalPrice:  req.RenewalPrice,
		TransferPrice: req.TransferPrice,
		Duration:      req.Duration,
	}
	if entry.Duration == "" {
		entry.Duration = "1 Year"
	}

	if err := h.Repository.CreatePricing(c.Request.Context(), entry); err != nil {
		logrus.Error("Error creating domain price: ", err)
		h.errorResponse(c, http.StatusBadRequest, "failed to create pricing entry, TLD may already exist")
		return
	}

	h.successResponse(c, http.StatusCreated, "pricing entry created", pricingToDTO(*entry))
}

// UpdateDomainPrice updates a TLD pricing entry
// @Summary Update domain price
// @Tags Pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pricing entry ID"
// @Param request body dto.UpdatePricingRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Router /api/domain-prices/{id} [put]
func (h *APIHandler) UpdateDomainPrice(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var req dto.UpdatePricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Price > 0 {
		updates["price"] = req.Price
	}
	if req.RenewalPrice > 0 {
		updates["renewal_price"] = req.RenewalPrice
	}
	if req.TransferPrice > 0 {
		updates["transfer_price"] = req.TransferPrice
	}
	if req.Duration != "" {
		updates["duration"] = req.Duration
	}
	if len(updates) == 0 {
		h.errorResponse(c, http.StatusBadRequest, "nothing to update")
		return
	}

	if err := h.Repository.UpdatePricing(c.Request.Context(), id, updates); err != nil {
		logrus.Error("Error updating domain price: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to update pricing entry")
		return
	}

	h.successResponse(c, http.StatusOK, "pricing entry updated", nil)
}

// DeleteDomainPrice removes a TLD pricing entry
// @Summary Delete domain price
// @Tags Pricing
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pricing entry ID"
// @Success 200 {object} dto.APIResponse
// @Router /api/domain-prices/{id} [delete]
func (h *APIHandler) DeleteDomainPrice(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repository.DeletePricing(c.Request.Context(), id); err != nil {
		logrus.Error("Error deleting domain price: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to delete pricing entry")
		return
	}

	h.successResponse(c, http.StatusOK, "pricing entry deleted", nil)
}

func pricingToDTO(e ds.PricingEntry) dto.PricingResponse {
	return dto.PricingResponse{
		ID:            e.ID,
		TLD:           e.TLD,
		Price:         e.Price,
		RenewalPrice:  e.RenewalPrice,
		TransferPrice: e.TransferPrice,
		Duration:      e.Duration,
	}
}

func normalizeTLDInput(tld string) string {
	tld = strings.ToLower(strings.TrimSpace(tld))
	if !strings.HasPrefix(tld, ".") {
		tld = "." + tld
	}
	return tld
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.New("invalid id parameter")
	}
	return uint(id), nil
}
