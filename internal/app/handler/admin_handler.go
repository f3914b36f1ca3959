package handler

import (
	"errors"
	"net/http"
	"strconv"

	"adagency/internal/app/ds"
	"adagency/internal/app/dto"
	"adagency/internal/app/middleware"
	"adagency/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ Menus ============

// ListMenus returns the navigation menu tree
// @Summary List menus
// @Tags Administration
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /api/menus [get]
func (h *APIHandler) ListMenus(c *gin.Context) {
	menus, err := h.Repository.ListMenus(c.Request.Context())
	if err != nil {
		logrus.Error("Error listing menus: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to list menus")
		return
	}
	h.successResponse(c, http.StatusOK, "", menus)
}

// CreateMenu adds a menu with optional submenus
// @Summary Create menu
// @Tags Administration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MenuRequest true "Menu data"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Router /api/menus [post]
func (h *APIHandler) CreateMenu(c *gin.Context) {
	var req dto.MenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	menu := &ds.Menu{
		Title:     req.Title,
		Path:      req.Path,
		SortOrder: req.SortOrder,
	}
	for _, sm := range req.SubMenus {
		menu.SubMenus = append(menu.SubMenus, ds.SubMenu{
			Title: sm.Title,
			Path:  sm.Path,
		})
	}

	if err := h.Repository.CreateMenu(c.Request.Context(), menu); err != nil {
		logrus.Error("Error creating menu: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to create menu")
		return
	}

	h.successResponse(c, http.StatusCreated, "menu created", menu)
}

// UpdateMenu updates a menu's own fields
// @Summary Update menu
// @Tags Administration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Menu ID"
// @Param request body dto.MenuRequest true "Menu data"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /api/menus/{id} [put]
func (h *APIHandler) UpdateMenu(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var req dto.MenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	exists, err := h.Repository.MenuExists(c.Request.Context(), id)
	if err != nil || !exists {
		h.errorResponse(c, http.StatusNotFound, "menu not found")
		return
	}

	updates := map[string]interface{}{
		"title":      req.Title,
		"path":       req.Path,
		"sort_order": req.SortOrder,
	}
	if err := h.Repository.UpdateMenu(c.Request.Context(), id, updates); err != nil {
		logrus.Error("Error updating menu: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to update menu")
		return
	}

	h.successResponse(c, http.StatusOK, "menu updated", nil)
}

// DeleteMenu removes a menu and its submenus
// @Summary Delete menu
// @Tags Administration
// @Produce json
// @Security BearerAuth
// @Param id path int true "Menu ID"
// @Success 200 {object} dto.APIResponse
// @Router /api/menus/{id} [delete]
func (h *APIHandler) DeleteMenu(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repository.DeleteMenu(c.Request.Context(), id); err != nil {
		logrus.Error("Error deleting menu: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to delete menu")
		return
	}

	h.successResponse(c, http.StatusOK, "menu deleted", nil)
}

// ============ Roles and permissions ============

// ListRoles returns all roles
// @Summary List roles
// @Tags Administration
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /api/roles [get]
func (h *APIHandler) ListRoles(c *gin.Context) {
	roles, err := h.Repository.ListRoles(c.Request.Context())
	if err != nil {
		logrus.Error("Error listing roles: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to list roles")
		return
	}
	h.successResponse(c, http.StatusOK, "", roles)
}

// ListPermissions returns all role permission trees
// @Summary List permissions
// @Tags Administration
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /api/permissions [get]
func (h *APIHandler) ListPermissions(c *gin.Context) {
	perms, err := h.Repository.ListPermissions(c.Request.Context())
	if err != nil {
		logrus.Error("Error listing permissions: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to list permissions")
		return
	}
	h.successResponse(c, http.StatusOK, "", perms)
}

// GetPermission returns the permission tree for one role
// @Summary Get role permission
// @Tags Administration
// @Produce json
// @Security BearerAuth
// @Param roleId path int true "Role ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /api/permissions/{roleId} [get]
func (h *APIHandler) GetPermission(c *gin.Context) {
	roleID, err := parseRoleIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	perm, err := h.Repository.GetPermissionByRole(c.Request.Context(), roleID)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "no permissions configured for this role")
		return
	}
	h.successResponse(c, http.StatusOK, "", perm)
}

// UpsertPermission replaces the permission tree for a role
// @Summary Upsert role permission
// @Tags Administration
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param roleId path int true "Role ID"
// @Param request body dto.UpsertPermissionRequest true "Full menu access tree"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Router /api/permissions/{roleId} [put]
func (h *APIHandler) UpsertPermission(c *gin.Context) {
	roleID, err := parseRoleIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var req dto.UpsertPermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	accesses := make([]ds.MenuAccess, 0, len(req.MenusAccess))
	for _, ma := range req.MenusAccess {
		access := ds.MenuAccess{MenuID: ma.MenuID}
		for _, sm := range ma.SubMenus {
			access.SubMenus = append(access.SubMenus, ds.SubMenuAccess{SubMenuID: sm.SubMenuID})
		}
		accesses = append(accesses, access)
	}

	if err := h.Repository.UpsertPermission(c.Request.Context(), roleID, accesses); err != nil {
		logrus.Error("Error upserting permission: ", err)
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "permissions updated", nil)
}

func parseRoleIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("roleId"), 10, 32)
	if err != nil {
		return 0, errors.New("invalid roleId parameter")
	}
	return uint(id), nil
}

// ============ Transactions ============

// ListTransactions lists transactions; admins see all, users see their own
// @Summary List transactions
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (pending|completed|failed)"
// @Success 200 {object} dto.APIResponse
// @Router /api/transactions [get]
func (h *APIHandler) ListTransactions(c *gin.Context) {
	userID, userRole, err := middleware.UserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	var filterUser *uint
	if userRole != role.Admin {
		filterUser = &userID
	}

	txns, err := h.Repository.ListTransactions(c.Request.Context(), filterUser, c.Query("status"))
	if err != nil {
		logrus.Error("Error listing transactions: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to list transactions")
		return
	}

	resp := make([]dto.TransactionResponse, 0, len(txns))
	for _, t := range txns {
		resp = append(resp, transactionToDTO(&t))
	}
	h.successResponse(c, http.StatusOK, "", resp)
}

// GetTransaction returns one transaction; users can only read their own
// @Summary Get transaction
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /api/transactions/{id} [get]
func (h *APIHandler) GetTransaction(c *gin.Context) {
	userID, userRole, err := middleware.UserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	txn, err := h.Repository.GetTransactionByID(c.Request.Context(), id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "transaction not found")
		return
	}
	if userRole != role.Admin && txn.UserID != userID {
		h.errorResponse(c, http.StatusNotFound, "transaction not found")
		return
	}

	h.successResponse(c, http.StatusOK, "", transactionToDTO(txn))
}

// DeleteTransaction removes a ledger row, admin only
// @Summary Delete transaction
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /api/transactions/{id} [delete]
func (h *APIHandler) DeleteTransaction(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repository.DeleteTransaction(c.Request.Context(), id); err != nil {
		h.errorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	h.successResponse(c, http.StatusOK, "transaction deleted", nil)
}

func transactionToDTO(t *ds.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:                 t.ID,
		Type:               t.Type,
		Amount:             t.Amount,
		Status:             t.Status,
		PaymentReferenceID: t.PaymentReferenceID,
		PaymentMethod:      t.PaymentMethod,
		Description:        t.Description,
		CreatedAt:          t.CreatedAt,
		CompletedAt:        t.CompletedAt,
	}
}
