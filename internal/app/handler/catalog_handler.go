package handler

import (
	"net/http"

	"adagency/internal/app/ds"
	"adagency/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ Services catalog ============

// ListServices returns all services with their package tiers
// @Summary List services
// @Tags Catalog
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /api/services [get]
func (h *APIHandler) ListServices(c *gin.Context) {
	services, err := h.Repository.ListServices(c.Request.Context())
	if err != nil {
		logrus.Error("Error listing services: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to list services")
		return
	}
	h.successResponse(c, http.StatusOK, "", services)
}

// GetService returns one service with its packages
// @Summary Get service
// @Tags Catalog
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /api/services/{id} [get]
func (h *APIHandler) GetService(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	service, err := h.Repository.GetServiceByID(c.Request.Context(), id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "service not found")
		return
	}
	h.successResponse(c, http.StatusOK, "", service)
}

// CreateService adds a service with package tiers
// @Summary Create service
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateServiceRequest true "Service data"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Router /api/services [post]
func (h *APIHandler) CreateService(c *gin.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	service := serviceFromRequest(req)
	if err := h.Repository.CreateService(c.Request.Context(), service); err != nil {
		logrus.Error("Error creating service: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to create service")
		return
	}

	h.successResponse(c, http.StatusCreated, "service created", service)
}

// UpdateService replaces a service and its package tiers
// @Summary Update service
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Param request body dto.CreateServiceRequest true "Service data"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Router /api/services/{id} [put]
func (h *APIHandler) UpdateService(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.Repository.GetServiceByID(c.Request.Context(), id); err != nil {
		h.errorResponse(c, http.StatusNotFound, "service not found")
		return
	}

	service := serviceFromRequest(req)
	service.ID = id
	if err := h.Repository.UpdateService(c.Request.Context(), service); err != nil {
		logrus.Error("Error updating service: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to update service")
		return
	}

	h.successResponse(c, http.StatusOK, "service updated", nil)
}

// DeleteService removes a service and its packages
// @Summary Delete service
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service ID"
// @Success 200 {object} dto.APIResponse
// @Router /api/services/{id} [delete]
func (h *APIHandler) DeleteService(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repository.DeleteService(c.Request.Context(), id); err != nil {
		logrus.Error("Error deleting service: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to delete service")
		return
	}

	h.successResponse(c, http.StatusOK, "service deleted", nil)
}

func serviceFromRequest(req dto.CreateServiceRequest) *ds.Service {
	service := &ds.Service{
		ServiceTitle: req.ServiceTitle,
		ServiceIcon:  req.ServiceIcon,
	}
	for _, p := range req.Packages {
		service.Packages = append(service.Packages, ds.ServicePackage{
			PackageTitle: p.PackageTitle,
			Price:        p.Price,
			Features:     p.Features,
		})
	}
	return service
}

// ============ Hosting packages ============

// ListHostingPackages returns all hosting packages
// @Summary List hosting packages
// @Tags Catalog
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /api/hosting-packages [get]
func (h *APIHandler) ListHostingPackages(c *gin.Context) {
	packages, err := h.Repository.ListHostingPackages(c.Request.Context())
	if err != nil {
		logrus.Error("Error listing hosting packages: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to list hosting packages")
		return
	}
	h.successResponse(c, http.StatusOK, "", packages)
}

// GetHostingPackage returns one hosting package
// @Summary Get hosting package
// @Tags Catalog
// @Produce json
// @Param id path int true "Hosting package ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /api/hosting-packages/{id} [get]
func (h *APIHandler) GetHostingPackage(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	pkg, err := h.Repository.GetHostingPackageByID(c.Request.Context(), id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "hosting package not found")
		return
	}
	h.successResponse(c, http.StatusOK, "", pkg)
}

// CreateHostingPackage adds a hosting package
// @Summary Create hosting package
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.HostingPackageRequest true "Hosting package data"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Router /api/hosting-packages [post]
func (h *APIHandler) CreateHostingPackage(c *gin.Context) {
	var req dto.HostingPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	pkg := &ds.HostingPackage{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Features:    req.Features,
	}
	if err := h.Repository.CreateHostingPackage(c.Request.Context(), pkg); err != nil {
		logrus.Error("Error creating hosting package: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to create hosting package")
		return
	}

	h.successResponse(c, http.StatusCreated, "hosting package created", pkg)
}

// UpdateHostingPackage updates a hosting package
// @Summary Update hosting package
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hosting package ID"
// @Param request body dto.HostingPackageRequest true "Hosting package data"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /api/hosting-packages/{id} [put]
func (h *APIHandler) UpdateHostingPackage(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var req dto.HostingPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	pkg, err := h.Repository.GetHostingPackageByID(c.Request.Context(), id)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "hosting package not found")
		return
	}

	pkg.Name = req.Name
	pkg.Description = req.Description
	pkg.Price = req.Price
	pkg.Features = req.Features
	if err := h.Repository.UpdateHostingPackage(c.Request.Context(), pkg); err != nil {
		logrus.Error("Error updating hosting package: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to update hosting package")
		return
	}

	h.successResponse(c, http.StatusOK, "hosting package updated", pkg)
}

// DeleteHostingPackage removes a hosting package
// @Summary Delete hosting package
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hosting package ID"
// @Success 200 {object} dto.APIResponse
// @Router /api/hosting-packages/{id} [delete]
func (h *APIHandler) DeleteHostingPackage(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repository.DeleteHostingPackage(c.Request.Context(), id); err != nil {
		logrus.Error("Error deleting hosting package: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to delete hosting package")
		return
	}

	h.successResponse(c, http.StatusOK, "hosting package deleted", nil)
}
