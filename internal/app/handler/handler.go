package handler

import (
	"net/http"

	"adagency/internal/app/checkout"
	"adagency/internal/app/config"
	"adagency/internal/app/domaincheck"
	"adagency/internal/app/dto"
	"adagency/internal/app/repository"
	"adagency/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// APIHandler carries the shared dependencies for all REST handlers.
type APIHandler struct {
	Repository  *repository.Repository
	Media       *storage.MediaStore
	Checker     *domaincheck.Checker
	Checkout    *checkout.Orchestrator
	AuthHandler *AuthHandler
	Config      *config.Config
}

func NewAPIHandler(
	r *repository.Repository,
	media *storage.MediaStore,
	checker *domaincheck.Checker,
	orchestrator *checkout.Orchestrator,
	authHandler *AuthHandler,
	cfg *config.Config,
) *APIHandler {
	return &APIHandler{
		Repository:  r,
		Media:       media,
		Checker:     checker,
		Checkout:    orchestrator,
		AuthHandler: authHandler,
		Config:      cfg,
	}
}

// ============ Response helpers ============

func (h *APIHandler) errorResponse(c *gin.Context, statusCode int, message string) {
	logrus.Error(message)
	c.JSON(statusCode, dto.APIResponse{
		Success: false,
		Message: message,
	})
}

func (h *APIHandler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Ping checks that the API is up
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
