package handlers

import (
	"errors"

	"headless-cms/helper"
	"headless-cms/middleware"
	"headless-cms/models"
	"headless-cms/services"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"
)

type SiteHandler struct {
	siteService services.SiteService
	Helper      *helper.HTTPHelper
}

func NewSiteHandler(siteService services.SiteService, httpHelper *helper.HTTPHelper) *SiteHandler {
	return &SiteHandler{siteService: siteService, Helper: httpHelper}
}

func (h *SiteHandler) GetSettings(c *gin.Context) {
	settings, err := h.siteService.GetSettings()
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Success", settings)
}

func (h *SiteHandler) UpdateSettings(c *gin.Context) {
	var req models.UpdateSiteSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	if err := h.Helper.Validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			h.Helper.SendValidationError(c, validationErrors)
			return
		}
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	settings, err := h.siteService.UpdateSettings(req, middleware.IdentityFromContext(c))
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			h.Helper.SendUnauthorizedError(c, "Only admin can update site settings", h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Site settings updated successfully", settings)
}
