package handlers

import (
	"errors"
	"strconv"

	"headless-cms/helper"
	"headless-cms/middleware"
	"headless-cms/models"
	"headless-cms/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PageHandler struct {
	pageService services.PageService
	Helper      *helper.HTTPHelper
}

func NewPageHandler(pageService services.PageService, httpHelper *helper.HTTPHelper) *PageHandler {
	return &PageHandler{pageService: pageService, Helper: httpHelper}
}

func (h *PageHandler) CreatePage(c *gin.Context) {
	var req models.CreatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	page, err := h.pageService.CreatePage(req, middleware.IdentityFromContext(c))
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			h.Helper.SendUnauthorizedError(c, "Only admin can create pages", h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Page created successfully", page)
}

func (h *PageHandler) UpdatePage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid page ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	page, err := h.pageService.UpdatePage(uint(id), req, middleware.IdentityFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrForbidden):
			h.Helper.SendUnauthorizedError(c, "Only admin can update pages", h.Helper.EmptyJsonMap())
		case errors.Is(err, gorm.ErrRecordNotFound):
			h.Helper.SendNotFoundError(c, "Page not found", h.Helper.EmptyJsonMap())
		default:
			h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		}
		return
	}

	h.Helper.SendSuccess(c, "Page updated successfully", page)
}

func (h *PageHandler) GetPages(c *gin.Context) {
	pages, err := h.pageService.GetPages()
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Success", pages)
}

func (h *PageHandler) GetPage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid page ID", h.Helper.EmptyJsonMap())
		return
	}

	page, err := h.pageService.GetPage(uint(id))
	if err != nil {
		h.Helper.SendNotFoundError(c, "Page not found", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", page)
}

func (h *PageHandler) GetPublicPage(c *gin.Context) {
	page, err := h.pageService.GetPageBySlug(c.Param("slug"))
	if err != nil {
		h.Helper.SendNotFoundError(c, "Page not found", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", page)
}

func (h *PageHandler) DeletePage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid page ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.pageService.DeletePage(uint(id), middleware.IdentityFromContext(c)); err != nil {
		switch {
		case errors.Is(err, services.ErrForbidden):
			h.Helper.SendUnauthorizedError(c, "Only admin can delete pages", h.Helper.EmptyJsonMap())
		case errors.Is(err, gorm.ErrRecordNotFound):
			h.Helper.SendNotFoundError(c, "Page not found", h.Helper.EmptyJsonMap())
		default:
			h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		}
		return
	}

	h.Helper.SendSuccess(c, "Page deleted successfully", h.Helper.EmptyJsonMap())
}
