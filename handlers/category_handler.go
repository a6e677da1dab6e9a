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

type CategoryHandler struct {
	categoryService services.CategoryService
	Helper          *helper.HTTPHelper
}

func NewCategoryHandler(categoryService services.CategoryService, httpHelper *helper.HTTPHelper) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, Helper: httpHelper}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	category, err := h.categoryService.CreateCategory(req, middleware.IdentityFromContext(c))
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			h.Helper.SendUnauthorizedError(c, "Only admin can create categories", h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Category created successfully", category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid category ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	category, err := h.categoryService.UpdateCategory(uint(id), req, middleware.IdentityFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrForbidden):
			h.Helper.SendUnauthorizedError(c, "Only admin can update categories", h.Helper.EmptyJsonMap())
		case errors.Is(err, gorm.ErrRecordNotFound):
			h.Helper.SendNotFoundError(c, "Category not found", h.Helper.EmptyJsonMap())
		default:
			h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		}
		return
	}

	h.Helper.SendSuccess(c, "Category updated successfully", category)
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.GetCategories()
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Success", categories)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid category ID", h.Helper.EmptyJsonMap())
		return
	}

	category, err := h.categoryService.GetCategory(uint(id))
	if err != nil {
		h.Helper.SendNotFoundError(c, "Category not found", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid category ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.categoryService.DeleteCategory(uint(id), middleware.IdentityFromContext(c)); err != nil {
		switch {
		case errors.Is(err, services.ErrForbidden):
			h.Helper.SendUnauthorizedError(c, "Only admin can delete categories", h.Helper.EmptyJsonMap())
		case errors.Is(err, gorm.ErrRecordNotFound):
			h.Helper.SendNotFoundError(c, "Category not found", h.Helper.EmptyJsonMap())
		default:
			h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		}
		return
	}

	h.Helper.SendSuccess(c, "Category deleted successfully", h.Helper.EmptyJsonMap())
}
