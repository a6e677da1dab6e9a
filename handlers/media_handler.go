package handlers

import (
	"errors"
	"strconv"

	"headless-cms/helper"
	"headless-cms/middleware"
	"headless-cms/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MediaHandler struct {
	mediaService services.MediaService
	Helper       *helper.HTTPHelper
}

func NewMediaHandler(mediaService services.MediaService, httpHelper *helper.HTTPHelper) *MediaHandler {
	return &MediaHandler{mediaService: mediaService, Helper: httpHelper}
}

// Upload expects a multipart form with a "file" part and an "alt" field.
func (h *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.Helper.SendBadRequest(c, "A file upload is required", h.Helper.EmptyJsonMap())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.Helper.SendBadRequest(c, "Unable to read uploaded file", h.Helper.EmptyJsonMap())
		return
	}
	defer file.Close()

	input := services.UploadMediaInput{
		FileName: fileHeader.Filename,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Size:     fileHeader.Size,
		Alt:      c.PostForm("alt"),
	}

	media, err := h.mediaService.Upload(c.Request.Context(), input, file, middleware.IdentityFromContext(c))
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			h.Helper.SendUnauthorizedError(c, "Only admin can upload media", h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Media uploaded successfully", media)
}

func (h *MediaHandler) GetMedia(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid media ID", h.Helper.EmptyJsonMap())
		return
	}

	media, err := h.mediaService.GetMedia(uint(id))
	if err != nil {
		h.Helper.SendNotFoundError(c, "Media not found", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", media)
}

func (h *MediaHandler) ListMedia(c *gin.Context) {
	media, err := h.mediaService.ListMedia()
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Success", media)
}

func (h *MediaHandler) UpdateAlt(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid media ID", h.Helper.EmptyJsonMap())
		return
	}

	var req struct {
		Alt string `json:"alt"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	media, err := h.mediaService.UpdateAlt(uint(id), req.Alt, middleware.IdentityFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrForbidden):
			h.Helper.SendUnauthorizedError(c, "Only admin can update media", h.Helper.EmptyJsonMap())
		case errors.Is(err, gorm.ErrRecordNotFound):
			h.Helper.SendNotFoundError(c, "Media not found", h.Helper.EmptyJsonMap())
		default:
			h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		}
		return
	}

	h.Helper.SendSuccess(c, "Media updated successfully", media)
}

func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid media ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.mediaService.Delete(c.Request.Context(), uint(id), middleware.IdentityFromContext(c)); err != nil {
		switch {
		case errors.Is(err, services.ErrForbidden):
			h.Helper.SendUnauthorizedError(c, "Only admin can delete media", h.Helper.EmptyJsonMap())
		case errors.Is(err, gorm.ErrRecordNotFound):
			h.Helper.SendNotFoundError(c, "Media not found", h.Helper.EmptyJsonMap())
		default:
			h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		}
		return
	}

	h.Helper.SendSuccess(c, "Media deleted successfully", h.Helper.EmptyJsonMap())
}
