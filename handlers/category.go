package handlers

import (
	"errors"
	"net/http"

	"atlas-backend/firebase"
	"atlas-backend/models"
	"atlas-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryHandler struct {
	DB      *gorm.DB
	Storage firebase.StorageClient
}

// CreateCategory adds a category with its icon image. The stored name is
// title-cased; the slug is derived from the raw name. Same upload-then-
// transaction ordering as CreateCountry.
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	rawName := c.PostForm("name")
	name := utils.TitleCaseName(rawName)
	if name == "" {
		respond(c, utils.Response{StatusCode: http.StatusBadRequest, Message: "name is required"})
		return
	}
	slug := utils.Slugify(rawName)

	var existing models.Category
	if err := h.DB.Where("name = ?", name).First(&existing).Error; err == nil {
		respond(c, utils.ErrorResponse(http.StatusBadRequest, "CATEGORY_ALREADY_EXISTS"))
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		respond(c, utils.InternalErrorResponse(err))
		return
	}

	fileHeader, err := c.FormFile("icon")
	if err != nil {
		respond(c, utils.ErrorResponse(http.StatusBadRequest, "ICON_IMAGE_REQUIRED"))
		return
	}
	if err := utils.ValidateImageUpload(fileHeader); err != nil {
		respond(c, utils.Response{StatusCode: http.StatusBadRequest, Message: err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond(c, utils.InternalErrorResponse(err))
		return
	}
	defer file.Close()

	iconURL, err := h.Storage.UploadCategoryIcon(
		file,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		respond(c, utils.InternalErrorResponse(err))
		return
	}

	tx := h.DB.Begin()
	if tx.Error != nil {
		respond(c, utils.InternalErrorResponse(tx.Error))
		return
	}

	var dup models.Category
	if err := tx.Where("name = ?", name).First(&dup).Error; err == nil {
		tx.Rollback()
		respond(c, utils.ErrorResponse(http.StatusBadRequest, "CATEGORY_ALREADY_EXISTS"))
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		respond(c, utils.InternalErrorResponse(err))
		return
	}

	category := models.Category{
		Name: name,
		Slug: slug,
		Icon: iconURL,
	}

	result := tx.Create(&category)
	if result.Error != nil {
		tx.Rollback()
		respond(c, utils.InternalErrorResponse(result.Error))
		return
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		respond(c, utils.ErrorResponse(http.StatusBadRequest, "FAILED_TO_CREATE_CATEGORY"))
		return
	}

	if err := tx.Commit().Error; err != nil {
		respond(c, utils.InternalErrorResponse(err))
		return
	}

	respond(c, utils.SuccessResponse("CATEGORY_CREATED_SUCCESSFULLY", category))
}

// GetCategories lists all categories with their subcategories preloaded.
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	var categories []models.Category
	if err := h.DB.Preload("Subcategories").Find(&categories).Error; err != nil {
		respond(c, utils.InternalErrorResponse(err))
		return
	}

	if len(categories) == 0 {
		respond(c, utils.ErrorResponse(http.StatusBadRequest, "CATEGORY_NOT_FOUND"))
		return
	}

	respond(c, utils.SuccessResponse("CATEGORY_FOUND", categories))
}
