package handlers

import (
	"errors"
	"net/http"

	"atlas-backend/firebase"
	"atlas-backend/models"
	"atlas-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubcategoryHandler struct {
	DB      *gorm.DB
	Storage firebase.StorageClient
}

// CreateSubcategory adds a subcategory with its icon image under an existing
// category.
func (h *SubcategoryHandler) CreateSubcategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.PostForm("category_id"))
	if err != nil {
		respond(c, utils.Response{StatusCode: http.StatusBadRequest, Message: "category_id is required and must be a valid id"})
		return
	}
	name := c.PostForm("sub_category_name")
	if name == "" {
		respond(c, utils.Response{StatusCode: http.StatusBadRequest, Message: "sub_category_name is required"})
		return
	}

	// Fail fast on a missing parent before paying for the upload.
	var category models.Category
	if err := h.DB.Where("id = ?", categoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond(c, utils.ErrorResponse(http.StatusBadRequest, "CATEGORY_NOT_FOUND"))
			return
		}
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

	iconURL, err := h.Storage.UploadSubcategoryIcon(
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

	// Re-check the parent under the same transaction as the insert.
	var parent models.Category
	if err := tx.Where("id = ?", categoryID).First(&parent).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond(c, utils.ErrorResponse(http.StatusBadRequest, "CATEGORY_NOT_FOUND"))
			return
		}
		respond(c, utils.InternalErrorResponse(err))
		return
	}

	subcategory := models.Subcategory{
		CategoryID: categoryID,
		Name:       name,
		Icon:       iconURL,
	}

	result := tx.Create(&subcategory)
	if result.Error != nil {
		tx.Rollback()
		respond(c, utils.InternalErrorResponse(result.Error))
		return
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		respond(c, utils.ErrorResponse(http.StatusBadRequest, "SUBCATEGORY_CREATION_FAILED"))
		return
	}

	if err := tx.Commit().Error; err != nil {
		respond(c, utils.InternalErrorResponse(err))
		return
	}

	respond(c, utils.SuccessResponse("SUBCATEGORY_CREATED_SUCCESSFULLY", subcategory))
}

// DeleteSubcategory removes a subcategory addressed by its
// (category_id, subcategory_id) composite. The icon object is deleted from
// storage only after the row delete commits, so a storage failure can never
// contradict the database.
func (h *SubcategoryHandler) DeleteSubcategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("category_id"))
	if err != nil {
		respond(c, utils.Response{StatusCode: http.StatusBadRequest, Message: "category_id must be a valid id"})
		return
	}
	subcategoryID, err := uuid.Parse(c.Param("subcategory_id"))
	if err != nil {
		respond(c, utils.Response{StatusCode: http.StatusBadRequest, Message: "subcategory_id must be a valid id"})
		return
	}

	tx := h.DB.Begin()
	if tx.Error != nil {
		respond(c, utils.InternalErrorResponse(tx.Error))
		return
	}

	var subcategory models.Subcategory
	if err := tx.Where("id = ? AND category_id = ?", subcategoryID, categoryID).First(&subcategory).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond(c, utils.ErrorResponse(http.StatusNotFound, "SUBCATEGORY_NOT_FOUND"))
			return
		}
		respond(c, utils.InternalErrorResponse(err))
		return
	}

	result := tx.Where("id = ? AND category_id = ?", subcategoryID, categoryID).Delete(&models.Subcategory{})
	if result.Error != nil {
		tx.Rollback()
		respond(c, utils.InternalErrorResponse(result.Error))
		return
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		respond(c, utils.ErrorResponse(http.StatusBadRequest, "SUBCATEGORY_DELETION_FAILED"))
		return
	}

	if err := tx.Commit().Error; err != nil {
		respond(c, utils.InternalErrorResponse(err))
		return
	}

	// Best-effort icon cleanup after commit.
	if subcategory.Icon != "" {
		if objectPath, pathErr := utils.ExtractObjectPath(subcategory.Icon); pathErr == nil {
			_ = h.Storage.DeleteFile(objectPath)
		}
	}

	respond(c, utils.SuccessResponse("SUBCATEGORY_DELETED_SUCCESSFULLY", nil))
}
