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

type CountryHandler struct {
	DB      *gorm.DB
	Storage firebase.StorageClient
}

// CreateCountry adds a country with its flag image. The flag is uploaded
// before the transaction opens so a slow or failed upload never holds a
// transaction; the duplicate check is repeated inside the transaction so the
// uniqueness invariant is verified under the same transaction as the insert.
func (h *CountryHandler) CreateCountry(c *gin.Context) {
	name := utils.TitleCaseName(c.PostForm("name"))
	if name == "" {
		respond(c, utils.Response{StatusCode: http.StatusBadRequest, Message: "name is required"})
		return
	}

	// Fail fast on duplicates before paying for the upload.
	var existing models.Country
	if err := h.DB.Where("name = ?", name).First(&existing).Error; err == nil {
		respond(c, utils.ErrorResponse(http.StatusBadRequest, "COUNTRY_ALREADY_EXISTS"))
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		respond(c, utils.InternalErrorResponse(err))
		return
	}

	fileHeader, err := c.FormFile("flag")
	if err != nil {
		respond(c, utils.ErrorResponse(http.StatusBadRequest, "FLAG_IMAGE_REQUIRED"))
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

	flagURL, err := h.Storage.UploadCountryFlag(
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

	var dup models.Country
	if err := tx.Where("name = ?", name).First(&dup).Error; err == nil {
		tx.Rollback()
		respond(c, utils.ErrorResponse(http.StatusBadRequest, "COUNTRY_ALREADY_EXISTS"))
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		respond(c, utils.InternalErrorResponse(err))
		return
	}

	country := models.Country{
		Name: name,
		Flag: flagURL,
	}

	result := tx.Create(&country)
	if result.Error != nil {
		tx.Rollback()
		respond(c, utils.InternalErrorResponse(result.Error))
		return
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		respond(c, utils.ErrorResponse(http.StatusBadRequest, "FAILED_TO_CREATE_COUNTRY"))
		return
	}

	if err := tx.Commit().Error; err != nil {
		respond(c, utils.InternalErrorResponse(err))
		return
	}

	respond(c, utils.SuccessResponse("COUNTRY_CREATED_SUCCESSFULLY", country))
}

// GetCountries lists all countries. Zero rows is reported as an error
// envelope, not an empty success.
func (h *CountryHandler) GetCountries(c *gin.Context) {
	var countries []models.Country
	if err := h.DB.Find(&countries).Error; err != nil {
		respond(c, utils.InternalErrorResponse(err))
		return
	}

	if len(countries) == 0 {
		respond(c, utils.ErrorResponse(http.StatusBadRequest, "NO_COUNTRY_FOUND"))
		return
	}

	respond(c, utils.SuccessResponse("COUNTRY_FOUND", countries))
}
