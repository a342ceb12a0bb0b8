package handlers

import (
	"errors"
	"net/http"

	"atlas-backend/models"
	"atlas-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CityHandler struct {
	DB *gorm.DB
}

type createCityRequest struct {
	CountryID uuid.UUID `json:"country_id" binding:"required"`
	StateID   uuid.UUID `json:"state_id" binding:"required"`
	Name      string    `json:"city_name" binding:"required,min=2,max=100"`
}

// CreateCity adds a city under an existing country and state. The state must
// belong to the given country, not just exist.
func (h *CityHandler) CreateCity(c *gin.Context) {
	var req createCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, utils.ValidationErrorResponse(err))
		return
	}

	tx := h.DB.Begin()
	if tx.Error != nil {
		respond(c, utils.InternalErrorResponse(tx.Error))
		return
	}

	var country models.Country
	if err := tx.Where("id = ?", req.CountryID).First(&country).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond(c, utils.ErrorResponse(http.StatusBadRequest, "COUNTRY_NOT_PRESENT"))
			return
		}
		respond(c, utils.InternalErrorResponse(err))
		return
	}

	var state models.State
	if err := tx.Where("id = ? AND country_id = ?", req.StateID, req.CountryID).First(&state).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond(c, utils.ErrorResponse(http.StatusBadRequest, "STATE_NOT_FOUND_FOR_COUNTRY"))
			return
		}
		respond(c, utils.InternalErrorResponse(err))
		return
	}

	city := models.City{
		CountryID: req.CountryID,
		StateID:   req.StateID,
		Name:      req.Name,
	}

	result := tx.Create(&city)
	if result.Error != nil {
		tx.Rollback()
		respond(c, utils.InternalErrorResponse(result.Error))
		return
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		respond(c, utils.ErrorResponse(http.StatusBadRequest, "UNABLE_TO_ADD_CITY"))
		return
	}

	if err := tx.Commit().Error; err != nil {
		respond(c, utils.InternalErrorResponse(err))
		return
	}

	respond(c, utils.SuccessResponse("CITY_CREATED_SUCCESSFULLY", city))
}

// GetCities lists the cities of one state within one country, joined with
// the country and state names.
func (h *CityHandler) GetCities(c *gin.Context) {
	countryID, err := uuid.Parse(c.Query("country_id"))
	if err != nil {
		respond(c, utils.Response{StatusCode: http.StatusBadRequest, Message: "country_id is required and must be a valid id"})
		return
	}
	stateID, err := uuid.Parse(c.Query("state_id"))
	if err != nil {
		respond(c, utils.Response{StatusCode: http.StatusBadRequest, Message: "state_id is required and must be a valid id"})
		return
	}

	var country models.Country
	if err := h.DB.Where("id = ?", countryID).First(&country).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond(c, utils.ErrorResponse(http.StatusBadRequest, "COUNTRY_NOT_PRESENT"))
			return
		}
		respond(c, utils.InternalErrorResponse(err))
		return
	}

	var state models.State
	if err := h.DB.Where("id = ? AND country_id = ?", stateID, countryID).First(&state).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respond(c, utils.ErrorResponse(http.StatusBadRequest, "STATE_NOT_FOUND_FOR_COUNTRY"))
			return
		}
		respond(c, utils.InternalErrorResponse(err))
		return
	}

	var cities []models.City
	if err := h.DB.
		Where("country_id = ? AND state_id = ?", countryID, stateID).
		Preload("Country", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Preload("State", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "state_name")
		}).
		Find(&cities).Error; err != nil {
		respond(c, utils.InternalErrorResponse(err))
		return
	}

	if len(cities) == 0 {
		respond(c, utils.ErrorResponse(http.StatusBadRequest, "NO_CITIES_PRESENT"))
		return
	}

	respond(c, utils.SuccessResponse("CITIES_FOUND", cities))
}
