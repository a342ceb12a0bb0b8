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

type StateHandler struct {
	DB *gorm.DB
}

type createStateRequest struct {
	CountryID uuid.UUID `json:"country_id" binding:"required"`
	Name      string    `json:"state_name" binding:"required,min=2,max=100"`
	ShortName string    `json:"short_name" binding:"required,max=10"`
	GST       string    `json:"gst" binding:"max=20"`
}

// CreateState adds a state under an existing country.
func (h *StateHandler) CreateState(c *gin.Context) {
	var req createStateRequest
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

	state := models.State{
		CountryID: req.CountryID,
		Name:      req.Name,
		ShortName: req.ShortName,
		GST:       req.GST,
	}

	result := tx.Create(&state)
	if result.Error != nil {
		tx.Rollback()
		respond(c, utils.InternalErrorResponse(result.Error))
		return
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		respond(c, utils.ErrorResponse(http.StatusBadRequest, "STATE_CREATION_FAILED"))
		return
	}

	if err := tx.Commit().Error; err != nil {
		respond(c, utils.InternalErrorResponse(err))
		return
	}

	respond(c, utils.SuccessResponse("STATE_CREATED_SUCCESSFULLY", state))
}

// GetStates lists the states of one country, joined with the country name.
func (h *StateHandler) GetStates(c *gin.Context) {
	countryID, err := uuid.Parse(c.Query("country_id"))
	if err != nil {
		respond(c, utils.Response{StatusCode: http.StatusBadRequest, Message: "country_id is required and must be a valid id"})
		return
	}

	var states []models.State
	if err := h.DB.
		Where("country_id = ?", countryID).
		Preload("Country", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Find(&states).Error; err != nil {
		respond(c, utils.InternalErrorResponse(err))
		return
	}

	if len(states) == 0 {
		respond(c, utils.ErrorResponse(http.StatusBadRequest, "NO_STATE_PRESENT"))
		return
	}

	respond(c, utils.SuccessResponse("STATES_ARE_PRESENT", states))
}

// GroupedStates is one entry of the grouped-states view: a country with its
// de-duplicated state and short names in first-seen order.
type GroupedStates struct {
	Country    string   `json:"country"`
	States     []string `json:"states"`
	ShortNames []string `json:"shortnames"`
}

// GetGroupedStates fetches every state joined with its country name and
// groups them per country. Pure in-memory transform after the fetch.
func (h *StateHandler) GetGroupedStates(c *gin.Context) {
	var states []models.State
	if err := h.DB.
		Preload("Country", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Find(&states).Error; err != nil {
		respond(c, utils.InternalErrorResponse(err))
		return
	}

	if len(states) == 0 {
		respond(c, utils.ErrorResponse(http.StatusBadRequest, "NO_STATE_PRESENT"))
		return
	}

	respond(c, utils.SuccessResponse("STATES_ARE_PRESENT", groupStatesByCountry(states)))
}

// groupStatesByCountry groups states per country name, preserving first-seen
// country order and collapsing duplicate state/short names while keeping
// their insertion order.
func groupStatesByCountry(states []models.State) []GroupedStates {
	groups := []GroupedStates{}
	index := make(map[string]int)
	seenStates := make(map[string]map[string]bool)
	seenShort := make(map[string]map[string]bool)

	for _, s := range states {
		if s.Country == nil {
			continue
		}
		country := s.Country.Name

		i, ok := index[country]
		if !ok {
			i = len(groups)
			index[country] = i
			groups = append(groups, GroupedStates{
				Country:    country,
				States:     []string{},
				ShortNames: []string{},
			})
			seenStates[country] = make(map[string]bool)
			seenShort[country] = make(map[string]bool)
		}

		if s.Name != "" && !seenStates[country][s.Name] {
			seenStates[country][s.Name] = true
			groups[i].States = append(groups[i].States, s.Name)
		}
		if s.ShortName != "" && !seenShort[country][s.ShortName] {
			seenShort[country][s.ShortName] = true
			groups[i].ShortNames = append(groups[i].ShortNames, s.ShortName)
		}
	}

	return groups
}
