package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"atlas-backend/models"

	"github.com/google/uuid"
)

func TestCreateCity(t *testing.T) {
	db := freshDB()
	router := setupCityRouter(db)

	_, adminToken := seedTestUser(db, "admin@test.com", "admin")
	country := seedCountry(db, "India")
	state := seedState(db, country.ID, "Maharashtra", "MH")

	body := map[string]interface{}{
		"country_id": country.ID,
		"state_id":   state.ID,
		"city_name":  "Mumbai",
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/admin/cities", body, adminToken))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["message"] != "City created successfully" {
		t.Errorf("unexpected message: %v", resp["message"])
	}

	var city models.City
	if err := db.Where("city_name = ?", "Mumbai").First(&city).Error; err != nil {
		t.Fatalf("expected city in database: %v", err)
	}
	if city.StateID != state.ID {
		t.Errorf("expected city linked to state %s, got %s", state.ID, city.StateID)
	}
}

func TestCreateCityMissingCountry(t *testing.T) {
	db := freshDB()
	router := setupCityRouter(db)

	_, adminToken := seedTestUser(db, "admin@test.com", "admin")

	body := map[string]interface{}{
		"country_id": uuid.New(),
		"state_id":   uuid.New(),
		"city_name":  "Mumbai",
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/admin/cities", body, adminToken))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["message"] != "Country not present" {
		t.Errorf("unexpected message: %v", resp["message"])
	}
}

func TestCreateCityStateOfOtherCountry(t *testing.T) {
	db := freshDB()
	router := setupCityRouter(db)

	_, adminToken := seedTestUser(db, "admin@test.com", "admin")
	india := seedCountry(db, "India")
	australia := seedCountry(db, "Australia")
	victoria := seedState(db, australia.ID, "Victoria", "VIC")

	// Victoria exists but does not belong to India
	body := map[string]interface{}{
		"country_id": india.ID,
		"state_id":   victoria.ID,
		"city_name":  "Melbourne",
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/admin/cities", body, adminToken))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["message"] != "State not found for the given country" {
		t.Errorf("unexpected message: %v", resp["message"])
	}

	var count int64
	db.Model(&models.City{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no city rows, got %d", count)
	}
}

func TestGetCitiesEmpty(t *testing.T) {
	db := freshDB()
	router := setupCityRouter(db)

	country := seedCountry(db, "India")
	state := seedState(db, country.ID, "Maharashtra", "MH")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET",
		fmt.Sprintf("/api/cities?country_id=%s&state_id=%s", country.ID, state.ID), nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["message"] != "No cities present" {
		t.Errorf("unexpected message: %v", resp["message"])
	}
}

func TestGetCitiesJoined(t *testing.T) {
	db := freshDB()
	router := setupCityRouter(db)

	country := seedCountry(db, "India")
	state := seedState(db, country.ID, "Maharashtra", "MH")
	seedCity(db, country.ID, state.ID, "Mumbai")
	seedCity(db, country.ID, state.ID, "Pune")

	// City in a different state of the same country must not leak in
	goa := seedState(db, country.ID, "Goa", "GA")
	seedCity(db, country.ID, goa.ID, "Panaji")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET",
		fmt.Sprintf("/api/cities?country_id=%s&state_id=%s", country.ID, state.ID), nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["message"] != "Cities found" {
		t.Errorf("unexpected message: %v", resp["message"])
	}

	data, ok := resp["data"].([]interface{})
	if !ok {
		t.Fatal("expected data array in response")
	}
	if len(data) != 2 {
		t.Fatalf("expected 2 cities, got %d", len(data))
	}

	first := data[0].(map[string]interface{})
	joinedState, ok := first["state"].(map[string]interface{})
	if !ok {
		t.Fatal("expected joined state in city")
	}
	if joinedState["state_name"] != "Maharashtra" {
		t.Errorf("expected joined state 'Maharashtra', got %v", joinedState["state_name"])
	}
}

func TestGetCitiesStateMismatch(t *testing.T) {
	db := freshDB()
	router := setupCityRouter(db)

	india := seedCountry(db, "India")
	australia := seedCountry(db, "Australia")
	victoria := seedState(db, australia.ID, "Victoria", "VIC")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET",
		fmt.Sprintf("/api/cities?country_id=%s&state_id=%s", india.ID, victoria.ID), nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["message"] != "State not found for the given country" {
		t.Errorf("unexpected message: %v", resp["message"])
	}
}
