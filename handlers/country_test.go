package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"atlas-backend/models"
)

func TestCreateCountryNormalizesName(t *testing.T) {
	db := freshDB()
	storage := newMockStorage()
	router := setupCountryRouter(db, storage)

	_, adminToken := seedTestUser(db, "admin@test.com", "admin")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest("POST", "/api/admin/countries",
		map[string]string{"name": "  iNDIA "},
		map[string]string{"flag": "flag.jpg"},
		adminToken))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["message"] != "Country created successfully" {
		t.Errorf("unexpected message: %v", resp["message"])
	}

	var country models.Country
	if err := db.Where("name = ?", "India").First(&country).Error; err != nil {
		t.Fatalf("expected normalized country 'India' in database: %v", err)
	}
	if country.Flag == "" {
		t.Error("expected flag URL to be stored")
	}
}

func TestCreateCountryDuplicateAcrossCasing(t *testing.T) {
	db := freshDB()
	storage := newMockStorage()
	router := setupCountryRouter(db, storage)

	_, adminToken := seedTestUser(db, "admin@test.com", "admin")
	seedCountry(db, "India")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest("POST", "/api/admin/countries",
		map[string]string{"name": "india"},
		map[string]string{"flag": "flag.jpg"},
		adminToken))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["message"] != "Country already exists" {
		t.Errorf("unexpected message: %v", resp["message"])
	}

	// Duplicate is rejected before the upload happens
	if storage.UploadCallCount != 0 {
		t.Errorf("expected no upload for duplicate country, got %d calls", storage.UploadCallCount)
	}

	var count int64
	db.Model(&models.Country{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 country row, got %d", count)
	}
}

func TestCreateCountryMissingFlag(t *testing.T) {
	db := freshDB()
	storage := newMockStorage()
	router := setupCountryRouter(db, storage)

	_, adminToken := seedTestUser(db, "admin@test.com", "admin")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest("POST", "/api/admin/countries",
		map[string]string{"name": "India"},
		nil,
		adminToken))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["message"] != "Flag image is required" {
		t.Errorf("unexpected message: %v", resp["message"])
	}

	var count int64
	db.Model(&models.Country{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no country rows, got %d", count)
	}
}

func TestCreateCountryRejectsBadExtension(t *testing.T) {
	db := freshDB()
	storage := newMockStorage()
	router := setupCountryRouter(db, storage)

	_, adminToken := seedTestUser(db, "admin@test.com", "admin")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest("POST", "/api/admin/countries",
		map[string]string{"name": "India"},
		map[string]string{"flag": "flag.exe"},
		adminToken))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
	if storage.UploadCallCount != 0 {
		t.Errorf("expected no upload for invalid file, got %d calls", storage.UploadCallCount)
	}
}

func TestCreateCountryUploadFailure(t *testing.T) {
	db := freshDB()
	storage := newMockStorage()
	storage.UploadCountryFlagFn = func(file multipart.File, filename, contentType string) (string, error) {
		return "", errors.New("bucket unavailable")
	}
	router := setupCountryRouter(db, storage)

	_, adminToken := seedTestUser(db, "admin@test.com", "admin")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest("POST", "/api/admin/countries",
		map[string]string{"name": "India"},
		map[string]string{"flag": "flag.jpg"},
		adminToken))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["message"] != "Something went wrong" {
		t.Errorf("unexpected message: %v", resp["message"])
	}

	// A failed upload must never leave a country row behind
	var count int64
	db.Model(&models.Country{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no country rows after upload failure, got %d", count)
	}
}

func TestGetCountriesEmpty(t *testing.T) {
	db := freshDB()
	router := setupCountryRouter(db, newMockStorage())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/countries", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["message"] != "No country found" {
		t.Errorf("unexpected message: %v", resp["message"])
	}
}

func TestGetCountriesList(t *testing.T) {
	db := freshDB()
	router := setupCountryRouter(db, newMockStorage())

	seedCountry(db, "India")
	seedCountry(db, "Australia")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/countries", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["message"] != "Countries found" {
		t.Errorf("unexpected message: %v", resp["message"])
	}

	data, ok := resp["data"].([]interface{})
	if !ok {
		t.Fatal("expected data array in response")
	}
	if len(data) != 2 {
		t.Errorf("expected 2 countries, got %d", len(data))
	}
}

func TestCreateCountryRequiresAdmin(t *testing.T) {
	db := freshDB()
	router := setupCountryRouter(db, newMockStorage())

	_, userToken := seedTestUser(db, "user@test.com", "user")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest("POST", "/api/admin/countries",
		map[string]string{"name": "India"},
		map[string]string{"flag": "flag.jpg"},
		userToken))

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d: %s", w.Code, w.Body.String())
	}
}
