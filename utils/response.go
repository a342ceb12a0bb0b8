package utils

import "net/http"

// Response is the uniform envelope returned by every taxonomy endpoint.
// StatusCode mirrors the HTTP status so callers reading only the body see
// the same outcome.
type Response struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Error      interface{} `json:"error,omitempty"`
}

var responseMessages = map[string]string{
	"COUNTRY_ALREADY_EXISTS":           "Country already exists",
	"FAILED_TO_CREATE_COUNTRY":         "Failed to create country",
	"COUNTRY_CREATED_SUCCESSFULLY":     "Country created successfully",
	"COUNTRY_NOT_PRESENT":              "Country not present",
	"NO_COUNTRY_FOUND":                 "No country found",
	"COUNTRY_FOUND":                    "Countries found",
	"FLAG_IMAGE_REQUIRED":              "Flag image is required",
	"STATE_CREATED_SUCCESSFULLY":       "State created successfully",
	"STATE_CREATION_FAILED":            "State creation failed",
	"NO_STATE_PRESENT":                 "No state present",
	"STATES_ARE_PRESENT":               "States are present",
	"STATE_NOT_FOUND_FOR_COUNTRY":      "State not found for the given country",
	"CITY_CREATED_SUCCESSFULLY":        "City created successfully",
	"UNABLE_TO_ADD_CITY":               "Unable to add city",
	"NO_CITIES_PRESENT":                "No cities present",
	"CITIES_FOUND":                     "Cities found",
	"CATEGORY_ALREADY_EXISTS":          "Category already exists",
	"FAILED_TO_CREATE_CATEGORY":        "Failed to create category",
	"CATEGORY_CREATED_SUCCESSFULLY":    "Category created successfully",
	"CATEGORY_NOT_FOUND":               "Category not found",
	"CATEGORY_FOUND":                   "Categories found",
	"ICON_IMAGE_REQUIRED":              "Icon image is required",
	"SUBCATEGORY_CREATED_SUCCESSFULLY": "Subcategory created successfully",
	"SUBCATEGORY_CREATION_FAILED":      "Subcategory creation failed",
	"SUBCATEGORY_NOT_FOUND":            "Subcategory not found",
	"SUBCATEGORY_DELETED_SUCCESSFULLY": "Subcategory deleted successfully",
	"SUBCATEGORY_DELETION_FAILED":      "Subcategory deletion failed",
	"SOMETHING_WRONG":                  "Something went wrong",
}

// GetResponseMessage resolves a message key to its user-facing text. Unknown
// keys fall through unchanged so a missing table entry is visible instead of
// silent.
func GetResponseMessage(key string) string {
	if msg, ok := responseMessages[key]; ok {
		return msg
	}
	return key
}

func SuccessResponse(key string, data interface{}) Response {
	return Response{
		StatusCode: http.StatusOK,
		Message:    GetResponseMessage(key),
		Data:       data,
	}
}

func ErrorResponse(statusCode int, key string) Response {
	return Response{
		StatusCode: statusCode,
		Message:    GetResponseMessage(key),
	}
}

// InternalErrorResponse wraps an unexpected failure as the generic 500
// envelope, carrying the original error text for diagnostics.
func InternalErrorResponse(err error) Response {
	res := Response{
		StatusCode: http.StatusInternalServerError,
		Message:    GetResponseMessage("SOMETHING_WRONG"),
	}
	if err != nil {
		res.Error = err.Error()
	}
	return res
}

// ValidationErrorResponse maps a binding/validation failure to a 400 envelope
// with a sanitized message.
func ValidationErrorResponse(err error) Response {
	return Response{
		StatusCode: http.StatusBadRequest,
		Message:    SanitizeValidationError(err),
	}
}
