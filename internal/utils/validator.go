// internal/utils/validator.go
package utils

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// ProductKinds accepted by the product_kind tag.
var ProductKinds = []string{"generic", "digital", "physical"}

// OrderStatuses accepted by the order_status tag, compared case-insensitively.
var OrderStatuses = []string{"pending", "awaiting_payment", "processing", "shipped", "delivered", "cancelled", "refunded"}

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("download_link", validateDownloadLink)
	validate.RegisterValidation("finite", validateFinite)
	validate.RegisterValidation("product_kind", validateProductKind)
	validate.RegisterValidation("order_status", validateOrderStatus)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return strings.ToLower(fld.Name)
	}
	return name
}

func validateDownloadLink(fl validator.FieldLevel) bool {
	link := fl.Field().String()
	return strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://")
}

func validateFinite(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	}
	return true
}

func validateProductKind(fl validator.FieldLevel) bool {
	kind := fl.Field().String()
	for _, k := range ProductKinds {
		if k == kind {
			return true
		}
	}
	return false
}

func validateOrderStatus(fl validator.FieldLevel) bool {
	status := strings.ToLower(fl.Field().String())
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Validation tags for common fields
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   e.Field(),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

// ValidationMessage flattens a validation failure into one sentence.
func ValidationMessage(err error) string {
	validationErrors := GetValidationErrors(err)
	if len(validationErrors) == 0 {
		return err.Error()
	}

	messages := make([]string, len(validationErrors))
	for i, e := range validationErrors {
		messages[i] = e.Message
	}
	return strings.Join(messages, "; ")
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "gte", "min":
		return e.Field() + " must be at least " + e.Param()
	case "lte", "max":
		return e.Field() + " must be at most " + e.Param()
	case "len":
		return e.Field() + " must have exactly " + e.Param() + " values"
	case "finite":
		return e.Field() + " must be a finite number"
	case "download_link":
		return e.Field() + " must be a URL starting with http:// or https://"
	case "product_kind":
		return e.Field() + " must be one of: " + strings.Join(ProductKinds, ", ")
	case "order_status":
		return e.Field() + " must be one of: " + strings.Join(OrderStatuses, ", ")
	default:
		return e.Field() + " is invalid"
	}
}
