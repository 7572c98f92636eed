// Package validation checks and normalizes product payloads.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"catalog/internal/apperror"
	"catalog/internal/models"

	"github.com/go-playground/validator/v10"
)

const (
	msgName        = "Name is required and must be a non-empty string."
	msgPrice       = "Price is required and must be a positive number."
	msgCategory    = "Category is required and must be a non-empty string."
	msgDescription = "Description must be a string if provided."
	msgInStock     = "InStock must be a boolean if provided."
)

var msgCategoryAllowed = "Category must be one of the following: " +
	strings.Join(models.AllowedCategories, ", ") + "."

// fieldOrder fixes the order violations are reported in.
var fieldOrder = []string{"name", "price", "category", "description", "inStock"}

// ProductValidator validates create and update payloads.
type ProductValidator struct {
	validate *validator.Validate
}

// NewProductValidator creates a ProductValidator.
func NewProductValidator() *ProductValidator {
	return &ProductValidator{validate: validator.New()}
}

// DecodeProduct parses a JSON object body. An empty body decodes to an empty object.
func DecodeProduct(body []byte) (map[string]interface{}, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]interface{}{}, nil
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, apperror.MalformedPayload(err)
	}
	if raw == nil {
		return nil, apperror.MalformedPayload(errors.New("body is not a JSON object"))
	}
	return raw, nil
}

// Validate checks raw and returns the normalized input, or the list of violations.
// Every field is checked; an empty list means the payload is acceptable.
func (v *ProductValidator) Validate(raw map[string]interface{}) (models.ProductInput, []string) {
	var input models.ProductInput
	violations := make(map[string]string)

	if name, ok := raw["name"].(string); ok {
		input.Name = strings.TrimSpace(name)
	} else if _, present := raw["name"]; present {
		violations["name"] = msgName
	}

	if price, ok := raw["price"].(float64); ok {
		input.Price = price
	} else if _, present := raw["price"]; present {
		violations["price"] = msgPrice
	}

	if category, ok := raw["category"].(string); ok {
		input.Category = strings.ToLower(strings.TrimSpace(category))
	} else if _, present := raw["category"]; present {
		violations["category"] = msgCategory
	}

	if description, present := raw["description"]; present && description != nil {
		if s, ok := description.(string); ok {
			s = strings.TrimSpace(s)
			input.Description = &s
		} else {
			violations["description"] = msgDescription
		}
	}

	if inStock, present := raw["inStock"]; present && inStock != nil {
		if b, ok := inStock.(bool); ok {
			input.InStock = &b
		} else {
			violations["inStock"] = msgInStock
		}
	}

	if err := v.validate.Struct(input); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				field, msg := messageFor(fe)
				if _, seen := violations[field]; !seen {
					violations[field] = msg
				}
			}
		}
	}

	if len(violations) == 0 {
		return input, nil
	}
	list := make([]string, 0, len(violations))
	for _, field := range fieldOrder {
		if msg, ok := violations[field]; ok {
			list = append(list, msg)
		}
	}
	return input, list
}

func messageFor(fe validator.FieldError) (string, string) {
	switch fe.Field() {
	case "Name":
		return "name", msgName
	case "Price":
		return "price", msgPrice
	case "Category":
		if fe.Tag() == "oneof" {
			return "category", msgCategoryAllowed
		}
		return "category", msgCategory
	default:
		return fe.Field(), fe.Error()
	}
}
