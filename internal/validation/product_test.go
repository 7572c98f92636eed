package validation_test

import (
	"testing"

	"catalog/internal/apperror"
	"catalog/internal/models"
	"catalog/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidPayloadIsNormalized(t *testing.T) {
	v := validation.NewProductValidator()

	input, violations := v.Validate(map[string]interface{}{
		"name":        "  Tablet ",
		"description": " 10-inch  ",
		"price":       300.0,
		"category":    " Electronics",
	})

	assert.Empty(t, violations)
	assert.Equal(t, "Tablet", input.Name)
	require.NotNil(t, input.Description)
	assert.Equal(t, "10-inch", *input.Description)
	assert.Equal(t, 300.0, input.Price)
	assert.Equal(t, "electronics", input.Category)
	assert.Nil(t, input.InStock)
}

func TestValidate_CollectsEveryViolation(t *testing.T) {
	v := validation.NewProductValidator()

	_, violations := v.Validate(map[string]interface{}{
		"name":     "",
		"price":    -5.0,
		"category": "toys",
	})

	assert.Equal(t, []string{
		"Name is required and must be a non-empty string.",
		"Price is required and must be a positive number.",
		"Category must be one of the following: electronics, clothing, books, home.",
	}, violations)
}

func TestValidate_MissingFields(t *testing.T) {
	v := validation.NewProductValidator()

	_, violations := v.Validate(map[string]interface{}{})

	assert.Equal(t, []string{
		"Name is required and must be a non-empty string.",
		"Price is required and must be a positive number.",
		"Category is required and must be a non-empty string.",
	}, violations)
}

func TestValidate_WrongTypes(t *testing.T) {
	v := validation.NewProductValidator()

	_, violations := v.Validate(map[string]interface{}{
		"name":        42.0,
		"price":       "12",
		"category":    true,
		"description": 7.0,
		"inStock":     "yes",
	})

	assert.Equal(t, []string{
		"Name is required and must be a non-empty string.",
		"Price is required and must be a positive number.",
		"Category is required and must be a non-empty string.",
		"Description must be a string if provided.",
		"InStock must be a boolean if provided.",
	}, violations)
}

func TestValidate_BlankCategoryIsRequiredNotDisallowed(t *testing.T) {
	v := validation.NewProductValidator()

	_, violations := v.Validate(map[string]interface{}{
		"name":     "Lamp",
		"price":    20.0,
		"category": "   ",
	})

	assert.Equal(t, []string{"Category is required and must be a non-empty string."}, violations)
}

func TestValidate_KeepsExplicitInStock(t *testing.T) {
	v := validation.NewProductValidator()

	input, violations := v.Validate(map[string]interface{}{
		"name":     "Novel",
		"price":    12.5,
		"category": "BOOKS",
		"inStock":  false,
	})

	assert.Empty(t, violations)
	assert.Equal(t, "books", input.Category)
	require.NotNil(t, input.InStock)
	assert.False(t, *input.InStock)
}

func TestDecodeProduct(t *testing.T) {
	raw, err := validation.DecodeProduct(nil)
	assert.NoError(t, err)
	assert.Empty(t, raw)

	raw, err = validation.DecodeProduct([]byte(`{"name":"Desk"}`))
	assert.NoError(t, err)
	assert.Equal(t, "Desk", raw["name"])

	for _, body := range []string{`{"name":`, `[1,2]`, `null`, `"text"`} {
		_, err = validation.DecodeProduct([]byte(body))
		require.Error(t, err, body)
		appErr := apperror.From(err)
		assert.Equal(t, apperror.KindMalformedPayload, appErr.Kind, body)
		assert.Equal(t, "Invalid JSON payload", appErr.Message)
	}
}

func TestValidateListQuery(t *testing.T) {
	v := validation.NewProductValidator()

	assert.Empty(t, v.ValidateListQuery(models.DefaultListQuery()))
	assert.Equal(t,
		[]string{"Page must be a positive integer.", "Limit must be a positive integer."},
		v.ValidateListQuery(models.ListQuery{Page: 0, Limit: -1}),
	)
}
