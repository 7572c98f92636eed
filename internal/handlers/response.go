package handlers

import "catalog/internal/models"

// SuccessResponse is the envelope of every successful JSON response.
type SuccessResponse struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message,omitempty"`
	Data       interface{}        `json:"data"`
	Pagination *models.Pagination `json:"pagination,omitempty"`
	SearchTerm string             `json:"searchTerm,omitempty"`
	Count      *int               `json:"count,omitempty"`
}

// ErrorResponse is the envelope of every failed response.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
	Stack   string   `json:"stack,omitempty"`
}

func ok(data interface{}) SuccessResponse {
	return SuccessResponse{Success: true, Data: data}
}

func okWithMessage(message string, data interface{}) SuccessResponse {
	return SuccessResponse{Success: true, Message: message, Data: data}
}
