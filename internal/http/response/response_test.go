package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	JSONError(rr, req, http.StatusNotFound, "Album not found")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, ErrorResponse{Status: StatusError, Message: "Album not found"}, body)
}

func TestValidationMessage(t *testing.T) {
	type input struct {
		Plan  string `validate:"required,oneof=3-days 15-days"`
		Price string `validate:"numeric"`
		Email string `validate:"email"`
	}

	err := validator.New().Struct(input{Plan: "", Price: "abc", Email: "nope"})
	require.Error(t, err)

	msg := ValidationMessage(err)
	assert.Contains(t, msg, "field Plan is a required field")
	assert.Contains(t, msg, "field Price can contain only numbers")
	assert.Contains(t, msg, "field Email must be a valid email")

	assert.Equal(t, "boom", ValidationMessage(errors.New("boom")))
}
