package web

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/rajservice12693/alankar/internal/backend"
)

// validate checks required-field rules before any backend call is made.
var validate = validator.New()

// requiredFieldsMessage is the toast shown when an entry form is submitted
// with missing required fields.
const requiredFieldsMessage = "Please fill all required fields"

// backendMessage surfaces the backend's own error text when it supplied one,
// else a generic fallback.
func backendMessage(err error) string {
	var be *backend.Error
	if errors.As(err, &be) {
		return be.Message
	}
	return "Something went wrong, please try again."
}

type categoryForm struct {
	CategoryName string `validate:"required"`
}

type materialForm struct {
	MaterialName string `validate:"required"`
	CategoryID   string `validate:"required"`
}

type itemForm struct {
	ItemName    string  `validate:"required"`
	CategoryID  string  `validate:"required"`
	MaterialID  string  `validate:"required"`
	Purity      string  // optional free text
	Weight      float64 `validate:"required,gt=0"`
	Price       float64 `validate:"required,gt=0"`
	Description string
}
