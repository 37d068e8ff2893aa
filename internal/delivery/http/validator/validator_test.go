package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Type        string `json:"type" validate:"required,reporttype"`
	Description string `json:"description" validate:"required,max=20"`
	Island      string `json:"island" validate:"omitempty,island"`
}

func TestValidator(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sampleRequest{Type: "hours", Description: "closed early"}))
	assert.NoError(t, v.Validate(&sampleRequest{Type: "menu", Description: "x", Island: "St. John"}))

	err := v.Validate(&sampleRequest{Type: "price", Island: "Tortola"})
	assert.EqualError(t, err, `Type has an unknown value "price"; Description is required; Island has an unknown value "Tortola"`)

	err = v.Validate(&sampleRequest{Type: "hours", Description: "this description is far too long"})
	assert.EqualError(t, err, "Description must be at most 20 characters")
}
