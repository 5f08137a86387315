package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gatewayBody struct {
	Mutation  string         `json:"mutation" validate:"required"`
	Variables map[string]any `json:"variables" validate:"required,mapStringInterface"`
}

func TestMain(m *testing.M) {
	if err := Setup(); err != nil {
		panic(err)
	}
	m.Run()
}

func TestValidateAcceptsCompleteBody(t *testing.T) {
	err := Validate(&gatewayBody{
		Mutation: "mutation { x }",
		Variables: map[string]any{
			"input": map[string]any{
				"note":      "",
				"lineItems": []any{map[string]any{"quantity": float64(-1)}},
				"customer":  nil,
			},
		},
	})
	// empty strings, negatives and nulls are legal variable values
	require.NoError(t, err)
}

func TestValidateRejectsMissingFields(t *testing.T) {
	err := Validate(&gatewayBody{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutation is required")
	assert.Contains(t, err.Error(), "variables")
}

func TestValidateRejectsEmptyVariables(t *testing.T) {
	err := Validate(&gatewayBody{Mutation: "mutation { x }", Variables: map[string]any{}})
	require.Error(t, err)
}

func TestValidateRejectsEmptyKey(t *testing.T) {
	err := Validate(&gatewayBody{Mutation: "mutation { x }", Variables: map[string]any{"": 1}})
	require.Error(t, err)
}

func TestValidateJSONTagNames(t *testing.T) {
	err := Validate(&gatewayBody{Variables: map[string]any{"input": 1}})
	require.Error(t, err)
	// messages use the json tag name, not the Go field name
	assert.NotContains(t, err.Error(), "Mutation")
}
