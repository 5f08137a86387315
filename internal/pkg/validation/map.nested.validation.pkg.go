package validation

import "github.com/go-playground/validator/v10"

// validateNestedMap accepts any non-empty map[string]any whose keys (at any
// nesting depth) are non-empty. Values are not policed: GraphQL variables
// legitimately carry empty strings, negatives and nulls.
func validateNestedMap(fl validator.FieldLevel) bool {
	m, ok := fl.Field().Interface().(map[string]interface{})
	if !ok {
		return false
	}

	if len(m) == 0 {
		return false
	}

	return validateMapKeys(m)
}

func validateMapKeys(m map[string]interface{}) bool {
	for k, v := range m {
		if k == "" {
			return false
		}

		switch val := v.(type) {
		case map[string]interface{}:
			if !validateMapKeys(val) {
				return false
			}
		case []interface{}:
			for _, elem := range val {
				if nested, ok := elem.(map[string]interface{}); ok {
					if !validateMapKeys(nested) {
						return false
					}
				}
			}
		}
	}

	return true
}
