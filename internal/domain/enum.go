package domain

import "fmt"

// scanString extracts a string from a database value for enum Scan implementations.
func scanString(value any, typeName string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s cannot be NULL", typeName)
	}

	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("cannot scan %T into %s", value, typeName)
	}
}
