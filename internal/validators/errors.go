package validators

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnsupportedType = errors.New("unsupported type for validation")

// SchemaError lists the snapshot fields that are missing or malformed. It is
// returned before any storage access so a rejected file never mutates state.
type SchemaError struct {
	Fields []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("invalid snapshot schema: %s", strings.Join(e.Fields, ", "))
}

// AsSchemaError unwraps err into a *SchemaError if one is in the chain.
func AsSchemaError(err error) (*SchemaError, bool) {
	var schemaErr *SchemaError
	if errors.As(err, &schemaErr) {
		return schemaErr, true
	}
	return nil, false
}
