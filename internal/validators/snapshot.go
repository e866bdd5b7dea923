package validators

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Gil100/Personal-Finance--sub001/models"
)

// Field name constants matching the wire format of a sync snapshot file.
const (
	FieldDeviceID     = "deviceId"
	FieldTimestamp    = "timestamp"
	FieldVersion      = "version"
	FieldData         = "data"
	FieldTransactions = "data.transactions"
	FieldCategories   = "data.categories"
	FieldAccounts     = "data.accounts"
)

// RawSnapshot is the loosely-decoded form of a sync file: pointers and raw
// messages per top-level field so that a missing field, a null field and a
// wrongly-typed field can be told apart before the typed decode.
type RawSnapshot struct {
	Type      *string                    `json:"type"`
	DeviceID  *string                    `json:"deviceId"`
	Timestamp *string                    `json:"timestamp"`
	Version   *string                    `json:"version"`
	Data      map[string]json.RawMessage `json:"data"`
}

type snapshotValidator struct {
	validate *validator.Validate
}

// NewSnapshotValidator returns a Validator for sync snapshot files. It accepts
// either a [RawSnapshot] (structural pass: required fields present, the three
// entity collections are JSON arrays, version is compatible) or a
// *[models.Snapshot] (typed pass via struct tags). Both passes report failures
// as a [SchemaError] naming every offending field.
func NewSnapshotValidator() Validator {
	return &snapshotValidator{validate: validator.New()}
}

func (v *snapshotValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch snapshot := value.(type) {
	case RawSnapshot:
		return v.validateRaw(snapshot)
	case *models.Snapshot:
		return v.validateTyped(snapshot)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
}

func (v *snapshotValidator) validateRaw(raw RawSnapshot) error {
	var bad []string

	if raw.DeviceID == nil || *raw.DeviceID == "" {
		bad = append(bad, FieldDeviceID)
	}
	if raw.Timestamp == nil || *raw.Timestamp == "" {
		bad = append(bad, FieldTimestamp)
	}
	switch {
	case raw.Version == nil || *raw.Version == "":
		bad = append(bad, FieldVersion)
	case majorVersion(*raw.Version) != majorVersion(models.SchemaVersion):
		bad = append(bad, FieldVersion)
	}

	if raw.Data == nil {
		bad = append(bad, FieldData)
	} else {
		for field, key := range map[string]string{
			FieldTransactions: "transactions",
			FieldCategories:   "categories",
			FieldAccounts:     "accounts",
		} {
			if !isJSONArray(raw.Data[key]) {
				bad = append(bad, field)
			}
		}
	}

	if len(bad) > 0 {
		// keep the reported field list deterministic regardless of map
		// iteration order
		sort.Strings(bad)
		return &SchemaError{Fields: bad}
	}
	return nil
}

func (v *snapshotValidator) validateTyped(snapshot *models.Snapshot) error {
	err := v.validate.Struct(snapshot)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("snapshot validation failed: %w", err)
	}

	bad := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		bad = append(bad, fieldErr.Namespace())
	}
	return &SchemaError{Fields: bad}
}

// isJSONArray reports whether raw holds a JSON array. A missing or null field
// is not an array.
func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func majorVersion(version string) string {
	major, _, _ := strings.Cut(version, ".")
	return major
}
