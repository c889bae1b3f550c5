package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	themeerrors "github.com/alexisbeaulieu97/tmtheme/pkg/errors"
)

// convertValidationError normalizes validator errors into tmtheme validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := keyName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s' (got %q)", field, ve.Tag(), ve.Param(), fmt.Sprint(ve.Value()))
		}
		return themeerrors.NewValidationError(field, msg, err)
	}

	return themeerrors.NewValidationError("config", err.Error(), err)
}

// keyName turns "Config.Storage.Driver" into the config key "storage.driver".
func keyName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
