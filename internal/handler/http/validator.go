// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldErrors converts a validator error into a field→message map that the
// client renders inline next to the form inputs. Validation problems never
// travel through the notification surface.
func fieldErrors(err error) map[string]string {
	out := make(map[string]string)

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		out["_"] = "invalid request"
		return out
	}

	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		out[field] = fieldError(field, fe)
	}
	return out
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
