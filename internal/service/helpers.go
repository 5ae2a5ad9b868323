package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Khaliq12345/O-Platy60-server/internal/apierror"
)

// parseOptionalUUID turns an optional query-string id into a *uuid.UUID.
// Empty means "no filter"; a non-empty malformed value is a validation error.
func parseOptionalUUID(op, field, raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apierror.Validation(op, fmt.Sprintf("%s is not a valid uuid", field))
	}
	return &id, nil
}
