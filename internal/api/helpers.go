package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/studyvault/backend/internal/errors"
)

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.NewBadRequestError("invalid request body")
	}
	return nil
}

// queryInt parses an optional integer query parameter, returning def when
// absent and an error when malformed.
func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewValidationError(key, "must be an integer")
	}
	return n, nil
}

// pathUUID validates a path parameter as a UUID before it reaches a service.
func pathUUID(value, field string) (string, error) {
	if uuid.Validate(value) != nil {
		return "", errors.NewValidationError(field, "must be a valid UUID")
	}
	return value, nil
}
