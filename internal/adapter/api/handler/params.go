package handler

import (
	"strconv"

	"complab/pkg/errors"
)

func isTrue(raw string) bool {
	return raw == "true" || raw == "1"
}

func parseOptionalInt64(raw, name string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apperrBadParam(name + " must be an integer")
	}
	return &v, nil
}

func apperrBadParam(message string) error {
	return errors.BadRequest(message, nil)
}
