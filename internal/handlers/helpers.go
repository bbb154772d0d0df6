package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finpace/internal/errors"
	"finpace/internal/middleware"
	"finpace/internal/uuid"
)

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (string, error) {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		return "", apperrors.ErrUnauthorized
	}
	return userID, nil
}

// parsePathID reads a UUID path parameter.
// Returns ErrInvalidInput if the parameter is not a valid UUID.
//
//nolint:unparam // param is intentionally generic for reuse across handlers with different path params
func parsePathID(c *gin.Context, param string) (string, error) {
	return parseID(c.Param(param), param)
}

// parseID validates raw as a UUID named name.
func parseID(raw, name string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+name)
	}
	return id, nil
}

// queryInt parses an optional integer query parameter.
func queryInt(c *gin.Context, key string) (*int, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, key+" must be an integer")
	}
	return &n, nil
}

// queryBool parses an optional boolean query parameter.
func queryBool(c *gin.Context, key string) (*bool, error) {
	switch c.Query(key) {
	case "":
		return nil, nil
	case "true":
		b := true
		return &b, nil
	case "false":
		b := false
		return &b, nil
	}
	return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, key+" must be 'true' or 'false'")
}

// parseFlexibleTime accepts RFC 3339 or a bare YYYY-MM-DD date (midnight UTC).
func parseFlexibleTime(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return time.Time{}, errors.New("invalid date format, expected YYYY-MM-DD or RFC3339")
	}
	return t, nil
}

// queryDate parses an optional date query parameter. A bare date used as an
// upper bound covers the whole day.
func queryDate(c *gin.Context, key string, endOfDay bool) (*time.Time, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	t, err := parseFlexibleTime(v)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+key+": "+err.Error())
	}
	if endOfDay && len(v) == len(time.DateOnly) {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

// requiredYear reads the year query parameter, defaulting to the current year.
func requiredYear(c *gin.Context) (int, error) {
	year, err := queryInt(c, "year")
	if err != nil {
		return 0, err
	}
	if year == nil {
		return time.Now().UTC().Year(), nil
	}
	return *year, nil
}

// respondWithError writes err in the standard error envelope.
func respondWithError(c *gin.Context, err error) {
	middleware.RenderError(c, err)
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message"`
}
