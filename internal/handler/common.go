package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pratheepg2026-commits/crm-v2/internal/middleware"
	"github.com/pratheepg2026-commits/crm-v2/internal/repository"
	"github.com/pratheepg2026-commits/crm-v2/pkg/logger"
	"go.uber.org/zap"
)

const msgInternal = "Internal server error"

// MsgNotFound is the body of every unmatched-route response.
const MsgNotFound = "Resource not found"

// RequestValidator adapts go-playground/validator to echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names so messages match the request body
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{validate: v}
}

func (rv *RequestValidator) Validate(i interface{}) error {
	return rv.validate.Struct(i)
}

// bindAndValidate decodes the body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req interface{}, missingMsg string) error {
	log := logger.FromContext(c)

	if err := c.Bind(req); err != nil {
		log.Warn("Invalid request data", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request data")
	}
	if err := c.Validate(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msg := validationMessage(verrs, missingMsg)
			log.Warn("Request validation failed", zap.String("reason", msg))
			return echo.NewHTTPError(http.StatusBadRequest, msg)
		}
		return fmt.Errorf("validate request: %w", err)
	}
	return nil
}

func validationMessage(verrs validator.ValidationErrors, missingMsg string) string {
	var missing []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		}
	}
	if len(missing) > 0 {
		return fmt.Sprintf("%s: %s", missingMsg, strings.Join(missing, ", "))
	}
	fe := verrs[0]
	return fmt.Sprintf("Invalid value for %s", fe.Field())
}

// currentUser returns the account id set by the auth middleware.
func currentUser(c echo.Context) (uint, error) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return userID, nil
}

// pathID parses the :id path parameter. A non-numeric id cannot match any row.
func pathID(c echo.Context, name, notFoundMsg string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusNotFound, notFoundMsg)
	}
	return uint(id), nil
}

// failure maps repository and service errors to HTTP errors. Anything
// unrecognised is logged and reported as a bare 500.
func failure(c echo.Context, err error, notFoundMsg string) error {
	var verr *repository.ValidationError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, notFoundMsg)
	case errors.As(err, &verr):
		return echo.NewHTTPError(http.StatusBadRequest, verr.Error())
	default:
		logger.FromContext(c).Error("Request failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, msgInternal).SetInternal(err)
	}
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDate accepts an ISO-8601 date or timestamp. Values without an offset are UTC.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &repository.ValidationError{Message: fmt.Sprintf("invalid date %q, expected ISO-8601", value)}
}

// optionalDate parses value when present; field names the request key in errors.
func optionalDate(value *string, field string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	t, err := parseDate(*value)
	if err != nil {
		return nil, &repository.ValidationError{Field: field, Message: "expected ISO-8601 date"}
	}
	return &t, nil
}
