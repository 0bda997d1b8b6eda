package validator

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"pmshub/pkg/logger"
	"pmshub/pkg/model"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type ConnectionValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewConnectionValidator(log *logger.Logger) *ConnectionValidator {
	v := validator.New()

	if err := v.RegisterValidation("api_endpoint", validateAPIEndpoint); err != nil {
		log.Fatal("Failed to register 'api_endpoint' validator", "error", err)
	}

	return &ConnectionValidator{
		validate: v,
		logger:   log,
	}
}

// validateAPIEndpoint accepts absolute http(s) URLs with a host. The
// sanitizer upgrades http to https before validation runs.
func validateAPIEndpoint(fl validator.FieldLevel) bool {
	raw := strings.TrimSpace(fl.Field().String())
	if raw == "" {
		// required is reported separately
		return true
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

func (v *ConnectionValidator) Validate(conn *model.Connection) error {
	if err := v.validate.Struct(conn); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func (v *ConnectionValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
		case "api_endpoint":
			message = "api_endpoint must be an absolute http(s) URL"
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
