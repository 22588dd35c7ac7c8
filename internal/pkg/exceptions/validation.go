package exceptions

import (
	"errors"
	"hospital-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one failing field of a request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func ValidationFieldErrors(err error) []FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fieldPath(fe),
			Message: buildMessage(fe),
		})
	}
	return fieldErrors
}

func FormatAllValidationErrors(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	fieldErrors := ValidationFieldErrors(err)
	if len(fieldErrors) == 0 {
		return constvars.ErrDevInvalidInput
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, fe.Field+" "+fe.Message)
	}
	return strings.Join(messages, ", ")
}

func FormatFirstValidationError(err error) string {
	fieldErrors := ValidationFieldErrors(err)
	if len(fieldErrors) == 0 {
		return constvars.ErrDevInvalidInput
	}
	return fieldErrors[0].Field + " " + fieldErrors[0].Message
}

func buildMessage(fe validator.FieldError) string {
	tag := fe.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		return "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		param := fe.Param()
		if tag == "oneof" {
			param = strings.Join(strings.Fields(param), ", ")
		}
		customMessage = strings.Replace(customMessage, "%s", param, 1)
	}
	return customMessage
}

// fieldPath turns "RegisterAEPatient.EmergencyDetails.VitalSigns.PulseRate"
// into "emergencyDetails.vitalSigns.pulseRate" using the json names.
func fieldPath(fe validator.FieldError) string {
	namespace := fe.Namespace()
	if idx := strings.Index(namespace, "."); idx >= 0 {
		namespace = namespace[idx+1:]
	}
	return namespace
}
