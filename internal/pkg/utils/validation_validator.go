package utils

import (
	"hospital-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	wardNumberRegex     = regexp.MustCompile(constvars.RegexWardNumber)
	phoneTenDigitsRegex = regexp.MustCompile(constvars.RegexPhoneNumberTenDigits)
	pincodeRegex        = regexp.MustCompile(constvars.RegexPincode)
	bloodPressureRegex  = regexp.MustCompile(constvars.RegexBloodPressure)
	usernameRegex       = regexp.MustCompile(constvars.RegexUsername)
	uppercaseRegex      = regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase)
	lowercaseRegex      = regexp.MustCompile(constvars.RegexContainAtLeastOneLowercase)
	digitRegex          = regexp.MustCompile(constvars.RegexContainAtLeastOneDigit)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("ward_number", validateWardNumber)
	validate.RegisterValidation("phone_ten_digits", validatePhoneTenDigits)
	validate.RegisterValidation("pincode", validatePincode)
	validate.RegisterValidation("blood_pressure", validateBloodPressure)
	validate.RegisterValidation("username", validateUsername)
	validate.RegisterValidation("staff_role", validateStaffRole)
	validate.RegisterValidation("iso_date", validateISODate)
	validate.RegisterValidation("not_future_date", validateNotFutureDate)
	validate.RegisterValidation("not_past_date", validateNotPastDate)
}

// ValidateStruct runs every rule and returns validator.ValidationErrors
// holding all failing fields, not just the first.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func ValidateUrlParamID(id string) error {
	return validate.Var(id, "required,mongodb")
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasUppercase := uppercaseRegex.MatchString(password)
	hasLowercase := lowercaseRegex.MatchString(password)
	hasDigit := digitRegex.MatchString(password)
	return hasMinLen && hasUppercase && hasLowercase && hasDigit
}

func validateWardNumber(fl validator.FieldLevel) bool {
	return wardNumberRegex.MatchString(fl.Field().String())
}

func validatePhoneTenDigits(fl validator.FieldLevel) bool {
	return phoneTenDigitsRegex.MatchString(fl.Field().String())
}

func validatePincode(fl validator.FieldLevel) bool {
	return pincodeRegex.MatchString(fl.Field().String())
}

func validateBloodPressure(fl validator.FieldLevel) bool {
	return bloodPressureRegex.MatchString(fl.Field().String())
}

func validateUsername(fl validator.FieldLevel) bool {
	return usernameRegex.MatchString(fl.Field().String())
}

func validateStaffRole(fl validator.FieldLevel) bool {
	role := fl.Field().String()
	for _, allowed := range constvars.AllRoles {
		if role == allowed {
			return true
		}
	}
	return false
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := ParseDate(fl.Field().String())
	return err == nil
}

// Unparseable values pass here; iso_date reports them.
func validateNotFutureDate(fl validator.FieldLevel) bool {
	t, err := ParseDate(fl.Field().String())
	if err != nil {
		return true
	}
	return !t.After(time.Now().UTC())
}

func validateNotPastDate(fl validator.FieldLevel) bool {
	t, err := ParseDate(fl.Field().String())
	if err != nil {
		return true
	}
	return !t.Before(StartOfDay(time.Now()))
}
