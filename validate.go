package leadcapture

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is used to parse mobile numbers written without an
// international prefix.
const DefaultRegion = "PH"

// Validator checks registration payloads before they reach storage.
type Validator struct {
	region   string
	validate *validator.Validate
}

// NewValidator returns a Validator parsing national phone numbers for the
// given ISO 3166-1 region code. An empty region means DefaultRegion.
func NewValidator(region string) *Validator {
	if region == "" {
		region = DefaultRegion
	}
	region = strings.ToUpper(region)

	v := Validator{
		region:   region,
		validate: validator.New(),
	}

	v.validate.RegisterTagNameFunc(func(sf reflect.StructField) string {
		name := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails on empty tag names, which these are not.
	_ = v.validate.RegisterValidation("phone", v.validPhone)
	_ = v.validate.RegisterValidation("servicetype", func(fl validator.FieldLevel) bool {
		return ServiceType(fl.Field().String()).Valid()
	})

	return &v
}

func (v *Validator) validPhone(fl validator.FieldLevel) bool {
	num, err := phonenumbers.Parse(fl.Field().String(), v.region)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(num)
}

// Validate returns nil when nl is acceptable, otherwise a validation *Error
// describing every failing field.
func (v *Validator) Validate(nl NewLead) error {
	err := v.validate.Struct(nl)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return InternalError(err)
	}

	fields := make(map[string]string)
	var messages []string
	for _, fe := range verrs {
		field := fe.Field()
		if i := strings.IndexByte(field, '['); i >= 0 {
			field = field[:i]
		}
		if _, ok := fields[field]; ok {
			continue
		}
		msg := fieldMessage(field, fe.Tag())
		fields[field] = msg
		messages = append(messages, msg)
	}

	return ValidationError(strings.Join(messages, "; "), fields)
}

func fieldMessage(field, tag string) string {
	switch tag {
	case "required":
		return field + " should not be empty"
	case "email":
		return field + " must be an email"
	case "phone":
		return "invalid phone number"
	case "min":
		return "at least one service type must be selected"
	case "servicetype":
		names := make([]string, 0, 3)
		for _, st := range ServiceTypes() {
			names = append(names, string(st))
		}
		return "each value in " + field + " must be one of the following values: " + strings.Join(names, ", ")
	}
	return field + " is invalid"
}
