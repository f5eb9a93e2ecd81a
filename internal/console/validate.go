package console

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	rules     = newRules()
	mailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	dateTimeLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
	}
)

func newRules() *validator.Validate {
	v := validator.New()
	for tag, fn := range map[string]validator.Func{
		"filled":      filled,
		"taxid":       taxID,
		"simplemail":  simpleMail,
		"positive":    positive,
		"nonnegative": nonNegative,
		"isodatetime": isoDateTime,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	return v
}

// Validate checks every declared field independently and returns one message
// per failing field. Reference fields must point at an id in refs.
func (s *Schema[T]) Validate(form Form, refs Refs) FieldErrors {
	errs := FieldErrors{}
	for _, f := range s.Fields {
		value, ok := form[f.Name]
		if !ok || value == nil {
			value = ""
		}
		if tag := failedRule(value, f.Rules); tag != "" {
			errs[f.Name] = f.Message(tag)
			continue
		}
		if f.Kind == KindRef && f.Ref != "" {
			id := ID(textValue(value))
			if id != "" && !refs.Lookup(f.Ref).Has(id) {
				errs[f.Name] = f.Message("ref")
			}
		}
	}
	return errs
}

func failedRule(value any, tags string) string {
	if tags == "" {
		return ""
	}
	err := rules.Var(value, tags)
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Tag()
	}
	return strings.SplitN(tags, ",", 2)[0]
}

func filled(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.String:
		return strings.TrimSpace(field.String()) != ""
	case reflect.Float32, reflect.Float64, reflect.Int, reflect.Int64:
		return true
	default:
		return field.IsValid() && !field.IsZero()
	}
}

func taxID(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	want, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	digits := 0
	for _, r := range fl.Field().String() {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits == want
}

func simpleMail(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return mailShape.MatchString(fl.Field().String())
}

func positive(fl validator.FieldLevel) bool {
	n, ok := number(fl.Field())
	return ok && n > 0
}

func nonNegative(fl validator.FieldLevel) bool {
	n, ok := number(fl.Field())
	return ok && n >= 0
}

func isoDateTime(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	value := strings.TrimSpace(fl.Field().String())
	for _, layout := range dateTimeLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

func number(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	case reflect.Int, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	default:
		return 0, false
	}
}
