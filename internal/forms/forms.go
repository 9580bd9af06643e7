package forms

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Kind describes how a form value is parsed before assignment.
type Kind string

const (
	KindText     Kind = "text"
	KindTextarea Kind = "textarea"
	KindNumber   Kind = "number"
	KindDecimal  Kind = "decimal"
	KindBool     Kind = "bool"
	KindDate     Kind = "date"
	KindSelect   Kind = "select"
	KindRef      Kind = "ref"
)

// DateLayout is the wire format for date fields, matching <input type="date">.
const DateLayout = "2006-01-02"

// Field declares one bindable form input. Name doubles as the HTML input name
// and the json tag of the destination struct field.
type Field struct {
	Name     string
	Label    string
	Kind     Kind
	Required bool
	Options  []string
}

// Error reports a single field that failed validation.
type Error struct {
	Field   string
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors aggregates every field failure from one Bind call.
type Errors []Error

func (e Errors) Error() string {
	messages := make([]string, 0, len(e))
	for _, fieldErr := range e {
		messages = append(messages, fieldErr.Error())
	}
	return strings.Join(messages, "; ")
}

// Bind parses the submitted values according to the field declarations and
// assigns them onto target, which must be a pointer to a struct whose json
// tags match the field names. Validation failures are collected per field and
// returned together; nothing is assigned for a failed field.
func Bind(values url.Values, fields []Field, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("forms: target must be a non-nil struct pointer, got %T", target)
	}

	destinations := map[string]reflect.Value{}
	collectFields(rv.Elem(), destinations)

	var errs Errors
	for _, field := range fields {
		dest, ok := destinations[field.Name]
		if !ok {
			return fmt.Errorf("forms: no struct field tagged %q on %T", field.Name, target)
		}

		raw := strings.TrimSpace(values.Get(field.Name))
		if raw == "" {
			if field.Kind == KindBool {
				// An unchecked checkbox is simply absent from the form body.
				dest.SetBool(false)
				continue
			}
			if field.Required {
				errs = append(errs, Error{Field: field.Name, Message: fmt.Sprintf("%s is required", field.Label)})
				continue
			}
			if dest.Kind() == reflect.Pointer {
				dest.Set(reflect.Zero(dest.Type()))
			}
			continue
		}

		if err := assign(dest, field, raw); err != nil {
			errs = append(errs, Error{Field: field.Name, Message: err.Error()})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func assign(dest reflect.Value, field Field, raw string) error {
	if dest.Kind() == reflect.Pointer {
		elem := reflect.New(dest.Type().Elem())
		if err := assign(elem.Elem(), field, raw); err != nil {
			return err
		}
		dest.Set(elem)
		return nil
	}

	switch field.Kind {
	case KindText, KindTextarea:
		dest.SetString(raw)
	case KindSelect:
		if len(field.Options) > 0 && !contains(field.Options, raw) {
			return fmt.Errorf("%s must be one of %s", field.Label, strings.Join(field.Options, ", "))
		}
		dest.SetString(raw)
	case KindNumber:
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("%s must be a whole number", field.Label)
		}
		dest.SetInt(parsed)
	case KindDecimal:
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%s must be a number", field.Label)
		}
		dest.SetFloat(parsed)
	case KindBool:
		dest.SetBool(raw == "on" || raw == "true" || raw == "1")
	case KindDate:
		parsed, err := time.Parse(DateLayout, raw)
		if err != nil {
			return fmt.Errorf("%s must be a date in YYYY-MM-DD form", field.Label)
		}
		dest.Set(reflect.ValueOf(parsed))
	case KindRef:
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || parsed == 0 {
			return fmt.Errorf("%s must reference an existing record", field.Label)
		}
		dest.SetUint(parsed)
	default:
		return fmt.Errorf("unsupported field kind %q", field.Kind)
	}
	return nil
}

// collectFields walks a struct (embedded structs included) and indexes every
// addressable field by its json tag.
func collectFields(rv reflect.Value, out map[string]reflect.Value) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		structField := rt.Field(i)
		if structField.Anonymous {
			embedded := rv.Field(i)
			if embedded.Kind() == reflect.Struct {
				collectFields(embedded, out)
			}
			continue
		}
		tag := structField.Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		name := strings.Split(tag, ",")[0]
		if name == "" {
			continue
		}
		out[name] = rv.Field(i)
	}
}

func contains(options []string, value string) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}

// ValueString renders a struct field back into its form representation so a
// failed submit can re-render the form with the entered values preserved.
func ValueString(field Field, value reflect.Value) string {
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ""
		}
		value = value.Elem()
	}

	switch field.Kind {
	case KindDate:
		if t, ok := value.Interface().(time.Time); ok {
			if t.IsZero() {
				return ""
			}
			return t.Format(DateLayout)
		}
		return ""
	case KindBool:
		if value.Bool() {
			return "on"
		}
		return ""
	case KindNumber, KindRef:
		switch value.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if value.Int() == 0 {
				return ""
			}
			return strconv.FormatInt(value.Int(), 10)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if value.Uint() == 0 {
				return ""
			}
			return strconv.FormatUint(value.Uint(), 10)
		}
		return ""
	case KindDecimal:
		if value.Float() == 0 {
			return ""
		}
		return strconv.FormatFloat(value.Float(), 'f', -1, 64)
	default:
		return value.String()
	}
}

// Values extracts the current form representation of every declared field
// from a model instance.
func Values(fields []Field, model any) map[string]string {
	rv := reflect.ValueOf(model)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}

	destinations := map[string]reflect.Value{}
	if rv.Kind() == reflect.Struct {
		collectFields(rv, destinations)
	}

	out := make(map[string]string, len(fields))
	for _, field := range fields {
		if dest, ok := destinations[field.Name]; ok {
			out[field.Name] = ValueString(field, dest)
		}
	}
	return out
}
