package validators

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"hbs/middleware"
)

// Kind is the JSON type a field must decode to.
type Kind int

const (
	String Kind = iota
	Number
	Bool
	// Date fields are strings parseable by ParseDate.
	Date
)

// Field declares the validation contract for one payload key.
type Field struct {
	Name     string
	Kind     Kind
	Required bool

	// AllowZero makes a zero value (0, "", false) count as present for the
	// required-field check. Entities that check only for an absent key keep
	// AllowZero true; the rest treat falsy values as missing. JSON null is
	// always treated as missing.
	AllowZero bool

	// Numeric range; Min is exclusive when ExclusiveMin is set.
	Min          *float64
	Max          *float64
	ExclusiveMin bool

	// Immutable fields are accepted on create only and rejected as
	// unexpected on update.
	Immutable bool

	// Message overrides the generated type/range violation message.
	Message string
}

// Schema is the declarative field set of one entity.
type Schema struct {
	Fields []Field
}

// ValidateCreate checks required-field presence, types, ranges and rejects
// unrecognized keys. All violations are collected and reported as a single
// 400 error.
func (s *Schema) ValidateCreate(body map[string]interface{}) error {
	var violations []string

	for _, f := range s.Fields {
		value, ok := body[f.Name]
		if !ok || value == nil || (!f.AllowZero && isZero(value)) {
			if f.Required {
				violations = append(violations, f.Name+" is required")
			}
			continue
		}
		if msg := f.check(value); msg != "" {
			violations = append(violations, msg)
		}
	}

	violations = append(violations, s.unexpectedFields(body, false)...)

	if len(violations) > 0 {
		return middleware.BadRequest(strings.Join(violations, ", "))
	}
	return nil
}

// ValidateUpdate checks only the supplied fields; omitted fields are carried
// forward by the caller. Immutable fields are unexpected here.
func (s *Schema) ValidateUpdate(body map[string]interface{}) error {
	var violations []string

	for _, f := range s.Fields {
		if f.Immutable {
			continue
		}
		value, ok := body[f.Name]
		if !ok || value == nil {
			continue
		}
		if msg := f.check(value); msg != "" {
			violations = append(violations, msg)
		}
	}

	violations = append(violations, s.unexpectedFields(body, true)...)

	if len(violations) > 0 {
		return middleware.BadRequest(strings.Join(violations, ", "))
	}
	return nil
}

func (s *Schema) unexpectedFields(body map[string]interface{}, update bool) []string {
	allowed := make(map[string]bool, len(s.Fields))
	for _, f := range s.Fields {
		if update && f.Immutable {
			continue
		}
		allowed[f.Name] = true
	}

	var extras []string
	for key := range body {
		if !allowed[key] {
			extras = append(extras, key)
		}
	}
	if len(extras) == 0 {
		return nil
	}
	sort.Strings(extras)
	return []string{"Unexpected fields provided: " + strings.Join(extras, ", ")}
}

func (f *Field) check(value interface{}) string {
	switch f.Kind {
	case String:
		if _, ok := value.(string); !ok {
			return f.violation(f.Name + " must be a string")
		}
	case Number:
		n, ok := value.(float64)
		if !ok {
			return f.violation(f.Name + " must be a number")
		}
		if f.Min != nil && (n < *f.Min || (f.ExclusiveMin && n == *f.Min)) {
			return f.violation(f.rangeMessage())
		}
		if f.Max != nil && n > *f.Max {
			return f.violation(f.rangeMessage())
		}
	case Bool:
		if _, ok := value.(bool); !ok {
			return f.violation(f.Name + " must be a boolean")
		}
	case Date:
		s, ok := value.(string)
		if !ok {
			return f.violation(f.Name + " must be a valid date")
		}
		if _, err := ParseDate(s); err != nil {
			return f.violation(f.Name + " must be a valid date")
		}
	}
	return ""
}

func (f *Field) violation(generated string) string {
	if f.Message != "" {
		return f.Message
	}
	return generated
}

func (f *Field) rangeMessage() string {
	if f.Min != nil && f.Max != nil {
		return fmt.Sprintf("%s must be a number between %g and %g", f.Name, *f.Min, *f.Max)
	}
	if f.Min != nil && f.ExclusiveMin {
		return fmt.Sprintf("%s must be greater than %g", f.Name, *f.Min)
	}
	if f.Min != nil {
		return fmt.Sprintf("%s must be at least %g", f.Name, *f.Min)
	}
	return fmt.Sprintf("%s is out of range", f.Name)
}

func isZero(value interface{}) bool {
	switch v := value.(type) {
	case string:
		return v == ""
	case float64:
		return v == 0
	case bool:
		return !v
	}
	return false
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDate parses YYYY-MM-DD dates, accepting RFC3339 timestamps as well.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}
