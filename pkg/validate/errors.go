package validate

import (
	"sort"
	"strings"
)

// FieldErrors maps a field name to every message collected for it.
// It is rendered as-is in 400 responses.
type FieldErrors map[string][]string

func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// AddError records err's message under field and reports whether err was non-nil.
func (e FieldErrors) AddError(field string, err error) bool {
	if err == nil {
		return false
	}
	e.Add(field, err.Error())
	return true
}

func (e FieldErrors) Has(field string) bool {
	return len(e[field]) > 0
}

// Err returns nil when nothing was collected so callers can `return errs.Err()`.
func (e FieldErrors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(f + ": " + strings.Join(e[f], " "))
	}
	return b.String()
}
