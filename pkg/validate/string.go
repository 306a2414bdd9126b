package validate

import (
	"bytes"
	"encoding/json"
)

const MsgInvalidString = "Not a valid string."

// String is a JSON string field that never fails to decode. It records whether
// the key was sent, whether it was null and whether it held a string at all, so
// a wrong type becomes a field error instead of aborting the whole body.
type String struct {
	Set   bool
	Null  bool
	Valid bool
	Value string
}

// Str is a sent, valid string.
func Str(v string) String {
	return String{Set: true, Valid: true, Value: v}
}

func (s *String) UnmarshalJSON(b []byte) error {
	*s = String{Set: true}
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		s.Null, s.Valid = true, true
		return nil
	}
	s.Valid = json.Unmarshal(b, &s.Value) == nil
	return nil
}

// OptionalString returns the sent string, or nil when the key was absent or null.
// A value of another JSON type is recorded under field.
func (e FieldErrors) OptionalString(field string, s String) *string {
	if !s.Set || s.Null {
		return nil
	}
	if !s.Valid {
		e.Add(field, MsgInvalidString)
		return nil
	}
	v := s.Value
	return &v
}

// RequiredString is OptionalString that also records a missing or null field.
func (e FieldErrors) RequiredString(field string, s String) *string {
	switch {
	case !s.Set:
		e.Add(field, MsgRequired)
		return nil
	case s.Null:
		e.Add(field, MsgNull)
		return nil
	}
	return e.OptionalString(field, s)
}
