package utils

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/TurboProjects/Notes-App-Challenge/pkg/validate"
)

// IntField is a decoded integer input that may arrive as a JSON number or a numeric string.
type IntField struct {
	Present bool
	Value   int64
}

// ParseIntField decodes raw. A missing field gives Present=false with no error; null,
// fractions and non-numeric text give a message fit for validate.FieldErrors.
func ParseIntField(raw json.RawMessage) (IntField, string) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return IntField{}, ""
	}
	if bytes.Equal(raw, []byte("null")) {
		return IntField{Present: true}, validate.MsgNull
	}

	var s string
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return IntField{Present: true}, validate.MsgInvalidInt
		}
		s = strings.TrimSpace(s)
	} else {
		s = string(raw)
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return IntField{Present: true}, validate.MsgInvalidInt
	}
	return IntField{Present: true, Value: v}, ""
}

// ParseID parses a path or query id. Only positive integers are ids.
func ParseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// PageURL copies base and sets its page parameter. Page 1 drops the parameter.
func PageURL(base url.URL, page int) string {
	q := base.Query()
	if page <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}
	base.RawQuery = q.Encode()
	return base.String()
}
