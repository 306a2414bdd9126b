package validate

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	MsgRequired    = "This field is required."
	MsgBlank       = "This field may not be blank."
	MsgNull        = "This field may not be null."
	MsgInvalidInt  = "A valid integer is required."
	MsgInvalidHex  = "Enter a valid hex color, e.g. #AABBCC"
	msgMaxLength   = "Ensure this field has no more than %d characters."
	msgMinLength   = "Ensure this field has at least %d characters."
	MsgInvalidMail = "Enter a valid email address."
)

var (
	ErrBlank      = errors.New(MsgBlank)
	ErrInvalidHex = errors.New(MsgInvalidHex)
)

var v = validator.New()

// HexColor accepts "#" followed by exactly six hex digits.
func HexColor(value string) error {
	// hexcolor alone also admits the 3, 4 and 8 digit forms
	if err := v.Var(value, "len=7,hexcolor"); err != nil {
		return ErrInvalidHex
	}
	return nil
}

// NonBlank returns value without surrounding whitespace, or ErrBlank when nothing is left.
func NonBlank(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", ErrBlank
	}
	return trimmed, nil
}

// MaxLength counts runes, not bytes.
func MaxLength(value string, n int) error {
	if utf8.RuneCountInString(value) > n {
		return fmt.Errorf(msgMaxLength, n)
	}
	return nil
}

func MinLength(value string, n int) error {
	if utf8.RuneCountInString(value) < n {
		return fmt.Errorf(msgMinLength, n)
	}
	return nil
}
