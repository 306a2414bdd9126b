package validate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stringBody struct {
	Name String `json:"name"`
}

func TestString_Unmarshal(t *testing.T) {
	cases := []struct {
		body string
		want String
	}{
		{`{}`, String{}},
		{`{"name":null}`, String{Set: true, Null: true, Valid: true}},
		{`{"name":"Work"}`, String{Set: true, Valid: true, Value: "Work"}},
		{`{"name":""}`, String{Set: true, Valid: true}},
		{`{"name":5}`, String{Set: true}},
		{`{"name":true}`, String{Set: true}},
		{`{"name":["a"]}`, String{Set: true}},
		{`{"name":{"a":"b"}}`, String{Set: true}},
	}
	for _, tc := range cases {
		t.Run(tc.body, func(t *testing.T) {
			var b stringBody
			require.NoError(t, json.Unmarshal([]byte(tc.body), &b))
			assert.Equal(t, tc.want, b.Name)
		})
	}
}

func TestFieldErrors_RequiredString(t *testing.T) {
	errs := FieldErrors{}
	assert.Nil(t, errs.RequiredString("a", String{}))
	assert.Nil(t, errs.RequiredString("b", String{Set: true, Null: true, Valid: true}))
	assert.Nil(t, errs.RequiredString("c", String{Set: true}))
	v := errs.RequiredString("d", Str("ok"))
	require.NotNil(t, v)
	assert.Equal(t, "ok", *v)

	assert.Equal(t, FieldErrors{
		"a": {MsgRequired},
		"b": {MsgNull},
		"c": {MsgInvalidString},
	}, errs)
}

func TestFieldErrors_OptionalString(t *testing.T) {
	errs := FieldErrors{}
	assert.Nil(t, errs.OptionalString("a", String{}))
	assert.Nil(t, errs.OptionalString("b", String{Set: true, Null: true, Valid: true}))
	assert.Nil(t, errs.OptionalString("c", String{Set: true}))
	v := errs.OptionalString("d", Str(""))
	require.NotNil(t, v)
	assert.Equal(t, "", *v)

	assert.Equal(t, FieldErrors{"c": {MsgInvalidString}}, errs)
}
