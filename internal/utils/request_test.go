package utils

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntParam(t *testing.T) {
	assert.Equal(t, 42, ParseIntParam("42", 1))
	assert.Equal(t, 1, ParseIntParam("", 1))
	assert.Equal(t, 1, ParseIntParam("abc", 1))
	assert.Equal(t, -3, ParseIntParam("-3", 1))
}

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	var dest struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"alice"}`))
	require.NoError(t, DecodeJSON(r, &dest))
	assert.Equal(t, "alice", dest.Name)

	r = httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"alice","extra":1}`))
	assert.Error(t, DecodeJSON(r, &dest))
}

func TestGetToken(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	_, err := GetToken(r)
	assert.Error(t, err)

	r.Header.Set("Authorization", "tok-123")
	token, err := GetToken(r)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}
