package util

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPrefixedID(t *testing.T) {
	id := NewPrefixedID("img")
	assert.True(t, strings.HasPrefix(id, "img_"))
	assert.Len(t, id, len("img_")+26)
	assert.Equal(t, strings.ToLower(id), id)
	assert.NotEqual(t, id, NewPrefixedID("img"))
}

func TestNullTimeHelpers(t *testing.T) {
	assert.False(t, TimePtrToNullTime(nil).Valid)
	assert.Nil(t, NullTimeToPtr(sql.NullTime{}))

	now := time.Now()
	nt := TimePtrToNullTime(&now)
	assert.True(t, nt.Valid)
	back := NullTimeToPtr(nt)
	if assert.NotNil(t, back) {
		assert.True(t, now.Equal(*back))
	}
	assert.False(t, TimeToNullTime(time.Time{}).Valid)
	assert.False(t, StringToNullString("").Valid)
	assert.Equal(t, sql.NullString{String: "x", Valid: true}, StringToNullString("x"))
}

func TestSameCategory(t *testing.T) {
	tests := []struct {
		diagnosis string
		category  string
		want      bool
	}{
		{"Cancer", "cancer", true},
		{"NORMAL", "normal", true},
		{"benign", "cancer", false},
		{"cancer ", "cancer", false},
		{"ÉCHO", "écho", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SameCategory(tt.diagnosis, tt.category), "%q vs %q", tt.diagnosis, tt.category)
	}
	assert.Equal(t, "melanoma", NormalizeCategory("Melanoma"))
}
