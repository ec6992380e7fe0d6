package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("Alice"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("alice@example.com"))
	assert.True(t, IsValidEmail("a.b+c@sub.example.co"))
	assert.False(t, IsValidEmail("alice"))
	assert.False(t, IsValidEmail("alice@"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsInSlice(t *testing.T) {
	values := []string{"weekly", "biweekly", "monthly"}

	assert.True(t, IsInSlice("weekly", values))
	assert.False(t, IsInSlice("daily", values))
	assert.False(t, IsInSlice("", values))
}

func TestIsValidMeetingLink(t *testing.T) {
	assert.True(t, IsValidMeetingLink(""))
	assert.True(t, IsValidMeetingLink("https://meet.example.com/room"))
	assert.True(t, IsValidMeetingLink("http://example.com"))
	assert.False(t, IsValidMeetingLink("ftp://example.com"))
	assert.False(t, IsValidMeetingLink("not a link"))
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_time", Message: "required"},
		{Field: "end_time", Message: "must be after start_time"},
	}

	m := errs.ToMap()
	assert.Equal(t, "required", m["start_time"])
	assert.Equal(t, "must be after start_time", m["end_time"])
	assert.Contains(t, errs.Error(), "start_time: required")
}
