package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewName(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"Zoo", true},
		{"Gardens by the Bay", true},
		{"Area 51", true},
		{"", false},
		{" ", false},
		{" Zoo", false},
		{"Zoo!", false},
		{"Café", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			n, err := NewName(tt.input)
			if !tt.valid {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidValue)
				assert.Equal(t, NameConstraints, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, n.String())
		})
	}
}

func TestNewPriority(t *testing.T) {
	for _, ok := range []string{"1", "5", "10"} {
		p, err := NewPriority(ok)
		require.NoError(t, err, ok)
		assert.Equal(t, ok, p.String())
	}
	for _, bad := range []string{"0", "11", "-1", "05", "1.5", "high", ""} {
		_, err := NewPriority(bad)
		assert.Error(t, err, bad)
	}

	p, _ := NewPriority("7")
	assert.Equal(t, 7, p.Value())
	assert.Equal(t, 0, Priority{}.Value())
}

func TestNewContact(t *testing.T) {
	tests := []struct {
		input string
		email bool
		phone bool
	}{
		{"a@b.com", true, false},
		{"info@zoo.example.sg", true, false},
		{"first.last+tag@example.org", true, false},
		{"911", false, true},
		{"+6591234567", false, true},
	}
	for _, tt := range tests {
		c, err := NewContact(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.email, c.IsEmail(), tt.input)
		assert.Equal(t, tt.phone, c.IsPhone(), tt.input)
	}

	for _, bad := range []string{"", "12", "a@", "@b.com", "a@b.c", ".a@b.com", "call me"} {
		_, err := NewContact(bad)
		assert.Error(t, err, bad)
	}
}

func TestFreeTextValues(t *testing.T) {
	_, err := NewAddress("")
	assert.Error(t, err)
	_, err = NewAddress("  leading space")
	assert.Error(t, err)
	a, err := NewAddress("80 Mandai Lake Rd, #01-01")
	require.NoError(t, err)
	assert.Equal(t, "80 Mandai Lake Rd, #01-01", a.String())

	_, err = NewComment(" ")
	assert.Error(t, err)
	_, err = NewActivities("")
	assert.Error(t, err)
	assert.False(t, Activities{}.IsSet())
}

func TestNewTag(t *testing.T) {
	_, err := NewTag("family")
	require.NoError(t, err)
	for _, bad := range []string{"", "two words", "kid-friendly"} {
		_, err := NewTag(bad)
		assert.Error(t, err, bad)
	}
}

func TestLocationNameIdentityIgnoresCase(t *testing.T) {
	a, err := NewLocationName("Sentosa")
	require.NoError(t, err)
	b, err := NewLocationName("SENTOSA")
	require.NoError(t, err)
	assert.True(t, a.SameAs(b))
	assert.NotEqual(t, a, b)
}

func TestNewOpeningHours(t *testing.T) {
	h, err := NewOpeningHours("09:00-17:30")
	require.NoError(t, err)
	assert.Equal(t, "09:00", h.OpensAt())
	assert.Equal(t, "17:30", h.ClosesAt())
	assert.False(t, h.SpansMidnight())
	assert.True(t, h.IsOpenAt(clock(12, 0)))
	assert.False(t, h.IsOpenAt(clock(17, 30)))
	assert.False(t, h.IsOpenAt(clock(8, 59)))

	night, err := NewOpeningHours("19:15–02:00")
	require.NoError(t, err)
	assert.Equal(t, "19:15-02:00", night.String())
	assert.True(t, night.SpansMidnight())
	assert.True(t, night.IsOpenAt(clock(23, 0)))
	assert.True(t, night.IsOpenAt(clock(1, 59)))
	assert.False(t, night.IsOpenAt(clock(12, 0)))

	allDay, err := NewOpeningHours("00:00-00:00")
	require.NoError(t, err)
	assert.True(t, allDay.IsOpenAt(clock(4, 0)))

	for _, bad := range []string{"", "9:00-17:00", "09:00", "24:00-01:00", "09:60-10:00", "09:00-17:00-18:00"} {
		_, err := NewOpeningHours(bad)
		assert.Error(t, err, bad)
	}
}

func TestNewPrice(t *testing.T) {
	tests := []struct {
		input  string
		amount float64
		unit   string
	}{
		{"12", 12, ""},
		{"12.50", 12.5, ""},
		{"$40", 40, "$"},
		{"SGD 39.90", 39.9, "SGD"},
		{"30 SGD", 30, "SGD"},
		{"15€", 15, "€"},
	}
	for _, tt := range tests {
		p, err := NewPrice(tt.input)
		require.NoError(t, err, tt.input)
		assert.InDelta(t, tt.amount, p.Amount(), 0.0001, tt.input)
		assert.Equal(t, tt.unit, p.Unit(), tt.input)
		assert.True(t, p.IsSet())
	}

	for _, bad := range []string{"", "-5", "1.234", "USD 5 USD", "ABCD 5", "free"} {
		_, err := NewPrice(bad)
		assert.Error(t, err, bad)
	}
}

func TestValidationErrorCarriesField(t *testing.T) {
	_, err := NewPriority("11")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "priority", verr.Field)
	assert.Equal(t, "11", verr.Value)
}

func clock(h, m int) time.Time {
	return time.Date(2024, 1, 1, h, m, 0, 0, time.UTC)
}
