package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTotalPages(t *testing.T) {
	testCases := []struct {
		name     string
		total    int64
		perPage  int
		expected int
	}{
		{name: "Exact fit", total: 40, perPage: 20, expected: 2},
		{name: "Partial last page", total: 41, perPage: 20, expected: 3},
		{name: "Empty", total: 0, perPage: 20, expected: 0},
		{name: "Single item", total: 1, perPage: 20, expected: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CalculateTotalPages(tc.total, tc.perPage))
		})
	}
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(1, 20))
	assert.Equal(t, 20, CalculateOffset(2, 20))
	assert.Equal(t, 0, CalculateOffset(0, 20))
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, ParseInt("5", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 1, ParseInt("-3", 1))
}

func TestParseBool(t *testing.T) {
	assert.True(t, ParseBool("true"))
	assert.True(t, ParseBool("1"))
	assert.False(t, ParseBool("false"))
	assert.False(t, ParseBool(""))
	assert.False(t, ParseBool("nope"))
}

func TestGenerateOTP(t *testing.T) {
	otp := GenerateOTP(6)
	require.Len(t, otp, 6)
	for _, c := range otp {
		assert.True(t, c >= '0' && c <= '9', "OTP must be digits only, got %q", otp)
	}

	// Zero or negative length falls back to six digits.
	assert.Len(t, GenerateOTP(0), 6)
}

func TestGenerateOrderID(t *testing.T) {
	orderID := GenerateOrderID()
	assert.True(t, strings.HasPrefix(orderID, "TIX-"), "got %q", orderID)
	assert.Len(t, strings.Split(orderID, "-"), 4)
}

func TestGenerateTransactionID(t *testing.T) {
	assert.True(t, strings.HasPrefix(GenerateTransactionID(), "TRX-"))
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestValidateStruct(t *testing.T) {
	type sample struct {
		Email string `json:"email" validate:"required,email"`
		Name  string `json:"name" validate:"required,min=2"`
	}

	errs := ValidateStruct(sample{Email: "not-an-email", Name: "x"})
	require.Len(t, errs, 2)
	assert.Contains(t, errs, "Email")
	assert.Contains(t, errs, "Name")

	errs = ValidateStruct(sample{Email: "a@b.com", Name: "ok"})
	assert.Empty(t, errs)
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "ticket-booking", config.App.Name)
	assert.Equal(t, "3001", config.App.Port)
	assert.Equal(t, 24, config.Session.ExpiryHours)
	assert.Equal(t, 6, config.OTP.Length)
	assert.Equal(t, "Administrator", config.Admin.Name)
}
