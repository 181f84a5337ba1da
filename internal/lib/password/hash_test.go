package password

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestGetHashWithCost(t *testing.T) {
	tests := []struct {
		name     string
		password string
		cost     int
	}{
		{name: "regular password", password: "password123", cost: bcrypt.MinCost},
		{name: "password with special chars", password: "p@ssw0rd!@#$%^&*()", cost: bcrypt.MinCost},
		{name: "short password", password: "short", cost: bcrypt.MinCost},
		{name: "cost out of range falls back to default", password: "fallback", cost: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := GetHashWithCost(tt.password, tt.cost)
			require.NoError(t, err)
			assert.NotEmpty(t, hash)
			assert.NotEqual(t, tt.password, hash)
			assert.NoError(t, CompareHash(hash, tt.password))
		})
	}
}

func TestGetHashWithCost_TooLong(t *testing.T) {
	_, err := GetHashWithCost(strings.Repeat("a", MaxLength+1), bcrypt.MinCost)
	require.ErrorIs(t, err, ErrTooLong)

	hash, err := GetHashWithCost(strings.Repeat("a", MaxLength), bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
}

func TestCompareHash(t *testing.T) {
	correctHash, err := GetHashWithCost("correct_password", bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name         string
		hash         string
		password     string
		wantErr      bool
		wantMismatch bool
	}{
		{name: "correct password", hash: correctHash, password: "correct_password"},
		{name: "wrong password", hash: correctHash, password: "wrong_password", wantErr: true, wantMismatch: true},
		{name: "empty password", hash: correctHash, password: "", wantErr: true, wantMismatch: true},
		{name: "corrupted hash", hash: "not-a-bcrypt-hash", password: "correct_password", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CompareHash(tt.hash, tt.password)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMismatch, errors.Is(err, ErrMismatch))
		})
	}
}
