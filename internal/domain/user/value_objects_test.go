//go:build unit

package user_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"decor-rental/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	e, err := user.NewEmail("  Planner@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "planner@example.com", e.Value())
}

func TestNewPassword(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "minimum length", input: "12345678"},
		{name: "seven characters", input: "1234567", errIs: user.ErrPasswordTooWeak},
		{name: "multibyte counts runes", input: "ééééééé", errIs: user.ErrPasswordTooWeak},
		{name: "bcrypt limit", input: strings.Repeat("a", 72)},
		{name: "over bcrypt limit", input: strings.Repeat("a", 73), errIs: user.ErrPasswordTooLong},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := user.NewPassword(c.input)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.input, p.Value())
		})
	}
}

func TestPasswordIsRedacted(t *testing.T) {
	p, err := user.NewPassword("super-secret-1")
	require.NoError(t, err)

	assert.NotContains(t, fmt.Sprintf("%v %s", p, p), "super-secret-1")

	var buf bytes.Buffer
	slog.New(slog.NewTextHandler(&buf, nil)).Info("attempt", "password", p)
	assert.NotContains(t, buf.String(), "super-secret-1")
	assert.Contains(t, buf.String(), "[redacted]")
}
