package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// assertDecimal compares amounts by value so 200 and 200.00 are equal.
func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, d(want).Equal(got), append([]any{"expected %s, got %s", want, got.String()}, msgAndArgs...)...)
}

// assertDecimalNear compares amounts to the penny.
func assertDecimalNear(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, d(want).Sub(got).Abs().LessThan(d("0.01")), "expected about %s, got %s", want, got.String())
}
