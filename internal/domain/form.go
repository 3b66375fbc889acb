package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormInput is a loosely typed snapshot of the household questionnaire. Keys
// may be absent and values may be numbers, numeric strings or range keys such
// as "50to100"; accessors coerce and never fail.
type FormInput map[string]any

// Has reports whether key holds a meaningful value. Absent keys, nil, empty
// strings, false and numeric zero all count as not set.
func (f FormInput) Has(key string) bool {
	v, ok := f[key]
	if !ok || v == nil {
		return false
	}
	switch t := v.(type) {
	case string:
		return t != ""
	case bool:
		return t
	case decimal.Decimal:
		return !t.IsZero()
	}
	if d, ok := ParseNumber(v); ok {
		return !d.IsZero()
	}
	if fv, ok := v.(float64); ok && math.IsNaN(fv) {
		return false
	}
	return true
}

// String returns the value at key as a trimmed string. Numbers are formatted
// without exponent; other types yield "".
func (f FormInput) String(key string) string {
	v, ok := f[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case fmt.Stringer:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	}
	if d, ok := ParseNumber(v); ok {
		return d.String()
	}
	return ""
}

// StringOr returns the string at key, or def when it is empty.
func (f FormInput) StringOr(key, def string) string {
	if s := f.String(key); s != "" {
		return s
	}
	return def
}

// Is reports whether the string at key equals want.
func (f FormInput) Is(key, want string) bool {
	return f.String(key) == want
}

// Number returns the value at key when it is, or parses as, a finite number.
func (f FormInput) Number(key string) (decimal.Decimal, bool) {
	v, ok := f[key]
	if !ok || v == nil {
		return decimal.Zero, false
	}
	return ParseNumber(v)
}

// Decimal returns the numeric value at key; anything non-numeric yields zero.
func (f FormInput) Decimal(key string) decimal.Decimal {
	d, _ := f.Number(key)
	return d
}

// DecimalOr returns the numeric value at key, or def when the key holds no
// number.
func (f FormInput) DecimalOr(key string, def decimal.Decimal) decimal.Decimal {
	if d, ok := f.Number(key); ok {
		return d
	}
	return def
}

// Int returns the numeric value at key truncated to an int, or def when the
// key holds no number.
func (f FormInput) Int(key string, def int) int {
	d, ok := f.Number(key)
	if !ok {
		return def
	}
	return int(d.IntPart())
}

// Bool reports whether the value at key is an affirmative answer
// (true, "yes", "true", "on" or "1").
func (f FormInput) Bool(key string) bool {
	v, ok := f[key]
	if !ok || v == nil {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "yes", "true", "on", "1":
			return true
		}
		return false
	}
	d, ok := ParseNumber(v)
	return ok && d.Equal(decimal.NewFromInt(1))
}

// Records returns the list at key as nested form snapshots. Elements that are
// not maps are skipped.
func (f FormInput) Records(key string) []FormInput {
	v, ok := f[key]
	if !ok || v == nil {
		return nil
	}
	var out []FormInput
	switch list := v.(type) {
	case []FormInput:
		return list
	case []map[string]any:
		for _, m := range list {
			out = append(out, FormInput(m))
		}
	case []any:
		for _, item := range list {
			switch m := item.(type) {
			case map[string]any:
				out = append(out, FormInput(m))
			case FormInput:
				out = append(out, m)
			}
		}
	}
	return out
}

// ParseNumber coerces v to a decimal when it is a finite number or a string
// holding one.
func ParseNumber(v any) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case decimal.Decimal:
		return t, true
	case *decimal.Decimal:
		if t == nil {
			return decimal.Zero, false
		}
		return *t, true
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(t), true
	case float32:
		return ParseNumber(float64(t))
	case int:
		return decimal.NewFromInt(int64(t)), true
	case int8:
		return decimal.NewFromInt(int64(t)), true
	case int16:
		return decimal.NewFromInt(int64(t)), true
	case int32:
		return decimal.NewFromInt(int64(t)), true
	case int64:
		return decimal.NewFromInt(t), true
	case uint:
		return decimal.NewFromInt(int64(t)), true
	case uint32:
		return decimal.NewFromInt(int64(t)), true
	case uint64:
		return decimal.NewFromInt(int64(t)), true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return decimal.Zero, false
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	case interface{ String() string }:
		// json.Number from either encoding/json or goccy/go-json
		return ParseNumber(t.String())
	}
	return decimal.Zero, false
}
