package coercer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// TypeCoercer converts raw spreadsheet cells into typed values with fixed rules
type TypeCoercer struct {
	config CoercionConfig
}

// CoercionConfig defines the coercion rules
type CoercionConfig struct {
	AllowThousandsSeparators bool `json:"allow_thousands_separators"` // "1,000" -> 1000
	AllowParenNegatives      bool `json:"allow_paren_negatives"`      // "(12)" -> -12
	NormalizeStrings         bool `json:"normalize_strings"`          // collapse inner whitespace
}

// DefaultCoercionConfig returns sensible defaults
func DefaultCoercionConfig() CoercionConfig {
	return CoercionConfig{
		AllowThousandsSeparators: true,
		AllowParenNegatives:      true,
		NormalizeStrings:         true,
	}
}

// NewTypeCoercer creates a coercer with the given config
func NewTypeCoercer(config CoercionConfig) *TypeCoercer {
	return &TypeCoercer{config: config}
}

// ParseNumeric parses a cell as a finite float
func (c *TypeCoercer) ParseNumeric(raw string) (float64, error) {
	cleanVal := strings.TrimSpace(raw)
	if cleanVal == "" {
		return 0, fmt.Errorf("empty value")
	}

	// Handle parentheses for negative numbers: (123) -> -123
	isNegative := false
	if c.config.AllowParenNegatives && strings.HasPrefix(cleanVal, "(") && strings.HasSuffix(cleanVal, ")") {
		cleanVal = strings.TrimSuffix(strings.TrimPrefix(cleanVal, "("), ")")
		isNegative = true
	}

	if c.config.AllowThousandsSeparators {
		cleanVal = stripThousands(cleanVal)
	}

	if isNegative {
		cleanVal = "-" + cleanVal
	}

	val, err := strconv.ParseFloat(cleanVal, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	if math.IsInf(val, 0) || math.IsNaN(val) {
		return 0, fmt.Errorf("not a finite number: %q", raw)
	}
	return val, nil
}

// ParseInteger parses a cell holding a whole number; "1.0" is accepted, "1.5" is not
func (c *TypeCoercer) ParseInteger(raw string) (int, error) {
	val, err := c.ParseNumeric(raw)
	if err != nil {
		return 0, err
	}
	if val != math.Trunc(val) {
		return 0, fmt.Errorf("not a whole number: %q", raw)
	}
	return int(val), nil
}

// NormalizeString trims the cell and, when configured, collapses runs of whitespace.
// Case is preserved: site names are matched exactly.
func (c *TypeCoercer) NormalizeString(raw string) string {
	s := strings.TrimSpace(raw)
	if c.config.NormalizeStrings {
		s = strings.Join(strings.Fields(s), " ")
	}
	return s
}

// stripThousands removes comma or space group separators when every group after the
// first has exactly three digits, so "1,000" and "12 500.5" parse while "1,5" is left alone.
func stripThousands(s string) string {
	for _, sep := range []string{",", " "} {
		if !strings.Contains(s, sep) {
			continue
		}
		intPart, frac := s, ""
		if dot := strings.Index(s, "."); dot >= 0 {
			intPart, frac = s[:dot], s[dot:]
		}
		groups := strings.Split(intPart, sep)
		valid := len(groups[0]) > 0 && len(groups[0]) <= 4
		for _, g := range groups[1:] {
			if len(g) != 3 || strings.Trim(g, "0123456789") != "" {
				valid = false
				break
			}
		}
		if valid {
			s = strings.Join(groups, "") + frac
		}
	}
	return s
}
