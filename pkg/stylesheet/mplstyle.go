package stylesheet

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/matzehuels/blogplot/pkg/chart"
	"github.com/matzehuels/blogplot/pkg/errors"
)

// Parse reads "key : value" lines. Blank lines and '#' comments are skipped;
// a '#' inside double quotes is part of the value.
func Parse(r io.Reader) (chart.Params, error) {
	params := chart.Params{}
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(stripComment(sc.Text()))
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidStyle, "line %d: missing ':' in %q", n, line)
		}
		key = strings.TrimSpace(key)
		if err := errors.ValidateParamKey(key); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidStyle, err, "line %d", n)
		}
		params[key] = Coerce(strings.TrimSpace(value))
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidStyle, err, "read style sheet")
	}
	return params, nil
}

func stripComment(line string) string {
	inQuote := false
	for i, r := range line {
		switch r {
		case '"':
			inQuote = !inQuote
		case '#':
			if !inQuote {
				return line[:i]
			}
		}
	}
	return line
}

// Coerce turns a raw style sheet value into bool, float64 or string.
func Coerce(v string) any {
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		return v[1 : len(v)-1]
	}
	switch strings.ToLower(v) {
	case "true":
		return true
	case "false":
		return false
	}
	if isHexColor(v) {
		return v
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return v
}

// isHexColor reports whether v is an unprefixed "rrggbb" color. Such values
// stay strings even when every digit is decimal, so "000000" keeps meaning
// black; Params.Float still parses them when a number is wanted.
func isHexColor(v string) bool {
	if len(v) != 6 {
		return false
	}
	for _, r := range v {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}
