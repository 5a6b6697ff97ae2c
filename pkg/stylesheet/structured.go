package stylesheet

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/blogplot/pkg/chart"
	"github.com/matzehuels/blogplot/pkg/errors"
)

// ParseTOML decodes a TOML style sheet.
//
//	[axes]
//	edgecolor = "#e6e6e6"
//	spines = { top = false, right = false }
func ParseTOML(data []byte) (chart.Params, error) {
	var raw map[string]any
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidStyle, err, "decode toml style sheet")
	}
	return flatten(raw)
}

// ParseYAML decodes a YAML style sheet.
func ParseYAML(data []byte) (chart.Params, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidStyle, err, "decode yaml style sheet")
	}
	return flatten(raw)
}

func flatten(raw map[string]any) (chart.Params, error) {
	params := chart.Params{}
	if err := flattenInto(params, "", raw); err != nil {
		return nil, err
	}
	return params, nil
}

func flattenInto(out chart.Params, prefix string, m map[string]any) error {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			if err := flattenInto(out, key, nested); err != nil {
				return err
			}
			continue
		}
		if err := errors.ValidateParamKey(key); err != nil {
			return err
		}
		out[key] = scalar(v)
	}
	return nil
}

// scalar normalizes decoded values to the kinds chart.Params stores.
// Lists become comma-separated strings.
func scalar(v any) any {
	switch x := v.(type) {
	case bool, string, float64:
		return x
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case uint64:
		return float64(x)
	case float32:
		return float64(x)
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = fmt.Sprint(scalar(e))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(x)
	}
}
