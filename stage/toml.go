package stage

import (
	"fmt"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

type tomlDocument struct {
	Name  string           `toml:"name"`
	Items []map[string]any `toml:"item"`
}

// ParseTOML decodes a TOML stage: an array of [[item]] tables
// Weapon attributes may be given as a special string or an [item.weapon] table
func ParseTOML(data []byte) ([]Event, error) {
	var doc tomlDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode toml stage: %w: %w", ErrInvalidValue, err)
	}

	items := make([]*item, 0, len(doc.Items))
	for i, raw := range doc.Items {
		it := &item{index: i, fields: make(map[string]string, len(raw))}
		for k, v := range raw {
			if k == "weapon" {
				table, ok := v.(map[string]any)
				if !ok {
					return nil, it.errorf(k, fmt.Errorf("%w: expected table, got %T", ErrInvalidValue, v))
				}
				it.attrs = make(map[string]string, len(table))
				for ak, av := range table {
					s, err := tomlScalar(av)
					if err != nil {
						return nil, it.errorf("weapon."+ak, err)
					}
					it.attrs[ak] = s
				}
				continue
			}
			s, err := tomlScalar(v)
			if err != nil {
				return nil, it.errorf(k, err)
			}
			it.fields[k] = s
		}
		items = append(items, it)
	}
	return buildAll(items)
}

// tomlScalar renders a decoded TOML scalar in the string form item validation expects
func tomlScalar(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return "", fmt.Errorf("%w: unsupported value type %T", ErrInvalidValue, v)
	}
}

func buildAll(items []*item) ([]Event, error) {
	events := make([]Event, 0, len(items))
	for _, it := range items {
		ev, err := it.build()
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}
