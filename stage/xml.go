package stage

import (
	"encoding/xml"
	"fmt"
	"strings"
)

type xmlDocument struct {
	Items []xmlItem `xml:"item"`
}

type xmlItem struct {
	Fields []xmlField `xml:",any"`
}

type xmlField struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

// ParseXML decodes the legacy layout: <item> elements with one child per field
// The scheduling key is named x in legacy files; frame is accepted as well
func ParseXML(data []byte) ([]Event, error) {
	var doc xmlDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode xml stage: %w: %w", ErrInvalidValue, err)
	}

	items := make([]*item, 0, len(doc.Items))
	for i, raw := range doc.Items {
		it := &item{index: i, fields: make(map[string]string, len(raw.Fields))}
		for _, f := range raw.Fields {
			name := f.XMLName.Local
			if _, dup := it.fields[name]; dup {
				return nil, it.errorf(name, fmt.Errorf("%w: duplicate field", ErrInvalidValue))
			}
			it.fields[name] = strings.TrimSpace(f.Value)
		}
		items = append(items, it)
	}
	return buildAll(items)
}
