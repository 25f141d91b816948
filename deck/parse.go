package deck

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseSource decodes question source text. Names ending in .json are read
// as JSON, everything else as YAML. A document that is not a list yields an
// empty slice.
func ParseSource(name string, text []byte) ([]any, error) {
	var doc any
	if strings.HasSuffix(strings.ToLower(name), ".json") {
		if err := json.Unmarshal(text, &doc); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrUnparseable, name, err)
		}
	} else {
		if err := yaml.Unmarshal(text, &doc); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrUnparseable, name, err)
		}
	}

	items, ok := doc.([]any)
	if !ok {
		return []any{}, nil
	}
	return items, nil
}
