package format

import (
	"bytes"
	"encoding/json"
	"io"

	gjson "github.com/dhamidi/gobble/grammar/json"
)

// JSONEncoder writes canonical JSON: two-space indentation, object keys
// sorted, the last of duplicate keys kept and no HTML escaping.
type JSONEncoder struct {
	w     io.Writer
	value gjson.Value
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(v gjson.Value) error {
	e.value = v
	return write(e.w, e)
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(plain(e.value)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// plain converts v to the types encoding/json understands. Maps make the
// encoder sort keys.
func plain(v gjson.Value) any {
	switch v := v.(type) {
	case gjson.Bool:
		return bool(v)
	case gjson.Number:
		return float64(v)
	case gjson.String:
		return string(v)
	case gjson.Array:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = plain(item)
		}
		return items
	case gjson.Object:
		members := make(map[string]any, len(v))
		for _, m := range v {
			members[m.Key] = plain(m.Value)
		}
		return members
	}
	return nil
}
