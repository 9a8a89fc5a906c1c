package format

import (
	"bytes"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	gjson "github.com/dhamidi/gobble/grammar/json"
)

// YAMLEncoder writes values as a YAML document. Object members keep their
// source order; of duplicate keys only the last is written.
type YAMLEncoder struct {
	w     io.Writer
	value gjson.Value
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w}
}

func (e *YAMLEncoder) Encode(v gjson.Value) error {
	e.value = v
	return write(e.w, e)
}

func (e *YAMLEncoder) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(yamlNode(e.value)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func yamlNode(v gjson.Value) *yaml.Node {
	switch v := v.(type) {
	case gjson.Bool:
		return scalar("!!bool", strconv.FormatBool(bool(v)))
	case gjson.Number:
		f := float64(v)
		if f == math.Trunc(f) && math.Abs(f) < 1e15 {
			return scalar("!!int", strconv.FormatFloat(f, 'f', -1, 64))
		}
		return scalar("!!float", strconv.FormatFloat(f, 'g', -1, 64))
	case gjson.String:
		return scalar("!!str", string(v))
	case gjson.Array:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v {
			n.Content = append(n.Content, yamlNode(item))
		}
		return n
	case gjson.Object:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		last := make(map[string]int, len(v))
		for i, m := range v {
			last[m.Key] = i
		}
		for i, m := range v {
			if last[m.Key] != i {
				continue
			}
			n.Content = append(n.Content, scalar("!!str", m.Key), yamlNode(m.Value))
		}
		return n
	}
	return scalar("!!null", "null")
}
