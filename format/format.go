package format

import (
	"encoding"
	"fmt"
	"io"

	gjson "github.com/dhamidi/gobble/grammar/json"
)

// Encoder writes JSON values in one output format. MarshalText returns
// the encoding of the value most recently passed to Encode.
type Encoder interface {
	encoding.TextMarshaler
	Encode(v gjson.Value) error
}

// Names lists the formats accepted by New.
var Names = []string{"json", "yaml", "line"}

// New returns the encoder for the named format.
func New(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "json":
		return NewJSONEncoder(w), nil
	case "yaml":
		return NewYAMLEncoder(w), nil
	case "line":
		return NewLineEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format %q (want one of %v)", name, Names)
}

func write(w io.Writer, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
