package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	gjson "github.com/dhamidi/gobble/grammar/json"
	"github.com/dhamidi/gobble/parse"
	"github.com/dhamidi/gobble/parse/common"
)

// LineEncoder writes one tab-separated line per value: its path, its kind
// and either its scalar text or, for containers, the number of children.
//
//	$	object	1
//	$.tags	array	2
//	$.tags[0]	string	"a"
//	$.tags[1]	null	-
//
// The output is meant for grep, cut and awk.
type LineEncoder struct {
	w     io.Writer
	value gjson.Value
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(v gjson.Value) error {
	e.value = v
	return write(e.w, e)
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	writeLines(&sb, "$", e.value)
	return []byte(sb.String()), nil
}

func writeLines(sb *strings.Builder, path string, v gjson.Value) {
	kind, text := describe(v)
	fmt.Fprintf(sb, "%s\t%s\t%s\n", path, kind, text)

	switch v := v.(type) {
	case gjson.Array:
		for i, item := range v {
			writeLines(sb, fmt.Sprintf("%s[%d]", path, i), item)
		}
	case gjson.Object:
		for _, m := range v {
			writeLines(sb, memberPath(path, m.Key), m.Value)
		}
	}
}

func describe(v gjson.Value) (kind, text string) {
	switch v := v.(type) {
	case gjson.Bool:
		return "bool", strconv.FormatBool(bool(v))
	case gjson.Number:
		return "number", strconv.FormatFloat(float64(v), 'g', -1, 64)
	case gjson.String:
		return "string", strconv.Quote(string(v))
	case gjson.Array:
		return "array", strconv.Itoa(len(v))
	case gjson.Object:
		return "object", strconv.Itoa(len(v))
	}
	return "null", "-"
}

var bareKey = parse.Complete(common.Ident)

// memberPath uses dot notation for keys that are identifiers and
// bracketed quotes for everything else.
func memberPath(path, key string) string {
	if _, err := parse.Run(bareKey, key); err == nil {
		return path + "." + key
	}
	return path + "[" + strconv.Quote(key) + "]"
}
