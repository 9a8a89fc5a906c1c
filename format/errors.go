package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/gobble/parse"
)

// ErrorJSONEncoder writes a parse error and its context chain as JSON,
// for editors and scripts that consume diagnostics.
type ErrorJSONEncoder struct {
	w   io.Writer
	err *parse.Error
}

func NewErrorJSONEncoder(w io.Writer) *ErrorJSONEncoder {
	return &ErrorJSONEncoder{w: w}
}

func (e *ErrorJSONEncoder) Encode(err *parse.Error) error {
	e.err = err
	text, merr := e.MarshalText()
	if merr != nil {
		return merr
	}
	_, werr := e.w.Write(append(text, '\n'))
	return werr
}

func (e *ErrorJSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(errorToJSON(e.err), "", "  ")
}

type jsonError struct {
	Message  string       `json:"message"`
	Expected []string     `json:"expected,omitempty"`
	Found    *string      `json:"found,omitempty"`
	Position jsonPosition `json:"position"`
	Fatal    bool         `json:"fatal,omitempty"`
	Cause    *jsonError   `json:"cause,omitempty"`
}

// jsonPosition is one-based, like the positions in rendered errors.
type jsonPosition struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

func errorToJSON(e *parse.Error) *jsonError {
	if e == nil {
		return nil
	}
	je := &jsonError{
		Message: e.Summary(),
		Position: jsonPosition{
			Offset: e.Pos.Offset,
			Line:   e.Pos.Line + 1,
			Column: e.Pos.Column + 1,
		},
		Fatal: e.Fatal,
		Cause: errorToJSON(e.Child),
	}
	if !e.Pos.End {
		found := e.Found
		je.Found = &found
	}
	switch exp := e.Expected.(type) {
	case parse.ExpMessage:
	case parse.ExpOneOf:
		for _, x := range exp {
			je.Expected = append(je.Expected, x.String())
		}
	case nil:
	default:
		je.Expected = []string{exp.String()}
	}
	return je
}
