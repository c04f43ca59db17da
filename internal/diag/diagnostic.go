package diag

import (
	"compsim/internal/source"
)

// EndOfInput is the Found text used when a stage ran out of tokens.
const EndOfInput = "end of input"

type Diagnostic struct {
	Severity Severity    `json:"severity" msgpack:"severity"`
	Code     Code        `json:"code" msgpack:"code"`
	Message  string      `json:"message" msgpack:"message"`
	Primary  source.Span `json:"-" msgpack:"span"`
	Line     uint32      `json:"line" msgpack:"line"`
	Column   uint32      `json:"column" msgpack:"column"`
	Expected string      `json:"expected,omitempty" msgpack:"expected,omitempty"`
	Found    string      `json:"found,omitempty" msgpack:"found,omitempty"`
}
