package store

import (
	"time"

	"compsim/internal/tree"
)

// schemaVersion is bumped whenever Record changes shape.
const schemaVersion uint16 = 1

// Token is the stored form of a token.
type Token struct {
	Kind   string `msgpack:"kind" json:"kind"`
	Text   string `msgpack:"text" json:"text"`
	Line   uint32 `msgpack:"line" json:"line"`
	Column uint32 `msgpack:"column" json:"column"`
}

// Diagnostic is the stored form of a diagnostic.
type Diagnostic struct {
	Severity string `msgpack:"severity" json:"severity"`
	Code     string `msgpack:"code" json:"code"`
	Message  string `msgpack:"message" json:"message"`
	Line     uint32 `msgpack:"line" json:"line"`
	Column   uint32 `msgpack:"column" json:"column"`
	Expected string `msgpack:"expected,omitempty" json:"expected,omitempty"`
	Found    string `msgpack:"found,omitempty" json:"found,omitempty"`
}

// Record is one saved compilation.
type Record struct {
	Schema    uint16       `msgpack:"schema" json:"-"`
	ID        string       `msgpack:"id" json:"id"`
	Path      string       `msgpack:"path,omitempty" json:"path,omitempty"`
	Code      string       `msgpack:"code" json:"code"`
	Language  string       `msgpack:"language" json:"language"`
	Tokens    []Token      `msgpack:"tokens" json:"tokens"`
	Tree      *tree.Node   `msgpack:"tree,omitempty" json:"tree,omitempty"`
	Success   bool         `msgpack:"success" json:"success"`
	Errors    []Diagnostic `msgpack:"errors" json:"errors"`
	Warnings  []Diagnostic `msgpack:"warnings" json:"warnings"`
	Stage     string       `msgpack:"stage" json:"stage"`
	CreatedAt time.Time    `msgpack:"created_at" json:"created_at"`
}
