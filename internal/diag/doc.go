// Package diag defines the diagnostic model shared by the parser and the
// semantic analyzer.
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form
//     such as SYN2003.
//   - Message – the exact human text, e.g. "Expected '(' after function name".
//   - Primary span plus its resolved Line/Column.
//   - Expected/Found – what the stage wanted and the token text it saw instead
//     ("end of input" when it ran out of tokens).
//
// Stages emit through a Reporter (usually a BagReporter around a Bag) so that
// limits such as --max-diagnostics live in one place. Rendering lives in
// internal/diagfmt; diag itself performs no IO.
package diag
