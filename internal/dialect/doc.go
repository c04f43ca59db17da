// Package dialect guesses which supported language a snippet is written in
// when neither a flag nor a file extension says so.
//
// Evidence is collected from the raw bytes, without a language profile:
// keyword-like words and a few line patterns vote for a language, and the
// classifier picks the dominant one. Detection never changes how a snippet is
// tokenized once a language is chosen.
package dialect
