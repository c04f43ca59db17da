package lang

import (
	"path/filepath"
	"strings"
)

// Language is one of the closed set of source languages the front-end accepts.
type Language uint8

const (
	// Invalid is the zero value; it never names a real language.
	Invalid Language = iota
	JavaScript
	Python
	C
	Cpp
	Java
)

// All lists every supported language in registry order.
var All = [...]Language{JavaScript, Python, C, Cpp, Java}

var aliases = map[string]Language{
	"javascript": JavaScript,
	"js":         JavaScript,
	"python":     Python,
	"py":         Python,
	"c":          C,
	"cpp":        Cpp,
	"c++":        Cpp,
	"java":       Java,
}

// Parse maps a language tag to a Language. Tags are case-insensitive.
func Parse(tag string) (Language, error) {
	if l, ok := aliases[strings.ToLower(strings.TrimSpace(tag))]; ok {
		return l, nil
	}
	return Invalid, &ConfigError{Tag: tag}
}

// ForPath guesses the language from a file extension.
func ForPath(path string) (Language, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".mjs", ".cjs":
		return JavaScript, true
	case ".py":
		return Python, true
	case ".c", ".h":
		return C, true
	case ".cpp", ".cc", ".cxx", ".hpp", ".hh":
		return Cpp, true
	case ".java":
		return Java, true
	default:
		return Invalid, false
	}
}

// Valid reports whether l is a member of the closed set.
func (l Language) Valid() bool {
	switch l {
	case JavaScript, Python, C, Cpp, Java:
		return true
	case Invalid:
		return false
	default:
		return false
	}
}

// String returns the canonical tag.
func (l Language) String() string {
	switch l {
	case JavaScript:
		return "javascript"
	case Python:
		return "python"
	case C:
		return "c"
	case Cpp:
		return "cpp"
	case Java:
		return "java"
	case Invalid:
		return "invalid"
	default:
		return "invalid"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Language) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, &ConfigError{Tag: l.String()}
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so config files and
// JSON payloads can carry the tag directly.
func (l *Language) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}
