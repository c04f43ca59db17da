package dialect

import (
	"bytes"
	"strings"

	"fortio.org/safecast"

	"compsim/internal/lang"
	"compsim/internal/source"
)

type linePattern struct {
	Language lang.Language
	Score    int
	Reason   string
	Match    func(line string) bool
}

var linePatterns = []linePattern{
	{lang.Cpp, 6, "c++ standard header", func(l string) bool {
		return strings.HasPrefix(l, "#include <") && !strings.HasSuffix(l, ".h>")
	}},
	{lang.C, 4, "c header `.h`", func(l string) bool {
		return strings.HasPrefix(l, "#include") && strings.HasSuffix(l, ".h>")
	}},
	{lang.Cpp, 1, "preprocessor directive", func(l string) bool { return strings.HasPrefix(l, "#define") }},
	{lang.C, 1, "preprocessor directive", func(l string) bool { return strings.HasPrefix(l, "#define") }},
	{lang.Python, 4, "python block header `...:`", func(l string) bool {
		if !strings.HasSuffix(l, ":") {
			return false
		}
		for _, head := range []string{"def ", "class ", "if ", "elif ", "else", "for ", "while ", "try", "except", "with "} {
			if strings.HasPrefix(l, head) {
				return true
			}
		}
		return false
	}},
	{lang.Python, 2, "python comment", func(l string) bool {
		return strings.HasPrefix(l, "# ") && !strings.HasPrefix(l, "#include")
	}},
	{lang.Java, 4, "java annotation", func(l string) bool {
		return len(l) > 1 && l[0] == '@' && l[1] >= 'A' && l[1] <= 'Z'
	}},
	{lang.Python, 2, "python decorator", func(l string) bool {
		return len(l) > 1 && l[0] == '@' && l[1] >= 'a' && l[1] <= 'z'
	}},
	{lang.Java, 5, "java class declaration", func(l string) bool {
		return strings.HasPrefix(l, "public class ") || strings.HasPrefix(l, "public static void main")
	}},
	{lang.Java, 3, "java package declaration", func(l string) bool {
		return strings.HasPrefix(l, "package ") && strings.HasSuffix(l, ";")
	}},
}

var operatorSignals = []struct {
	text string
	keywordSignal
}{
	{"===", keywordSignal{lang.JavaScript, 5, "javascript strict equality `===`"}},
	{"!==", keywordSignal{lang.JavaScript, 5, "javascript strict inequality `!==`"}},
	{"=>", keywordSignal{lang.JavaScript, 3, "javascript arrow `=>`"}},
	{"::", keywordSignal{lang.Cpp, 4, "c++ scope operator `::`"}},
	{"->", keywordSignal{lang.C, 1, "member access `->`"}},
	{"**", keywordSignal{lang.Python, 1, "power operator `**`"}},
}

// Collect scans src and returns the evidence for every supported language.
func Collect(src []byte) *Evidence {
	e := NewEvidence()
	var offset int
	for line := range bytes.Lines(src) {
		observeLine(e, line, offset)
		offset += len(line)
	}
	observeWords(e, src)
	return e
}

func observeLine(e *Evidence, raw []byte, offset int) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return
	}
	sp := span(offset, offset+len(bytes.TrimRight(raw, "\r\n")))
	for _, p := range linePatterns {
		if p.Match(trimmed) {
			e.Add(Hint{Language: p.Language, Score: p.Score, Reason: p.Reason, Span: sp})
		}
	}
	for _, op := range operatorSignals {
		if idx := strings.Index(string(raw), op.text); idx >= 0 {
			e.Add(Hint{
				Language: op.Language,
				Score:    op.Score,
				Reason:   op.Reason,
				Span:     span(offset+idx, offset+idx+len(op.text)),
			})
		}
	}
}

func observeWords(e *Evidence, src []byte) {
	start := -1
	for i := 0; i <= len(src); i++ {
		if i < len(src) && isWordByte(src[i], start >= 0) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			RecordWord(e, string(src[start:i]), span(start, i))
			start = -1
		}
	}
}

func isWordByte(b byte, inWord bool) bool {
	switch {
	case b == '_', b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return inWord
	default:
		return false
	}
}

func span(start, end int) source.Span {
	s, err := safecast.Conv[uint32](start)
	if err != nil {
		return source.Span{}
	}
	en, err := safecast.Conv[uint32](end)
	if err != nil {
		return source.Span{}
	}
	return source.Span{Start: s, End: en}
}
