package dialect

import (
	"compsim/internal/lang"
	"compsim/internal/source"
)

type keywordSignal struct {
	Language lang.Language
	Score    int
	Reason   string
}

func kw(l lang.Language, score int, word string) keywordSignal {
	return keywordSignal{Language: l, Score: score, Reason: l.String() + " word `" + word + "`"}
}

// Слова, общие для нескольких языков, голосуют за каждый с малым весом.
var keywordSignals = map[string][]keywordSignal{
	// JavaScript
	"function":  {kw(lang.JavaScript, 4, "function")},
	"const":     {kw(lang.JavaScript, 2, "const"), kw(lang.C, 1, "const"), kw(lang.Cpp, 1, "const")},
	"let":       {kw(lang.JavaScript, 3, "let")},
	"var":       {kw(lang.JavaScript, 3, "var")},
	"undefined": {kw(lang.JavaScript, 4, "undefined")},
	"console":   {kw(lang.JavaScript, 4, "console")},
	"typeof":    {kw(lang.JavaScript, 4, "typeof")},
	"await":     {kw(lang.JavaScript, 2, "await"), kw(lang.Python, 1, "await")},

	// Python
	"def":    {kw(lang.Python, 4, "def")},
	"elif":   {kw(lang.Python, 5, "elif")},
	"None":   {kw(lang.Python, 4, "None")},
	"True":   {kw(lang.Python, 3, "True")},
	"False":  {kw(lang.Python, 3, "False")},
	"lambda": {kw(lang.Python, 3, "lambda")},
	"self":   {kw(lang.Python, 2, "self")},
	"print":  {kw(lang.Python, 2, "print")},
	"pass":   {kw(lang.Python, 3, "pass")},

	// C
	"printf":   {kw(lang.C, 3, "printf"), kw(lang.Cpp, 1, "printf")},
	"malloc":   {kw(lang.C, 4, "malloc")},
	"struct":   {kw(lang.C, 2, "struct"), kw(lang.Cpp, 1, "struct")},
	"typedef":  {kw(lang.C, 3, "typedef"), kw(lang.Cpp, 1, "typedef")},
	"sizeof":   {kw(lang.C, 2, "sizeof"), kw(lang.Cpp, 1, "sizeof")},
	"unsigned": {kw(lang.C, 2, "unsigned"), kw(lang.Cpp, 1, "unsigned")},

	// C++
	"std":       {kw(lang.Cpp, 5, "std")},
	"cout":      {kw(lang.Cpp, 5, "cout")},
	"namespace": {kw(lang.Cpp, 4, "namespace")},
	"template":  {kw(lang.Cpp, 4, "template")},
	"nullptr":   {kw(lang.Cpp, 5, "nullptr")},
	"auto":      {kw(lang.Cpp, 2, "auto")},

	// Java
	"public":     {kw(lang.Java, 2, "public"), kw(lang.Cpp, 1, "public")},
	"static":     {kw(lang.Java, 1, "static"), kw(lang.C, 1, "static"), kw(lang.Cpp, 1, "static")},
	"extends":    {kw(lang.Java, 3, "extends")},
	"implements": {kw(lang.Java, 4, "implements")},
	"String":     {kw(lang.Java, 3, "String")},
	"System":     {kw(lang.Java, 4, "System")},
	"final":      {kw(lang.Java, 3, "final")},
	"import":     {kw(lang.Java, 1, "import"), kw(lang.Python, 1, "import"), kw(lang.JavaScript, 1, "import")},
}

// RecordWord collects keyword evidence for a word of the snippet.
func RecordWord(e *Evidence, word string, span source.Span) {
	if e == nil || word == "" {
		return
	}
	for _, sig := range keywordSignals[word] {
		e.Add(Hint{
			Language: sig.Language,
			Score:    sig.Score,
			Reason:   sig.Reason,
			Span:     span,
		})
	}
}
