package lang

import (
	"cmp"
	"slices"
)

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// longestFirst orders operators so that a prefix never shadows a longer match.
func longestFirst(list ...string) []string {
	out := slices.Clone(list)
	slices.SortStableFunc(out, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})
	return out
}

var cTypeIntroducers = []string{"int", "void", "float", "double", "char", "long", "short"}

func javascriptProfile() *Profile {
	return &Profile{
		Language:     JavaScript,
		LineComment:  "//",
		BlockComment: true,
		Number:       NumberGrammar{Hex: true, PrefixOctal: true, Binary: true},
		String:       StringGrammar{Double: true, Single: true, Backtick: true},
		Punct:        "(){}[];,.",
		Operators: longestFirst(
			"+", "-", "*", "/", "=", "==", "===", "!=", "!==", ">", "<", ">=", "<=",
			"&&", "||", "!", "++", "--", "+=", "-=", "*=", "/=", "%", "&", "|", "^",
			"~", "<<", ">>", ">>>", "...", "=>",
		),
		Keywords: set(
			"if", "else", "while", "for", "function", "return", "var", "let", "const",
			"class", "import", "export", "from", "true", "false", "null", "undefined",
			"try", "catch", "finally", "throw", "async", "await", "new", "this", "super",
			"extends",
		),
		Builtins: set(
			"console", "Math", "Array", "Object", "String", "Number", "Boolean", "Date",
			"RegExp", "Map", "Set", "Promise", "JSON", "Error",
		),
		Introducers: set("function"),
		IdentDollar: true,
		BraceBody:   true,
	}
}

func pythonProfile() *Profile {
	return &Profile{
		Language:    Python,
		HashComment: true,
		Number:      NumberGrammar{Hex: true, PrefixOctal: true, Binary: true},
		String:      StringGrammar{Double: true, Single: true, TripleQuoted: true},
		Punct:       "(){}[]:,.",
		Operators: longestFirst(
			"+", "-", "*", "/", "=", "==", "!=", ">", "<", ">=", "<=", "**", "//", "%",
			"+=", "-=", "*=", "/=", "//=", "%=", "**=", "@", "@=", "&", "|", "^", "~",
			"<<", ">>", "...",
		),
		Keywords: set(
			"if", "else", "elif", "while", "for", "def", "return", "class", "import",
			"from", "as", "try", "except", "finally", "with", "True", "False", "None",
			"and", "or", "not", "in", "is", "lambda", "pass", "break", "continue",
			"global", "nonlocal", "yield", "async", "await", "raise", "assert", "del",
		),
		Builtins: set(
			"print", "input", "len", "range", "list", "dict", "set", "tuple", "str",
			"int", "float", "bool", "map", "filter", "reduce", "sum", "max", "min",
			"sorted", "zip", "enumerate", "open", "file", "os", "sys", "math", "random",
			"re", "datetime", "collections",
		),
		Introducers:      set("def"),
		UsesIndentation:  true,
		ColonAfterHeader: true,
	}
}

func cProfile() *Profile {
	return &Profile{
		Language:     C,
		LineComment:  "//",
		BlockComment: true,
		Number:       NumberGrammar{Hex: true, LegacyOctal: true, Suffixes: "lLfF"},
		String:       StringGrammar{Double: true, CharLiteral: true},
		Punct:        "(){}[];,.",
		Operators: longestFirst(
			"+", "-", "*", "/", "=", "==", "!=", ">", "<", ">=", "<=", "&&", "||", "!",
			"++", "--", "+=", "-=", "*=", "/=", "%", "&", "|", "^", "~", "<<", ">>",
			"->", ".",
		),
		Keywords: set(
			"if", "else", "while", "for", "return", "int", "float", "double", "char",
			"void", "struct", "typedef", "switch", "case", "break", "continue",
			"default", "do", "const", "static", "extern", "enum", "goto", "sizeof",
			"volatile", "register", "union", "auto", "long", "short", "signed",
			"unsigned", "_Bool", "_Complex", "_Imaginary", "inline",
		),
		Builtins: set(
			"printf", "scanf", "malloc", "free", "calloc", "realloc", "sizeof", "strlen",
			"strcpy", "strcmp", "strcat", "memcpy", "memmove", "memset", "FILE", "stdin",
			"stdout", "stderr", "fopen", "fclose", "fread", "fwrite", "getchar", "putchar",
		),
		Introducers: set(cTypeIntroducers...),
		Directive:   true,
		BraceBody:   true,
	}
}

func cppProfile() *Profile {
	return &Profile{
		Language:     Cpp,
		LineComment:  "//",
		BlockComment: true,
		Number:       NumberGrammar{Hex: true, LegacyOctal: true, Suffixes: "lLfF"},
		String:       StringGrammar{Double: true, CharLiteral: true},
		Punct:        "(){}[];,.",
		Operators: longestFirst(
			"+", "-", "*", "/", "=", "==", "!=", ">", "<", ">=", "<=", "&&", "||", "!",
			"++", "--", "+=", "-=", "*=", "/=", "%", "&", "|", "^", "~", "<<", ">>",
			"->", "::", "->*", ".*", "<=>",
		),
		Keywords: set(
			"if", "else", "while", "for", "return", "int", "float", "double", "char",
			"void", "struct", "typedef", "switch", "case", "break", "continue",
			"default", "do", "const", "static", "extern", "enum", "goto", "sizeof",
			"volatile", "register", "union", "class", "namespace", "template", "try",
			"catch", "throw", "using", "new", "delete", "this", "virtual", "friend",
			"private", "public", "protected", "inline", "bool", "true", "false",
			"nullptr", "auto", "decltype", "constexpr", "explicit", "export", "typeid",
			"alignas", "alignof", "mutable", "noexcept", "operator", "override", "final",
			"thread_local",
		),
		Builtins: set(
			"cout", "cin", "endl", "string", "vector", "map", "set", "list", "queue",
			"stack", "deque", "pair", "algorithm", "iterator", "iostream", "fstream",
			"sstream",
		),
		Introducers: set(append(slices.Clone(cTypeIntroducers), "bool")...),
		Directive:   true,
		BraceBody:   true,
	}
}

func javaProfile() *Profile {
	return &Profile{
		Language:     Java,
		LineComment:  "//",
		BlockComment: true,
		Number:       NumberGrammar{Hex: true, LegacyOctal: true, Suffixes: "lLfFdD"},
		String:       StringGrammar{Double: true, CharLiteral: true},
		Punct:        "(){}[];,.",
		Operators: longestFirst(
			"+", "-", "*", "/", "=", "==", "!=", ">", "<", ">=", "<=", "&&", "||", "!",
			"++", "--", "+=", "-=", "*=", "/=", "%", "&", "|", "^", "~", "<<", ">>",
			">>>", "%=", "&=", "|=", "^=", "<<=", ">>=", ">>>=", "->",
		),
		Keywords: set(
			"if", "else", "while", "for", "return", "int", "float", "double", "char",
			"void", "boolean", "String", "class", "interface", "extends", "implements",
			"static", "final", "abstract", "private", "public", "protected", "package",
			"import", "try", "catch", "finally", "throw", "throws", "new", "this",
			"super", "instanceof", "switch", "case", "default", "break", "continue",
			"enum", "synchronized", "volatile", "transient", "native", "true", "false",
			"null", "byte", "short", "long", "strictfp", "assert", "const", "goto",
		),
		Builtins: set(
			"System", "String", "Integer", "Double", "Boolean", "Character", "Math",
			"Object", "List", "ArrayList", "Map", "HashMap", "Set", "HashSet", "Scanner",
			"File", "Exception", "StringBuilder", "StringBuffer", "Thread", "Runnable",
			"Comparable", "Comparator", "Collections", "Arrays", "Stream", "Optional",
		),
		Introducers: set(append(slices.Clone(cTypeIntroducers), "boolean")...),
		IdentDollar: true,
		Annotation:  true,
		BraceBody:   true,
	}
}
