package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (stdin, request body, test).
	FileVirtual FileFlags = 1 << iota
	// FileHasBOM marks a leading UTF-8 byte order mark; the lexer starts after it.
	FileHasBOM
	FileHasCRLF
	// FileNotNFC marks valid UTF-8 content that is not in Unicode NFC form.
	// Content is kept as is, so identifiers compare byte-wise.
	FileNotNFC
)

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, counted in runes
}
