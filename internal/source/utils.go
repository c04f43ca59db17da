package source

import (
	"bytes"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

func hasBOM(content []byte) bool {
	return bytes.HasPrefix(content, bom)
}

func hasCRLF(content []byte) bool {
	return bytes.Contains(content, []byte("\r\n"))
}

// isNFC reports whether content is already in NFC form. Invalid UTF-8 counts
// as normal here; the lexer reports it.
func isNFC(content []byte) bool {
	return !utf8.Valid(content) || norm.NFC.IsNormal(content)
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, len(content)/16+1)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i)) // #nosec G115 -- length checked by Add
		}
	}
	return out
}

// lineStart returns the byte offset of the first byte on the line holding off.
func lineStart(lineIdx []uint32, off uint32) (line int, start uint32) {
	// бинпоиск: находим наибольший lineIdx[i] < off
	lo, hi := 0, len(lineIdx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	if hi < 0 {
		return 0, 0
	}
	return hi + 1, lineIdx[hi] + 1
}

// toLineCol converts a byte offset into a 1-based line and a 1-based rune column.
// An offset pointing at '\n' belongs to the line that the newline terminates.
func toLineCol(content []byte, lineIdx []uint32, off uint32) LineCol {
	line, start := lineStart(lineIdx, off)
	end := min(int(off), len(content))
	col := utf8.RuneCount(content[start:end])
	return LineCol{Line: uint32(line + 1), Col: uint32(col + 1)} // #nosec G115 -- bounded by content length
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}
