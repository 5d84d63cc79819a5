// Package encoding normalizes uploaded supplier spreadsheets to UTF-8.
// Distributors export stock sheets from a mix of tooling, so files arrive as
// UTF-8 with or without BOM, UTF-16, or one of the Latin code pages.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// peekSize is enough bytes for BOM checks and charset heuristics.
const peekSize = 4096

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// NewUTF8Reader wraps r in a reader that yields UTF-8, detecting the source
// encoding from a BOM, UTF-8 validation, or chardet heuristics, in that
// order. Content that defeats detection is read as Windows-1252, the most
// common legacy encoding in supplier exports.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	buf, err := br.Peek(peekSize)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	if decoded, ok := fromBOM(br, buf); ok {
		return decoded, nil
	}

	if utf8.Valid(buf) {
		return br, nil
	}

	return fromHeuristics(br, buf), nil
}

// fromBOM handles byte-order-marked input. The UTF-8 BOM is stripped; UTF-16
// variants are decoded.
func fromBOM(br *bufio.Reader, buf []byte) (io.Reader, bool) {
	switch {
	case bytes.HasPrefix(buf, bomUTF8):
		_, _ = br.Discard(len(bomUTF8))
		return br, true

	case bytes.HasPrefix(buf, bomUTF16LE):
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		return transform.NewReader(br, decoder), true

	case bytes.HasPrefix(buf, bomUTF16BE):
		decoder := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		return transform.NewReader(br, decoder), true
	}

	return nil, false
}

// fromHeuristics picks a legacy charset for non-UTF-8 content.
func fromHeuristics(br *bufio.Reader, buf []byte) io.Reader {
	detector := chardet.NewTextDetector()

	result, err := detector.DetectBest(buf)
	if err == nil {
		switch result.Charset {
		case "UTF-8":
			return br
		case "ISO-8859-15":
			return transform.NewReader(br, charmap.ISO8859_15.NewDecoder())
		case "ISO-8859-1", "windows-1252":
			return transform.NewReader(br, charmap.Windows1252.NewDecoder())
		}
	}

	return transform.NewReader(br, charmap.Windows1252.NewDecoder())
}
