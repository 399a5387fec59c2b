package filestream

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// Encoding identifies an on-disk text encoding for character and line
// operations. The stream's encoding can be changed after open with
// SetEncoding; it affects only subsequent text operations.
type Encoding int

const (
	// Latin1 (ISO 8859-1) is the default encoding for text-capable
	// streams opened without an explicit WithEncoding option. Every byte
	// maps to the codepoint of the same value, so Latin-1 streams also
	// permit binary operations.
	Latin1 Encoding = iota
	UTF8
	UTF16LE
	UTF16BE
	UTF32LE
	UTF32BE
)

func (e Encoding) String() string {
	switch e {
	case Latin1:
		return "Latin-1"
	case UTF8:
		return "UTF-8"
	case UTF16LE:
		return "UTF-16LE"
	case UTF16BE:
		return "UTF-16BE"
	case UTF32LE:
		return "UTF-32LE"
	case UTF32BE:
		return "UTF-32BE"
	default:
		return "unknown"
	}
}

func (e Encoding) valid() bool {
	return e >= Latin1 && e <= UTF32BE
}

// identity reports whether bytes pass through the encoding unmodified,
// which is what binary operations require of a non-raw stream.
func (e Encoding) identity() bool {
	return e == Latin1
}

// textEncoding binds the enum to the x/text codec used on the encode
// path. Encoders are strict: an unrepresentable rune surfaces as an
// error rather than a substitution, which is exactly the translation
// error contract.
func (e Encoding) textEncoding() encoding.Encoding {
	switch e {
	case Latin1:
		return charmap.ISO8859_1
	case UTF8:
		return unicode.UTF8
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case UTF32LE:
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)
	case UTF32BE:
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)
	default:
		return unicode.UTF8
	}
}
