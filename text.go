package filestream

import (
	"encoding/binary"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// ReadLine reads decoded characters up to and including the next line
// feed. A carriage return immediately before the line feed is consumed as
// part of the end-of-line sequence, so "\r\n" collapses to "\n" in the
// result; a bare carriage return passes through literally. A line
// truncated by end of file is returned without a trailing line feed, and
// ReadLine fails with CodeEndOfStream only when no characters remain.
func (s *Stream) ReadLine() (string, error) {
	if err := s.requireRead("readline"); err != nil {
		return "", err
	}
	var sb strings.Builder
	for {
		r, err := s.readRune()
		if IsEndOfStream(err) {
			if sb.Len() == 0 {
				return "", err
			}
			return sb.String(), nil
		}
		if err != nil {
			return "", err
		}
		if r == '\r' {
			mark := s.pos
			next, nerr := s.readRune()
			if nerr == nil && next == '\n' {
				sb.WriteByte('\n')
				return sb.String(), nil
			}
			s.pos = mark
			sb.WriteByte('\r')
			continue
		}
		sb.WriteRune(r)
		if r == '\n' {
			return sb.String(), nil
		}
	}
}

// ReadChars reads up to count decoded characters. Fewer than count are
// returned only when the stream ends first; zero characters at end of
// file fail with CodeEndOfStream. Every codepoint counts as one
// character regardless of how many bytes or code units encode it.
// Raw streams do not support character reads.
func (s *Stream) ReadChars(count int) (string, error) {
	if err := s.requireRead("readchars"); err != nil {
		return "", err
	}
	if s.raw {
		return "", streamErr(CodeUnsupported, "readchars", s.path)
	}
	if count < 0 {
		return "", streamErr(CodeInvalidArgument, "readchars", s.path)
	}
	var sb strings.Builder
	for read := 0; read < count; read++ {
		r, err := s.readRune()
		if IsEndOfStream(err) {
			if read == 0 {
				return "", err
			}
			break
		}
		if err != nil {
			return "", err
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}

// WriteChars encodes text into the stream's active encoding and writes
// it. A character the target encoding cannot represent fails with
// CodeEncodeFailed naming both encodings; the stream stays open and
// usable, but how much of the text reached the device is unspecified.
// Raw streams write the text as UTF-8 unconditionally.
func (s *Stream) WriteChars(text string) error {
	if err := s.requireWrite("writechars"); err != nil {
		return err
	}
	if s.raw {
		return s.writeAll([]byte(text))
	}
	encoded, err := s.enc.textEncoding().NewEncoder().Bytes([]byte(text))
	if err != nil {
		return &Error{Code: CodeEncodeFailed, Op: "writechars", Path: s.path, From: UTF8, To: s.enc, Err: err}
	}
	return s.writeAll(encoded)
}

// SetEncoding switches the active encoding for subsequent text
// operations. Bytes already read or written are unaffected. Raw streams
// have no encoding to switch and fail with CodeUnsupported.
func (s *Stream) SetEncoding(enc Encoding) error {
	if err := s.requireOpen("setencoding"); err != nil {
		return err
	}
	if s.raw {
		return streamErr(CodeUnsupported, "setencoding", s.path)
	}
	if !enc.valid() {
		return streamErr(CodeInvalidArgument, "setencoding", s.path)
	}
	s.enc = enc
	return nil
}

// readRune decodes one character at the cursor under the active
// encoding. On any failure the cursor is restored to the start of the
// character: bad data is never skipped or substituted, and retrying
// after a decode error re-reads the same bytes.
func (s *Stream) readRune() (rune, error) {
	start := s.pos
	r, err := s.decodeRune()
	if err != nil {
		s.pos = start
		return 0, err
	}
	return r, nil
}

func (s *Stream) decodeRune() (rune, error) {
	switch s.enc {
	case Latin1:
		b, err := s.readUnit(1, true)
		if err != nil {
			return 0, err
		}
		return rune(b[0]), nil

	case UTF8:
		return s.decodeUTF8Rune()

	case UTF16LE:
		return s.decodeUTF16Rune(binary.LittleEndian)
	case UTF16BE:
		return s.decodeUTF16Rune(binary.BigEndian)

	case UTF32LE:
		return s.decodeUTF32Rune(binary.LittleEndian)
	case UTF32BE:
		return s.decodeUTF32Rune(binary.BigEndian)

	default:
		return 0, streamErr(CodeUnsupported, "read", s.path)
	}
}

func (s *Stream) decodeUTF8Rune() (rune, error) {
	b, err := s.readUnit(1, true)
	if err != nil {
		return 0, err
	}
	c := b[0]
	if c < utf8.RuneSelf {
		return rune(c), nil
	}
	var width int
	switch {
	case c&0xE0 == 0xC0:
		width = 2
	case c&0xF0 == 0xE0:
		width = 3
	case c&0xF8 == 0xF0:
		width = 4
	default:
		return 0, streamErr(CodeDecodeFailed, "read", s.path)
	}
	rest, err := s.readUnit(width-1, false)
	if err != nil {
		return 0, err
	}
	seq := make([]byte, 0, width)
	seq = append(seq, c)
	seq = append(seq, rest...)
	r, size := utf8.DecodeRune(seq)
	if r == utf8.RuneError && size <= 1 {
		return 0, streamErr(CodeDecodeFailed, "read", s.path)
	}
	return r, nil
}

func (s *Stream) decodeUTF16Rune(order binary.ByteOrder) (rune, error) {
	b, err := s.readUnit(2, true)
	if err != nil {
		return 0, err
	}
	u1 := rune(order.Uint16(b))
	if !utf16.IsSurrogate(u1) {
		return u1, nil
	}
	if u1 >= 0xDC00 {
		// Unpaired low surrogate.
		return 0, streamErr(CodeDecodeFailed, "read", s.path)
	}
	b, err = s.readUnit(2, false)
	if err != nil {
		return 0, err
	}
	u2 := rune(order.Uint16(b))
	r := utf16.DecodeRune(u1, u2)
	if r == unicode.ReplacementChar {
		return 0, streamErr(CodeDecodeFailed, "read", s.path)
	}
	return r, nil
}

func (s *Stream) decodeUTF32Rune(order binary.ByteOrder) (rune, error) {
	b, err := s.readUnit(4, true)
	if err != nil {
		return 0, err
	}
	v := order.Uint32(b)
	if v > unicode.MaxRune || utf16.IsSurrogate(rune(v)) {
		return 0, streamErr(CodeDecodeFailed, "read", s.path)
	}
	return rune(v), nil
}

// readUnit reads exactly n bytes of a character. At a character boundary
// an immediate end of file is CodeEndOfStream; once inside a character a
// shortfall means a truncated sequence and is CodeDecodeFailed.
func (s *Stream) readUnit(n int, atCharStart bool) ([]byte, error) {
	b, err := s.readUpTo(n)
	if err != nil {
		return nil, err
	}
	if len(b) == n {
		return b, nil
	}
	if len(b) == 0 && atCharStart {
		return nil, streamErr(CodeEndOfStream, "read", s.path)
	}
	return nil, streamErr(CodeDecodeFailed, "read", s.path)
}
