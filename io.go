// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package pnm

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"sync"
)

// No valid token gets anywhere near this; it only bounds garbage input.
const maxTokenLen = 1024

// Initial capacity when reading binary payloads. The buffer grows as data
// arrives, so a header that lies about the image size does not allocate.
const initialPayloadBufSize = 64 * 1024

var payloadBufferPool = &sync.Pool{
	New: func() any {
		return &bytes.Buffer{}
	},
}

func getPayloadBuffer() *bytes.Buffer {
	b := payloadBufferPool.Get().(*bytes.Buffer)
	b.Reset()
	return b
}

func putPayloadBuffer(b *bytes.Buffer) {
	// Don't hold on to very large images.
	if b.Cap() > 16*initialPayloadBufSize {
		return
	}
	payloadBufferPool.Put(b)
}

// streamReader is a wrapper around a Reader that provides methods to read
// PNM tokens, header lines and binary sample data.
// Note that this is not thread safe.
type streamReader struct {
	r *bufio.Reader

	// inComment is set from a '#' until the next line terminator.
	inComment bool

	// Comment collection, only active while parsing the header.
	collectComments  bool
	comment          []byte
	commentTooLarge  bool
	comments         []string
	limitCommentSize int

	limitHeaderLine int
	warnf           func(string, ...any)
}

func newStreamReader(r io.Reader, opts Options) *streamReader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &streamReader{
		r:                br,
		limitCommentSize: int(opts.LimitCommentSize),
		limitHeaderLine:  int(opts.LimitHeaderLine),
		warnf:            opts.Warnf,
	}
}

func isWhitespace(b byte) bool {
	switch b {
	case '\t', '\n', '\v', '\f', '\r', ' ':
		return true
	}
	return false
}

func isLineTerminator(b byte) bool {
	return b == '\n' || b == '\r'
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}

func isEOF(err error) bool {
	return err == io.EOF || err == io.ErrUnexpectedEOF
}

// readMagic reads the two magic bytes.
func (e *streamReader) readMagic() ([2]byte, error) {
	var magic [2]byte
	if _, err := io.ReadFull(e.r, magic[:]); err != nil {
		if isEOF(err) {
			return magic, ErrTruncatedInput
		}
		return magic, fmt.Errorf("pnm: reading magic: %w", err)
	}
	return magic, nil
}

// readToken reads the next whitespace delimited token, skipping comments.
// The whitespace byte terminating the token is consumed.
func (e *streamReader) readToken() (string, error) {
	var tok []byte
	for {
		b, err := e.r.ReadByte()
		if err != nil {
			if err == io.EOF {
				e.endComment()
				break
			}
			return "", fmt.Errorf("pnm: reading token: %w", err)
		}

		if e.inComment {
			if !isLineTerminator(b) {
				e.commentByte(b)
				continue
			}
			e.endComment()
			// Fall through, the line terminator is also whitespace.
		} else if b == '#' {
			e.startComment()
			continue
		}

		if isWhitespace(b) {
			if len(tok) > 0 {
				break
			}
			continue
		}

		if len(tok) == maxTokenLen {
			return "", newInvalidFormatErrorf("token exceeds %d bytes", maxTokenLen)
		}
		tok = append(tok, b)
	}

	if len(tok) == 0 {
		return "", newInvalidFormatErrorf("unexpected end of input")
	}
	if !isASCII(tok) {
		return "", newInvalidFormatErrorf("non-ASCII character in token")
	}

	return string(tok), nil
}

// readUintToken reads the next token as a base 10 uint32.
func (e *streamReader) readUintToken() (uint32, error) {
	tok, err := e.readToken()
	if err != nil {
		return 0, err
	}
	return parseUint32(tok)
}

func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, newInvalidFormatErrorf("invalid number %q", s)
	}
	return uint32(v), nil
}

// readLine reads through the next '\n' inclusive, or to the end of the stream.
// An empty string means the stream is exhausted.
func (e *streamReader) readLine() (string, error) {
	var line []byte
	for {
		chunk, err := e.r.ReadSlice('\n')
		line = append(line, chunk...)
		if len(line) > e.limitHeaderLine {
			return "", newInvalidFormatErrorf("header line exceeds %d bytes", e.limitHeaderLine)
		}
		if err == nil || err == io.EOF {
			break
		}
		if err != bufio.ErrBufferFull {
			return "", fmt.Errorf("pnm: reading header line: %w", err)
		}
	}
	return string(line), nil
}

// peekByte returns the next byte without consuming it.
func (e *streamReader) peekByte() (byte, bool, error) {
	b, err := e.r.Peek(1)
	if err != nil {
		if err == io.EOF {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("pnm: reading header: %w", err)
	}
	return b[0], true, nil
}

// skipCommentLine consumes a line starting with '#' through its terminating '\n'.
// The line is never buffered as a whole.
func (e *streamReader) skipCommentLine() error {
	if _, err := e.r.ReadByte(); err != nil {
		return fmt.Errorf("pnm: reading header: %w", err)
	}
	e.startComment()
	for {
		b, err := e.r.ReadByte()
		if err != nil {
			e.endComment()
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("pnm: reading header: %w", err)
		}
		if b == '\n' {
			e.endComment()
			return nil
		}
		e.commentByte(b)
	}
}

// readBytes reads exactly n bytes into b.
func (e *streamReader) readBytes(b *bytes.Buffer, n uint64) error {
	b.Grow(int(min(n, initialPayloadBufSize)))
	written, err := io.CopyN(b, e.r, int64(n))
	if err != nil {
		if isEOF(err) {
			return fmt.Errorf("%w: got %d of %d payload bytes", ErrTruncatedInput, written, n)
		}
		return fmt.Errorf("pnm: reading payload: %w", err)
	}
	return nil
}

func (e *streamReader) startComment() {
	e.inComment = true
	e.comment = e.comment[:0]
	e.commentTooLarge = false
}

func (e *streamReader) commentByte(b byte) {
	if !e.collectComments || e.commentTooLarge {
		return
	}
	if len(e.comment) == e.limitCommentSize {
		e.commentTooLarge = true
		return
	}
	e.comment = append(e.comment, b)
}

func (e *streamReader) endComment() {
	if !e.inComment {
		return
	}
	e.inComment = false
	if !e.collectComments {
		return
	}
	if e.commentTooLarge {
		e.warnf("pnm: skipped comment larger than %d bytes", e.limitCommentSize)
		return
	}
	e.comments = append(e.comments, decodeComment(e.comment))
}
