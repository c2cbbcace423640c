// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package pnm

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// decodeComment returns the comment as printable UTF-8.
// Comments are mostly ASCII or UTF-8, with the occasional Latin-1 file
// written by older tools.
func decodeComment(b []byte) string {
	if utf8.Valid(b) {
		return printableString(string(b))
	}
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return printableString(strings.ToValidUTF8(string(b), ""))
	}
	return printableString(string(s))
}

func printableString(s string) string {
	ss := strings.Map(func(r rune) rune {
		if unicode.IsGraphic(r) {
			return r
		}
		return -1
	}, s)

	return strings.TrimSpace(ss)
}

func ceilDiv(a, b uint64) uint64 {
	return (a + b - 1) / b
}
