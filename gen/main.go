// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

//go:generate go run main.go
package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
)

// Test images with binary payloads. The plain text files in testdata are
// written by hand.
var images = map[string][]byte{
	// The PBM rows are padded to a full byte.
	"images/pbm/binary_6x2.pbm":  cat("P4 6 2\n", []byte{0b01101100, 0b10110111}),
	"images/pbm/binary_10x1.pbm": cat("P4\n# two bytes per row\n10 1\n", []byte{0b10101010, 0b11000000}),

	"images/pgm/binary_4x4.pgm":     cat("P5 4 4 255\n", seq(16)),
	"images/pgm/binary16_2x2.pgm":   cat("P5\n2 2\n65535\n", []byte{0x00, 0x01, 0x01, 0x00, 0xff, 0xff, 0x12, 0x34}),
	"images/ppm/binary_2x2.ppm":     cat("P6 2 2 255\n", []byte{255, 0, 0, 0, 255, 0, 0, 0, 255, 10, 20, 30}),
	"images/ppm/binary16_1x1.ppm":   cat("P6 1 1 1023\n", []byte{0x03, 0xff, 0x00, 0x00, 0x02, 0x00}),
	"images/ppm/binary_trailer.ppm": cat("P6 1 1 255\n", []byte{1, 2, 3}, []byte("TRAILER")),

	"images/pam/blackandwhite_4x4.pam": cat("P7\nWIDTH 4\nHEIGHT 4\nDEPTH 1\nMAXVAL 1\nTUPLTYPE BLACKANDWHITE\n# Comment line\nENDHDR\n",
		[]byte{1, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1}),
	"images/pam/grayscale_4x4.pam": cat("P7\nWIDTH 4\nHEIGHT 4\nDEPTH 1\nMAXVAL 255\nTUPLTYPE GRAYSCALE\n# Comment line\nENDHDR\n",
		bytes.Repeat([]byte{0xde, 0xad, 0xbe, 0xef}, 4)),
	"images/pam/rgb_2x2.pam": cat("P7\n# Comment line\nMAXVAL 255\nTUPLTYPE RGB\nDEPTH 3\nWIDTH 2\nHEIGHT 2\nENDHDR\n",
		bytes.Repeat([]byte{0xde, 0xad, 0xbe, 0xef}, 3)),

	"unsupported/depth2_1x1.pam":    cat("P7\nWIDTH 1\nHEIGHT 1\nDEPTH 2\nMAXVAL 255\nENDHDR\n", []byte("ab")),
	"unsupported/rgb_alpha_1x1.pam": cat("P7\nWIDTH 1\nHEIGHT 1\nDEPTH 4\nMAXVAL 255\nTUPLTYPE RGB_ALPHA\nENDHDR\n", []byte("abcd")),

	"corrupt/truncated.pgm":        cat("P5 4 4 255\n", seq(10)),
	"corrupt/truncated.pbm":        cat("P4 9 2\n", []byte{0xff, 0xff, 0xff}),
	"corrupt/bw_out_of_bounds.pam": cat("P7\nWIDTH 2\nHEIGHT 1\nDEPTH 1\nMAXVAL 1\nTUPLTYPE BLACKANDWHITE\nENDHDR\n", []byte{1, 2}),
	"corrupt/non_ascii_token.pgm":  cat("P2 2 1 255\n", []byte{0xc3, 0xa6, ' ', '1', '\n'}),
}

func main() {
	outDir := "../testdata"

	for filename, b := range images {
		filename = filepath.Join(outDir, filename)
		if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(filename, b, 0o644); err != nil {
			log.Fatal(err)
		}
	}
}

func cat(header string, parts ...[]byte) []byte {
	b := []byte(header)
	for _, p := range parts {
		b = append(b, p...)
	}
	return b
}

func seq(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}
