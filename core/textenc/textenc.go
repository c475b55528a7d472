// Package textenc decodes uploaded spreadsheet exports to plain UTF-8.
//
// Excel and legacy warehouse tools save delimited text as UTF-8 with a BOM
// or as UTF-16 with either endianness. The parser core expects clean UTF-8,
// so every upload passes through Decode first.
package textenc

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode reads r as UTF-8, honoring a UTF-8 or UTF-16 byte-order mark when
// present. The BOM itself never reaches the output.
func Decode(r io.Reader) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	b, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeBytes is Decode over an in-memory blob.
func DecodeBytes(b []byte) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
