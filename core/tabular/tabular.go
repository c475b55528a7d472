package tabular

import "strings"

// delimiter candidates in tie-break priority order.
var candidates = []rune{'\t', ';', ',', '|'}

// sampleLines is how many non-empty lines DetectDelimiter inspects.
const sampleLines = 10

// DetectDelimiter guesses the field separator of a delimited text blob.
// It counts occurrences of tab, semicolon, comma and pipe across the first
// ten non-empty lines and returns the winner. Ties resolve in that order,
// and a sample with no delimiter at all falls back to comma.
func DetectDelimiter(text string) rune {
	counts := make(map[rune]int, len(candidates))

	seen := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		for _, d := range candidates {
			counts[d] += strings.Count(line, string(d))
		}
		seen++
		if seen >= sampleLines {
			break
		}
	}

	best := ','
	bestCount := 0
	for _, d := range candidates {
		if counts[d] > bestCount {
			best = d
			bestCount = counts[d]
		}
	}
	return best
}

// SplitLine splits a single line into fields on delim, honoring RFC 4180
// style quoting: a field may be wrapped in double quotes, a doubled quote
// inside a quoted field is a literal quote, and the delimiter does not split
// inside quotes. An unterminated quote swallows the rest of the line rather
// than failing. Leading delimiters produce leading empty fields; callers that
// want them gone strip them themselves.
func SplitLine(line string, delim rune) []string {
	if !strings.ContainsRune(line, '"') {
		return strings.Split(line, string(delim))
	}

	var fields []string
	var cur strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				cur.WriteRune('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case r == delim && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	fields = append(fields, cur.String())
	return fields
}

// StripLeadingEmpty removes empty leading fields, as produced by lines such
// as ";;CODE;QTY". Used by the headerless fallback parsers.
func StripLeadingEmpty(fields []string) []string {
	i := 0
	for i < len(fields) && strings.TrimSpace(fields[i]) == "" {
		i++
	}
	return fields[i:]
}
