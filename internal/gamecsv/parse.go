// Package gamecsv translates between delimited text and ledger mutations:
// a lenient line-based parser, header-alias column inference, row import
// with on-the-fly player creation, and the canonical export format.
package gamecsv

import "strings"

// Document is parsed CSV text: the first non-blank line as headers, the
// rest as data rows.
type Document struct {
	Headers []string
	Rows    [][]string
}

// Parse splits raw text into headers and rows. Blank lines are discarded
// wherever they appear. The parser is deliberately lenient: an unterminated
// quoted field at end of line is still emitted.
func Parse(text string) Document {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) < 2 {
		return Document{}
	}

	doc := Document{Headers: parseLine(lines[0])}
	for _, line := range lines[1:] {
		doc.Rows = append(doc.Rows, parseLine(line))
	}
	return doc
}

// parseLine splits one line into fields. Commas separate fields only
// outside quotes; a doubled quote inside a quoted field is an escaped
// literal quote (RFC 4180). Fields are whitespace-trimmed.
func parseLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '"' && inQuotes && i+1 < len(runes) && runes[i+1] == '"':
			current.WriteRune('"')
			i++
		case c == '"':
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(c)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}
