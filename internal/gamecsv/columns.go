package gamecsv

import "strings"

// Logical columns a CSV import can populate.
const (
	colTimestamp = "timestamp"
	colFrom      = "from"
	colTo        = "to"
	colConcept   = "concept"
	colAmount    = "amount"
	colProperty  = "property"
	colColor     = "colorGroup"
	colHouses    = "houses"
	colHotel     = "hotel"
	colNotes     = "notes"
)

// columnAliases maps each logical column to the header spellings it
// accepts, after normalization. Spanish aliases cover files produced by the
// original tracker.
var columnAliases = map[string][]string{
	colTimestamp: {"fecha", "date", "datetime", "timestamp"},
	colFrom:      {"jugadororigen", "origen", "de", "from", "paga", "source"},
	colTo:        {"jugadordestino", "destino", "para", "to", "cobra", "destination"},
	colConcept:   {"concepto", "tipo", "concept", "type"},
	colAmount:    {"monto", "cantidad", "amount", "value"},
	colProperty:  {"propiedad", "property"},
	colColor:     {"colorgrupo", "color", "grupo", "colorgroup"},
	colHouses:    {"casas", "houses"},
	colHotel:     {"hotel"},
	colNotes:     {"notas", "notes", "comentarios"},
}

// normalizeHeader lowercases a header and strips everything but ASCII
// letters, so "Color Grupo", "color_grupo" and "ColorGrupo" all match.
func normalizeHeader(h string) string {
	h = strings.ToLower(h)
	var b strings.Builder
	for _, c := range h {
		if c >= 'a' && c <= 'z' {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// inferColumns maps logical columns to header indexes. When several
// headers match the same logical column the last one wins. Unmatched
// columns are absent from the map and fall back to defaults on import.
func inferColumns(headers []string) map[string]int {
	mapping := make(map[string]int)
	for i, h := range headers {
		normalized := normalizeHeader(h)
		for column, aliases := range columnAliases {
			for _, alias := range aliases {
				if normalized == alias {
					mapping[column] = i
				}
			}
		}
	}
	return mapping
}
