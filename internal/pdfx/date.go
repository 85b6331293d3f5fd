package pdfx

import (
	"strings"
	"time"
)

// PDF date strings look like D:20240102150405+01'00'. Every field after the
// year is optional, and viewers in the wild produce most of the truncations.
var pdfDateLayouts = []string{
	"20060102150405-07'00'",
	"20060102150405-0700",
	"20060102150405Z",
	"20060102150405",
	"200601021504",
	"2006010215",
	"20060102",
	"200601",
	"2006",
}

// normalizeDate converts a PDF date string to RFC 3339. Strings that do not
// parse are returned unchanged, which keeps the raw value visible to callers.
func normalizeDate(s string) string {
	if s == "" {
		return ""
	}
	raw := strings.TrimPrefix(s, "D:")
	for _, layout := range pdfDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(time.RFC3339)
		}
	}
	return s
}
