// Package marker reads and writes the legacy category marker that older
// bulk imports embedded into the expert comment field, of the literal
// form "[Category: 2703, Sub: 3476]" or "[Category: 2703, Sub: None]".
//
// New rows carry their category codes in dedicated columns; the marker
// survives only so rows imported before that change still resolve their
// categories on export.
package marker

import (
	"fmt"
	"regexp"
	"strconv"
)

const noneToken = "None"

var markerPattern = regexp.MustCompile(`\[Category:\s*(\d+),\s*Sub:\s*(\d+|None)\]`)

// Parse scans text for a category marker. It returns the category,
// the subcategory (nil when the token is "None") and whether a marker
// was found. The text itself is never modified by callers on the
// strength of this result; extraction is read-only.
func Parse(text string) (category int, subcategory *int, ok bool) {
	m := markerPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, nil, false
	}

	category, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, nil, false
	}

	if m[2] != noneToken {
		sub, err := strconv.Atoi(m[2])
		if err != nil {
			return 0, nil, false
		}
		subcategory = &sub
	}

	return category, subcategory, true
}

// Format renders the marker in the legacy wire form.
func Format(category int, subcategory *int) string {
	sub := noneToken
	if subcategory != nil {
		sub = strconv.Itoa(*subcategory)
	}

	return fmt.Sprintf("[Category: %d, Sub: %s]", category, sub)
}
