package marker_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/tolaram/sapkb/pkg/marker"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		found       bool
		category    int
		subcategory *int
	}{
		{
			name:        "both integers",
			text:        "foo [Category: 2703, Sub: 3476]",
			found:       true,
			category:    2703,
			subcategory: intPtr(3476),
		},
		{
			name:        "none subcategory",
			text:        "foo [Category: 10, Sub: None]",
			found:       true,
			category:    10,
			subcategory: nil,
		},
		{
			name:  "no marker",
			text:  "plain comment text",
			found: false,
		},
		{
			name:  "malformed marker",
			text:  "[Category: high, Sub: 3476]",
			found: false,
		},
		{
			name:        "marker mid text",
			text:        "before [Category: 1, Sub: 2] after",
			found:       true,
			category:    1,
			subcategory: intPtr(2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)

			category, subcategory, ok := marker.Parse(tt.text)
			c.Assert(ok, qt.Equals, tt.found)
			if tt.found {
				c.Assert(category, qt.Equals, tt.category)
				c.Assert(subcategory, qt.DeepEquals, tt.subcategory)
			}
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	c := qt.New(t)

	sub := 3476
	text := marker.Format(2703, &sub)
	c.Assert(text, qt.Equals, "[Category: 2703, Sub: 3476]")

	category, subcategory, ok := marker.Parse(text)
	c.Assert(ok, qt.IsTrue)
	c.Assert(category, qt.Equals, 2703)
	c.Assert(*subcategory, qt.Equals, 3476)

	none := marker.Format(10, nil)
	c.Assert(none, qt.Equals, "[Category: 10, Sub: None]")

	category, subcategory, ok = marker.Parse(none)
	c.Assert(ok, qt.IsTrue)
	c.Assert(category, qt.Equals, 10)
	c.Assert(subcategory, qt.IsNil)
}

func intPtr(v int) *int {
	return &v
}
