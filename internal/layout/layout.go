// Package layout defines the fixed set of email layouts and renders template fields into them.
package layout

import (
	"errors"
	"fmt"
)

// ErrUnknownLayout is returned for a layout name outside the allow-list.
var ErrUnknownLayout = errors.New("unknown template layout")

// Layout identifies one of the fixed email layouts.
type Layout string

const (
	Template1  Layout = "template1"
	Template2  Layout = "template2"
	Template3  Layout = "template3"
	Template4  Layout = "template4"
	Template5  Layout = "template5"
	Template6  Layout = "template6"
	Template7  Layout = "template7"
	Template8  Layout = "template8"
	Template9  Layout = "template9"
	Template10 Layout = "template10"
)

// Default is the layout used for imports and when a form omits the layout.
const Default = Template1

// All lists every layout in display order.
var All = []Layout{
	Template1, Template2, Template3, Template4, Template5,
	Template6, Template7, Template8, Template9, Template10,
}

type definition struct {
	source      string
	description string
}

// definitions is the static layout table. Sources are embedded file paths chosen here,
// never derived from request input.
var definitions = map[Layout]definition{
	Template1:  {"templates/template1.mjml", "Classic: centered header, body and button"},
	Template2:  {"templates/template2.mjml", "Banner: coloured header band"},
	Template3:  {"templates/template3.mjml", "Minimal: plain text on white"},
	Template4:  {"templates/template4.mjml", "Card: boxed content on a grey canvas"},
	Template5:  {"templates/template5.mjml", "Dark: light text on a dark background"},
	Template6:  {"templates/template6.mjml", "Announcement: large headline, divider"},
	Template7:  {"templates/template7.mjml", "Newsletter: left-aligned editorial"},
	Template8:  {"templates/template8.mjml", "Two column: header beside body"},
	Template9:  {"templates/template9.mjml", "Alert: accent border and prominent button"},
	Template10: {"templates/template10.mjml", "Receipt: compact monospace body"},
}

// Parse returns the Layout named by name, or ErrUnknownLayout.
func Parse(name string) (Layout, error) {
	l := Layout(name)
	if _, ok := definitions[l]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
	return l, nil
}

// Valid reports whether name is an allow-listed layout.
func Valid(name string) bool {
	_, ok := definitions[Layout(name)]
	return ok
}

func (l Layout) String() string {
	return string(l)
}

// Description returns a short human-readable label for the layout.
func (l Layout) Description() string {
	return definitions[l].description
}

// Fields are the values substituted into a layout's slots.
type Fields struct {
	Header     string `json:"header"`
	Body       string `json:"body"`
	ButtonText string `json:"button_text"`
	ButtonLink string `json:"button_link"`
	Footer     string `json:"footer"`
}
