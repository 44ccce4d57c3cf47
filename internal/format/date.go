// Package format converts between the date representations used by the API
// and the ones stored in the database.
package format

import (
	"fmt"
	"time"
)

// dateFormats are the input layouts accepted for dates, tried in order.
var dateFormats = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
}

// NormalizeDate parses value in any accepted layout and returns it as
// YYYY-MM-DD.
func NormalizeDate(value string) (string, error) {
	for _, layout := range dateFormats {
		d, err := time.Parse(layout, value)
		if err == nil {
			return d.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("unrecognized date format: %q", value)
}

// DateBR renders a stored YYYY-MM-DD date as DD/MM/YYYY. Values that do not
// parse are returned unchanged.
func DateBR(value string) string {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return value
	}
	return d.Format("02/01/2006")
}
