package validate

import (
	"github.com/gitCabezas/PontoJovem/internal/format"
)

type DateStringRule struct {
	// Value to validate
	Value string
	// Name of the field in json.
	Name string
}

// DateString checks that value is a calendar date in one of the accepted
// formats: YYYY-MM-DD, DD/MM/YYYY or DD-MM-YYYY.
func DateString(name string, value string) DateStringRule {
	return DateStringRule{Name: name, Value: value}
}

func (s DateStringRule) Validate() *Failure {
	if s.Value == "" {
		return nil
	}
	if _, err := format.NormalizeDate(s.Value); err != nil {
		return fail(s.Name, "must be a date in format DD/MM/AAAA or AAAA-MM-DD")
	}
	return nil
}
