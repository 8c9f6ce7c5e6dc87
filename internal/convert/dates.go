package convert

import "time"

const (
	pdfDatePrefix = "D:"
	pdfDateLayout = "20060102150405"
	isoDateLayout = "2006-01-02T15:04:05"
)

// NormalizeDate converts a PDF date string of the form D:YYYYMMDDHHMMSS
// into ISO-8601. The 14-digit core is all a PDF date is required to carry;
// anything after it (timezone offsets like +05'00') is ignored. Inputs that
// do not match the form come back unchanged with false.
func NormalizeDate(raw string) (string, bool) {
	if len(raw) < len(pdfDatePrefix)+len(pdfDateLayout) {
		return raw, false
	}
	if raw[:len(pdfDatePrefix)] != pdfDatePrefix {
		return raw, false
	}
	digits := raw[len(pdfDatePrefix) : len(pdfDatePrefix)+len(pdfDateLayout)]
	if !allDigits(digits) {
		return raw, false
	}
	t, err := time.Parse(pdfDateLayout, digits)
	if err != nil {
		return raw, false
	}
	return t.Format(isoDateLayout), true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
