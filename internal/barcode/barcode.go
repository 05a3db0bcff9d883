// Package barcode classifies product barcodes by digit count: EAN-8 (8 digits)
// or EAN-13 (13 digits). The check digit is intentionally NOT verified — the
// PDV accepts any all-digit string of the right length.
package barcode

import "errors"

// Format identifies the recognized barcode family.
type Format string

const (
	FormatEAN8  Format = "EAN-8"
	FormatEAN13 Format = "EAN-13"
)

// ErrInvalid is returned for any string that is not exactly 8 or 13 ASCII digits.
var ErrInvalid = errors.New("código de barras inválido: use EAN-8 (8 dígitos) ou EAN-13 (13 dígitos)")

// Validate classifies code. An empty string is the caller's concern (a product
// without a barcode is allowed); here it is simply invalid.
func Validate(code string) (Format, error) {
	switch {
	case len(code) == 8 && allDigits(code):
		return FormatEAN8, nil
	case len(code) == 13 && allDigits(code):
		return FormatEAN13, nil
	default:
		return "", ErrInvalid
	}
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
