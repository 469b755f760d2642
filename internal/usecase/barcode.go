package usecase

import (
	"strings"

	"github.com/celiogix/backend/internal/domain"
)

// ValidateBarcode detects the format of a numeric retail barcode by its length
// and verifies the modulo-10 check digit. Non-digit input is invalid and no
// format is reported.
func ValidateBarcode(barcode string) domain.BarcodeInfo {
	code := strings.TrimSpace(barcode)

	info := domain.BarcodeInfo{Length: len(code)}
	if !isDigits(code) {
		return info
	}

	switch len(code) {
	case 13:
		info.Format = domain.FormatEAN13
	case 12:
		info.Format = domain.FormatUPCA
	case 8:
		info.Format = domain.FormatEAN8
	default:
		return info
	}

	info.ChecksumValid = checkDigit(code[:len(code)-1]) == int(code[len(code)-1]-'0')
	info.IsValid = info.ChecksumValid

	if info.IsValid && info.Format == domain.FormatEAN13 {
		info.CountryCode = code[:3]
	}

	return info
}

// checkDigit computes the check digit for a payload using alternating
// weights 1 and 3 starting from the first digit
func checkDigit(payload string) int {
	sum := 0
	for i, c := range payload {
		d := int(c - '0')
		if i%2 == 1 {
			d *= 3
		}
		sum += d
	}
	return (10 - sum%10) % 10
}

// isDigits checks if a string contains only ASCII digits
func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
