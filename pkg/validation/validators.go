package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	lettersRegex = regexp.MustCompile(`^[a-zA-Z]+$`)

	tenDigitRegex = regexp.MustCompile(`^[0-9]{10}$`)

	// Indian mobile numbers start with 6-9
	mobileINRegex = regexp.MustCompile(`^[6-9]\d{9}$`)

	// local@domain.tld with a 2-4 letter TLD
	strictEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,4}$`)

	// Unanchored on purpose: matches anywhere in the input
	looseEmailRegex = regexp.MustCompile(`\S+@\S+\.\S+`)

	simpleEmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	linkedinProfileRegex = regexp.MustCompile(`^https?://(www\.)?linkedin\.com/.+$`)

	// Like linkedinProfileRegex but accepts an empty path
	linkedinLinkRegex = regexp.MustCompile(`^https?://(www\.)?linkedin\.com/.*$`)

	alphanumericRegex = regexp.MustCompile(`^[A-Za-z\d]+$`)
	letterRegex       = regexp.MustCompile(`[A-Za-z]`)
	digitRegex        = regexp.MustCompile(`\d`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("letters", lettersTag)
	_ = v.RegisterValidation("mobile10", mobile10Tag)
	_ = v.RegisterValidation("mobile_in", mobileINTag)
	_ = v.RegisterValidation("linkedin_url", linkedinTag)
	_ = v.RegisterValidation("simple_email", simpleEmailTag)
}

func lettersTag(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return IsLetters(val)
}

func mobile10Tag(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return IsTenDigits(val)
}

func mobileINTag(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return IsMobileIN(val)
}

func linkedinTag(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return IsLinkedInProfile(val)
}

func simpleEmailTag(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return IsSimpleEmail(val)
}

// IsLetters reports whether s is non-empty and made of ASCII letters only.
func IsLetters(s string) bool { return lettersRegex.MatchString(s) }

// IsTenDigits reports whether s is exactly ten ASCII digits.
func IsTenDigits(s string) bool { return tenDigitRegex.MatchString(s) }

// IsMobileIN reports whether s is a digit 6-9 followed by exactly nine digits.
func IsMobileIN(s string) bool { return mobileINRegex.MatchString(s) }

// IsStrictEmail reports whether s is local@domain.tld with a 2-4 letter TLD.
func IsStrictEmail(s string) bool { return strictEmailRegex.MatchString(s) }

// ContainsLooseEmail reports whether something shaped like text@text.text
// appears anywhere in s.
func ContainsLooseEmail(s string) bool { return looseEmailRegex.MatchString(s) }

// IsSimpleEmail reports whether s is a whitespace-free local@domain.tld.
func IsSimpleEmail(s string) bool { return simpleEmailRegex.MatchString(s) }

// IsLinkedInProfile requires a non-empty path after linkedin.com/.
func IsLinkedInProfile(s string) bool { return linkedinProfileRegex.MatchString(s) }

// IsLinkedInLink accepts linkedin.com/ with or without a path.
func IsLinkedInLink(s string) bool { return linkedinLinkRegex.MatchString(s) }

// IsAlphanumericPassword reports whether s has at least minLen characters,
// all letters or digits, with at least one letter and one digit.
func IsAlphanumericPassword(s string, minLen int) bool {
	return Length(s) >= minLen && alphanumericRegex.MatchString(s) && HasLetter(s) && HasDigit(s)
}

// HasLetter reports whether s contains an ASCII letter.
func HasLetter(s string) bool { return letterRegex.MatchString(s) }

// HasDigit reports whether s contains a digit.
func HasDigit(s string) bool { return digitRegex.MatchString(s) }

// Length counts characters, not bytes.
func Length(s string) int { return utf8.RuneCountInString(s) }

// ParseNumber coerces a form value to a number. Surrounding whitespace is
// ignored and a blank value is zero. ok is false for anything non-numeric.
func ParseNumber(raw string) (n float64, ok bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, true
	}
	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

// InRange coerces raw and reports whether it lies in [min, max].
// Non-numeric input is never in range.
func InRange(raw string, min, max float64) bool {
	n, ok := ParseNumber(raw)
	if !ok {
		return false
	}
	return n >= min && n <= max
}
