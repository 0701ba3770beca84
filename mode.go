package qrcode

import "regexp"

// Mode is the data-encoding mode of a QR code segment.
type Mode int

// Mode indicators. Kanji is reserved by the standard but not implemented
// here; the source this encoder is modeled on references it without support.
const (
	ModeTerminator   Mode = 0
	ModeNumeric      Mode = 1
	ModeAlphanumeric Mode = 2
	ModeKanji        Mode = 8
	ModeOctet        Mode = 4
)

var (
	numericRe      = regexp.MustCompile(`^\d*$`)
	alphanumericRe = regexp.MustCompile(`^[A-Z0-9 $%*+\-./:]*$`)
	// alphanumericLooseRe accepts lowercase so user payloads can be folded to
	// upper case before validation (see §ALPHANUMERIC case folding in DESIGN.md).
	alphanumericLooseRe = regexp.MustCompile(`^[A-Za-z0-9 $%*+\-./:]*$`)
)

// alphanumericTable maps the 45 symbols legal in ALPHANUMERIC mode to their
// packed value.
var alphanumericTable = map[byte]int{
	'0': 0, '1': 1, '2': 2, '3': 3, '4': 4, '5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
	'A': 10, 'B': 11, 'C': 12, 'D': 13, 'E': 14, 'F': 15, 'G': 16, 'H': 17, 'I': 18,
	'J': 19, 'K': 20, 'L': 21, 'M': 22, 'N': 23, 'O': 24, 'P': 25, 'Q': 26, 'R': 27,
	'S': 28, 'T': 29, 'U': 30, 'V': 31, 'W': 32, 'X': 33, 'Y': 34, 'Z': 35,
	' ': 36, '$': 37, '%': 38, '*': 39, '+': 40, '-': 41, '.': 42, '/': 43, ':': 44,
}

// charCountBits returns the width, in bits, of the length indicator for this
// mode at the given version.
func (m Mode) charCountBits(version int) int {
	switch m {
	case ModeNumeric:
		switch {
		case version < 10:
			return 10
		case version < 27:
			return 12
		default:
			return 14
		}
	case ModeAlphanumeric:
		switch {
		case version < 10:
			return 9
		case version < 27:
			return 11
		default:
			return 13
		}
	case ModeOctet:
		if version < 10 {
			return 8
		}
		return 16
	default:
		return 0
	}
}

// detectMode picks the narrowest mode that can hold a text payload, per
// spec.md §4.2 rule 2.
func detectMode(text string) Mode {
	switch {
	case numericRe.MatchString(text):
		return ModeNumeric
	case alphanumericRe.MatchString(text):
		return ModeAlphanumeric
	default:
		return ModeOctet
	}
}

// parseModeName maps a lower-case mode name to one of the modes a caller may
// request explicitly, reporting false for any other name.
func parseModeName(name string) (Mode, bool) {
	switch name {
	case "numeric":
		return ModeNumeric, true
	case "alphanumeric":
		return ModeAlphanumeric, true
	case "octet":
		return ModeOctet, true
	default:
		return 0, false
	}
}
