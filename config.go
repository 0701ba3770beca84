package qrcode

import (
	"strings"
	"unicode/utf8"
)

// Options configures New per spec.md §6. Zero values mean "auto": EccLevel
// "" defaults to L, Version 0 means auto-select, Mode "" means auto-detect,
// Mask -1 (or unset, represented by nil) means auto-select.
type Options struct {
	EccLevel string // "L", "M", "Q", "H" (case-insensitive); default "L"
	Version  int    // 1..40; 0 means auto
	Mode     string // "numeric", "alphanumeric", "octet" (case-insensitive); default auto
	Mask     *int   // 0..7; nil means auto-select
}

// resolved holds the fully validated configuration for one encode.
type resolved struct {
	level   EccLevel
	mode    Mode
	version int
	mask    int // -1 means auto
	payload []byte
}

// resolve implements the configuration resolver of spec.md §4.2.
func resolve(data any, opts Options) (*resolved, error) {
	// 1. ECC level.
	levelTag := opts.EccLevel
	if levelTag == "" {
		levelTag = "L"
	}
	level, ok := parseEccLevel(levelTag)
	if !ok {
		return nil, &ErrInvalidEccLevel{Level: opts.EccLevel}
	}

	// Normalize the raw payload to bytes plus a "is text" flag, deferring
	// mode-specific validation until the mode itself is known.
	var text string
	var isText bool
	var raw []byte
	switch v := data.(type) {
	case string:
		text = v
		isText = true
	case []byte:
		raw = v
	default:
		return nil, &ErrInvalidData{Value: data}
	}

	// 2. Mode.
	var mode Mode
	if opts.Mode != "" {
		m, ok := parseModeName(strings.ToLower(opts.Mode))
		if !ok {
			return nil, &ErrInvalidMode{Mode: opts.Mode}
		}
		mode = m
	} else if isText {
		mode = detectMode(text)
	} else {
		mode = ModeOctet
	}

	// Fold ALPHANUMERIC payloads to upper case before validation/encoding;
	// the original source left lowercase text un-folded, a bug this encoder
	// deliberately fixes (see DESIGN.md).
	if isText && mode == ModeAlphanumeric {
		text = strings.ToUpper(text)
	}

	// 5. Validate payload against mode, producing the final byte payload.
	var payload []byte
	switch mode {
	case ModeNumeric:
		if !isText || !numericRe.MatchString(text) {
			return nil, &ErrPayloadModeMismatch{Mode: mode}
		}
		payload = []byte(text)
	case ModeAlphanumeric:
		if !isText || !alphanumericLooseRe.MatchString(text) {
			return nil, &ErrPayloadModeMismatch{Mode: mode}
		}
		payload = []byte(text)
	case ModeOctet:
		if isText {
			if !utf8.ValidString(text) {
				return nil, &ErrPayloadModeMismatch{Mode: mode}
			}
			payload = []byte(text)
		} else {
			payload = raw
		}
	default:
		return nil, &ErrInvalidMode{Mode: opts.Mode}
	}

	// 3. Version.
	version := opts.Version
	if version == 0 {
		v, err := smallestFittingVersion(payload, mode, level)
		if err != nil {
			return nil, err
		}
		version = v
	} else {
		if version < 1 || version > 40 {
			return nil, &ErrInvalidVersion{Version: version}
		}
		if len(payload) > maxPayloadLength(version, level, mode) {
			return nil, &ErrPayloadTooLarge{Mode: mode, Level: level, Version: version}
		}
	}

	// 4. Mask.
	mask := -1
	if opts.Mask != nil {
		mask = *opts.Mask
		if mask < -1 || mask > 7 {
			return nil, &ErrInvalidMask{Mask: mask}
		}
	}

	return &resolved{level: level, mode: mode, version: version, mask: mask, payload: payload}, nil
}

// smallestFittingVersion finds the smallest version 1..40 whose capacity at
// the given level/mode fits the payload.
func smallestFittingVersion(payload []byte, mode Mode, level EccLevel) (int, error) {
	for v := 1; v <= 40; v++ {
		if len(payload) <= maxPayloadLength(v, level, mode) {
			return v, nil
		}
	}
	return 0, &ErrPayloadTooLarge{Mode: mode, Level: level}
}
