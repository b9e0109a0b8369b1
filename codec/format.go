// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"strings"
)

// Format selects a report encoding.
type Format int

const (
	// FormatText is the human-readable default.
	FormatText Format = iota
	FormatJSON
	FormatYAML
	FormatCBOR
	FormatMsgpack
)

var formatNames = [...]string{"text", "json", "yaml", "cbor", "msgpack"}

// String returns the configuration name of the format.
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}

	return formatNames[f]
}

// Binary reports whether the encoding is not meant for a terminal.
func (f Format) Binary() bool {
	return f == FormatCBOR || f == FormatMsgpack
}

// ParseFormat resolves a format name; "yml" is accepted for yaml.
func ParseFormat(name string) (Format, error) {
	if strings.EqualFold(name, "yml") {
		return FormatYAML, nil
	}
	for i, n := range formatNames {
		if strings.EqualFold(name, n) {
			return Format(i), nil
		}
	}

	return FormatText, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}
