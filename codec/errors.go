// SPDX-License-Identifier: MIT

package codec

import "errors"

var (
	// ErrUnknownFormat is returned by ParseFormat for an unrecognised name.
	ErrUnknownFormat = errors.New("codec: unknown format")

	// ErrNotDecodable is returned by Decode for write-only formats (text).
	ErrNotDecodable = errors.New("codec: format cannot be decoded")
)
