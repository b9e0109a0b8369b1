// SPDX-License-Identifier: MIT

package codec

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/chembalance/balance"
)

// encMode is the CBOR encoder configured with Core Deterministic Encoding:
// sorted map keys, smallest integer encoding, no indefinite-length items.
var encMode cbor.EncMode

// decMode rejects duplicate map keys; unknown fields are ignored.
var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{DupMapKey: cbor.DupMapKeyEnforcedAPF}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Encode writes r to w in format f.
func Encode(w io.Writer, f Format, r balance.Report) error {
	var err error
	switch f {
	case FormatText:
		err = encodeText(w, r)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(r); err == nil {
			err = enc.Close()
		}
	case FormatCBOR:
		err = encMode.NewEncoder(w).Encode(r)
	case FormatMsgpack:
		enc := msgpack.NewEncoder(w)
		enc.SetSortMapKeys(true)
		err = enc.Encode(r)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("codec: encode %s: %w", f, err)
	}

	return nil
}

// encodeText writes one line per entry.
func encodeText(w io.Writer, r balance.Report) error {
	bw := bufio.NewWriter(w)
	for _, e := range r.Entries {
		if e.OK {
			fmt.Fprintln(bw, e.Result.Balanced)
			continue
		}
		fmt.Fprintf(bw, "error: %s\n", e.Error)
	}

	return bw.Flush()
}

// Decode reads one report in format f from rd.
func Decode(rd io.Reader, f Format) (balance.Report, error) {
	var (
		r   balance.Report
		err error
	)
	switch f {
	case FormatJSON:
		err = json.NewDecoder(rd).Decode(&r)
	case FormatYAML:
		err = yaml.NewDecoder(rd).Decode(&r)
	case FormatCBOR:
		err = decMode.NewDecoder(rd).Decode(&r)
	case FormatMsgpack:
		err = msgpack.NewDecoder(rd).Decode(&r)
	case FormatText:
		return r, fmt.Errorf("%w: %s", ErrNotDecodable, f)
	default:
		return r, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
	if err != nil {
		return balance.Report{}, fmt.Errorf("codec: decode %s: %w", f, err)
	}

	return r, nil
}
