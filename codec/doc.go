// Package codec encodes balance reports for the command line and for
// machine consumers.
//
// Formats:
//
//	text     one line per equation: the balanced form, or "error: ..."
//	json     indented JSON (encoding/json)
//	yaml     YAML (gopkg.in/yaml.v3)
//	cbor     CBOR, Core Deterministic Encoding (RFC 8949 §4.2)
//	msgpack  MessagePack with sorted map keys
//
// Every format except text can be decoded back into a balance.Report.
// The CBOR encoder is deterministic: the same report always produces
// identical bytes.
package codec
