package shortguid

import (
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"
)

const (
	// EncodedLen is the length of the short text form.
	EncodedLen = 22

	// uuidLen is the length of the standard hyphenated form accepted by the
	// lenient parse family.
	uuidLen = 36
)

// wireOrder converts between the RFC 4122 byte order used by uuid.UUID and
// the order the short form encodes: the first three fields little-endian,
// the remaining eight bytes verbatim. This is the layout produced by .NET's
// Guid.ToByteArray and keeps encoded strings interchangeable with .NET
// ShortGuid values. The swap is its own inverse, so one function serves both
// directions.
func wireOrder(b [16]byte) [16]byte {
	return [16]byte{
		b[3], b[2], b[1], b[0],
		b[5], b[4],
		b[7], b[6],
		b[8], b[9], b[10], b[11], b[12], b[13], b[14], b[15],
	}
}

// Encode returns the 22-character URL-safe form of id. The output alphabet
// is [A-Za-z0-9_-] with no padding. Encode is total: every identifier,
// including uuid.Nil, has exactly one encoding.
func Encode(id uuid.UUID) string {
	wire := wireOrder(id)
	var dst [EncodedLen]byte
	base64.RawURLEncoding.Encode(dst[:], wire[:])
	return string(dst[:])
}

// Decode converts a 22-character string produced by Encode back to the
// identifier. It is strict: input of any other length fails with
// ErrInvalidLength, and input that is not the canonical encoding of some
// identifier fails with ErrInvalidFormat. Decode therefore accepts exactly
// the image of Encode, and Decode(Encode(id)) == id for every id.
func Decode(s string) (uuid.UUID, error) {
	if len(s) != EncodedLen {
		return uuid.Nil, fmt.Errorf("%w: expected %d characters, got %d", ErrInvalidLength, EncodedLen, len(s))
	}
	var wire [16]byte
	if _, err := base64.RawURLEncoding.Decode(wire[:], []byte(s)); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	// 22 base64 characters carry 132 bits for a 128-bit value, so several
	// strings alias each identifier. Re-encoding and comparing keeps only
	// the canonical one.
	var check [EncodedLen]byte
	base64.RawURLEncoding.Encode(check[:], wire[:])
	if string(check[:]) != s {
		return uuid.Nil, fmt.Errorf("%w: %q is not a canonical encoding", ErrInvalidFormat, s)
	}
	return uuid.UUID(wireOrder(wire)), nil
}

// TryDecode is the comma-ok form of Decode for callers that treat malformed
// input as an expected condition rather than an error. On failure it returns
// uuid.Nil and false.
func TryDecode(s string) (uuid.UUID, bool) {
	id, err := Decode(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// parse accepts either text form, dispatching on length: 22 characters go
// through the strict Decode, 36 characters through uuid.Parse. Any other
// length fails immediately with ErrInvalidLength.
func parse(s string) (uuid.UUID, error) {
	switch len(s) {
	case EncodedLen:
		return Decode(s)
	case uuidLen:
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return id, nil
	default:
		return uuid.Nil, fmt.Errorf("%w: expected %d or %d characters, got %d", ErrInvalidLength, EncodedLen, uuidLen, len(s))
	}
}

// TryParseUUID leniently parses s in either accepted text form, the
// 22-character short encoding or the 36-character hyphenated UUID, and
// returns the identifier. On failure it returns uuid.Nil and false.
func TryParseUUID(s string) (uuid.UUID, bool) {
	id, err := parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
