package shortguid

import (
	"bytes"

	"github.com/google/uuid"
)

// Operand is the closed set of types a ShortGUID can be compared against:
// another wrapper, a pointer to one (where nil stands for an absent value),
// a raw identifier, or a textual form.
type Operand interface {
	ShortGUID | *ShortGUID | uuid.UUID | string
}

// Equal reports whether g and other denote the same identifier. Comparison
// always happens on the underlying identifier, never on the text:
//
//   - ShortGUID and uuid.UUID operands compare identifiers directly.
//   - A string operand is decoded with the strict rules first and then with
//     the full standard UUID grammar (uuid.Parse, which also admits
//     unhyphenated, braced and urn: forms); a string that parses under
//     neither equals nothing.
//   - A nil *ShortGUID stands for an absent value, which by convention
//     equals Empty and nothing else.
func Equal[T Operand](g ShortGUID, other T) bool {
	switch o := any(other).(type) {
	case ShortGUID:
		return g.guid == o.guid
	case *ShortGUID:
		if o == nil {
			return g.guid == uuid.Nil
		}
		return g.guid == o.guid
	case uuid.UUID:
		return g.guid == o
	case string:
		if id, err := Decode(o); err == nil {
			return g.guid == id
		}
		if id, err := uuid.Parse(o); err == nil {
			return g.guid == id
		}
		return false
	}
	return false
}

// Compare orders two wrappers by their identifier bytes in RFC 4122 order,
// following the bytes.Compare convention. Note this is not the lexicographic
// order of the encoded text: the short form serializes the first three UUID
// fields little-endian, which permutes the text order.
func Compare(a, b ShortGUID) int {
	return bytes.Compare(a.guid[:], b.guid[:])
}
