package shortguid

import "github.com/google/uuid"

// ShortGUID couples an identifier with its 22-character text form. The text
// is computed once at construction and cached, so String is a plain field
// read on the hot path.
//
// ShortGUID is an immutable value: it is safe to copy, to compare with ==
// and to use as a map key. Construct values with FromUUID, FromString,
// TryParse, New or NewSequential. The zero value carries no cached text;
// use Empty for the all-zero identifier instead.
type ShortGUID struct {
	guid uuid.UUID
	text string
}

// Empty wraps uuid.Nil. Its text form is the fixed string
// "AAAAAAAAAAAAAAAAAAAAAA".
var Empty = FromUUID(uuid.Nil)

// newUUID backs New. It is a thin wrapper so tests can stub the generator.
var newUUID = uuid.New

// New returns a wrapper around a fresh random (version 4) identifier.
func New() ShortGUID {
	return FromUUID(newUUID())
}

// NewSequential returns a wrapper around a time-ordered (version 7)
// identifier. Successive values sort after one another under Compare, which
// preserves index locality when identifiers end up as database keys.
func NewSequential() ShortGUID {
	return FromUUID(uuid.Must(uuid.NewV7()))
}

// FromUUID wraps an existing identifier, computing its text form. It cannot
// fail.
func FromUUID(id uuid.UUID) ShortGUID {
	return ShortGUID{guid: id, text: Encode(id)}
}

// FromString constructs a wrapper from the 22-character short form under the
// strict Decode rules. The input has passed the canonicality check, so it is
// reused as the cached text.
func FromString(s string) (ShortGUID, error) {
	id, err := Decode(s)
	if err != nil {
		return Empty, err
	}
	return ShortGUID{guid: id, text: s}, nil
}

// TryParse is the lenient constructor: it accepts the 22-character short
// form or the 36-character hyphenated form and reports success through the
// second return value. On failure it returns Empty and false.
func TryParse(s string) (ShortGUID, bool) {
	id, err := parse(s)
	if err != nil {
		return Empty, false
	}
	return FromUUID(id), true
}

// Must returns g when err is nil and panics otherwise. It turns the fallible
// constructors into expressions:
//
//	g := shortguid.Must(shortguid.FromString("00amyWGct0y_ze4lIsj2Mw"))
func Must(g ShortGUID, err error) ShortGUID {
	if err != nil {
		panic(err)
	}
	return g
}

// UUID returns the wrapped identifier.
func (g ShortGUID) UUID() uuid.UUID {
	return g.guid
}

// String returns the cached 22-character form.
func (g ShortGUID) String() string {
	return g.text
}

// IsEmpty reports whether g wraps the all-zero identifier.
func (g ShortGUID) IsEmpty() bool {
	return g.guid == uuid.Nil
}
