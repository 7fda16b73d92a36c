package shortguid

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"fmt"

	"github.com/google/uuid"
)

// Compile-time interface checks.
var (
	_ fmt.Stringer               = ShortGUID{}
	_ encoding.TextMarshaler     = ShortGUID{}
	_ encoding.TextUnmarshaler   = (*ShortGUID)(nil)
	_ encoding.BinaryMarshaler   = ShortGUID{}
	_ encoding.BinaryUnmarshaler = (*ShortGUID)(nil)
	_ driver.Valuer              = ShortGUID{}
	_ sql.Scanner                = (*ShortGUID)(nil)
)

// AppendText appends the cached 22-character form to b and returns the
// extended slice. The error is always nil; the signature matches
// MarshalText so both can share call sites.
func (g ShortGUID) AppendText(b []byte) ([]byte, error) {
	return append(b, g.text...), nil
}

// MarshalText returns the 22-character short form. Together with
// UnmarshalText it makes ShortGUID fields transparent to encoding/json and
// other text-based codecs.
func (g ShortGUID) MarshalText() ([]byte, error) {
	return g.AppendText(nil)
}

// UnmarshalText parses text in either accepted form, the 22-character short
// encoding or the 36-character hyphenated UUID, and replaces *g. Failures
// carry ErrInvalidLength or ErrInvalidFormat.
func (g *ShortGUID) UnmarshalText(text []byte) error {
	id, err := parse(string(text))
	if err != nil {
		return err
	}
	*g = FromUUID(id)
	return nil
}

// MarshalBinary returns the 16 identifier bytes in RFC 4122 order.
func (g ShortGUID) MarshalBinary() ([]byte, error) {
	return g.guid.MarshalBinary()
}

// UnmarshalBinary replaces *g with the identifier carried by the 16 bytes in
// data, recomputing the cached text.
func (g *ShortGUID) UnmarshalBinary(data []byte) error {
	var id uuid.UUID
	if err := id.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLength, err)
	}
	*g = FromUUID(id)
	return nil
}

// Value implements driver.Valuer, storing the short text form. A column of
// 22 characters holds any identifier.
func (g ShortGUID) Value() (driver.Value, error) {
	return g.text, nil
}

// Scan implements sql.Scanner. It accepts string and []byte columns in
// either accepted text form; NULL scans to Empty.
func (g *ShortGUID) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*g = Empty
		return nil
	case string:
		return g.UnmarshalText([]byte(v))
	case []byte:
		return g.UnmarshalText(v)
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidFormat, src)
	}
}
