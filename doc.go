// Package shortguid converts UUIDs to and from a compact, URL-safe,
// 22-character text form.
//
// The short form is the unpadded URL-safe base64 encoding of the UUID's
// bytes taken in the little-endian field order of .NET's Guid.ToByteArray,
// so encoded values are interchangeable with .NET ShortGuid strings:
//
//	id := uuid.MustParse("c9a646d3-9c61-4cb7-bfcd-ee2522c8f633")
//	s := shortguid.Encode(id)      // "00amyWGct0y_ze4lIsj2Mw"
//	back, err := shortguid.Decode(s)
//
// Decode is strict: it accepts exactly the strings Encode produces, so the
// pair is lossless in both directions. TryParse and TryParseUUID additionally
// accept the standard 36-character hyphenated form for inputs that may
// arrive in either representation.
//
// The ShortGUID wrapper couples an identifier with its cached text form for
// code that carries both around together:
//
//	g := shortguid.New()
//	fmt.Println(g.String(), g.UUID())
//
// All conversions are pure computation with no I/O and are safe for
// concurrent use.
package shortguid
