package shortguid

import (
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEqualWrapperAndUUIDOperands(t *testing.T) {
	id := uuid.MustParse("c9a646d3-9c61-4cb7-bfcd-ee2522c8f633")
	g := FromUUID(id)
	other := FromUUID(uuid.MustParse("11111111-2222-3333-4444-555555555555"))

	assert.True(t, Equal(g, g))
	assert.True(t, Equal(g, FromUUID(id)))
	assert.False(t, Equal(g, other))

	assert.True(t, Equal(g, id))
	assert.False(t, Equal(g, uuid.Nil))

	assert.True(t, Equal(g, &g))
	assert.False(t, Equal(other, &g))
}

func TestEqualStringOperand(t *testing.T) {
	g := Must(FromString("00amyWGct0y_ze4lIsj2Mw"))

	assert.True(t, Equal(g, "00amyWGct0y_ze4lIsj2Mw"))
	assert.True(t, Equal(g, "c9a646d3-9c61-4cb7-bfcd-ee2522c8f633"))

	// The string operand falls back to the full uuid.Parse grammar, which is
	// wider than the two-length dispatch used by TryParse.
	assert.True(t, Equal(g, "c9a646d39c614cb7bfcdee2522c8f633"))
	assert.True(t, Equal(g, "{c9a646d3-9c61-4cb7-bfcd-ee2522c8f633}"))
	assert.True(t, Equal(g, "urn:uuid:c9a646d3-9c61-4cb7-bfcd-ee2522c8f633"))

	assert.False(t, Equal(g, ""))
	assert.False(t, Equal(g, "AAAAAAAAAAAAAAAAAAAAAA"))
	assert.False(t, Equal(g, "00amyWGct0y_ze4lIsj2Mx"), "text that parses under neither rule equals nothing")
}

func TestEqualAbsentConvention(t *testing.T) {
	assert.True(t, Equal(Empty, (*ShortGUID)(nil)), "an absent value equals the empty wrapper")

	g := Must(FromString("00amyWGct0y_ze4lIsj2Mw"))
	assert.False(t, Equal(g, (*ShortGUID)(nil)))

	// The zero value carries no cached text but still holds the all-zero
	// identifier, and equality sees identifiers only.
	assert.True(t, Equal(ShortGUID{}, Empty))
}

func TestEqualSymmetry(t *testing.T) {
	a := FromUUID(uuid.MustParse("c9a646d3-9c61-4cb7-bfcd-ee2522c8f633"))
	b := FromUUID(uuid.MustParse("11111111-2222-3333-4444-555555555555"))

	assert.Equal(t, Equal(a, b), Equal(b, a))
	assert.Equal(t, Equal(a, a), Equal(a, a.UUID()))
	assert.Equal(t, Equal(a, a), Equal(a, a.String()))
}

func TestCompare(t *testing.T) {
	low := FromUUID(uuid.MustParse("00000000-0000-0000-0000-000000000001"))
	high := FromUUID(uuid.MustParse("ffffffff-ffff-ffff-ffff-fffffffffffe"))

	assert.Equal(t, -1, Compare(low, high))
	assert.Equal(t, 1, Compare(high, low))
	assert.Equal(t, 0, Compare(low, FromUUID(low.UUID())))
	assert.Equal(t, 0, Compare(Empty, ShortGUID{}), "ordering sees identifiers only")
}

func TestCompareOrdersByIdentifier(t *testing.T) {
	list := []ShortGUID{
		FromUUID(uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff")),
		FromUUID(uuid.MustParse("c9a646d3-9c61-4cb7-bfcd-ee2522c8f633")),
		FromUUID(uuid.MustParse("00000000-0000-0000-0000-000000000001")),
		Empty,
	}
	slices.SortFunc(list, Compare)

	want := []string{
		"00000000-0000-0000-0000-000000000000",
		"00000000-0000-0000-0000-000000000001",
		"c9a646d3-9c61-4cb7-bfcd-ee2522c8f633",
		"ffffffff-ffff-ffff-ffff-ffffffffffff",
	}
	for i, g := range list {
		assert.Equal(t, want[i], g.UUID().String())
	}
}
