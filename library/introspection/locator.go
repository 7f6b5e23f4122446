// Locator derives stable Locations for locatable/labeled elements,
// one-shot during preparation (section 4.2 step 2.b).
//
// Grounded on tag.go's Location{Hash, Variant} shape; the hash itself
// is the one piece of "128-bit hash-derived identifier" machinery
// spec.md leaves to the introspection engine (section 3, "Location").
// Implemented with crypto/md5 (the standard library's only built-in
// 128-bit digest) over an NFC-normalized (golang.org/x/text/unicode/
// norm) encoding of the element's disambiguating fields, so that two
// canonically-equivalent Unicode strings produce the same location.
package introspection

import (
	"crypto/md5"
	"encoding/binary"

	"golang.org/x/text/unicode/norm"

	"github.com/lindqvist/typstrealize/library/foundations"
)

// Locator assigns locations from a structural hash and disambiguates
// collisions with a per-hash counter, the way the original Typst
// locator hands out a Variant when the same hash is seen more than
// once in a single document (e.g. two identical headings).
type Locator struct {
	seen map[[16]byte]uint32
}

// NewLocator creates an empty locator, scoped to one realization call.
func NewLocator() *Locator {
	return &Locator{seen: make(map[[16]byte]uint32)}
}

// Locate derives a Location from the given disambiguating key parts
// (typically the element kind name plus its identifying field values,
// NFC-normalized before hashing).
func (l *Locator) Locate(kind string, parts ...string) foundations.Location {
	h := md5.New()
	h.Write(norm.NFC.Bytes([]byte(kind)))
	for _, p := range parts {
		h.Write([]byte{0})
		h.Write(norm.NFC.Bytes([]byte(p)))
	}
	var sum [16]byte
	copy(sum[:], h.Sum(nil))

	variant := l.seen[sum]
	l.seen[sum] = variant + 1
	return foundations.Location{Hash: sum, Variant: variant}
}

// LocateSeq is a convenience for hashing a sequence index alongside a
// kind, used when disambiguating repeated elements at known positions.
func (l *Locator) LocateSeq(kind string, seq int, parts ...string) foundations.Location {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(seq))
	return l.Locate(kind, append([]string{string(buf[:])}, parts...)...)
}
