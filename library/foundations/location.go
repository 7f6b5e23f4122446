package foundations

// Location uniquely identifies an element in the document, derived
// from a 128-bit structural hash (see library/introspection.Locator).
// Two elements that hash identically but appear at different positions
// are disambiguated by Variant.
type Location struct {
	Hash    [16]byte
	Variant uint32
}
