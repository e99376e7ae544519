// Package field defines the scalar capability set that boundary operators,
// elementary operations and the diagonal reducer are written against.
//
// A Field[T] supplies the additive and multiplicative identities, addition,
// negation, multiplication, inversion and an equality test. Four
// instantiations ship with the package:
//
//   - Reals:     float64 with an absolute tolerance for zero/equality tests.
//   - Rationals: exact arithmetic over *big.Rat.
//   - Integers:  the exact ring Z over int64; only ±1 are invertible.
//   - ModP:      the prime field Z/pZ over int64 (GF2 for Z/2 homology).
//
// Values are treated as immutable: every operation returns a fresh value and
// never mutates its arguments, so matrices may share scalars freely.
package field
