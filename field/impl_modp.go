// SPDX-License-Identifier: MIT
// Package: topolath/field
//
// impl_modp.go: prime field Z/pZ.
//
// Values are canonical residues in [0, p). Inputs outside that range are
// reduced first, so FromInt and literal negatives behave as expected.
// Products are formed in int64; p must stay below 2^31 to avoid overflow.

package field

import (
	"fmt"
	"strconv"
)

const (
	methodNewModP = "NewModP"
	methodModPInv = "ModP.Inv"
	maxModulus    = 1<<31 - 1
)

// GF2 is Z/2Z, the usual coefficient field for Vietoris–Rips homology.
var GF2 = ModP{p: 2}

// ModP is arithmetic modulo a prime p.
//
// The zero value carries no modulus: Add, Neg and Mul pass values through
// unreduced and Inv fails with ErrNotPrime. Obtain a usable field from
// NewModP or GF2.
type ModP struct {
	p int64
}

// NewModP validates p (prime, 2 <= p <= 2^31-1) and returns the field.
func NewModP(p int64) (ModP, error) {
	if p < 2 || p > maxModulus || !isPrime(p) {
		return ModP{}, fmt.Errorf("%s: p=%d: %w", methodNewModP, p, ErrNotPrime)
	}

	return ModP{p: p}, nil
}

// Modulus returns p.
func (m ModP) Modulus() int64 { return m.p }

func (m ModP) norm(a int64) int64 {
	if m.p == 0 {
		return a
	}
	a %= m.p
	if a < 0 {
		a += m.p
	}

	return a
}

func (ModP) Zero() int64            { return 0 }
func (ModP) One() int64             { return 1 }
func (m ModP) Add(a, b int64) int64 { return m.norm(m.norm(a) + m.norm(b)) }
func (m ModP) Neg(a int64) int64    { return m.norm(-m.norm(a)) }
func (m ModP) Mul(a, b int64) int64 { return m.norm(m.norm(a) * m.norm(b)) }

// Inv computes a^(p-2) mod p (Fermat); zero has no inverse.
func (m ModP) Inv(a int64) (int64, error) {
	if m.p < 2 {
		return 0, fmt.Errorf("%s: p=%d: %w", methodModPInv, m.p, ErrNotPrime)
	}
	a = m.norm(a)
	if a == 0 {
		return 0, ErrNotInvertible
	}
	result, base, e := int64(1), a, m.p-2
	for e > 0 {
		if e&1 == 1 {
			result = result * base % m.p
		}
		base = base * base % m.p
		e >>= 1
	}

	return result, nil
}

func (m ModP) Equal(a, b int64) bool { return m.norm(a) == m.norm(b) }
func (m ModP) IsZero(a int64) bool   { return m.norm(a) == 0 }
func (m ModP) String() string        { return "GF(" + strconv.FormatInt(m.p, 10) + ")" }

// isPrime is trial division; moduli are small.
func isPrime(n int64) bool {
	if n < 2 {
		return false
	}
	for d := int64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}

	return true
}
