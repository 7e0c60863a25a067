// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package zn

import (
	"fmt"
	"math"

	"github.com/consensys/go-zn/pkg/prime"
)

// MAX_NARROW is the largest modulus for which the product of two residues
// cannot overflow a uint64, since (N-1)² <= 2^64-1 iff N-1 <= Isqrt(2^64-1).
const MAX_NARROW uint64 = prime.MAX_ISQRT + 1

// Modulus is implemented by the tag types which fix the modulus of a ring.
// Tag types are zero-sized structs whose Modulus method returns a constant,
// for example:
//
//	type Z7 struct{ zn.Prime }
//
//	func (Z7) Modulus() uint64 { return 7 }
type Modulus interface {
	// Modulus returns N, which must be non-zero.
	Modulus() uint64
}

// NarrowModulus is a modulus no larger than MAX_NARROW, for which elements
// support multiplication.  Tag types opt in by embedding Narrow.
type NarrowModulus interface {
	Modulus
	narrow()
}

// PrimeModulus is a prime modulus no larger than MAX_NARROW, for which
// elements additionally support inversion, division and primitive roots.  Tag
// types opt in by embedding Prime.
type PrimeModulus interface {
	NarrowModulus
	prime()
}

// Narrow marks a modulus tag as a NarrowModulus.
type Narrow struct{}

func (Narrow) narrow() {}

// Prime marks a modulus tag as a PrimeModulus.
type Prime struct{ Narrow }

func (Prime) prime() {}

// ModulusOf returns the modulus fixed by the tag type M.
func ModulusOf[M Modulus]() uint64 {
	var m M
	//
	return m.Modulus()
}

// IsWide checks whether the modulus fixed by M is large enough that adding two
// residues directly could overflow a uint64.
func IsWide[M Modulus]() bool {
	return ModulusOf[M]()-1 > math.MaxUint64/2
}

// Check that the capabilities claimed by the tag type M are justified.  That
// is, its modulus is non-zero, a NarrowModulus does not exceed MAX_NARROW and a
// PrimeModulus is actually prime.  Tags generated into package moduli satisfy
// this by construction.
func Check[M Modulus]() error {
	var (
		m M
		n = m.Modulus()
	)
	//
	if n == 0 {
		return fmt.Errorf("modulus %T is zero", m)
	}
	//
	if _, ok := any(m).(NarrowModulus); ok && n > MAX_NARROW {
		return fmt.Errorf("modulus %T (%d) is too large to be narrow", m, n)
	}
	//
	if _, ok := any(m).(PrimeModulus); ok && !prime.IsPrime(n) {
		return fmt.Errorf("modulus %T (%d) is not prime", m, n)
	}
	//
	return nil
}
