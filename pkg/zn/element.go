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
	"cmp"
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Element is a residue modulo the modulus fixed by M.  Its value is always
// canonical, i.e. in the range [0,N).  The zero value is the residue 0.
// Elements of different moduli are different types and never mix.
type Element[M Modulus] struct {
	value uint64
}

// New constructs an element from an integer of any type.  Unsigned integers
// are simply reduced modulo N.  Signed integers are reduced by absolute value,
// which is NOT the mathematical residue of a negative number: New[Z5](-1) is
// 1, not 4.  Use Neg for the latter.
func New[M Modulus, I constraints.Integer](val I) Element[M] {
	if val < 0 {
		// Going via int64 handles the minimum of every signed type.
		return Uint64[M](uint64(-int64(val)))
	}
	//
	return Uint64[M](uint64(val))
}

// Uint64 constructs an element from a uint64.
func Uint64[M Modulus](val uint64) Element[M] {
	return Element[M]{val % ModulusOf[M]()}
}

// Int64 constructs an element from an int64, using the absolute value policy
// of New.
func Int64[M Modulus](val int64) Element[M] {
	return New[M](val)
}

// Zero constructs the residue 0.
func Zero[M Modulus]() Element[M] {
	return Element[M]{}
}

// One constructs the residue 1 (which is 0 when N is 1).
func One[M Modulus]() Element[M] {
	return Uint64[M](1)
}

// Residue returns the canonical value of this element, in [0,N).
func (x Element[M]) Residue() uint64 {
	return x.value
}

// Modulus returns N for this element.
func (x Element[M]) Modulus() uint64 {
	return ModulusOf[M]()
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element[M]) Cmp(y Element[M]) int {
	return cmp.Compare(x.value, y.value)
}

// Equal checks whether two elements have the same residue.
func (x Element[M]) Equal(y Element[M]) bool {
	return x.value == y.value
}

// IsZero checks whether this element is the residue 0.
func (x Element[M]) IsZero() bool {
	return x.value == 0
}

// IsOne checks whether this element is the multiplicative identity.
func (x Element[M]) IsOne() bool {
	return x == One[M]()
}

// Text returns the residue in the given base.
func (x Element[M]) Text(base int) string {
	return strconv.FormatUint(x.value, base)
}

func (x Element[M]) String() string {
	return fmt.Sprintf("%d_Z%d", x.value, ModulusOf[M]())
}
