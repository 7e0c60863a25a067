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

// Add x + y.  For a wide modulus the sum of two residues can overflow, in which
// case it is computed from the distance between y and N instead.
func (x Element[M]) Add(y Element[M]) Element[M] {
	if IsWide[M]() {
		return addWide(x, y)
	}
	//
	return addNarrow(x, y)
}

// Sub x - y
func (x Element[M]) Sub(y Element[M]) Element[M] {
	return x.Add(y.Neg())
}

// Neg -x, which is N - x for non-zero x.
func (x Element[M]) Neg() Element[M] {
	return Uint64[M](ModulusOf[M]() - x.value)
}

// Inc sets x to x + 1.
func (x *Element[M]) Inc() {
	*x = x.Add(One[M]())
}

// Dec sets x to x - 1.
func (x *Element[M]) Dec() {
	*x = x.Sub(One[M]())
}

// addNarrow computes x + y directly, which requires x + y to fit in a uint64.
func addNarrow[M Modulus](x, y Element[M]) Element[M] {
	return Uint64[M](x.value + y.value)
}

// addWide computes x + y for any modulus without forming a sum greater than N.
// If x > N - y then x + y wraps around N and equals x - (N - y).  Otherwise, x +
// y <= N.
func addWide[M Modulus](x, y Element[M]) Element[M] {
	minusY := ModulusOf[M]() - y.value
	//
	if x.value > minusY {
		return Uint64[M](x.value - minusY)
	}
	//
	return Uint64[M](x.value + y.value)
}
