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

import "fmt"

// PrimitiveRoot returns the least primitive root modulo N, i.e. the least
// residue whose powers visit every non-zero residue.  One always exists for
// prime N, so failing to find one panics.  The search takes O(N²) time and
// O(N) space, hence it is only practical for moduli in the thousands.
func PrimitiveRoot[M PrimeModulus]() Element[M] {
	var (
		n     = ModulusOf[M]()
		marks = make([]bool, n)
	)
	//
	for m := range n {
		if candidate := Uint64[M](m); generates(candidate, marks) {
			return candidate
		}
	}
	// Unreachable for a prime modulus
	panic(fmt.Sprintf("no primitive root modulo %d", n))
}

// PrimitiveRoots returns every primitive root modulo N.  This has the same
// cost as PrimitiveRoot in the worst case.
func PrimitiveRoots[M PrimeModulus]() Set[M] {
	var (
		n     = ModulusOf[M]()
		marks = make([]bool, n)
		roots Set[M]
	)
	//
	for m := range n {
		if candidate := Uint64[M](m); generates(candidate, marks) {
			// Candidates are visited in ascending order
			roots = append(roots, candidate)
		}
	}
	//
	return roots
}

// generates checks whether the powers m⁰,m¹,...,mᴺ⁻¹ mark every non-zero
// residue and never mark zero.  The marks table must have exactly N entries.
func generates[M PrimeModulus](m Element[M], marks []bool) bool {
	clear(marks)
	//
	k := One[M]()
	//
	for range marks {
		marks[k.value] = true
		k = Mul(k, m)
	}
	//
	if marks[0] {
		return false
	}
	//
	for _, marked := range marks[1:] {
		if !marked {
			return false
		}
	}
	//
	return true
}
