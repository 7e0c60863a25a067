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
package prime

import (
	"slices"
)

// IsPrime determines whether n is prime.  Zero and one are never prime.  Small
// primes are answered directly from the table of known primes, whilst
// everything else falls back to trial division.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	} else if IsKnown(n) {
		return true
	}
	//
	return TrialDivision(n)
}

// TrialDivision determines whether n is prime by checking that it has no
// divisor in the range [2,Isqrt(n)].  Only two and the odd candidates are
// actually tried.  This never consults the table of known primes.
func TrialDivision(n uint64) bool {
	switch {
	case n < 2:
		return false
	case n%2 == 0:
		return n == 2
	}
	//
	root := Isqrt(n)
	//
	for d := uint64(3); d <= root; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	//
	return true
}

// IsKnown checks whether n is in the table of known small primes.
func IsKnown(n uint64) bool {
	if n > known[len(known)-1] {
		return false
	}
	//
	_, ok := slices.BinarySearch(known[:], n)
	//
	return ok
}

// Known returns the table of known small primes in ascending order.
func Known() []uint64 {
	return slices.Clone(known[:])
}

// LargestKnown returns the largest prime in the table of known primes.
func LargestKnown() uint64 {
	return known[len(known)-1]
}
