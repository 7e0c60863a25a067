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
	"math/bits"

	"github.com/consensys/go-zn/pkg/util/math"
)

// witnesses for which the strong probable prime test is exact over uint64.
var witnesses = [...]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// MillerRabin determines whether n is prime using the Miller-Rabin test with a
// fixed set of witnesses, which makes it deterministic for every uint64.
// Unlike TrialDivision, this remains fast for moduli close to 2^64.
func MillerRabin(n uint64) bool {
	if n < 2 {
		return false
	}
	// Screen out small factors, including the witnesses themselves.
	for _, p := range witnesses {
		if n%p == 0 {
			return n == p
		}
	}
	// n-1 = d * 2^s with d odd
	s := bits.TrailingZeros64(n - 1)
	d := (n - 1) >> s
	//
	for _, a := range witnesses {
		if !strongProbablePrime(n, a, d, s) {
			return false
		}
	}
	//
	return true
}

// strongProbablePrime checks whether a^d = 1 or a^(d*2^r) = -1 (mod n) for some
// r < s.
func strongProbablePrime(n, a, d uint64, s int) bool {
	x := math.PowMod(a, d, n)
	//
	if x == 1 || x == n-1 {
		return true
	}
	//
	for range s - 1 {
		x = math.MulMod(x, x, n)
		//
		if x == n-1 {
			return true
		}
	}
	//
	return false
}
