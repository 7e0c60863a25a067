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
package math

import "golang.org/x/exp/constraints"

// ExtendedGCD runs the extended Euclidean algorithm on a and b, returning
// (g,s,t) such that a*s + b*t = g where g = gcd(|a|,|b|).  The algorithm
// subtracts throughout, hence it is only defined over signed integers.  The
// coefficients are bounded by |s| <= |b|/g and |t| <= |a|/g, so they fit in I
// even when a*s does not.  The result is undefined when the gcd itself does not
// fit in I (e.g. ExtendedGCD(math.MinInt64, 0)).
func ExtendedGCD[I constraints.Signed](a, b I) (g, s, t I) {
	var (
		r0, r1 = a, b
		s0, s1 = I(1), I(0)
		t0, t1 = I(0), I(1)
	)
	//
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		s0, s1 = s1, s0-q*s1
		t0, t1 = t1, t0-q*t1
	}
	// Truncating division may leave a negative gcd
	if r0 < 0 {
		return -r0, -s0, -t0
	}
	//
	return r0, s0, t0
}

// Gcd returns the greatest common divisor of |a| and |b|.
func Gcd[I constraints.Signed](a, b I) I {
	g, _, _ := ExtendedGCD(a, b)
	//
	return g
}
