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

// Inverse computes x⁻¹.  Panics if x is zero, since zero has no inverse.  Also
// panics if x shares a factor with N, which is only possible when the tag M
// claims a prime modulus that is not prime.
//
// This runs the extended Euclidean algorithm on (x, N), tracking only the
// coefficient of x.  The coefficients are computed in the ring itself, hence
// they are reduced modulo N as they go and the last one is x⁻¹.
func Inverse[M PrimeModulus](x Element[M]) Element[M] {
	if x.IsZero() {
		panic(fmt.Sprintf("inverse of zero (%s)", x))
	}
	//
	var (
		r0, r1 = x.value, ModulusOf[M]()
		s0, s1 = One[M](), Zero[M]()
	)
	//
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0%r1
		s0, s1 = s1, s0.Sub(Mul(s1, Uint64[M](q)))
	}
	// r0 is now gcd(x, N)
	if r0 != 1 {
		panic(fmt.Sprintf("%s is not invertible (gcd %d)", x, r0))
	}
	//
	return s0
}

// Div x / y, i.e. x * y⁻¹.  Panics if y is zero.
func Div[M PrimeModulus](x, y Element[M]) Element[M] {
	if y.IsZero() {
		panic(fmt.Sprintf("division by zero (%s / %s)", x, y))
	}
	//
	return Mul(x, Inverse(y))
}
