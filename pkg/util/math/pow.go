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

import "math/bits"

// MulMod computes (x * y) % m using a 128-bit intermediate, hence it never
// overflows.  Panics if m is zero.
func MulMod(x, y, m uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	//
	return bits.Rem64(hi, lo, m)
}

// PowMod raises a given base to a given power modulo m.
func PowMod(base uint64, exp uint64, m uint64) uint64 {
	result := 1 % m
	base %= m
	//
	for {
		if exp&1 == 1 {
			result = MulMod(result, base, m)
		}
		// div 2
		exp >>= 1
		//
		if exp == 0 {
			break
		}
		//
		base = MulMod(base, base, m)
	}
	//
	return result
}
