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

// Mul x * y.  This is only available for a NarrowModulus, where the product of
// two residues cannot overflow before it is reduced.  Panics if the tag M
// claims to be narrow, but its modulus exceeds MAX_NARROW.
func Mul[M NarrowModulus](x, y Element[M]) Element[M] {
	var m M
	//
	if n := m.Modulus(); n > MAX_NARROW {
		panic(fmt.Sprintf("modulus %T (%d) is too large to multiply", m, n))
	}
	//
	return Uint64[M](x.value * y.value)
}

// Pow takes a given value to the power n.
func Pow[M NarrowModulus](x Element[M], n uint64) Element[M] {
	result := One[M]()
	//
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			result = Mul(result, x)
		}
		//
		x = Mul(x, x)
	}
	//
	return result
}
