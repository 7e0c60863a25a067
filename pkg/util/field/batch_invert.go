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
package field

import "github.com/consensys/go-zn/pkg/zn"

// BatchInvert efficiently inverts the list of elements s, in place, using a
// single inversion.  Zero entries are left as zero.
func BatchInvert[M zn.PrimeModulus](s []zn.Element[M]) {
	if len(s) == 0 {
		return
	}
	//
	var (
		n    = len(s)
		zero = zn.Zero[M]()
		one  = zn.One[M]()
		// identifies entries which are zero
		isZero = make([]bool, n)
		m      = make([]zn.Element[M], n) // m[i] = s[i] * s[i+1] * ...
	)
	//
	for i := n - 1; i >= 0; i-- {
		if isZero[i] = s[i].IsZero(); isZero[i] {
			s[i] = one
		}
		//
		if i == n-1 {
			m[i] = s[i]
		} else {
			m[i] = zn.Mul(m[i+1], s[i])
		}
	}
	//
	inv := zn.Inverse(m[0]) // inv = s[0]⁻¹ * s[1]⁻¹ * ...
	//
	for i := range n - 1 {
		// inv = s[i]⁻¹ * s[i+1]⁻¹ * ...
		next := zn.Mul(inv, s[i])
		s[i] = zn.Mul(inv, m[i+1])
		inv = next
		// inv = s[i+1]⁻¹ * s[i+2]⁻¹ * ...
		if isZero[i] {
			s[i] = zero
		}
	}
	//
	if s[n-1] = inv; isZero[n-1] {
		s[n-1] = zero
	}
}
