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

// Sum adds together one or more elements.
func Sum[M zn.Modulus](x0 zn.Element[M], xs ...zn.Element[M]) zn.Element[M] {
	for _, x := range xs {
		x0 = x0.Add(x)
	}
	//
	return x0
}

// Product multiplies together one or more elements.
func Product[M zn.NarrowModulus](x0 zn.Element[M], xs ...zn.Element[M]) zn.Element[M] {
	for _, x := range xs {
		x0 = zn.Mul(x0, x)
	}
	//
	return x0
}

// Powers returns the first n powers of x, starting from x^0.
func Powers[M zn.NarrowModulus](x zn.Element[M], n uint) []zn.Element[M] {
	var (
		powers = make([]zn.Element[M], n)
		acc    = zn.One[M]()
	)
	//
	for i := range powers {
		powers[i] = acc
		acc = zn.Mul(acc, x)
	}
	//
	return powers
}
