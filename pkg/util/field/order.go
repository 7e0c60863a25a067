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

import (
	"fmt"

	"github.com/consensys/go-zn/pkg/prime"
	"github.com/consensys/go-zn/pkg/zn"
)

// Order returns the multiplicative order of x, that is the smallest k > 0 such
// that x^k = 1.  This requires factoring N-1 by trial division, which is
// feasible for any prime modulus.  Panics if x is zero.
func Order[M zn.PrimeModulus](x zn.Element[M]) uint64 {
	if x.IsZero() {
		panic(fmt.Sprintf("order of zero (%s)", x))
	}
	//
	order := zn.ModulusOf[M]() - 1
	// Remove each prime factor for as long as the power remains one.
	for _, p := range Factors(order) {
		for order%p == 0 && zn.Pow(x, order/p).IsOne() {
			order /= p
		}
	}
	//
	return order
}

// IsGenerator checks whether x generates the multiplicative group, which holds
// iff its order is N-1.
func IsGenerator[M zn.PrimeModulus](x zn.Element[M]) bool {
	return !x.IsZero() && Order(x) == zn.ModulusOf[M]()-1
}

// Generator returns the least generator of the multiplicative group.  This
// agrees with zn.PrimitiveRoot, but only tests candidates against the factors
// of N-1 and so remains fast for large moduli.
func Generator[M zn.PrimeModulus]() zn.Element[M] {
	n := zn.ModulusOf[M]()
	//
	for g := range n {
		if x := zn.Uint64[M](g); IsGenerator(x) {
			return x
		}
	}
	//
	panic(fmt.Sprintf("no generator modulo %d", n))
}

// Factors returns the distinct prime factors of n in ascending order.
func Factors(n uint64) []uint64 {
	var factors []uint64
	//
	for _, p := range prime.Known() {
		if p*p > n {
			break
		} else if n%p == 0 {
			factors = append(factors, p)
			//
			for n%p == 0 {
				n /= p
			}
		}
	}
	// Continue with odd trial divisors beyond the table
	for d := prime.LargestKnown() + 2; d <= prime.Isqrt(n); d += 2 {
		if n%d == 0 {
			factors = append(factors, d)
			//
			for n%d == 0 {
				n /= d
			}
		}
	}
	//
	if n > 1 {
		factors = append(factors, n)
	}
	//
	return factors
}
