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

// MAX_ISQRT is the integer square root of the largest uint64, and therefore
// an upper bound on the integer square root of any uint64.
const MAX_ISQRT uint64 = 1<<32 - 1

// Isqrt returns floor(sqrt(n)).
func Isqrt(n uint64) uint64 {
	return IsqrtHeron(n)
}

// IsqrtBinarySearch computes floor(sqrt(n)) by binary search over the
// candidate range [0,R), converging when L+1 == R.  The range is clamped to
// MAX_ISQRT+1 so that neither R nor M*M can overflow.
func IsqrtBinarySearch(n uint64) uint64 {
	var (
		left  uint64 = 0
		right uint64 = min(n, MAX_ISQRT) + 1
	)
	//
	for left != right-1 {
		mid := (left + right) / 2
		//
		if mid*mid <= n {
			left = mid
		} else {
			right = mid
		}
	}
	//
	return left
}

// IsqrtHeron computes floor(sqrt(n)) using Heron's (Newton's) method starting
// from n/2.  The iteration x' = (x + n/x)/2 decreases monotonically until it
// reaches the fixed point, which is the result.
func IsqrtHeron(n uint64) uint64 {
	if n <= 1 {
		return n
	}
	//
	x0 := n / 2
	x1 := (x0 + n/x0) / 2
	//
	for x1 < x0 {
		x0 = x1
		x1 = (x0 + n/x0) / 2
	}
	//
	return x0
}
