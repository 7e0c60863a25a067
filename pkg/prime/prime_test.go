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
	"math/big"
	"slices"
	"testing"

	"github.com/consensys/go-zn/pkg/util/assert"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func Test_Prime_00(t *testing.T) {
	assert.False(t, IsPrime(0))
	assert.False(t, IsPrime(1))
	assert.False(t, TrialDivision(0))
	assert.False(t, TrialDivision(1))
	assert.False(t, IsKnown(0))
	assert.False(t, IsKnown(1))
}

func Test_Prime_01(t *testing.T) {
	for _, p := range []uint64{2, 3, 5, 7, 11, 13, 251, 1223, 8209, 2013265921, 2130706433, 1<<31 - 1} {
		assert.True(t, IsPrime(p), "%d is prime", p)
	}
}

func Test_Prime_02(t *testing.T) {
	for _, n := range []uint64{4, 9, 12, 25, 1024, 1225, 8211, 1<<32 - 1, 1 << 63} {
		assert.False(t, IsPrime(n), "%d is composite", n)
	}
}

func Test_Prime_03(t *testing.T) {
	if testing.Short() {
		t.Skip("trial division up to 2^32")
	}
	// Largest prime below 2^64
	assert.True(t, IsPrime(1<<64-59))
	assert.False(t, IsPrime(1<<64-1))
}

// Every classification in the table of known primes must agree with trial
// division.
func Test_Prime_TableAgreement(t *testing.T) {
	assert.Equal(t, NUM_KNOWN, len(Known()))
	assert.Equal(t, uint64(1223), LargestKnown())
	assert.True(t, slices.IsSorted(Known()))
	//
	for n := uint64(0); n <= LargestKnown(); n++ {
		assert.Equal(t, TrialDivision(n), IsKnown(n), "classification of %d", n)
		assert.Equal(t, TrialDivision(n), IsPrime(n), "primality of %d", n)
	}
}

func Test_Prime_KnownIsCopy(t *testing.T) {
	primes := Known()
	primes[0] = 4
	//
	assert.True(t, IsKnown(2))
	assert.False(t, IsKnown(4))
}

func Test_Prime_AgainstBig(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 2000
	properties := gopter.NewProperties(parameters)
	//
	properties.Property("agrees with ProbablyPrime", prop.ForAll(
		func(n uint64) bool {
			return IsPrime(n) == new(big.Int).SetUint64(n).ProbablyPrime(20)
		},
		gen.UInt64Range(0, 1<<40),
	))
	//
	properties.TestingRun(t)
}
