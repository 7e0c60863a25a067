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
package zn_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/consensys/go-zn/pkg/moduli"
	"github.com/consensys/go-zn/pkg/util/assert"
	"github.com/consensys/go-zn/pkg/zn"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func Test_Element_New(t *testing.T) {
	assert.Equal(t, uint64(3), moduli.NewZ7(10).Residue())
	assert.Equal(t, uint64(0), moduli.NewZ7(7).Residue())
	assert.Equal(t, uint64(0), moduli.NewZ1(12345).Residue())
	assert.Equal(t, uint64(1), moduli.NewZ7(uint8(8)).Residue())
	assert.Equal(t, uint64(1), zn.Uint64[moduli.Z7](math.MaxUint64).Residue())
}

// Negative integers are reduced by absolute value.
func Test_Element_NewNegative(t *testing.T) {
	assert.Equal(t, uint64(1), moduli.NewZ5(-1).Residue())
	assert.Equal(t, uint64(3), moduli.NewZ7(-10).Residue())
	assert.Equal(t, moduli.NewZ7(10), moduli.NewZ7(-10))
	assert.Equal(t, uint64(3), zn.Int64[moduli.Z5](-8).Residue())
	// Minimum values of each signed type
	assert.Equal(t, uint64(128%7), moduli.NewZ7(int8(math.MinInt8)).Residue())
	assert.Equal(t, uint64(32768%7), moduli.NewZ7(int16(math.MinInt16)).Residue())
	assert.Equal(t, uint64((1<<63)%7), moduli.NewZ7(int64(math.MinInt64)).Residue())
}

func Test_Element_Normalization(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000
	properties := gopter.NewProperties(parameters)
	//
	properties.Property("signed residue in range", prop.ForAll(
		func(x int64) bool {
			return checkRange(moduli.NewZ7(x)) && checkRange(moduli.NewZ1024(x)) &&
				checkRange(moduli.NewZ2p64m59(x)) && checkRange(moduli.NewZ1(x))
		},
		gen.Int64(),
	))
	//
	properties.Property("unsigned residue in range", prop.ForAll(
		func(x uint64) bool {
			return checkRange(moduli.NewZ8209(x)) && checkRange(moduli.NewZ2p63p1(x)) &&
				checkRange(moduli.NewMersenne31(x))
		},
		gen.UInt64(),
	))
	//
	properties.Property("signed residue is absolute value mod N", prop.ForAll(
		func(x int64) bool {
			var abs, mod big.Int
			//
			abs.Abs(big.NewInt(x))
			mod.Mod(&abs, big.NewInt(8209))
			//
			return moduli.NewZ8209(x).Residue() == mod.Uint64()
		},
		gen.Int64(),
	))
	//
	properties.TestingRun(t)
}

func Test_Element_String(t *testing.T) {
	assert.Equal(t, "3_Z7", moduli.NewZ7(10).String())
	assert.Equal(t, "0_Z1", moduli.NewZ1(10).String())
	assert.Equal(t, "18446744073709551556_Z18446744073709551557", moduli.NewZ2p64m59(-1).Neg().String())
	assert.Equal(t, "ff", moduli.NewZ1024(255).Text(16))
	assert.Equal(t, "101", moduli.NewZ7(5).Text(2))
}

func Test_Element_Cmp(t *testing.T) {
	var (
		two   = moduli.NewZ7(2)
		three = moduli.NewZ7(3)
	)
	//
	assert.Equal(t, -1, two.Cmp(three))
	assert.Equal(t, 1, three.Cmp(two))
	assert.Equal(t, 0, two.Cmp(moduli.NewZ7(9)))
	assert.True(t, two.Equal(moduli.NewZ7(-9)))
	assert.False(t, two.Equal(three))
	assert.True(t, two == moduli.NewZ7(2))
}

func Test_Element_Identities(t *testing.T) {
	assert.True(t, zn.Zero[moduli.Z7]().IsZero())
	assert.True(t, zn.One[moduli.Z7]().IsOne())
	assert.True(t, zn.One[moduli.Z1]().IsZero())
	assert.True(t, zn.One[moduli.Z1]().IsOne())
	assert.Equal(t, zn.Zero[moduli.Z7](), zn.Element[moduli.Z7]{})
	assert.Equal(t, uint64(7), zn.Zero[moduli.Z7]().Modulus())
}

func Test_Element_Add(t *testing.T) {
	assert.Equal(t, moduli.NewZ7(1), moduli.NewZ7(5).Add(moduli.NewZ7(3)))
	assert.Equal(t, moduli.NewZ7(0), moduli.NewZ7(4).Add(moduli.NewZ7(3)))
	assert.Equal(t, moduli.NewZ1024(0), moduli.NewZ1024(1023).Add(moduli.NewZ1024(1)))
	// Wide modulus around the wrap
	var (
		top = moduli.NewZ2p64m59(-1).Neg()
		one = moduli.NewZ2p64m59(1)
	)
	//
	assert.True(t, top.Add(one).IsZero())
	assert.Equal(t, top.Residue()-1, top.Add(top).Residue())
}

func Test_Element_NegSub(t *testing.T) {
	assert.Equal(t, moduli.NewZ7(4), moduli.NewZ7(3).Neg())
	assert.True(t, moduli.NewZ7(0).Neg().IsZero())
	assert.Equal(t, moduli.NewZ7(5), moduli.NewZ7(1).Sub(moduli.NewZ7(3)))
	assert.Equal(t, moduli.NewZ7(2), moduli.NewZ7(5).Sub(moduli.NewZ7(3)))
	assert.True(t, moduli.NewZ2p64m59(0).Neg().IsZero())
}

func Test_Element_AdditiveInverse(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000
	properties := gopter.NewProperties(parameters)
	//
	properties.Property("a + -a = 0", prop.ForAll(
		func(x uint64) bool {
			return moduli.NewZ8209(x).Add(moduli.NewZ8209(x).Neg()).IsZero() &&
				moduli.NewZ12(x).Add(moduli.NewZ12(x).Neg()).IsZero() &&
				moduli.NewZ2p63(x).Add(moduli.NewZ2p63(x).Neg()).IsZero() &&
				moduli.NewZ2p63p1(x).Add(moduli.NewZ2p63p1(x).Neg()).IsZero() &&
				moduli.NewZ2p64m59(x).Add(moduli.NewZ2p64m59(x).Neg()).IsZero()
		},
		gen.UInt64(),
	))
	//
	properties.Property("(a - b) + b = a", prop.ForAll(
		func(x, y uint64) bool {
			a, b := moduli.NewZ2p64m59(x), moduli.NewZ2p64m59(y)
			//
			return a.Sub(b).Add(b) == a
		},
		gen.UInt64(), gen.UInt64(),
	))
	//
	properties.TestingRun(t)
}

func Test_Element_IncDec(t *testing.T) {
	x := moduli.NewZ7(5)
	//
	x.Inc()
	assert.Equal(t, moduli.NewZ7(6), x)
	x.Inc()
	assert.True(t, x.IsZero())
	x.Dec()
	assert.Equal(t, moduli.NewZ7(6), x)
	//
	y := moduli.NewZ7(0)
	y.Dec()
	assert.Equal(t, moduli.NewZ7(6), y)
	//
	z := moduli.NewZ1(0)
	z.Inc()
	assert.True(t, z.IsZero())
	//
	w := moduli.NewZ2p64m59(0)
	w.Dec()
	w.Inc()
	assert.True(t, w.IsZero())
}

func Test_Element_Mul(t *testing.T) {
	assert.Equal(t, moduli.NewZ7(6), zn.Mul(moduli.NewZ7(3), moduli.NewZ7(2)))
	assert.Equal(t, moduli.NewZ12(0), zn.Mul(moduli.NewZ12(3), moduli.NewZ12(4)))
	assert.Equal(t, moduli.NewZ1024(1), zn.Mul(moduli.NewZ1024(1023), moduli.NewZ1024(1023)))
	// (N-1)² for the largest narrow prime
	minusOne := moduli.NewZ2p32m5(1).Neg()
	assert.True(t, zn.Mul(minusOne, minusOne).IsOne())
}

func Test_Element_MulAgainstBig(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000
	properties := gopter.NewProperties(parameters)
	//
	properties.Property("product matches big.Int", prop.ForAll(
		func(x, y uint64) bool {
			var i, j, m big.Int
			//
			a, b := moduli.NewZ2p32m5(x), moduli.NewZ2p32m5(y)
			//
			m.SetUint64(a.Modulus())
			i.SetUint64(a.Residue()).Mul(&i, j.SetUint64(b.Residue())).Mod(&i, &m)
			//
			return zn.Mul(a, b).Residue() == i.Uint64()
		},
		gen.UInt64(), gen.UInt64(),
	))
	//
	properties.TestingRun(t)
}

func Test_Element_Pow(t *testing.T) {
	assert.Equal(t, moduli.NewZ7(1), zn.Pow(moduli.NewZ7(3), 0))
	assert.Equal(t, moduli.NewZ7(3), zn.Pow(moduli.NewZ7(3), 1))
	assert.Equal(t, moduli.NewZ7(2), zn.Pow(moduli.NewZ7(3), 2))
	assert.Equal(t, moduli.NewZ7(1), zn.Pow(moduli.NewZ7(3), 6))
	assert.Equal(t, moduli.NewZ1024(0), zn.Pow(moduli.NewZ1024(2), 10))
	assert.True(t, zn.Pow(moduli.NewZ1(5), 0).IsZero())
	// Fermat's little theorem
	for _, x := range []uint64{2, 3, 31, 1 << 30} {
		assert.True(t, zn.Pow(moduli.NewMersenne31(x), 1<<31-2).IsOne(), "%d^(p-1)", x)
	}
}

func Test_Element_Set(t *testing.T) {
	set := zn.NewSet(moduli.NewZ7(5), moduli.NewZ7(3), moduli.NewZ7(12), moduli.NewZ7(1))
	//
	assert.Equal(t, uint(3), set.Len())
	assert.Equal(t, "{1_Z7,3_Z7,5_Z7}", set.String())
	assert.True(t, set.Contains(moduli.NewZ7(3)))
	assert.False(t, set.Contains(moduli.NewZ7(4)))
	assert.Equal(t, uint(2), set.Find(moduli.NewZ7(5)))
	assert.Equal(t, uint(math.MaxUint), set.Find(moduli.NewZ7(6)))
	//
	set = set.Insert(moduli.NewZ7(4)).Insert(moduli.NewZ7(4))
	assert.Equal(t, "{1_Z7,3_Z7,4_Z7,5_Z7}", set.String())
	assert.Equal(t, 4, len(set.ToArray()))
	assert.Equal(t, "{}", zn.NewSet[moduli.Z7]().String())
}

func checkRange[M zn.Modulus](x zn.Element[M]) bool {
	return x.Residue() < x.Modulus()
}
