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
	"math/big"

	"github.com/consensys/gnark-crypto/field/babybear"
	"github.com/consensys/go-zn/pkg/moduli"
	"github.com/consensys/go-zn/pkg/zn"
)

// FromBabyBear converts a gnark-crypto BabyBear element into the equivalent
// residue.
func FromBabyBear(x babybear.Element) zn.Element[moduli.BabyBear] {
	var val big.Int
	//
	return zn.Uint64[moduli.BabyBear](x.BigInt(&val).Uint64())
}

// ToBabyBear converts a residue into the equivalent gnark-crypto BabyBear
// element.
func ToBabyBear(x zn.Element[moduli.BabyBear]) babybear.Element {
	return babybear.NewElement(x.Residue())
}
