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
package main

import (
	"fmt"

	"github.com/consensys/go-zn/pkg/prime"
	"github.com/consensys/go-zn/pkg/zn"
)

// modulusSpec identifies a modulus for which a tag type is generated.
type modulusSpec struct {
	// Name of the generated tag type
	Name string
	// Modulus fixed by the tag type
	Modulus uint64
	// Optional description, included in the doc comment
	Description string
}

// specs determines the set of generated moduli, in order of generation.
var specs = []modulusSpec{
	{"Z1", 1, "the trivial ring"},
	{"Z2", 2, ""},
	{"Z3", 3, ""},
	{"Z4", 4, ""},
	{"Z5", 5, ""},
	{"Z7", 7, ""},
	{"Z11", 11, ""},
	{"Z12", 12, ""},
	{"Z13", 13, ""},
	{"Z17", 17, ""},
	{"Z251", 251, ""},
	{"Z1024", 1024, ""},
	{"Z1223", 1223, "the largest known small prime"},
	{"Z8209", 8209, ""},
	{"Mersenne31", 1<<31 - 1, "2^31-1"},
	{"BabyBear", 1<<31 - 1<<27 + 1, "2^31-2^27+1"},
	{"KoalaBear", 1<<31 - 1<<24 + 1, "2^31-2^24+1"},
	{"Z2p32m5", 1<<32 - 5, "the largest prime below 2^32"},
	{"Z2p63", 1 << 63, "the largest modulus added directly"},
	{"Z2p63p1", 1<<63 + 1, "the smallest wide modulus"},
	{"Z2p64m59", 1<<64 - 59, "the largest prime below 2^64"},
}

// modulusConfig is the template data for a single tag type.
type modulusConfig struct {
	modulusSpec
	// IsPrime indicates the modulus is prime.
	IsPrime bool
	// Narrow indicates the modulus does not exceed zn.MAX_NARROW.
	Narrow bool
	// Prime indicates the tag carries the zn.Prime marker.
	Prime bool
	// Verify indicates the generated test should confirm primality with the
	// oracle, which is only practical for narrow moduli.
	Verify bool
	// Marker embedded in the tag type, or empty.
	Marker string
}

// moduliConfig is the template data for package moduli.
type moduliConfig struct {
	Moduli []modulusConfig
}

func newModuliConfig(specs []modulusSpec) (*moduliConfig, error) {
	var (
		config moduliConfig
		names  = make(map[string]bool)
	)
	//
	for _, spec := range specs {
		if names[spec.Name] {
			return nil, fmt.Errorf("duplicate modulus \"%s\"", spec.Name)
		}
		//
		names[spec.Name] = true
		//
		c, err := spec.config()
		if err != nil {
			return nil, fmt.Errorf("for modulus \"%s\": %w", spec.Name, err)
		}
		//
		config.Moduli = append(config.Moduli, *c)
	}
	//
	return &config, nil
}

func (m modulusSpec) config() (*modulusConfig, error) {
	if m.Modulus == 0 {
		return nil, fmt.Errorf("modulus must be non-zero")
	}
	//
	config := modulusConfig{
		modulusSpec: m,
		IsPrime:     prime.MillerRabin(m.Modulus),
		Narrow:      m.Modulus <= zn.MAX_NARROW,
	}
	//
	config.Prime = config.IsPrime && config.Narrow
	config.Verify = config.Narrow
	//
	switch {
	case config.Prime:
		config.Marker = "zn.Prime"
	case config.Narrow:
		config.Marker = "zn.Narrow"
	}
	//
	return &config, nil
}

// tableConfig is the template data for the table of known primes.
type tableConfig struct {
	NumPrimes uint
	Rows      [][]uint64
}

// primes per row of the generated table
const rowWidth = 10

// newTableConfig determines the first n primes using trial division, which does
// not rely on any existing table.
func newTableConfig(n uint) *tableConfig {
	var (
		primes = make([]uint64, 0, n)
		rows   [][]uint64
	)
	//
	for k := uint64(2); uint(len(primes)) < n; k++ {
		if prime.TrialDivision(k) {
			primes = append(primes, k)
		}
	}
	//
	for len(primes) > rowWidth {
		rows = append(rows, primes[:rowWidth])
		primes = primes[rowWidth:]
	}
	//
	if len(primes) > 0 {
		rows = append(rows, primes)
	}
	//
	return &tableConfig{n, rows}
}
