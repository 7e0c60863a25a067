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

// Package moduli provides modulus tag types for use with zn.Element.  The tags
// are generated by internal/generator, which attaches zn.Prime or zn.Narrow
// markers only where primality and the overflow bound justify them.
package moduli

// Config describes a generated modulus.
type Config struct {
	// Name of the tag type.
	Name string
	// Modulus fixed by the tag type.
	Modulus uint64
	// Prime indicates the modulus is prime.  Note that a prime modulus is only
	// tagged as a zn.PrimeModulus when it is also narrow.
	Prime bool
	// Narrow indicates products of residues fit in a uint64.
	Narrow bool
}

// GetConfig returns the modulus configuration corresponding with the given
// name, or nil no such config exists.
func GetConfig(name string) *Config {
	for i := range CONFIGS {
		if CONFIGS[i].Name == name {
			return &CONFIGS[i]
		}
	}
	//
	return nil
}

// Find returns the configuration of the first modulus equal to n, or nil if
// no tag type fixes n.
func Find(n uint64) *Config {
	for i := range CONFIGS {
		if CONFIGS[i].Modulus == n {
			return &CONFIGS[i]
		}
	}
	//
	return nil
}

// Primes returns the configurations of every prime modulus which carries the
// zn.Prime marker.
func Primes() []Config {
	var configs []Config
	//
	for _, c := range CONFIGS {
		if c.Prime && c.Narrow {
			configs = append(configs, c)
		}
	}
	//
	return configs
}
