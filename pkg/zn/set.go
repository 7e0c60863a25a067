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

import (
	"math"
	"slices"
	"strings"
)

// Set is an array of unique elements sorted by residue (i.e. no duplicates).
type Set[M Modulus] []Element[M]

// NewSet creates a sorted set from a given array by first cloning that array,
// and then sorting it appropriately.  This means the given array will not be
// mutated by this function, or any subsequent calls on the resulting set.
func NewSet[M Modulus](items ...Element[M]) Set[M] {
	nitems := slices.Clone(items)
	// Sort incoming data
	slices.SortFunc(nitems, Element[M].Cmp)
	// Remove duplicates
	return slices.Compact(nitems)
}

// Len returns the number of elements in this set.
func (p Set[M]) Len() uint {
	return uint(len(p))
}

// Find returns the index of the matching element in this set, or it returns
// MaxUInt.
func (p Set[M]) Find(element Element[M]) uint {
	if index, ok := slices.BinarySearchFunc(p, element, Element[M].Cmp); ok {
		return uint(index)
	}
	//
	return math.MaxUint
}

// Contains returns true if a given element is in the set.
func (p Set[M]) Contains(element Element[M]) bool {
	return p.Find(element) != math.MaxUint
}

// Insert an element into this set, returning the updated set.
func (p Set[M]) Insert(element Element[M]) Set[M] {
	index, ok := slices.BinarySearchFunc(p, element, Element[M].Cmp)
	//
	if ok {
		return p
	}
	//
	return slices.Insert(p, index, element)
}

// ToArray extracts the underlying array from this sorted set.
func (p Set[M]) ToArray() []Element[M] {
	return p
}

func (p Set[M]) String() string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for i, e := range p {
		if i != 0 {
			builder.WriteString(",")
		}
		//
		builder.WriteString(e.String())
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}
