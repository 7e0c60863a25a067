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

// Package zn provides arithmetic over the ring of integers modulo N, where N
// is fixed at compile time by a tag type.  Elements of distinct rings have
// distinct types, so mixing them is rejected by the compiler.  Likewise,
// operations which only make sense for some moduli are restricted by the
// capability of the tag: multiplication requires a NarrowModulus, whilst
// inversion, division and primitive roots require a PrimeModulus.
//
// Every operation keeps residues in [0,N), and never overflows.
package zn
