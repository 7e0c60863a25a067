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
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats records the cost of a generation run.
type PerfStats struct {
	// Starting time
	startTime time.Time
	// Starting total memory allocation
	startMem uint64
}

// NewPerfStats starts recording from the current time and allocation.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	return &PerfStats{time.Now(), m.TotalAlloc}
}

// Log reports how many files were generated since the PerfStats object was
// created, along with the time and memory this took.
func (p *PerfStats) Log(files uint) {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	elapsed := time.Since(p.startTime)
	alloc := (m.TotalAlloc - p.startMem) / 1024
	//
	if files == 0 {
		log.Debugf("generated nothing in %s using %v Kb", elapsed, alloc)
		return
	}
	//
	log.Debugf("generated %d files in %s (%s per file) using %v Kb", files, elapsed,
		elapsed/time.Duration(files), alloc)
}
