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
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/consensys/bavard"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

const copyrightHolder = "Consensys Software Inc."

//go:generate go run . --out ../..
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().String("out", ".", "root directory of the module")
	rootCmd.Flags().String("templates", "templates", "directory containing the templates")
	rootCmd.Flags().Uint("primes", 200, "number of entries in the table of known primes")
	rootCmd.Flags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.Flags().Bool("no-fmt", false, "do not run gofmt on generated files")
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "zngen [flags]",
	Short: "Code generation utility for go-zn.",
	Long:  `Generate the modulus tag types of package moduli and the table of known primes of package prime.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure logging
		log.SetFormatter(&log.TextFormatter{DisableColors: !term.IsTerminal(int(os.Stderr.Fd()))})
		//
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		var (
			root      = GetString(cmd, "out")
			templates = GetString(cmd, "templates")
			stats     = NewPerfStats()
		)
		//
		files, err := generate(root, templates, GetUint(cmd, "primes"))
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		//
		stats.Log(files)
		//
		if !GetFlag(cmd, "no-fmt") {
			runCmd("gofmt", "-w", filepath.Join(root, "pkg", "moduli"), filepath.Join(root, "pkg", "prime"))
		}
	},
}

// generate writes out all generated files beneath the given root directory,
// returning how many were written.
func generate(root string, templates string, nprimes uint) (uint, error) {
	var (
		g     errgroup.Group
		table = newTableConfig(nprimes)
	)
	//
	moduli, err := newModuliConfig(specs)
	if err != nil {
		return 0, err
	}
	//
	for _, m := range moduli.Moduli {
		log.Debugf("modulus %s = %d (prime %t, narrow %t)", m.Name, m.Modulus, m.IsPrime, m.Narrow)
	}
	//
	moduliEntries := []bavard.Entry{
		{File: filepath.Join(root, "pkg", "moduli", "moduli.go"), Templates: []string{"moduli.go.tmpl"}},
		{File: filepath.Join(root, "pkg", "moduli", "moduli_test.go"), Templates: []string{"moduli.test.go.tmpl"}},
	}
	//
	tableEntries := []bavard.Entry{
		{File: filepath.Join(root, "pkg", "prime", "table.go"), Templates: []string{"table.go.tmpl"}},
	}
	// Each package has its own generator since they are written concurrently.
	g.Go(func() error {
		bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-zn")
		//
		return bgen.Generate(moduli, "moduli", templates, moduliEntries...)
	})
	//
	g.Go(func() error {
		bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-zn")
		//
		return bgen.Generate(table, "prime", templates, tableEntries...)
	})
	//
	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("generation failed: %w", err)
	}
	//
	log.Infof("generated %d moduli and %d known primes", len(moduli.Moduli), table.NumPrimes)
	//
	return uint(len(moduliEntries) + len(tableEntries)), nil
}

func runCmd(name string, arg ...string) {
	log.Debug(name, " ", strings.Join(arg, " "))
	//
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	//
	if err := cmd.Run(); err != nil {
		log.Errorf("%s: %v", name, err)
		os.Exit(1)
	}
}
