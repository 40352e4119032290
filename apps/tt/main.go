//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/markkurossi/truthtables"
	"github.com/markkurossi/truthtables/env"
	"github.com/markkurossi/truthtables/espresso"
	"github.com/markkurossi/truthtables/gen"
	"github.com/markkurossi/truthtables/table"
	"github.com/markkurossi/truthtables/verify"
)

func main() {
	fGen := flag.String("gen", "", "Generate random table with IN,OUT inputs and outputs")
	fBias := flag.Float64("bias", 0.5, "Probability of 1 bits in random tables")
	fSeed := flag.Uint64("seed", 0, "Random seed, 0 for system randomness")
	fMin := flag.Bool("min", false, "Minimize function")
	fEspresso := flag.String("espresso", env.DefaultMinimizer,
		"Minimizer executable")
	fCheck := flag.Bool("check", false, "Verify minimized function")
	fOut := flag.String("o", "", "Output file")
	fFormat := flag.String("fmt", "", "Output format: pla, verilog")
	fMode := flag.String("mode", "case", "Verilog mode: case, sop")
	fInfo := flag.Bool("info", false, "Print function information")
	fVerbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	log.SetFlags(0)

	cfg := &env.Config{
		Minimizer: *fEspresso,
		Verbose:   *fVerbose,
	}
	if *fSeed != 0 {
		cfg.Rand = env.NewPRG(*fSeed)
	}

	var f table.Function
	var err error

	if len(*fGen) > 0 {
		if len(flag.Args()) != 0 {
			log.Fatal("-gen does not take input files")
		}
		numInputs, numOutputs, err := parseArity(*fGen)
		if err != nil {
			log.Fatal(err)
		}
		f, err = gen.Random(cfg, numInputs, numOutputs, *fBias)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		if len(flag.Args()) != 1 {
			fmt.Fprintf(os.Stderr, "usage: tt [flags] file.pla\n")
			os.Exit(1)
		}
		f, err = truthtables.ReadFile(flag.Args()[0], "")
		if err != nil {
			log.Fatal(err)
		}
	}

	// Files and generated tables are read with priority semantics
	// and minimizer results as sums of products.
	sem := verify.Priority

	if *fMin {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		minimized, err := espresso.New(cfg).Minimize(ctx, f)
		stop()
		if err != nil {
			log.Fatal(err)
		}
		cfg.Debugf("minimized %s: %d products\n", f.Name(),
			minimized.NumProducts())

		if *fCheck {
			result, err := verify.Equivalent(f, minimized, verify.SumOfProducts)
			if err != nil {
				log.Fatal(err)
			}
			if !result.Equal {
				log.Fatalf("minimized function is not equivalent: %s", result)
			}
			cfg.Debugf("minimized function is equivalent\n")
		}
		f = minimized
		sem = verify.SumOfProducts
	}

	if *fInfo {
		if err := printInfo(os.Stdout, f, sem); err != nil {
			log.Fatal(err)
		}
	}

	if len(*fOut) > 0 {
		err = truthtables.WriteFile(f, *fOut, *fFormat, *fMode)
		if err != nil {
			log.Fatal(err)
		}
	} else if !*fInfo {
		err = truthtables.Marshal(os.Stdout, f, outputFormat(*fFormat), *fMode)
		if err != nil {
			log.Fatal(err)
		}
	}
}

func outputFormat(format string) string {
	if len(format) == 0 {
		return truthtables.FormatPLA
	}
	return format
}

// parseArity parses the IN,OUT arity.
func parseArity(arity string) (int, int, error) {
	parts := strings.Split(arity, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid arity '%s': expected IN,OUT", arity)
	}
	numInputs, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid number of inputs: %w", err)
	}
	numOutputs, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid number of outputs: %w", err)
	}
	if numInputs > table.MaxExpandInputs {
		return 0, 0, fmt.Errorf("too many inputs: %d > %d", numInputs,
			table.MaxExpandInputs)
	}
	return numInputs, numOutputs, nil
}
