package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/qugrad-ml/qugrad/internal/circuit"
	"github.com/qugrad-ml/qugrad/tape"
	"github.com/qugrad-ml/qugrad/transforms"
)

var compileFlags struct {
	circuitPath string
	passes      int
}

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Apply the compilation pipeline to a circuit",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, _, err := circuit.Load(compileFlags.circuitPath)
		if err != nil {
			return err
		}

		compiled, err := transforms.Compile(t, nil, compileFlags.passes)
		if err != nil {
			return err
		}
		logger.Debug("compiled circuit",
			zap.Int("gates_before", t.NumGates()),
			zap.Int("gates_after", compiled.NumGates()),
			zap.Int("passes", compileFlags.passes))

		fmt.Printf("before (%d gates): %s\n", t.NumGates(), formatGates(t.Gates()))
		fmt.Printf("after  (%d gates): %s\n", compiled.NumGates(), formatGates(compiled.Gates()))
		return nil
	},
}

func formatGates(gates []tape.Gate) string {
	parts := make([]string, len(gates))
	for i, g := range gates {
		switch {
		case len(g.Params) > 0:
			parts[i] = fmt.Sprintf("%s(%.4g)%v", g.Name, g.Params[0], g.Wires)
		default:
			parts[i] = fmt.Sprintf("%s%v", g.Name, g.Wires)
		}
	}
	if len(parts) == 0 {
		return "(empty)"
	}
	return strings.Join(parts, " ")
}

func init() {
	compileCmd.Flags().StringVar(&compileFlags.circuitPath, "circuit", "", "path to circuit YAML file")
	compileCmd.Flags().IntVar(&compileFlags.passes, "passes", 1, "number of pipeline passes")
	_ = compileCmd.MarkFlagRequired("circuit")
}
