package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/qugrad-ml/qugrad/device"
	"github.com/qugrad-ml/qugrad/gradients"
	"github.com/qugrad-ml/qugrad/internal/circuit"
)

var gradFlags struct {
	circuitPath string
	h           float64
	order       int
	n           int
	form        string
}

var gradCmd = &cobra.Command{
	Use:   "grad",
	Short: "Compute the finite-difference Jacobian of a circuit",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, wires, err := circuit.Load(gradFlags.circuitPath)
		if err != nil {
			return err
		}
		logger.Debug("circuit loaded",
			zap.String("file", gradFlags.circuitPath),
			zap.Int("wires", wires),
			zap.Int("gates", t.NumGates()),
			zap.Int("trainable", t.NumTrainable()))

		opts := gradients.Options{
			H:     gradFlags.h,
			Order: gradFlags.order,
			N:     gradFlags.n,
			Form:  gradients.Form(gradFlags.form),
		}
		tapes, fn, err := gradients.FiniteDiff(t, opts)
		if err != nil {
			return err
		}
		logger.Info("gradient batch built", zap.Int("tapes", len(tapes)))

		dev, err := device.New(wires, device.WithLogger(logger))
		if err != nil {
			return err
		}
		results, err := dev.Execute(tapes)
		if err != nil {
			return err
		}
		jac, err := fn(results)
		if err != nil {
			return err
		}

		rows, cols := jac.Dims()
		if rows == 0 || cols == 0 {
			fmt.Println("J = [] (no trainable parameters)")
			return nil
		}
		fmt.Printf("J ≈ %.6v\n", mat.Formatted(jac, mat.Prefix("    ")))
		return nil
	},
}

func init() {
	gradCmd.Flags().StringVar(&gradFlags.circuitPath, "circuit", "", "path to circuit YAML file")
	gradCmd.Flags().Float64Var(&gradFlags.h, "h", 1e-7, "finite-difference step size")
	gradCmd.Flags().IntVar(&gradFlags.order, "order", 1, "accuracy order")
	gradCmd.Flags().IntVar(&gradFlags.n, "n", 1, "derivative order")
	gradCmd.Flags().StringVar(&gradFlags.form, "form", "forward", "stencil form: forward, backward, center")
	_ = gradCmd.MarkFlagRequired("circuit")
}
