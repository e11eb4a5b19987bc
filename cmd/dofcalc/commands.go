package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gauge-lab/lattice-dof/config"
	"github.com/gauge-lab/lattice-dof/internal/scenario"
	"github.com/gauge-lab/lattice-dof/pkg/logger"
)

func newRootCommand(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "dofcalc",
		Short:         "Evaluate lattice gauge degrees of freedom",
		Long:          `dofcalc builds cyclic-group elements, spin states, charge sites and plaquettes and prints their derived readings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	znCmd := &cobra.Command{
		Use:   "zn [N] k",
		Short: "Show the element k of ℤ_N",
		Long: `zn builds the element k of ℤ_N, reduced modulo N. N defaults to the
configured modulus when omitted. Flags are not parsed, so negative values
can be given directly.`,
		Example: `  dofcalc zn 5 7
  dofcalc zn 5 -3
  dofcalc zn 4`,
		DisableFlagParsing: true,
		RunE:               func(cmd *cobra.Command, args []string) error {
			args = dropSeparator(args)
			if wantsHelp(args) {
				return cmd.Help()
			}
			if err := cobra.RangeArgs(1, 2)(cmd, args); err != nil {
				return err
			}
			n, ints, err := modulusAndInts(cfg, args, "k")
			if err != nil {
				return err
			}
			return evaluate(cmd, cfg, scenario.Entry{
				Name:   "zn",
				Cyclic: &scenario.CyclicSpec{Modulus: n, Value: ints[0]},
			})
		},
	}

	var raise, lower int
	spinCmd := &cobra.Command{
		Use:   "spin s sz",
		Short: "Show a spin state, optionally raised or lowered",
		Example: `  dofcalc spin 1 0 --raise 1
  dofcalc spin --lower 1 -- 1.5 -0.5`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := parseFloat("s", args[0])
			if err != nil {
				return err
			}
			sz, err := parseFloat("sz", args[1])
			if err != nil {
				return err
			}
			spec := &scenario.SpinSpec{S: s, Sz: sz}
			for i := 0; i < raise; i++ {
				spec.Steps = append(spec.Steps, "inc")
			}
			for i := 0; i < lower; i++ {
				spec.Steps = append(spec.Steps, "dec")
			}
			return evaluate(cmd, cfg, scenario.Entry{Name: "spin", Spin: spec})
		},
	}
	spinCmd.Flags().IntVar(&raise, "raise", 0, "number of raising steps")
	spinCmd.Flags().IntVar(&lower, "lower", 0, "number of lowering steps, applied after raising")

	chargeCmd := &cobra.Command{
		Use:   "charge [type] [value]",
		Short: "Show a charge site; type is + or -, value is +, 0 or -",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return evaluate(cmd, cfg, scenario.Entry{
				Name:   "charge",
				Charge: &scenario.ChargeSpec{Type: args[0], Value: args[1]},
			})
		},
	}

	var pure bool
	plaquetteCmd := &cobra.Command{
		Use:   "plaquette [N] top bottom",
		Short: "Show a plaquette built from two ℤ_N links",
		Long: `plaquette builds a plaquette whose top and bottom links hold elements of
ℤ_N. N defaults to the configured modulus when omitted. Negative link
values must follow a -- separator.`,
		Example: `  dofcalc plaquette 5 3 4 --pure
  dofcalc plaquette --pure -- 5 -2 4`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, ints, err := modulusAndInts(cfg, args, "top", "bottom")
			if err != nil {
				return err
			}
			return evaluate(cmd, cfg, scenario.Entry{
				Name: "plaquette",
				Plaquette: &scenario.PlaquetteSpec{
					Pure:   pure,
					Top:    scenario.CyclicSpec{Modulus: n, Value: ints[0]},
					Bottom: scenario.CyclicSpec{Modulus: n, Value: ints[1]},
				},
			})
		},
	}
	plaquetteCmd.Flags().BoolVar(&pure, "pure", false, "build a pure (charge-free) plaquette")

	evalCmd := &cobra.Command{
		Use:   "eval [file]",
		Short: "Evaluate a YAML scenario document; use - for stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, closeFn, err := openInput(cmd, args[0])
			if err != nil {
				return err
			}
			defer closeFn()

			doc, err := scenario.Decode(r)
			if err != nil {
				return err
			}
			return printReport(cmd, cfg, doc)
		},
	}

	root.AddCommand(znCmd, spinCmd, chargeCmd, plaquetteCmd, evalCmd)
	return root
}

func evaluate(cmd *cobra.Command, cfg *config.Config, entry scenario.Entry) error {
	return printReport(cmd, cfg, &scenario.Document{Name: cmd.Name(), Entries: []scenario.Entry{entry}})
}

func printReport(cmd *cobra.Command, cfg *config.Config, doc *scenario.Document) error {
	ctx := cmd.Context()
	ev := scenario.NewEvaluator(scenario.Options{Plain: cfg.Render.Style == config.StylePlain})
	report := ev.Evaluate(ctx, doc)

	out := cmd.OutOrStdout()
	for _, res := range report.Results {
		if res.Err != nil {
			fmt.Fprintf(out, "%s: error: %v\n", res.Name, res.Err)
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", res.Name, res.Rendering)
		for _, r := range res.Readings {
			fmt.Fprintf(out, "  %s = %s\n", r.Key, r.Value)
		}
	}

	if failed := report.Failed(); failed > 0 {
		logger.FromContext(ctx).Info("evaluation finished with failures",
			logger.Scenario(report.Name), logger.Int("failed", failed))
		if len(report.Results) == 1 {
			return report.Results[0].Err
		}
		return fmt.Errorf("%d of %d entries failed", failed, len(report.Results))
	}
	return nil
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open scenario: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// modulusAndInts reads the trailing positional integers named by names.
// A leading extra argument is the modulus; without it the configured
// default modulus applies.
func modulusAndInts(cfg *config.Config, args []string, names ...string) (int, []int, error) {
	n := cfg.Defaults.Modulus
	if len(args) > len(names) {
		v, err := parseInt("N", args[0])
		if err != nil {
			return 0, nil, err
		}
		n = v
		args = args[1:]
	}

	ints := make([]int, len(names))
	for i, name := range names {
		v, err := parseInt(name, args[i])
		if err != nil {
			return 0, nil, err
		}
		ints[i] = v
	}
	return n, ints, nil
}

func dropSeparator(args []string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if a != "--" {
			out = append(out, a)
		}
	}
	return out
}

func wantsHelp(args []string) bool {
	for _, a := range args {
		if a == "-h" || a == "--help" {
			return true
		}
	}
	return false
}

func parseInt(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, s)
	}
	return v, nil
}

func parseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", name, s)
	}
	return v, nil
}
