// Command dofcalc evaluates lattice degrees of freedom from the command line.
//
//	dofcalc zn 5 7
//	dofcalc spin 1 0 --raise 2
//	dofcalc charge - 0
//	dofcalc plaquette 5 3 4 --pure
//	dofcalc eval scenario.yaml
//
// Configuration is read from $DOF_CONFIG and the environment, see package
// config.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gauge-lab/lattice-dof/config"
	"github.com/gauge-lab/lattice-dof/pkg/logger"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := cfg.NewLogger()
	log.Debug("configuration loaded",
		logger.String("env", string(cfg.App.Environment)),
		logger.Modulus(cfg.Defaults.Modulus),
		logger.String("style", cfg.Render.Style),
	)

	root := newRootCommand(cfg)
	root.SetArgs(args)
	return root.ExecuteContext(logger.WithContext(ctx, log))
}
