package cmd

import (
	"github.com/urfave/cli/v2"
)

var (
	LogLevelFlag = &cli.StringFlag{
		Name:  "log.level",
		Usage: "Log level: trace, debug, info, warn, error or crit",
		Value: "info",
	}
	SlowFlag = &cli.BoolFlag{
		Name:  "slow",
		Usage: "Evaluate with the uint256-word evaluator instead of the native one",
	}

	EvalOpFlag = &cli.StringFlag{
		Name:     "op",
		Usage:    "ALU operation mnemonic, e.g. add, sra, mulhsu, remu",
		Required: true,
	}
	EvalOp1Flag = &cli.StringFlag{
		Name:     "op1",
		Usage:    "First operand, 0x-prefixed hex",
		Required: true,
	}
	EvalOp2Flag = &cli.StringFlag{
		Name:     "op2",
		Usage:    "Second operand, 0x-prefixed hex",
		Required: true,
	}

	VectorsInputFlag = &cli.PathFlag{
		Name:      "input",
		Usage:     "Path of the JSON test-vector file",
		TakesFile: true,
		Required:  true,
	}
	VectorsOutputFlag = &cli.PathFlag{
		Name:      "output",
		Usage:     "Optional path to write the evaluated vectors to as JSON",
		TakesFile: true,
	}

	DiffIterationsFlag = &cli.Uint64Flag{
		Name:  "iterations",
		Usage: "Number of random evaluations to compare",
		Value: 1_000_000,
	}
	DiffSeedFlag = &cli.Int64Flag{
		Name:  "seed",
		Usage: "Seed of the random operand generator",
		Value: 1,
	}
	DiffInfoEveryFlag = &cli.Uint64Flag{
		Name:  "info-every",
		Usage: "Log progress every N iterations, 0 to disable",
		Value: 100_000,
	}
)
