package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/profile"
	"github.com/urfave/cli/v2"

	cannon "github.com/ethereum-optimism/optimism/cannon/cmd"

	"github.com/ethereum-optimism/rv32alu/rvgo/fast"
	"github.com/ethereum-optimism/rv32alu/rvgo/riscv"
)

var diffEdgeOperands = []uint32{
	0, 1, 2, 31, 32, 0x7FFF_FFFF, 0x8000_0000, 0x8000_0001, 0xFFFF_FFFE, 0xFFFF_FFFF,
}

// Mismatch is a disagreement between two evaluators.
type Mismatch struct {
	Op       riscv.ALUOp
	Op1, Op2 uint32
	Left     uint32
	Right    uint32
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("evaluators disagree on %s(0x%08x, 0x%08x): 0x%08x != 0x%08x",
		m.Op, m.Op1, m.Op2, m.Left, m.Right)
}

// randomInput is biased towards the operands where the ISA special-cases results.
func randomInput(rng *rand.Rand) (op riscv.ALUOp, op1, op2 uint32) {
	if rng.Intn(64) == 0 {
		op = riscv.ALUOp(rng.Intn(256)) // reserved selectors too
	} else {
		op = riscv.ALUOps[rng.Intn(len(riscv.ALUOps))]
	}
	pick := func() uint32 {
		switch rng.Intn(4) {
		case 0:
			return diffEdgeOperands[rng.Intn(len(diffEdgeOperands))]
		case 1:
			return uint32(rng.Intn(64))
		default:
			return rng.Uint32()
		}
	}
	return op, pick(), pick()
}

// DiffEvaluators runs left and right on iterations random inputs and returns the
// first Mismatch found, or the context error if cancelled.
func DiffEvaluators(ctx context.Context, l log.Logger, left, right Evaluator, seed int64, iterations uint64, infoEvery uint64) error {
	rng := rand.New(rand.NewSource(seed))
	start := time.Now()
	for i := uint64(0); i < iterations; i++ {
		if i%100 == 0 { // don't do the ctx err check (includes lock) too often
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if infoEvery != 0 && i%infoEvery == 0 && i > 0 {
			delta := time.Since(start)
			l.Info("processing",
				"iteration", i,
				"ips", float64(i)/(float64(delta)/float64(time.Second)),
			)
		}
		op, op1, op2 := randomInput(rng)
		leftOut := left(op, op1, op2)
		rightOut := right(op, op1, op2)
		if leftOut != rightOut {
			return &Mismatch{Op: op, Op1: op1, Op2: op2, Left: leftOut, Right: rightOut}
		}
	}
	l.Info("evaluators agree", "iterations", iterations, "seed", seed, "duration", time.Since(start))
	return nil
}

func Diff(ctx *cli.Context) error {
	if ctx.Bool(cannon.RunPProfCPU.Name) {
		defer profile.Start(profile.NoShutdownHook, profile.ProfilePath("."), profile.CPUProfile).Stop()
	}
	l, err := loggerFromCLI(ctx)
	if err != nil {
		return err
	}
	return DiffEvaluators(ctx.Context,
		l,
		fast.EvaluateALU,
		SlowEvaluateALU,
		ctx.Int64(DiffSeedFlag.Name),
		ctx.Uint64(DiffIterationsFlag.Name),
		ctx.Uint64(DiffInfoEveryFlag.Name),
	)
}

var DiffCommand = &cli.Command{
	Name:        "diff",
	Usage:       "Compare the fast and slow ALU evaluators on random inputs",
	Description: "Evaluate random selectors and operands, biased towards edge values, with both evaluators and fail on the first disagreement",
	Action:      Diff,
	Flags: []cli.Flag{
		DiffIterationsFlag,
		DiffSeedFlag,
		DiffInfoEveryFlag,
		cannon.RunPProfCPU,
		LogLevelFlag,
	},
}
