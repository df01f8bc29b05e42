package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ethereum-optimism/rv32alu/rvgo/riscv"
)

func Eval(ctx *cli.Context) error {
	l, err := loggerFromCLI(ctx)
	if err != nil {
		return err
	}
	op, err := riscv.ParseALUOp(ctx.String(EvalOpFlag.Name))
	if err != nil {
		return err
	}
	op1, err := ParseOperand(ctx.String(EvalOp1Flag.Name))
	if err != nil {
		return fmt.Errorf("op1: %w", err)
	}
	op2, err := ParseOperand(ctx.String(EvalOp2Flag.Name))
	if err != nil {
		return fmt.Errorf("op2: %w", err)
	}

	name, evaluate := evaluatorFor(ctx.Bool(SlowFlag.Name))
	result := evaluate(op, uint32(op1), uint32(op2))
	l.Info("evaluated", "evaluator", name, "op", op, "op1", HexU32(op1), "op2", HexU32(op2), "result", HexU32(result))

	_, err = fmt.Fprintf(ctx.App.Writer, "0x%08x\n", result)
	return err
}

var EvalCommand = &cli.Command{
	Name:        "eval",
	Usage:       "Evaluate a single ALU operation",
	Description: "Evaluate a single ALU operation on two 32-bit operands. The result is written to stdout as 0x-prefixed hex",
	Action:      Eval,
	Flags: []cli.Flag{
		EvalOpFlag,
		EvalOp1Flag,
		EvalOp2Flag,
		SlowFlag,
		LogLevelFlag,
	},
}
