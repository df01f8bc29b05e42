package cmd

import (
	"fmt"
	"math"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/ethereum-optimism/rv32alu/rvgo/fast"
	"github.com/ethereum-optimism/rv32alu/rvgo/riscv"
	"github.com/ethereum-optimism/rv32alu/rvgo/slow"
)

// Operand is a 32-bit value, JSON and flag encoded as a 0x-prefixed hex quantity.
type Operand uint32

func ParseOperand(s string) (Operand, error) {
	v, err := hexutil.DecodeUint64(s)
	if err != nil {
		return 0, fmt.Errorf("invalid operand %q: %w", s, err)
	}
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("operand %q exceeds 32 bits", s)
	}
	return Operand(v), nil
}

func (v Operand) String() string {
	return hexutil.EncodeUint64(uint64(v))
}

func (v Operand) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Operand) UnmarshalText(text []byte) error {
	out, err := ParseOperand(string(text))
	if err != nil {
		return err
	}
	*v = out
	return nil
}

// Evaluator is the signature shared by the fast and slow ALU implementations.
type Evaluator func(op riscv.ALUOp, op1, op2 uint32) uint32

func SlowEvaluateALU(op riscv.ALUOp, op1, op2 uint32) uint32 {
	return slow.Val(slow.EvaluateALU(op, slow.NewU32(op1), slow.NewU32(op2)))
}

var _ Evaluator = fast.EvaluateALU
var _ Evaluator = SlowEvaluateALU

func evaluatorFor(useSlow bool) (string, Evaluator) {
	if useSlow {
		return "slow", SlowEvaluateALU
	}
	return "fast", fast.EvaluateALU
}
