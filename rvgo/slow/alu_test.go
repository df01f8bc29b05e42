package slow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethereum-optimism/rv32alu/rvgo/riscv"
)

func evaluate(op riscv.ALUOp, op1, op2 uint32) uint32 {
	return Val(EvaluateALU(op, NewU32(op1), NewU32(op2)))
}

func TestEvaluateALUEdgeCases(t *testing.T) {
	cases := []struct {
		name string
		op   riscv.ALUOp
		op1  uint32
		op2  uint32
		res  uint32
	}{
		{name: "add wraps", op: riscv.ALUAdd, op1: 0xFFFF_FFFF, op2: 1, res: 0},
		{name: "sub wraps", op: riscv.ALUSub, op1: 0, op2: 1, res: 0xFFFF_FFFF},
		{name: "sll shamt 32", op: riscv.ALUSll, op1: 3, op2: 32, res: 3},
		{name: "sll drops high bits", op: riscv.ALUSll, op1: 0xFFFF_FFFF, op2: 4, res: 0xFFFF_FFF0},
		{name: "srl", op: riscv.ALUSrl, op1: 0x8000_0000, op2: 31, res: 1},
		{name: "sra", op: riscv.ALUSra, op1: 0x8000_0000, op2: 31, res: 0xFFFF_FFFF},
		{name: "sra shamt 33", op: riscv.ALUSra, op1: 0x8000_0000, op2: 33, res: 0xC000_0000},
		{name: "slt", op: riscv.ALUSlt, op1: 0xFFFF_FFFF, op2: 1, res: 1},
		{name: "sltu", op: riscv.ALUSltu, op1: 0xFFFF_FFFF, op2: 1, res: 0},
		{name: "sh2add", op: riscv.ALUSh2add, op1: 0xFFFF_FFFF, op2: 0x4000_0001, res: 3},
		{name: "mul", op: riscv.ALUMul, op1: 0xFFFF_FFFF, op2: 0xFFFF_FFFF, res: 1},
		{name: "mulh", op: riscv.ALUMulh, op1: 0xFFFF_FFFF, op2: 0xFFFF_FFFF, res: 0},
		{name: "mulhsu", op: riscv.ALUMulhsu, op1: 0xFFFF_FFFF, op2: 0xFFFF_FFFF, res: 0xFFFF_FFFF},
		{name: "mulhu", op: riscv.ALUMulhu, op1: 0xFFFF_FFFF, op2: 0xFFFF_FFFF, res: 0xFFFF_FFFE},
		{name: "div by zero", op: riscv.ALUDiv, op1: 7, op2: 0, res: 0xFFFF_FFFF},
		{name: "div overflow", op: riscv.ALUDiv, op1: 0x8000_0000, op2: 0xFFFF_FFFF, res: 0x8000_0000},
		{name: "div negative", op: riscv.ALUDiv, op1: 0xFFFF_FFEC, op2: 6, res: 0xFFFF_FFFD},
		{name: "divu by zero", op: riscv.ALUDivu, op1: 7, op2: 0, res: 0xFFFF_FFFF},
		{name: "rem by zero", op: riscv.ALURem, op1: 0x8000_0000, op2: 0, res: 0x8000_0000},
		{name: "rem overflow", op: riscv.ALURem, op1: 0x8000_0000, op2: 0xFFFF_FFFF, res: 0},
		{name: "rem negative", op: riscv.ALURem, op1: 0xFFFF_FFEC, op2: 6, res: 0xFFFF_FFFE},
		{name: "remu by zero", op: riscv.ALURemu, op1: 9, op2: 0, res: 9},
		{name: "reserved", op: 0xFF, op1: 9, op2: 9, res: 0},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.res, evaluate(tc.op, tc.op1, tc.op2))
		})
	}
}

func TestU32StaysInRange(t *testing.T) {
	for _, op := range riscv.ALUOps {
		out := EvaluateALU(op, NewU32(0xFFFF_FFFF), NewU32(0x8000_0001))
		w := U256(out)
		require.True(t, w.IsUint64(), op.String())
		require.LessOrEqual(t, w.Uint64(), uint64(0xFFFF_FFFF), op.String())
	}
}
