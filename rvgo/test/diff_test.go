package test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethereum-optimism/rv32alu/rvgo/fast"
	"github.com/ethereum-optimism/rv32alu/rvgo/riscv"
	"github.com/ethereum-optimism/rv32alu/rvgo/slow"
)

var edgeOperands = []uint32{
	0, 1, 2, 31, 32, 0x7FFF_FFFF, 0x8000_0000, 0x8000_0001, 0xFFFF_FFFE, 0xFFFF_FFFF,
}

func TestFastSlowEdgeGrid(t *testing.T) {
	for _, op := range riscv.ALUOps {
		for _, a := range edgeOperands {
			for _, b := range edgeOperands {
				fastOutput := fast.EvaluateALU(op, a, b)
				slowOutput := slow.EvaluateALU(op, slow.NewU32(a), slow.NewU32(b))
				require.Equal(t, fastOutput, slow.Val(slowOutput), "%s(%08x, %08x)", op, a, b)
			}
		}
	}
}

func FuzzEvaluateALU(f *testing.F) {
	for _, op := range riscv.ALUOps {
		f.Add(uint8(op), uint32(0x8000_0000), uint32(0xFFFF_FFFF))
		f.Add(uint8(op), uint32(0xFFFF_FFFF), uint32(0))
	}
	f.Add(uint8(0xFF), uint32(1), uint32(1))
	f.Fuzz(func(t *testing.T, op uint8, op1 uint32, op2 uint32) {
		var slowOutput = slow.EvaluateALU(riscv.ALUOp(op), slow.NewU32(op1), slow.NewU32(op2))
		var fastOutput = fast.EvaluateALU(riscv.ALUOp(op), op1, op2)

		require.Equal(t, slow.Val(slowOutput), fastOutput)
	})
}

func FuzzShiftAdd(f *testing.F) {
	f.Fuzz(func(t *testing.T, a uint32, b uint32) {
		require.Equal(t, a+2*b, fast.EvaluateALU(riscv.ALUSh1add, a, b))
		require.Equal(t, a+4*b, fast.EvaluateALU(riscv.ALUSh2add, a, b))
		require.Equal(t, a+8*b, fast.EvaluateALU(riscv.ALUSh3add, a, b))
	})
}

func FuzzDivRem(f *testing.F) {
	f.Add(uint32(0x8000_0000), uint32(0xFFFF_FFFF))
	f.Fuzz(func(t *testing.T, a uint32, b uint32) {
		if b == 0 {
			require.Equal(t, uint32(0xFFFF_FFFF), fast.EvaluateALU(riscv.ALUDiv, a, b))
			require.Equal(t, a, fast.EvaluateALU(riscv.ALURem, a, b))
			return
		}
		// quotient * divisor + remainder reconstructs the dividend, overflow case included
		q := fast.EvaluateALU(riscv.ALUDiv, a, b)
		r := fast.EvaluateALU(riscv.ALURem, a, b)
		require.Equal(t, a, q*b+r)
		qu := fast.EvaluateALU(riscv.ALUDivu, a, b)
		ru := fast.EvaluateALU(riscv.ALURemu, a, b)
		require.Equal(t, a, qu*b+ru)
		require.Less(t, ru, b)
	})
}
