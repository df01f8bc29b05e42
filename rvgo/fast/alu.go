package fast

import (
	"fmt"

	"github.com/ethereum-optimism/rv32alu/rvgo/riscv"
)

// EvaluateALU computes the RV32IM (+ Zba shift-add) result of op applied to op1 and op2.
// It is total: division by zero and signed overflow produce the ISA-defined values,
// and reserved selectors produce 0.
func EvaluateALU(op riscv.ALUOp, op1, op2 U32) U32 {
	shamt := and32(op2, riscv.ShamtMask)

	// all widened products, and all quotient / remainder candidates, are computed up-front,
	// every case below only selects.
	mulSS := signExtend32To64(op1) * signExtend32To64(op2)
	mulSU := signExtend32To64(op1) * zeroExtend32To64(op2)
	mulUU := zeroExtend32To64(op1) * zeroExtend32To64(op2)

	var quot, quotU, rem, remU U32
	switch op2 {
	case 0:
		quot, quotU = riscv.DivByZeroQuotient, riscv.DivByZeroQuotient
		rem, remU = op1, op1
	default:
		quot, quotU = sdiv32(op1, op2), div32(op1, op2) // sdiv32 keeps the overflow dividend
		rem, remU = smod32(op1, op2), mod32(op1, op2)   // smod32 yields 0 on overflow
	}

	switch op {
	case riscv.ALUZero:
		return 0
	case riscv.ALUAdd:
		return add32(op1, op2)
	case riscv.ALUSub:
		return sub32(op1, op2)
	case riscv.ALUSll:
		return shl32(shamt, op1)
	case riscv.ALUSlt:
		return slt32(op1, op2)
	case riscv.ALUXor:
		return xor32(op1, op2)
	case riscv.ALUOr:
		return or32(op1, op2)
	case riscv.ALUAnd:
		return and32(op1, op2)
	case riscv.ALUSrl:
		return shr32(shamt, op1) // logical: fill with zeroes
	case riscv.ALUSra:
		return sar32(shamt, op1) // arithmetic: sign bit is extended
	case riscv.ALUSltu:
		return lt32(op1, op2)
	case riscv.ALUSh1add:
		return add32(op1, shl32(toU32(1), op2))
	case riscv.ALUSh2add:
		return add32(op1, shl32(toU32(2), op2))
	case riscv.ALUSh3add:
		return add32(op1, shl32(toU32(3), op2))
	case riscv.ALUMul:
		return lo32(mulSS)
	case riscv.ALUMulh:
		return hi32(mulSS)
	case riscv.ALUMulhsu:
		return hi32(mulSU)
	case riscv.ALUMulhu:
		return hi32(mulUU)
	case riscv.ALUDiv:
		return quot
	case riscv.ALUDivu:
		return quotU
	case riscv.ALURem:
		return rem
	case riscv.ALURemu:
		return remU
	default:
		return 0
	}
}

// EvaluateALUChecked is EvaluateALU, but rejects reserved selectors instead of producing 0.
func EvaluateALUChecked(op riscv.ALUOp, op1, op2 U32) (U32, error) {
	if !op.Valid() {
		return 0, fmt.Errorf("%w: %s", riscv.ErrUnknownALUOp, op)
	}
	return EvaluateALU(op, op1, op2), nil
}
