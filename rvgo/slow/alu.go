package slow

import "github.com/ethereum-optimism/rv32alu/rvgo/riscv"

func lo32(v U256) U32 {
	return u256ToU32(v)
}

func hi32(v U256) U32 {
	return u256ToU32(shr(toU256(32), v))
}

// EvaluateALU is the uint256-word rendition of fast.EvaluateALU.
// Signed operands are sign-extended to 256 bits so the EVM signed opcodes give RISC-V results.
func EvaluateALU(op riscv.ALUOp, op1, op2 U32) U32 {
	shamt := and32(op2, toU32(0x1F))

	mulSS := mul(signExtend32To256(op1), signExtend32To256(op2))
	mulSU := mul(signExtend32To256(op1), U256(op2))
	mulUU := mul(U256(op1), U256(op2))

	var quot, quotU, rem, remU U32
	switch iszero32(op2) {
	case true:
		quot, quotU = u32Mask(), u32Mask() // EVM div would give 0
		rem, remU = op1, op1
	default:
		quot, quotU = sdiv32(op1, op2), div32(op1, op2)
		rem, remU = smod32(op1, op2), mod32(op1, op2)
	}

	var rdValue U32
	switch op {
	case riscv.ALUZero:
		rdValue = U32{}
	case riscv.ALUAdd:
		rdValue = add32(op1, op2)
	case riscv.ALUSub:
		rdValue = sub32(op1, op2)
	case riscv.ALUSll:
		rdValue = shl32(shamt, op1)
	case riscv.ALUSlt:
		rdValue = slt32(op1, op2)
	case riscv.ALUXor:
		rdValue = xor32(op1, op2)
	case riscv.ALUOr:
		rdValue = or32(op1, op2)
	case riscv.ALUAnd:
		rdValue = and32(op1, op2)
	case riscv.ALUSrl:
		rdValue = shr32(shamt, op1)
	case riscv.ALUSra:
		rdValue = sar32(shamt, op1)
	case riscv.ALUSltu:
		rdValue = lt32(op1, op2)
	case riscv.ALUSh1add:
		rdValue = add32(op1, shl32(toU32(1), op2))
	case riscv.ALUSh2add:
		rdValue = add32(op1, shl32(toU32(2), op2))
	case riscv.ALUSh3add:
		rdValue = add32(op1, shl32(toU32(3), op2))
	case riscv.ALUMul:
		rdValue = lo32(mulSS)
	case riscv.ALUMulh:
		rdValue = hi32(mulSS)
	case riscv.ALUMulhsu:
		rdValue = hi32(mulSU)
	case riscv.ALUMulhu:
		rdValue = hi32(mulUU)
	case riscv.ALUDiv:
		rdValue = quot
	case riscv.ALUDivu:
		rdValue = quotU
	case riscv.ALURem:
		rdValue = rem
	case riscv.ALURemu:
		rdValue = remU
	default:
		rdValue = U32{}
	}
	return rdValue
}
