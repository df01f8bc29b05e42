package riscv

const (
	// ShamtMask selects the shift amount bits of rs2 for RV32 shifts.
	ShamtMask = uint32(0x1F)

	// DivByZeroQuotient is the DIV/DIVU result for a zero divisor.
	DivByZeroQuotient = uint32(0xFFFF_FFFF)
	// SignedOverflowDividend is the most negative int32, the only dividend
	// that overflows when divided by -1.
	SignedOverflowDividend = uint32(0x8000_0000)
	// SignedOverflowDivisor is -1 as a 32 bit pattern.
	SignedOverflowDivisor = uint32(0xFFFF_FFFF)
)
