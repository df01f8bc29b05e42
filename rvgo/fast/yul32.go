package fast

// Fast equivalent of the 32-bit yul functions of slow-mode

type U32 = uint32

func toU32(v uint8) U32 { return uint32(v) }

func u32Mask() U32 { // max uint32
	return 0xFFFF_FFFF
}

func u32TopBit() U32 { // 1 << 31
	return 1 << 31
}

// signExtend32To64 interprets v as int32 and widens it to a 64 bit pattern.
func signExtend32To64(v U32) uint64 {
	switch and32(v, u32TopBit()) {
	case 0:
		return uint64(v)
	default:
		return 0xFFFF_FFFF_0000_0000 | uint64(v)
	}
}

func zeroExtend32To64(v U32) uint64 {
	return uint64(v)
}

func lo32(v uint64) U32 {
	return U32(v)
}

func hi32(v uint64) U32 {
	return U32(v >> 32)
}

func add32(x, y U32) U32 {
	return x + y
}

func sub32(x, y U32) U32 {
	return x - y
}

func div32(x, y U32) U32 {
	if y == 0 {
		return 0
	}
	return x / y
}

func sdiv32(x, y U32) U32 {
	if y == 0 {
		return 0
	}
	if x == 1<<31 && y == u32Mask() {
		return 1 << 31
	}
	return U32(int32(x) / int32(y))
}

func mod32(x, y U32) U32 {
	if y == 0 {
		return 0
	}
	return x % y
}

func smod32(x, y U32) U32 {
	if y == 0 {
		return 0
	}
	if x == 1<<31 && y == u32Mask() {
		return 0
	}
	return U32(int32(x) % int32(y))
}

func lt32(x, y U32) U32 {
	if x < y {
		return 1
	}
	return 0
}

func slt32(x, y U32) U32 {
	if int32(x) < int32(y) {
		return 1
	}
	return 0
}

func and32(x, y U32) U32 {
	return x & y
}

func or32(x, y U32) U32 {
	return x | y
}

func xor32(x, y U32) U32 {
	return x ^ y
}

// returns y << x
func shl32(x, y U32) U32 {
	return y << x
}

// returns y >> x
func shr32(x, y U32) U32 {
	return y >> x
}

// returns y >> x (signed)
func sar32(x, y U32) U32 {
	return U32(int32(y) >> x)
}
