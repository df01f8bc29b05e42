package riscv

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownALUOp = errors.New("unknown ALU operation")

// ALUOp selects the operation the ALU applies to its two operands.
// Values outside the enumerated set are reserved.
type ALUOp uint8

//go:generate stringer -linecomment -type=ALUOp
const (
	ALUZero   ALUOp = iota // zero
	ALUAdd                 // add
	ALUSub                 // sub
	ALUSll                 // sll
	ALUSlt                 // slt
	ALUXor                 // xor
	ALUOr                  // or
	ALUAnd                 // and
	ALUSrl                 // srl
	ALUSra                 // sra
	ALUSltu                // sltu
	ALUSh1add              // sh1add
	ALUSh2add              // sh2add
	ALUSh3add              // sh3add
	ALUMul                 // mul
	ALUMulh                // mulh
	ALUMulhsu              // mulhsu
	ALUMulhu               // mulhu
	ALUDiv                 // div
	ALUDivu                // divu
	ALURem                 // rem
	ALURemu                // remu
)

// ALUOps lists every valid selector in numeric order.
var ALUOps = func() []ALUOp {
	out := make([]ALUOp, 0, int(ALURemu)+1)
	for op := ALUZero; op <= ALURemu; op++ {
		out = append(out, op)
	}
	return out
}()

func (op ALUOp) Valid() bool {
	return op <= ALURemu
}

// IsMulDiv reports whether the op belongs to the M extension.
func (op ALUOp) IsMulDiv() bool {
	return op >= ALUMul && op <= ALURemu
}

// ParseALUOp returns the selector for a mnemonic such as "mulhsu".
// Matching ignores case and surrounding whitespace.
func ParseALUOp(name string) (ALUOp, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, op := range ALUOps {
		if op.String() == name {
			return op, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownALUOp, name)
}

func (op ALUOp) MarshalText() ([]byte, error) {
	if !op.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownALUOp, uint8(op))
	}
	return []byte(op.String()), nil
}

func (op *ALUOp) UnmarshalText(text []byte) error {
	v, err := ParseALUOp(string(text))
	if err != nil {
		return err
	}
	*op = v
	return nil
}
