package riscv

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestALUOps(t *testing.T) {
	require.Len(t, ALUOps, 22)
	for i, op := range ALUOps {
		require.Equal(t, ALUOp(i), op)
		require.True(t, op.Valid())
	}
	require.False(t, (ALURemu + 1).Valid())
	require.Equal(t, "ALUOp(22)", (ALURemu + 1).String())
}

func TestParseALUOp(t *testing.T) {
	for _, op := range ALUOps {
		got, err := ParseALUOp(op.String())
		require.NoError(t, err)
		require.Equal(t, op, got)
	}

	got, err := ParseALUOp(" MULHSU ")
	require.NoError(t, err)
	require.Equal(t, ALUMulhsu, got)

	_, err = ParseALUOp("fadd")
	require.ErrorIs(t, err, ErrUnknownALUOp)
	_, err = ParseALUOp("ALUOp(22)")
	require.ErrorIs(t, err, ErrUnknownALUOp)
}

func TestIsMulDiv(t *testing.T) {
	muldiv := map[ALUOp]bool{
		ALUMul: true, ALUMulh: true, ALUMulhsu: true, ALUMulhu: true,
		ALUDiv: true, ALUDivu: true, ALURem: true, ALURemu: true,
	}
	for _, op := range ALUOps {
		require.Equal(t, muldiv[op], op.IsMulDiv(), op.String())
	}
}

func TestALUOpJSON(t *testing.T) {
	type wrapper struct {
		Op ALUOp `json:"op"`
	}
	data, err := json.Marshal(wrapper{Op: ALUSh2add})
	require.NoError(t, err)
	require.JSONEq(t, `{"op":"sh2add"}`, string(data))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"op":"remu"}`), &w))
	require.Equal(t, ALURemu, w.Op)

	require.ErrorIs(t, json.Unmarshal([]byte(`{"op":"nope"}`), &w), ErrUnknownALUOp)

	_, err = json.Marshal(wrapper{Op: 0x40})
	require.ErrorIs(t, err, ErrUnknownALUOp)
}
