package cmd

import (
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/profile"
	"github.com/urfave/cli/v2"

	cannon "github.com/ethereum-optimism/optimism/cannon/cmd"
	"github.com/ethereum-optimism/optimism/op-service/jsonutil"

	"github.com/ethereum-optimism/rv32alu/rvgo/riscv"
)

// Vector is one ALU evaluation. Result is the expected value when loaded,
// and the computed value when written back out.
type Vector struct {
	Op     riscv.ALUOp `json:"op"`
	Op1    Operand     `json:"op1"`
	Op2    Operand     `json:"op2"`
	Result *Operand    `json:"result,omitempty"`
}

// vectorEncodingLen is the size of a vector in the results hash preimage:
// selector byte, then op1, op2 and result as big-endian 32-bit words.
const vectorEncodingLen = 1 + 4*3

func LoadVectors(path string) ([]Vector, error) {
	vectors, err := cannon.LoadJSON[[]Vector](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load vectors %q: %w", path, err)
	}
	return *vectors, nil
}

// ResultsHash commits to every evaluated vector, in order.
func ResultsHash(vectors []Vector, results []uint32) common.Hash {
	data := make([]byte, 0, len(vectors)*vectorEncodingLen)
	for i, v := range vectors {
		data = append(data, byte(v.Op))
		data = binary.BigEndian.AppendUint32(data, uint32(v.Op1))
		data = binary.BigEndian.AppendUint32(data, uint32(v.Op2))
		data = binary.BigEndian.AppendUint32(data, results[i])
	}
	return crypto.Keccak256Hash(data)
}

// CheckVectors evaluates every vector and returns the results and the number of
// vectors whose expected result disagrees.
func CheckVectors(l log.Logger, evaluate Evaluator, vectors []Vector) (results []uint32, mismatches int) {
	results = make([]uint32, len(vectors))
	for i, v := range vectors {
		results[i] = evaluate(v.Op, uint32(v.Op1), uint32(v.Op2))
		if v.Result == nil {
			continue
		}
		if uint32(*v.Result) != results[i] {
			mismatches++
			l.Error("result mismatch",
				"index", i,
				"op", v.Op,
				"op1", HexU32(v.Op1),
				"op2", HexU32(v.Op2),
				"expected", HexU32(*v.Result),
				"got", HexU32(results[i]),
			)
		}
	}
	return results, mismatches
}

func writeVectors(path string, vectors []Vector, results []uint32) error {
	out := make([]Vector, len(vectors))
	for i, v := range vectors {
		res := Operand(results[i])
		out[i] = Vector{Op: v.Op, Op1: v.Op1, Op2: v.Op2, Result: &res}
	}
	return jsonutil.WriteJSON(path, out)
}

func Vectors(ctx *cli.Context) error {
	if ctx.Bool(cannon.RunPProfCPU.Name) {
		defer profile.Start(profile.NoShutdownHook, profile.ProfilePath("."), profile.CPUProfile).Stop()
	}
	l, err := loggerFromCLI(ctx)
	if err != nil {
		return err
	}
	vectors, err := LoadVectors(ctx.Path(VectorsInputFlag.Name))
	if err != nil {
		return err
	}

	name, evaluate := evaluatorFor(ctx.Bool(SlowFlag.Name))
	results, mismatches := CheckVectors(l, evaluate, vectors)
	l.Info("checked vectors", "evaluator", name, "count", len(vectors), "mismatches", mismatches)

	if outPath := ctx.Path(VectorsOutputFlag.Name); outPath != "" {
		if err := writeVectors(outPath, vectors, results); err != nil {
			return fmt.Errorf("failed to write vectors output: %w", err)
		}
	}
	if _, err := fmt.Fprintln(ctx.App.Writer, ResultsHash(vectors, results).Hex()); err != nil {
		return err
	}
	if mismatches > 0 {
		return fmt.Errorf("%d of %d vectors mismatched", mismatches, len(vectors))
	}
	return nil
}

var VectorsCommand = &cli.Command{
	Name:        "vectors",
	Usage:       "Check a JSON file of ALU test vectors",
	Description: "Evaluate every vector of a JSON file, compare against the expected results, and print the keccak256 results hash to stdout",
	Action:      Vectors,
	Flags: []cli.Flag{
		VectorsInputFlag,
		VectorsOutputFlag,
		SlowFlag,
		cannon.RunPProfCPU,
		LogLevelFlag,
	},
}
