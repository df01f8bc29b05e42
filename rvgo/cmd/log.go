package cmd

import (
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

func Logger(w io.Writer, lvl log.Lvl) log.Logger {
	h := log.StreamHandler(w, log.LogfmtFormat())
	h = log.SyncHandler(h)
	h = log.LvlFilterHandler(lvl, h)
	l := log.New()
	l.SetHandler(h)
	return l
}

// loggerFromCLI builds the stderr logger configured by the log.level flag.
func loggerFromCLI(ctx *cli.Context) (log.Logger, error) {
	lvl, err := log.LvlFromString(ctx.String(LogLevelFlag.Name))
	if err != nil {
		return nil, err
	}
	return Logger(ctx.App.ErrWriter, lvl), nil
}

// HexU32 to lazy-format integer attributes for logging
type HexU32 uint32

func (v HexU32) String() string {
	return fmt.Sprintf("%08x", uint32(v))
}

func (v HexU32) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
