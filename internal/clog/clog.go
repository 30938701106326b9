// Package clog provides the package-wide logger used for attack-table
// construction diagnostics. It is never on the hot path of move
// generation or play.
package clog

import (
	"os"

	"github.com/op/go-logging"
)

// Log is the shared logger, configured once at package init in the
// manner of FrankyGo's internal/logging: a single backend writing to
// stderr with a compact format, leveled at Info by default.
var Log = logging.MustGetLogger("chesscore")

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{shortfunc}: %{message}`,
	)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
}
