//go:build windows

package main

import (
	"log/slog"
	"os"

	"github.com/Alia5/metagen/internal/util"
)

// Started by double-click: behave like the classic example and turn
// data.meta next to the binary into data.h.
func init() {
	if util.IsRunFromGUI() && len(os.Args) < 2 {
		slog.Info("Detected GUI startup, generating data.h from data.meta")
		slog.Warn("Run from a CLI for more options!")
		os.Args = append(os.Args, "generate", "data.meta", "data.h")
	}
}
