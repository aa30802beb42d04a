package main

import (
	"log/slog"
	"os"

	"calchistory/internal/app"
)

func main() {
	cfg, err := app.LoadCfg()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	a := app.New(cfg)
	if err := a.RunAudit(); err != nil {
		slog.Error("audit consumer failed", "error", err)
		os.Exit(1)
	}
}
