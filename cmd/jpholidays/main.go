// Command jpholidays prints Japanese national holidays computed from the
// statutory rules and checks them against the Cabinet Office list.
//
// Usage:
//
//	jpholidays list --from 2024 --to 2025 [--format csv|json] [--encoding utf-8|shift_jis]
//	jpholidays era 2024
//	jpholidays diff [--from 2016 --to 2026] [--strict]
package main

import (
	"os"

	"github.com/rabitt1ove/jpholiday-engine/internal/logger"
)

func main() {
	if err := Execute(); err != nil {
		logger.L().Error().Err(err).Msg("jpholidays failed")
		os.Exit(1)
	}
}
