// Package modkit provides module wiring and core deps
package modkit

import (
	"funhouse/internal/modkit/repokit"
	"funhouse/internal/platform/config"
	"funhouse/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	// PG is nil when a module runs without postgres (tests, in-memory modules)
	PG repokit.TxRunner
}
