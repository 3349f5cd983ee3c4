// Package persist loads and saves sims. Stores move raw documents; this
// package owns the schema gate, the codec and the fallback to defaults.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"blockca/internal/config"
	"blockca/internal/core"

	"go.uber.org/zap"
)

// ErrNotFound is returned when no document has been saved yet.
var ErrNotFound = errors.New("sim not found")

// Store reads and writes one serialized sim document.
type Store interface {
	ReadDocument(ctx context.Context) ([]byte, error)
	WriteDocument(ctx context.Context, data []byte) error
	Close() error
	String() string
}

// Open builds the store selected by cfg.
func Open(cfg config.StoreConfig) (Store, error) {
	switch cfg.Backend {
	case config.BackendFile, "":
		return NewFileStore(cfg.StorePath()), nil
	case config.BackendSQLite:
		return OpenSQLite(cfg.StorePath(), cfg.Name)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

// Encode renders the document form of sim.
func Encode(sim *core.Sim) ([]byte, error) {
	data, err := json.MarshalIndent(sim, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode sim: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode validates data against the schema and parses it.
func Decode(data []byte) (*core.Sim, core.DecodeReport, error) {
	if err := ValidateDocument(data); err != nil {
		return nil, core.DecodeReport{}, err
	}
	return core.Decode(data)
}

// Load reads and decodes the sim held by st.
func Load(ctx context.Context, st Store) (*core.Sim, core.DecodeReport, error) {
	data, err := st.ReadDocument(ctx)
	if err != nil {
		return nil, core.DecodeReport{}, err
	}
	sim, report, err := Decode(data)
	if err != nil {
		return nil, report, fmt.Errorf("%s: %w", st, err)
	}
	return sim, report, nil
}

// Save writes sim to st.
func Save(ctx context.Context, st Store, sim *core.Sim) error {
	data, err := Encode(sim)
	if err != nil {
		return err
	}
	if err := st.WriteDocument(ctx, data); err != nil {
		return fmt.Errorf("save %s: %w", st, err)
	}
	return nil
}

// LoadOrDefault never fails: a missing, unreadable or malformed document
// yields the built-in default sim. What was discarded is logged.
func LoadOrDefault(ctx context.Context, st Store, logger *zap.Logger) *core.Sim {
	if logger == nil {
		logger = zap.NewNop()
	}
	sim, report, err := Load(ctx, st)
	switch {
	case errors.Is(err, ErrNotFound):
		logger.Info("no saved sim, starting from defaults", zap.Stringer("store", st))
		return core.New()
	case err != nil:
		logger.Warn("saved sim unreadable, starting from defaults", zap.Stringer("store", st), zap.Error(err))
		return core.New()
	}
	for _, r := range report.Dropped {
		logger.Warn("dropped rule referencing a missing element", zap.Stringer("rule", r))
	}
	for _, c := range report.Conflicts {
		logger.Warn("mirrored rule overridden while loading",
			zap.Stringer("input", c.Input),
			zap.Stringer("was", c.Existing),
			zap.Stringer("now", c.Incoming))
	}
	logger.Debug("loaded sim",
		zap.Stringer("store", st),
		zap.Int("elements", sim.Len()),
		zap.Int("rules", sim.RuleCount()))
	return sim
}
