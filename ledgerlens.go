// Package ledgerlens enriches point-in-time worker snapshots and reconciles
// internal invoices against an external supplier ledger. It is the library
// entry point; the CLI under cmd/ledgerlens wraps it.
package ledgerlens

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/talentops/ledgerlens/pkg/pipeline"
	"github.com/talentops/ledgerlens/pkg/records"
)

// LedgerLens runs deterministic enrichment and reconciliation batches.
type LedgerLens interface {
	// Run executes one batch over an already-loaded snapshot.
	Run(ctx context.Context, snap *records.Snapshot) (*pipeline.Result, error)

	// RunFS loads a snapshot from the filesystem and executes one batch.
	RunFS(ctx context.Context, fsys fs.FS) (*pipeline.Result, error)

	// RunDir loads a snapshot from a directory and executes one batch.
	RunDir(ctx context.Context, dir string) (*pipeline.Result, error)
}

// ledgerlens is the internal implementation of the LedgerLens interface
type ledgerlens struct {
	pipeline *pipeline.Pipeline
}

// New creates a new LedgerLens instance with the given options.
func New(opts ...pipeline.Option) (LedgerLens, error) {
	p, err := pipeline.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("applying options: %w", err)
	}
	return &ledgerlens{pipeline: p}, nil
}

func (l *ledgerlens) Run(ctx context.Context, snap *records.Snapshot) (*pipeline.Result, error) {
	return l.pipeline.Run(ctx, snap)
}

func (l *ledgerlens) RunFS(ctx context.Context, fsys fs.FS) (*pipeline.Result, error) {
	snap, err := records.Load(fsys)
	if err != nil {
		return nil, err
	}
	return l.pipeline.Run(ctx, snap)
}

func (l *ledgerlens) RunDir(ctx context.Context, dir string) (*pipeline.Result, error) {
	return l.RunFS(ctx, os.DirFS(dir))
}
