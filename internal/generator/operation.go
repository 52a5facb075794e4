// Package generator provides the file system effect model: translators
// produce operations, commands validate and execute them in two phases so
// a dry run can report everything a real run would do.
package generator

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Operation is a file system operation that can be validated before it is
// executed.
//
// Validate checks whether the operation would succeed; creating parent
// directories is an allowed (idempotent) side effect. force=true skips
// conflict checks. Execute performs the operation and should only run
// after Validate succeeds. Description returns a human-readable summary.
type Operation interface {
	Validate(ctx context.Context, force bool) error
	Execute(ctx context.Context) error
	Description() string
}

// WriteFileOp writes one generated artifact.
//
// With Overwrite set the file is regenerated unconditionally (test
// scripts); without it an existing file is a conflict unless force is
// given (the resource artifact is guarded further up: when it exists, no
// op is created for it at all).
type WriteFileOp struct {
	Path      string
	Content   []byte
	Mode      fs.FileMode
	Overwrite bool
}

func (op *WriteFileOp) Validate(ctx context.Context, force bool) error {
	dir := filepath.Dir(op.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", dir, err)
	}

	if !op.Overwrite && !force {
		if _, err := os.Stat(op.Path); err == nil {
			return fmt.Errorf("file already exists: %s", op.Path)
		}
	}

	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}
	return nil
}

func (op *WriteFileOp) Execute(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(op.Path), 0755); err != nil {
		return err
	}
	return os.WriteFile(op.Path, op.Content, op.Mode)
}

func (op *WriteFileOp) Description() string {
	return fmt.Sprintf("Write %s (%d bytes)", op.Path, len(op.Content))
}
