// Package scaffold commits a rendered project tree to disk atomically.
// Files are written into a staging directory next to the destination and
// moved into place with a single rename, so an interrupted or failed run
// never leaves a partial project behind.
package scaffold

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/scarff-dev/scarff/internal/defs"
	"github.com/scarff-dev/scarff/internal/template"
)

// Options controls one commit.
type Options struct {
	// Force replaces an existing destination. The old tree is moved
	// aside before the swap and restored if the swap fails.
	Force bool

	// DryRun runs every validation, including the destination preflight,
	// but writes nothing.
	DryRun bool
}

// Result describes one committed (or simulated) scaffold.
type Result struct {
	// Destination is the absolute or caller-relative project root.
	Destination string

	// Paths are the relative paths that were (or would be) created.
	Paths []string

	// Simulated is true for dry runs: validations passed, nothing was
	// written.
	Simulated bool
}

// Transaction writes rendered trees with stage-then-rename semantics.
// Safe for reuse across commits.
type Transaction struct {
	log *slog.Logger

	// writeFile is swapped out by tests to inject mid-stage failures.
	writeFile func(path string, data []byte, perm fs.FileMode) error
}

// NewTransaction creates a transaction that logs nowhere.
func NewTransaction() *Transaction {
	return &Transaction{
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		writeFile: os.WriteFile,
	}
}

// WithLogger sets the structured logger.
func (t *Transaction) WithLogger(log *slog.Logger) *Transaction {
	if log != nil {
		t.log = log
	}
	return t
}

// Commit materializes rendered under parentDir. The destination is
// parentDir joined with the rendered root. On any error the destination
// is exactly what it was before the call.
func (t *Transaction) Commit(ctx context.Context, rendered *template.Rendered, parentDir string, opts Options) (*Result, error) {
	dest := filepath.Join(parentDir, rendered.Root)

	// Preflight happens before any staging, so its failures are plain
	// I/O errors, not staging failures.
	conflict, err := destinationConflict(dest)
	if err != nil {
		return nil, fmt.Errorf("check destination %q: %w", dest, err)
	}
	if conflict && !opts.Force {
		return nil, &DestinationExistsError{Path: dest}
	}

	result := &Result{
		Destination: dest,
		Paths:       rendered.Paths(),
	}

	if opts.DryRun {
		result.Simulated = true
		t.log.Info("dry run, skipping writes", "destination", dest, "files", len(result.Paths))
		return result, nil
	}

	if err := os.MkdirAll(parentDir, defs.DirPerm); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStagingFailed, err)
	}

	staging := filepath.Join(parentDir, defs.StagingPrefix+uuid.NewString())
	if err := t.stage(ctx, staging, rendered); err != nil {
		os.RemoveAll(staging)
		return nil, err
	}

	if err := t.swap(staging, dest, conflict); err != nil {
		os.RemoveAll(staging)
		return nil, err
	}

	t.log.Info("scaffold committed", "destination", dest, "files", len(result.Paths))
	return result, nil
}

// stage writes every rendered file under root, honoring cancellation
// between files.
func (t *Transaction) stage(ctx context.Context, root string, rendered *template.Rendered) error {
	if err := os.MkdirAll(root, defs.DirPerm); err != nil {
		return fmt.Errorf("%w: %v", ErrStagingFailed, err)
	}

	for _, f := range rendered.Files {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrStagingFailed, err)
		}

		path := filepath.Join(root, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(path), defs.DirPerm); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrStagingFailed, f.Path, err)
		}
		if err := t.writeFile(path, f.Content, f.Mode); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrStagingFailed, f.Path, err)
		}
		t.log.Debug("staged file", "path", f.Path, "bytes", len(f.Content))
	}

	return nil
}

// swap moves the staged tree into place. With an existing destination
// the old tree is parked under a backup name first and restored if the
// rename fails; it is deleted only after the new tree is in place.
func (t *Transaction) swap(staging, dest string, replace bool) error {
	if !replace {
		// An existing empty directory is not a conflict; clear it so the
		// rename lands cleanly.
		if empty, err := isEmptyDir(dest); err == nil && empty {
			if err := os.Remove(dest); err != nil {
				return fmt.Errorf("%w: %v", ErrCommitFailed, err)
			}
		}
		if err := os.Rename(staging, dest); err != nil {
			return fmt.Errorf("%w: %v", ErrCommitFailed, err)
		}
		return nil
	}

	backup := filepath.Join(filepath.Dir(dest), defs.BackupPrefix+uuid.NewString())
	if err := os.Rename(dest, backup); err != nil {
		return fmt.Errorf("%w: park existing destination: %v", ErrCommitFailed, err)
	}
	if err := os.Rename(staging, dest); err != nil {
		// Put the original tree back; the caller keeps what they had.
		if restoreErr := os.Rename(backup, dest); restoreErr != nil {
			return fmt.Errorf("%w: %v (restore also failed: %v)", ErrCommitFailed, err, restoreErr)
		}
		return fmt.Errorf("%w: %v", ErrCommitFailed, err)
	}
	if err := os.RemoveAll(backup); err != nil {
		t.log.Warn("could not remove parked tree", "path", backup, "error", err)
	}
	return nil
}

// destinationConflict reports whether dest exists with content: a
// non-empty directory or any non-directory entry. A missing path or an
// empty directory is not a conflict.
func destinationConflict(dest string) (bool, error) {
	info, err := os.Stat(dest)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !info.IsDir() {
		return true, nil
	}
	empty, err := isEmptyDir(dest)
	if err != nil {
		return false, err
	}
	return !empty, nil
}

func isEmptyDir(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, err
	}
	return len(entries) == 0, nil
}
