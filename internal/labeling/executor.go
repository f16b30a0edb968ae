package labeling

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"image-labeler/internal/logger"
)

var ErrDestinationExists = errors.New("destination already exists")

// Executor carries out an Effect. Implementations must leave the
// filesystem as it was when Apply returns an error.
type Executor interface {
	Apply(effect Effect) error
}

// OpError reports the operation that failed and whether undoing the
// operations before it worked.
type OpError struct {
	Op          Op
	Err         error
	RollbackErr error
}

func (e *OpError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Op, e.Err)
	if e.RollbackErr != nil {
		msg += fmt.Sprintf(" (rollback failed: %v)", e.RollbackErr)
	}
	return msg
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// FileExecutor applies effects to the local filesystem.
type FileExecutor struct {
	logger logger.Logger
}

func NewFileExecutor(log logger.Logger) *FileExecutor {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &FileExecutor{logger: log}
}

// applied is an operation that succeeded. backup holds the file a copy
// replaced until the whole effect has gone through.
type applied struct {
	op     Op
	backup string
}

func (e *FileExecutor) Apply(effect Effect) error {
	done := make([]applied, 0, len(effect))

	for _, op := range effect {
		backup, err := e.do(op)
		if err != nil {
			opErr := &OpError{Op: op, Err: err}
			if len(done) > 0 {
				opErr.RollbackErr = e.rollback(done)
			}
			e.logger.Error("FileExecutor", opErr, map[string]interface{}{
				"op":          op.Kind.String(),
				"rolled_back": len(done),
			})
			return opErr
		}

		done = append(done, applied{op: op, backup: backup})
		e.logger.Debug("FileExecutor", "operation applied", map[string]interface{}{
			"op":  op.Kind.String(),
			"src": op.Src,
			"dst": op.Dst,
		})
	}

	for _, a := range done {
		if a.backup == "" {
			continue
		}
		if err := os.Remove(a.backup); err != nil {
			e.logger.Warning("FileExecutor", "replaced file backup left behind", map[string]interface{}{
				"backup": a.backup,
				"error":  err.Error(),
			})
		}
	}
	return nil
}

func (e *FileExecutor) do(op Op) (string, error) {
	switch op.Kind {
	case OpCopy:
		return copyFile(op.Src, op.Dst)
	case OpMove:
		return "", moveFile(op.Src, op.Dst)
	case OpRemove:
		return "", os.Remove(op.Src)
	default:
		return "", fmt.Errorf("unsupported operation kind %d", op.Kind)
	}
}

// rollback undoes applied operations newest first. Removals are never
// undone because Plan orders them last.
func (e *FileExecutor) rollback(done []applied) error {
	var errs []error
	for i := len(done) - 1; i >= 0; i-- {
		op := done[i].op
		var err error
		switch op.Kind {
		case OpCopy:
			if backup := done[i].backup; backup != "" {
				err = os.Rename(backup, op.Dst)
			} else {
				err = os.Remove(op.Dst)
			}
		case OpMove:
			err = os.Rename(op.Dst, op.Src)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("undo %s: %w", op, err))
		}
	}
	return errors.Join(errs...)
}

func moveFile(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("%w: %s", ErrDestinationExists, dst)
	}
	return os.Rename(src, dst)
}

// copyFile copies src to dst keeping src's permissions. An existing dst is
// first renamed to a hidden backup next to it, whose path is returned.
func copyFile(src, dst string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return "", err
	}

	backup, err := backupExisting(dst)
	if err != nil {
		return "", err
	}
	restore := func() {
		if backup != "" {
			os.Rename(backup, dst)
		}
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		restore()
		return "", err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		restore()
		return "", fmt.Errorf("copying file content: %w", err)
	}

	if err := out.Close(); err != nil {
		os.Remove(dst)
		restore()
		return "", err
	}
	return backup, nil
}

// backupExisting moves path aside when it exists and returns where it went.
func backupExisting(path string) (string, error) {
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.bak")
	if err != nil {
		return "", fmt.Errorf("backing up %s: %w", path, err)
	}
	name := tmp.Name()
	tmp.Close()

	if err := os.Rename(path, name); err != nil {
		os.Remove(name)
		return "", fmt.Errorf("backing up %s: %w", path, err)
	}
	return name, nil
}
