// Package publish writes the generated page to its destination. The page is
// written to a temporary file in the destination directory and renamed over
// the destination, so a failed run never leaves partial output behind.
package publish

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/hamlog/contactlog/internal/failure"
)

const (
	defaultFilePerm = 0o644
	defaultDirPerm  = 0o755
	tempPattern     = ".contactlog-*.tmp"
)

// Writer replaces files atomically on a filesystem.
type Writer struct {
	fsys afero.Fs
	perm os.FileMode
	log  *zap.Logger
}

// New returns a Writer for fsys.
func New(fsys afero.Fs) *Writer {
	return &Writer{
		fsys: fsys,
		perm: defaultFilePerm,
		log:  zap.L().With(zap.String("component", "publish")),
	}
}

// Write replaces the file at path with data. Any returned error is a
// *failure.Error of kind OutputUnwritable, and the previous file is intact.
func (w *Writer) Write(path string, data []byte) error {
	if path == "" {
		return failure.New(failure.OutputUnwritable, path, eris.New("publish: empty output path"))
	}

	if info, err := w.fsys.Stat(path); err == nil && info.IsDir() {
		return failure.New(failure.OutputUnwritable, path, eris.New("publish: output path is a directory"))
	}

	dir := filepath.Dir(path)
	if err := w.ensureDir(dir); err != nil {
		return failure.New(failure.OutputUnwritable, path, err)
	}

	if err := w.replace(dir, path, data); err != nil {
		return failure.New(failure.OutputUnwritable, path, err)
	}

	w.log.Debug("publish: file replaced", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}

func (w *Writer) ensureDir(dir string) error {
	info, err := w.fsys.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return eris.Errorf("publish: %s is not a directory", dir)
	case errors.Is(err, fs.ErrNotExist):
		if err := w.fsys.MkdirAll(dir, defaultDirPerm); err != nil {
			return eris.Wrap(err, "publish: create output directory")
		}
		return nil
	default:
		return eris.Wrap(err, "publish: stat output directory")
	}
}

func (w *Writer) replace(dir, path string, data []byte) error {
	tmp, err := afero.TempFile(w.fsys, dir, tempPattern)
	if err != nil {
		return eris.Wrap(err, "publish: create temp file")
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		_ = tmp.Close()
		if rmErr := w.fsys.Remove(tmpPath); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			w.log.Warn("publish: failed to remove temp file", zap.String("path", tmpPath), zap.Error(rmErr))
		}
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return eris.Wrap(err, "publish: write temp file")
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return eris.Wrap(err, "publish: sync temp file")
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return eris.Wrap(err, "publish: close temp file")
	}
	// TempFile creates 0600 files; the page is meant to be served.
	if err := w.fsys.Chmod(tmpPath, w.perm); err != nil {
		cleanup()
		return eris.Wrap(err, "publish: chmod temp file")
	}
	if err := w.fsys.Rename(tmpPath, path); err != nil {
		cleanup()
		return eris.Wrap(err, "publish: rename temp file")
	}
	return nil
}
