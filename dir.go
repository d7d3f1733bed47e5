package substrate

import (
	"errors"
	"io"
	"iter"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// dirBatch is how many directory entries are read from the OS at a time.
const dirBatch = 64

// DirStream opens the document files of one directory in the order the
// operating system lists them. Entries that are not regular files,
// including symlinks, are skipped.
type DirStream struct {
	path  string
	opts  []Option
	log   *zap.Logger
	dir   *os.File
	batch []os.DirEntry
	done  bool
	err   error

	closed bool
}

// IterDir opens a directory for iteration. Nothing below it is read until
// Next is called.
func IterDir(path string, opts ...Option) (*DirStream, error) {
	o := newOptions(opts)

	dir, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Kind: KindIO, Path: path, Err: err}
	}

	return &DirStream{
		path: path,
		opts: opts,
		log:  o.logger.With(zap.String("dir", path)),
		dir:  dir,
	}, nil
}

// Next opens the next file. A file that cannot be opened is returned as an
// error and the following call moves on to the next file; a failure to
// list the directory is returned again by every later call. Each returned
// Stream belongs to the caller, who must close it.
func (d *DirStream) Next() (*Stream, error) {
	if d.closed {
		return nil, ErrClosed
	}
	for {
		if d.err != nil {
			return nil, d.err
		}
		if len(d.batch) == 0 {
			if d.done {
				return nil, io.EOF
			}
			if err := d.fill(); err != nil {
				return nil, err
			}
			continue
		}

		entry := d.batch[0]
		d.batch = d.batch[1:]
		if !entry.Type().IsRegular() {
			d.log.Debug("skipping entry", zap.String("name", entry.Name()), zap.Stringer("mode", entry.Type()))
			continue
		}
		return IterFile(filepath.Join(d.path, entry.Name()), d.opts...)
	}
}

func (d *DirStream) fill() error {
	entries, err := d.dir.ReadDir(dirBatch)
	d.batch = entries
	switch {
	case errors.Is(err, io.EOF) || (err == nil && len(entries) == 0):
		d.done = true
		d.release()
	case err != nil && len(entries) == 0:
		d.err = &ReadError{Kind: KindIO, Path: d.path, Err: err}
		d.release()
		return d.err
	}
	return nil
}

// All ranges over the directory's files. A file that fails to open is
// yielded as an error and the walk continues. Each stream belongs to the
// loop body: it is closed as soon as the body returns, so read it there and
// use Next to keep streams open past one iteration. The directory handle is
// released when the loop ends, however it ends.
func (d *DirStream) All() iter.Seq2[*Stream, error] {
	return func(yield func(*Stream, error) bool) {
		defer d.Close()
		for {
			s, err := d.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			more := yield(s, err)
			if s != nil {
				_ = s.Close()
			}
			if !more || d.err != nil || d.closed {
				return
			}
		}
	}
}

// Close releases the directory handle. It is safe to call more than once.
// Streams already returned stay open.
func (d *DirStream) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	return d.release()
}

func (d *DirStream) release() error {
	if d.dir == nil {
		return nil
	}
	err := d.dir.Close()
	d.dir = nil
	return err
}
