// Package input turns command-line paths into text buffers or classified failures.
package input

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"tally/pkg/logger"
	"tally/pkg/models"
	"tally/pkg/utils"

	"github.com/spf13/afero"
)

// Kind classifies why an input could not be read
type Kind int

const (
	NotFound Kind = iota + 1
	IsDirectory
	ReadError
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not-found"
	case IsDirectory:
		return "is-directory"
	case ReadError:
		return "read-error"
	}
	return "unknown"
}

// ErrSkipped is returned for directories when directories are skipped silently
var ErrSkipped = errors.New("directory skipped")

// Error is a per-input failure
type Error struct {
	Path string
	Kind Kind
	Err  error
}

// Message returns the user-facing reason for the failure
func (e *Error) Message() string {
	switch e.Kind {
	case NotFound:
		return "No such file or directory"
	case IsDirectory:
		return "Is a directory"
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "read error"
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message())
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Resolver reads inputs from a filesystem or from standard input
type Resolver struct {
	fs              afero.Fs
	stdin           io.Reader
	skipDirectories bool
}

// NewResolver creates a new resolver
func NewResolver(fs afero.Fs, stdin io.Reader, skipDirectories bool) *Resolver {
	return &Resolver{
		fs:              fs,
		stdin:           stdin,
		skipDirectories: skipDirectories,
	}
}

// Resolve returns the text behind path. Failures are *Error values, or ErrSkipped
// for a directory when directories are skipped.
func (r *Resolver) Resolve(path string) (string, error) {
	if path == models.StdinLabel {
		return r.readStdin()
	}

	info, err := r.fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &Error{Path: path, Kind: NotFound, Err: err}
		}
		return "", &Error{Path: path, Kind: ReadError, Err: unwrapPathError(err)}
	}

	if info.IsDir() {
		if r.skipDirectories {
			logger.Logger.WithField("path", path).Debug("Skipping directory")
			return "", ErrSkipped
		}
		return "", &Error{Path: path, Kind: IsDirectory}
	}

	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return "", &Error{Path: path, Kind: ReadError, Err: unwrapPathError(err)}
	}

	logger.Logger.WithFields(map[string]interface{}{
		"path": path,
		"size": utils.FormatBytes(int64(len(data))),
	}).Debug("Read input")

	text, err := utils.DecodeText(data)
	if err != nil {
		return "", &Error{Path: path, Kind: ReadError, Err: err}
	}
	return text, nil
}

func (r *Resolver) readStdin() (string, error) {
	if r.stdin == nil {
		return "", &Error{Path: models.StdinLabel, Kind: ReadError, Err: errors.New("standard input is not available")}
	}

	data, err := io.ReadAll(r.stdin)
	if err != nil {
		return "", &Error{Path: models.StdinLabel, Kind: ReadError, Err: err}
	}

	logger.Logger.WithField("size", utils.FormatBytes(int64(len(data)))).Debug("Read standard input")

	text, err := utils.DecodeText(data)
	if err != nil {
		return "", &Error{Path: models.StdinLabel, Kind: ReadError, Err: err}
	}
	return text, nil
}

// unwrapPathError drops the path prefix so messages do not repeat it
func unwrapPathError(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
