// Package writer executes the file operations a build produces.
//
// Operations are converted to synthfs operations and run through a
// single pipeline, so a multi-file build either applies or fails as a
// batch. Dry-run mode logs what would be written and touches nothing.
package writer

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"
	"github.com/mvieira/quire/pkg/errors"
	"github.com/mvieira/quire/pkg/logging"
	"github.com/rs/zerolog"
)

// OpType identifies an output operation.
type OpType string

// Operation types
const (
	OpCreateDir OpType = "create_dir"
	OpWriteFile OpType = "write_file"
)

// Operation is one pending output write.
type Operation struct {
	Type        OpType
	Target      string // absolute path
	Content     []byte
	Mode        os.FileMode
	Description string
}

// WriteFile builds a file-write operation with sensible defaults.
func WriteFile(target string, content []byte, description string) Operation {
	return Operation{
		Type:        OpWriteFile,
		Target:      target,
		Content:     content,
		Mode:        0644,
		Description: description,
	}
}

// CreateDir builds a directory-create operation.
func CreateDir(target string, description string) Operation {
	return Operation{
		Type:        OpCreateDir,
		Target:      target,
		Mode:        0755,
		Description: description,
	}
}

// Writer executes output operations through synthfs.
type Writer struct {
	logger     zerolog.Logger
	dryRun     bool
	filesystem synthfs.FileSystem
}

// New creates a Writer. With dryRun set, Execute only logs.
func New(dryRun bool) *Writer {
	return &Writer{
		logger:     logging.GetLogger("writer"),
		dryRun:     dryRun,
		filesystem: filesystem.NewOSFileSystem("/"),
	}
}

// Execute runs the operations as one pipeline.
func (w *Writer) Execute(ops []Operation) error {
	if w.dryRun {
		w.logger.Info().Int("operationCount", len(ops)).Msg("Dry run mode - operations would be executed:")
		for _, op := range ops {
			w.logger.Info().
				Str("type", string(op.Type)).
				Str("target", op.Target).
				Msg(op.Description)
		}
		return nil
	}

	synthOps := make([]synthfs.Operation, 0, len(ops))
	for _, op := range ops {
		synthOp, err := w.convert(op)
		if err != nil {
			return err
		}
		synthOps = append(synthOps, synthOp)
	}

	if len(synthOps) == 0 {
		w.logger.Info().Msg("No operations to execute")
		return nil
	}

	pipeline := synthfs.NewMemPipeline()
	for _, op := range synthOps {
		if err := pipeline.Add(op); err != nil {
			return errors.Wrap(err, errors.ErrFileWrite, "failed to add operation to pipeline")
		}
	}

	ctx := context.Background()
	executor := synthfs.NewExecutor()

	w.logger.Info().Int("operationCount", len(synthOps)).Msg("Executing operations")

	result := executor.Run(ctx, pipeline, w.filesystem)
	if result.GetError() != nil {
		w.logger.Error().Err(result.GetError()).Msg("Pipeline execution failed")
		return errors.Wrap(result.GetError(), errors.ErrFileWrite, "failed to execute operations")
	}

	w.logger.Debug().Msg("All operations executed")
	return nil
}

// convert maps an output operation onto a synthfs operation.
func (w *Writer) convert(op Operation) (synthfs.Operation, error) {
	if op.Target == "" {
		return nil, errors.Newf(errors.ErrInvalidInput, "%s operation requires a target", op.Type)
	}
	if !filepath.IsAbs(op.Target) {
		return nil, errors.Newf(errors.ErrInvalidInput, "operation target must be absolute: %s", op.Target)
	}

	// synthfs works with paths relative to its filesystem root
	relPath, err := filepath.Rel("/", op.Target)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to convert path: %s", op.Target)
	}

	switch op.Type {
	case OpCreateDir:
		mode := op.Mode
		if mode == 0 {
			mode = 0755
		}
		opID := core.OperationID(fmt.Sprintf("create-dir-%s", op.Target))
		createOp := operations.NewCreateDirectoryOperation(opID, relPath)
		createOp.SetItem(&directoryItem{path: relPath, mode: mode})
		return synthfs.NewOperationsPackageAdapter(createOp), nil

	case OpWriteFile:
		mode := op.Mode
		if mode == 0 {
			mode = 0644
		}
		w.logger.Debug().
			Str("target", op.Target).
			Int("contentLen", len(op.Content)).
			Msg("Creating write file operation")

		opID := core.OperationID(fmt.Sprintf("write-file-%s", op.Target))
		createOp := operations.NewCreateFileOperation(opID, relPath)
		createOp.SetItem(&fileItem{path: relPath, content: op.Content, mode: mode})
		return synthfs.NewOperationsPackageAdapter(createOp), nil

	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported operation type: %s", op.Type)
	}
}

// fileItem implements the interface needed for file operations
type fileItem struct {
	path    string
	content []byte
	mode    fs.FileMode
}

func (f *fileItem) Path() string       { return f.path }
func (f *fileItem) Type() string       { return "file" }
func (f *fileItem) Content() []byte    { return f.content }
func (f *fileItem) Mode() fs.FileMode  { return f.mode }
func (f *fileItem) IsDir() bool        { return false }
func (f *fileItem) ModTime() time.Time { return time.Now() }
func (f *fileItem) Size() int64        { return int64(len(f.content)) }

// directoryItem implements the interface needed for directory operations
type directoryItem struct {
	path string
	mode fs.FileMode
}

func (d *directoryItem) Path() string       { return d.path }
func (d *directoryItem) Type() string       { return "directory" }
func (d *directoryItem) Mode() fs.FileMode  { return d.mode }
func (d *directoryItem) IsDir() bool        { return true }
func (d *directoryItem) ModTime() time.Time { return time.Now() }
func (d *directoryItem) Size() int64        { return 0 }
