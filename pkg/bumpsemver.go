package bumpsemver

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrMissingTargetFile is returned when a Config names no target file.
var ErrMissingTargetFile = errors.New("target file is required")

// Config locates the version file and selects the bump to apply.
// It is built once at startup and passed by value.
type Config struct {
	Workspace       string   // Base directory, e.g. the CI workspace.
	TargetDirectory string   // Directory of the version file, relative to Workspace.
	TargetFile      string   // Name of the version file.
	Bump            BumpKind // Component to increment.
}

// Path returns the version file location.
func (c Config) Path() string {
	return filepath.Join(c.Workspace, c.TargetDirectory, c.TargetFile)
}

// Validate reports configuration that cannot name a file.
func (c Config) Validate() error {
	if c.TargetFile == "" {
		return ErrMissingTargetFile
	}
	return nil
}

// VersionMeta holds metadata about the version bump operation.
type VersionMeta struct {
	OldVersion string // The version before bumping, without its line terminator.
	NewVersion string // The version after bumping.
	BumpType   string // patch, minor or major.
	Path       string // The version file that was (or would be) written.
}

// readCurrentVersion returns the raw contents of the version file.
func readCurrentVersion(fsys afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return "", fmt.Errorf("failed to read version file %s: %w", path, err)
	}
	return string(data), nil
}

// writeVersionFile replaces the contents of the version file with newVersion.
func writeVersionFile(fsys afero.Fs, path, newVersion string) error {
	if err := afero.WriteFile(fsys, path, []byte(newVersion), 0644); err != nil {
		return fmt.Errorf("failed to write version file %s: %w", path, err)
	}
	return nil
}

// plan reads the version file and computes the bump without writing anything.
func plan(fsys afero.Fs, cfg Config) (VersionMeta, error) {
	var meta VersionMeta

	if err := cfg.Validate(); err != nil {
		return meta, err
	}
	meta.Path = cfg.Path()
	meta.BumpType = cfg.Bump.String()
	slog.Info("target file", "path", meta.Path, "bump", meta.BumpType)

	raw, err := readCurrentVersion(fsys, meta.Path)
	if err != nil {
		return meta, err
	}
	slog.Debug("read version file", "path", meta.Path, "bytes", len(raw))

	next, err := Bump(raw, cfg.Bump)
	if err != nil {
		return meta, fmt.Errorf("%s does not record a valid semantic version: %w", meta.Path, err)
	}
	meta.OldVersion = trimLineTerminator(raw)
	meta.NewVersion = next
	return meta, nil
}

// Run bumps the version recorded in the file named by cfg and writes the new
// version back to the same file. Nothing is written unless the bump succeeds.
func Run(fsys afero.Fs, cfg Config) (VersionMeta, error) {
	meta, err := plan(fsys, cfg)
	if err != nil {
		return meta, err
	}

	if err := writeVersionFile(fsys, meta.Path, meta.NewVersion); err != nil {
		return meta, err
	}
	slog.Info("incremented the semantic version",
		"path", meta.Path,
		"from", meta.OldVersion,
		"to", meta.NewVersion,
		"bump", meta.BumpType)
	return meta, nil
}

// DryRun computes the same VersionMeta as Run without modifying the file.
func DryRun(fsys afero.Fs, cfg Config) (VersionMeta, error) {
	return plan(fsys, cfg)
}
