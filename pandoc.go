package docx2md

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
)

// DocumentConverter abstracts DOCX-to-Markdown conversion so the pandoc
// binary and the pure-Go reader are interchangeable. Convert returns the
// raw Markdown text and the paths of media files extracted into mediaDir;
// an empty mediaDir skips media extraction.
type DocumentConverter interface {
	Convert(ctx context.Context, docxPath, mediaDir string) (markdown string, media []string, err error)
}

// CommandRunner abstracts command execution to enable testing without real
// subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return "", "", fmt.Errorf("creating stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return "", "", fmt.Errorf("starting command: %w", err)
	}

	stderrContent, err := io.ReadAll(stderrPipe)
	if err != nil {
		return "", "", fmt.Errorf("reading stderr: %w", err)
	}

	err = cmd.Wait()
	return stdout.String(), string(stderrContent), err
}

// PandocConverter converts DOCX to GitHub-flavored Markdown by invoking the
// pandoc CLI.
type PandocConverter struct {
	// Runner executes the pandoc process; tests substitute a mock.
	Runner CommandRunner

	// Path overrides pandoc discovery. Empty means look up "pandoc" in PATH.
	Path string
}

// Compile-time interface implementation check.
var _ DocumentConverter = (*PandocConverter)(nil)

// NewPandocConverter creates a PandocConverter with a real command runner.
func NewPandocConverter() *PandocConverter {
	return &PandocConverter{Runner: &ExecRunner{}}
}

// Available reports whether a pandoc executable can be found.
func (c *PandocConverter) Available() bool {
	_, err := c.executable()
	return err == nil
}

// executable resolves the pandoc binary path.
func (c *PandocConverter) executable() (string, error) {
	if c.Path != "" {
		if _, err := os.Stat(c.Path); err != nil {
			return "", fmt.Errorf("%w: %s", ErrPandocNotFound, c.Path)
		}
		return c.Path, nil
	}
	path, err := exec.LookPath("pandoc")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPandocNotFound, err)
	}
	return path, nil
}

// Convert runs pandoc with -f docx -t gfm, writing Markdown to stdout and
// embedded media under mediaDir. The media list is gathered by walking
// mediaDir after pandoc finishes, since pandoc performs the extraction
// itself.
func (c *PandocConverter) Convert(ctx context.Context, docxPath, mediaDir string) (string, []string, error) {
	if docxPath == "" {
		return "", nil, ErrEmptyPath
	}

	pandoc, err := c.executable()
	if err != nil {
		return "", nil, err
	}

	args := []string{docxPath, "-f", "docx", "-t", "gfm", "--wrap=auto"}
	if mediaDir != "" {
		if err := os.MkdirAll(mediaDir, 0o750); err != nil {
			return "", nil, fmt.Errorf("creating media directory: %w", err)
		}
		args = append(args, "--extract-media="+mediaDir)
	}

	stdout, stderr, err := c.Runner.Run(ctx, pandoc, args...)
	if err != nil {
		return "", nil, fmt.Errorf("%w: pandoc: %s: %v", ErrConversion, stderr, err)
	}

	media, err := listMediaFiles(mediaDir)
	if err != nil {
		return "", nil, err
	}
	return stdout, media, nil
}

// listMediaFiles collects regular files under dir. A missing or empty dir
// yields nil: not every document embeds media.
func listMediaFiles(dir string) ([]string, error) {
	if dir == "" {
		return nil, nil
	}
	var media []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			media = append(media, path)
		}
		return nil
	})
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing media files: %w", err)
	}
	return media, nil
}
