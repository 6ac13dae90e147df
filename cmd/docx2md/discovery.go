package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-docx2md/internal/config"
	"github.com/alnah/go-docx2md/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .docx extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// SkippedFile records a file passed over during discovery and why.
type SkippedFile struct {
	Path   string
	Reason string
}

// skipReason classifies files that look like documents but are not
// convertible. Returns "" for files that should be converted and for
// files that are simply not documents at all (reported separately).
func skipReason(name string) string {
	base := filepath.Base(name)
	ext := strings.ToLower(filepath.Ext(base))
	switch {
	case strings.HasPrefix(base, "~$"):
		return "Word temporary file"
	case strings.HasPrefix(base, ".~lock."):
		return "LibreOffice lock file"
	case strings.HasPrefix(base, "."):
		return "hidden file"
	case ext == ".doc":
		return "legacy .doc format not supported, save as .docx first"
	case ext == ".docm":
		return "macro-enabled .docm format not supported"
	}
	return ""
}

// isConvertible reports whether the name is a plain .docx document.
func isConvertible(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".docx") && skipReason(name) == ""
}

// discoverFiles expands the input paths into the files to convert.
// Explicit file arguments must be .docx; directories are scanned for
// convertible documents, descending only when recursive is set.
func discoverFiles(inputs []string, opts discoveryOptions) ([]FileToConvert, []SkippedFile, error) {
	var files []FileToConvert
	var skipped []SkippedFile

	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, nil, err
		}

		if !info.IsDir() {
			if reason := skipReason(input); reason != "" {
				skipped = append(skipped, SkippedFile{Path: input, Reason: reason})
				continue
			}
			if !strings.EqualFold(filepath.Ext(input), ".docx") {
				return nil, nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(input))
			}
			files = append(files, FileToConvert{
				InputPath:  input,
				OutputPath: resolveOutputPath(input, opts, ""),
			})
			continue
		}

		dirFiles, dirSkipped, err := scanDir(input, opts)
		if err != nil {
			return nil, nil, err
		}
		files = append(files, dirFiles...)
		skipped = append(skipped, dirSkipped...)
	}

	return files, skipped, nil
}

// discoveryOptions controls output path resolution during discovery.
type discoveryOptions struct {
	outputDir         string
	recursive         bool
	preserveStructure bool
}

func scanDir(root string, opts discoveryOptions) ([]FileToConvert, []SkippedFile, error) {
	var files []FileToConvert
	var skipped []SkippedFile

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if path != root && !opts.recursive {
				return fs.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".docx" && ext != ".doc" && ext != ".docm" {
			return nil
		}
		if reason := skipReason(path); reason != "" {
			skipped = append(skipped, SkippedFile{Path: path, Reason: reason})
			return nil
		}
		files = append(files, FileToConvert{
			InputPath:  path,
			OutputPath: resolveOutputPath(path, opts, root),
		})
		return nil
	})

	return files, skipped, err
}

// resolveOutputPath determines the Markdown output path for a document.
// The output base name is sanitized so that spaced or oddly named documents
// produce portable file names.
func resolveOutputPath(inputPath string, opts discoveryOptions, baseInputDir string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)
	if safe, err := fileutil.SanitizeFileName(base); err == nil {
		base = safe
	}

	if opts.outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base+".md")
	}

	if baseInputDir != "" && opts.preserveStructure {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			relDir := filepath.Dir(relPath)
			return filepath.Join(opts.outputDir, relDir, base+".md")
		}
	}

	return filepath.Join(opts.outputDir, base+".md")
}

// mediaDirFor returns the media extraction directory for an output path.
// An explicit mediaDir groups all documents' media together; otherwise each
// document gets a sibling <name>_media directory.
func mediaDirFor(outputPath, mediaDir string) string {
	if mediaDir != "" {
		return mediaDir
	}
	return strings.TrimSuffix(outputPath, ".md") + "_media"
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}
