package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	docx2md "github.com/alnah/go-docx2md"
	"github.com/alnah/go-docx2md/internal/config"
	"github.com/alnah/go-docx2md/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput       = errors.New("no input specified")
	ErrWriteMarkdown = errors.New("failed to write markdown file")
)

// Normalizer is the interface for the normalization service.
type Normalizer interface {
	Normalize(input docx2md.Input) (*docx2md.Result, error)
}

// Compile-time interface implementation check.
var _ Normalizer = (*docx2md.Service)(nil)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Skipped    string // non-empty skip reason
	Warnings   []string
	Err        error
	Duration   time.Duration
}

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	converter         docx2md.DocumentConverter
	service           Normalizer
	now               func() time.Time
	mediaDir          string
	frontMatterFields []string
	noFrontMatter     bool
	overwrite         bool
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	mergeFlags(flags, cfg)

	inputs := positionalArgs
	if len(inputs) == 0 {
		if cfg.Input.DefaultDir == "" {
			return ErrNoInput
		}
		inputs = []string{cfg.Input.DefaultDir}
	}

	files, skipped, err := discoverFiles(inputs, discoveryOptions{
		outputDir:         cfg.Output.DefaultDir,
		recursive:         cfg.Input.Recursive,
		preserveStructure: cfg.Output.PreserveStructure,
	})
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	if flags.common.verbose {
		for _, s := range skipped {
			fmt.Fprintf(env.Stderr, "Skipped %s: %s\n", s.Path, s.Reason)
		}
	}

	if len(files) == 0 {
		if len(skipped) > 0 {
			return fmt.Errorf("%w: all %d candidate file(s) were skipped", ErrNoInput, len(skipped))
		}
		return fmt.Errorf("%w: no .docx files found", ErrNoInput)
	}

	conv, err := selectConverter(cfg, flags.common.quiet, env)
	if err != nil {
		return err
	}

	params := &conversionParams{
		converter:         conv,
		service:           docx2md.New(),
		now:               env.Now,
		mediaDir:          cfg.Media.Dir,
		frontMatterFields: cfg.FrontMatter.Fields,
		noFrontMatter:     cfg.FrontMatter.Disabled,
		overwrite:         cfg.Output.Overwrite,
	}

	workers := resolveWorkerCount(cfg.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Workers: %d\n", workers)
	}

	results := convertBatch(ctx, workers, files, params)

	if cfg.Media.Dir != "" {
		cleanupMediaDir(cfg.Media.Dir)
	}

	failedCount := printResults(results, len(skipped), flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d conversion(s) failed", failedCount)
	}
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.output.dir != "" {
		cfg.Output.DefaultDir = flags.output.dir
	}
	if flags.output.overwrite {
		cfg.Output.Overwrite = true
	}
	if flags.output.noPreserveStructure {
		cfg.Output.PreserveStructure = false
	}
	if flags.output.mediaDir != "" {
		cfg.Media.Dir = flags.output.mediaDir
	}
	if flags.recursive {
		cfg.Input.Recursive = true
	}
	if flags.converter.pandocPath != "" {
		cfg.Pandoc.Path = flags.converter.pandocPath
	}
	if flags.converter.pureGo {
		cfg.Pandoc.PureGo = true
	}
	if flags.frontMatter.disabled {
		cfg.FrontMatter.Disabled = true
	}
	if len(flags.frontMatter.fields) > 0 {
		cfg.FrontMatter.Fields = flags.frontMatter.fields
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
}

// selectConverter picks the conversion backend: pandoc when present, the
// built-in converter otherwise or when forced with pureGo.
func selectConverter(cfg *config.Config, quiet bool, env *Environment) (docx2md.DocumentConverter, error) {
	if cfg.Pandoc.PureGo {
		return docx2md.NewGoConverter(), nil
	}

	pandoc := docx2md.NewPandocConverter()
	pandoc.Path = cfg.Pandoc.Path
	if pandoc.Available() {
		return pandoc, nil
	}
	if cfg.Pandoc.Path != "" {
		return nil, fmt.Errorf("%w: %s", docx2md.ErrPandocNotFound, cfg.Pandoc.Path)
	}
	if !quiet {
		fmt.Fprintln(env.Stderr, "pandoc not found, using built-in converter")
	}
	return docx2md.NewGoConverter(), nil
}

// resolveWorkerCount determines the worker pool size.
// Priority: explicit value > GOMAXPROCS-based calculation.
func resolveWorkerCount(configured int) int {
	if configured > 0 {
		return configured
	}

	// automaxprocs adjusts GOMAXPROCS for container CPU limits.
	available := runtime.GOMAXPROCS(0)
	n := available / 2
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}

// convertBatch processes files concurrently with a bounded worker pool.
func convertBatch(ctx context.Context, workers int, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	if workers > len(files) {
		workers = len(files)
	}

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single document and returns the result.
func convertFile(ctx context.Context, f FileToConvert, params *conversionParams) (result ConversionResult) {
	start := params.now()
	result = ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	defer func() { result.Duration = params.now().Sub(start) }()

	if !params.overwrite && fileutil.FileExists(f.OutputPath) {
		result.Skipped = "output exists, use --overwrite to replace"
		return result
	}

	// Metadata failures degrade to an empty front matter source, the
	// document itself may still convert fine.
	meta, err := docx2md.ReadCoreProperties(f.InputPath)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("reading document properties: %v", err))
		meta = docx2md.Metadata{}
	}

	mediaDir := mediaDirFor(f.OutputPath, params.mediaDir)
	markdown, _, err := params.converter.Convert(ctx, f.InputPath, mediaDir)
	if err != nil {
		result.Err = err
		return result
	}

	normalized, err := params.service.Normalize(docx2md.Input{
		Markdown:           markdown,
		Metadata:           meta,
		SourceFile:         filepath.Base(f.InputPath),
		FrontMatterFields:  params.frontMatterFields,
		DisableFrontMatter: params.noFrontMatter,
	})
	if err != nil {
		result.Err = err
		return result
	}
	result.Warnings = append(result.Warnings, normalized.Warnings...)

	outDir := filepath.Dir(f.OutputPath)
	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		result.Err = fmt.Errorf("creating output directory: %w", err)
		return result
	}

	// #nosec G306 -- markdown files are meant to be readable
	if err := os.WriteFile(f.OutputPath, []byte(normalized.Markdown), filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteMarkdown, err)
		return result
	}

	// Per-document media dirs are created eagerly by the converter, drop
	// the empty ones for documents without images. The shared media dir is
	// cleaned once after the batch instead.
	if params.mediaDir == "" {
		cleanupMediaDir(mediaDir)
	}

	return result
}

// cleanupMediaDir removes a media directory that ended up without any
// extracted files. Pandoc nests extracted images under a media/ subdirectory,
// so that level goes first and the emptied root after it.
func cleanupMediaDir(dir string) {
	_ = fileutil.RemoveDirIfEmpty(filepath.Join(dir, "media"))
	_ = fileutil.RemoveDirIfEmpty(dir)
}

// ResultSummary holds the count of conversion outcomes.
type ResultSummary struct {
	Succeeded int
	Skipped   int
	Failed    int
}

// countResults tallies conversion outcomes.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.Failed++
		case r.Skipped != "":
			summary.Skipped++
		default:
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs conversion results and returns the failure count.
func printResults(results []ConversionResult, discoverySkips int, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)
	summary.Skipped += discoverySkips

	for _, r := range results {
		for _, w := range r.Warnings {
			fmt.Fprintf(env.Stderr, "WARNING %s: %s\n", r.InputPath, w)
		}

		switch {
		case r.Err != nil:
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
		case r.Skipped != "":
			if verbose {
				fmt.Fprintf(env.Stderr, "Skipped %s: %s\n", r.InputPath, r.Skipped)
			}
		case quiet:
		case verbose:
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		default:
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d skipped, %d failed\n", summary.Succeeded, summary.Skipped, summary.Failed)
	}

	return summary.Failed
}
