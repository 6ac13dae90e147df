package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// outputFlags holds output destination flags.
type outputFlags struct {
	dir                 string
	overwrite           bool
	noPreserveStructure bool
	mediaDir            string
}

// converterFlags holds backend selection flags.
type converterFlags struct {
	pandocPath string
	pureGo     bool
}

// frontMatterFlags holds YAML front matter flags.
type frontMatterFlags struct {
	disabled bool
	fields   []string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common      commonFlags
	output      outputFlags
	converter   converterFlags
	frontMatter frontMatterFlags
	recursive   bool
	workers     int
	version     bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file timing and skip reasons")
}

// addOutputFlags adds output destination flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.dir, "output-dir", "o", "", "output directory (default: alongside input)")
	fs.BoolVar(&f.overwrite, "overwrite", false, "replace existing .md files")
	fs.BoolVar(&f.noPreserveStructure, "no-preserve-structure", false, "flatten output instead of mirroring input tree")
	fs.StringVar(&f.mediaDir, "media-dir", "", "directory for extracted images (default: <output>_media per document)")
}

// addConverterFlags adds backend selection flags to a FlagSet.
func addConverterFlags(fs *flag.FlagSet, f *converterFlags) {
	fs.StringVar(&f.pandocPath, "pandoc-path", "", "explicit pandoc binary (default: search PATH)")
	fs.BoolVar(&f.pureGo, "pure-go", false, "skip pandoc and use the built-in converter")
}

// addFrontMatterFlags adds front matter flags to a FlagSet.
func addFrontMatterFlags(fs *flag.FlagSet, f *frontMatterFlags) {
	fs.BoolVar(&f.disabled, "no-front-matter", false, "omit the YAML front matter block")
	fs.StringSliceVar(&f.fields, "front-matter", nil, "front matter fields to emit (comma-separated)")
}

// parseConvertFlags parses flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("docx2md", flag.ContinueOnError)
	f := &convertFlags{}

	fs.BoolVarP(&f.recursive, "recursive", "r", false, "descend into subdirectories")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.version, "version", false, "show version information")

	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.output)
	addConverterFlags(fs, &f.converter)
	addFrontMatterFlags(fs, &f.frontMatter)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
