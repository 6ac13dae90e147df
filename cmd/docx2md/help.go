package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docx2md [flags] <input>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert DOCX files to clean Markdown with YAML front matter.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    DOCX files or directories (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output-dir <dir>      Output directory (default: alongside input)")
	fmt.Fprintln(w, "  -r, --recursive             Descend into subdirectories")
	fmt.Fprintln(w, "      --overwrite             Replace existing .md files")
	fmt.Fprintln(w, "      --no-preserve-structure Flatten output instead of mirroring input tree")
	fmt.Fprintln(w, "      --media-dir <dir>       Directory for extracted images")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Converter:")
	fmt.Fprintln(w, "      --pandoc-path <path>    Explicit pandoc binary (default: search PATH)")
	fmt.Fprintln(w, "      --pure-go               Skip pandoc and use the built-in converter")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Front matter:")
	fmt.Fprintln(w, "      --no-front-matter       Omit the YAML front matter block")
	fmt.Fprintln(w, "      --front-matter <list>   Fields to emit, comma-separated")
	fmt.Fprintln(w, "                              (title, author, created, modified, source_file)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>           Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show per-file timing and skip reasons")
	fmt.Fprintln(w, "      --version               Show version information")
}
