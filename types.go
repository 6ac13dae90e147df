package docx2md

// Front matter field names. These five fields are the fixed set the front
// matter builder recognizes.
const (
	FieldTitle      = "title"
	FieldAuthor     = "author"
	FieldCreated    = "created"
	FieldModified   = "modified"
	FieldSourceFile = "source_file"
)

// DefaultFrontMatterFields is the field order used when the caller does not
// select one.
var DefaultFrontMatterFields = []string{
	FieldTitle,
	FieldAuthor,
	FieldCreated,
	FieldModified,
	FieldSourceFile,
}

// Metadata holds document properties recovered from the source container.
// All values are raw strings as found in docProps/core.xml; timestamps are
// normalized to UTC only when serialized into front matter.
type Metadata struct {
	Title    string
	Author   string
	Created  string
	Modified string
}

// Input carries one converted document through normalization.
type Input struct {
	// Markdown is the raw converter output (required).
	Markdown string

	// Metadata holds container properties; zero value means none were found.
	Metadata Metadata

	// SourceFile is the original file name, supplied by the caller and never
	// derived from document content. Empty omits the source_file field.
	SourceFile string

	// FrontMatterFields selects and orders the front matter fields.
	// Nil means DefaultFrontMatterFields.
	FrontMatterFields []string

	// DisableFrontMatter skips front matter assembly entirely.
	DisableFrontMatter bool
}

// Result is the normalized document plus non-fatal warnings for the caller
// to log.
type Result struct {
	// Markdown is the final document text, ready to write verbatim.
	Markdown string

	// Title is the resolved document title, or "" when none was found.
	Title string

	// Warnings lists recoverable oddities: unmatched TOC links, unknown
	// requested front matter fields, unparseable timestamps.
	Warnings []string
}
