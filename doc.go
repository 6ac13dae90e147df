// Package docx2md converts Word documents to clean, portable Markdown with
// YAML front matter, suitable for note-taking tools such as Obsidian.
//
// # Quick Start
//
// Convert a file with the pandoc backend (falling back to pure Go), then
// normalize the raw output:
//
//	conv := docx2md.NewPandocConverter()
//	raw, media, err := conv.Convert(ctx, "report.docx", "media/report")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	meta, _ := docx2md.ReadCoreProperties("report.docx")
//	svc := docx2md.New()
//	result, err := svc.Normalize(docx2md.Input{
//	    Markdown:   raw,
//	    Metadata:   meta,
//	    SourceFile: "report.docx",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("report.md", []byte(result.Markdown), 0644)
//
// The result carries the final Markdown plus non-fatal warnings (unmatched
// TOC links, unknown front matter fields) for the caller to log.
//
// # Normalization Pipeline
//
// Normalize runs raw converter output through these stages:
//
//  1. Line ending normalization
//  2. TOC link rewriting (converter bookmarks -> heading anchor slugs)
//  3. Ordered-list renumbering
//  4. Markdown linting (MD012, MD022, MD032, MD047)
//  5. Title resolution (metadata title, else first H1, else bold-only line)
//  6. YAML front matter assembly
//
// Every stage is a pure text transform and the whole pipeline is
// idempotent: normalizing already-normalized output changes nothing.
//
// # Converter Backends
//
// Two interchangeable DocumentConverter implementations produce the raw
// Markdown: PandocConverter invokes the external pandoc binary, and
// GoConverter reads the document with pure Go libraries. Neither is special
// to the pipeline; the normalization stages only ever see text.
//
// # Parallel Processing
//
// A Service holds no per-document state, so one instance may be shared by
// any number of goroutines converting different documents concurrently.
package docx2md
