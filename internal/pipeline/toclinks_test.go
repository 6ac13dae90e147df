package pipeline

// Notes:
// - Matching strategies are tested through FixTOCLinks rather than
//   matchHeading directly; the observable rewrite is what matters.

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestFixTOCLinks - Bookmark anchor rewriting
// ---------------------------------------------------------------------------

func TestFixTOCLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		content      string
		wantContains []string
		wantExcludes []string
		wantWarnings int
	}{
		{
			name:         "exact match rewritten",
			content:      "[Intro](#_Toc88888888)\n\n## Intro\n",
			wantContains: []string{"[Intro](#intro)"},
			wantExcludes: []string{"#_Toc"},
		},
		{
			name:         "trailing page number dropped",
			content:      "[Intro](#_Toc88888888) 3\n\n## Intro\n",
			wantContains: []string{"[Intro](#intro)"},
			wantExcludes: []string{"(#intro) 3", "#_Toc"},
		},
		{
			name:         "leading section numbering ignored for matching",
			content:      "[2.1 Setup Guide](#_Toc1234)\n\n## Setup Guide\n",
			wantContains: []string{"[2.1 Setup Guide](#setup-guide)"},
		},
		{
			name:         "case and punctuation insensitive",
			content:      "[WHAT'S NEW](#_Toc99)\n\n## What's New?\n",
			wantContains: []string{"[WHAT'S NEW](#what-s-new)"},
		},
		{
			name:         "prefix match on truncated entry",
			content:      "[Installation and Conf](#_Toc55)\n\n## Installation and Configuration\n",
			wantContains: []string{"(#installation-and-configuration)"},
		},
		{
			name:         "duplicate headings keep distinct anchors",
			content:      "[Overview](#_Toc1)\n\n## Overview\n\ntext\n\n## Overview\n",
			wantContains: []string{"[Overview](#overview)"},
			wantExcludes: []string{"#_Toc"},
		},
		{
			name:         "unmatched entry left unchanged with warning",
			content:      "[Ghost Section](#_Toc777)\n\n## Real Section\n",
			wantContains: []string{"[Ghost Section](#_Toc777)"},
			wantWarnings: 1,
		},
		{
			name:         "multiple links rewritten independently",
			content:      "[One](#_Toc1)\n[Two](#_Toc2)\n\n# One\n\n# Two\n",
			wantContains: []string{"[One](#one)", "[Two](#two)"},
			wantExcludes: []string{"#_Toc"},
		},
		{
			name:         "document without bookmark links untouched",
			content:      "[normal link](https://example.com)\n\n# Heading\n",
			wantContains: []string{"[normal link](https://example.com)"},
		},
	}

	fixer := &TOCLinkFixer{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, warnings := fixer.FixTOCLinks(tt.content)

			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
			for _, bad := range tt.wantExcludes {
				if strings.Contains(got, bad) {
					t.Errorf("output still contains %q:\n%s", bad, got)
				}
			}
			if len(warnings) != tt.wantWarnings {
				t.Errorf("got %d warnings %v, want %d", len(warnings), warnings, tt.wantWarnings)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFixTOCLinks_Idempotent - Second pass is a no-op
// ---------------------------------------------------------------------------

func TestFixTOCLinks_Idempotent(t *testing.T) {
	t.Parallel()

	content := "[1. Intro](#_Toc1) 3\n[Missing](#_Toc2)\n\n# Intro\n"
	fixer := &TOCLinkFixer{}

	once, _ := fixer.FixTOCLinks(content)
	twice, _ := fixer.FixTOCLinks(once)
	if once != twice {
		t.Errorf("second pass changed output:\nfirst:\n%s\nsecond:\n%s", once, twice)
	}
}

// ---------------------------------------------------------------------------
// TestNormalizeMatchText - Comparison normalization
// ---------------------------------------------------------------------------

func TestNormalizeMatchText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Setup Guide", "setup guide"},
		{"  What's   New?  ", "what s new"},
		{"CHAPTER-1", "chapter 1"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		if got := normalizeMatchText(tt.in); got != tt.want {
			t.Errorf("normalizeMatchText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
