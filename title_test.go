package docx2md

import "testing"

// ---------------------------------------------------------------------------
// TestIsGenericTitle - Placeholder detection
// ---------------------------------------------------------------------------

func TestIsGenericTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"Untitled", true},
		{"Untitled document", true},
		{"Document", true},
		{"document v1.2", true},
		{"Report", true},
		{"Report v2", true},
		{"New Document", true},
		{"Draft", true},
		{"DRAFT proposal", true},
		{"Quarterly Report", false},
		{"My Document", false},
		{"Incident Report 2024", false},
		{"Reporting Guidelines", false},
	}

	for _, tt := range tests {
		if got := IsGenericTitle(tt.title); got != tt.want {
			t.Errorf("IsGenericTitle(%q) = %v, want %v", tt.title, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestResolveTitle - Fallback chain
// ---------------------------------------------------------------------------

func TestResolveTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		metadata string
		body     string
		want     string
	}{
		{
			name:     "metadata title wins",
			metadata: "Official Title",
			body:     "# Body Heading\n\ntext\n",
			want:     "Official Title",
		},
		{
			name:     "generic metadata falls back to heading",
			metadata: "Untitled",
			body:     "# Body Heading\n\ntext\n",
			want:     "Body Heading",
		},
		{
			name:     "no metadata uses first h1",
			metadata: "",
			body:     "intro\n\n# First\n\n# Second\n",
			want:     "First",
		},
		{
			name:     "bold line before any heading",
			metadata: "Untitled",
			body:     "**My Real Title**\n\nBody text follows.\n",
			want:     "My Real Title",
		},
		{
			name:     "bold line after heading ignored",
			metadata: "",
			body:     "## Section\n\n**emphasis only**\n",
			want:     "",
		},
		{
			name:     "bold body-text label rejected",
			metadata: "",
			body:     "**Table of Contents**\n\ntext\n",
			want:     "",
		},
		{
			name:     "h2 does not become a title",
			metadata: "",
			body:     "## Only Subheading\n\ntext\n",
			want:     "",
		},
		{
			name:     "nothing usable yields empty",
			metadata: "Draft",
			body:     "plain paragraph\n",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ResolveTitle(tt.metadata, tt.body)
			if got != tt.want {
				t.Errorf("ResolveTitle(%q, ...) = %q, want %q", tt.metadata, got, tt.want)
			}
		})
	}
}
