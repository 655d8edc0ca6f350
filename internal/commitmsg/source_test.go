package commitmsg

import "testing"

func TestParseSource(t *testing.T) {
	tests := []struct {
		arg     string
		want    Source
		wantErr bool
	}{
		{"", SourceNone, false},
		{"message", SourceMessage, false},
		{"template", SourceTemplate, false},
		{"merge", SourceMerge, false},
		{"squash", SourceSquash, false},
		{"commit", SourceCommit, false},
		{"rebase", SourceNone, true},
		{"MESSAGE", SourceNone, true},
	}

	for _, tt := range tests {
		t.Run("arg "+tt.arg, func(t *testing.T) {
			got, err := ParseSource(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSource(%q) err = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseSource(%q) = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}

func TestParseSourceName(t *testing.T) {
	got, err := ParseSourceName("none")
	if err != nil {
		t.Fatalf("ParseSourceName(none): %v", err)
	}
	if got != SourceNone {
		t.Errorf("ParseSourceName(none) = %q, want SourceNone", got)
	}

	if _, err := ParseSourceName(""); err == nil {
		t.Error("empty name should be rejected")
	}

	got, err = ParseSourceName("commit")
	if err != nil {
		t.Fatalf("ParseSourceName(commit): %v", err)
	}
	if got != SourceCommit {
		t.Errorf("ParseSourceName(commit) = %q, want SourceCommit", got)
	}
}

func TestSource_String(t *testing.T) {
	if SourceNone.String() != "none" {
		t.Errorf("SourceNone.String() = %q, want %q", SourceNone.String(), "none")
	}
	if SourceMerge.String() != "merge" {
		t.Errorf("SourceMerge.String() = %q, want %q", SourceMerge.String(), "merge")
	}
}
