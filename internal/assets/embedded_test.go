package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name    string
		style   string
		wantErr error
	}{
		{name: "default", style: DefaultStyleName},
		{name: "unknown", style: "my-style", wantErr: ErrStyleNotFound},
		{name: "empty", style: "", wantErr: ErrInvalidAssetName},
		{name: "slash", style: "../secret", wantErr: ErrInvalidAssetName},
		{name: "backslash", style: "..\\secret", wantErr: ErrInvalidAssetName},
		{name: "dot", style: "style.name", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadStyle(tt.style)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadStyle(%q) error = %v, want %v", tt.style, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle(%q) unexpected error: %v", tt.style, err)
			}
			if !strings.Contains(got, "font-family") {
				t.Error("default style has no font-family rule")
			}
		})
	}
}

func TestEmbeddedLoader_LoadTemplateSet(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name    string
		set     string
		wantErr error
	}{
		{name: "default set", set: DefaultTemplateSetName},
		{name: "nonexistent set", set: "nonexistent", wantErr: ErrTemplateSetNotFound},
		{name: "traversal", set: "../default", wantErr: ErrInvalidAssetName},
		{name: "empty", set: "", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts, err := loader.LoadTemplateSet(tt.set)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadTemplateSet(%q) error = %v, want %v", tt.set, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadTemplateSet(%q) unexpected error: %v", tt.set, err)
			}
			if ts.Layout == "" || ts.Post == "" || ts.List == "" {
				t.Errorf("LoadTemplateSet(%q) returned an empty template", tt.set)
			}
		})
	}
}

func TestEmbeddedLoader_ImplementsAssetLoader(t *testing.T) {
	t.Parallel()

	var _ AssetLoader = NewEmbeddedLoader()
}
