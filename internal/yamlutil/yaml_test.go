package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jtgis/go-md2html/internal/yamlutil"
)

type testMeta struct {
	Title string   `yaml:"title"`
	Tags  []string `yaml:"tags"`
	Draft bool     `yaml:"draft"`
}

// ---------------------------------------------------------------------------
// TestUnmarshal - Lenient and strict decoding
// ---------------------------------------------------------------------------

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		opts    []yamlutil.Option
		wantErr error
		check   func(t *testing.T, v any)
	}{
		{
			name: "valid YAML",
			data: []byte("title: Hello\ntags: [go, web]\ndraft: true"),
			dest: &testMeta{},
			check: func(t *testing.T, v any) {
				m := v.(*testMeta)
				if m.Title != "Hello" {
					t.Errorf("Title = %q, want %q", m.Title, "Hello")
				}
				if len(m.Tags) != 2 || m.Tags[1] != "web" {
					t.Errorf("Tags = %v, want [go web]", m.Tags)
				}
				if !m.Draft {
					t.Error("Draft = false, want true")
				}
			},
		},
		{
			name: "unknown field ignored when lenient",
			data: []byte("title: x\nlayout: post"),
			dest: &testMeta{},
			check: func(t *testing.T, v any) {
				if v.(*testMeta).Title != "x" {
					t.Errorf("Title = %q, want %q", v.(*testMeta).Title, "x")
				}
			},
		},
		{
			name:    "unknown field rejected when strict",
			data:    []byte("title: x\nlayout: post"),
			dest:    &testMeta{},
			opts:    []yamlutil.Option{yamlutil.Strict()},
			wantErr: errors.New("yamlutil:"),
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testMeta{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("title: x"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:    "invalid YAML syntax",
			data:    []byte("title: [unclosed"),
			dest:    &testMeta{},
			wantErr: errors.New("yamlutil:"),
		},
		{
			name:    "input exceeding limit",
			data:    []byte(strings.Repeat("#", 101)),
			dest:    &testMeta{},
			opts:    []yamlutil.Option{yamlutil.MaxSize(100)},
			wantErr: yamlutil.ErrInputTooLarge,
		},
		{
			name: "unicode content",
			data: []byte("title: 日本語テスト"),
			dest: &testMeta{},
			check: func(t *testing.T, v any) {
				if v.(*testMeta).Title != "日本語テスト" {
					t.Errorf("Title = %q, want %q", v.(*testMeta).Title, "日本語テスト")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest, tt.opts...)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if errors.Is(err, tt.wantErr) {
					return
				}
				if !strings.Contains(err.Error(), tt.wantErr.Error()) {
					t.Fatalf("error = %q, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

func TestUnmarshal_SizeInMessage(t *testing.T) {
	t.Parallel()

	err := yamlutil.Unmarshal(make([]byte, 100), &testMeta{}, yamlutil.MaxSize(50))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if msg := err.Error(); !strings.Contains(msg, "100 bytes") || !strings.Contains(msg, "max 50") {
		t.Errorf("error should report both sizes, got: %s", msg)
	}
}

// ---------------------------------------------------------------------------
// TestMarshal - Serializes Go structs to YAML
// ---------------------------------------------------------------------------

func TestMarshal(t *testing.T) {
	t.Parallel()

	data, err := yamlutil.Marshal(&testMeta{Title: "marshal", Tags: []string{"go"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := string(data)
	for _, want := range []string{"title: marshal", "- go", "draft: false"} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q, got: %s", want, s)
		}
	}
}
