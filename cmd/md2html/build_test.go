package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jtgis/go-md2html/internal/config"
)

func newPosts(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	posts := filepath.Join(root, "posts")
	writeFile(t, filepath.Join(posts, "one.md"), "---\ntitle: One\ndate: 2025-01-02\ntags: [go]\n---\nFirst.\n")
	writeFile(t, filepath.Join(posts, "two.md"), "---\ntitle: Two\ndate: 2025-02-03\n---\nSecond.\n")
	writeFile(t, filepath.Join(posts, "wip.md"), "---\ntitle: WIP\ndraft: true\n---\nLater.\n")
	return posts
}

func TestRunBuild(t *testing.T) {
	t.Parallel()

	posts := newPosts(t)
	out := filepath.Join(filepath.Dir(posts), "public")

	env, stdout, stderr := testEnv(map[string]string{"MD2HTML_SITE_TITLE": "Env Blog"})
	code := runMain([]string{"md2html", "build", "--posts", posts, "-o", out, "--per-page", "1"}, env)
	if code != ExitSuccess {
		t.Fatalf("exit = %d, stderr: %s", code, stderr)
	}

	for _, rel := range []string{"index.html", "page/2/index.html", "posts/one.html", "posts/two.html", "tags/go/index.html", "archive/2025/01/index.html", "assets/style.css", "posts.json"} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(rel))); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}
	if !strings.Contains(readFile(t, filepath.Join(out, "index.html")), "Env Blog") {
		t.Error("site title from MD2HTML_SITE_TITLE not used")
	}
	for _, want := range []string{"(2 posts)", "1 draft(s) skipped"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("stdout missing %q: %q", want, stdout)
		}
	}
}

func TestRunBuild_Drafts(t *testing.T) {
	t.Parallel()

	posts := newPosts(t)
	out := filepath.Join(t.TempDir(), "site")

	env, stdout, stderr := testEnv(nil)
	if code := runMain([]string{"md2html", "build", "--posts", posts, "-o", out, "--drafts", "-q"}, env); code != ExitSuccess {
		t.Fatalf("exit = %d, stderr: %s", code, stderr)
	}
	readFile(t, filepath.Join(out, "posts", "wip.html"))
	if stdout.Len() != 0 {
		t.Errorf("quiet build wrote %q", stdout)
	}
}

func TestRunBuild_RequiredManifest(t *testing.T) {
	t.Parallel()

	posts := newPosts(t)

	env, _, stderr := testEnv(nil)
	code := runMain([]string{"md2html", "build", "--posts", posts, "-o", t.TempDir(), "--manifest", filepath.Join(posts, "missing.json")}, env)
	if code != ExitIO {
		t.Errorf("exit = %d, want %d", code, ExitIO)
	}
	if !strings.Contains(stderr.String(), "manifest") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestSiteOptions_Manifest(t *testing.T) {
	t.Parallel()

	abs := filepath.Join(t.TempDir(), "index.json")

	tests := []struct {
		name        string
		postsDir    string
		manifest    string
		flag        string
		want        string
		wantRequire bool
	}{
		{name: "next to posts", postsDir: filepath.Join("site", "posts"), manifest: "posts.json", want: filepath.Join("site", "posts.json")},
		{name: "posts at top level", postsDir: "posts", manifest: "posts.json", want: "posts.json"},
		{name: "absolute", postsDir: "posts", manifest: abs, want: abs},
		{name: "disabled", postsDir: "posts", manifest: "", want: ""},
		{name: "flag is required", postsDir: "posts", manifest: "posts.json", flag: "index.json", want: "index.json", wantRequire: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.DefaultConfig()
			cfg.Site.PostsDir = tt.postsDir
			cfg.Site.Manifest = tt.manifest

			opts, err := siteOptions(cfg, tt.flag)
			if err != nil {
				t.Fatalf("siteOptions() error = %v", err)
			}
			if opts.Manifest != tt.want || opts.RequireManifest != tt.wantRequire {
				t.Errorf("manifest = %q (required %v), want %q (required %v)", opts.Manifest, opts.RequireManifest, tt.want, tt.wantRequire)
			}
		})
	}
}
