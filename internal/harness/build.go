package harness

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"

	"orderview/internal/view"
)

const (
	IndexFile  = "index.html"
	ReloadPath = "/__livereload"
)

// Entries maps entry names to the components they bundle.
type Entries map[string]view.Component

type Result struct {
	BundlePath string
	IndexPath  string
}

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
</head>
<body>
  <div id="root"></div>
  <script src="/{{.Bundle}}"></script>
{{- if .HotReload}}
  <script>new EventSource("/__livereload").onmessage = function () { location.reload(); };</script>
{{- end}}
</body>
</html>
`))

// Build mounts the configured entry, renders it and writes the bundle plus
// its host page into the output directory, replacing previous contents.
func Build(ctx context.Context, opts Options, entries Entries) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	root, ok := entries[opts.Entry]
	if !ok {
		return nil, fmt.Errorf("unknown entry %q", opts.Entry)
	}

	if m, ok := root.(interface{ Mount(context.Context) error }); ok {
		if err := m.Mount(ctx); err != nil {
			slog.Warn("entry mount failed, bundling current state", "entry", opts.Entry, "error", err)
		}
	}

	var markup bytes.Buffer
	if err := root.Render(&markup); err != nil {
		return nil, fmt.Errorf("render entry %s: %w", opts.Entry, err)
	}

	bundle, err := bundleScript(opts, markup.String())
	if err != nil {
		return nil, err
	}

	var index bytes.Buffer
	err = indexTmpl.Execute(&index, struct {
		Title     string
		Bundle    string
		HotReload bool
	}{
		Title:     opts.Entry,
		Bundle:    opts.Output.Filename,
		HotReload: opts.HotReload,
	})
	if err != nil {
		return nil, fmt.Errorf("render index: %w", err)
	}

	dir := opts.Output.Directory
	if err := cleanDir(dir); err != nil {
		return nil, err
	}

	res := &Result{
		BundlePath: filepath.Join(dir, opts.Output.Filename),
		IndexPath:  filepath.Join(dir, IndexFile),
	}
	if err := os.WriteFile(res.BundlePath, bundle, 0o644); err != nil {
		return nil, fmt.Errorf("write bundle: %w", err)
	}
	if err := os.WriteFile(res.IndexPath, index.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("write index: %w", err)
	}

	slog.Info("bundle written", "entry", opts.Entry, "bundle", res.BundlePath, "bytes", len(bundle))
	return res, nil
}

func bundleScript(opts Options, markup string) ([]byte, error) {
	literal, err := json.Marshal(markup)
	if err != nil {
		return nil, fmt.Errorf("encode markup: %w", err)
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "// entry: %s\n", opts.Entry)
	b.WriteString("(function () {\n")
	b.WriteString("  var root = document.getElementById(\"root\");\n")
	fmt.Fprintf(&b, "  if (root) { root.innerHTML = %s; }\n", literal)
	b.WriteString("})();\n")
	if opts.SourceMaps {
		fmt.Fprintf(&b, "//# sourceURL=orderview:///%s.js\n", opts.Entry)
	}
	return b.Bytes(), nil
}

// cleanDir empties dir, creating it when missing. The directory itself is kept
// so a running watcher stays attached.
func cleanDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read output dir: %w", err)
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return fmt.Errorf("clean output dir: %w", err)
		}
	}
	return nil
}
