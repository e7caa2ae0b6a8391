package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/leetpulse/dskit/pkg/errors"
	"github.com/leetpulse/dskit/pkg/model"
)

const (
	listDoc = `{"adjacency": [[1], [2], []], "labels": ["a", "b", "c"], "pointers": [{"name": "head", "index": 0}]}`
	treeDoc = `root: a
nodes:
  - {id: a, label: "8", left: b, right: c}
  - {id: b, label: "3"}
  - {id: c, label: "10"}
`
)

// testCLI returns a CLI whose output is captured and whose config points
// at a file cache inside a temp dir.
func testCLI(t *testing.T, cacheSection string) (*CLI, *bytes.Buffer, []string) {
	t.Helper()
	dir := t.TempDir()
	if cacheSection == "" {
		cacheSection = "[cache]\nbackend = \"file\"\ndir = " + quote(filepath.Join(dir, "cache")) + "\n"
	}
	cfgPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(cfgPath, []byte(cacheSection), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, logs bytes.Buffer
	c := New(&logs, LogInfo)
	c.Out = &out
	return c, &out, []string{"--config", cfgPath}
}

func quote(s string) string { return `"` + strings.ReplaceAll(s, `\`, `\\`) + `"` }

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, c *CLI, global []string, args ...string) error {
	t.Helper()
	return c.Execute(context.Background(), append(slices.Clone(global), args...))
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"svg", []string{"svg"}},
		{"svg, dot ,json", []string{"svg", "dot", "json"}},
		{"svg,,txt,", []string{"svg", "txt"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseFormats(tt.in); !slices.Equal(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, input, want string
	}{
		{"", "list.yaml", "list"},
		{"", "dir/tree.json", "dir/tree"},
		{"", "-", "out"},
		{"out/list", "list.yaml", "out/list"},
		{"out/list.svg", "list.yaml", "out/list"},
		{"out/list.gv.svg", "list.yaml", "out/list"},
		{"out/list.layout.json", "list.yaml", "out/list"},
	}
	for _, tt := range tests {
		t.Run(tt.output+"|"+tt.input, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestOutputExt(t *testing.T) {
	if got := outputExt("json"); got != ".layout.json" {
		t.Errorf("outputExt(json) = %q", got)
	}
	if got := outputExt("svg"); got != ".svg" {
		t.Errorf("outputExt(svg) = %q", got)
	}
}

func TestLayoutBase(t *testing.T) {
	tests := map[string]string{
		"list.layout.json": "list",
		"dir/list.json":    "dir/list",
		"list":             "list",
	}
	for in, want := range tests {
		if got := layoutBase(in); got != want {
			t.Errorf("layoutBase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLayoutCommand(t *testing.T) {
	c, out, global := testCLI(t, "")
	input := writeFile(t, "list.json", listDoc)

	if err := run(t, c, global, "layout", "graph", input, "--sequential-ids"); err != nil {
		t.Fatalf("layout graph: %v", err)
	}

	path := strings.TrimSuffix(input, ".json") + ".layout.json"
	l, err := model.ReadLayoutFile(path)
	if err != nil {
		t.Fatalf("read layout: %v", err)
	}
	if l.VizType != model.KindGraph || len(l.Nodes) != 3 || len(l.Edges) != 2 {
		t.Errorf("layout = kind %q, %d nodes, %d edges", l.VizType, len(l.Nodes), len(l.Edges))
	}
	if !strings.Contains(out.String(), "Layout complete") || !strings.Contains(out.String(), "dskit visualize") {
		t.Errorf("output = %q", out.String())
	}
}

func TestLayoutKindMismatch(t *testing.T) {
	c, _, global := testCLI(t, "")
	input := writeFile(t, "tree.yaml", treeDoc)

	err := run(t, c, global, "layout", "graph", input)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("error = %v, want INVALID_INPUT", err)
	}
}

func TestLayoutRejectsExplicitZero(t *testing.T) {
	c, _, global := testCLI(t, "")
	input := writeFile(t, "list.json", listDoc)

	for _, flag := range []string{"--iterations=0", "--width=0", "--node-size=0", "--level-spacing=0"} {
		t.Run(flag, func(t *testing.T) {
			err := run(t, c, global, "layout", "graph", input, flag)
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("error = %v, want INVALID_INPUT", err)
			}
		})
	}

	if err := run(t, c, global, "layout", "graph", input, "--height=0"); err != nil {
		t.Errorf("--height=0: %v", err)
	}
}

func TestRenderCommand(t *testing.T) {
	c, out, global := testCLI(t, "")
	input := writeFile(t, "tree.yaml", treeDoc)

	if err := run(t, c, global, "render", input, "-f", "svg,dot"); err != nil {
		t.Fatalf("render: %v", err)
	}

	base := strings.TrimSuffix(input, ".yaml")
	for _, ext := range []string{".svg", ".dot"} {
		data, err := os.ReadFile(base + ext)
		if err != nil {
			t.Fatalf("read %s: %v", ext, err)
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", ext)
		}
	}
	if !strings.Contains(out.String(), "Render complete") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRenderToStdout(t *testing.T) {
	c, out, global := testCLI(t, "")
	input := writeFile(t, "list.json", listDoc)

	if err := run(t, c, global, "render", input, "-f", "dot", "-o", "-"); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(out.String()), "digraph") {
		t.Errorf("stdout does not hold DOT: %q", out.String())
	}

	err := run(t, c, global, "render", input, "-f", "svg,dot", "-o", "-")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("two formats to stdout: error = %v, want INVALID_INPUT", err)
	}
}

func TestRenderInvalidFormat(t *testing.T) {
	c, _, global := testCLI(t, "")
	input := writeFile(t, "list.json", listDoc)

	if err := run(t, c, global, "render", input, "-f", "png"); err == nil {
		t.Fatal("render -f png succeeded")
	}
}

func TestVisualizeCommand(t *testing.T) {
	c, _, global := testCLI(t, "")
	input := writeFile(t, "list.json", listDoc)

	if err := run(t, c, global, "layout", "graph", input); err != nil {
		t.Fatalf("layout: %v", err)
	}
	layoutPath := strings.TrimSuffix(input, ".json") + ".layout.json"
	if err := run(t, c, global, "visualize", layoutPath, "-f", "svg"); err != nil {
		t.Fatalf("visualize: %v", err)
	}

	data, err := os.ReadFile(strings.TrimSuffix(input, ".json") + ".svg")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Error("visualize output is not SVG")
	}
}

func TestValidateCommand(t *testing.T) {
	c, out, global := testCLI(t, "")
	good := writeFile(t, "good.json", listDoc)
	bad := writeFile(t, "bad.json", `{"adjacency": [[5]]}`)

	if err := run(t, c, global, "validate", good); err != nil {
		t.Fatalf("validate good: %v", err)
	}
	if !strings.Contains(out.String(), "valid graph document") {
		t.Errorf("output = %q", out.String())
	}

	out.Reset()
	err := run(t, c, global, "validate", good, bad)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("validate bad: error = %v, want INVALID_INPUT", err)
	}
	if !strings.Contains(err.Error(), "1 of 2") {
		t.Errorf("error = %q", err)
	}
	if !strings.Contains(out.String(), bad) {
		t.Errorf("output does not name the bad file: %q", out.String())
	}
}

func TestPaletteCommand(t *testing.T) {
	c, out, global := testCLI(t, "")

	if err := run(t, c, global, "palette"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "SLOT") {
		t.Errorf("slot table = %q", out.String())
	}

	out.Reset()
	if err := run(t, c, global, "palette", "head", "tail"); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"NAME", "head", "tail"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("name table lacks %q: %q", name, out.String())
		}
	}
}

func TestPlayList(t *testing.T) {
	c, out, global := testCLI(t, "")

	if err := run(t, c, global, "play", "--list"); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"button", "toggle", "selection", "alert"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("list lacks %q: %q", name, out.String())
		}
	}
}

func TestCacheCommands(t *testing.T) {
	c, out, global := testCLI(t, "")
	input := writeFile(t, "list.json", listDoc)

	if err := run(t, c, global, "cache", "path"); err != nil {
		t.Fatal(err)
	}
	dir := strings.TrimSpace(out.String())
	if filepath.Base(dir) != "cache" {
		t.Fatalf("cache path = %q", dir)
	}

	if err := run(t, c, global, "layout", "graph", input); err != nil {
		t.Fatal(err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) == 0 {
		t.Fatal("layout left the cache empty")
	}

	out.Reset()
	if err := run(t, c, global, "cache", "clear"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Cleared the file cache") {
		t.Errorf("output = %q", out.String())
	}
}

func TestCacheDisabled(t *testing.T) {
	c, out, global := testCLI(t, "[cache]\nbackend = \"none\"\n")

	if err := run(t, c, global, "cache", "path"); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out.String()); got != "(disabled)" {
		t.Errorf("cache path = %q", got)
	}
}

func TestInvalidConfig(t *testing.T) {
	c, _, global := testCLI(t, "[layout]\nnode_sise = 3\n")

	err := run(t, c, global, "palette")
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG", err)
	}
}
