package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/sierra/internal/metadata"
	"github.com/mesh-intelligence/sierra/pkg/types"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBindings(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    []types.Binding
		wantErr error
	}{
		{
			name:    "yaml keeps dotted type ids",
			file:    "bindings.yaml",
			content: "chart: org.jfree.chart.ChartPanel\nbutton: org.httprpc.sierra.MenuButton\n",
			want: []types.Binding{
				{Tag: "button", Type: "org.httprpc.sierra.MenuButton"},
				{Tag: "chart", Type: "org.jfree.chart.ChartPanel"},
			},
		},
		{
			name:    "json",
			file:    "bindings.json",
			content: `{"gauge": "x.widgets.Gauge"}`,
			want:    []types.Binding{{Tag: "gauge", Type: "x.widgets.Gauge"}},
		},
		{
			name:    "toml",
			file:    "bindings.toml",
			content: "gauge = \"x.widgets.Gauge\"\n",
			want:    []types.Binding{{Tag: "gauge", Type: "x.widgets.Gauge"}},
		},
		{
			name:    "nested value rejected",
			file:    "nested.yaml",
			content: "chart:\n  type: x.Chart\n",
			wantErr: types.ErrCatalogFormat,
		},
		{
			name:    "non-string value rejected",
			file:    "number.yaml",
			content: "chart: 3\n",
			wantErr: types.ErrCatalogFormat,
		},
		{
			name:    "empty value rejected",
			file:    "empty.yaml",
			content: "chart: \"\"\n",
			wantErr: types.ErrCatalogFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), tt.file, tt.content)

			got, err := LoadBindings(path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadBindings_MissingFile(t *testing.T) {
	_, err := LoadBindings(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

const chartCatalog = `
domains:
  - key: chart.Orientation
    constants:
      - name: VERTICAL
      - name: HORIZONTAL
types:
  - id: org.jfree.chart.ChartPanel
    base: javax.swing.JPanel
    container: true
    properties:
      - {name: mouseWheelEnabled, type: boolean}
      - {name: orientation, type: enum, domain: chart.Orientation}
`

func TestNewDirResolver(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "charts/chart.yaml", chartCatalog)
	writeFile(t, dir, "notes.txt", "ignored")

	r, err := NewDirResolver(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"org.jfree.chart.ChartPanel"}, r.TypeIDs())
	assert.Len(t, r.Files(), 1)

	info, err := r.Resolve("org.jfree.chart.ChartPanel")
	require.NoError(t, err)
	assert.True(t, info.Container)
	assert.Len(t, info.Properties, 2)

	d, err := r.Domain("chart.Orientation")
	require.NoError(t, err)
	assert.Equal(t, "VERTICAL", d.Constants[0].Name)

	_, err = r.Resolve("javax.swing.JPanel")
	assert.ErrorIs(t, err, types.ErrUnresolvedType)
}

func TestNewDirResolver_MultipleDirectories(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	writeFile(t, a, "a.yml", "types:\n  - id: x.A\n")
	writeFile(t, b, "b.yaml", "types:\n  - id: x.B\n    base: x.A\n")

	r, err := NewDirResolver(strings.Join([]string{a, b}, string(os.PathListSeparator)))
	require.NoError(t, err)
	assert.Equal(t, []string{"x.A", "x.B"}, r.TypeIDs())
}

func TestNewDirResolver_Errors(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
	}{
		{
			name:  "unknown field",
			files: map[string]string{"bad.yaml": "types:\n  - id: x.A\n    parent: x.B\n"},
		},
		{
			name:  "invalid value type",
			files: map[string]string{"bad.yaml": "types:\n  - id: x.A\n    properties:\n      - {name: p, type: pointer}\n"},
		},
		{
			name:  "enum without domain",
			files: map[string]string{"bad.yaml": "types:\n  - id: x.A\n    properties:\n      - {name: p, type: enum}\n"},
		},
		{
			name: "duplicate type across files",
			files: map[string]string{
				"one.yaml": "types:\n  - id: x.A\n",
				"two.yaml": "types:\n  - id: x.A\n",
			},
		},
		{
			name:  "domain without constants",
			files: map[string]string{"bad.yaml": "domains:\n  - key: x.D\n"},
		},
		{
			name:  "constant name with space",
			files: map[string]string{"bad.yaml": "domains:\n  - key: x.D\n    constants:\n      - {name: FULL SCALE}\n"},
		},
		{
			name:  "constant token with delimiter",
			files: map[string]string{"bad.yaml": "domains:\n  - key: x.D\n    constants:\n      - {name: FULL, token: \"full|scale\"}\n"},
		},
		{
			name:  "property name with space",
			files: map[string]string{"bad.yaml": "types:\n  - id: x.A\n    properties:\n      - {name: max value, type: int}\n"},
		},
		{
			name:  "type identity is the base fragment",
			files: map[string]string{"bad.yaml": "types:\n  - id: org.httprpc.sierra.UILoader\n"},
		},
		{
			name:  "type identity with entity delimiter",
			files: map[string]string{"bad.yaml": "types:\n  - id: \"x.A;\"\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tt.files {
				writeFile(t, dir, name, content)
			}
			_, err := NewDirResolver(dir)
			assert.ErrorIs(t, err, types.ErrCatalogFormat)
		})
	}
}

func TestDecode_EmptyCatalog(t *testing.T) {
	f, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Types)
}

func TestExtend(t *testing.T) {
	dir := t.TempDir()
	catalogs := filepath.Join(dir, "catalogs")
	writeFile(t, catalogs, "chart.yaml", chartCatalog)
	bindings := writeFile(t, dir, "bindings.yaml", "chart: org.jfree.chart.ChartPanel\n")

	base := metadata.Builtin()
	reg, err := Extend(base, bindings, catalogs)
	require.NoError(t, err)

	typeID, ok := reg.TypeOf("chart")
	require.True(t, ok)
	assert.Equal(t, "org.jfree.chart.ChartPanel", typeID)
	_, ok = base.TypeOf("chart")
	assert.False(t, ok)

	h, err := metadata.Collect(reg)
	require.NoError(t, err)
	assert.True(t, h.IsContainer("org.jfree.chart.ChartPanel"))
}

func TestExtend_NoArguments(t *testing.T) {
	base := metadata.Builtin()
	reg, err := Extend(base, "", "")
	require.NoError(t, err)
	assert.Equal(t, base.Tags(), reg.Tags())
}

func TestExtend_UnresolvableBindingFailsAtCollect(t *testing.T) {
	dir := t.TempDir()
	bindings := writeFile(t, dir, "bindings.yaml", "gauge: x.Missing\n")

	reg, err := Extend(metadata.Builtin(), bindings, "")
	require.NoError(t, err)

	_, err = metadata.Collect(reg)
	assert.ErrorIs(t, err, types.ErrUnresolvedType)
}

func TestExtend_InvalidTagName(t *testing.T) {
	dir := t.TempDir()
	for _, content := range []string{
		"my widget: javax.swing.JButton\n",
		"\"wid|get\": javax.swing.JButton\n",
	} {
		path := writeFile(t, dir, "bindings.yaml", content)
		_, err := Extend(metadata.Builtin(), path, "")
		assert.ErrorIs(t, err, types.ErrInvalidBinding, content)
	}
}
