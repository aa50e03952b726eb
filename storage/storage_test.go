package storage

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/user-none/crtfx/crt"
)

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
		wantErr  bool
	}{
		{"crt.json", FormatJSON, false},
		{"dir/crt.JSON", FormatJSON, false},
		{"crt.yaml", FormatYAML, false},
		{"crt.yml", FormatYAML, false},
		{"crt.toml", FormatTOML, false},
		{"crt.ini", 0, true},
		{"crt", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			got, err := FormatForPath(tc.path)
			if (err != nil) != tc.wantErr {
				t.Fatalf("FormatForPath(%q) error = %v, wantErr %v", tc.path, err, tc.wantErr)
			}
			if err == nil && got != tc.expected {
				t.Errorf("FormatForPath(%q) = %d, want %d", tc.path, got, tc.expected)
			}
		})
	}
}

func TestDecodePartialOptions(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{"json", FormatJSON, `{"curvature": 0.3, "noise": 0.0}`},
		{"yaml", FormatYAML, "curvature: 0.3\nnoise: 0.0\n"},
		{"toml", FormatTOML, "curvature = 0.3\nnoise = 0.0\n"},
	}

	want := crt.Defaults()
	want.Curvature = 0.3

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts, err := DecodeOptions([]byte(tc.data), tc.format)
			if err != nil {
				t.Fatalf("DecodeOptions: %v", err)
			}
			if opts.ScanlineIntensity != nil {
				t.Error("absent key should stay nil")
			}
			if opts.Noise == nil || *opts.Noise != 0 {
				t.Error("explicit zero should be present")
			}
			if got := crt.Merge(opts); got != want {
				t.Errorf("Merge = %+v, want %+v", got, want)
			}
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML, FormatTOML} {
		if _, err := DecodeOptions([]byte("curvature: [1, 2"), format); err == nil {
			t.Errorf("format %d: expected parse error", format)
		}
	}
	if _, err := DecodeOptions([]byte("{}"), Format(99)); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	full := crt.Defaults()
	full.WobbleAmp = 0.002
	full.Noise = 0.1

	for _, name := range []string{"crt.json", "crt.yaml", "crt.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, "nested", name)
			if err := SaveOptions(path, full.Options()); err != nil {
				t.Fatalf("SaveOptions: %v", err)
			}
			if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
				t.Error("temp file left behind")
			}

			opts, err := LoadOptions(path)
			if err != nil {
				t.Fatalf("LoadOptions: %v", err)
			}
			if got := crt.Merge(opts); got != full {
				t.Errorf("round trip = %+v, want %+v", got, full)
			}
		})
	}
}

func TestSaveOmitsUnsetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crt.json")
	if err := SaveOptions(path, &crt.Options{Gamma: crt.Float(1.1)}); err != nil {
		t.Fatalf("SaveOptions: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "{\n  \"gamma\": 1.1\n}"
	if string(data) != want {
		t.Errorf("file = %q, want %q", data, want)
	}
}

func TestLoadOptionsOrDefault(t *testing.T) {
	opts, err := LoadOptionsOrDefault(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadOptionsOrDefault: %v", err)
	}
	if crt.Merge(opts) != crt.Defaults() {
		t.Errorf("missing file should give defaults, got %+v", crt.Merge(opts))
	}
}

func TestLoadOptionsErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadOptions(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOptions(bad); err == nil {
		t.Error("expected error for corrupted file")
	}

	if err := SaveOptions(filepath.Join(dir, "crt.txt"), nil); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestGetBaseDirXDG(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("XDG layout only applies on Linux and other Unix-like systems")
	}
	t.Setenv(DataDirEnv, "")
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	Init("crtfx-test")
	defer Init("crtfx")

	dir, err := GetBaseDir()
	if err != nil {
		t.Fatalf("GetBaseDir: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg", "crtfx-test") {
		t.Errorf("GetBaseDir() = %q", dir)
	}

	path, err := GetOptionsPath()
	if err != nil {
		t.Fatalf("GetOptionsPath: %v", err)
	}
	if filepath.Base(path) != "crt.json" {
		t.Errorf("GetOptionsPath() = %q", path)
	}
}

func TestGetBaseDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(DataDirEnv, dir)

	got, err := GetBaseDir()
	if err != nil {
		t.Fatalf("GetBaseDir: %v", err)
	}
	if got != dir {
		t.Errorf("GetBaseDir() = %q, want %q", got, dir)
	}

	shots, err := GetScreenshotDir()
	if err != nil {
		t.Fatalf("GetScreenshotDir: %v", err)
	}
	if shots != filepath.Join(dir, "screenshots") {
		t.Errorf("GetScreenshotDir() = %q", shots)
	}
}
