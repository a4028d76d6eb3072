package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// This test builds the stitch-extractor binary and runs it against a real
// Stitch screen, checking both the markdown and the JSON output.
//
// Run with:
//
//	STITCH_API_KEY=<key> STITCH_PROJECT_ID=<project> STITCH_SCREEN_ID=<screen> go test -v -run EndToEnd

func mustGetEnv(t *testing.T, key string) string {
	t.Helper()
	v := os.Getenv(key)
	if v == "" {
		t.Skipf("%s not set, skipping test", key)
	}
	return v
}

// buildBinary compiles the stitch-extractor binary into dir and returns its absolute path.
func buildBinary(t *testing.T, dir string) string {
	t.Helper()

	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		t.Fatalf("failed to resolve repo root: %v", err)
	}

	bin := filepath.Join(dir, "stitch-extractor")
	if runtime.GOOS == "windows" {
		bin += ".exe"
	}

	cmd := exec.Command("go", "build", "-o", bin, "./cmd/stitch-extractor")
	cmd.Dir = repoRoot
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to build binary: %v\n%s", err, out)
	}
	return bin
}

func TestExtractEndToEnd(t *testing.T) {
	mustGetEnv(t, "STITCH_API_KEY")
	projectID := mustGetEnv(t, "STITCH_PROJECT_ID")
	screenID := mustGetEnv(t, "STITCH_SCREEN_ID")

	dir := t.TempDir()
	bin := buildBinary(t, dir)

	outputFile := filepath.Join(dir, "STITCH_DESIGN_CONTEXT.md")
	jsonOutput := filepath.Join(dir, "design-context.json")

	cmd := exec.Command(bin, "extract",
		"--project", projectID,
		"--screen", screenID,
		"--output", outputFile,
		"--json", jsonOutput,
		"--export-assets",
		"--asset-dir", filepath.Join(dir, "assets"),
	)
	out, err := cmd.CombinedOutput()
	t.Logf("CLI output:\n%s", string(out))
	if err != nil {
		t.Fatalf("stitch-extractor failed: %v", err)
	}

	md, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("markdown output not written: %v", err)
	}
	if !strings.HasPrefix(string(md), "# Stitch Design Context - ") {
		t.Errorf("unexpected markdown header: %q", strings.SplitN(string(md), "\n", 2)[0])
	}

	data, err := os.ReadFile(jsonOutput)
	if err != nil {
		t.Fatalf("json output not written: %v", err)
	}
	var dc map[string][]any
	if err := json.Unmarshal(data, &dc); err != nil {
		t.Fatalf("invalid json output: %v", err)
	}
	for _, key := range []string{"colors", "fonts", "spacing", "layouts"} {
		if dc[key] == nil {
			t.Errorf("json output %s = null, want an array", key)
		}
	}
}

func TestLoadConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "api_key: file-key\nquota_project: file-project\nbase_url: https://file.example.com/v1\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("STITCH_API_KEY", "env-key")
	t.Setenv("STITCH_ACCESS_TOKEN", "")
	t.Setenv("STITCH_BASE_URL", "")
	t.Setenv("GOOGLE_CLOUD_PROJECT", "env-project")

	configPath, apiKey, accessToken, quotaProject, baseURL = path, "", "", "flag-project", ""
	t.Cleanup(func() {
		configPath, apiKey, accessToken, quotaProject, baseURL = "", "", "", "", ""
	})

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	if cfg.APIKey != "env-key" {
		t.Errorf("APIKey = %q, want env-key", cfg.APIKey)
	}
	if cfg.QuotaProject != "flag-project" {
		t.Errorf("QuotaProject = %q, want flag-project", cfg.QuotaProject)
	}
	if cfg.BaseURL != "https://file.example.com/v1" {
		t.Errorf("BaseURL = %q, want the file value", cfg.BaseURL)
	}
}
