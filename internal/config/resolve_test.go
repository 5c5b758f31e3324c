package config

import (
	"testing"
)

func TestResolve_DefaultFormat(t *testing.T) {
	workDir := t.TempDir()
	homeDir := t.TempDir()

	r, xe := Resolve(Options{WorkDir: workDir, HomeDir: homeDir})
	if xe != nil {
		t.Fatalf("Resolve failed: %v", xe)
	}
	if r.Format != "auto" {
		t.Errorf("format = %q, want auto", r.Format)
	}
}

func TestResolve_Precedence(t *testing.T) {
	workDir := t.TempDir()
	homeDir := t.TempDir()
	writeConfig(t, workDir, "vkey.yaml", "format: yaml\n")

	// Config only
	r, xe := Resolve(Options{WorkDir: workDir, HomeDir: homeDir})
	if xe != nil {
		t.Fatalf("Resolve failed: %v", xe)
	}
	if r.Format != "yaml" {
		t.Errorf("format = %q, want yaml (config)", r.Format)
	}

	// ENV > Config
	r, xe = Resolve(Options{WorkDir: workDir, HomeDir: homeDir, EnvFormat: "json"})
	if xe != nil {
		t.Fatalf("Resolve failed: %v", xe)
	}
	if r.Format != "json" {
		t.Errorf("format = %q, want json (env wins)", r.Format)
	}

	// CLI > ENV > Config
	r, xe = Resolve(Options{
		WorkDir:      workDir,
		HomeDir:      homeDir,
		EnvFormat:    "json",
		CLIFormat:    "text",
		CLIFormatSet: true,
	})
	if xe != nil {
		t.Fatalf("Resolve failed: %v", xe)
	}
	if r.Format != "text" {
		t.Errorf("format = %q, want text (cli wins)", r.Format)
	}
}

func TestResolve_CLISetButEmptyStillWins(t *testing.T) {
	workDir := t.TempDir()
	homeDir := t.TempDir()

	// --format 显式传空：按 CLI 值处理，不回落
	r, xe := Resolve(Options{WorkDir: workDir, HomeDir: homeDir, EnvFormat: "json", CLIFormat: "", CLIFormatSet: true})
	if xe != nil {
		t.Fatalf("Resolve failed: %v", xe)
	}
	if r.Format != "" {
		t.Errorf("format = %q, want empty (cli explicit)", r.Format)
	}
}

func TestResolve_ConfigPathReported(t *testing.T) {
	workDir := t.TempDir()
	homeDir := t.TempDir()
	path := writeConfig(t, workDir, "vkey.yaml", "format: json\n")

	r, xe := Resolve(Options{WorkDir: workDir, HomeDir: homeDir})
	if xe != nil {
		t.Fatalf("Resolve failed: %v", xe)
	}
	if r.ConfigPath != path {
		t.Errorf("config path = %q, want %q", r.ConfigPath, path)
	}
}
