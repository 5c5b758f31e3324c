package app

import (
	"github.com/zx06/vkey/internal/errors"
	"github.com/zx06/vkey/internal/output"
	"github.com/zx06/vkey/internal/spec"
)

type App struct {
	Version string
	Commit  string
	Date    string
}

func New(version, commit, date string) App {
	return App{Version: version, Commit: commit, Date: date}
}

func (a App) BuildSpec() spec.Spec {
	globalFlags := []spec.FlagSpec{
		{Name: "config", Default: "", Description: "Config file path (YAML); default: ./vkey.yaml or $HOME/.config/vkey/vkey.yaml"},
		{Name: "format", Shorthand: "f", Env: "VKEY_FORMAT", Default: "auto", Description: "Output format: json|yaml|text|auto"},
	}
	return spec.Spec{
		SchemaVersion: output.SchemaVersion,
		Commands: []spec.CommandSpec{
			{
				Name:        "store",
				Description: "Store the secret key in the OS keyring (overwrites any existing key)",
				Flags:       globalFlags,
			},
			{
				Name:        "load",
				Description: "Load the secret key from the OS keyring",
				Flags:       globalFlags,
			},
			{
				Name:        "clear",
				Description: "Remove the secret key from the OS keyring (no-op if absent)",
				Flags:       globalFlags,
			},
			{
				Name:        "status",
				Description: "Report whether a secret key is stored, without revealing it",
				Flags:       globalFlags,
			},
			{
				Name:        "spec",
				Description: "Export tool spec for AI/agents",
				Flags:       globalFlags,
			},
			{
				Name:        "version",
				Description: "Print version information",
				Flags:       globalFlags,
			},
			{
				Name:        "mcp server",
				Description: "Start MCP server for AI assistant integration",
				Flags: append(globalFlags,
					spec.FlagSpec{Name: "transport", Env: "VKEY_MCP_TRANSPORT", Default: "stdio", Description: "MCP transport: stdio|streamable_http"},
					spec.FlagSpec{Name: "http-addr", Env: "VKEY_MCP_HTTP_ADDR", Default: "127.0.0.1:8787", Description: "Streamable HTTP listen address"},
					spec.FlagSpec{Name: "http-auth-token", Env: "VKEY_MCP_HTTP_AUTH_TOKEN", Default: "", Description: "Streamable HTTP auth token (required for streamable_http)"},
				),
			},
		},
		ErrorCodes: errors.AllCodes(),
	}
}

type VersionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
}

func (a App) VersionInfo() VersionInfo {
	return VersionInfo{Version: a.Version, Commit: a.Commit, Date: a.Date}
}
