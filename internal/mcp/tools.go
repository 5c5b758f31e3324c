package mcp

import (
	"context"
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/zx06/vkey/internal/errors"
	"github.com/zx06/vkey/internal/secret"
)

// StoreKeyInput represents the input for the store_key tool
type StoreKeyInput struct {
	Value string `json:"value" jsonschema:"Secret key value to store"`
}

// ToolHandler manages MCP tools
type ToolHandler struct {
	opts secret.Options
}

// NewToolHandler creates a new tool handler. The zero Options value
// targets the default identity in the real OS keyring.
func NewToolHandler(opts secret.Options) *ToolHandler {
	return &ToolHandler{opts: opts}
}

// RegisterTools registers all tools with the MCP server
func (h *ToolHandler) RegisterTools(server *mcp.Server) {
	// store_key tool with explicit schema
	storeSchema := &jsonschema.Schema{
		Type:     "object",
		Required: []string{"value"},
		Properties: map[string]*jsonschema.Schema{
			"value": {
				Type:        "string",
				Description: "Secret key value to store (overwrites any existing key)",
			},
		},
	}
	server.AddTool(&mcp.Tool{
		Name:        "store_key",
		Description: "Store the secret key in the OS keyring",
		InputSchema: storeSchema,
	}, h.storeKeyHandler)

	mcp.AddTool[struct{}, any](server, &mcp.Tool{
		Name:        "load_key",
		Description: "Load the secret key from the OS keyring; reports absence without error",
	}, h.LoadKey)

	mcp.AddTool[struct{}, any](server, &mcp.Tool{
		Name:        "clear_key",
		Description: "Remove the secret key from the OS keyring (no-op if absent)",
	}, h.ClearKey)

	mcp.AddTool[struct{}, any](server, &mcp.Tool{
		Name:        "key_status",
		Description: "Report whether a secret key is stored, without revealing it",
	}, h.KeyStatus)
}

// storeKeyHandler is the raw handler for store_key tool
func (h *ToolHandler) storeKeyHandler(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input StoreKeyInput
	if err := json.Unmarshal(req.Params.Arguments, &input); err != nil {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: h.formatError(errors.Wrap(errors.CodeCfgInvalid, "invalid input", nil, err))},
			},
		}, nil
	}
	result, _, err := h.StoreKey(ctx, req, input)
	return result, err
}

// StoreKey stores the secret key
func (h *ToolHandler) StoreKey(ctx context.Context, req *mcp.CallToolRequest, input StoreKeyInput) (*mcp.CallToolResult, any, error) {
	if input.Value == "" {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: h.formatError(errors.New(errors.CodeCfgInvalid, "value is required", nil))},
			},
		}, nil, nil
	}

	if xe := secret.Store(input.Value, h.opts); xe != nil {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: h.formatError(xe)},
			},
		}, nil, nil
	}

	return h.formatResult(map[string]any{"stored": true})
}

// LoadKey loads the secret key; an absent key is a normal result, not an error
func (h *ToolHandler) LoadKey(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, any, error) {
	val, ok, xe := secret.Load(h.opts)
	if xe != nil {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: h.formatError(xe)},
			},
		}, nil, nil
	}

	if !ok {
		return h.formatResult(map[string]any{"present": false})
	}
	return h.formatResult(map[string]any{"present": true, "value": val})
}

// ClearKey removes the secret key; clearing an absent key succeeds
func (h *ToolHandler) ClearKey(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, any, error) {
	if xe := secret.Clear(h.opts); xe != nil {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: h.formatError(xe)},
			},
		}, nil, nil
	}
	return h.formatResult(map[string]any{"cleared": true})
}

// KeyStatus reports presence without revealing the value
func (h *ToolHandler) KeyStatus(ctx context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, any, error) {
	_, ok, xe := secret.Load(h.opts)
	if xe != nil {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: h.formatError(xe)},
			},
		}, nil, nil
	}
	return h.formatResult(map[string]any{"present": ok})
}

// formatResult wraps tool data in the output envelope and returns it as JSON text content
func (h *ToolHandler) formatResult(data map[string]any) (*mcp.CallToolResult, any, error) {
	output := map[string]any{
		"ok":             true,
		"schema_version": 1,
		"data":           data,
	}
	jsonData, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: h.formatError(errors.Wrap(errors.CodeInternal, "failed to marshal result", nil, err))},
			},
		}, nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(jsonData)},
		},
	}, nil, nil
}

// formatError formats an error as JSON
func (h *ToolHandler) formatError(err error) string {
	var xe *errors.XError
	if err != nil {
		xe = errors.AsOrWrap(err)
	} else {
		xe = errors.New(errors.CodeInternal, "unknown error", nil)
	}
	output := map[string]any{
		"ok":             false,
		"schema_version": 1,
		"error": map[string]any{
			"code":    xe.Code,
			"message": xe.Message,
			"details": xe.Details,
		},
	}
	jsonData, _ := json.MarshalIndent(output, "", "  ")
	return string(jsonData)
}

// CreateServer creates a new MCP server
func CreateServer(version string, opts secret.Options) (*mcp.Server, error) {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "vkey",
		Version: version,
	}, nil)

	handler := NewToolHandler(opts)
	handler.RegisterTools(server)

	return server, nil
}
