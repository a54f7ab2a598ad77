package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mark3labs/htmlpack/internal/app"
	"github.com/mark3labs/htmlpack/internal/output"
	"github.com/mark3labs/htmlpack/internal/packager"
)

// appToolOptions are the parameters shared by every tool describing an app.
func appToolOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("name", mcp.Required(),
			mcp.Description("App name; used as the document title and the file name"),
		),
		mcp.WithString("source_type", mcp.Required(),
			mcp.Description("Where the content comes from"),
			mcp.Enum("url", "html", "multipage"),
		),
		mcp.WithString("url",
			mcp.Description("Absolute URL to wrap in a full-page iframe (source_type=url)"),
		),
		mcp.WithString("html",
			mcp.Description("Complete HTML document (source_type=html)"),
		),
		mcp.WithArray("files",
			mcp.Description("Bundle files (source_type=multipage); one must be named index.html"),
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":    map[string]any{"type": "string", "description": "File name"},
					"content": map[string]any{"type": "string", "description": "File text"},
				},
				"required": []string{"name"},
			}),
		),
		mcp.WithString("logo",
			mcp.Description("Optional logo as a data: URI"),
		),
		mcp.WithBoolean("ads_enabled",
			mcp.Description("Inject ad_script into the exported document"),
		),
		mcp.WithString("ad_script",
			mcp.Description("Markup inserted before </head>"),
		),
	}
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("validate-app",
			append([]mcp.ToolOption{
				mcp.WithDescription("Check which wizard steps an app description satisfies"),
			}, appToolOptions()...)...,
		),
		s.handleValidate,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("export-app",
			append([]mcp.ToolOption{
				mcp.WithDescription("Package an app into a single HTML document"),
				mcp.WithBoolean("write",
					mcp.Description("Write the file to disk instead of returning its content"),
				),
				mcp.WithString("output_dir",
					mcp.Description("Directory to write into when write=true"),
				),
			}, appToolOptions()...)...,
		),
		s.handleExport,
	)
}

// stateFromArgs replays tool arguments onto a fresh session.
func stateFromArgs(args map[string]any) (*app.State, error) {
	if args == nil {
		return nil, errors.New("no arguments provided")
	}

	s := app.New()
	if name, ok := args["name"].(string); ok {
		s.SetAppName(name)
	}
	if logo, ok := args["logo"].(string); ok {
		s.SetLogo(logo)
	}

	rawType, _ := args["source_type"].(string)
	st, err := app.ParseSourceType(rawType)
	if err != nil {
		return nil, err
	}
	s.SelectSourceType(st)

	switch st {
	case app.SourceURL:
		u, _ := args["url"].(string)
		s.SetURL(u)
	case app.SourceHTML:
		h, _ := args["html"].(string)
		s.SetHTML(h)
	case app.SourceMultiPage:
		files, err := filesFromArgs(args["files"])
		if err != nil {
			return nil, err
		}
		s.SetFiles(files)
	}

	if enabled, ok := args["ads_enabled"].(bool); ok {
		s.SetAds(enabled)
	}
	if script, ok := args["ad_script"].(string); ok {
		s.SetAdScript(script)
	}
	return s, nil
}

func filesFromArgs(raw any) ([]app.BundleFile, error) {
	if raw == nil {
		return nil, nil
	}
	// mcp-go decodes JSON arrays as []any
	items, ok := raw.([]any)
	if !ok {
		return nil, errors.New("'files' is not an array")
	}
	files := make([]app.BundleFile, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("file %d is not an object", i)
		}
		name, _ := obj["name"].(string)
		if name == "" {
			return nil, fmt.Errorf("file %d missing or empty 'name' field", i)
		}
		content, _ := obj["content"].(string)
		files = append(files, app.MemFile(name, content))
	}
	return files, nil
}

type validateResult struct {
	app.Validity
	Complete bool `json:"complete"`
}

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	st, err := stateFromArgs(request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	v := st.Validity()
	data, err := json.Marshal(validateResult{Validity: v, Complete: v.Complete()})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

type exportResult struct {
	Filename  string `json:"filename"`
	MediaType string `json:"media_type"`
	Path      string `json:"path,omitempty"`
	Content   string `json:"content,omitempty"`
	Bytes     int    `json:"bytes"`
}

func (s *Server) handleExport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	st, err := stateFromArgs(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	art, err := s.cfg.Packager.Export(ctx, st)
	if err != nil {
		if errors.Is(err, packager.ErrMissingIndexFile) {
			return mcp.NewToolResultError("export failed: " + err.Error() + "; include an index.html file"), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("export failed: %v", err)), nil
	}

	res := exportResult{Filename: art.Filename, MediaType: art.MediaType, Bytes: len(art.Content)}
	if write, _ := args["write"].(bool); write {
		dir, _ := args["output_dir"].(string)
		if dir == "" {
			dir = s.cfg.OutputDir
		}
		path, err := output.Write(s.cfg.Fs, dir, art, s.cfg.Overwrite)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		res.Path = path
	} else {
		res.Content = string(art.Content)
	}

	data, err := json.Marshal(res)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
