package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	stitchextractor "github.com/kataras/stitch-extractor"
	"github.com/kataras/stitch-extractor/pkg/formatter"
	"github.com/kataras/stitch-extractor/pkg/stitch"
)

func (s *Server) handleListProjects(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resp, err := s.api.ListProjects(ctx)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("list projects", err), nil
	}
	return jsonResult(resp.Projects)
}

func (s *Server) handleGetProject(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectID, err := req.RequireString("project_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	project, err := s.api.GetProject(ctx, projectID)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("get project", err), nil
	}
	return jsonResult(project)
}

func (s *Server) handleListScreens(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectID, err := req.RequireString("project_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resp, err := s.api.ListScreens(ctx, projectID)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("list screens", err), nil
	}
	return jsonResult(resp.Screens)
}

func (s *Server) handleGetScreen(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectID, screenID, errResult := screenArgs(req)
	if errResult != nil {
		return errResult, nil
	}

	screen, err := s.api.GetScreen(ctx, projectID, screenID)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("get screen", err), nil
	}
	return jsonResult(screen)
}

func (s *Server) handleGenerateScreen(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectID, err := req.RequireString("project_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	prompt, err := req.RequireString("prompt")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resp, err := s.api.GenerateScreen(ctx, projectID, stitch.GenerateRequest{
		Prompt:     prompt,
		DeviceType: req.GetString("device_type", ""),
		ModelID:    req.GetString("model_id", ""),
	})
	if err != nil {
		return mcp.NewToolResultErrorFromErr("generate screen", err), nil
	}
	return jsonResult(resp.Screens)
}

func (s *Server) handleExtractDesignContext(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectID, screenID, errResult := screenArgs(req)
	if errResult != nil {
		return errResult, nil
	}

	_, dc, err := stitchextractor.ExtractDesignContext(ctx, s.api, s.fetcher, projectID, screenID, s.logger)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("extract design context", err), nil
	}
	return jsonResult(dc)
}

func (s *Server) handleGetDesignMarkdown(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectID, screenID, errResult := screenArgs(req)
	if errResult != nil {
		return errResult, nil
	}

	screen, dc, err := stitchextractor.ExtractDesignContext(ctx, s.api, s.fetcher, projectID, screenID, s.logger)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("extract design context", err), nil
	}

	title := screen.Title
	if title == "" {
		title = screen.ID()
	}
	return mcp.NewToolResultText(formatter.ToMarkdown(dc, title)), nil
}

func screenArgs(req mcp.CallToolRequest) (projectID, screenID string, errResult *mcp.CallToolResult) {
	projectID, err := req.RequireString("project_id")
	if err != nil {
		return "", "", mcp.NewToolResultError(err.Error())
	}
	screenID, err = req.RequireString("screen_id")
	if err != nil {
		return "", "", mcp.NewToolResultError(err.Error())
	}
	return projectID, screenID, nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
