// Package mcpserver exposes the Stitch API and the design context extraction as MCP tools.
package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	stitchextractor "github.com/kataras/stitch-extractor"
	"github.com/kataras/stitch-extractor/pkg/downloader"
	"github.com/kataras/stitch-extractor/pkg/stitch"
)

// API is the subset of the Stitch client the tools call. *stitch.Client implements it.
type API interface {
	ListProjects(ctx context.Context) (*stitch.ProjectsResponse, error)
	GetProject(ctx context.Context, projectID string) (*stitch.Project, error)
	ListScreens(ctx context.Context, projectID string) (*stitch.ScreensResponse, error)
	GetScreen(ctx context.Context, projectID, screenID string) (*stitch.Screen, error)
	GenerateScreen(ctx context.Context, projectID string, req stitch.GenerateRequest) (*stitch.GenerateResponse, error)
	Download(ctx context.Context, downloadURL string) ([]byte, error)
}

// Server implements the MCP server, exposing Stitch project, screen and design context tools.
type Server struct {
	mcpServer *server.MCPServer
	api       API
	fetcher   *downloader.Fetcher
	logger    stitchextractor.Logger // may be nil
}

// NewServer creates a new MCP server backed by api. cacheSize bounds the number of
// downloaded code bodies kept in memory. When logger is non-nil every tool call is
// reported through it.
func NewServer(api API, cacheSize int, logger stitchextractor.Logger) *Server {
	s := &Server{
		api:     api,
		fetcher: downloader.New(api, cacheSize),
		logger:  logger,
	}

	opts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	}
	if logger != nil {
		opts = append(opts, server.WithToolHandlerMiddleware(s.loggingMiddleware()))
	}

	s.mcpServer = server.NewMCPServer("stitch-extractor", stitch.Version, opts...)

	s.mcpServer.AddTools(
		server.ServerTool{Tool: listProjectsTool(), Handler: s.handleListProjects},
		server.ServerTool{Tool: getProjectTool(), Handler: s.handleGetProject},
		server.ServerTool{Tool: listScreensTool(), Handler: s.handleListScreens},
		server.ServerTool{Tool: getScreenTool(), Handler: s.handleGetScreen},
		server.ServerTool{Tool: generateScreenTool(), Handler: s.handleGenerateScreen},
		server.ServerTool{Tool: extractDesignContextTool(), Handler: s.handleExtractDesignContext},
		server.ServerTool{Tool: getDesignMarkdownTool(), Handler: s.handleGetDesignMarkdown},
	)

	return s
}

// MCPServer returns the underlying mcp-go server, e.g. to serve it over another transport.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
