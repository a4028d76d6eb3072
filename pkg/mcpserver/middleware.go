package mcpserver

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// loggingMiddleware returns a ToolHandlerMiddleware that reports every tool call
// through the server's logger. It must only be installed when the logger is non-nil.
func (s *Server) loggingMiddleware() server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			start := time.Now()
			result, err := next(ctx, req)
			elapsed := time.Since(start).Milliseconds()

			switch {
			case err != nil:
				s.logger.Errorf("tool %s %v failed after %dms: %v", req.Params.Name, sanitizeParams(req.GetArguments()), elapsed, err)
			case result != nil && result.IsError:
				s.logger.Warnf("tool %s %v returned an error result after %dms", req.Params.Name, sanitizeParams(req.GetArguments()), elapsed)
			default:
				s.logger.Infof("tool %s %v done in %dms (%d bytes)", req.Params.Name, sanitizeParams(req.GetArguments()), elapsed, responseBytes(result))
			}

			return result, err
		}
	}
}

// sanitizeParams returns a copy of args safe for logging. String values longer than
// 64 bytes, such as generation prompts, are replaced by a "{key}_len" entry.
func sanitizeParams(args map[string]any) map[string]any {
	const shortStringMax = 64
	out := make(map[string]any, len(args))
	for k, v := range args {
		if str, ok := v.(string); ok && len(str) > shortStringMax {
			out[k+"_len"] = len(str)
		} else {
			out[k] = v
		}
	}
	return out
}

// responseBytes returns the serialized size of a result's content, 0 on nil or error.
func responseBytes(result *mcp.CallToolResult) int {
	if result == nil {
		return 0
	}
	b, err := json.Marshal(result.Content)
	if err != nil {
		return 0
	}
	return len(b)
}
