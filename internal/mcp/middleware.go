package mcp

import (
	"context"
	"log/slog"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// LoggingMiddleware returns middleware that logs every incoming method call
// with its duration. Tool calls additionally carry the tool name, tying each
// log line to the generation tool that served it; failed generations log the
// pipeline error at error level.
func LoggingMiddleware() sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			start := time.Now()

			result, err := next(ctx, method, req)

			attrs := make([]slog.Attr, 0, 4)
			attrs = append(attrs, slog.String("method", method))
			if call, ok := req.(*sdkmcp.CallToolRequest); ok && call.Params != nil {
				attrs = append(attrs, slog.String("tool", call.Params.Name))
			}
			attrs = append(attrs, slog.Int64("duration_ms", time.Since(start).Milliseconds()))

			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
				slog.LogAttrs(ctx, slog.LevelError, "method call failed", attrs...)
				return result, err
			}

			slog.LogAttrs(ctx, slog.LevelInfo, "method call completed", attrs...)
			return result, err
		}
	}
}
