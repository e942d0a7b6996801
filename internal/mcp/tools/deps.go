package tools

import (
	"github.com/typeforge/typeforge-mcp/internal/cache"
	"github.com/typeforge/typeforge-mcp/internal/config"
)

// Deps contains all dependencies needed by tool handlers.
type Deps struct {
	Config *config.Config
	Cache  *cache.ResultCache
}
