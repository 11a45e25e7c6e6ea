// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the tool catalog for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ocastel/tooldex/internal/catalog"
	"github.com/ocastel/tooldex/internal/toolservice"
)

// Server wraps the MCP server with catalog tools.
type Server struct {
	mcp *server.MCPServer
	svc *toolservice.Service
}

// New creates a new MCP server with all catalog tools registered.
func New(svc *toolservice.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"Tooldex",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("search_tools",
		mcp.WithDescription("Search the tool catalog. All filters combine with AND; "+
			"matching is case-insensitive substring containment."),
		mcp.WithString("query", mcp.Description("Free-text search across name, overview, description, features, and use cases")),
		mcp.WithString("category", mcp.Description("Category filter (substring)")),
		mcp.WithString("tags", mcp.Description("Comma-separated tags; a tool matches if any requested tag matches any of its tags")),
		mcp.WithString("audience", mcp.Description("Target audience filter (substring)")),
		mcp.WithNumber("limit", mcp.Description("Maximum results (default 20)")),
	), s.searchTools)

	s.mcp.AddTool(mcp.NewTool("get_tool",
		mcp.WithDescription("Read the full record of one catalog entry by its slug."),
		mcp.WithString("slug", mcp.Required(), mcp.Description("URL-safe tool identifier (e.g. github-copilot)")),
	), s.getTool)

	s.mcp.AddTool(mcp.NewTool("list_categories",
		mcp.WithDescription("List every category with its tool count, most used first."),
	), s.listCategories)

	s.mcp.AddTool(mcp.NewTool("list_tags",
		mcp.WithDescription("List the most used tags with their counts."),
		mcp.WithNumber("limit", mcp.Description("Maximum tags to return (default 20)")),
	), s.listTags)

	s.mcp.AddTool(mcp.NewTool("get_stats",
		mcp.WithDescription("Return summary counts for the catalog: tools, categories, tags, "+
			"tools with links, tools with images."),
	), s.getStats)

	// Resource: the ingestion source format.
	s.mcp.AddResource(
		mcp.NewResource("tooldex://csv-format", "Catalog Source Format",
			mcp.WithResourceDescription("The delimited source format the catalog is ingested from."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readSourceFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) searchTools(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filters := catalog.Filters{
		Search:   req.GetString("query", ""),
		Category: req.GetString("category", ""),
		Audience: req.GetString("audience", ""),
	}
	if raw := req.GetString("tags", ""); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				filters.Tags = append(filters.Tags, t)
			}
		}
	}
	limit := req.GetInt("limit", 20)
	if limit <= 0 {
		limit = 20
	}

	page, err := s.svc.ListTools(ctx, filters, 1, limit)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(page, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getTool(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slug, err := req.RequireString("slug")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tool, err := s.svc.GetTool(ctx, slug)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", slug)), nil
	}
	out, _ := json.MarshalIndent(tool, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) listCategories(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cats := s.svc.Categories(ctx)
	lines := make([]string, len(cats))
	for i, c := range cats {
		lines[i] = fmt.Sprintf("%s (%d)", c.Name, c.Count)
	}
	if len(lines) == 0 {
		return mcp.NewToolResultText("no categories"), nil
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func (s *Server) listTags(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tags := s.svc.PopularTags(ctx, req.GetInt("limit", 0))
	lines := make([]string, len(tags))
	for i, tc := range tags {
		lines[i] = fmt.Sprintf("%s (%d)", tc.Tag, tc.Count)
	}
	if len(lines) == 0 {
		return mcp.NewToolResultText("no tags"), nil
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func (s *Server) getStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, _ := json.MarshalIndent(s.svc.Stats(ctx), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readSourceFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "tooldex://csv-format",
			MIMEType: "text/markdown",
			Text:     SourceFormatContract,
		},
	}, nil
}
