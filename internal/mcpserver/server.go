// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes the mission story catalog for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/smilesofhope/hopecms/internal/admin"
	"github.com/smilesofhope/hopecms/internal/content"
	"github.com/smilesofhope/hopecms/internal/models"
)

// Server wraps the MCP server with content tools.
type Server struct {
	mcp  *server.MCPServer
	repo *content.Repository
	mgr  *admin.Manager
}

// New creates an MCP server with all content tools registered.
func New(repo *content.Repository, mgr *admin.Manager) *Server {
	s := &Server{repo: repo, mgr: mgr}

	s.mcp = server.NewMCPServer(
		"SmilesOfHope",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_posts",
		mcp.WithDescription("List every mission story with id, title, date, and category."),
	), s.listPosts)

	s.mcp.AddTool(mcp.NewTool("read_post",
		mcp.WithDescription("Read a single mission story as JSON."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Post id")),
	), s.readPost)

	s.mcp.AddTool(mcp.NewTool("publish_post",
		mcp.WithDescription("Publish a mission story. The JSON payload MUST follow the "+
			"story format contract; read it first via the get_story_contract tool or "+
			"the smiles://story-format resource. Passing an existing id replaces that "+
			"story in place, otherwise a new story is prepended."),
		mcp.WithString("post", mcp.Required(), mcp.Description("Story JSON following the format contract")),
	), s.publishPost)

	s.mcp.AddTool(mcp.NewTool("delete_post",
		mcp.WithDescription("Delete a mission story by id. Irreversible."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Post id")),
	), s.deletePost)

	s.mcp.AddTool(mcp.NewTool("get_story_contract",
		mcp.WithDescription("Returns the canonical mission story format contract. "+
			"Call this before publishing stories to ensure correct structure."),
	), s.getStoryContract)

	s.mcp.AddResource(mcp.NewResource(
		"smiles://story-format",
		"Mission story format contract",
		mcp.WithMIMEType("text/markdown"),
	), s.readStoryFormatResource)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

func (s *Server) listPosts(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var lines []string
	for _, p := range s.repo.List() {
		lines = append(lines, fmt.Sprintf("%s\t%s\t%s\t%s", p.ID, p.Date, p.Category, p.Title))
	}
	if len(lines) == 0 {
		return mcp.NewToolResultText("no posts"), nil
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func (s *Server) readPost(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	post, ok := s.repo.Get(id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("post %q not found", id)), nil
	}
	raw, err := json.MarshalIndent(post, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(raw)), nil
}

func (s *Server) publishPost(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("post")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var draft models.Draft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid story JSON: %v", err)), nil
	}
	post, err := s.mgr.Publish(ctx, draft)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("story rejected: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("published %s: %s", post.ID, post.Title)), nil
}

func (s *Server) deletePost(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.mgr.Delete(ctx, id, true); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("deleted %s", id)), nil
}

func (s *Server) getStoryContract(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(StoryFormatContract), nil
}

func (s *Server) readStoryFormatResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "smiles://story-format",
			MIMEType: "text/markdown",
			Text:     StoryFormatContract,
		},
	}, nil
}
