package main

import (
	"context"
	"encoding/json"
	"errors"

	qaa "github.com/holmes89/qaa/lib"
	"github.com/holmes89/qaa/lib/service/answer"
	"github.com/holmes89/qaa/lib/service/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// MCPServer exposes the question and answer operations as MCP tools.
type MCPServer struct {
	StoreService  store.StoreService
	AnswerService answer.AnswerService
	logger        *zap.Logger
}

func NewMCPServer(storeService store.StoreService, answerService answer.AnswerService, logger *zap.Logger) *MCPServer {
	return &MCPServer{
		StoreService:  storeService,
		AnswerService: answerService,
		logger:        logger.Named("mcp"),
	}
}

type noArgs struct{}

type idArgs struct {
	ID int64 `json:"id" jsonschema:"record id, a positive integer"`
}

type createQuestionArgs struct {
	Question string `json:"question" jsonschema:"the question text, 1 to 500 characters"`
}

type updateQuestionArgs struct {
	ID       int64  `json:"id" jsonschema:"record id, a positive integer"`
	Question string `json:"question" jsonschema:"the new question text, 1 to 500 characters"`
}

type updateAnswerArgs struct {
	ID     int64  `json:"id" jsonschema:"record id, a positive integer"`
	Answer string `json:"answer" jsonschema:"the new answer text, 1 to 500 characters"`
}

// Server builds an MCP server with every tool registered.
func (s *MCPServer) Server() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "qaa-server", Version: "1.0.0"}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_qaa",
		Description: "List every stored question and answer",
	}, s.listQAA)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_qaa",
		Description: "Get one question and answer by id",
	}, s.getQAA)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_question",
		Description: "Store a new question with an empty answer",
	}, s.createQuestion)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_question",
		Description: "Replace the question of a record",
	}, s.updateQuestion)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_answer",
		Description: "Replace the answer of a record",
	}, s.updateAnswer)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_qaa",
		Description: "Delete one question and answer by id",
	}, s.deleteQAA)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_all_qaa",
		Description: "Delete every stored question and answer",
	}, s.deleteAll)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "ai_answer",
		Description: "Ask the language model to answer a stored question and save the answer",
	}, s.aiAnswer)

	return server
}

// Run serves the tools on t until the client disconnects or ctx is done.
func (s *MCPServer) Run(ctx context.Context, t mcp.Transport) error {
	s.logger.Info("MCP server started, waiting for messages")
	return s.Server().Run(ctx, t)
}

func (s *MCPServer) listQAA(ctx context.Context, _ *mcp.CallToolRequest, _ noArgs) (*mcp.CallToolResult, any, error) {
	records, err := s.StoreService.List(ctx)
	return s.respond("list_qaa", records, err)
}

func (s *MCPServer) getQAA(ctx context.Context, _ *mcp.CallToolRequest, args idArgs) (*mcp.CallToolResult, any, error) {
	record, err := s.StoreService.Get(ctx, args.ID)
	return s.respond("get_qaa", record, err)
}

func (s *MCPServer) createQuestion(ctx context.Context, _ *mcp.CallToolRequest, args createQuestionArgs) (*mcp.CallToolResult, any, error) {
	record, err := s.StoreService.Create(ctx, args.Question)
	return s.respond("create_question", record, err)
}

func (s *MCPServer) updateQuestion(ctx context.Context, _ *mcp.CallToolRequest, args updateQuestionArgs) (*mcp.CallToolResult, any, error) {
	record, err := s.StoreService.UpdateQuestion(ctx, args.ID, args.Question)
	return s.respond("update_question", record, err)
}

func (s *MCPServer) updateAnswer(ctx context.Context, _ *mcp.CallToolRequest, args updateAnswerArgs) (*mcp.CallToolResult, any, error) {
	record, err := s.StoreService.UpdateAnswer(ctx, args.ID, args.Answer)
	return s.respond("update_answer", record, err)
}

func (s *MCPServer) deleteQAA(ctx context.Context, _ *mcp.CallToolRequest, args idArgs) (*mcp.CallToolResult, any, error) {
	err := s.StoreService.Delete(ctx, args.ID)
	return s.respond("delete_qaa", map[string]int64{"deleted": args.ID}, err)
}

func (s *MCPServer) deleteAll(ctx context.Context, _ *mcp.CallToolRequest, _ noArgs) (*mcp.CallToolResult, any, error) {
	err := s.StoreService.DeleteAll(ctx)
	return s.respond("delete_all_qaa", map[string]bool{"deleted": true}, err)
}

func (s *MCPServer) aiAnswer(ctx context.Context, _ *mcp.CallToolRequest, args idArgs) (*mcp.CallToolResult, any, error) {
	record, err := s.AnswerService.Answer(ctx, args.ID)
	return s.respond("ai_answer", record, err)
}

// respond renders v as JSON text, or err as a tool error carrying the same
// detail the HTTP API returns.
func (s *MCPServer) respond(tool string, v any, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: s.toolErrorText(tool, err)}},
			IsError: true,
		}, nil, nil
	}
	body, err := json.Marshal(v)
	if err != nil {
		return nil, nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(body)}},
	}, nil, nil
}

func (s *MCPServer) toolErrorText(tool string, err error) string {
	var (
		authErr     *qaa.AuthConfigError
		providerErr *qaa.ProviderError
	)
	switch {
	case errors.Is(err, qaa.ErrValidation):
		return err.Error()
	case errors.Is(err, qaa.ErrNotFound):
		return "Question and answer not found"
	case errors.As(err, &authErr):
		return authErr.Detail()
	case errors.As(err, &providerErr):
		return providerErr.Detail()
	default:
		s.logger.Error("tool failed", zap.String("tool", tool), zap.Error(err))
		return "internal server error"
	}
}
