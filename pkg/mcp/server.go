package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/adrianliechti/sefaria/pkg/tool"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type Server struct {
	http.Handler

	server *mcp.Server
}

func New(name string, tools []tool.Provider) (*Server, error) {
	impl := &mcp.Implementation{
		Name: name,
	}

	opts := &mcp.ServerOptions{
		KeepAlive: time.Second * 30,
	}

	server := mcp.NewServer(impl, opts)

	handlerOpts := &mcp.StreamableHTTPOptions{
		Stateless: true,
	}

	handler := mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, handlerOpts)

	s := &Server{
		Handler: handler,

		server: server,
	}

	if err := s.addTools(context.Background(), tools); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Server) addTools(ctx context.Context, providers []tool.Provider) error {
	for _, p := range providers {
		tools, err := p.Tools(ctx)

		if err != nil {
			return err
		}

		for _, t := range tools {
			data, _ := json.Marshal(t.Parameters)

			schema := new(jsonschema.Schema)

			if err := schema.UnmarshalJSON(data); err != nil {
				return err
			}

			handler := func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				var args map[string]any

				if r := req.Params.Arguments; r != nil {
					json.Unmarshal(r, &args)
				}

				result, err := p.Execute(ctx, t.Name, args)

				if err != nil {
					return nil, err
				}

				switch v := result.(type) {
				case *mcp.CallToolResult:
					return v, nil

				case string:
					return &mcp.CallToolResult{
						Content: []mcp.Content{
							&mcp.TextContent{
								Text: v,
							},
						},
					}, nil

				default:
					data, _ := json.Marshal(v)

					return &mcp.CallToolResult{
						Content: []mcp.Content{
							&mcp.TextContent{
								Text: string(data),
							},
						},
					}, nil
				}
			}

			s.server.AddTool(&mcp.Tool{
				Name:        t.Name,
				Description: t.Description,

				InputSchema: schema,
			}, handler)
		}
	}

	return nil
}
