package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerTripsResource(srv, svc)
	registerTripTemplate(srv, svc)
}

func registerTripsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"rangepick://trips",
		"Trips",
		mcp.WithResourceDescription("Every saved trip ordered by pickup."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		trips, err := svc.ListTrips(ctx, "")
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"trips": trips,
			"count": len(trips),
		})
	})
}

func registerTripTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"rangepick://trips/{id}",
		"Trip Details",
		mcp.WithTemplateDescription("A single saved trip."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id := templateArg(request.Params.Arguments, "id")
		if id == "" {
			return nil, fmt.Errorf("trip id is required")
		}
		dto, err := svc.GetTrip(ctx, id)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"trip": dto,
		})
	})
}

// templateArg reads a URI template variable; the server may hand them over as
// a string or as a single-element list.
func templateArg(args map[string]any, name string) string {
	switch v := args[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
