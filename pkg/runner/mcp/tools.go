package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/rangepick/pkg/store"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListTripsTool(srv, svc)
	registerGetTripTool(srv, svc)
	registerBookTripTool(srv, svc)
	registerCancelTripTool(srv, svc)
	registerClassifyMonthTool(srv, svc)
}

func registerListTripsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_trips",
		mcp.WithDescription("List saved trips ordered by pickup."),
		mcp.WithString("kind",
			mcp.Description("Only list trips of this kind."),
			mcp.Enum(string(store.KindOneWay), string(store.KindReturn)),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind := store.TripKind(request.GetString("kind", ""))
		trips, err := svc.ListTrips(ctx, kind)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"trips": trips,
			"count": len(trips),
		})
	})
}

func registerGetTripTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_trip",
		mcp.WithDescription("Fetch a single trip by identifier."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Trip identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.GetTrip(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerBookTripTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"book_trip",
		mcp.WithDescription("Save a one-way or return trip. The pickup must fall inside the booking window and the return may not precede it."),
		mcp.WithString("pickup",
			mcp.Required(),
			mcp.Description("Pickup date and time, e.g. \"11/06/2025 09:00 AM\", \"2025-06-11 09:00\" or RFC3339."),
		),
		mcp.WithString("return",
			mcp.Description("Return date and time in the same layouts. Required for return trips."),
		),
		mcp.WithString("kind",
			mcp.Description("Trip kind. Defaults to return when a return is given, one-way otherwise."),
			mcp.Enum(string(store.KindOneWay), string(store.KindReturn)),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Pickup string `json:"pickup"`
			Return string `json:"return"`
			Kind   string `json:"kind"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.BookTrip(ctx, BookOptions{
			Kind:   store.TripKind(args.Kind),
			Pickup: args.Pickup,
			Return: args.Return,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerCancelTripTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"cancel_trip",
		mcp.WithDescription("Delete a saved trip."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Trip identifier to delete."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.CancelTrip(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerClassifyMonthTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"classify_month",
		mcp.WithDescription("Classify every day of a month the way the date picker draws it: disabled, selected, today and range position."),
		mcp.WithString("month",
			mcp.Description("Month to classify, e.g. \"June 2025\". Defaults to the selected day's month."),
		),
		mcp.WithString("start",
			mcp.Description("Range start date."),
		),
		mcp.WithString("end",
			mcp.Description("Range end date."),
		),
		mcp.WithString("selected",
			mcp.Description("Selected date. Defaults to the first bookable day."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args MonthOptions
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		month, err := svc.ClassifyMonth(args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(month)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
