package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"movie-ticket-booking/internal/data/repository"
	"movie-ticket-booking/internal/dto/request"
	"movie-ticket-booking/internal/usecase"
	"movie-ticket-booking/pkg/utils"
)

func newTestHandler(t *testing.T) (*Handler, *repository.Repository) {
	t.Helper()

	log := zap.NewNop()
	repo := repository.NewRepository(log)
	service := usecase.NewService(repo, usecase.NopNotifier{}, log)

	return NewHandler(service, log), repo
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func showArgs() map[string]any {
	return map[string]any{
		"movie_title": "Dune",
		"theater":     "Grand",
		"showtime":    "7:30 PM",
		"date":        "2024-06-01",
	}
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()

	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestListToolsCatalog(t *testing.T) {
	handler, _ := newTestHandler(t)

	tools := handler.Tool.ListTools()
	require.Len(t, tools, 4)

	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name)
	}
	assert.Equal(t, []string{
		request.ToolBookForFriends,
		request.ToolBookForRelatives,
		request.ToolBookForClass,
		request.ToolBookForFamily,
	}, names)

	schemas := make(map[string]inputSchema)
	for _, tool := range tools {
		var schema inputSchema
		require.NoError(t, json.Unmarshal(tool.RawInputSchema, &schema))
		assert.Equal(t, "object", schema.Type)
		assert.Subset(t, schema.Required, []string{"movie_title", "theater", "showtime", "date"})
		schemas[tool.Name] = schema
	}

	relatives := schemas[request.ToolBookForRelatives]
	assert.Contains(t, relatives.Required, "ticket_count")
	assert.Equal(t, "integer", relatives.Properties["ticket_count"].Type)
	assert.Equal(t, "string", relatives.Properties["special_requirements"].Type)

	class := schemas[request.ToolBookForClass]
	assert.Contains(t, class.Required, "student_count")
	assert.Contains(t, class.Required, "teacher_count")
	assert.NotContains(t, class.Required, "group_discount")
	assert.Equal(t, "boolean", class.Properties["group_discount"].Type)

	family := schemas[request.ToolBookForFamily]
	assert.NotContains(t, family.Required, "senior_count")
	assert.Equal(t, "integer", family.Properties["senior_count"].Type)
	assert.Equal(t, float64(0), family.Properties["senior_count"].Default)
}

func TestCallToolFriends(t *testing.T) {
	handler, repo := newTestHandler(t)
	ctx := context.Background()

	res, err := handler.Tool.CallTool(ctx, callRequest(request.ToolBookForFriends, showArgs()))
	require.NoError(t, err)

	text := resultText(t, res)
	assert.Contains(t, text, "Successfully booked 4 tickets")
	assert.Contains(t, text, "Dune")
	assert.Contains(t, text, "Grand")

	bookings, err := repo.Booking.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Contains(t, text, bookings[0].ID)
}

// Argument maps arrive JSON-decoded, so numbers show up as float64.
func TestCallToolFamilyWithJSONNumbers(t *testing.T) {
	handler, repo := newTestHandler(t)
	ctx := context.Background()

	args := showArgs()
	args["adult_count"] = float64(2)
	args["child_count"] = float64(1)
	args["senior_count"] = float64(0)

	_, err := handler.Tool.CallTool(ctx, callRequest(request.ToolBookForFamily, args))
	require.NoError(t, err)

	bookings, err := repo.Booking.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, 3, bookings[0].TicketCount)
	assert.Equal(t, "40.00", bookings[0].TotalCost.StringFixed(2))
	assert.Equal(t, 0, bookings[0].SeniorCount)
}

func TestCallToolUnknownName(t *testing.T) {
	handler, _ := newTestHandler(t)

	_, err := handler.Tool.CallTool(context.Background(), callRequest("book-for-strangers", showArgs()))

	var capErr *utils.UnknownCapabilityError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, "tool", capErr.Kind)
	assert.Equal(t, "book-for-strangers", capErr.Name)
}

func TestCallToolMissingArguments(t *testing.T) {
	handler, _ := newTestHandler(t)

	for _, args := range []map[string]any{nil, {}} {
		_, err := handler.Tool.CallTool(context.Background(), callRequest(request.ToolBookForFriends, args))

		var vErr *utils.ValidationError
		require.True(t, errors.As(err, &vErr))
	}
}

func TestCallToolValidationFailure(t *testing.T) {
	handler, repo := newTestHandler(t)
	ctx := context.Background()

	args := showArgs()
	delete(args, "movie_title")

	_, err := handler.Tool.CallTool(ctx, callRequest(request.ToolBookForRelatives, args))

	var vErr *utils.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Fields, "movie_title")

	bookings, listErr := repo.Booking.FindAll(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, bookings)
}
