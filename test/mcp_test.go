package test

import (
	"context"
	"encoding/json"
	"time"

	"github.com/2beens/liftstats/internal/analytics"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestMCPOverHTTP() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := mcp.NewClient(&mcp.Implementation{Name: "integration-test", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: serverEndpoint + "/mcp",
	}, nil)
	require.NoError(s.T(), err)
	defer session.Close()

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_liftstats_context",
		Arguments: map[string]any{},
	})
	require.NoError(s.T(), err)
	require.False(s.T(), res.IsError)
	schema := toolText(s, res)
	assert.Contains(s.T(), schema, "## exercise_result")
	assert.Contains(s.T(), schema, "| weight | double precision | NO | - |")

	res, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_personal_records",
		Arguments: map[string]any{"user_id": s.seeded.lifterID},
	})
	require.NoError(s.T(), err)
	require.False(s.T(), res.IsError)
	var records []analytics.PersonalRecord
	require.NoError(s.T(), json.Unmarshal([]byte(toolText(s, res)), &records))
	require.Len(s.T(), records, 2)
	// ordered by exercise id
	assert.Less(s.T(), records[0].ExerciseID, records[1].ExerciseID)

	res, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_personal_record",
		Arguments: map[string]any{"user_id": s.seeded.lifterID, "exercise_id": s.seeded.plankID},
	})
	require.NoError(s.T(), err)
	assert.False(s.T(), res.IsError)
	assert.Equal(s.T(), "No personal record yet for this exercise.", toolText(s, res))

	res, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_workout_summaries",
		Arguments: map[string]any{"user_id": s.seeded.lifterID, "to_date": "2024-01-17"},
	})
	require.NoError(s.T(), err)
	require.False(s.T(), res.IsError)
	var summaries []analytics.WorkoutSummary
	require.NoError(s.T(), json.Unmarshal([]byte(toolText(s, res)), &summaries))
	assert.Len(s.T(), summaries, 2)

	res, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_workout_summary",
		Arguments: map[string]any{"workout_id": 987654},
	})
	require.NoError(s.T(), err)
	assert.True(s.T(), res.IsError)
}

func toolText(s *IntegrationTestSuite, res *mcp.CallToolResult) string {
	require.Len(s.T(), res.Content, 1)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(s.T(), ok)
	return text.Text
}
