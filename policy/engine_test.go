package policy_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyhub/platform/policy"
)

func TestDefaultPolicyAllowsTools(t *testing.T) {
	ctx := context.Background()
	engine, err := policy.NewEngine(ctx, policy.DefaultPolicy)
	require.NoError(t, err)

	for _, tool := range []string{"save_note", "save_solution"} {
		decision, err := engine.Evaluate(ctx, map[string]any{
			"tool_name":          tool,
			"subject":            "python",
			"web_search_enabled": false,
		})
		require.NoError(t, err)
		assert.Equal(t, policy.DecisionAllow, decision, tool)
	}
}

func TestDefaultPolicyBlocksDisabledWebSearch(t *testing.T) {
	ctx := context.Background()
	engine, err := policy.NewEngine(ctx, policy.DefaultPolicy)
	require.NoError(t, err)

	decision, err := engine.Evaluate(ctx, map[string]any{
		"tool_name":          "web_search",
		"subject":            "n8n",
		"web_search_enabled": false,
	})
	require.NoError(t, err)
	assert.Equal(t, policy.DecisionBlock, decision)

	decision, err = engine.Evaluate(ctx, map[string]any{
		"tool_name":          "web_search",
		"subject":            "n8n",
		"web_search_enabled": true,
	})
	require.NoError(t, err)
	assert.Equal(t, policy.DecisionAllow, decision)
}

func TestNewEngineRejectsBadPolicy(t *testing.T) {
	_, err := policy.NewEngine(context.Background(), "this is not rego")
	assert.Error(t, err)
}
