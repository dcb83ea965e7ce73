package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// topWordsTool returns the tool definition for top_words
func topWordsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "top_words",
		Description: "Return the highest-frequency words from the store, ordered by count descending then word ascending",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of words to return (1-1000)",
					"default":     20,
					"minimum":     1,
					"maximum":     1000,
				},
			},
		},
	}
}

// wordCountTool returns the tool definition for word_count
func wordCountTool() mcp.Tool {
	return mcp.Tool{
		Name:        "word_count",
		Description: "Return the cumulative count stored for one word",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"word": map[string]interface{}{
					"type":        "string",
					"description": "The word to look up (lemma form, lower case)",
				},
			},
			Required: []string{"word"},
		},
	}
}

// storeStatsTool returns the tool definition for store_stats
func storeStatsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "store_stats",
		Description: "Return distinct-word and total-occurrence counts for the store",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
