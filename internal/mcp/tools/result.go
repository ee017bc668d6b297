package tools

import (
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/vacancy-search/internal/domain"
)

// textResult returns a text-only ToolResult
func textResult(msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: msg},
		},
	}
}

// listing renders a short numbered list for the text half of a result
func listing(header string, vacancies []domain.Vacancy) string {
	var b strings.Builder
	b.WriteString(header)
	for i, v := range vacancies {
		fmt.Fprintf(&b, "\n%d. %s", i+1, v)
		if v.URL() != "" {
			fmt.Fprintf(&b, " | %s", v.URL())
		}
	}
	return b.String()
}

// criteria builds storage criteria from tool filter fields
func criteria(keyword string, minSalary float64) domain.Criteria {
	return domain.Criteria{Keyword: strings.TrimSpace(keyword), MinSalary: minSalary}
}
