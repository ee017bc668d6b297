package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	endpoint := flag.String("endpoint", "http://localhost:8080/mcp/stream", "MCP streamable HTTP endpoint")
	keyword := flag.String("keyword", "golang", "Keyword for the vacancy_search test")
	flag.Parse()

	ctx := context.Background()

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "vacancy-search-test-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: *endpoint,
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	testListTools(ctx, session)
	testVacancySearch(ctx, session, *keyword)
	testVacancyQuery(ctx, session)
	testVacancyTop(ctx, session)

	fmt.Println("\nAll tests completed")
}

func testListTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: list tools")

	res, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Printf("list tools failed: %v", err)
		return
	}
	for _, tool := range res.Tools {
		fmt.Printf("  %s - %s\n", tool.Name, tool.Description)
	}
}

func testVacancySearch(ctx context.Context, session *mcp.ClientSession, keyword string) {
	fmt.Println("\nTEST: vacancy_search")

	params := &mcp.CallToolParams{
		Name: "vacancy_search",
		Arguments: map[string]any{
			"keyword": keyword,
			"pages":   1,
			"area":    1,
			"limit":   5,
		},
	}

	result, err := session.CallTool(ctx, params)
	if err != nil {
		log.Printf("vacancy_search failed: %v", err)
		return
	}

	printResult(result)
	fmt.Println("vacancy_search passed")
}

func testVacancyQuery(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: vacancy_query")

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "vacancy_query",
		Arguments: map[string]any{"min_salary": 100000},
	})
	if err != nil {
		log.Printf("vacancy_query failed: %v", err)
		return
	}

	printResult(result)
	fmt.Println("vacancy_query passed")
}

func testVacancyTop(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: vacancy_top")

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "vacancy_top",
		Arguments: map[string]any{"n": 3},
	})
	if err != nil {
		log.Printf("vacancy_top failed: %v", err)
		return
	}

	printResult(result)
	fmt.Println("vacancy_top passed")
}

func printResult(res *mcp.CallToolResult) {
	if res.IsError {
		fmt.Println("tool returned an error:")
	}
	for _, c := range res.Content {
		if txt, ok := c.(*mcp.TextContent); ok {
			fmt.Println(txt.Text)
		}
	}
}
