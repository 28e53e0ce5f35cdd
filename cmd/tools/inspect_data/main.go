// Command inspect_data loads both datasets through the normal source cascade
// and prints them as tables, so a broken sheet or CSV can be spotted without
// starting the server.
package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/joho/godotenv"

	"github.com/daehantax/fund-match/internal/ingest"
	"github.com/daehantax/fund-match/internal/query"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Print("No .env file found, relying on process environment")
	}

	ctx := context.Background()

	registry, err := ingest.LoadRegistry(os.Getenv("SOURCES_CONFIG"))
	if err != nil {
		log.Fatalf("Failed to load source registry: %v", err)
	}
	loader := ingest.NewLoader(registry, nil)

	grants, err := loader.LoadGrants(ctx)
	if err != nil {
		log.Fatal(err)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Title", "Department", "Category", "Period", "Tags"})
	for _, g := range grants {
		t.AppendRow(table.Row{
			g.ID,
			truncate(g.Title, 40),
			g.Department,
			g.Category,
			g.StartDate + " ~ " + g.EndDate,
			strings.Join(g.Tags, " "),
		})
	}
	t.Render()

	counts := query.CategoryCounts(grants)
	ct := table.NewWriter()
	ct.SetOutputMirror(os.Stdout)
	ct.AppendHeader(table.Row{"Category", "Postings"})
	for cat, n := range counts {
		ct.AppendRow(table.Row{cat, n})
	}
	ct.Render()

	clients, err := loader.LoadClients(ctx)
	if err != nil {
		log.Fatal(err)
	}

	lt := table.NewWriter()
	lt.SetOutputMirror(os.Stdout)
	lt.AppendHeader(table.Row{"Company", "CEO", "BRN", "Industry", "Region"})
	for _, cl := range clients {
		lt.AppendRow(table.Row{
			cl.CompanyName,
			cl.CEOName,
			cl.BizNumber,
			ingest.MapIndustry(cl.BizCategory),
			ingest.MapRegion(cl.Address),
		})
	}
	lt.Render()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
