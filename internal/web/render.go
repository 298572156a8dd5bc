package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/Sardtok/kingsheep-ladder/internal/service"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Renderer renders the ladder pages from embedded templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded page templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Static serves the embedded client-side assets. Mount under /static/.
func Static() http.Handler {
	return http.FileServer(http.FS(staticFS))
}

// rowData is one table row. Stats is either a TeamTotals or a MatchRecord;
// the two share the stat field names the template reads.
type rowData struct {
	Stats     interface{}
	ThinkTime service.ThinkTime
	Leads     service.LeaderFlags
	Link      bool
}

type ladderView struct {
	Rows []rowData
}

type matchView struct {
	Title string
	Rows  []rowData
}

type teamView struct {
	Team    string
	Summary rowData
	Matches []matchView
}

// Ladder renders the league-wide table with leader highlighting and
// sortable columns.
func (r *Renderer) Ladder(w io.Writer, rows []service.StandingRow) error {
	view := ladderView{Rows: make([]rowData, 0, len(rows))}
	for _, row := range rows {
		view.Rows = append(view.Rows, rowData{
			Stats:     row.Totals,
			ThinkTime: row.ThinkTime,
			Leads:     row.Leads,
			Link:      true,
		})
	}
	return r.tmpl.ExecuteTemplate(w, "ladder.gohtml", view)
}

// Team renders the drill-down page: the summary row followed by one section
// per match.
func (r *Renderer) Team(w io.Writer, page *service.TeamPage) error {
	view := teamView{
		Team:    page.Team,
		Summary: rowData{Stats: page.Summary.Totals, ThinkTime: page.Summary.ThinkTime},
	}
	for _, m := range page.Matches {
		view.Matches = append(view.Matches, matchView{
			Title: fmt.Sprintf("Match #%d - %s vs. %s", m.Number, m.Team.Record.Team, m.Opponent.Record.Team),
			Rows: []rowData{
				{Stats: m.Team.Record, ThinkTime: m.Team.ThinkTime},
				{Stats: m.Opponent.Record, ThinkTime: m.Opponent.ThinkTime},
			},
		})
	}
	return r.tmpl.ExecuteTemplate(w, "team.gohtml", view)
}
