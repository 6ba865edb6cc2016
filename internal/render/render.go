package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/ozzus/bet-tracker/internal/domain/models"
)

const (
	Title   = "Sports Bet Tracker: NBA & European Soccer"
	Warning = "This is a basic tool. Always bet responsibly."

	dateLayout = "2006-01-02"
	timeLayout = "2006-01-02 15:04 MST"
)

// Renderer prints dashboards for a terminal.
type Renderer struct {
	out     io.Writer
	title   *color.Color
	section *color.Color
	win     *color.Color
	loss    *color.Color
	draw    *color.Color
	warn    *color.Color
}

func New(out io.Writer) *Renderer {
	return &Renderer{
		out:     out,
		title:   color.New(color.FgHiWhite, color.Bold, color.Underline),
		section: color.New(color.FgCyan, color.Bold),
		win:     color.New(color.FgGreen),
		loss:    color.New(color.FgRed),
		draw:    color.New(color.FgYellow),
		warn:    color.New(color.FgYellow, color.Bold),
	}
}

type KeyStatus struct {
	NBA    bool
	Soccer bool
	Odds   bool
}

func (r *Renderer) Keys(keys KeyStatus) {
	fmt.Fprintf(r.out, "NBA key loaded: %s\n", yesNo(keys.NBA))
	fmt.Fprintf(r.out, "Soccer key loaded: %s\n", yesNo(keys.Soccer))
	fmt.Fprintf(r.out, "Odds key loaded: %s\n", yesNo(keys.Odds))
}

func (r *Renderer) Dashboard(d models.Dashboard) error {
	r.title.Fprintln(r.out, Title)
	fmt.Fprintln(r.out, heading(d))

	r.header(fmt.Sprintf("Past %d Games", d.LastN))
	if err := r.records(d.Records, "No games found."); err != nil {
		return err
	}

	r.header("Head-to-Head Summary")
	if d.Opponent.ID == 0 {
		fmt.Fprintln(r.out, "No opponent selected.")
	} else {
		if err := r.records(d.HeadToHead, "No head-to-head games found."); err != nil {
			return err
		}
		if len(d.HeadToHead) > 0 {
			fmt.Fprintln(r.out, tally(d.Team.Name, d.Opponent.Name, d.HeadToHead))
		}
	}

	r.header(fmt.Sprintf("Upcoming Odds (%s)", models.BookmakerTitle(d.Bookmaker)))
	if err := r.odds(d.Odds); err != nil {
		return err
	}

	r.header("Bet Suggestion")
	fmt.Fprintln(r.out, d.Suggestion.Text)

	if len(d.Diagnostics) > 0 {
		r.header("Diagnostics")
		for _, diag := range d.Diagnostics {
			r.warn.Fprintln(r.out, formatDiagnostic(diag))
		}
	}

	fmt.Fprintln(r.out)
	r.warn.Fprintln(r.out, Warning)

	return nil
}

func (r *Renderer) Suggestions(records []models.SuggestionRecord) error {
	r.header("Recent Suggestions")
	if len(records) == 0 {
		fmt.Fprintln(r.out, "No suggestions saved yet.")
		return nil
	}

	tw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tSPORT\tTEAM\tRECORD\tSUGGESTION")
	for _, rec := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d/%d\t%s\n",
			rec.CreatedAt.UTC().Format(timeLayout),
			rec.Sport.Title(),
			rec.TeamName,
			rec.Suggestion.Wins,
			rec.Suggestion.Games,
			rec.Suggestion.Text,
		)
	}
	return tw.Flush()
}

func (r *Renderer) header(text string) {
	fmt.Fprintln(r.out)
	r.section.Fprintln(r.out, text)
}

func (r *Renderer) records(records []models.GameRecord, empty string) error {
	if len(records) == 0 {
		fmt.Fprintln(r.out, empty)
		return nil
	}

	tw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tOPPONENT\tRESULT\tSCORE")
	for _, rec := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			formatDate(rec.Date),
			rec.Opponent,
			r.result(rec.Result),
			rec.Score,
		)
	}
	return tw.Flush()
}

func (r *Renderer) odds(payload models.OddsPayload) error {
	events := payload.Summaries()
	if len(events) == 0 {
		fmt.Fprintln(r.out, "No odds available.")
		return nil
	}

	tw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KICKOFF\tMATCH\tMARKET\tODDS")
	for _, e := range events {
		kickoff := formatTime(e.CommenceTime)
		match := e.HomeTeam + " vs " + e.AwayTeam
		if len(e.Markets) == 0 {
			fmt.Fprintf(tw, "%s\t%s\t-\tno lines\n", kickoff, match)
			continue
		}
		for _, m := range e.Markets {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", kickoff, match, m.Key, formatOutcomes(m.Key, m.Outcomes))
			kickoff, match = "", ""
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "%d events\n", len(events))
	return nil
}

func (r *Renderer) result(res models.Result) string {
	switch res {
	case models.ResultWin:
		return r.win.Sprint(string(res))
	case models.ResultLoss:
		return r.loss.Sprint(string(res))
	case models.ResultDraw:
		return r.draw.Sprint(string(res))
	default:
		return string(res)
	}
}

func heading(d models.Dashboard) string {
	line := d.Sport.Title()
	if d.League != nil {
		line += " (" + d.League.Name + ")"
	}
	line += ": " + d.Team.Name
	if d.Opponent.Name != "" {
		line += " vs " + d.Opponent.Name
	}
	return line
}

func tally(team, opponent string, records []models.GameRecord) string {
	var wins, losses, draws int
	for _, rec := range records {
		switch rec.Result {
		case models.ResultWin:
			wins++
		case models.ResultLoss:
			losses++
		case models.ResultDraw:
			draws++
		}
	}
	if draws == 0 {
		return fmt.Sprintf("%s %d-%d vs %s", team, wins, losses, opponent)
	}
	return fmt.Sprintf("%s %d-%d-%d vs %s", team, wins, draws, losses, opponent)
}

// formatOutcomes prints decimal prices; spread points keep their sign.
func formatOutcomes(market string, outcomes []models.OddsOutcome) string {
	pointFormat := "%s %+g @ %g"
	if market == "totals" {
		pointFormat = "%s %g @ %g"
	}

	parts := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Point != nil {
			parts = append(parts, fmt.Sprintf(pointFormat, o.Name, *o.Point, o.Price))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s @ %g", o.Name, o.Price))
	}
	return strings.Join(parts, " | ")
}

func formatDiagnostic(d models.Diagnostic) string {
	if d.StatusCode == 0 {
		return fmt.Sprintf("! %s: %s", d.Source, d.Message)
	}
	return fmt.Sprintf("! %s (status %d): %s", d.Source, d.StatusCode, d.Message)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(dateLayout)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "TBD"
	}
	return t.UTC().Format(timeLayout)
}

func yesNo(ok bool) string {
	if ok {
		return "YES"
	}
	return "NO"
}
