package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// PlainScores renders the scoreboard as a static table for non-interactive
// output.
func PlainScores(source ScoreSource, gameID, title string, tickRate, limit int) (string, error) {
	scores, err := source.TopScores(gameID, limit)
	if err != nil {
		return "", err
	}
	stats, err := source.GetGameStats(gameID)
	if err != nil {
		return "", err
	}
	best, err := source.LoadBest(gameID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	header := lipgloss.NewStyle().Bold(true)
	b.WriteString(header.Render(fmt.Sprintf("%s - high scores", title)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Best %d · Runs %d · Avg %.0f · Time %s\n",
		best, stats.GamesCount, stats.AvgScore, formatTicks(int(stats.TotalTicks), tickRate))

	if len(scores) == 0 {
		b.WriteString("No runs recorded yet.\n")
		return b.String(), nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("RANK", "SCORE", "TIME", "DATE")
	for i, s := range scores {
		t.Row(
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			formatTicks(s.Ticks, tickRate),
			s.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	b.WriteString(t.Render())
	b.WriteString("\n")
	return b.String(), nil
}
