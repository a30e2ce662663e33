package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bigtwo/internal/domain"
	"bigtwo/internal/engine"
)

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2)

	turnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	handStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	trickStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("85")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	quoteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Italic(true)
	resultStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("220")).
			Padding(0, 2)
)

func renderTable(g *engine.Game, humanSeat int) string {
	var b strings.Builder
	for i := 0; i < g.PlayerCount(); i++ {
		seat := g.SeatInfo(i)
		line := fmt.Sprintf("%s %-6s %2d cards  %6d chips", seat.Avatar, seat.Name, len(g.Hand(i)), seat.Chips)
		switch {
		case g.Finished(i):
			line += "  (out)"
		case g.Passed(i):
			line += "  (passed)"
		}
		if i == g.Turn() && g.Phase() == engine.PhasePlaying {
			line = turnStyle.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	if tr := g.Trick(); tr != nil {
		owner := g.SeatInfo(tr.Seat)
		b.WriteString("\n" + trickStyle.Render(
			fmt.Sprintf("table: %s  (%s)", domain.FormatCards(tr.Combo.Cards), owner.Name)))
	} else {
		b.WriteString("\n" + dimStyle.Render("table: open"))
	}

	out := boardStyle.Render(b.String())
	if humanSeat >= 0 && !g.Finished(humanSeat) {
		out += "\n" + handStyle.Render("your hand: "+domain.FormatCards(g.Hand(humanSeat)))
	}
	return out
}

func renderResult(g *engine.Game) string {
	var b strings.Builder
	b.WriteString("round over\n\n")
	medals := []string{"1st", "2nd", "3rd", "4th"}
	for rank, seatIdx := range g.FinishOrder() {
		seat := g.SeatInfo(seatIdx)
		b.WriteString(fmt.Sprintf("%s  %s %-6s %6d chips\n", medals[rank], seat.Avatar, seat.Name, seat.Chips))
	}
	return resultStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func renderStats(history []engine.RoundStats) string {
	if len(history) == 0 {
		return ""
	}
	last := history[len(history)-1]
	return dimStyle.Render(fmt.Sprintf(
		"deal stats: %d twos, %d pairs, %d triples, %d straights, %d bombs (%d rounds tracked)",
		last.Twos, last.Pairs, last.Triples, last.Straights, last.Bombs, len(history)))
}
