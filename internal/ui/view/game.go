// Package view provides UI rendering functions.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/eleven/internal/game"
	"github.com/palemoky/eleven/internal/game/card"
	"github.com/palemoky/eleven/internal/ui/common"
)

// RenderGameRules renders the game rules.
func RenderGameRules() string {
	var sb string

	sb += "【Goal】\n"
	sb += "Finish with the highest score without going over 11.\n\n"

	sb += "【Card values】\n"
	sb += "• 2-10: face value\n"
	sb += "• A: 1\n"
	sb += "• J, Q, K and both Jokers: 0.5\n\n"

	sb += "【Play】\n"
	sb += "1. Every player is dealt one card, in seat order\n"
	sb += "2. Each round, every player still in decides: draw or stand\n"
	sb += "3. A hand over 11 busts: the player is out with a score of 0\n"
	sb += "4. Standing freezes your score and ends your game\n"
	sb += "5. The game ends when nobody is left drawing\n"
	sb += "6. Everyone tied at the top score wins\n\n"

	sb += "【Keys】\n"
	sb += "• Y: draw another card\n"
	sb += "• N: stand\n"
	sb += "• R: show/hide these rules\n"
	sb += "• Q: quit\n"

	return common.BoxStyle.Render(sb)
}

// RulesView renders the full rules view.
func RulesView(width, height int) string {
	var sb string

	title := common.TitleStyle("📖 Rules of Eleven")
	sb += lipgloss.PlaceHorizontal(width, lipgloss.Center, title)
	sb += "\n\n"

	rules := RenderGameRules()
	sb += lipgloss.PlaceHorizontal(width, lipgloss.Center, rules)
	sb += "\n\n"

	hint := "Press R to go back"
	sb += lipgloss.PlaceHorizontal(width, lipgloss.Center, hint)

	return sb
}

// RenderHand draws each card as a coloured tile.
func RenderHand(hand card.Hand) string {
	if len(hand) == 0 {
		return common.GrayStyle.Render("(no cards)")
	}
	tiles := make([]string, len(hand))
	for i, c := range hand {
		tiles[i] = common.CardStyle(c).Padding(0, 1).Render(c.Short())
	}
	return strings.Join(tiles, " ")
}

// StatusIcon marks how a player left the game.
func StatusIcon(s game.Status) string {
	switch s {
	case game.StatusBusted:
		return common.BustIcon
	case game.StatusStood:
		return common.StandIcon
	default:
		return " "
	}
}

// RenderLeaderboard renders the final ranking, winners first.
func RenderLeaderboard(res *game.Result) string {
	if res == nil || len(res.Leaderboard) == 0 {
		return common.BoxStyle.Render("No results")
	}

	var sb strings.Builder
	sb.WriteString(common.TitleStyle("🏆 Leaderboard") + "\n")
	sb.WriteString(strings.Repeat("─", 30) + "\n")
	for i, s := range res.Leaderboard {
		icon := StatusIcon(s.Status)
		if res.IsWinner(s.Name) {
			icon = common.WinnerIcon
		}
		fmt.Fprintf(&sb, "%2d. %s %-12s %5s\n", i+1, icon, common.TruncateName(s.Name, 12), common.FormatScore(s.Score))
	}
	sb.WriteString("\n" + common.WinStyle.Render(WinnerLine(res.Winners)))
	return common.BoxStyle.Render(sb.String())
}

// WinnerLine announces one winner or several joint winners.
func WinnerLine(winners []string) string {
	switch len(winners) {
	case 0:
		return "Nobody won."
	case 1:
		return fmt.Sprintf("The winner is %s! Congrats!", winners[0])
	default:
		return fmt.Sprintf("The winners are %s! Congrats!", strings.Join(winners, ", "))
	}
}
