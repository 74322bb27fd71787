// Package console plays Eleven in a plain terminal: a pterm renderer for
// engine events and prompts that read each decision from the keyboard.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/palemoky/eleven/internal/game"
	"github.com/palemoky/eleven/internal/ui/common"
	"github.com/palemoky/eleven/internal/ui/view"
)

// Renderer prints engine events as they happen.
type Renderer struct {
	w io.Writer
}

// NewRenderer returns a renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

func (r *Renderer) OnEvent(ev game.Event) {
	switch ev.Type {
	case game.EventGameStarted:
		r.print(pterm.DefaultHeader.WithFullWidth().Sprint("The game has started"))
		r.print(pterm.Info.Sprintfln("There are %d players in this game: %s.", len(ev.Players), strings.Join(ev.Players, ", ")))
	case game.EventRoundStarted:
		r.print(pterm.DefaultSection.Sprintf("Round %d", ev.Round))
	case game.EventCardDrawn:
		r.print(pterm.Sprintfln("%s drew %s. Hand: %s", pterm.LightCyan(ev.Player), ev.Card, ev.Hand.Short()))
	case game.EventPlayerBusted:
		r.print(pterm.Warning.Sprintfln("%s %s busts and is out with final score 0. Better luck next time.", common.BustIcon, ev.Player))
	case game.EventPlayerStood:
		r.print(pterm.Info.Sprintfln("%s does not want any more cards. %s's score is %s.", ev.Player, ev.Player, common.FormatScore(ev.Score)))
	case game.EventGameEnded:
		r.renderResult(ev.Result)
	}
}

func (r *Renderer) renderResult(res *game.Result) {
	if res == nil {
		return
	}

	data := pterm.TableData{{"#", "Player", "Score", "Status"}}
	for i, s := range res.Leaderboard {
		name := s.Name
		if res.IsWinner(s.Name) {
			name = common.WinnerIcon + " " + name
		}
		data = append(data, []string{fmt.Sprint(i + 1), name, common.FormatScore(s.Score), s.Status.String()})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
	if err != nil {
		r.print(pterm.Error.Sprintfln("rendering leaderboard: %v", err))
		return
	}
	r.print(pterm.DefaultSection.Sprint("Leaderboard"))
	r.print(table + "\n")
	r.print(pterm.Success.Sprintfln("%s", view.WinnerLine(res.Winners)))
	r.print(pterm.DefaultHeader.WithFullWidth().Sprint("The game has ended"))
}

func (r *Renderer) print(s string) {
	_, _ = fmt.Fprint(r.w, s)
}
