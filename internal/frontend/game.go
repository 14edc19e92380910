package frontend

import (
	"fmt"
	"strings"

	"github.com/janpfeifer/GoSpider/internal/game"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// Vertical offsets, in pixels, between stacked cards of a column.
const (
	faceDownOffset = 12
	faceUpOffset   = 28
)

// Game is the board of the game in progress.
type Game struct {
	app.Compo
	Board  *game.BoardView
	Notice string
	Error  string

	onUpdate func()
}

func (g *Game) OnAppUpdate(ctx app.Context) {
	klog.Infof("Game component: App update available, not reloading not to interrupt the game...")
}

func (g *Game) OnMount(ctx app.Context) {
	klog.Infof("Game component: OnMount called")
	g.sync()
	g.onUpdate = func() {
		klog.V(1).Infof("Game component: Notify received")
		ctx.Dispatch(func(ctx app.Context) {
			g.sync()
		})
	}
	State.Listeners["game"] = g.onUpdate
}

func (g *Game) OnDismount() {
	klog.Infof("Game component: OnDismount called")
	delete(State.Listeners, "game")
}

func (g *Game) sync() {
	g.Board = State.Board
	g.Notice = State.Notice
	g.Error = State.Error
}

func (g *Game) OnNav(ctx app.Context) {
	if app.IsServer {
		return
	}
	path := app.Window().URL().Path
	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	klog.Infof("Game component: Navigated to %s, parts: %v", path, parts)

	d := LastDifficulty()
	if len(parts) >= 2 && parts[0] == "game" {
		parsed, err := game.ParseDifficulty(parts[1])
		if err != nil {
			g.Error = fmt.Sprintf("Unknown difficulty %q: pick 1, 2 or 4 suits.", parts[1])
			klog.Errorf("Game component: Error: %v", err)
			return
		}
		d = parsed
	}

	if err := State.ConnectWS(d); err != nil {
		g.Error = fmt.Sprintf("Failed to start a game: %v", err)
		klog.Errorf("Game component: Error connecting: %v", err)
	}
	g.sync()
}

func (g *Game) onCardClick(column, index int) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		e.StopImmediatePropagation()
		State.SendClick(column, index)
	}
}

func (g *Game) onDeal(ctx app.Context, e app.Event) {
	e.PreventDefault()
	State.SendDeal()
}

func (g *Game) onNewGame(ctx app.Context, e app.Event) {
	e.PreventDefault()
	State.SendNewGame(0)
}

func (g *Game) renderCard(column, index int, c game.Card, top int) app.UI {
	classes := []string{"card"}
	switch {
	case !c.FaceUp:
		classes = append(classes, "face-down")
	case c.Suit.IsRed():
		classes = append(classes, "red")
	}
	if g.Board.IsSelected(column, index) {
		classes = append(classes, "selected")
	}

	card := app.Div().
		Class(classes...).
		Style("top", fmt.Sprintf("%dpx", top)).
		OnClick(g.onCardClick(column, index))
	if c.FaceUp {
		label := c.Rank.String() + c.Suit.String()
		card = card.Title(label).Body(
			app.Span().Class("corner").Text(label),
			app.Span().Class("pip").Text(c.Suit.String()),
		)
	}
	return card
}

func (g *Game) renderColumn(column int, cards game.Column) app.UI {
	if len(cards) == 0 {
		return app.Div().Class("tableau-column").Body(
			app.Div().Class("card", "slot").OnClick(g.onCardClick(column, -1)),
		)
	}

	body := make([]app.UI, 0, len(cards))
	top := 0
	for i, c := range cards {
		body = append(body, g.renderCard(column, i, c, top))
		if c.FaceUp {
			top += faceUpOffset
		} else {
			top += faceDownOffset
		}
	}
	// Clicks on the column below its cards go to the top card.
	return app.Div().
		Class("tableau-column").
		Style("min-height", fmt.Sprintf("%dpx", top+120)).
		OnClick(g.onCardClick(column, -1)).
		Body(body...)
}

func (g *Game) renderStatus() app.UI {
	b := g.Board
	dealButton := app.Button().
		Text(fmt.Sprintf("Deal (%d left)", b.DealsLeft)).
		Disabled(b.DealsLeft == 0 || b.Won).
		OnClick(g.onDeal)

	return app.Div().Class("status-bar").Body(
		app.Span().Text(b.Difficulty.String()),
		app.Span().Text(fmt.Sprintf("Score: %d", b.Score)),
		app.Span().Text(fmt.Sprintf("Moves: %d", b.Moves)),
		app.Span().Text(fmt.Sprintf("Completed: %d/%d", b.Foundations, game.WinningSets)),
		dealButton,
	)
}

func (g *Game) renderWin() app.UI {
	return app.Article().Class("win").Body(
		app.H2().Text("You won!"),
		app.P().Text(fmt.Sprintf("Final score %d in %d moves.", g.Board.Score, g.Board.Moves)),
		app.Button().Text("Play again").OnClick(g.onNewGame),
	)
}

func (g *Game) Render() app.UI {
	if g.Error != "" {
		return app.Main().Class("container").Body(
			&TopBar{},
			app.Article().Body(
				app.H2().Text("Game Error"),
				app.P().Style("color", "red").Text(g.Error),
				app.A().Href("/").Text("Return to Home"),
			),
		)
	}

	if g.Board == nil {
		return app.Main().Class("container").Body(
			&TopBar{},
			app.Div().Aria("busy", "true").Text("Dealing..."),
		)
	}

	columns := make([]app.UI, 0, len(g.Board.Columns))
	for i, col := range g.Board.Columns {
		columns = append(columns, g.renderColumn(i, col))
	}

	content := []app.UI{
		&TopBar{ShowNewGame: true},
		g.renderStatus(),
	}
	if g.Notice != "" {
		content = append(content, app.P().Class("notice").Text(g.Notice))
	}
	if g.Board.Won {
		content = append(content, g.renderWin())
	}
	content = append(content, app.Div().Class("tableau").Body(columns...))

	return app.Main().Class("container-fluid").Body(content...)
}
