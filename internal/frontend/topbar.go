package frontend

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

type TopBar struct {
	app.Compo
	ShowNewGame bool
}

func (t *TopBar) onBannerClick(ctx app.Context, e app.Event) {
	e.PreventDefault()
	ctx.Navigate("/")
}

func (t *TopBar) onNewGame(ctx app.Context, e app.Event) {
	e.PreventDefault()
	State.SendNewGame(0)
}

func (t *TopBar) Render() app.UI {
	var actions []app.UI
	if t.ShowNewGame {
		actions = append(actions,
			app.Li().Body(app.A().Href("#").OnClick(t.onNewGame).Text("New game")),
			app.Li().Body(app.A().Href("/").OnClick(t.onBannerClick).Text("Difficulty")),
		)
	}

	return app.Nav().Body(
		app.Ul().Body(
			app.Li().Body(
				app.A().Href("/").Class("banner").OnClick(t.onBannerClick).Body(
					app.Strong().Text("♠ GoSpider"),
				),
			),
		),
		app.Ul().Body(actions...),
	)
}
