package frontend

import (
	"fmt"

	"github.com/janpfeifer/GoSpider/internal/game"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// Home is the landing page: it picks the difficulty of the next game.
type Home struct {
	app.Compo
	suggested game.Difficulty
}

func (h *Home) OnMount(ctx app.Context) {
	klog.V(1).Infof("Home: OnMount called")
	h.suggested = LastDifficulty()
}

func (h *Home) OnAppUpdate(ctx app.Context) {
	klog.Infof("Home component: App update available, reloading...")
	ctx.Reload()
}

func (h *Home) onPick(d game.Difficulty) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		e.PreventDefault()
		RememberDifficulty(d)
		ctx.Navigate(fmt.Sprintf("/game/%d", int(d)))
	}
}

func (h *Home) Render() app.UI {
	descriptions := map[game.Difficulty]string{
		game.OneSuit:   "Spades only. Every run can be built anywhere.",
		game.TwoSuits:  "Spades and hearts.",
		game.FourSuits: "All four suits. For the patient.",
	}

	var choices []app.UI
	for _, d := range []game.Difficulty{game.OneSuit, game.TwoSuits, game.FourSuits} {
		button := app.Button().Text(d.String()).OnClick(h.onPick(d))
		if d != h.suggested {
			button = button.Class("secondary")
		}
		choices = append(choices, app.Div().Class("difficulty-choice").Body(
			button,
			app.Small().Text(descriptions[d]),
		))
	}

	return app.Main().Class("container").Body(
		&TopBar{},
		app.Article().Body(
			app.Header().Body(
				app.H2().Text("Spider Solitaire"),
			),
			app.P().Text("Build runs from King down to Ace in a single suit to clear them from the table. Clear all eight to win."),
			app.Div().Class("difficulty-choices").Body(choices...),
		),
	)
}
