package frontend

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/janpfeifer/GoSpider/internal/game"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// difficultyCookie remembers the last difficulty picked, so the home page can suggest it.
// Games themselves are never saved.
const difficultyCookie = "gospider_difficulty"

// LastDifficulty returns the difficulty last played in this browser, or OneSuit.
func LastDifficulty() game.Difficulty {
	d, err := game.ParseDifficulty(getCookie(difficultyCookie))
	if err != nil {
		return game.OneSuit
	}
	return d
}

// RememberDifficulty stores d for a year.
func RememberDifficulty(d game.Difficulty) {
	klog.V(1).Infof("RememberDifficulty: %s", d)
	setCookie(difficultyCookie, strconv.Itoa(int(d)), 365)
}

func getCookie(name string) string {
	if app.IsServer {
		return ""
	}
	document := app.Window().Get("document")
	if !document.Truthy() {
		return ""
	}
	for _, kv := range strings.Split(document.Get("cookie").String(), ";") {
		key, value, found := strings.Cut(strings.TrimSpace(kv), "=")
		if !found || key != name {
			continue
		}
		v, _ := url.QueryUnescape(value)
		return v
	}
	return ""
}

func setCookie(name, value string, days int) {
	if app.IsServer {
		return
	}
	document := app.Window().Get("document")
	if !document.Truthy() {
		return
	}
	expires := ""
	if days > 0 {
		t := time.Now().AddDate(0, 0, days)
		expires = "; expires=" + t.UTC().Format(time.RFC1123)
	}
	document.Set("cookie", name+"="+url.QueryEscape(value)+expires+"; path=/")
}
