package ui

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"requestdesk/internal/dashboard"
	"requestdesk/internal/request"
)

const (
	dashboardTitle    = "Gestion des Demandes"
	dashboardSubtitle = "Tableau de bord pour gérer vos demandes d'entreprise"
)

func Dashboard(m dashboard.Model) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.open("div", a("class", "space-y-8"))

		h.open("div", a("class", "text-center space-y-4"))
		h.el("h1", dashboardTitle, a("class", "text-4xl font-bold"))
		h.el("p", dashboardSubtitle, a("class", "text-slate-500 text-lg"))
		h.close("div")

		h.open("div", a("class", "grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-6"))
		for _, c := range m.Cards {
			h.categoryCard(c)
		}
		h.close("div")

		h.open("div", a("class", cardClass), a("id", "recent"))
		h.open("div", a("class", "flex flex-row items-center justify-between p-6"))
		h.el("h3", "Demandes Récentes", a("class", "text-lg font-semibold"))
		h.postButton("/requests/view", "Voir toutes les demandes", "", outlineBtn)
		h.close("div")
		h.open("div", a("class", "p-6 pt-0 space-y-4"))
		for _, s := range m.Recent {
			h.summaryItem(s)
		}
		h.close("div")
		h.close("div")

		h.close("div")
	})
}

func (h *html) categoryCard(c dashboard.Card) {
	h.open("div",
		a("class", "relative overflow-hidden rounded-lg border bg-white shadow-sm hover:shadow-lg transition-all group"),
		a("data-category", string(c.Category)),
	)
	h.open("div", a("class", cls("absolute inset-0 bg-gradient-to-br opacity-5 group-hover:opacity-10", accentGradient[c.Accent])))
	h.close("div")

	h.open("div", a("class", "relative flex flex-row items-center justify-between p-6 pb-2"))
	h.el("h3", c.Title, a("class", "text-sm font-medium"))
	h.icon(c.Icon, "h-4 w-4 text-slate-900")
	h.close("div")

	h.open("div", a("class", "relative p-6 pt-0"))
	h.el("div", strconv.Itoa(c.Count), a("class", "text-2xl font-bold"), a("data-count", strconv.Itoa(c.Count)))
	h.el("p", c.Description, a("class", "text-xs text-slate-500 mt-1"))
	h.open("div", a("class", "flex gap-2 mt-4"))
	h.postButton("/requests/"+string(c.Category)+"/new", "Créer", "plus", cls(primaryBtn, smallBtnExtra, "flex-1"))
	h.postButton("/requests/view", "Voir tout", "", cls(outlineBtn, smallBtnExtra, "flex-1"), a("category", string(c.Category)))
	h.close("div")
	h.close("div")

	h.close("div")
}

func (h *html) summaryItem(s request.Summary) {
	h.open("div",
		a("class", "flex items-center justify-between p-4 rounded-lg border hover:shadow-md transition-all"),
		a("data-request", s.ID),
	)
	h.open("div", a("class", "flex items-center space-x-4"))
	h.open("div", a("class", "flex items-center space-x-2"))
	h.icon(s.Status.Icon(), statusIconClass[s.Status])
	h.badge(s.Status)
	h.close("div")
	h.open("div")
	h.el("p", s.Title, a("class", "font-medium"))
	h.el("p", "Par "+s.Requester+" • "+s.Date, a("class", "text-sm text-slate-500"))
	h.close("div")
	h.close("div")
	h.el("button", "Voir détails", a("type", "button"), a("class", cls(ghostBtn, smallBtnExtra)))
	h.close("div")
}

// Requests lists every known request. The category chosen on the dashboard
// does not filter it.
func Requests(m dashboard.Model) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.open("div", a("class", "space-y-6"))
		h.open("div", a("class", "flex items-center space-x-4"))
		h.postButton("/back", "Retour", "arrow-left", ghostBtn)
		h.el("h1", "Toutes les demandes", a("class", "text-2xl font-bold"))
		h.close("div")

		h.cardOpen("", "")
		h.raw(`<div class="pt-6 space-y-4">`)
		for _, s := range m.All {
			h.summaryItem(s)
		}
		h.raw(`</div>`)
		h.cardClose()
		h.close("div")
	})
}
