package ui

import (
	"context"

	"github.com/a-h/templ"

	"requestdesk/internal/notify"
	"requestdesk/internal/request"
)

const tailwindURL = "https://cdn.tailwindcss.com"

type PageProps struct {
	Title   string
	HTMXURL string
	// View is echoed as data-view on <main> for scripted clients.
	View  request.View
	Toast *notify.Notification
	Body  templ.Component
}

// Page is the full HTML document around a view.
func Page(p PageProps) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw("<!DOCTYPE html>")
		h.open("html", a("lang", "fr"))
		h.open("head")
		h.open("meta", a("charset", "utf-8"))
		h.open("meta", a("name", "viewport"), a("content", "width=device-width, initial-scale=1"))
		h.el("title", p.Title)
		h.open("script", a("src", tailwindURL))
		h.close("script")
		if p.HTMXURL != "" {
			h.open("script", a("src", p.HTMXURL))
			h.close("script")
		}
		h.close("head")

		h.open("body", a("class", "min-h-screen bg-slate-50 text-slate-900"))
		h.open("main",
			a("class", "container mx-auto max-w-6xl px-4 py-8"),
			when(p.View != "", a("data-view", string(p.View))),
		)
		if p.Body != nil {
			h.render(ctx, p.Body)
		}
		h.close("main")
		if p.Toast != nil {
			h.render(ctx, Toast(*p.Toast))
		}
		h.close("body")
		h.close("html")
	})
}

func Toast(n notify.Notification) templ.Component {
	return component(func(_ context.Context, h *html) {
		class := "fixed bottom-4 right-4 z-50 w-96 rounded-md border bg-white p-4 shadow-lg"
		if n.Severity == notify.SeverityDestructive {
			class = "fixed bottom-4 right-4 z-50 w-96 rounded-md border border-red-600 bg-red-600 p-4 text-white shadow-lg"
		}
		h.open("div",
			a("id", "toast"),
			a("role", "status"),
			a("class", class),
			a("data-severity", string(n.Severity)),
		)
		h.el("div", n.Title, a("class", "text-sm font-semibold"))
		if n.Description != "" {
			h.el("div", n.Description, a("class", "text-sm opacity-90"))
		}
		h.close("div")
	})
}
