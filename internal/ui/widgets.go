package ui

import (
	"strconv"

	"requestdesk/internal/forms"
	"requestdesk/internal/request"
)

const (
	controlClass  = "flex w-full rounded-md border border-slate-300 bg-white px-3 py-2 text-sm focus:outline-none focus:ring-2 focus:ring-slate-400"
	labelClass    = "text-sm font-medium leading-none"
	cardClass     = "rounded-lg border bg-white text-slate-900 shadow-sm"
	primaryBtn    = "inline-flex items-center justify-center rounded-md bg-slate-900 px-4 py-2 text-sm font-medium text-white hover:bg-slate-800"
	outlineBtn    = "inline-flex items-center justify-center rounded-md border border-slate-300 bg-white px-4 py-2 text-sm font-medium hover:bg-slate-100"
	ghostBtn      = "inline-flex items-center justify-center rounded-md px-4 py-2 text-sm font-medium hover:bg-slate-100"
	smallBtnExtra = "px-3 py-1.5 text-xs"
)

var accentGradient = map[string]string{
	"blue":   "from-blue-500 to-blue-600",
	"green":  "from-green-500 to-green-600",
	"purple": "from-purple-500 to-purple-600",
	"orange": "from-orange-500 to-orange-600",
}

var toneClass = map[request.Tone]string{
	request.ToneNeutral:  "bg-slate-100 text-slate-800",
	request.TonePositive: "bg-slate-900 text-white",
	request.ToneNegative: "bg-red-600 text-white",
}

var statusIconClass = map[request.Status]string{
	request.StatusApproved: "h-4 w-4 text-green-600",
	request.StatusRejected: "h-4 w-4 text-red-600",
	request.StatusPending:  "h-4 w-4 text-amber-500",
}

// postButton is a one-button form, since every navigation is a POST.
func (h *html) postButton(action, label, icon, class string, hidden ...attr) {
	h.open("form", a("method", "post"), a("action", action), a("class", "contents"))
	for _, at := range hidden {
		h.open("input", a("type", "hidden"), a("name", at.name), a("value", at.value))
	}
	h.open("button", a("type", "submit"), a("class", class))
	if icon != "" {
		h.icon(icon, "h-4 w-4 mr-2")
	}
	h.text(label)
	h.close("button")
	h.close("form")
}

func (h *html) badge(s request.Status) {
	h.el("span", s.Label(),
		a("class", cls("inline-flex items-center rounded-full px-2.5 py-0.5 text-xs font-semibold", toneClass[s.Tone()])),
		a("data-tone", string(s.Tone())),
	)
}

func (h *html) cardOpen(title string, extra string) {
	h.open("div", a("class", cls(cardClass, extra)))
	if title != "" {
		h.open("div", a("class", "flex flex-col space-y-1.5 p-6"))
		h.el("h3", title, a("class", "text-lg font-semibold leading-none tracking-tight"))
		h.close("div")
	}
	h.open("div", a("class", "p-6 pt-0 space-y-6"))
}

func (h *html) cardClose() {
	h.close("div")
	h.close("div")
}

func (h *html) section(title string) {
	h.raw(`<hr class="my-2 border-slate-200">`)
	h.el("h2", title, a("class", "text-xl font-semibold"))
}

func (h *html) subheading(title string) {
	h.el("h3", title, a("class", "text-lg font-medium text-slate-700"))
}

func (h *html) label(forID, text string) {
	h.el("label", text, when(forID != "", a("for", forID)), a("class", labelClass))
}

// caption appends the mandatory marker to the label of a required field.
func (h *html) caption(name, text string) string {
	if h.required != nil && h.required(name) {
		return text + " *"
	}
	return text
}

func (h *html) fieldOpen() {
	h.open("div", a("class", "space-y-2"))
}

func (h *html) fieldClose() {
	h.close("div")
}

func (h *html) input(name, typ, value, placeholder string, extra ...attr) {
	attrs := []attr{
		a("id", name),
		a("name", name),
		a("type", typ),
		a("value", value),
		when(placeholder != "", a("placeholder", placeholder)),
		a("class", controlClass),
	}
	h.open("input", append(attrs, extra...)...)
}

func (h *html) textarea(name, value, placeholder string, rows int) {
	h.open("textarea",
		a("id", name),
		a("name", name),
		a("rows", strconv.Itoa(rows)),
		when(placeholder != "", a("placeholder", placeholder)),
		a("class", controlClass),
	)
	h.text(value)
	h.close("textarea")
}

func (h *html) selectBox(name, value, placeholder string, options []forms.Option) {
	h.open("select", a("id", name), a("name", name), a("class", controlClass))
	h.open("option", a("value", ""), when(value == "", on("selected")))
	h.text(placeholder)
	h.close("option")
	for _, o := range options {
		h.open("option", a("value", o.Value), when(o.Value == value, on("selected")))
		h.text(o.Label)
		h.close("option")
	}
	h.close("select")
}

func (h *html) radios(name, value string, options []forms.Option) {
	h.open("div", a("class", "flex flex-wrap gap-4"), a("role", "radiogroup"))
	for _, o := range options {
		id := name + "-" + o.Value
		h.open("div", a("class", "flex items-center space-x-2"))
		h.open("input",
			a("type", "radio"),
			a("id", id),
			a("name", name),
			a("value", o.Value),
			when(o.Value == value, on("checked")),
		)
		h.label(id, o.Label)
		h.close("div")
	}
	h.close("div")
}

// Composite rows used by the form pages.

func (h *html) inputField(name, label, typ, value, placeholder string, extra ...attr) {
	h.fieldOpen()
	h.label(name, h.caption(name, label))
	h.input(name, typ, value, placeholder, extra...)
	h.fieldClose()
}

func (h *html) textareaField(name, label, value, placeholder string, rows int) {
	h.fieldOpen()
	h.label(name, h.caption(name, label))
	h.textarea(name, value, placeholder, rows)
	h.fieldClose()
}

func (h *html) selectField(name, label, value, placeholder string, options []forms.Option) {
	h.fieldOpen()
	h.label(name, h.caption(name, label))
	h.selectBox(name, value, placeholder, options)
	h.fieldClose()
}

func (h *html) radioField(name, label, value string, options []forms.Option) {
	h.open("div", a("class", "space-y-4"))
	h.label("", h.caption(name, label))
	h.radios(name, value, options)
	h.close("div")
}

func (h *html) gridOpen() {
	h.open("div", a("class", "grid grid-cols-1 md:grid-cols-2 gap-6"))
}

func (h *html) summaryRow(label, value string) {
	h.open("div", a("class", "flex justify-between"))
	h.el("span", label, a("class", "text-slate-500"))
	h.el("span", value, a("class", "font-medium"))
	h.close("div")
}
