package ui

// Lucide outlines, inlined so pages need no icon font.
var iconPaths = map[string]string{
	"file-text":     `<path d="M15 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V7Z"/><path d="M14 2v4a2 2 0 0 0 2 2h4"/><path d="M10 9H8"/><path d="M16 13H8"/><path d="M16 17H8"/>`,
	"users":         `<path d="M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"/><circle cx="9" cy="7" r="4"/><path d="M22 21v-2a4 4 0 0 0-3-3.87"/><path d="M16 3.13a4 4 0 0 1 0 7.75"/>`,
	"plane":         `<path d="M17.8 19.2 16 11l3.5-3.5C21 6 21.5 4 21 3c-1-.5-3 0-4.5 1.5L13 8 4.8 6.2c-.5-.1-.9.1-1.1.5l-.3.5c-.2.5-.1 1 .3 1.3L9 12l-2 3H4l-1 1 3 2 2 3 1-1v-3l3-2 3.5 5.3c.3.4.8.5 1.3.3l.5-.2c.4-.3.6-.7.5-1.2z"/>`,
	"shopping-cart": `<circle cx="8" cy="21" r="1"/><circle cx="19" cy="21" r="1"/><path d="M2.05 2.05h2l2.66 12.42a2 2 0 0 0 2 1.58h9.78a2 2 0 0 0 1.95-1.57l1.65-7.43H5.12"/>`,
	"plus":          `<path d="M5 12h14"/><path d="M12 5v14"/>`,
	"clock":         `<circle cx="12" cy="12" r="10"/><polyline points="12 6 12 12 16 14"/>`,
	"check-circle":  `<path d="M22 11.08V12a10 10 0 1 1-5.93-9.14"/><polyline points="22 4 12 14.01 9 11.01"/>`,
	"x-circle":      `<circle cx="12" cy="12" r="10"/><path d="m15 9-6 6"/><path d="m9 9 6 6"/>`,
	"arrow-left":    `<path d="m12 19-7-7 7-7"/><path d="M19 12H5"/>`,
	"save":          `<path d="M19 21H5a2 2 0 0 1-2-2V5a2 2 0 0 1 2-2h11l5 5v11a2 2 0 0 1-2 2z"/><polyline points="17 21 17 13 7 13 7 21"/><polyline points="7 3 7 8 15 8"/>`,
	"send":          `<path d="m22 2-7 20-4-9-9-4Z"/><path d="M22 2 11 13"/>`,
	"external-link": `<path d="M15 3h6v6"/><path d="M10 14 21 3"/><path d="M18 13v6a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V8a2 2 0 0 1 2-2h6"/>`,
}

func (h *html) icon(name, class string) {
	paths, ok := iconPaths[name]
	if !ok {
		return
	}
	h.open("svg",
		a("xmlns", "http://www.w3.org/2000/svg"),
		a("viewBox", "0 0 24 24"),
		a("fill", "none"),
		a("stroke", "currentColor"),
		a("stroke-width", "2"),
		a("stroke-linecap", "round"),
		a("stroke-linejoin", "round"),
		a("class", class),
		a("aria-hidden", "true"),
		a("data-icon", name),
	)
	h.raw(paths)
	h.close("svg")
}
