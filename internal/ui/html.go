package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

type attr struct {
	name  string
	value string
	bare  bool
}

func a(name, value string) attr { return attr{name: name, value: value} }

// on is a boolean attribute such as checked or disabled.
func on(name string) attr { return attr{name: name, bare: true} }

func when(cond bool, at attr) attr {
	if !cond {
		return attr{}
	}
	return at
}

// html writes markup and keeps the first write error.
type html struct {
	w   io.Writer
	err error
	// required marks labels of mandatory fields; nil outside a form.
	required func(name string) bool
}

func component(fn func(ctx context.Context, h *html)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		fn(ctx, h)
		return h.err
	})
}

func (h *html) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *html) open(tag string, attrs ...attr) {
	h.raw("<" + tag)
	h.attrs(attrs)
	h.raw(">")
}

func (h *html) attrs(attrs []attr) {
	for _, at := range attrs {
		switch {
		case at.name == "":
		case at.bare:
			h.raw(" " + at.name)
		default:
			h.raw(" " + at.name + `="` + templ.EscapeString(at.value) + `"`)
		}
	}
}

func (h *html) close(tag string) {
	h.raw("</" + tag + ">")
}

// el writes <tag attrs>text</tag>.
func (h *html) el(tag, text string, attrs ...attr) {
	h.open(tag, attrs...)
	h.text(text)
	h.close(tag)
}

func (h *html) render(ctx context.Context, c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

func cls(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += p
	}
	return out
}
