package web

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"requestdesk/internal/api"
	"requestdesk/internal/dashboard"
	"requestdesk/internal/desk"
	"requestdesk/internal/request"
	"requestdesk/internal/ui"
	"requestdesk/pkg/logging"
)

// Handlers map browser actions onto the session's desk. Every mutation
// answers with a redirect to / except htmx field updates, which get the
// re-rendered form.
type Handlers struct {
	// Requests feeds the dashboard and the request list.
	Requests []request.Summary
	HTMXURL  string
}

func (h Handlers) Index(w http.ResponseWriter, r *http.Request) {
	sess := api.SessionFromContext(r.Context())
	if sess == nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "missing session")
		return
	}

	// Rendered under the session lock, written after it.
	var page bytes.Buffer
	err := sess.Do(func(d *desk.Desk) error {
		view := d.View()
		props := ui.PageProps{HTMXURL: h.HTMXURL, View: view}
		if n, ok := d.Notifications().Take(); ok {
			props.Toast = &n
		}

		m := dashboard.Build(h.Requests)
		switch view {
		case request.ViewEthics, request.ViewVisit, request.ViewTravel, request.ViewPurchase:
			c, _ := view.Category()
			props.Title = c.Info().Title
			props.Body = ui.FormPage(d.Form())
		case request.ViewRequests:
			props.Title = "Toutes les demandes"
			props.Body = ui.Requests(m)
		default:
			props.Title = "Gestion des Demandes"
			props.Body = ui.Dashboard(m)
		}

		if err := ui.Page(props).Render(r.Context(), &page); err != nil {
			return fmt.Errorf("render %s: %w", view, err)
		}
		return nil
	})
	if err != nil {
		writeDeskError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = page.WriteTo(w)
}

func (h Handlers) CreateRequest(w http.ResponseWriter, r *http.Request) {
	c, ok := categoryParam(w, r)
	if !ok {
		return
	}
	h.mutate(w, r, func(d *desk.Desk) error {
		return d.CreateRequest(c)
	})
}

func (h Handlers) ViewRequests(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		api.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid form body")
		return
	}
	var filter *request.Category
	if raw := r.PostForm.Get("category"); raw != "" {
		c, err := request.ParseCategory(raw)
		if err != nil {
			writeDeskError(w, r, err)
			return
		}
		filter = &c
	}
	h.mutate(w, r, func(d *desk.Desk) error {
		d.ViewRequests(filter)
		return nil
	})
}

func (h Handlers) Back(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(d *desk.Desk) error {
		d.Back()
		return nil
	})
}

// ApplyFields takes the whole posted form. htmx sends it on every change.
func (h Handlers) ApplyFields(w http.ResponseWriter, r *http.Request) {
	c, ok := categoryParam(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		api.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid form body")
		return
	}
	h.edit(w, r, c, func(d *desk.Desk) error {
		return d.Apply(c, r.PostForm)
	})
}

func (h Handlers) UpdateField(w http.ResponseWriter, r *http.Request) {
	c, ok := categoryParam(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		api.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid form body")
		return
	}
	name := chi.URLParam(r, "field")
	value := r.PostForm.Get("value")
	h.edit(w, r, c, func(d *desk.Desk) error {
		return d.UpdateField(c, name, value)
	})
}

func (h Handlers) Save(w http.ResponseWriter, r *http.Request) {
	c, ok := categoryParam(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		api.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid form body")
		return
	}
	h.mutate(w, r, func(d *desk.Desk) error {
		if err := d.Apply(c, r.PostForm); err != nil {
			return err
		}
		return d.Save(c)
	})
}

func (h Handlers) Submit(w http.ResponseWriter, r *http.Request) {
	c, ok := categoryParam(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		api.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid form body")
		return
	}
	h.mutate(w, r, func(d *desk.Desk) error {
		if err := d.Apply(c, r.PostForm); err != nil {
			return err
		}
		submitted, err := d.Submit(c)
		if err != nil {
			return err
		}
		if submitted {
			logging.FromContext(r.Context()).WithField("category", c).Info("request submitted")
		}
		return nil
	})
}

// mutate runs fn on the session desk and redirects to the current view.
func (h Handlers) mutate(w http.ResponseWriter, r *http.Request, fn func(d *desk.Desk) error) {
	sess := api.SessionFromContext(r.Context())
	if sess == nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "missing session")
		return
	}
	if err := sess.Do(fn); err != nil {
		writeDeskError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// edit is mutate for field changes: htmx callers get the form fragment back.
func (h Handlers) edit(w http.ResponseWriter, r *http.Request, c request.Category, fn func(d *desk.Desk) error) {
	if r.Header.Get("HX-Request") != "true" {
		h.mutate(w, r, fn)
		return
	}

	sess := api.SessionFromContext(r.Context())
	if sess == nil {
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "missing session")
		return
	}
	err := sess.Do(func(d *desk.Desk) error {
		if err := fn(d); err != nil {
			return err
		}
		f, err := d.ActiveForm(c)
		if err != nil {
			return err
		}
		templ.Handler(ui.FormPage(f)).ServeHTTP(w, r)
		return nil
	})
	if err != nil {
		writeDeskError(w, r, err)
	}
}

func categoryParam(w http.ResponseWriter, r *http.Request) (request.Category, bool) {
	c, err := request.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		writeDeskError(w, r, err)
		return "", false
	}
	return c, true
}

func writeDeskError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, ok := api.StatusFor(err)
	if !ok {
		logging.FromContext(r.Context()).WithError(err).Error("desk operation failed")
		api.WriteError(w, status, code, "internal error")
		return
	}
	api.WriteError(w, status, code, err.Error())
}
