package forms

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/form"
	"github.com/go-playground/validator/v10"

	"requestdesk/internal/notify"
	"requestdesk/internal/request"
)

type State string

const (
	StateEditing   State = "editing"
	StateSubmitted State = "submitted"
)

const (
	draftTitle       = "Brouillon sauvegardé"
	draftDescription = "Votre demande a été sauvegardée en tant que brouillon."

	missingTitle       = "Champs requis manquants"
	missingDescription = "Veuillez remplir tous les champs obligatoires."

	submittedTitle = "Demande soumise"
)

// Form is the behaviour shared by the four request forms.
type Form interface {
	Category() request.Category
	State() State
	// UpdateField overwrites one field. Unknown names return ErrUnknownField.
	UpdateField(name, value string) error
	// Apply overwrites every known field present in values; other keys are ignored.
	Apply(values url.Values) error
	Values() url.Values
	// IsRequired reports whether name must be non-empty for Submit to succeed.
	IsRequired(name string) bool
	Save(n notify.Notifier)
	Submit(n notify.Notifier) error
}

var (
	decoder  = form.NewDecoder()
	encoder  = form.NewEncoder()
	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// base carries the typed field record T of one form instance.
type base[T any] struct {
	category request.Category
	state    State
	fields   T
	known    map[string]bool
}

func newBase[T any](c request.Category, fields T) base[T] {
	return base[T]{
		category: c,
		state:    StateEditing,
		fields:   fields,
		known:    fieldNames(reflect.TypeOf(fields)),
	}
}

func fieldNames(t reflect.Type) map[string]bool {
	out := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name := strings.SplitN(t.Field(i).Tag.Get("form"), ",", 2)[0]
		if name != "" && name != "-" {
			out[name] = true
		}
	}
	return out
}

func (b *base[T]) Category() request.Category { return b.category }

func (b *base[T]) State() State { return b.state }

// Fields returns a copy of the typed record.
func (b *base[T]) Fields() T { return b.fields }

func (b *base[T]) UpdateField(name, value string) error {
	if !b.known[name] {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	if err := decoder.Decode(&b.fields, url.Values{name: {value}}); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (b *base[T]) Apply(values url.Values) error {
	filtered := url.Values{}
	for name, v := range values {
		if b.known[name] && len(v) > 0 {
			filtered[name] = v[:1]
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	if err := decoder.Decode(&b.fields, filtered); err != nil {
		return fmt.Errorf("decode %s form: %w", b.category, err)
	}
	return nil
}

func (b *base[T]) Values() url.Values {
	values, err := encoder.Encode(&b.fields)
	if err != nil {
		// Every field is a plain string, encoding cannot fail.
		return url.Values{}
	}
	return values
}

func (b *base[T]) Save(n notify.Notifier) {
	n.Notify(draftTitle, draftDescription, notify.SeverityDefault)
}

func (b *base[T]) Submit(n notify.Notifier) error {
	if missing := b.missing(); len(missing) > 0 {
		b.state = StateEditing
		n.Notify(missingTitle, missingDescription, notify.SeverityDestructive)
		return ValidationError{
			Code:    "REQUIRED_FIELDS_MISSING",
			Message: "required fields are empty",
			Fields:  missing,
		}
	}

	b.state = StateSubmitted
	n.Notify(submittedTitle, fmt.Sprintf("Votre demande %s a été soumise avec succès.", b.category.Noun()), notify.SeverityDefault)
	return nil
}

func (b *base[T]) IsRequired(name string) bool {
	t := reflect.TypeOf(b.fields)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if strings.SplitN(f.Tag.Get("form"), ",", 2)[0] == name {
			return strings.Contains(f.Tag.Get("validate"), "required")
		}
	}
	return false
}

func (b *base[T]) missing() []string {
	err := validate.Struct(&b.fields)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fe.Field())
	}
	return out
}

// New opens a fresh form for c. now seeds date defaults.
func New(c request.Category, now time.Time) (Form, error) {
	switch c {
	case request.CategoryEthics:
		return NewEthics(now), nil
	case request.CategoryVisit:
		return NewVisit(), nil
	case request.CategoryTravel:
		return NewTravel(), nil
	case request.CategoryPurchase:
		return NewPurchase(), nil
	default:
		return nil, fmt.Errorf("%w: %s", request.ErrUnknownCategory, c)
	}
}
