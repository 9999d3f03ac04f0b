package request

import (
	"errors"
	"fmt"
)

var ErrUnknownCategory = errors.New("unknown category")

type Category string

const (
	CategoryEthics   Category = "ethics"
	CategoryVisit    Category = "visit"
	CategoryTravel   Category = "travel"
	CategoryPurchase Category = "purchase"
)

// Categories lists every category in dashboard order.
var Categories = []Category{CategoryEthics, CategoryVisit, CategoryTravel, CategoryPurchase}

func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryEthics, CategoryVisit, CategoryTravel, CategoryPurchase:
		return Category(s), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownCategory, s)
	}
}

// Info is the dashboard card metadata of a category.
type Info struct {
	Title       string
	Description string
	Icon        string
	Accent      string
}

var categoryInfo = map[Category]Info{
	CategoryEthics: {
		Title:       "Comité Éthique",
		Description: "Demandes d'analyse éthique pour les projets commerciaux",
		Icon:        "file-text",
		Accent:      "blue",
	},
	CategoryVisit: {
		Title:       "Visite Externe",
		Description: "Gestion des visites clients et partenaires",
		Icon:        "users",
		Accent:      "green",
	},
	CategoryTravel: {
		Title:       "Voyage Professionnel",
		Description: "Demandes de déplacements et missions",
		Icon:        "plane",
		Accent:      "purple",
	},
	CategoryPurchase: {
		Title:       "Demande d'Achat",
		Description: "Achats de matériel et services",
		Icon:        "shopping-cart",
		Accent:      "orange",
	},
}

func (c Category) Info() Info {
	return categoryInfo[c]
}

// Noun completes "Votre demande ..." in the submission confirmation.
func (c Category) Noun() string {
	switch c {
	case CategoryEthics:
		return "de comité éthique"
	case CategoryVisit:
		return "de visite externe"
	case CategoryTravel:
		return "de voyage professionnel"
	case CategoryPurchase:
		return "d'achat"
	default:
		return ""
	}
}
