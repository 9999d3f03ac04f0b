package forms

// Option is one choice of a select or radio group.
type Option struct {
	Value string
	Label string
}

var (
	YesNo = []Option{
		{Value: "oui", Label: "Oui"},
		{Value: "non", Label: "Non"},
	}
	YesNoUncertain = []Option{
		{Value: "oui", Label: "Oui"},
		{Value: "non", Label: "Non"},
		{Value: "incertain", Label: "Incertain"},
	}
	DeploymentOptions = []Option{
		{Value: "saas", Label: "SaaS"},
		{Value: "onpremise", Label: "On-Premise"},
		{Value: "incertain", Label: "Incertain"},
	}
	RiskLevels = []Option{
		{Value: "faible", Label: "Faible"},
		{Value: "moyen", Label: "Moyen"},
		{Value: "eleve", Label: "Élevé"},
	}

	VisitorTypes = []Option{
		{Value: "client", Label: "Un.e client.e"},
		{Value: "partner", Label: "Un.e partenaire"},
		{Value: "supplier", Label: "Un.e fournisseur"},
		{Value: "other", Label: "Autre"},
	}
	Locations = []Option{
		{Value: "lepic", Label: "Lepic"},
		{Value: "fromentin", Label: "Fromentin"},
	}
	fromentinRooms = []Option{
		{Value: "terre", Label: "Terre"},
		{Value: "mer", Label: "Mer"},
		{Value: "air", Label: "Air"},
		{Value: "pierre", Label: "Pierre"},
		{Value: "brique", Label: "Brique"},
	}
	lepicRooms = []Option{
		{Value: "sous-sol", Label: "Sous-sol Lepic"},
	}

	Transportations = []Option{
		{Value: "avion", Label: "Avion"},
		{Value: "train", Label: "Train"},
		{Value: "voiture", Label: "Voiture de fonction"},
		{Value: "voiture-perso", Label: "Voiture personnelle"},
		{Value: "autre", Label: "Autre"},
	}
	Accommodations = []Option{
		{Value: "hotel-3", Label: "Hôtel 3 étoiles"},
		{Value: "hotel-4", Label: "Hôtel 4 étoiles"},
		{Value: "hotel-5", Label: "Hôtel 5 étoiles"},
		{Value: "appartement", Label: "Appartement/Résidence"},
		{Value: "aucun", Label: "Aucun hébergement nécessaire"},
	}
	Urgencies = []Option{
		{Value: "normal", Label: "Normal (2-3 semaines)"},
		{Value: "urgent", Label: "Urgent (1 semaine)"},
		{Value: "tres-urgent", Label: "Très urgent (quelques jours)"},
	}

	Entities = []Option{
		{Value: "sahar", Label: "Sahar"},
		{Value: "fondation", Label: "Fondation"},
	}
)

// RoomOptions lists the rooms of a site. An unknown or empty location has none.
func RoomOptions(location string) []Option {
	switch location {
	case "fromentin":
		return fromentinRooms
	case "lepic":
		return lepicRooms
	default:
		return nil
	}
}
