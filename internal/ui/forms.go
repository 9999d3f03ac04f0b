package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/a-h/templ"

	"requestdesk/internal/forms"
	"requestdesk/internal/request"
)

const detailsPlaceholder = "Détaillez si vous disposez d'éléments complémentaires"

// FormPage renders the open form, header buttons included. It is also the
// fragment swapped in by htmx after a field change.
func FormPage(f forms.Form) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.required = f.IsRequired
		c := f.Category()
		base := "/forms/" + string(c)
		h.open("form",
			a("id", "request-form"),
			a("method", "post"),
			a("action", base+"/save"),
			a("hx-post", base+"/fields"),
			a("hx-trigger", "change"),
			a("hx-swap", "outerHTML"),
			a("data-category", string(c)),
			a("class", "space-y-6"),
		)

		switch f := f.(type) {
		case *forms.Ethics:
			h.formHeader(base, "Demande de Comité Éthique", "")
			h.ethicsBody(f)
		case *forms.Visit:
			h.formHeader(base, "Demande de Visite Externe", "users")
			h.visitBody(f)
		case *forms.Travel:
			h.formHeader(base, "Demande de Voyage Professionnel", "plane")
			h.travelBody(f)
		case *forms.Purchase:
			h.formHeader(base, "Demande d'Achat", "shopping-cart")
			h.purchaseBody(f)
		default:
			h.err = fmt.Errorf("render form: %w: %s", request.ErrUnknownCategory, c)
		}

		h.close("form")
	})
}

func (h *html) submitButton(action, label, icon, class string) {
	h.open("button", a("type", "submit"), a("formaction", action), a("class", class))
	h.icon(icon, "h-4 w-4 mr-2")
	h.text(label)
	h.close("button")
}

func (h *html) formHeader(base, title, icon string) {
	h.open("div", a("class", "flex items-center justify-between"))
	h.open("div", a("class", "flex items-center space-x-4"))
	h.submitButton("/back", "Retour", "arrow-left", ghostBtn)
	h.open("h1", a("class", "text-2xl font-bold flex items-center"))
	if icon != "" {
		h.icon(icon, "h-6 w-6 mr-2 text-slate-900")
	}
	h.text(title)
	h.close("h1")
	h.close("div")
	h.open("div", a("class", "flex space-x-2"))
	h.submitButton(base+"/save", "Sauvegarder", "save", outlineBtn)
	h.submitButton(base+"/submit", "Soumettre", "send", primaryBtn)
	h.close("div")
	h.close("div")
}

func (h *html) ethicsBody(f *forms.Ethics) {
	v := f.Fields()

	h.open("div", a("class", cardClass))
	h.open("div", a("class", "flex flex-col space-y-1.5 p-6"))
	h.el("h3", "DEMANDE DE COMITÉ ÉTHIQUE", a("class", "text-lg font-semibold text-center"))
	h.el("div", "• • •", a("class", "text-2xl text-center"))
	h.close("div")
	h.open("div", a("class", "p-6 pt-0 space-y-8"))

	h.gridOpen()
	h.inputField("requester", "Demandeur (NOM, Prénom, Fonction)", "text", v.Requester, "Nom Prénom, Fonction")
	h.inputField("requestDate", "Date de la demande", "date", v.RequestDate, "")
	h.inputField("country", "Pays concerné", "text", v.Country, "Pays")
	h.inputField("clientPartner", "Client / Partenaire", "text", v.ClientPartner, "Numéro OSI ou nom de l'entreprise")
	h.inputField("product", "Produit concerné", "text", v.Product, "Nom du produit")
	h.close("div")

	h.section("1. Contexte commercial")
	h.textareaField("projectDescription", "1.1. Brève description du projet", v.ProjectDescription, "Produit, client, marché, rencontre(s) passée(s) et à venir", 4)
	h.textareaField("contractMode", "1.2. Mode de contractualisation", v.ContractMode, "Direct et/ou intermédiaire français ou locaux", 4)
	h.textareaField("commercialObjectives", "1.3. Objectifs commerciaux", v.CommercialObjectives, "À quelle phase de la relation commerciale l'entreprise est engagée et dans quelle échéancier", 4)
	h.textareaField("strategicImportance", "1.4. Importance stratégique", v.StrategicImportance, "Chiffre d'affaires estimé, ouverture marché, partenariat clé", 4)
	h.textareaField("opportunityContext", "1.5. Contexte de l'opportunité et lieu de rencontre", v.OpportunityContext, "Salon, démarchage, recommandation, intermédiaire", 4)

	h.section("2. Analyse éthique initiale par le demandeur")
	h.subheading("Droits humains et usages potentiels")
	h.question("surveillanceRisk", "2.1. L'outil pourrait-il être utilisé pour de la surveillance, de la censure ou des discriminations ?", v.SurveillanceRisk, forms.YesNoUncertain,
		"surveillanceDetails", v.SurveillanceDetails, detailsPlaceholder)

	h.subheading("Données et cybersécurité")
	h.question("personalData", "2.2. Des données personnelles seront-elles collectées, stockées ou transférées à l'international ?", v.PersonalData, forms.YesNoUncertain,
		"personalDataDetails", v.PersonalDataDetails, detailsPlaceholder)
	h.question("deployment", "2.3. Comment envisage-t-on de déployer le logiciel ?", v.Deployment, forms.DeploymentOptions,
		"deploymentDetails", v.DeploymentDetails, detailsPlaceholder)
	h.question("regulations", "2.4. Le pays d'export a-t-il une réglementation compatible avec nos standards (ex. RGPD) ?", v.Regulations, forms.YesNoUncertain,
		"regulationsDetails", v.RegulationsDetails, detailsPlaceholder)

	h.subheading("Conformité légale")
	h.textareaField("legalConstraints", "2.5. Existe-t-il des contraintes légales particulières ?", v.LegalConstraints, "Ex. obligation de backdoor, censure, embargo, export control", 3)

	h.subheading("Usage détourné et responsabilité")
	h.question("misuseRisk", "2.6. Existe-t-il un risque d'usage détourné du logiciel à des fins nuisibles ?", v.MisuseRisk, forms.YesNoUncertain,
		"misuseDetails", v.MisuseDetails, "Ex. cyberattaques, désinformation")
	h.question("ethicalClauses", "2.7. Des clauses contractuelles éthiques sont-elles prévues ?", v.EthicalClauses, forms.YesNoUncertain,
		"ethicalClausesDetails", v.EthicalClausesDetails, detailsPlaceholder)

	h.section("3. Synthèse du demandeur")
	h.radioField("riskLevel", "Évaluation globale des risques éthiques (selon jugement du demandeur) :", v.RiskLevel, forms.RiskLevels)
	h.textareaField("recommendation", "Recommandation du demandeur :", v.Recommendation, "Votre recommandation", 4)

	h.committeeDecision()

	h.close("div")
	h.close("div")
}

// question is a radio group followed by its free-text details.
func (h *html) question(name, label, value string, options []forms.Option, detailsName, details, placeholder string) {
	h.open("div", a("class", "space-y-4"))
	h.label("", label)
	h.radios(name, value, options)
	h.textarea(detailsName, details, placeholder, 3)
	h.close("div")
}

// committeeDecision is filled in by the committee on paper; every control is
// disabled and nothing here is posted.
func (h *html) committeeDecision() {
	h.raw(`<hr class="my-2 border-slate-200">`)
	h.open("div", a("class", "space-y-6 bg-slate-100 p-6 rounded-lg"), a("id", "committee-decision"))
	h.el("h2", "4. Décision du Comité Éthique", a("class", "text-xl font-semibold"))
	h.el("p", "(À remplir par le Comité éthique)", a("class", "text-sm text-slate-500 italic"))
	h.open("div", a("class", "space-y-4 opacity-60"))
	h.label("", "Avis du Comité :")
	h.open("div", a("class", "flex flex-wrap gap-6"))
	for _, opt := range []string{"Accordé", "Accordé avec conditions", "Refusé"} {
		h.open("div", a("class", "flex items-center space-x-2"))
		h.open("input", a("type", "checkbox"), on("disabled"))
		h.label("", opt)
		h.close("div")
	}
	h.close("div")
	h.fieldOpen()
	h.label("", "Commentaires / Conditions éventuelles :")
	h.open("textarea", a("rows", "4"), on("disabled"), a("class", controlClass))
	h.close("textarea")
	h.fieldClose()
	h.open("div", a("class", "grid grid-cols-2 gap-4"))
	h.fieldOpen()
	h.label("", "Date :")
	h.open("input", on("disabled"), a("class", controlClass))
	h.fieldClose()
	h.fieldOpen()
	h.label("", "Signature du Comité :")
	h.open("input", on("disabled"), a("class", controlClass))
	h.fieldClose()
	h.close("div")
	h.close("div")
	h.close("div")
}

func (h *html) visitBody(f *forms.Visit) {
	v := f.Fields()

	h.cardOpen("Informations de la visite", "")

	h.gridOpen()
	h.inputField("requester", "Demandeur (Nom, Prénom)", "text", v.Requester, "@Nom Prénom")
	h.inputField("numberOfGuests", "Combien de personnes accueilles-tu ?", "number", v.NumberOfGuests, "", a("min", "1"))
	h.close("div")

	h.open("div", a("class", "grid grid-cols-1 md:grid-cols-3 gap-6"))
	h.inputField("date", "Quel jour ?", "date", v.Date, "")
	h.inputField("timeStart", "Heure de début", "time", v.TimeStart, "")
	h.inputField("timeEnd", "Heure de fin", "time", v.TimeEnd, "")
	h.close("div")

	h.radioField("visitorType", "Est-ce...", v.VisitorType, forms.VisitorTypes)
	if f.ShowsClientNumber() {
		h.inputField("clientNumber", "Numéro client", "text", v.ClientNumber, "Numéro OSI ou référence client")
	}

	h.radioField("needsCatering", "As-tu besoin d'un petit-déjeuner/goûter/repas ?", v.NeedsCatering, forms.YesNo)

	h.gridOpen()
	h.selectField("location", "Est-ce pour Lepic ou Fromentin ?", v.Location, "Choisir le site", forms.Locations)
	if rooms := f.Rooms(); len(rooms) > 0 {
		h.selectField("room", "Dans quelle salle ?", v.Room, "Choisir la salle", rooms)
	}
	h.close("div")

	if f.ShowsCateringDetails() {
		h.gridOpen()
		h.inputField("deliveryTime", "Heure de la livraison", "time", v.DeliveryTime, "Ex: 8h30-9h")
		h.inputField("allergies", "Allergies/restrictions", "text", v.Allergies, "Spécifier les allergies ou restrictions alimentaires")
		h.close("div")
	}

	h.inputField("clientReference", "Référence client.e ou prestataire", "text", v.ClientReference, "V. ou autre référence")
	h.textareaField("comments", "As-tu une remarque/commentaire/précision à donner ?", v.Comments, "Commentaires additionnels...", 3)

	h.cardClose()
}

func (h *html) travelBody(f *forms.Travel) {
	v := f.Fields()

	h.cardOpen("Informations du voyage", "")

	h.gridOpen()
	h.inputField("requester", "Demandeur (Nom, Prénom)", "text", v.Requester, "@Nom Prénom")
	h.inputField("destination", "Destination", "text", v.Destination, "Ville, Pays")
	h.close("div")

	h.textareaField("purpose", "Objet du voyage", v.Purpose, "Décrivez l'objectif du voyage professionnel", 3)

	h.gridOpen()
	h.inputField("startDate", "Date de départ", "date", v.StartDate, "")
	h.inputField("endDate", "Date de retour", "date", v.EndDate, "")
	h.close("div")

	h.gridOpen()
	h.selectField("transportation", "Moyen de transport préféré", v.Transportation, "Choisir le transport", forms.Transportations)
	h.selectField("accommodation", "Type d'hébergement", v.Accommodation, "Choisir l'hébergement", forms.Accommodations)
	h.close("div")

	h.gridOpen()
	h.inputField("budget", "Budget estimé (€)", "number", v.Budget, "Montant estimé en euros")
	h.inputField("projectCode", "Code projet / Centre de coût", "text", v.ProjectCode, "Code de facturation interne")
	h.close("div")

	h.radioField("clientMeeting", "Ce voyage inclut-il une rencontre client ?", v.ClientMeeting, forms.YesNo)
	if f.ShowsClientName() {
		h.inputField("clientName", "Nom du client / partenaire", "text", v.ClientName, "Nom de l'entreprise ou du contact")
	}

	h.radioField("urgency", "Niveau d'urgence", v.Urgency, forms.Urgencies)
	h.textareaField("comments", "Commentaires ou précisions", v.Comments, "Informations additionnelles, contraintes particulières...", 3)

	if s, ok := f.Summary(); ok {
		h.open("div", a("class", cls(cardClass, "bg-slate-100")), a("id", "trip-summary"))
		h.el("h3", "Résumé du voyage", a("class", "p-6 pb-2 text-sm font-semibold"))
		h.open("div", a("class", "p-6 pt-0 space-y-2 text-sm"))
		h.summaryRow("Destination:", s.Destination)
		duration := "-"
		if s.HasDays {
			duration = strconv.Itoa(s.Days) + " jour(s)"
		}
		h.summaryRow("Durée:", duration)
		if s.Budget != "" {
			h.summaryRow("Budget estimé:", s.Budget+" €")
		}
		h.close("div")
		h.close("div")
	}

	h.cardClose()
}

func (h *html) purchaseBody(f *forms.Purchase) {
	v := f.Fields()

	h.cardOpen("Informations de l'achat", "")

	h.gridOpen()
	h.inputField("requester", "Demandeur (Nom, Prénom)", "text", v.Requester, "@Nom Prénom")
	h.inputField("dateNeeded", "Pour quand ?", "date", v.DateNeeded, "")
	h.close("div")

	h.inputField("item", "De quoi as-tu besoin ?", "text", v.Item, "Objet à acheter")
	h.radioField("entity", "Pour Sahar ou pour la Fondation ?", v.Entity, forms.Entities)
	h.inputField("quantity", "En quelle quantité ?", "number", v.Quantity, "", a("min", "1"))
	h.inputField("url", "Lien vers le produit", "url", v.URL, "https://www.amazon.fr/...")
	h.textareaField("comments", "As-tu une remarque/commentaire/précision à donner ?", v.Comments, "Merciiii ou autres précisions...", 3)

	if link, ok := f.LinkPreview(); ok {
		h.open("div", a("class", cls(cardClass, "bg-slate-100")), a("id", "product-preview"))
		h.el("h3", "Aperçu du produit", a("class", "p-6 pb-2 text-sm font-semibold"))
		h.open("div", a("class", "p-6 pt-0 flex items-center space-x-2"))
		h.icon("external-link", "h-4 w-4 text-slate-500")
		h.el("a", link,
			a("href", string(templ.URL(link))),
			a("target", "_blank"),
			a("rel", "noopener noreferrer"),
			a("class", "text-slate-900 hover:underline truncate"),
		)
		h.close("div")
		h.close("div")
	}

	h.cardClose()
}
