package forms

import (
	"time"

	"requestdesk/internal/request"
)

const dateLayout = "2006-01-02"

type EthicsFields struct {
	Requester     string `form:"requester" validate:"required"`
	RequestDate   string `form:"requestDate"`
	Country       string `form:"country" validate:"required"`
	ClientPartner string `form:"clientPartner" validate:"required"`
	Product       string `form:"product"`

	ProjectDescription   string `form:"projectDescription"`
	ContractMode         string `form:"contractMode"`
	CommercialObjectives string `form:"commercialObjectives"`
	StrategicImportance  string `form:"strategicImportance"`
	OpportunityContext   string `form:"opportunityContext"`

	SurveillanceRisk        string `form:"surveillanceRisk"`
	SurveillanceDetails     string `form:"surveillanceDetails"`
	PersonalData            string `form:"personalData"`
	PersonalDataDetails     string `form:"personalDataDetails"`
	Deployment              string `form:"deployment"`
	DeploymentDetails       string `form:"deploymentDetails"`
	Regulations             string `form:"regulations"`
	RegulationsDetails      string `form:"regulationsDetails"`
	LegalConstraints        string `form:"legalConstraints"`
	LegalConstraintsDetails string `form:"legalConstraintsDetails"`
	MisuseRisk              string `form:"misuseRisk"`
	MisuseDetails           string `form:"misuseDetails"`
	EthicalClauses          string `form:"ethicalClauses"`
	EthicalClausesDetails   string `form:"ethicalClausesDetails"`

	RiskLevel      string `form:"riskLevel"`
	Recommendation string `form:"recommendation"`
}

// Ethics is the ethics committee review request.
type Ethics struct {
	base[EthicsFields]
}

func NewEthics(now time.Time) *Ethics {
	return &Ethics{base: newBase(request.CategoryEthics, EthicsFields{
		RequestDate: now.Format(dateLayout),
	})}
}
