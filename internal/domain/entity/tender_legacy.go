package entity

import "github.com/shopspring/decimal"

// LegacyTender es la revisión anterior del registro, con sub-objetos anidados
// (summary/financials/scope/...). Algunos despliegues del API todavía la
// devuelven para registros creados antes de la migración. El adaptador
// tenderform.FromLegacy la convierte a la forma plana canónica; ninguna vista
// consume esta forma directamente.
type LegacyTender struct {
	ID           int    `json:"id"`
	Status       string `json:"status"`
	ServiceID    int    `json:"serviceId,omitempty"`
	DocumentPath string `json:"documentPath,omitempty"`

	Summary struct {
		ReferenceNo       string `json:"referenceNo"`
		PublishedOn       string `json:"publishedOn"`
		BidDeadline       string `json:"bidDeadline"`
		Category          string `json:"category"`
		Type              string `json:"type"`
		ProcurementMethod string `json:"procurementMethod"`
		NoticeNo          string `json:"noticeNo,omitempty"`
		DocumentCost      string `json:"documentCost,omitempty"`
		Location          string `json:"location"`
	} `json:"summary"`

	Financials struct {
		BidValidityDays            int             `json:"bidValidityDays"`
		BidSecurityAmount          decimal.Decimal `json:"bidSecurityAmount"`
		ContractPeriodDays         int             `json:"contractPeriodDays"`
		PerformanceSecurityPercent decimal.Decimal `json:"performanceSecurityPercent"`
		PaymentTerms               string          `json:"paymentTerms"`
	} `json:"financials"`

	Scope struct {
		Standards      []string `json:"standards"`
		WarrantyMonths int      `json:"warrantyMonths,omitempty"`
	} `json:"scope"`

	Eligibility struct {
		RegistrationCertificateRequired bool            `json:"registrationCertificateRequired,omitempty"`
		SimilarProjectMinValue          decimal.Decimal `json:"similarProjectMinValue,omitempty"`
		TurnoverMinAvg                  decimal.Decimal `json:"turnoverMinAvg,omitempty"`
	} `json:"eligibility"`

	Timeline struct {
		PreBidMeeting         string `json:"preBidMeeting,omitempty"`
		SiteVisitStart        string `json:"siteVisitStart,omitempty"`
		SiteVisitEnd          string `json:"siteVisitEnd,omitempty"`
		ClarificationDeadline string `json:"clarificationDeadline,omitempty"`
		BidOpeningDate        string `json:"bidOpeningDate,omitempty"`
	} `json:"timeline"`

	Submission struct {
		DocumentLink      string `json:"documentLink,omitempty"`
		SubmissionMode    string `json:"submissionMode"`
		SubmissionAddress string `json:"submissionAddress,omitempty"`
	} `json:"submission"`

	IssuingAuthority struct {
		Organization   string `json:"organization"`
		Department     string `json:"department,omitempty"`
		Address        string `json:"address,omitempty"`
		TenderLocation string `json:"tenderLocation,omitempty"`
		LanguageOfBids string `json:"languageOfBids,omitempty"`
		GoverningLaw   string `json:"governingLaw,omitempty"`
	} `json:"issuingAuthority"`
}
