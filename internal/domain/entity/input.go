package entity

// Credentials es el cuerpo de POST /auth/login. Los metadatos de dispositivo
// viajan siempre; el API los exige aunque el cliente sea un navegador.
type Credentials struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	FCMToken        string `json:"FCMToken"`
	DeviceType      string `json:"deviceType"`
	DeviceModel     string `json:"deviceModel"`
	OperatingSystem string `json:"operatingSystem"`
}

// AgencyRegistration es el cuerpo de POST /tender-agencies/register.
type AgencyRegistration struct {
	CompanyName   string `json:"companyName"`
	TinNumber     string `json:"tinNumber"`
	Website       string `json:"website,omitempty"`
	ContactPerson string `json:"contactPerson,omitempty"`
	Email         string `json:"email"`
	Password      string `json:"password"`
}

// AgencyProfileUpdate es el cuerpo de PUT /tender-agencies/{id}/profile.
type AgencyProfileUpdate struct {
	CompanyName   string `json:"companyName"`
	Website       string `json:"website,omitempty"`
	ContactPerson string `json:"contactPerson,omitempty"`
}

// TenderInput es el cuerpo de creación/actualización de un tender.
// Los campos núcleo son obligatorios y viajan siempre; los opcionales son
// punteros para que un valor ausente se omita del JSON en vez de viajar como
// cadena vacía (un blanco pisaría el valor guardado en ediciones parciales).
type TenderInput struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Location        string `json:"location"`
	ClosingDate     string `json:"closingDate"` // precisión de segundos
	ContactInfo     string `json:"contactInfo"`
	ServiceID       int    `json:"serviceId"`
	Status          string `json:"status"`
	IsFree          bool   `json:"isFree"`
	ReferenceNumber string `json:"referenceNumber"`

	NoticeNumber            *string `json:"noticeNumber,omitempty"`
	ProductCategory         *string `json:"productCategory,omitempty"`
	TenderType              *string `json:"tenderType,omitempty"`
	ProcurementMethod       *string `json:"procurementMethod,omitempty"`
	CostOfTenderDocument    *string `json:"costOfTenderDocument,omitempty"`
	BidValidity             *string `json:"bidValidity,omitempty"`
	BidSecurity             *string `json:"bidSecurity,omitempty"`
	ContractPeriod          *string `json:"contractPeriod,omitempty"`
	PerformanceSecurity     *string `json:"performanceSecurity,omitempty"`
	PaymentTerms            *string `json:"paymentTerms,omitempty"`
	KeyDeliverables         *string `json:"keyDeliverables,omitempty"`
	TechnicalSpecifications *string `json:"technicalSpecifications,omitempty"`
}
