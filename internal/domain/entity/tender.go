package entity

// Estados posibles de un tender (deben coincidir con el enum del API remoto).
const (
	StatusOpen      = "OPEN"
	StatusClosed    = "CLOSED"
	StatusCancelled = "CANCELLED"
)

// ValidStatus informa si s es uno de los tres estados del enum.
func ValidStatus(s string) bool {
	return s == StatusOpen || s == StatusClosed || s == StatusCancelled
}

// Tender es el registro canónico de un tender tal como lo sirve el API en su
// revisión vigente: campos núcleo obligatorios y una cola de campos de texto
// opcionales que el agente puede dejar vacíos. Los opcionales vacíos se
// muestran como "no provisto" en las vistas y nunca se reenvían en blanco.
type Tender struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	ClosingDate string `json:"closingDate"` // ISO datetime, precisión de segundos
	ContactInfo string `json:"contactInfo"`
	Status      string `json:"status"` // OPEN | CLOSED | CANCELLED
	ServiceID   int    `json:"serviceId,omitempty"`
	// CategoryID aparece en registros antiguos donde el servicio se guardó
	// como categoría; se usa como respaldo cuando ServiceID es cero.
	CategoryID      int    `json:"categoryId,omitempty"`
	IsFree          bool   `json:"isFree"`
	ReferenceNumber string `json:"referenceNumber"`
	DocumentPath    string `json:"documentPath,omitempty"`
	DatePosted      string `json:"datePosted,omitempty"`

	// Cola opcional de la revisión plana vigente.
	NoticeNumber            string `json:"noticeNumber,omitempty"`
	ProductCategory         string `json:"productCategory,omitempty"`
	TenderType              string `json:"tenderType,omitempty"`
	ProcurementMethod       string `json:"procurementMethod,omitempty"`
	CostOfTenderDocument    string `json:"costOfTenderDocument,omitempty"`
	BidValidity             string `json:"bidValidity,omitempty"`
	BidSecurity             string `json:"bidSecurity,omitempty"`
	ContractPeriod          string `json:"contractPeriod,omitempty"`
	PerformanceSecurity     string `json:"performanceSecurity,omitempty"`
	PaymentTerms            string `json:"paymentTerms,omitempty"`
	KeyDeliverables         string `json:"keyDeliverables,omitempty"`
	TechnicalSpecifications string `json:"technicalSpecifications,omitempty"`
}

// ResolvedServiceID devuelve el servicio vinculado: ServiceID si existe,
// CategoryID como respaldo para registros antiguos.
func (t Tender) ResolvedServiceID() int {
	if t.ServiceID > 0 {
		return t.ServiceID
	}
	return t.CategoryID
}
