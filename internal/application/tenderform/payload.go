package tenderform

import "github.com/hulumoya/agency-dashboard/internal/domain/entity"

// BuildPayload arma el cuerpo outbound a partir de un formulario ya validado.
// Los opcionales en blanco se omiten por completo (puntero nil + omitempty):
// enviar "" pisaría el valor guardado en el servidor en una edición parcial.
func (f Form) BuildPayload() entity.TenderInput {
	in := entity.TenderInput{
		Title:           f.Title,
		Description:     f.Description,
		Location:        f.Location,
		ClosingDate:     EnsureSeconds(f.ClosingDate),
		ContactInfo:     f.ContactInfo,
		ServiceID:       f.ServiceID,
		Status:          f.Status,
		IsFree:          f.IsFree,
		ReferenceNumber: f.ReferenceNumber,
	}

	in.NoticeNumber = optional(f.NoticeNumber)
	in.ProductCategory = optional(f.ProductCategory)
	in.TenderType = optional(f.TenderType)
	in.ProcurementMethod = optional(f.ProcurementMethod)
	in.CostOfTenderDocument = optional(f.CostOfTenderDocument)
	in.BidValidity = optional(f.BidValidity)
	in.BidSecurity = optional(f.BidSecurity)
	in.ContractPeriod = optional(f.ContractPeriod)
	in.PerformanceSecurity = optional(f.PerformanceSecurity)
	in.PaymentTerms = optional(f.PaymentTerms)
	in.KeyDeliverables = optional(f.KeyDeliverables)
	in.TechnicalSpecifications = optional(f.TechnicalSpecifications)

	return in
}

// optional trata blanco/solo-espacios como "no provisto".
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// FromTender puebla el formulario de edición desde un registro existente.
// El closingDate guardado se trunca a precisión de minuto para el input y el
// servicio se resuelve con el respaldo de categoryId de registros antiguos.
func FromTender(t entity.Tender) Form {
	return Form{
		Title:           t.Title,
		Description:     t.Description,
		Location:        t.Location,
		ClosingDate:     ForEditing(t.ClosingDate),
		ContactInfo:     t.ContactInfo,
		ServiceID:       t.ResolvedServiceID(),
		Status:          statusOrDefault(t.Status),
		IsFree:          t.IsFree,
		ReferenceNumber: t.ReferenceNumber,

		NoticeNumber:            t.NoticeNumber,
		ProductCategory:         t.ProductCategory,
		TenderType:              t.TenderType,
		ProcurementMethod:       t.ProcurementMethod,
		CostOfTenderDocument:    t.CostOfTenderDocument,
		BidValidity:             t.BidValidity,
		BidSecurity:             t.BidSecurity,
		ContractPeriod:          t.ContractPeriod,
		PerformanceSecurity:     t.PerformanceSecurity,
		PaymentTerms:            t.PaymentTerms,
		KeyDeliverables:         t.KeyDeliverables,
		TechnicalSpecifications: t.TechnicalSpecifications,
	}
}

func statusOrDefault(s string) string {
	if entity.ValidStatus(s) {
		return s
	}
	return entity.StatusOpen
}
