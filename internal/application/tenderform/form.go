// Package tenderform define el esquema del formulario de tender: qué campos
// son obligatorios, cómo se validan y cómo se normalizan los valores antes de
// viajar al API. Es la única fuente de verdad del shape del registro; las
// vistas de creación y edición consumen este paquete sin ramificar por forma.
package tenderform

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hulumoya/agency-dashboard/internal/domain/entity"
)

var validate = validator.New()

// Form son los valores del formulario tal como llegan del navegador.
// La revisión vigente del registro es plana: núcleo obligatorio más una cola
// de texto opcional. closingDate llega con precisión de minuto
// (input datetime-local) y se normaliza a segundos al construir el payload.
type Form struct {
	Title           string `form:"title" validate:"required"`
	Description     string `form:"description" validate:"required"`
	Location        string `form:"location" validate:"required"`
	ClosingDate     string `form:"closingDate" validate:"required"`
	ContactInfo     string `form:"contactInfo" validate:"required"`
	ServiceID       int    `form:"serviceId" validate:"required,gt=0"`
	Status          string `form:"status" validate:"required,oneof=OPEN CLOSED CANCELLED"`
	IsFree          bool   `form:"isFree"`
	ReferenceNumber string `form:"referenceNumber" validate:"required"`

	NoticeNumber            string `form:"noticeNumber"`
	ProductCategory         string `form:"productCategory"`
	TenderType              string `form:"tenderType"`
	ProcurementMethod       string `form:"procurementMethod"`
	CostOfTenderDocument    string `form:"costOfTenderDocument"`
	BidValidity             string `form:"bidValidity"`
	BidSecurity             string `form:"bidSecurity"`
	ContractPeriod          string `form:"contractPeriod"`
	PerformanceSecurity     string `form:"performanceSecurity"`
	PaymentTerms            string `form:"paymentTerms"`
	KeyDeliverables         string `form:"keyDeliverables"`
	TechnicalSpecifications string `form:"technicalSpecifications"`
}

// Default devuelve el formulario vacío con el estado inicial OPEN.
func Default() Form {
	return Form{Status: entity.StatusOpen}
}

// mensajes a nivel de campo; el resto de campos usa el genérico.
var fieldMessages = map[string]string{
	"Title":           "Title is required",
	"Description":     "Description is required",
	"Location":        "Location is required",
	"ClosingDate":     "Closing date is required",
	"ContactInfo":     "Contact information is required",
	"ServiceID":       "Select a service",
	"Status":          "Status must be OPEN, CLOSED or CANCELLED",
	"ReferenceNumber": "Reference number is required",
}

// Validate recorta los campos de texto y valida el formulario. Devuelve un
// mapa campo → mensaje; vacío significa válido. Una validación fallida corta
// el envío sin tocar la red.
func (f *Form) Validate() map[string]string {
	f.trim()

	errs := make(map[string]string)
	err := validate.Struct(f)
	if err == nil {
		return errs
	}
	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = "Invalid form submission"
		return errs
	}
	for _, fe := range invalid {
		msg, found := fieldMessages[fe.Field()]
		if !found {
			msg = fe.Field() + " is invalid"
		}
		errs[fe.Field()] = msg
	}
	return errs
}

func (f *Form) trim() {
	fields := []*string{
		&f.Title, &f.Description, &f.Location, &f.ClosingDate, &f.ContactInfo,
		&f.ReferenceNumber, &f.NoticeNumber, &f.ProductCategory, &f.TenderType,
		&f.ProcurementMethod, &f.CostOfTenderDocument, &f.BidValidity,
		&f.BidSecurity, &f.ContractPeriod, &f.PerformanceSecurity,
		&f.PaymentTerms, &f.KeyDeliverables, &f.TechnicalSpecifications,
	}
	for _, s := range fields {
		*s = strings.TrimSpace(*s)
	}
}
