package web

import (
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/hulumoya/agency-dashboard/internal/application/session"
	"github.com/hulumoya/agency-dashboard/internal/application/taxonomy"
	"github.com/hulumoya/agency-dashboard/internal/application/tenderform"
	"github.com/hulumoya/agency-dashboard/internal/application/usecase"
	"github.com/hulumoya/agency-dashboard/internal/domain"
	"github.com/hulumoya/agency-dashboard/internal/infrastructure/restapi"
	"github.com/hulumoya/agency-dashboard/pkg/logger"
)

// pageSize tamaño de página del listado de tenders.
const pageSize = 10

// TenderHandler sirve el listado, el formulario de creación/edición, la
// página de detalle y las acciones sobre un tender.
type TenderHandler struct {
	tenderUC  *usecase.TenderUseCase
	agencyUC  *usecase.AgencyUseCase
	catalogUC *usecase.CatalogUseCase
	sessions  *session.Store
	log       *logger.Logger
}

// NewTenderHandler construye el handler de tenders.
func NewTenderHandler(
	tenderUC *usecase.TenderUseCase,
	agencyUC *usecase.AgencyUseCase,
	catalogUC *usecase.CatalogUseCase,
	sessions *session.Store,
	log *logger.Logger,
) *TenderHandler {
	return &TenderHandler{
		tenderUC:  tenderUC,
		agencyUC:  agencyUC,
		catalogUC: catalogUC,
		sessions:  sessions,
		log:       log.Component("web"),
	}
}

// services carga el índice de servicios; su ausencia degrada a advertencia
// con un índice vacío, nunca rompe la vista que lo necesita.
func (h *TenderHandler) services(c *fiber.Ctx) *taxonomy.Flat {
	flat, found, err := h.catalogUC.TenderServices(c.UserContext())
	if err != nil {
		h.log.Warn().Err(err).Msg("cargar el árbol de servicios")
		h.sessions.PushFlash(c, "warning", "Could not load the service list")
		return &taxonomy.Flat{Lookup: map[int]string{}}
	}
	if !found {
		h.sessions.PushFlash(c, "warning", "Tender services not found")
	}
	return flat
}

// List renderiza el listado paginado. Cada página reemplaza entera a la
// anterior; el número de página viaja en ?page=.
func (h *TenderHandler) List(c *fiber.Ctx) error {
	agencyID, err := resolveAgencyID(c, h.sessions, h.agencyUC)
	if err != nil {
		return redirectMissingAgency(c, h.sessions)
	}

	page := c.QueryInt("page", 0)
	if page < 0 {
		page = 0
	}

	tenders, err := h.tenderUC.List(c.UserContext(), agencyID, page, pageSize)
	if err != nil {
		h.log.Warn().Err(err).Int("agency_id", agencyID).Msg("cargar listado de tenders")
		h.sessions.PushFlash(c, "error", restapi.UserMessage(err, "Could not load tenders"))
	}
	flat := h.services(c)

	data := view(c, h.sessions, "Tenders", "tenders")
	data["Tenders"] = tenders
	data["Services"] = flat.Lookup
	data["Page"] = page
	data["PrevPage"] = page - 1
	data["NextPage"] = page + 1
	data["HasNext"] = len(tenders) == pageSize
	return c.Render("tenders", data)
}

// NewForm muestra el formulario de creación. Si hay un borrador autosalvado
// en la sesión, lo restaura en lugar del formulario vacío.
func (h *TenderHandler) NewForm(c *fiber.Ctx) error {
	if _, err := resolveAgencyID(c, h.sessions, h.agencyUC); err != nil {
		return redirectMissingAgency(c, h.sessions)
	}

	form, restored := h.sessions.Draft(c)
	if !restored {
		form = tenderform.Default()
	}
	flat := h.services(c)

	data := view(c, h.sessions, "New tender", "tenders")
	data["Form"] = form
	data["Errors"] = map[string]string{}
	data["Options"] = flat.OptionsWithFallback(form.ServiceID)
	data["Action"] = "/tenders"
	data["IsEdit"] = false
	data["DraftRestored"] = restored
	return c.Render("tender_form", data)
}

// Create procesa la creación con adjunto opcional. Un documento que no sube
// no revierte la creación: se reporta como éxito parcial.
func (h *TenderHandler) Create(c *fiber.Ctx) error {
	agencyID, err := resolveAgencyID(c, h.sessions, h.agencyUC)
	if err != nil {
		return redirectMissingAgency(c, h.sessions)
	}

	var form tenderform.Form
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}
	if errs := form.Validate(); len(errs) > 0 {
		flat := h.services(c)
		data := view(c, h.sessions, "New tender", "tenders")
		data["Form"] = form
		data["Errors"] = errs
		data["Options"] = flat.OptionsWithFallback(form.ServiceID)
		data["Action"] = "/tenders"
		data["IsEdit"] = false
		return c.Render("tender_form", data)
	}

	doc, closeDoc, err := formDocument(c, "document")
	if err != nil {
		h.sessions.PushFlash(c, "error", "The attached file could not be read")
		return c.Redirect("/tenders/new", fiber.StatusFound)
	}
	defer closeDoc()

	result, err := h.tenderUC.Create(c.UserContext(), agencyID, form.BuildPayload(), doc)
	if err != nil {
		h.log.Warn().Err(err).Int("agency_id", agencyID).Msg("crear tender")
		flat := h.services(c)
		data := view(c, h.sessions, "New tender", "tenders")
		data["Form"] = form
		data["Errors"] = map[string]string{
			"form": restapi.UserMessage(err, "Could not create the tender"),
		}
		data["Options"] = flat.OptionsWithFallback(form.ServiceID)
		data["Action"] = "/tenders"
		data["IsEdit"] = false
		return c.Render("tender_form", data)
	}

	_ = h.sessions.ClearDraft(c)
	if result.UploadErr != nil {
		h.sessions.PushFlash(c, "warning", "Tender created, but file upload failed")
	} else {
		h.sessions.PushFlash(c, "success", "Tender created successfully")
	}
	return c.Redirect("/tenders", fiber.StatusFound)
}

// SaveDraft espeja el formulario de creación en la sesión (autosave).
// Responde 204: el navegador lo llama en segundo plano.
func (h *TenderHandler) SaveDraft(c *fiber.Ctx) error {
	var form tenderform.Form
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}
	if err := h.sessions.SaveDraft(c, form); err != nil {
		h.log.Warn().Err(err).Msg("guardar borrador de tender")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Details renderiza la página de detalle de un tender.
func (h *TenderHandler) Details(c *fiber.Ctx) error {
	agencyID, err := resolveAgencyID(c, h.sessions, h.agencyUC)
	if err != nil {
		return redirectMissingAgency(c, h.sessions)
	}
	tenderID, err := c.ParamsInt("id")
	if err != nil {
		return c.Redirect("/tenders", fiber.StatusFound)
	}

	t, err := h.tenderUC.Get(c.UserContext(), agencyID, tenderID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.sessions.PushFlash(c, "error", "Tender not found")
		} else {
			h.sessions.PushFlash(c, "error", restapi.UserMessage(err, "Could not load the tender"))
		}
		return c.Redirect("/tenders", fiber.StatusFound)
	}
	flat := h.services(c)

	data := view(c, h.sessions, t.Title, "tenders")
	data["Tender"] = t
	data["Breadcrumb"] = flat.Breadcrumb(t.ResolvedServiceID())
	data["Statuses"] = []string{"OPEN", "CLOSED", "CANCELLED"}
	return c.Render("tender_details", data)
}

// EditForm muestra el formulario de edición poblado desde el servidor.
func (h *TenderHandler) EditForm(c *fiber.Ctx) error {
	agencyID, err := resolveAgencyID(c, h.sessions, h.agencyUC)
	if err != nil {
		return redirectMissingAgency(c, h.sessions)
	}
	tenderID, err := c.ParamsInt("id")
	if err != nil {
		return c.Redirect("/tenders", fiber.StatusFound)
	}

	t, err := h.tenderUC.Get(c.UserContext(), agencyID, tenderID)
	if err != nil {
		h.sessions.PushFlash(c, "error", restapi.UserMessage(err, "Could not load the tender"))
		return c.Redirect("/tenders", fiber.StatusFound)
	}

	form := tenderform.FromTender(*t)
	flat := h.services(c)

	data := view(c, h.sessions, "Edit tender", "tenders")
	data["Form"] = form
	data["Errors"] = map[string]string{}
	data["Options"] = flat.OptionsWithFallback(form.ServiceID)
	data["Action"] = fmt.Sprintf("/tenders/%d", tenderID)
	data["IsEdit"] = true
	return c.Render("tender_form", data)
}

// Update procesa la edición y vuelve al detalle.
func (h *TenderHandler) Update(c *fiber.Ctx) error {
	agencyID, err := resolveAgencyID(c, h.sessions, h.agencyUC)
	if err != nil {
		return redirectMissingAgency(c, h.sessions)
	}
	tenderID, err := c.ParamsInt("id")
	if err != nil {
		return c.Redirect("/tenders", fiber.StatusFound)
	}

	var form tenderform.Form
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}
	if errs := form.Validate(); len(errs) > 0 {
		flat := h.services(c)
		data := view(c, h.sessions, "Edit tender", "tenders")
		data["Form"] = form
		data["Errors"] = errs
		data["Options"] = flat.OptionsWithFallback(form.ServiceID)
		data["Action"] = fmt.Sprintf("/tenders/%d", tenderID)
		data["IsEdit"] = true
		return c.Render("tender_form", data)
	}

	if _, err := h.tenderUC.Update(c.UserContext(), agencyID, tenderID, form.BuildPayload()); err != nil {
		h.log.Warn().Err(err).Int("tender_id", tenderID).Msg("actualizar tender")
		h.sessions.PushFlash(c, "error", restapi.UserMessage(err, "Could not update the tender"))
		return c.Redirect(fmt.Sprintf("/tenders/%d/edit", tenderID), fiber.StatusFound)
	}

	h.sessions.PushFlash(c, "success", "Tender updated successfully")
	return c.Redirect(fmt.Sprintf("/tenders/%d", tenderID), fiber.StatusFound)
}

// UpdateStatus cambia solo el estado desde el diálogo del detalle.
func (h *TenderHandler) UpdateStatus(c *fiber.Ctx) error {
	agencyID, err := resolveAgencyID(c, h.sessions, h.agencyUC)
	if err != nil {
		return redirectMissingAgency(c, h.sessions)
	}
	tenderID, err := c.ParamsInt("id")
	if err != nil {
		return c.Redirect("/tenders", fiber.StatusFound)
	}

	status := c.FormValue("status")
	if _, err := h.tenderUC.UpdateStatus(c.UserContext(), agencyID, tenderID, status); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.sessions.PushFlash(c, "error", "Status must be OPEN, CLOSED or CANCELLED")
		} else {
			h.sessions.PushFlash(c, "error", restapi.UserMessage(err, "Could not update the status"))
		}
	} else {
		h.sessions.PushFlash(c, "success", "Status updated")
	}
	return c.Redirect(fmt.Sprintf("/tenders/%d", tenderID), fiber.StatusFound)
}

// Delete borra el tender y vuelve al listado, que se recarga del servidor.
func (h *TenderHandler) Delete(c *fiber.Ctx) error {
	agencyID, err := resolveAgencyID(c, h.sessions, h.agencyUC)
	if err != nil {
		return redirectMissingAgency(c, h.sessions)
	}
	tenderID, err := c.ParamsInt("id")
	if err != nil {
		return c.Redirect("/tenders", fiber.StatusFound)
	}

	if err := h.tenderUC.Delete(c.UserContext(), agencyID, tenderID); err != nil {
		h.log.Warn().Err(err).Int("tender_id", tenderID).Msg("borrar tender")
		h.sessions.PushFlash(c, "error", restapi.UserMessage(err, "Could not delete the tender"))
	} else {
		h.sessions.PushFlash(c, "success", "Tender deleted")
	}
	return c.Redirect("/tenders", fiber.StatusFound)
}

// UploadDocument sube un documento a un tender existente desde el detalle.
func (h *TenderHandler) UploadDocument(c *fiber.Ctx) error {
	agencyID, err := resolveAgencyID(c, h.sessions, h.agencyUC)
	if err != nil {
		return redirectMissingAgency(c, h.sessions)
	}
	tenderID, err := c.ParamsInt("id")
	if err != nil {
		return c.Redirect("/tenders", fiber.StatusFound)
	}

	doc, closeDoc, err := formDocument(c, "document")
	if err != nil || doc == nil {
		h.sessions.PushFlash(c, "error", "Choose a file to upload")
		return c.Redirect(fmt.Sprintf("/tenders/%d", tenderID), fiber.StatusFound)
	}
	defer closeDoc()

	if _, err := h.tenderUC.UploadDocument(c.UserContext(), agencyID, tenderID, doc.Filename, doc.File); err != nil {
		h.log.Warn().Err(err).Int("tender_id", tenderID).Msg("subir documento de tender")
		h.sessions.PushFlash(c, "error", restapi.UserMessage(err, "Could not upload the document"))
	} else {
		h.sessions.PushFlash(c, "success", "Document uploaded")
	}
	return c.Redirect(fmt.Sprintf("/tenders/%d", tenderID), fiber.StatusFound)
}

// SummaryPDF descarga la ficha del tender en PDF.
func (h *TenderHandler) SummaryPDF(c *fiber.Ctx) error {
	agencyID, err := resolveAgencyID(c, h.sessions, h.agencyUC)
	if err != nil {
		return redirectMissingAgency(c, h.sessions)
	}
	tenderID, err := c.ParamsInt("id")
	if err != nil {
		return c.Redirect("/tenders", fiber.StatusFound)
	}

	flat := h.services(c)
	t, err := h.tenderUC.Get(c.UserContext(), agencyID, tenderID)
	if err != nil {
		h.sessions.PushFlash(c, "error", restapi.UserMessage(err, "Could not load the tender"))
		return c.Redirect("/tenders", fiber.StatusFound)
	}

	pdf, err := h.tenderUC.SummaryPDF(c.UserContext(), agencyID, tenderID,
		flat.Breadcrumb(t.ResolvedServiceID()), h.sessions.CachedProfile(c))
	if err != nil {
		h.log.Error().Err(err).Int("tender_id", tenderID).Msg("generar PDF del tender")
		h.sessions.PushFlash(c, "error", "Could not generate the PDF")
		return c.Redirect(fmt.Sprintf("/tenders/%d", tenderID), fiber.StatusFound)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="tender-%d.pdf"`, tenderID))
	return c.Send(pdf)
}

// formDocument abre el adjunto opcional del formulario. Devuelve (nil, noop,
// nil) si el campo vino vacío; closeDoc siempre se puede llamar.
func formDocument(c *fiber.Ctx, field string) (*usecase.DocumentUpload, func(), error) {
	noop := func() {}

	header, err := c.FormFile(field)
	if err != nil || header == nil || header.Size == 0 {
		return nil, noop, nil
	}

	var file multipart.File
	file, err = header.Open()
	if err != nil {
		return nil, noop, err
	}
	return &usecase.DocumentUpload{Filename: header.Filename, File: file},
		func() { _ = file.Close() }, nil
}
