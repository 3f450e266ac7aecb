package tenderform

import (
	"fmt"
	"strings"

	"github.com/hulumoya/agency-dashboard/internal/domain/entity"
)

// FromLegacy migra la revisión anidada (summary/financials/scope/...) a la
// forma plana canónica. Es el único punto del código que conoce la forma
// vieja: las vistas nunca ramifican por revisión. La forma anidada no tiene
// título ni descripción propios, así que se componen de los campos
// estructurados más cercanos; los numéricos de financials se formatean con
// decimal para no perder precisión.
func FromLegacy(lt entity.LegacyTender) entity.Tender {
	t := entity.Tender{
		ID:              lt.ID,
		Status:          statusOrDefault(lt.Status),
		ServiceID:       lt.ServiceID,
		DocumentPath:    firstNonEmpty(lt.DocumentPath, lt.Submission.DocumentLink),
		ReferenceNumber: lt.Summary.ReferenceNo,
		ClosingDate:     lt.Summary.BidDeadline,
		DatePosted:      lt.Summary.PublishedOn,
		Location:        lt.Summary.Location,

		ProductCategory:      lt.Summary.Category,
		TenderType:           lt.Summary.Type,
		ProcurementMethod:    lt.Summary.ProcurementMethod,
		NoticeNumber:         lt.Summary.NoticeNo,
		CostOfTenderDocument: lt.Summary.DocumentCost,
		PaymentTerms:         lt.Financials.PaymentTerms,
	}

	t.Title = legacyTitle(lt)
	t.Description = legacyDescription(lt)
	t.ContactInfo = legacyContact(lt)

	if lt.Financials.BidValidityDays > 0 {
		t.BidValidity = fmt.Sprintf("%d days", lt.Financials.BidValidityDays)
	}
	if lt.Financials.ContractPeriodDays > 0 {
		t.ContractPeriod = fmt.Sprintf("%d days", lt.Financials.ContractPeriodDays)
	}
	if !lt.Financials.BidSecurityAmount.IsZero() {
		t.BidSecurity = lt.Financials.BidSecurityAmount.String()
	}
	if !lt.Financials.PerformanceSecurityPercent.IsZero() {
		t.PerformanceSecurity = lt.Financials.PerformanceSecurityPercent.String() + "%"
	}

	t.TechnicalSpecifications = legacySpecs(lt)
	return t
}

func legacyTitle(lt entity.LegacyTender) string {
	parts := compact(lt.Summary.Category, lt.Summary.Type)
	if len(parts) == 0 {
		parts = compact(lt.IssuingAuthority.Organization)
	}
	title := strings.Join(parts, " - ")
	if title == "" {
		title = "Tender " + lt.Summary.ReferenceNo
	}
	return title
}

func legacyDescription(lt entity.LegacyTender) string {
	var b strings.Builder
	if lt.IssuingAuthority.Organization != "" {
		b.WriteString("Issued by " + lt.IssuingAuthority.Organization)
		if lt.IssuingAuthority.Department != "" {
			b.WriteString(", " + lt.IssuingAuthority.Department)
		}
		b.WriteString(". ")
	}
	if lt.Submission.SubmissionMode != "" {
		b.WriteString("Submission: " + lt.Submission.SubmissionMode)
		if lt.Submission.SubmissionAddress != "" {
			b.WriteString(" (" + lt.Submission.SubmissionAddress + ")")
		}
		b.WriteString(".")
	}
	return strings.TrimSpace(b.String())
}

func legacyContact(lt entity.LegacyTender) string {
	return strings.Join(compact(
		lt.IssuingAuthority.Organization,
		lt.IssuingAuthority.Department,
		lt.IssuingAuthority.Address,
	), ", ")
}

func legacySpecs(lt entity.LegacyTender) string {
	specs := append([]string(nil), lt.Scope.Standards...)
	if lt.Scope.WarrantyMonths > 0 {
		specs = append(specs, fmt.Sprintf("Warranty: %d months", lt.Scope.WarrantyMonths))
	}
	if !lt.Eligibility.SimilarProjectMinValue.IsZero() {
		specs = append(specs, "Similar project min value: "+lt.Eligibility.SimilarProjectMinValue.String())
	}
	if !lt.Eligibility.TurnoverMinAvg.IsZero() {
		specs = append(specs, "Average turnover min: "+lt.Eligibility.TurnoverMinAvg.String())
	}
	return strings.Join(specs, "; ")
}

func compact(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
