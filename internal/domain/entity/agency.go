package entity

// Agency representa el perfil de la agencia autenticada. Se crea vía registro
// (flujo separado) y después solo se lee/actualiza; nunca se crea desde el
// dashboard con la sesión iniciada.
type Agency struct {
	ID                  int    `json:"id"`
	CompanyName         string `json:"companyName"`
	TinNumber           string `json:"tinNumber"`
	Website             string `json:"website,omitempty"`
	ContactPerson       string `json:"contactPerson,omitempty"`
	VerifiedStatus      string `json:"verifiedStatus"`
	BusinessLicensePath string `json:"businessLicensePath,omitempty"`
}

// AgencyStatistics agregados calculados por el servidor; solo lectura.
type AgencyStatistics struct {
	TotalTenders       int    `json:"totalTenders"`
	OpenTenders        int    `json:"openTenders"`
	ClosedTenders      int    `json:"closedTenders"`
	CancelledTenders   int    `json:"cancelledTenders"`
	VerificationStatus string `json:"verificationStatus"`
}
