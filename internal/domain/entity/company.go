package entity

// CompanyProfile datos del emisor impresos en la cabecera y en las instrucciones de pago.
// Se inyecta en el ensamblador desde la configuración.
type CompanyProfile struct {
	Name      string
	Address   string
	City      string
	PayableTo string // "Make checks payable to: ..."; si va vacío se usa Name
}

// Payee nombre al que se giran los cheques.
func (c CompanyProfile) Payee() string {
	if c.PayableTo != "" {
		return c.PayableTo
	}
	return c.Name
}
