package company

// DateLayout is the date format ANAF expects and the API accepts.
const DateLayout = "2006-01-02"

// Company is the subset of the ANAF VAT-payer record exposed by the API.
// JSON names follow the Romanian field names the frontend already uses.
type Company struct {
	CUI           string `json:"cui"`
	Name          string `json:"denumire"`
	TradeRegNo    string `json:"nrRegCom"`
	Address       string `json:"adresa"`
	City          string `json:"oras"`
	County        string `json:"judet"`
	Phone         string `json:"telefon"`
	PostalCode    string `json:"codPostal"`
	VATRegistered bool   `json:"platitorTVA"`
}

// LookupKey identifies one lookup: a fiscal code on a reference date.
type LookupKey struct {
	CUI  string
	Date string
}

func (k LookupKey) String() string {
	return k.CUI + "@" + k.Date
}
