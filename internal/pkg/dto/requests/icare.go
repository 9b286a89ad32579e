package requests

// HistoryAccess mirrors the iCare validation call: param carries the 13-digit
// BPJS card number, kodedokter the requesting doctor's code.
type HistoryAccess struct {
	Param      string `json:"param" validate:"required,len=13,numeric"`
	KodeDokter int    `json:"kodedokter" validate:"required,gt=0"`
	Purpose    string `json:"purpose"`

	// Audit fields filled by the controller, never by the client body.
	RequestedBy string `json:"-"`
	RequestIP   string `json:"-"`
}
