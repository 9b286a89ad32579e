package responses

import "github.com/goccy/go-json"

// VClaimMeta is the metaData block every VClaim response carries. The code is
// a string on the wire even though it holds an HTTP-like status.
type VClaimMeta struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// VClaimEnvelope wraps the encrypted (or occasionally plain) response field.
type VClaimEnvelope struct {
	MetaData VClaimMeta      `json:"metaData"`
	Response json.RawMessage `json:"response"`
}

type HistoryValidateResponse struct {
	URL string `json:"url"`
}

type GrouperResponse struct {
	CMGCode     string  `json:"code_cbg"`
	Description string  `json:"description"`
	Tariff      float64 `json:"tariff"`
}
