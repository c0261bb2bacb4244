package entity

import "time"

// CompanyInfo is the singleton issuer record shown on every generated document.
type CompanyInfo struct {
	Name         string    `json:"name"`
	GSTIN        string    `json:"gstin"`
	State        string    `json:"state"`
	StateCode    string    `json:"stateCode"`
	PAN          string    `json:"pan"`
	SalesPhone   string    `json:"salesPhone"`
	SupportPhone string    `json:"supportPhone"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	Logo         string    `json:"logo,omitempty"` // path or data URI of the raster logo
	UpdatedAt    time.Time `json:"updatedAt"`
}
