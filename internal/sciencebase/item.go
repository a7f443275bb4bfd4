// Package sciencebase defines the ScienceBase item record produced for each well.
package sciencebase

import "encoding/json"

// Identifier represents an entry in the item's identifiers list.
type Identifier struct {
	Type   string `json:"type"`
	Scheme string `json:"scheme"`
	Key    string `json:"key"`

	// NumericKey writes Key as a JSON number.
	NumericKey bool `json:"-"`
}

// MarshalJSON implements json.Marshaler.
func (id Identifier) MarshalJSON() ([]byte, error) {
	var key any = id.Key
	if id.NumericKey {
		key = json.Number(id.Key)
	}

	return json.Marshal(struct {
		Type   string `json:"type"`
		Scheme string `json:"scheme"`
		Key    any    `json:"key"`
	}{Type: id.Type, Scheme: id.Scheme, Key: key})
}

// Contact represents a party related to the item. OldPartyID is only set
// for parties registered in the ScienceBase directory.
type Contact struct {
	Name        string `json:"name"`
	OldPartyID  *int   `json:"oldPartyId,omitempty"`
	Type        string `json:"type"`
	ContactType string `json:"contactType"`
}

// Provenance holds the harvest annotation.
type Provenance struct {
	Annotation string `json:"annotation"`
}

// WebLink represents a link or downloadable file attached to the item.
type WebLink struct {
	Type              string `json:"type"`
	TypeLabel         string `json:"typeLabel"`
	URI               string `json:"uri"`
	Rel               string `json:"rel"`
	Title             string `json:"title"`
	Hidden            bool   `json:"hidden"`
	ItemWebLinkTypeID string `json:"itemWebLinkTypeId"`
}

// Spatial holds the item's representational point as [longitude, latitude].
type Spatial struct {
	RepresentationalPoint [2]float64 `json:"representationalPoint"`
}

// Tag represents a themed keyword.
type Tag struct {
	Type   string `json:"type"`
	Scheme string `json:"scheme"`
	Name   string `json:"name"`
}

// Item represents the ScienceBase item create payload. Spatial and Tags are
// omitted from the JSON when there is nothing to report.
type Item struct {
	ParentID         string       `json:"parentId"`
	Identifiers      []Identifier `json:"identifiers"`
	Title            string       `json:"title"`
	Body             string       `json:"body"`
	Contacts         []Contact    `json:"contacts"`
	Provenance       Provenance   `json:"provenance"`
	BrowseCategories []string     `json:"browseCategories"`
	WebLinks         []WebLink    `json:"webLinks"`
	Spatial          *Spatial     `json:"spatial,omitempty"`
	Tags             []Tag        `json:"tags,omitempty"`
}

// Identifier schemes.
const (
	SchemeCatalogID = "CRC Well Catalog Database ID"
	SchemeLibNum    = "CRC Library Number"
	SchemeAPINum    = "American Petroleum Institute Number"
)

// Web link type identifiers registered in ScienceBase.
const (
	WebLinkTypeID  = "4f4e475de4b07f02db47debf"
	DownloadTypeID = "4f4e475de4b07f02db47dec0"
)

// Tag schemes.
const (
	SchemeFormationAtDepth = "Geologic Formation at Depth"
	SchemeAgeAtDepth       = "Geologic Age at Depth"
	SchemeSurfaceRockType  = "Surface Rock Type"
	SchemeSurfaceAge       = "Surface Geologic Age"
	SchemeMapUnitName      = "Geologic Map Unit Name"
	SchemeStratUnitName    = "Stratigraphic Unit Name"
)

// BrowseCategoryPhysicalItem is the only browse category CRC wells are filed under.
const BrowseCategoryPhysicalItem = "Physical Item"

// PartyID returns a pointer for Contact.OldPartyID.
func PartyID(id int) *int {
	return &id
}
