package normalizer

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"crcsb/internal/models"
	"crcsb/internal/sciencebase"
	"crcsb/pkg/utils"
)

// ErrInvalidCoordinate is returned when a coordinate string does not parse
// as a finite number.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

const (
	titlePrefix  = "Core Research Center"
	bodyHeading  = "<h4>Raw Properties from download, web scrape, MapServer, and Macrostrat API</h4>"
	nullOperator = "null"

	provenanceAnnotation = "Harvested and assembled from: CRC web site download, CRC web site scrape, " +
		"MapServer layers, Macrostrat API. Data were assembled in an intermediary MongoDB instance, " +
		"structured with code to product ScienceBase Items, and loaded to ScienceBase collection."
)

// Transformer maps a validated source record onto a ScienceBase item.
type Transformer struct{}

// NewTransformer creates a new transformer instance.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// Transform builds the item from each field group in turn. It assumes the
// record passed Validator.Validate.
func (t *Transformer) Transform(rec *models.CoreRecord) (*sciencebase.Item, error) {
	body, err := t.body(rec)
	if err != nil {
		return nil, err
	}

	item := &sciencebase.Item{
		ParentID:         rec.ParentID.String,
		Identifiers:      t.identifiers(rec),
		Title:            t.title(rec),
		Body:             body,
		Contacts:         t.contacts(rec),
		Provenance:       t.provenance(),
		BrowseCategories: []string{sciencebase.BrowseCategoryPhysicalItem},
		WebLinks:         t.webLinks(rec),
	}

	if rec.Latitude.Valid {
		spatial, err := t.spatial(rec)
		if err != nil {
			return nil, err
		}

		item.Spatial = spatial
	}

	item.Tags = t.tags(rec)

	return item, nil
}

func (t *Transformer) identifiers(rec *models.CoreRecord) []sciencebase.Identifier {
	identifiers := []sciencebase.Identifier{
		{
			Type:   "uniqueKey",
			Scheme: sciencebase.SchemeCatalogID,
			Key:    utils.LastPathSegment(rec.URL.String),
		},
		{
			Type:       "uniqueKey",
			Scheme:     sciencebase.SchemeLibNum,
			Key:        rec.LibNum.String(),
			NumericKey: rec.LibNum.Numeric,
		},
	}

	if rec.APINum.Valid {
		identifiers = append(identifiers, sciencebase.Identifier{
			Type:   "uniqueKey",
			Scheme: sciencebase.SchemeAPINum,
			Key:    rec.APINum.String,
		})
	}

	return identifiers
}

func (t *Transformer) title(rec *models.CoreRecord) string {
	return fmt.Sprintf("%s %s %s", titlePrefix, utils.Capitalize(rec.CollectionName.String), rec.LibNum)
}

func (t *Transformer) body(rec *models.CoreRecord) (string, error) {
	raw, err := rec.CompactJSON()
	if err != nil {
		return "", err
	}

	operator := nullOperator
	if rec.Operator.Valid {
		operator = rec.Operator.String
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "<p>%s, %s %s, from well operated by %s</p>",
		titlePrefix, rec.CollectionName.String, rec.LibNum, operator)
	sb.WriteString(bodyHeading)
	sb.WriteString("<div>")
	sb.WriteString(raw)
	sb.WriteString("</div>")

	return sb.String(), nil
}

func (t *Transformer) contacts(rec *models.CoreRecord) []sciencebase.Contact {
	contacts := []sciencebase.Contact{
		{
			Name:        "Core Research Center",
			OldPartyID:  sciencebase.PartyID(17172),
			Type:        "Data Owner",
			ContactType: "organization",
		},
		{
			Name:        "Jeannine Honey",
			OldPartyID:  sciencebase.PartyID(4685),
			Type:        "Data Steward",
			ContactType: "person",
		},
	}

	if rec.Operator.Valid {
		contacts = append(contacts, sciencebase.Contact{
			Name:        rec.Operator.String,
			Type:        "Site Operator",
			ContactType: "organization",
		})
	}

	return contacts
}

func (t *Transformer) provenance() sciencebase.Provenance {
	return sciencebase.Provenance{Annotation: provenanceAnnotation}
}

// spatial returns the representational point, longitude first.
func (t *Transformer) spatial(rec *models.CoreRecord) (*sciencebase.Spatial, error) {
	lat, err := parseCoordinate("Latitude", rec.Latitude)
	if err != nil {
		return nil, err
	}

	lon, err := parseCoordinate("Longitude", rec.Longitude)
	if err != nil {
		return nil, err
	}

	return &sciencebase.Spatial{RepresentationalPoint: [2]float64{lon, lat}}, nil
}

func parseCoordinate(key string, value models.Text) (float64, error) {
	if !value.Valid {
		return 0, fmt.Errorf("%w: %q is not a string", ErrInvalidCoordinate, key)
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(value.String), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidCoordinate, key, err)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrInvalidCoordinate, key)
	}

	return f, nil
}
