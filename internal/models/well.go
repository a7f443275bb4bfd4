// Package models defines the source record harvested for a Core Research Center well.
package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidLibraryNumber is returned when "Lib Num" is neither a string nor a number.
var ErrInvalidLibraryNumber = errors.New("library number must be a string or a number")

var jsonNull = []byte("null")

// Text is a string-valued source field whose key may be missing and whose
// value may be null or of another JSON type.
//
// The zero value is an absent key. Present reports that the key appeared in
// the document; Valid reports that its value was a JSON string.
type Text struct {
	String  string
	Valid   bool
	Present bool
}

// Some returns a present string value.
func Some(s string) Text {
	return Text{String: s, Valid: true, Present: true}
}

// Null returns a present key holding null.
func Null() Text {
	return Text{Present: true}
}

// IsAbsent reports whether the value carries no information: not a string,
// empty, or equal to one of the sentinels used upstream for "unknown".
func (t Text) IsAbsent(sentinels ...string) bool {
	if !t.Valid || t.String == "" {
		return true
	}

	for _, s := range sentinels {
		if t.String == s {
			return true
		}
	}

	return false
}

// UnmarshalJSON implements json.Unmarshaler. Non-string values decode as
// present but not valid.
func (t *Text) UnmarshalJSON(data []byte) error {
	*t = Text{Present: true}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '"' {
		return nil
	}

	if err := json.Unmarshal(data, &t.String); err != nil {
		return err
	}

	t.Valid = true

	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Text) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return jsonNull, nil
	}

	return json.Marshal(t.String)
}

// LibraryNumber is the CRC library accession number. Upstream stores it as a
// string or a number depending on the collection, so both are accepted and
// kept in their textual form.
type LibraryNumber struct {
	Value   string
	Numeric bool
	Valid   bool
	Present bool
}

// Library returns a present string library number.
func Library(s string) LibraryNumber {
	return LibraryNumber{Value: s, Valid: true, Present: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *LibraryNumber) UnmarshalJSON(data []byte) error {
	*n = LibraryNumber{Present: true}

	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &n.Value); err != nil {
			return err
		}

		n.Valid = true

		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidLibraryNumber, data)
	}

	n.Value = num.String()
	n.Numeric = true
	n.Valid = true

	return nil
}

// MarshalJSON implements json.Marshaler.
func (n LibraryNumber) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return jsonNull, nil
	}

	if n.Numeric {
		return []byte(n.Value), nil
	}

	return json.Marshal(n.Value)
}

// IsZero reports whether the key was absent, for omitzero.
func (n LibraryNumber) IsZero() bool {
	return !n.Present
}

// String returns the textual form of the library number.
func (n LibraryNumber) String() string {
	return n.Value
}

// object holds the members of one JSON object by exact key. Struct decoding
// in encoding/json folds case, and upstream records carry keys that differ
// only in case, such as the "Photos" Y/N flag next to the "photos" list.
type object map[string]json.RawMessage

// member binds an exact object key to the value it decodes into.
type member struct {
	key string
	dst any
}

func decodeObject(data []byte, members []member) (object, error) {
	var obj object
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}

	for _, m := range members {
		value, ok := obj[m.key]
		if !ok {
			continue
		}

		if err := json.Unmarshal(value, m.dst); err != nil {
			return nil, fmt.Errorf("%q: %w", m.key, err)
		}
	}

	return obj, nil
}

// Interval is one sampled depth interval of the well.
type Interval struct {
	Formation Text `json:"Formation,omitzero"`
	Age       Text `json:"Age,omitzero"`
	MinDepth  any  `json:"Min Depth,omitempty"`
	MaxDepth  any  `json:"Max Depth,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler, matching keys exactly.
func (i *Interval) UnmarshalJSON(data []byte) error {
	var interval Interval

	_, err := decodeObject(data, []member{
		{key: "Formation", dst: &interval.Formation},
		{key: "Age", dst: &interval.Age},
		{key: "Min Depth", dst: &interval.MinDepth},
		{key: "Max Depth", dst: &interval.MaxDepth},
	})
	if err != nil {
		return err
	}

	*i = interval

	return nil
}

// ThinSection is a thin-section entry scraped from the well catalog page.
type ThinSection struct {
	View Text `json:"View,omitzero"`
}

// UnmarshalJSON implements json.Unmarshaler, matching keys exactly.
func (ts *ThinSection) UnmarshalJSON(data []byte) error {
	var section ThinSection

	if _, err := decodeObject(data, []member{{key: "View", dst: &section.View}}); err != nil {
		return err
	}

	*ts = section

	return nil
}

// CoreRecord is one well as assembled from the CRC download, the catalog web
// scrape, the MapServer layers and the Macrostrat API.
type CoreRecord struct {
	ParentID       Text          `json:"sb_parent_id,omitzero"`
	URL            Text          `json:"crcwc_url,omitzero"`
	LibNum         LibraryNumber `json:"Lib Num,omitzero"`
	APINum         Text          `json:"API Num,omitzero"`
	CollectionName Text          `json:"crc_collection_name,omitzero"`
	Operator       Text          `json:"Operator,omitzero"`
	WellName       Text          `json:"Well Name,omitzero"`
	Field          Text          `json:"Field,omitzero"`
	State          Text          `json:"State,omitzero"`
	County         Text          `json:"County,omitzero"`
	Latitude       Text          `json:"Latitude,omitzero"`
	Longitude      Text          `json:"Longitude,omitzero"`
	Geohash        Text          `json:"coordinates_geohash,omitzero"`
	Intervals      []Interval    `json:"intervals"`

	Documents    []string      `json:"documents,omitempty"`
	Photos       []string      `json:"photos,omitempty"`
	ThinSections []ThinSection `json:"thin_sections,omitempty"`

	SurfaceRockType []Text `json:"surface_rocktype,omitempty"`
	SurfaceAge      Text   `json:"surface_age,omitzero"`
	GMUName         Text   `json:"gmu_name,omitzero"`
	StratUnit       Text   `json:"strat_unit,omitzero"`
	GMURef          Text   `json:"gmu_ref,omitzero"`

	// IntervalsPresent is set when the "intervals" key appeared, even as null.
	IntervalsPresent bool `json:"-"`

	raw json.RawMessage
}

// coreRecordFields marshals a record built in code without its raw bytes.
type coreRecordFields CoreRecord

// UnmarshalJSON implements json.Unmarshaler. Keys are matched exactly, and a
// copy of the input is kept so the record can be reproduced losslessly,
// unknown keys included.
func (r *CoreRecord) UnmarshalJSON(data []byte) error {
	var rec CoreRecord

	obj, err := decodeObject(data, []member{
		{key: "sb_parent_id", dst: &rec.ParentID},
		{key: "crcwc_url", dst: &rec.URL},
		{key: "Lib Num", dst: &rec.LibNum},
		{key: "API Num", dst: &rec.APINum},
		{key: "crc_collection_name", dst: &rec.CollectionName},
		{key: "Operator", dst: &rec.Operator},
		{key: "Well Name", dst: &rec.WellName},
		{key: "Field", dst: &rec.Field},
		{key: "State", dst: &rec.State},
		{key: "County", dst: &rec.County},
		{key: "Latitude", dst: &rec.Latitude},
		{key: "Longitude", dst: &rec.Longitude},
		{key: "coordinates_geohash", dst: &rec.Geohash},
		{key: "intervals", dst: &rec.Intervals},
		{key: "documents", dst: &rec.Documents},
		{key: "photos", dst: &rec.Photos},
		{key: "thin_sections", dst: &rec.ThinSections},
		{key: "surface_rocktype", dst: &rec.SurfaceRockType},
		{key: "surface_age", dst: &rec.SurfaceAge},
		{key: "gmu_name", dst: &rec.GMUName},
		{key: "strat_unit", dst: &rec.StratUnit},
		{key: "gmu_ref", dst: &rec.GMURef},
	})
	if err != nil {
		return err
	}

	_, rec.IntervalsPresent = obj["intervals"]
	rec.raw = append(json.RawMessage(nil), data...)

	*r = rec

	return nil
}

// Raw returns the bytes the record was decoded from, or nil for a record
// built in code.
func (r *CoreRecord) Raw() json.RawMessage {
	return r.raw
}

// CompactJSON returns the whole record as compact JSON. Decoded records
// reproduce their input with insignificant whitespace removed; records built
// in code are marshalled from their typed fields.
func (r *CoreRecord) CompactJSON() (string, error) {
	if len(r.raw) > 0 {
		var buf bytes.Buffer
		if err := json.Compact(&buf, r.raw); err != nil {
			return "", fmt.Errorf("failed to compact source record: %w", err)
		}

		return buf.String(), nil
	}

	data, err := json.Marshal(coreRecordFields(*r))
	if err != nil {
		return "", fmt.Errorf("failed to marshal source record: %w", err)
	}

	return string(data), nil
}
