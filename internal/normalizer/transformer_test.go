package normalizer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crcsb/internal/models"
	"crcsb/internal/sciencebase"
)

// baseRecord returns the smallest record that passes validation.
func baseRecord() *models.CoreRecord {
	return &models.CoreRecord{
		ParentID:         models.Some("parent-1"),
		URL:              models.Some("https://my.usgs.gov/crcwc/core/report/42"),
		LibNum:           models.Library("C123"),
		APINum:           models.Null(),
		CollectionName:   models.Some("abc def"),
		Operator:         models.Null(),
		Latitude:         models.Null(),
		Longitude:        models.Null(),
		IntervalsPresent: true,
	}
}

func transform(t *testing.T, rec *models.CoreRecord) *sciencebase.Item {
	t.Helper()

	item, err := NewTransformer().Transform(rec)
	require.NoError(t, err)
	require.NotNil(t, item)

	return item
}

func TestTransformer_Identifiers(t *testing.T) {
	rec := baseRecord()

	item := transform(t, rec)
	require.Len(t, item.Identifiers, 2)
	assert.Equal(t, sciencebase.Identifier{Type: "uniqueKey", Scheme: sciencebase.SchemeCatalogID, Key: "42"}, item.Identifiers[0])
	assert.Equal(t, sciencebase.Identifier{Type: "uniqueKey", Scheme: sciencebase.SchemeLibNum, Key: "C123"}, item.Identifiers[1])

	rec.APINum = models.Some("05-123-45678")

	item = transform(t, rec)
	require.Len(t, item.Identifiers, 3)
	assert.Equal(t, sciencebase.SchemeAPINum, item.Identifiers[2].Scheme)
	assert.Equal(t, "05-123-45678", item.Identifiers[2].Key)
}

func TestTransformer_Identifiers_NonStringAPINum(t *testing.T) {
	rec, err := DecodeRecord([]byte(`{"API Num": 512345, "Lib Num": 9001}`))
	require.NoError(t, err)

	rec.URL = models.Some("https://my.usgs.gov/crcwc/core/report/7")

	item := transform(t, rec)
	require.Len(t, item.Identifiers, 2)
	assert.Equal(t, "9001", item.Identifiers[1].Key)
	assert.True(t, item.Identifiers[1].NumericKey)

	data, err := json.Marshal(item.Identifiers)
	require.NoError(t, err)
	assert.Equal(t, `[{"type":"uniqueKey","scheme":"CRC Well Catalog Database ID","key":"7"},`+
		`{"type":"uniqueKey","scheme":"CRC Library Number","key":9001}]`, string(data))
}

func TestTransformer_Title(t *testing.T) {
	tests := []struct {
		name       string
		collection string
		want       string
	}{
		{name: "Lower case", collection: "abc def", want: "Core Research Center Abc def C123"},
		{name: "Upper case", collection: "PUBLIC COLLECTION", want: "Core Research Center Public collection C123"},
		{name: "Mixed case", collection: "uSGS Legacy", want: "Core Research Center Usgs legacy C123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := baseRecord()
			rec.CollectionName = models.Some(tt.collection)

			assert.Equal(t, tt.want, transform(t, rec).Title)
		})
	}
}

func TestTransformer_Body(t *testing.T) {
	rec := baseRecord()
	rec.Operator = models.Some("Acme Corp")

	item := transform(t, rec)

	assert.True(t, strings.HasPrefix(item.Body,
		"<p>Core Research Center, abc def C123, from well operated by Acme Corp</p>"+
			"<h4>Raw Properties from download, web scrape, MapServer, and Macrostrat API</h4><div>"))
	assert.True(t, strings.HasSuffix(item.Body, "</div>"))

	raw, err := rec.CompactJSON()
	require.NoError(t, err)
	assert.Contains(t, item.Body, raw)
	assert.Contains(t, raw, `"Operator":"Acme Corp"`)
}

func TestTransformer_Body_NullOperator(t *testing.T) {
	item := transform(t, baseRecord())

	assert.Contains(t, item.Body, "from well operated by null</p>")
}

func TestTransformer_Contacts(t *testing.T) {
	item := transform(t, baseRecord())
	require.Len(t, item.Contacts, 2)

	assert.Equal(t, "Core Research Center", item.Contacts[0].Name)
	assert.Equal(t, "Data Owner", item.Contacts[0].Type)
	assert.Equal(t, "organization", item.Contacts[0].ContactType)
	require.NotNil(t, item.Contacts[0].OldPartyID)
	assert.Equal(t, 17172, *item.Contacts[0].OldPartyID)

	assert.Equal(t, "Jeannine Honey", item.Contacts[1].Name)
	assert.Equal(t, "Data Steward", item.Contacts[1].Type)
	assert.Equal(t, "person", item.Contacts[1].ContactType)
	require.NotNil(t, item.Contacts[1].OldPartyID)
	assert.Equal(t, 4685, *item.Contacts[1].OldPartyID)

	rec := baseRecord()
	rec.Operator = models.Some("Acme Corp")

	item = transform(t, rec)
	require.Len(t, item.Contacts, 3)
	assert.Equal(t, sciencebase.Contact{Name: "Acme Corp", Type: "Site Operator", ContactType: "organization"}, item.Contacts[2])

	data, err := json.Marshal(item.Contacts[2])
	require.NoError(t, err)
	assert.NotContains(t, string(data), "oldPartyId")
}

func TestTransformer_ConstantSections(t *testing.T) {
	first := transform(t, baseRecord())

	rec := baseRecord()
	rec.CollectionName = models.Some("other")
	second := transform(t, rec)

	assert.Equal(t, first.Provenance, second.Provenance)
	assert.Contains(t, first.Provenance.Annotation, "Macrostrat API")
	assert.Equal(t, []string{"Physical Item"}, first.BrowseCategories)
	assert.Equal(t, "parent-1", first.ParentID)
}

func TestTransformer_WebLinks(t *testing.T) {
	rec := baseRecord()

	item := transform(t, rec)
	require.Len(t, item.WebLinks, 1)
	assert.Equal(t, sciencebase.WebLink{
		Type:              "webLink",
		TypeLabel:         "Web Link",
		URI:               "https://my.usgs.gov/crcwc/core/report/42",
		Rel:               "related",
		Title:             "Core Research Center Well Catalog Web Page",
		ItemWebLinkTypeID: sciencebase.WebLinkTypeID,
	}, item.WebLinks[0])

	rec.Documents = []string{"http://x/a.pdf", "", "http://x/b.pdf"}
	rec.Photos = []string{"http://x/p1.jpg"}
	rec.ThinSections = []models.ThinSection{
		{View: models.Some("")},
		{View: models.Some("http://x/ts1.jpg")},
		{View: models.Null()},
	}

	item = transform(t, rec)
	require.Len(t, item.WebLinks, 5)

	titles := make([]string, 0, len(item.WebLinks))
	for _, link := range item.WebLinks[1:] {
		titles = append(titles, link.Title)
		assert.Equal(t, "download", link.Type)
		assert.Equal(t, sciencebase.DownloadTypeID, link.ItemWebLinkTypeID)
		assert.Equal(t, "related", link.Rel)
		assert.False(t, link.Hidden)
	}

	assert.Equal(t, []string{
		"Core Research Center Analysis File a.pdf",
		"Core Research Center Analysis File b.pdf",
		"Core Research Center Photo p1.jpg",
		"Core Research Center Thin Section ts1.jpg",
	}, titles)

	assert.Equal(t, "Download", item.WebLinks[1].TypeLabel)
	assert.Equal(t, "Photo", item.WebLinks[3].TypeLabel)
	assert.Equal(t, "Thin Section", item.WebLinks[4].TypeLabel)
	assert.Equal(t, "http://x/b.pdf", item.WebLinks[2].URI)
}

func TestTransformer_Spatial(t *testing.T) {
	rec := baseRecord()
	assert.Nil(t, transform(t, rec).Spatial)

	rec.Latitude = models.Some("40.5")
	rec.Longitude = models.Some("-105.2")

	item := transform(t, rec)
	require.NotNil(t, item.Spatial)
	assert.Equal(t, [2]float64{-105.2, 40.5}, item.Spatial.RepresentationalPoint)
}

func TestTransformer_Spatial_Errors(t *testing.T) {
	tests := []struct {
		name      string
		latitude  models.Text
		longitude models.Text
	}{
		{name: "Non-numeric latitude", latitude: models.Some("north"), longitude: models.Some("-105.2")},
		{name: "Non-numeric longitude", latitude: models.Some("40.5"), longitude: models.Some("")},
		{name: "Null longitude", latitude: models.Some("40.5"), longitude: models.Null()},
		{name: "Infinite latitude", latitude: models.Some("Inf"), longitude: models.Some("-105.2")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := baseRecord()
			rec.Latitude = tt.latitude
			rec.Longitude = tt.longitude

			item, err := NewTransformer().Transform(rec)
			require.ErrorIs(t, err, ErrInvalidCoordinate)
			assert.Nil(t, item)
		})
	}
}

func TestTransformer_Tags_Absent(t *testing.T) {
	rec := baseRecord()
	rec.Intervals = []models.Interval{
		{Formation: models.Some("UNKNOWN"), Age: models.Some("UNKN")},
		{Formation: models.Null(), Age: models.Null()},
	}
	rec.SurfaceRockType = []models.Text{models.Null()}
	rec.SurfaceAge = models.Some("")
	rec.GMUName = models.Some("")

	item := transform(t, rec)
	assert.Nil(t, item.Tags)

	data, err := json.Marshal(item)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"tags"`)
	assert.NotContains(t, string(data), `"spatial"`)
}

func TestTransformer_Tags_Order(t *testing.T) {
	rec := baseRecord()
	rec.Intervals = []models.Interval{
		{Formation: models.Some("WASATCH"), Age: models.Some("TERT")},
		{Formation: models.Some("UNKNOWN"), Age: models.Some("CRET")},
		{Formation: models.Some("DAKOTA"), Age: models.Some("UNKN")},
	}
	rec.SurfaceRockType = []models.Text{models.Some("sandstone"), models.Null(), models.Some("shale")}
	rec.SurfaceAge = models.Some("Eocene")
	rec.GMUName = models.Some("Uinta Formation")
	rec.StratUnit = models.Some("Uinta")

	item := transform(t, rec)

	want := []sciencebase.Tag{
		{Type: "Theme", Scheme: sciencebase.SchemeFormationAtDepth, Name: "WASATCH"},
		{Type: "Theme", Scheme: sciencebase.SchemeAgeAtDepth, Name: "TERT"},
		{Type: "Theme", Scheme: sciencebase.SchemeAgeAtDepth, Name: "CRET"},
		{Type: "Theme", Scheme: sciencebase.SchemeFormationAtDepth, Name: "DAKOTA"},
		{Type: "Theme", Scheme: sciencebase.SchemeSurfaceRockType, Name: "sandstone"},
		{Type: "Theme", Scheme: sciencebase.SchemeSurfaceRockType, Name: "shale"},
		{Type: "Theme", Scheme: sciencebase.SchemeSurfaceAge, Name: "Eocene"},
		{Type: "Theme", Scheme: sciencebase.SchemeMapUnitName, Name: "Uinta Formation"},
		{Type: "Theme", Scheme: sciencebase.SchemeStratUnitName, Name: "Uinta"},
	}
	assert.Equal(t, want, item.Tags)
}

func TestTransformer_Tags_Truncation(t *testing.T) {
	long := strings.Repeat("0123456789", 9)

	rec := baseRecord()
	rec.SurfaceAge = models.Some(long)
	rec.SurfaceRockType = []models.Text{models.Some(long)}
	rec.GMUName = models.Some(long)
	rec.StratUnit = models.Some(long)

	item := transform(t, rec)
	require.Len(t, item.Tags, 4)

	for _, tag := range item.Tags {
		assert.Len(t, tag.Name, 80)
		assert.Equal(t, long[:80], tag.Name)
	}
}

func TestTransformer_Tags_IntervalNamesNotTruncated(t *testing.T) {
	long := strings.Repeat("x", 120)

	rec := baseRecord()
	rec.Intervals = []models.Interval{{Formation: models.Some(long), Age: models.Null()}}

	item := transform(t, rec)
	require.Len(t, item.Tags, 1)
	assert.Equal(t, long, item.Tags[0].Name)
}

func TestTransformer_Tags_EmptyStringsDropped(t *testing.T) {
	rec := baseRecord()
	rec.Intervals = []models.Interval{{Formation: models.Some(""), Age: models.Some("")}}
	rec.SurfaceRockType = []models.Text{models.Some(""), models.Some("shale")}
	rec.StratUnit = models.Some("")

	item := transform(t, rec)

	assert.Equal(t, []sciencebase.Tag{
		{Type: "Theme", Scheme: sciencebase.SchemeSurfaceRockType, Name: "shale"},
	}, item.Tags)
}
