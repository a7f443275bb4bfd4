package normalizer

import (
	"crcsb/internal/models"
	"crcsb/internal/sciencebase"
	"crcsb/pkg/utils"
)

// downloadKind describes one family of downloadable files scraped from the
// catalog page.
type downloadKind struct {
	typeLabel   string
	titlePrefix string
}

var (
	analysisFiles = downloadKind{typeLabel: "Download", titlePrefix: "Core Research Center Analysis File"}
	photoFiles    = downloadKind{typeLabel: "Photo", titlePrefix: "Core Research Center Photo"}
	thinSections  = downloadKind{typeLabel: "Thin Section", titlePrefix: "Core Research Center Thin Section"}
)

func (t *Transformer) webLinks(rec *models.CoreRecord) []sciencebase.WebLink {
	links := []sciencebase.WebLink{
		{
			Type:              "webLink",
			TypeLabel:         "Web Link",
			URI:               rec.URL.String,
			Rel:               "related",
			Title:             "Core Research Center Well Catalog Web Page",
			Hidden:            false,
			ItemWebLinkTypeID: sciencebase.WebLinkTypeID,
		},
	}

	links = appendDownloads(links, analysisFiles, rec.Documents)
	links = appendDownloads(links, photoFiles, rec.Photos)
	links = appendDownloads(links, thinSections, thinSectionViews(rec.ThinSections))

	return links
}

func appendDownloads(links []sciencebase.WebLink, kind downloadKind, uris []string) []sciencebase.WebLink {
	for _, uri := range uris {
		if uri == "" {
			continue
		}

		links = append(links, sciencebase.WebLink{
			Type:              "download",
			TypeLabel:         kind.typeLabel,
			URI:               uri,
			Rel:               "related",
			Title:             kind.titlePrefix + " " + utils.LastPathSegment(uri),
			Hidden:            false,
			ItemWebLinkTypeID: sciencebase.DownloadTypeID,
		})
	}

	return links
}

// thinSectionViews returns the View URLs that are set.
func thinSectionViews(sections []models.ThinSection) []string {
	var views []string

	for _, section := range sections {
		if section.View.IsAbsent() {
			continue
		}

		views = append(views, section.View.String)
	}

	return views
}
