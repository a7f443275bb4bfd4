package normalizer

import (
	"crcsb/internal/models"
	"crcsb/internal/sciencebase"
	"crcsb/pkg/utils"
)

// Sentinels the CRC download uses for unknown interval values.
const (
	unknownFormation = "UNKNOWN"
	unknownAge       = "UNKN"
)

// maxTagNameLength caps tag names taken from the map-service and Macrostrat
// fields.
const maxTagNameLength = 80

func themeTag(scheme, name string) sciencebase.Tag {
	return sciencebase.Tag{Type: "Theme", Scheme: scheme, Name: name}
}

// tags returns nil when no tag applies so the key is left out of the item.
func (t *Transformer) tags(rec *models.CoreRecord) []sciencebase.Tag {
	var tags []sciencebase.Tag

	for _, interval := range rec.Intervals {
		if !interval.Formation.IsAbsent(unknownFormation) {
			tags = append(tags, themeTag(sciencebase.SchemeFormationAtDepth, interval.Formation.String))
		}

		if !interval.Age.IsAbsent(unknownAge) {
			tags = append(tags, themeTag(sciencebase.SchemeAgeAtDepth, interval.Age.String))
		}
	}

	for _, rockType := range rec.SurfaceRockType {
		if rockType.IsAbsent() {
			continue
		}

		tags = append(tags, themeTag(sciencebase.SchemeSurfaceRockType, truncateTagName(rockType.String)))
	}

	surface := []struct {
		scheme string
		value  models.Text
	}{
		{scheme: sciencebase.SchemeSurfaceAge, value: rec.SurfaceAge},
		{scheme: sciencebase.SchemeMapUnitName, value: rec.GMUName},
		{scheme: sciencebase.SchemeStratUnitName, value: rec.StratUnit},
	}

	for _, field := range surface {
		if field.value.IsAbsent() {
			continue
		}

		tags = append(tags, themeTag(field.scheme, truncateTagName(field.value.String)))
	}

	if len(tags) == 0 {
		return nil
	}

	return tags
}

func truncateTagName(name string) string {
	return utils.TruncateRunes(name, maxTagNameLength)
}
