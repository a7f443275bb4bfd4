package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"crcsb/internal/sciencebase"
	"crcsb/pkg/utils"
)

// RenderItem renders a human-readable markdown preview of an item with
// aligned tables. The body is left out because it embeds the whole source
// record.
func RenderItem(item *sciencebase.Item) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", cell(item.Title))
	fmt.Fprintf(&sb, "Parent: `%s`\n\n", item.ParentID)

	identifiers := make([][]string, 0, len(item.Identifiers))
	for _, id := range item.Identifiers {
		identifiers = append(identifiers, []string{id.Scheme, id.Key})
	}

	writeSection(&sb, "Identifiers", []string{"Scheme", "Key"}, identifiers)

	contacts := make([][]string, 0, len(item.Contacts))
	for _, c := range item.Contacts {
		partyID := ""
		if c.OldPartyID != nil {
			partyID = strconv.Itoa(*c.OldPartyID)
		}

		contacts = append(contacts, []string{c.Name, c.Type, c.ContactType, partyID})
	}

	writeSection(&sb, "Contacts", []string{"Name", "Type", "Contact Type", "Party ID"}, contacts)

	links := make([][]string, 0, len(item.WebLinks))
	for _, link := range item.WebLinks {
		links = append(links, []string{link.TypeLabel, link.Title, link.URI})
	}

	writeSection(&sb, "Web Links", []string{"Type", "Title", "URI"}, links)

	if item.Spatial != nil {
		point := item.Spatial.RepresentationalPoint
		writeSection(&sb, "Location", []string{"Longitude", "Latitude"}, [][]string{{
			strconv.FormatFloat(point[0], 'f', -1, 64),
			strconv.FormatFloat(point[1], 'f', -1, 64),
		}})
	}

	if len(item.Tags) > 0 {
		tags := make([][]string, 0, len(item.Tags))
		for _, tag := range item.Tags {
			tags = append(tags, []string{tag.Scheme, tag.Name})
		}

		writeSection(&sb, "Tags", []string{"Scheme", "Name"}, tags)
	}

	fmt.Fprintf(&sb, "_%s_\n", cell(item.Provenance.Annotation))

	return FormatMarkdown(sb.String())
}

func writeSection(sb *strings.Builder, heading string, header []string, rows [][]string) {
	fmt.Fprintf(sb, "## %s\n\n", heading)

	writeRow(sb, header)
	writeRow(sb, make([]string, len(header)))

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, value := range row {
			cells[i] = cell(value)
		}

		writeRow(sb, cells)
	}

	sb.WriteString("\n")
}

// writeRow writes an unaligned table row; FormatMarkdown pads it later.
// Empty cells in the second row of a table read as a separator.
func writeRow(sb *strings.Builder, cells []string) {
	sb.WriteString("|")

	for _, c := range cells {
		sb.WriteString(" ")
		sb.WriteString(c)
		sb.WriteString(" |")
	}

	sb.WriteString("\n")
}

// cell makes a value safe to place in a single table cell.
func cell(value string) string {
	return strings.ReplaceAll(utils.NormalizeWhitespace(value), "|", `\|`)
}
