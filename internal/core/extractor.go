package core

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"golang.org/x/net/html"

	"hkgbuild/internal/policies"
	"hkgbuild/internal/shared"
	"hkgbuild/internal/types"
)

// alternativeMarker separates alternative dependency sets inside the
// Dependencies cell.
var alternativeMarker = regexp.MustCompile(`\s*<b>\s*or\s*</b>\s*<br\s*/?>`)

const entrySeparator = ", "

// RawValue is what the extractor read for one label. Versions and License
// fill Text; Dependencies fills Entries.
type RawValue struct {
	Label   types.FieldLabel
	Text    string
	Entries []string
}

// Extract reads the value next to the header cell labelled label.
func Extract(doc *Document, label types.FieldLabel) (RawValue, error) {
	cell, err := valueCell(doc, label)
	if err != nil {
		return RawValue{}, err
	}
	switch label {
	case types.FieldLabelVersions:
		latest := FirstEmphasized(cell)
		if latest == nil {
			return RawValue{}, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("no latest version marked on %s", doc.URL()))
		}
		return RawValue{Label: label, Text: strings.TrimSpace(Text(latest))}, nil
	case types.FieldLabelLicense:
		text, ok := StringContent(cell)
		if !ok {
			text = directText(cell)
		}
		return RawValue{Label: label, Text: strings.TrimSpace(text)}, nil
	case types.FieldLabelDependencies:
		entries, err := DependencyEntries(cell)
		if err != nil {
			return RawValue{}, err
		}
		return RawValue{Label: label, Entries: entries}, nil
	default:
		return RawValue{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported field label: %s", label))
	}
}

// ExtractPage parses page and extracts label from it.
func ExtractPage(page types.IndexDocument, label types.FieldLabel) (RawValue, error) {
	doc, err := ParseDocument(page)
	if err != nil {
		return RawValue{}, err
	}
	return Extract(doc, label)
}

// DependencyEntries splits a Dependencies cell into raw entries. When the
// cell lists alternative sets only the selected one is returned.
func DependencyEntries(cell *html.Node) ([]string, error) {
	markup, err := InnerMarkup(cell)
	if err != nil {
		return nil, err
	}
	selected := policies.SelectAlternative(alternativeMarker.Split(markup, -1))
	text, err := FragmentText(selected)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	return strings.Split(text, entrySeparator), nil
}

func valueCell(doc *Document, label types.FieldLabel) (*html.Node, error) {
	header, ok := doc.FindHeaderCell(string(label))
	if !ok {
		return nil, shared.LabelNotFoundError(string(label), doc.URL())
	}
	cell := NextCell(header)
	if cell == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no value cell next to %q on %s", label, doc.URL()))
	}
	return cell, nil
}

func directText(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}
