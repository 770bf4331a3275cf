package record

import "ecutools/arcfg/pkg/ecuc/document"

// Each concept the extractors probe for has one explicit, ordered synonym
// table. Resolution is a single lookup over the table, first hit wins.

// ShortNameSynonyms are the child tags that can carry an element's name,
// in resolution order.
var ShortNameSynonyms = []string{"SHORT-NAME", "SHORT_NAME", "SHORTNAME", "ShortName"}

// DefaultValueSynonyms are the child tags that can carry a default value.
var DefaultValueSynonyms = []string{"DEFAULT-VALUE", "DEFAULT_VALUE", "VALUE"}

// DescriptionSynonyms are the child tags that can carry a description.
var DescriptionSynonyms = []string{"DESC", "DESCRIPTION"}

// LookupChildText resolves a concept against an element by trying each
// synonym in order and returning the first non-empty child text.
func LookupChildText(el *document.Element, synonyms []string) (string, bool) {
	for _, tag := range synonyms {
		if text := el.ChildText(tag); text != "" {
			return text, true
		}
	}
	return "", false
}
