package dictionary

import (
	"fmt"
	"strings"
)

// SchemaField describes one field of the expected response document. The
// descriptor is plain data so the completion transport can render it into
// whatever request shape its vendor needs.
type SchemaField struct {
	Name        string
	Type        string
	Description string
	// Fields describes the shape of an object, or of each item when Type
	// is "array of objects".
	Fields []SchemaField
}

// RequiredFields are the top-level fields a response must carry to be usable.
// Nested shapes are trusted as-is.
var RequiredFields = []string{"syllabification", "etymology", "synonyms", "forms"}

// WordDetailsSchema returns the response schema for a word breakdown request.
func WordDetailsSchema() []SchemaField {
	return []SchemaField{
		{Name: "part_of_speech", Type: "string", Description: "the most common part of speech of the word"},
		{Name: "syllabification", Type: "string", Description: "the word split into syllables, separated by middle dots"},
		{Name: "pronunciation", Type: "string", Description: "IPA pronunciation"},
		{Name: "common_meaning", Type: "string", Description: "the most common present-day meaning"},
		{Name: "etymological_meaning", Type: "string", Description: "the meaning implied by the word's origin"},
		{
			Name: "examples", Type: "array of objects", Description: "at least three example sentences",
			Fields: []SchemaField{
				{Name: "sentence", Type: "string", Description: "an example sentence using the word"},
				{Name: "translation", Type: "string", Description: "a plain-English paraphrase of the sentence"},
			},
		},
		{
			Name: "forms", Type: "array of objects", Description: "inflected or derived forms of the word",
			Fields: []SchemaField{
				{Name: "part_of_speech", Type: "string", Description: "part of speech of this form"},
				{Name: "word", Type: "string", Description: "the form itself"},
				{Name: "definition", Type: "string", Description: "definition of this form"},
				{Name: "example", Type: "string", Description: "an example sentence using this form"},
				{Name: "example_translation", Type: "string", Description: "a plain-English paraphrase of the example"},
			},
		},
		{
			Name: "etymology", Type: "object", Description: "origin of the word",
			Fields: []SchemaField{
				{Name: "root", Type: "string", Description: "the root word"},
				{Name: "root_language", Type: "string", Description: "language of the root, e.g. Latin, Greek, Old English"},
				{Name: "root_meaning", Type: "string", Description: "meaning of the root"},
				{Name: "development", Type: "string", Description: "how the word developed from the root into its modern form"},
				{
					Name: "related_words", Type: "array of objects", Description: "words sharing the same root",
					Fields: []SchemaField{
						{Name: "word", Type: "string", Description: "a related word"},
						{Name: "translation", Type: "string", Description: "its meaning"},
						{Name: "breakdown", Type: "string", Description: "how it derives from the root"},
					},
				},
			},
		},
		{
			Name: "synonyms", Type: "array of objects", Description: "synonyms with their nuances",
			Fields: []SchemaField{
				{Name: "word", Type: "string", Description: "a synonym"},
				{Name: "nuance", Type: "string", Description: "how it differs from the word"},
			},
		},
		{
			Name: "confusable_words", Type: "array of objects", Description: "words commonly confused with the word due to similar spelling or sound",
			Fields: []SchemaField{
				{Name: "word", Type: "string", Description: "a confusable word"},
				{Name: "meaning", Type: "string", Description: "its meaning"},
				{Name: "difference", Type: "string", Description: "how to tell the two apart"},
			},
		},
	}
}

// RenderSchema renders a schema descriptor as an indented field listing for
// embedding into a prompt.
func RenderSchema(fields []SchemaField) string {
	var b strings.Builder
	renderSchemaFields(&b, fields, 0)
	return b.String()
}

func renderSchemaFields(b *strings.Builder, fields []SchemaField, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, field := range fields {
		fmt.Fprintf(b, "%s- %q (%s): %s\n", indent, field.Name, field.Type, field.Description)
		if len(field.Fields) > 0 {
			renderSchemaFields(b, field.Fields, depth+1)
		}
	}
}
