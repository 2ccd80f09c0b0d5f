package store

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// Filter is a conjunction of field clauses. The zero value matches every
// document. Clauses are added with Eq and ContainsFold; each store interprets
// the same filter against its own document representation.
type Filter struct {
	clauses []clause
}

type clause struct {
	// exact match on a single field
	field string
	value string

	// case-insensitive containment OR'd across fields
	fields []string
	text   string
}

// Eq adds an exact-match clause on field.
func (f Filter) Eq(field, value string) Filter {
	f.clauses = append(f.clauses, clause{field: field, value: value})
	return f
}

// ContainsFold adds a clause matching documents where any of the named
// fields case-insensitively contains text.
func (f Filter) ContainsFold(text string, fields ...string) Filter {
	f.clauses = append(f.clauses, clause{fields: fields, text: text})
	return f
}

// ToBSON renders the filter as a Mongo filter document. Containment clauses
// become an $or of case-insensitive regexes with the text quoted, so user
// input is matched literally.
func (f Filter) ToBSON() bson.M {
	out := bson.M{}
	for _, c := range f.clauses {
		if len(c.fields) == 0 {
			out[c.field] = c.value
			continue
		}
		or := make(bson.A, 0, len(c.fields))
		for _, field := range c.fields {
			or = append(or, bson.M{field: bson.M{
				"$regex":   regexp.QuoteMeta(c.text),
				"$options": "i",
			}})
		}
		out["$or"] = or
	}
	return out
}

// Matches reports whether doc satisfies every clause. Used by the in-memory
// store and by tests to mirror the Mongo semantics.
func (f Filter) Matches(doc Document) bool {
	for _, c := range f.clauses {
		if len(c.fields) == 0 {
			if fieldString(doc, c.field) != c.value {
				return false
			}
			continue
		}
		hit := false
		for _, field := range c.fields {
			v := fieldString(doc, field)
			if strings.Contains(strings.ToLower(v), strings.ToLower(c.text)) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

func fieldString(doc Document, field string) string {
	s, _ := doc[field].(string)
	return s
}
