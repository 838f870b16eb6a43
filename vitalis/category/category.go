// Package category normalizes free-text category names and tag sets to the
// canonical descriptors used for grouping history entries.
package category

import (
	"strings"
	"unicode"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Descriptor is canonical category metadata. Descriptors from the static
// table are immutable; unmatched input produces an ad-hoc descriptor with
// the default icon and color.
type Descriptor struct {
	CanonicalName string
	DisplayName   string
	Icon          string
	ColorToken    string
}

const (
	defaultIcon  = "tag"
	defaultColor = "neutral"

	// fuzzyMinScore gates the fuzzy fallback so that loosely related words
	// do not collapse into a canonical category.
	fuzzyMinScore = 10
)

type entry struct {
	descriptor Descriptor
	synonyms   []string
	tags       []string
}

// table is the static canonical category table. Synonyms and tags are stored
// pre-folded (lowercase, diacritics stripped). Order matters: tag resolution
// returns the first entry whose tag set intersects.
var table = []entry{
	{
		descriptor: Descriptor{CanonicalName: "saude", DisplayName: "Saúde", Icon: "heart", ColorToken: "red"},
		synonyms:   []string{"saude", "health", "wellness"},
		tags:       []string{"saude", "health", "sleep", "diet", "nutrition", "meditation"},
	},
	{
		descriptor: Descriptor{CanonicalName: "fitness", DisplayName: "Fitness", Icon: "dumbbell", ColorToken: "orange"},
		synonyms:   []string{"fitness", "exercicio", "exercise", "gym", "workout"},
		tags:       []string{"fitness", "exercise", "gym", "workout", "run", "running", "sport"},
	},
	{
		descriptor: Descriptor{CanonicalName: "trabalho", DisplayName: "Trabalho", Icon: "briefcase", ColorToken: "blue"},
		synonyms:   []string{"trabalho", "work", "job", "career"},
		tags:       []string{"trabalho", "work", "job", "meeting", "career", "project"},
	},
	{
		descriptor: Descriptor{CanonicalName: "estudos", DisplayName: "Estudos", Icon: "book", ColorToken: "purple"},
		synonyms:   []string{"estudos", "estudo", "study", "studies", "learning"},
		tags:       []string{"estudos", "study", "reading", "learning", "course", "book"},
	},
	{
		descriptor: Descriptor{CanonicalName: "financas", DisplayName: "Finanças", Icon: "coins", ColorToken: "green"},
		synonyms:   []string{"financas", "finance", "finances", "money"},
		tags:       []string{"financas", "finance", "money", "budget", "savings", "invest"},
	},
	{
		descriptor: Descriptor{CanonicalName: "social", DisplayName: "Social", Icon: "users", ColorToken: "pink"},
		synonyms:   []string{"social", "relacionamentos", "relationships"},
		tags:       []string{"social", "friends", "family", "call", "relationship"},
	},
	{
		descriptor: Descriptor{CanonicalName: "criatividade", DisplayName: "Criatividade", Icon: "palette", ColorToken: "yellow"},
		synonyms:   []string{"criatividade", "creativity", "creative", "arte", "art"},
		tags:       []string{"criatividade", "art", "music", "writing", "drawing", "create"},
	},
	{
		descriptor: Descriptor{CanonicalName: "casa", DisplayName: "Casa", Icon: "home", ColorToken: "teal"},
		synonyms:   []string{"casa", "home", "household", "chores"},
		tags:       []string{"casa", "home", "cleaning", "cooking", "chores"},
	},
	{
		descriptor: Descriptor{CanonicalName: "mente", DisplayName: "Mente", Icon: "brain", ColorToken: "cyan"},
		synonyms:   []string{"mente", "mind", "mindfulness"},
		tags:       []string{"mente", "mind", "journal", "gratitude", "therapy"},
	},
}

// synonymCorpus implements fuzzy.Source over every synonym in the table.
type synonymCorpus []synonymRef

type synonymRef struct {
	text  string
	entry *entry
}

func (c synonymCorpus) String(i int) string { return c[i].text }
func (c synonymCorpus) Len() int            { return len(c) }

// Resolver matches raw category names and tag sets against the static table.
// The zero value is not usable; construct with NewResolver.
type Resolver struct {
	byName map[string]*entry
	corpus synonymCorpus
}

func NewResolver() *Resolver {
	r := &Resolver{byName: make(map[string]*entry)}
	for i := range table {
		e := &table[i]
		r.byName[e.descriptor.CanonicalName] = e
		for _, syn := range e.synonyms {
			if _, exists := r.byName[syn]; !exists {
				r.byName[syn] = e
			}
			r.corpus = append(r.corpus, synonymRef{text: syn, entry: e})
		}
	}
	return r
}

// Normalize maps a raw name to its canonical descriptor. Matching is case and
// diacritic insensitive, first exact against names and synonyms, then fuzzy
// against the synonym corpus. Unmatched input becomes an ad-hoc descriptor
// with the title-cased input as display name. Idempotent: normalizing a
// returned CanonicalName yields the same descriptor.
func (r *Resolver) Normalize(raw string) Descriptor {
	folded := Fold(raw)
	if folded == "" {
		return Descriptor{CanonicalName: "", DisplayName: "", Icon: defaultIcon, ColorToken: defaultColor}
	}

	if e, ok := r.byName[folded]; ok {
		return e.descriptor
	}

	matches := fuzzy.FindFrom(folded, r.corpus)
	if len(matches) > 0 && matches[0].Score >= fuzzyMinScore {
		return r.corpus[matches[0].Index].entry.descriptor
	}

	return Descriptor{
		CanonicalName: folded,
		DisplayName:   titleCase(raw),
		Icon:          defaultIcon,
		ColorToken:    defaultColor,
	}
}

// ResolveFromTags returns the canonical name of the first category whose tag
// set intersects the given tags, falling back to a tag that literally names a
// category. The second return is false when nothing matches.
func (r *Resolver) ResolveFromTags(tags []string) (string, bool) {
	folded := make([]string, 0, len(tags))
	for _, t := range tags {
		folded = append(folded, Fold(t))
	}

	for i := range table {
		e := &table[i]
		for _, catTag := range e.tags {
			for _, t := range folded {
				if t == catTag {
					return e.descriptor.CanonicalName, true
				}
			}
		}
	}

	for _, t := range folded {
		if e, ok := r.byName[t]; ok {
			return e.descriptor.CanonicalName, true
		}
	}

	return "", false
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases and strips diacritics so "Saúde" and "saude" compare equal.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

func titleCase(s string) string {
	words := strings.Fields(strings.TrimSpace(s))
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		if len(runes) > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
