package planner

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rule names the test that matched an entity.
type Rule string

const (
	RuleExact   Rule = "exact"
	RuleWord    Rule = "word"
	RuleToken   Rule = "token"
	RuleReverse Rule = "reverse"
)

type tokenRule struct {
	split *regexp.Regexp
	// tokens must be strictly longer than minLen
	minLen int
}

var (
	attractionTokens = tokenRule{split: regexp.MustCompile(`[\s\-/]+`), minLen: 2}
	restaurantTokens = tokenRule{split: regexp.MustCompile(`[\s\-/&,()]+`), minLen: 3}

	textSplit = regexp.MustCompile(`[\s\-/&,().!?;:]+`)
)

const reverseMinLen = 3

func rulesFor(kind Kind) tokenRule {
	if kind == KindRestaurant {
		return restaurantTokens
	}
	return attractionTokens
}

type Mention struct {
	Entity *Entity `json:"entity"`
	Rule   Rule    `json:"rule"`
}

// MatchResult lists matched entities in catalog order. Entity pointers
// refer into the slice that was searched.
type MatchResult struct {
	Mentions []Mention `json:"mentions"`
}

func (r MatchResult) Len() int {
	return len(r.Mentions)
}

func (r MatchResult) OfKind(kind Kind) []*Entity {
	var out []*Entity
	for _, m := range r.Mentions {
		if m.Entity.Kind == kind {
			out = append(out, m.Entity)
		}
	}
	return out
}

func (r MatchResult) IDs(kind Kind) []string {
	out := make([]string, 0)
	for _, e := range r.OfKind(kind) {
		out = append(out, e.ID)
	}
	return out
}

// ResolveMentions reports which entities are referred to by text. Each
// entity is tested once: full-name substring first, then name tokens
// (word boundary preferred, plain containment accepted), then text tokens
// contained in the name. Comparisons are case-insensitive.
func ResolveMentions(text string, entities []Entity) MatchResult {
	lowered := strings.ToLower(text)
	words := textTokens(lowered)

	var result MatchResult
	for i := range entities {
		if rule, ok := matchEntity(lowered, words, &entities[i]); ok {
			result.Mentions = append(result.Mentions, Mention{Entity: &entities[i], Rule: rule})
		}
	}
	return result
}

// ResolveCatalog runs ResolveMentions over attractions then restaurants.
func ResolveCatalog(text string, catalog Catalog) MatchResult {
	a := ResolveMentions(text, catalog.Attractions)
	r := ResolveMentions(text, catalog.Restaurants)
	return MatchResult{Mentions: append(a.Mentions, r.Mentions...)}
}

func matchEntity(text string, words []string, e *Entity) (Rule, bool) {
	name := strings.ToLower(strings.TrimSpace(e.Name))
	if name == "" {
		return "", false
	}
	if strings.Contains(text, name) {
		return RuleExact, true
	}

	rules := rulesFor(e.Kind)
	for _, tok := range rules.split.Split(name, -1) {
		if utf8.RuneCountInString(tok) <= rules.minLen {
			continue
		}
		if containsWord(text, tok) {
			return RuleWord, true
		}
		if strings.Contains(text, tok) {
			return RuleToken, true
		}
	}

	for _, w := range words {
		if strings.Contains(name, w) {
			return RuleReverse, true
		}
	}
	return "", false
}

func textTokens(text string) []string {
	parts := textSplit.Split(text, -1)
	seen := make(map[string]struct{}, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if utf8.RuneCountInString(p) < reverseMinLen {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// containsWord reports whether tok occurs in text with no letter or digit
// directly on either side.
func containsWord(text, tok string) bool {
	for offset := 0; offset <= len(text); {
		idx := strings.Index(text[offset:], tok)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(tok)
		if isBoundary(text, start, true) && isBoundary(text, end, false) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
	return false
}

func isBoundary(text string, pos int, before bool) bool {
	var r rune
	if before {
		if pos == 0 {
			return true
		}
		r, _ = utf8.DecodeLastRuneInString(text[:pos])
	} else {
		if pos >= len(text) {
			return true
		}
		r, _ = utf8.DecodeRuneInString(text[pos:])
	}
	return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
}
