package planner

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attraction(id, name string) Entity {
	return Entity{ID: id, Kind: KindAttraction, Name: name}
}

func restaurant(id, name string) Entity {
	return Entity{ID: id, Kind: KindRestaurant, Name: name}
}

func names(r MatchResult) []string {
	out := make([]string, 0, r.Len())
	for _, m := range r.Mentions {
		out = append(out, m.Entity.Name)
	}
	return out
}

func TestResolveMentions_Exact(t *testing.T) {
	entities := []Entity{attraction("a1", "Kakadu National Park")}

	r := ResolveMentions("On day two, visit Kakadu National Park today before lunch.", entities)

	require.Equal(t, 1, r.Len())
	assert.Equal(t, RuleExact, r.Mentions[0].Rule)
	assert.Same(t, &entities[0], r.Mentions[0].Entity)
}

func TestResolveMentions_CaseInsensitive(t *testing.T) {
	entities := []Entity{attraction("a1", "Crocosaurus Cove")}

	r := ResolveMentions("Morning at CROCOSAURUS COVE in the city.", entities)

	require.Equal(t, 1, r.Len())
	assert.Equal(t, RuleExact, r.Mentions[0].Rule)
}

func TestResolveMentions_Token(t *testing.T) {
	entities := []Entity{attraction("a1", "Mindil Beach Sunset Market")}

	r := ResolveMentions("Wander over to Mindil for dinner.", entities)
	require.Equal(t, 1, r.Len())
	assert.Equal(t, RuleWord, r.Mentions[0].Rule)

	r = ResolveMentions("The mindilbeach area is lovely.", []Entity{attraction("a2", "Mindil Park")})
	require.Equal(t, 1, r.Len())
	assert.Equal(t, RuleToken, r.Mentions[0].Rule)
}

func TestResolveMentions_ShortNameGuard(t *testing.T) {
	entities := []Entity{attraction("a1", "Go")}

	r := ResolveMentions("Day one: a walk by the harbour.", entities)
	assert.Equal(t, 0, r.Len())

	r = ResolveMentions("Let's Go karting on day two.", entities)
	require.Equal(t, 1, r.Len())
	assert.Equal(t, RuleExact, r.Mentions[0].Rule)
}

func TestResolveMentions_TokenLengthPerKind(t *testing.T) {
	// "Fan" is longer than the attraction minimum but not the restaurant one.
	a := []Entity{attraction("a1", "Fan Bay")}
	r := []Entity{restaurant("r1", "Fan Bay")}
	text := "Fans of fishing should book the harbour tour."

	assert.Equal(t, 1, ResolveMentions(text, a).Len())
	assert.Equal(t, 0, ResolveMentions(text, r).Len())
}

func TestResolveMentions_RestaurantSeparators(t *testing.T) {
	entities := []Entity{restaurant("r1", "Hanuman (Darwin)&Bar")}

	r := ResolveMentions("Dinner at Hanuman is a must.", entities)

	require.Equal(t, 1, r.Len())
	assert.Equal(t, RuleWord, r.Mentions[0].Rule)
}

func TestResolveMentions_Reverse(t *testing.T) {
	entities := []Entity{
		restaurant("r1", "Pee Wee's at the Point"),
		attraction("a1", "Litchfield"),
	}

	r := ResolveMentions("Drive out to Litch. Later, sunset drinks at Pee!", entities)

	assert.Equal(t, []string{"Pee Wee's at the Point", "Litchfield"}, names(r))
	assert.Equal(t, RuleReverse, r.Mentions[0].Rule)
	assert.Equal(t, RuleReverse, r.Mentions[1].Rule)
}

func TestResolveMentions_CatalogOrderAndOverlap(t *testing.T) {
	entities := []Entity{
		attraction("a1", "Darwin Waterfront"),
		attraction("a2", "Museum and Art Gallery of the Northern Territory"),
		attraction("a3", "Darwin Waterfront Wave Lagoon"),
	}
	text := "Swim at the Darwin Waterfront Wave Lagoon, then the Museum and Art Gallery of the Northern Territory."

	r := ResolveMentions(text, entities)

	assert.Equal(t, []string{
		"Darwin Waterfront",
		"Museum and Art Gallery of the Northern Territory",
		"Darwin Waterfront Wave Lagoon",
	}, names(r))
}

func TestResolveMentions_NoMatchAndEmpty(t *testing.T) {
	entities := []Entity{attraction("a1", "Kakadu National Park"), restaurant("r1", "")}

	assert.Equal(t, 0, ResolveMentions("Relax by the hotel pool.", entities).Len())
	assert.Equal(t, 0, ResolveMentions("", entities).Len())
	assert.Equal(t, 0, ResolveMentions("Kakadu", nil).Len())
}

func TestResolveMentions_Idempotent(t *testing.T) {
	entities := []Entity{
		attraction("a1", "Kakadu National Park"),
		attraction("a2", "Mindil Beach Sunset Market"),
		restaurant("r1", "Char Restaurant"),
	}
	text := "Kakadu on day one, Mindil markets on Thursday, steak at Char."

	first := ResolveMentions(text, entities)
	second := ResolveMentions(text, entities)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"a1", "a2"}, first.IDs(KindAttraction))
	assert.Equal(t, []string{"r1"}, first.IDs(KindRestaurant))
}

func TestResolveMentions_Concurrent(t *testing.T) {
	entities := []Entity{
		attraction("a1", "Kakadu National Park"),
		restaurant("r1", "Char Restaurant"),
	}
	want := ResolveMentions("Kakadu and Char", entities)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, ResolveMentions("Kakadu and Char", entities))
		}()
	}
	wg.Wait()
}

func TestResolveCatalog(t *testing.T) {
	catalog := Catalog{
		Attractions: []Entity{attraction("a1", "Kakadu National Park")},
		Restaurants: []Entity{restaurant("r1", "Char Restaurant")},
	}

	r := ResolveCatalog("Kakadu National Park then dinner at Char Restaurant", catalog)

	assert.Equal(t, []string{"Kakadu National Park", "Char Restaurant"}, names(r))
	assert.Same(t, &catalog.Restaurants[0], r.Mentions[1].Entity)
}
