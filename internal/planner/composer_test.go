package planner

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func sampleCatalog() Catalog {
	return Catalog{
		Attractions: []Entity{
			{ID: "a1", Kind: KindAttraction, Name: "Kakadu National Park", Description: "World heritage wetlands",
				Category: "Nature Scenery", PriceRange: "Medium", Location: "Kakadu", WetSeasonSuitable: boolPtr(false)},
			{ID: "a2", Kind: KindAttraction, Name: "Museum and Art Gallery of the Northern Territory",
				Category: "Culture", Indoor: boolPtr(true), WetSeasonSuitable: boolPtr(true)},
		},
		Restaurants: []Entity{
			{ID: "r1", Kind: KindRestaurant, Name: "Char Restaurant", Description: "Dry-aged steaks",
				Category: "Steakhouse", PriceRange: "$$$", Location: "Esplanade", Specialties: "Wagyu"},
		},
	}
}

func sampleRequest(date string) TripRequest {
	d, _ := time.Parse("2006-01-02", date)
	return TripRequest{
		TravelDate:    d,
		DurationDays:  3,
		Budget:        1800,
		DepartureCity: "Brisbane",
		Interests:     []string{"Nature", "Culture"},
		Preferences:   "I really want to see kakadu national park",
	}
}

func TestCompose_EmbedsEveryName(t *testing.T) {
	catalog := sampleCatalog()
	prompt := Compose(sampleRequest("2024-07-01"), catalog, time.Unix(0, 0))

	for _, e := range append(catalog.Attractions, catalog.Restaurants...) {
		assert.Contains(t, prompt, e.Name)
	}
	assert.Contains(t, prompt, "- Char Restaurant: Dry-aged steaks (Steakhouse, $$$, Esplanade, Wagyu)")
	assert.Contains(t, prompt, "✓Indoor")
	assert.Contains(t, prompt, "no repetition")
	assert.Contains(t, prompt, "AUD 1800")
	assert.Contains(t, prompt, "Interests: Nature, Culture")
}

func TestCompose_MandatoryAttractions(t *testing.T) {
	prompt := Compose(sampleRequest("2024-07-01"), sampleCatalog(), time.Unix(0, 0))

	idx := strings.Index(prompt, "Mandatory attractions")
	if assert.GreaterOrEqual(t, idx, 0) {
		section := prompt[idx:strings.Index(prompt, "Available attractions")]
		assert.Contains(t, section, "Kakadu National Park")
		assert.NotContains(t, section, "Museum")
	}

	req := sampleRequest("2024-07-01")
	req.Preferences = "none"
	assert.NotContains(t, Compose(req, sampleCatalog(), time.Unix(0, 0)), "Mandatory attractions")
}

func TestCompose_SeasonSections(t *testing.T) {
	wet := Compose(sampleRequest("2024-02-10"), sampleCatalog(), time.Unix(0, 0))
	dry := Compose(sampleRequest("2024-08-10"), sampleCatalog(), time.Unix(0, 0))

	assert.Contains(t, wet, "(Wet season)")
	assert.Contains(t, wet, "indoor backup")
	assert.Contains(t, dry, "(Dry season)")
	assert.NotContains(t, dry, "indoor backup")
}

func TestCompose_Deterministic(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	a := Compose(sampleRequest("2024-07-01"), sampleCatalog(), at)
	b := Compose(sampleRequest("2024-07-01"), sampleCatalog(), at)
	assert.Equal(t, a, b)

	later := Compose(sampleRequest("2024-07-01"), sampleCatalog(), at.Add(time.Hour))
	strip := func(s string) string {
		lines := strings.Split(s, "\n")
		return strings.Join(lines[2:], "\n")
	}
	assert.Equal(t, strip(a), strip(later))
}

func TestCompose_EmptyCatalog(t *testing.T) {
	prompt := Compose(sampleRequest("2024-07-01"), Catalog{}, time.Unix(0, 0))

	assert.NotContains(t, prompt, "Available attractions")
	assert.NotContains(t, prompt, "Available restaurants")
	assert.Contains(t, prompt, "3-day itinerary")
}
