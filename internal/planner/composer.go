package planner

import (
	"fmt"
	"strings"
	"time"
)

// Compose builds the generation prompt for a completed request. The output
// depends only on its arguments; composedAt is printed as a reference line.
func Compose(req TripRequest, catalog Catalog, composedAt time.Time) string {
	var b strings.Builder
	season := req.Season()

	fmt.Fprintf(&b, "You are an experienced Darwin (Northern Territory, Australia) travel planner. "+
		"Create a detailed %d-day itinerary for the traveller below.\n", req.DurationDays)
	fmt.Fprintf(&b, "Plan reference: composed %s\n\n", composedAt.UTC().Format(time.RFC3339))

	b.WriteString("Traveller profile:\n")
	fmt.Fprintf(&b, "- Arrival date: %s (%s season)\n", req.TravelDate.Format("2006-01-02"), seasonLabel(season))
	fmt.Fprintf(&b, "- Duration: %d days\n", req.DurationDays)
	fmt.Fprintf(&b, "- Budget: AUD %s\n", FormatBudget(req.Budget))
	fmt.Fprintf(&b, "- Departing from: %s\n", req.DepartureCity)
	if len(req.Interests) > 0 {
		fmt.Fprintf(&b, "- Interests: %s\n", strings.Join(req.Interests, ", "))
	} else {
		b.WriteString("- Interests: none given\n")
	}
	fmt.Fprintf(&b, "- Other preferences: %s\n", preferenceText(req.Preferences))

	if named := namedAttractions(req.Preferences, catalog.Attractions); len(named) > 0 {
		b.WriteString("\nMandatory attractions (the traveller asked for these, include every one):\n")
		for _, e := range named {
			fmt.Fprintf(&b, "- %s\n", e.Name)
		}
	}

	if len(catalog.Attractions) > 0 {
		b.WriteString("\nAvailable attractions (refer to them by these exact names):\n")
		for _, e := range catalog.Attractions {
			writeAttraction(&b, e)
		}
	}
	if len(catalog.Restaurants) > 0 {
		b.WriteString("\nAvailable restaurants (refer to them by these exact names):\n")
		for _, e := range catalog.Restaurants {
			writeRestaurant(&b, e)
		}
	}

	b.WriteString("\nRequirements:\n")
	reqs := []string{
		"Use the exact attraction and restaurant names listed above whenever you recommend them.",
		"Each day must feature different attractions and restaurants - no repetition across days.",
		"Give a day-by-day schedule with morning, afternoon and evening activities plus a meal suggestion for each.",
		fmt.Sprintf("Estimate costs in AUD and keep the whole trip within the AUD %s budget.", FormatBudget(req.Budget)),
		fmt.Sprintf("Cover getting from %s to Darwin on the first day and the return on the last day.", req.DepartureCity),
	}
	if season.IsWet() {
		reqs = append(reqs,
			"It is the wet season: prefer attractions marked suitable for the wet season or indoor, and give an indoor backup for every outdoor activity.",
			"Mention road closures and storm timing where they affect the plan.")
	} else {
		reqs = append(reqs, "It is the dry season: make the most of outdoor sights, sunsets and markets.")
	}
	reqs = append(reqs, "Finish with practical tips: what to pack, local transport and safety around wildlife and water.")
	for i, r := range reqs {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r)
	}

	return b.String()
}

func seasonLabel(s Season) string {
	if s.IsWet() {
		return "Wet"
	}
	return "Dry"
}

func preferenceText(p string) string {
	if strings.TrimSpace(p) == "" {
		return "none"
	}
	return p
}

// namedAttractions returns attractions whose full name appears in the
// preferences text.
func namedAttractions(prefs string, attractions []Entity) []Entity {
	lowered := strings.ToLower(prefs)
	if strings.TrimSpace(lowered) == "" {
		return nil
	}
	var out []Entity
	for _, e := range attractions {
		name := strings.ToLower(strings.TrimSpace(e.Name))
		if name != "" && strings.Contains(lowered, name) {
			out = append(out, e)
		}
	}
	return out
}

func writeAttraction(b *strings.Builder, e Entity) {
	details := nonEmpty(e.Category, e.PriceRange)
	if e.WetSeasonSuitable != nil && *e.WetSeasonSuitable {
		details = append(details, "✓Suitable for wet season")
	}
	if e.Indoor != nil && *e.Indoor {
		details = append(details, "✓Indoor")
	}
	details = append(details, nonEmpty(e.Location)...)
	writeEntity(b, e, details)
}

func writeRestaurant(b *strings.Builder, e Entity) {
	writeEntity(b, e, nonEmpty(e.Category, e.PriceRange, e.Location, e.Specialties))
}

func writeEntity(b *strings.Builder, e Entity, details []string) {
	b.WriteString("- ")
	b.WriteString(e.Name)
	if e.Description != "" {
		b.WriteString(": ")
		b.WriteString(e.Description)
	}
	if len(details) > 0 {
		fmt.Fprintf(b, " (%s)", strings.Join(details, ", "))
	}
	b.WriteByte('\n')
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
