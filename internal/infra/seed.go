package infra

import (
	"darwinplanner/internal/models/db_models"
	"darwinplanner/pkg/logger"
	"gorm.io/gorm"
)

func flag(v bool) *bool { return &v }

var seedAttractions = []db_models.Attraction{
	{Name: "Kakadu National Park", Description: "World Heritage wetlands, escarpments and rock art", Category: "Nature Scenery",
		Location: "Kakadu", SuitableForWetSeason: flag(false), Indoor: flag(false), PriceRange: "Medium", RecommendedDuration: "2-3 days"},
	{Name: "Litchfield National Park", Description: "Waterfalls, swimming holes and magnetic termite mounds", Category: "Nature Scenery",
		Location: "Batchelor", SuitableForWetSeason: flag(false), Indoor: flag(false), PriceRange: "Low", RecommendedDuration: "1 day"},
	{Name: "Mindil Beach Sunset Market", Description: "Dry season market with street food, crafts and sunsets", Category: "Markets",
		Location: "Mindil Beach", SuitableForWetSeason: flag(false), Indoor: flag(false), PriceRange: "Low", OpeningHours: "Thu & Sun 4pm-9pm"},
	{Name: "Crocosaurus Cove", Description: "Saltwater crocodiles in the middle of the city", Category: "Wildlife",
		Location: "Mitchell Street", SuitableForWetSeason: flag(true), Indoor: flag(true), PriceRange: "Medium", RecommendedDuration: "2-3 hours"},
	{Name: "Museum and Art Gallery of the Northern Territory", Description: "Cyclone Tracy exhibit and Aboriginal art", Category: "Culture",
		Location: "Fannie Bay", SuitableForWetSeason: flag(true), Indoor: flag(true), PriceRange: "Free", RecommendedDuration: "2 hours"},
	{Name: "Darwin Waterfront Wave Lagoon", Description: "Wave pool and stinger-safe swimming by the harbour", Category: "Leisure",
		Location: "Darwin Waterfront", SuitableForWetSeason: flag(true), Indoor: flag(false), PriceRange: "Low"},
}

var seedRestaurants = []db_models.Restaurant{
	{Name: "Char Restaurant", Description: "Dry-aged steaks in the historic Admiralty House", CuisineType: "Steakhouse",
		Location: "The Esplanade", PriceRange: "$$$", Specialties: "Wagyu, barramundi"},
	{Name: "Hanuman Darwin", Description: "Thai, Nonya and Indian dishes", CuisineType: "Asian Fusion",
		Location: "Mitchell Street", PriceRange: "$$", Specialties: "Oysters Hanuman"},
	{Name: "Pee Wee's at the Point", Description: "Fine dining overlooking Fannie Bay", CuisineType: "Modern Australian",
		Location: "East Point Reserve", PriceRange: "$$$", Specialties: "Local seafood"},
	{Name: "Darwin Ski Club", Description: "Beachfront bar with sunset views", CuisineType: "Australian Local",
		Location: "Fannie Bay", PriceRange: "$", Specialties: "Fish and chips"},
}

// SeedCatalog inserts a starter catalog when both tables are empty.
func SeedCatalog(db *gorm.DB, log *logger.Logger) error {
	var attractions, restaurants int64
	if err := db.Model(&db_models.Attraction{}).Count(&attractions).Error; err != nil {
		return err
	}
	if err := db.Model(&db_models.Restaurant{}).Count(&restaurants).Error; err != nil {
		return err
	}
	if attractions > 0 || restaurants > 0 {
		return nil
	}

	tx := StartTransaction(db)
	if tx.Error != nil {
		return tx.Error
	}

	a := append([]db_models.Attraction(nil), seedAttractions...)
	r := append([]db_models.Restaurant(nil), seedRestaurants...)
	err := tx.Create(&a).Error
	if err == nil {
		err = tx.Create(&r).Error
	}
	if err := ReleaseTransaction(tx, err); err != nil {
		return err
	}

	log.Info("catalog seeded", "attractions", len(a), "restaurants", len(r))
	return nil
}
