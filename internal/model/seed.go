package model

// SampleBusinesses returns the built-in directory a session starts with
// when no seed file is configured. Each call returns a fresh copy.
func SampleBusinesses() []Business {
	return []Business{
		{
			ID:          1,
			Name:        "Gourmet Grove",
			Category:    CategoryRestaurant,
			Location:    "123 Culinary Lane, Foodville, FV 54321",
			Description: "A modern eatery offering the best farm-to-table dishes in a cozy atmosphere.",
			Phone:       OptionalString("555-0101"),
			Website:     OptionalString("https://gourmetgrove.example.com"),
		},
		{
			ID:          2,
			Name:        "The Artisan Shelf",
			Category:    CategoryRetail,
			Location:    "456 Market St, Shopsville, SV 67890",
			Description: "Curated collection of handcrafted goods and unique gifts from local artisans.",
			Website:     OptionalString("https://artisanshelf.example.com"),
		},
		{
			ID:          3,
			Name:        "Innovate Solutions",
			Category:    CategoryService,
			Location:    "789 Tech Park, Silicon City, SC 10111",
			Description: "Cutting-edge software development and IT consulting services for businesses.",
			Phone:       OptionalString("555-0103"),
			Website:     OptionalString("https://innovatesolutions.example.com"),
		},
		{
			ID:          4,
			Name:        "Sunrise Cafe",
			Category:    CategoryRestaurant,
			Location:    "101 Morning Ave, Dawn City, DC 12131",
			Description: "The perfect spot for breakfast and brunch, serving classic dishes with a twist.",
			Phone:       OptionalString("555-0104"),
		},
		{
			ID:          5,
			Name:        "City Threads",
			Category:    CategoryRetail,
			Location:    "212 Fashion Blvd, Metroburg, MB 14151",
			Description: "Trendy apparel and accessories for the modern urbanite. Style that speaks.",
		},
		{
			ID:          6,
			Name:        "QuickFix Auto",
			Category:    CategoryService,
			Location:    "313 Mechanic Rd, Gear Town, GT 16171",
			Description: "Reliable and efficient auto repair services. We get you back on the road fast.",
			Phone:       OptionalString("555-0106"),
			Website:     OptionalString("https://quickfixauto.example.com"),
		},
	}
}
