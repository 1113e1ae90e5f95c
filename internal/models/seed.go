package models

// SeedArticles returns the built-in sample set used to seed an empty store
func SeedArticles() []Article {
	return []Article{
		{
			ID:          "a7c8e1d2-4f3b-4a6e-9c5d-1b2e3f4a5d01",
			Slug:        "pushpa-2-the-rule-ott-release-date",
			Title:       "Pushpa 2: The Rule OTT Release Date Confirmed? Here is where to watch Allu Arjun starrer",
			Excerpt:     "The most awaited sequel Pushpa 2: The Rule is creating waves at the box office. Find out when it lands on your favorite OTT platform.",
			Category:    CategoryOTT,
			Platform:    PlatformNetflix,
			ReleaseDate: "2024-05-15",
			Language:    []string{"Telugu", "Hindi", "Tamil", "Malayalam", "Kannada"},
			Genre:       []string{"Action", "Drama", "Crime"},
			Cast:        []string{"Allu Arjun", "Rashmika Mandanna", "Fahadh Faasil"},
			Director:    "Sukumar",
			ImageURL:    "https://picsum.photos/seed/pushpa/800/450",
			IsFeatured:  true,
			PublishedAt: "2024-03-20",
			Content:     "Pushpa 2: The Rule is the sequel to the 2021 blockbuster Pushpa: The Rise. Allu Arjun returns as the iconic Pushpa Raj. The film follows the rise of Pushpa in the red sandalwood smuggling syndicate. With Sukumar at the helm and Devi Sri Prasad providing the music, expectations are sky-high...",
			FAQs: []FAQ{
				{Question: "Is Pushpa 2 coming to Netflix?", Answer: "Yes, Netflix has secured the post-theatrical streaming rights for Pushpa 2."},
				{Question: "What is the release date?", Answer: "The theatrical release is set for August, with an OTT release expected 8 weeks later."},
			},
		},
		{
			ID:          "b3d9f2e4-6a1c-4e8b-8d7f-2c3a4b5e6d02",
			Slug:        "upcoming-bollywood-movies-this-week",
			Title:       "Movies Releasing This Week: From Action Thrillers to Family Dramas",
			Excerpt:     "Check out the list of major Bollywood and regional movies hitting the theaters this Friday.",
			Category:    CategoryMovie,
			Platform:    PlatformTheatrical,
			ReleaseDate: "2024-03-22",
			Language:    []string{"Hindi", "Marathi"},
			Genre:       []string{"Drama", "Thriller"},
			Cast:        []string{"Varun Dhawan", "Janhvi Kapoor"},
			Director:    "Nitesh Tiwari",
			ImageURL:    "https://picsum.photos/seed/movies/800/450",
			PublishedAt: "2024-03-18",
			Content:     "This week is packed with exciting releases. High on the list is the action-packed drama directed by Nitesh Tiwari...",
		},
		{
			ID:          "c5e0a3f6-8b2d-4c9a-af1e-3d4b5c6f7e03",
			Slug:        "maharani-season-3-review-huma-qureshi",
			Title:       "Maharani Season 3 Review: Huma Qureshi Shines in this Political Drama",
			Excerpt:     "Rani Bharti is back in the third installment of Maharani on SonyLIV. Read our detailed review and character analysis.",
			Category:    CategoryOTT,
			Platform:    PlatformZee5,
			ReleaseDate: "2024-03-07",
			Language:    []string{"Hindi"},
			Genre:       []string{"Political Drama"},
			Cast:        []string{"Huma Qureshi", "Sohum Shah"},
			Director:    "Karan Sharma",
			ImageURL:    "https://picsum.photos/seed/maharani/800/450",
			PublishedAt: "2024-03-08",
			Content:     "The political battle in Bihar gets even more intense in Season 3...",
		},
		{
			ID:          "d8f1b4a7-0c3e-4d5b-9e2f-4a5c6d7e8f04",
			Slug:        "shah-rukh-khan-next-with-sujoy-ghosh",
			Title:       `Confirmed: Shah Rukh Khan and Suhana Khan to Team Up for Sujoy Ghosh's "King"`,
			Excerpt:     "Exclusive details about the upcoming action thriller starring the father-daughter duo.",
			Category:    CategoryNews,
			ReleaseDate: "2025-01-01",
			Language:    []string{"Hindi"},
			Genre:       []string{"Action"},
			Cast:        []string{"Shah Rukh Khan", "Suhana Khan"},
			Director:    "Sujoy Ghosh",
			ImageURL:    "https://picsum.photos/seed/srk/800/450",
			PublishedAt: "2024-03-19",
			Content:     "Industry sources have confirmed that Shah Rukh Khan will be sharing the screen with Suhana Khan...",
		},
	}
}
