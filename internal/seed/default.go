package seed

// Default returns the built-in fixture used when no seed file is
// configured: one item of each variant and one borrower per privilege
// tier.
func Default() Fixture {
	return Fixture{
		Items: []ItemFixture{
			{
				Kind:     "Book",
				ID:       "BK001",
				Title:    "Intro to Databases",
				Creators: []string{"kim"},
				Tags:     []string{"cs", "database"},
				Genre:    "Textbook",
			},
			{
				Kind:     "Journal",
				ID:       "JR001",
				Title:    "Journal of Data Science",
				Creators: []string{"lee"},
				Tags:     []string{"data"},
			},
			{
				Kind:     "DVD",
				ID:       "DV001",
				Title:    "Science Documentary",
				Creators: []string{"doe"},
				Tags:     []string{"video", "science"},
			},
			{
				Kind:     "EBook",
				ID:       "EB001",
				Title:    "Python E-Book",
				Creators: []string{"guido"},
				Tags:     []string{"programming", "ebook"},
			},
		},
		Users: []UserFixture{
			{ID: "U100", Name: "alice student", Role: "Student"},
			{ID: "U200", Name: "bob faculty", Role: "Faculty"},
		},
	}
}
