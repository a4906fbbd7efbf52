package model

// Seed returns the store every session starts from when no seed file is given.
func Seed() Store {
	return NewStore(
		Entry{Key: "museum-date", Section: Section{
			Title: "Museum Date",
			Items: []Item{
				{ID: "geologi", Text: "Geologi Bandung"},
				{ID: "asia-afrika", Text: "Asia Afrika (Gedung Merdeka)"},
				{ID: "sri-baduga", Text: "Sri Baduga"},
				{ID: "gedung-sate", Text: "Gedung Sate"},
				{ID: "art-gallery", Text: "Art Gallery"},
				{ID: "museum-3d", Text: "Museum 3D"},
				{ID: "wot-batu", Text: "Wot Batu"},
			},
		}},
		Entry{Key: "art-space", Section: Section{
			Title: "Art Space",
			Items: []Item{
				{ID: "selasar", Text: "Selasar Sunaryo Art Space"},
				{ID: "lawangwangi", Text: "Lawangwangi Creative Space"},
				{ID: "nuart", Text: "NuArt Sculpture Park"},
			},
		}},
		Entry{Key: "beach-date", Section: Section{
			Title: "Beach Date",
			Items: []Item{
				{ID: "pangandaran", Text: "Pantai Pangandaran"},
				{ID: "batu-karas", Text: "Pantai Batu Karas"},
				{ID: "santolo", Text: "Santolo"},
				{ID: "rancabuaya", Text: "Rancabuaya"},
				{ID: "sayang-heulang", Text: "Sayang Heulang"},
			},
		}},
		Entry{Key: "fun-date", Section: Section{
			Title: "Fun Date",
			Items: []Item{
				{ID: "pasar-malem", Text: "Pasar malem"},
				{ID: "karaoke", Text: "karaoke"},
				{ID: "mall", Text: "Mall"},
				{ID: "aquarium", Text: "Aquarium Date"},
				{ID: "dufan", Text: "Dufan Date"},
				{ID: "dago-dreampark", Text: "Dago Dreampark"},
				{ID: "sukawana", Text: "Perkebunan Teh Sukawana"},
				{ID: "sudut-pandang", Text: "Sudut Pandang"},
				{ID: "trans-studio", Text: "Trans Studio Bandung"},
				{ID: "braga", Text: "Braga Street"},
				{ID: "kawah-rengganis", Text: "Kawah Rengganis Ciwidey"},
				{ID: "situ-patenggang", Text: "Situ Patenggang"},
				{ID: "kebun-teh", Text: "Kebun Teh Rancabali"},
				{ID: "kawah-putih", Text: "Kawah Putih Ciwidey"},
				{ID: "petik-stroberi", Text: "Petik Stroberi Ciwidey"},
				{ID: "offroad", Text: "Offroad/Rafting"},
			},
		}},
	)
}
