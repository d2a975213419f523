package catalog

// Data katalog statis StyleSprout. Di-load sekali, tidak pernah berubah.

func Home() *Catalog {
	return &Catalog{
		DefaultCategory: "Featured",
		Products: []Product{
			{
				ID:       1,
				Name:     "Textured Johnny Collar Polo T-Shirt",
				Price:    50,
				OldPrice: 60,
				Rating:   5.6,
				Image:    "https://zellbury.com/cdn/shop/files/MPJ25004_blac_1.jpg?v=1760002898&width=823",
				Sizes:    []string{"S", "M", "L", "XL"},
			},
			{
				ID:       2,
				Name:     "Graphic Hoodie",
				Price:    50,
				OldPrice: 55,
				Rating:   5.3,
				Image:    "https://zellbury.com/cdn/shop/files/WWPH25001_4.jpg?v=1762864503&width=823",
				Sizes:    []string{"XS", "S", "M"},
			},
			{
				ID:       3,
				Name:     "Salwar kamze",
				Price:    60,
				OldPrice: 65,
				Rating:   5.1,
				Image:    "https://www.gulahmedshop.com/cdn/shop/files/basic_waistcoat_kwc-pd24-014_8.jpg?v=1758376644",
				Sizes:    []string{"4 Years", "6 Years", "8 Years", "10 Years"},
			},
			{
				ID:       4,
				Name:     "Men Shoes",
				Price:    60,
				OldPrice: 70,
				Image:    "https://images.unsplash.com/photo-1542291026-7eec264c27ff",
				Sizes:    []string{"7", "8", "9", "10"},
			},
			{
				ID:       5,
				Name:     "Pink Women's Tunic",
				Price:    45,
				OldPrice: 55,
				Rating:   4.8,
				Image:    "https://zellbury.com/cdn/shop/files/Wws251285_8.jpg?v=1760095107&width=823",
				Sizes:    []string{"S", "M", "L"},
			},
			{
				ID:       6,
				Name:     "Junior Girls Tees",
				Price:    50,
				OldPrice: 60,
				Rating:   4.5,
				Image:    "https://www.gulahmedshop.com/cdn/shop/files/junior-girls-tees-color-pink-regular-fit-jg-ts-ss25-009-half-front.jpg?v=1758455899",
				Sizes:    []string{"3 to 4 Years", "5 to 6 Years", "7 to 8 Years"},
			},
		},
	}
}

func Men() *Catalog {
	return &Catalog{
		DefaultCategory: "Men",
		Products: []Product{
			{
				ID:       101,
				Name:     "Classic Oxford Shirt",
				Price:    55,
				OldPrice: 70,
				Category: "Shirts",
				Rating:   4.7,
				Image:    "https://images.unsplash.com/photo-1596755094514-f87e34085b2c",
				Sizes:    []string{"S", "M", "L", "XL"},
			},
			{
				ID:       102,
				Name:     "Slim Fit Chinos",
				Price:    65,
				Category: "Pants",
				Rating:   4.4,
				Image:    "https://images.unsplash.com/photo-1473966968600-fa801b869a1a",
				Sizes:    []string{"30", "32", "34", "36"},
			},
			{
				ID:       103,
				Name:     "Denim Trucker Jacket",
				Price:    95,
				OldPrice: 120,
				Category: "Jackets",
				Rating:   4.8,
				Image:    "https://images.unsplash.com/photo-1576871337622-98d48d1cf531",
				Sizes:    []string{"M", "L", "XL"},
			},
			{
				ID:       104,
				Name:     "Crewneck Basic Tee",
				Price:    25,
				Category: "Shirts",
				Rating:   4.2,
				Image:    "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab",
				Sizes:    []string{"XS", "S", "M", "L", "XL"},
			},
			{
				ID:       105,
				Name:     "Leather Derby Shoes",
				Price:    110,
				OldPrice: 140,
				Category: "Shoes",
				Rating:   4.6,
				Image:    "https://images.unsplash.com/photo-1533867617858-e7b97e060509",
				Sizes:    []string{"7", "8", "9", "10", "11"},
			},
			{
				ID:     106,
				Name:   "Canvas Belt",
				Price:  20,
				Rating: 4.0,
				Image:  "https://images.unsplash.com/photo-1624222247344-550fb60583dc",
			},
			{
				ID:       107,
				Name:     "Wool Blend Overcoat",
				Price:    180,
				OldPrice: 220,
				Category: "Jackets",
				Rating:   4.9,
				Image:    "https://images.unsplash.com/photo-1544022613-e87ca75a784a",
				Sizes:    []string{"M", "L"},
			},
			{
				ID:       108,
				Name:     "Jogger Sweatpants",
				Price:    40,
				Category: "Pants",
				Rating:   4.3,
				Image:    "https://images.unsplash.com/photo-1552902865-b72c031ac5ea",
				Sizes:    []string{"S", "M", "L", "XL"},
			},
		},
	}
}
