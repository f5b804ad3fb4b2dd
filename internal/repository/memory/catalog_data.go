package memory

import "github.com/Jinxhater/LUXE/internal/domain"

// seedCategories and seedProducts are the storefront catalog, in catalog order.
var seedCategories = []domain.Category{
	{ID: "cat1", Name: "Men", Slug: "men", Description: "Men's clothing collection"},
	{ID: "cat2", Name: "Women", Slug: "women", Description: "Women's clothing collection"},
	{ID: "cat3", Name: "Accessories", Slug: "accessories", Description: "Accessories collection"},
	{ID: "cat4", Name: "New Arrivals", Slug: "new-arrivals", Description: "Latest arrivals"},
}

var seedProducts = []domain.Product{
	{
		ID:          "p1",
		Name:        "Classic White T-Shirt",
		Slug:        "classic-white-t-shirt",
		Description: "Premium cotton white t-shirt with a relaxed fit. Perfect for everyday wear.",
		Price:       money("29.99"),
		CompareAt:   moneyPtr("39.99"),
		CategoryID:  "cat1",
		Images:      []string{"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=800"},
		Material:    "100% Organic Cotton",
		CareInfo:    "Machine wash cold, tumble dry low",
		Featured:    true,
		Active:      true,
		Variants: []domain.ProductVariant{
			{ID: "v1", ProductID: "p1", SKU: "CWT-S-WHT", Size: "S", Color: "White", ColorHex: "#FFFFFF", Stock: 50},
			{ID: "v2", ProductID: "p1", SKU: "CWT-M-WHT", Size: "M", Color: "White", ColorHex: "#FFFFFF", Stock: 75},
			{ID: "v3", ProductID: "p1", SKU: "CWT-L-WHT", Size: "L", Color: "White", ColorHex: "#FFFFFF", Stock: 60},
			{ID: "v4", ProductID: "p1", SKU: "CWT-M-BLK", Size: "M", Color: "Black", ColorHex: "#000000", Stock: 45},
		},
	},
	{
		ID:          "p2",
		Name:        "Oversized Hoodie",
		Slug:        "oversized-hoodie",
		Description: "Cozy oversized hoodie with kangaroo pocket. Perfect for layering.",
		Price:       money("59.99"),
		CategoryID:  "cat1",
		Images:      []string{"https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=800"},
		Material:    "80% Cotton, 20% Polyester",
		CareInfo:    "Machine wash cold, tumble dry low",
		Featured:    true,
		Active:      true,
		Variants: []domain.ProductVariant{
			{ID: "v5", ProductID: "p2", SKU: "OH-S-GRY", Size: "S", Color: "Grey", ColorHex: "#808080", Stock: 40},
			{ID: "v6", ProductID: "p2", SKU: "OH-M-GRY", Size: "M", Color: "Grey", ColorHex: "#808080", Stock: 55},
			{ID: "v7", ProductID: "p2", SKU: "OH-L-GRY", Size: "L", Color: "Grey", ColorHex: "#808080", Stock: 45},
			{ID: "v8", ProductID: "p2", SKU: "OH-M-BLK", Size: "M", Color: "Black", ColorHex: "#000000", Stock: 30},
		},
	},
	{
		ID:          "p3",
		Name:        "Leather Bomber Jacket",
		Slug:        "leather-bomber-jacket",
		Description: "Classic leather bomber jacket with ribbed cuffs. Timeless cool.",
		Price:       money("249.99"),
		CompareAt:   moneyPtr("299.99"),
		CategoryID:  "cat1",
		Images:      []string{"https://images.unsplash.com/photo-1551028719-00167b16eac5?w=800"},
		Material:    "Genuine Leather",
		CareInfo:    "Professional leather clean",
		Featured:    true,
		Active:      true,
		Variants: []domain.ProductVariant{
			{ID: "v9", ProductID: "p3", SKU: "LBJ-S-BLK", Size: "S", Color: "Black", ColorHex: "#000000", Stock: 15},
			{ID: "v10", ProductID: "p3", SKU: "LBJ-M-BLK", Size: "M", Color: "Black", ColorHex: "#000000", Stock: 20},
			{ID: "v11", ProductID: "p3", SKU: "LBJ-L-BLK", Size: "L", Color: "Black", ColorHex: "#000000", Stock: 18},
		},
	},
	{
		ID:          "p4",
		Name:        "Slim Fit Black Jeans",
		Slug:        "slim-fit-black-jeans",
		Description: "Modern slim fit black jeans with stretch comfort. A wardrobe essential.",
		Price:       money("79.99"),
		CompareAt:   moneyPtr("99.99"),
		CategoryID:  "cat1",
		Images:      []string{"https://images.unsplash.com/photo-1542272454315-4c01d7abdf4a?w=800"},
		Material:    "98% Cotton, 2% Elastane",
		CareInfo:    "Machine wash cold, hang to dry",
		Featured:    true,
		Active:      true,
		Variants: []domain.ProductVariant{
			{ID: "v12", ProductID: "p4", SKU: "SFB-30-BLK", Size: "30", Color: "Black", ColorHex: "#000000", Stock: 30},
			{ID: "v13", ProductID: "p4", SKU: "SFB-32-BLK", Size: "32", Color: "Black", ColorHex: "#000000", Stock: 45},
			{ID: "v14", ProductID: "p4", SKU: "SFB-34-BLK", Size: "34", Color: "Black", ColorHex: "#000000", Stock: 35},
		},
	},
	{
		ID:          "p5",
		Name:        "Polo Shirt",
		Slug:        "polo-shirt",
		Description: "Classic polo shirt with ribbed collar and cuffs. Timeless style.",
		Price:       money("44.99"),
		CompareAt:   moneyPtr("54.99"),
		CategoryID:  "cat1",
		Images:      []string{"https://images.unsplash.com/photo-1625910513413-5fc28e44362e?w=800"},
		Material:    "100% Pique Cotton",
		CareInfo:    "Machine wash cold, tumble dry low",
		Featured:    false,
		Active:      true,
		Variants: []domain.ProductVariant{
			{ID: "v15", ProductID: "p5", SKU: "PS-S-NVY", Size: "S", Color: "Navy", ColorHex: "#000080", Stock: 35},
			{ID: "v16", ProductID: "p5", SKU: "PS-M-NVY", Size: "M", Color: "Navy", ColorHex: "#000080", Stock: 50},
			{ID: "v17", ProductID: "p5", SKU: "PS-L-NVY", Size: "L", Color: "Navy", ColorHex: "#000080", Stock: 40},
		},
	},
	{
		ID:          "p6",
		Name:        "Denim Jacket",
		Slug:        "denim-jacket-men",
		Description: "Classic denim jacket with vintage wash. Goes with everything.",
		Price:       money("89.99"),
		CategoryID:  "cat1",
		Images:      []string{"https://images.unsplash.com/photo-1576995853123-5a10305d93c0?w=800"},
		Material:    "100% Cotton Denim",
		CareInfo:    "Machine wash cold, tumble dry low",
		Featured:    false,
		Active:      true,
		Variants: []domain.ProductVariant{
			{ID: "v18", ProductID: "p6", SKU: "DJ-S-IND", Size: "S", Color: "Indigo", ColorHex: "#4B0082", Stock: 25},
			{ID: "v19", ProductID: "p6", SKU: "DJ-M-IND", Size: "M", Color: "Indigo", ColorHex: "#4B0082", Stock: 35},
			{ID: "v20", ProductID: "p6", SKU: "DJ-L-IND", Size: "L", Color: "Indigo", ColorHex: "#4B0082", Stock: 30},
		},
	},
	{
		ID:          "p7",
		Name:        "Floral Summer Dress",
		Slug:        "floral-summer-dress",
		Description: "Elegant floral print summer dress with flowing silhouette.",
		Price:       money("89.99"),
		CompareAt:   moneyPtr("119.99"),
		CategoryID:  "cat2",
		Images:      []string{"https://images.unsplash.com/photo-1572804013309-59a88b7e92f1?w=800"},
		Material:    "100% Viscose",
		CareInfo:    "Hand wash cold, line dry",
		Featured:    true,
		Active:      true,
		Variants: []domain.ProductVariant{
			{ID: "v21", ProductID: "p7", SKU: "FSD-S-MUL", Size: "S", Color: "Multi", ColorHex: "#E8B4B8", Stock: 25},
			{ID: "v22", ProductID: "p7", SKU: "FSD-M-MUL", Size: "M", Color: "Multi", ColorHex: "#E8B4B8", Stock: 35},
			{ID: "v23", ProductID: "p7", SKU: "FSD-L-MUL", Size: "L", Color: "Multi", ColorHex: "#E8B4B8", Stock: 30},
		},
	},
	{
		ID:          "p8",
		Name:        "Cashmere Sweater",
		Slug:        "cashmere-sweater",
		Description: "Luxuriously soft cashmere sweater. Timeless elegance.",
		Price:       money("149.99"),
		CompareAt:   moneyPtr("179.99"),
		CategoryID:  "cat2",
		Images:      []string{"https://images.unsplash.com/photo-1576871337632-b9aef4c17ab9?w=800"},
		Material:    "100% Cashmere",
		CareInfo:    "Dry clean or hand wash cold",
		Featured:    true,
		Active:      true,
		Variants: []domain.ProductVariant{
			{ID: "v24", ProductID: "p8", SKU: "CSW-S-CRM", Size: "S", Color: "Cream", ColorHex: "#FFFDD0", Stock: 20},
			{ID: "v25", ProductID: "p8", SKU: "CSW-M-CRM", Size: "M", Color: "Cream", ColorHex: "#FFFDD0", Stock: 30},
			{ID: "v26", ProductID: "p8", SKU: "CSW-L-CRM", Size: "L", Color: "Cream", ColorHex: "#FFFDD0", Stock: 25},
		},
	},
	{
		ID:          "p9",
		Name:        "Silk Blouse",
		Slug:        "silk-blouse",
		Description: "Luxurious silk blouse with elegant draping. Perfect for work or evening.",
		Price:       money("99.99"),
		CategoryID:  "cat2",
		Images:      []string{"https://images.unsplash.com/photo-1598554747436-c9293d6a588f?w=800"},
		Material:    "100% Silk",
		CareInfo:    "Dry clean or hand wash cold",
		Featured:    false,
		Active:      true,
		Variants: []domain.ProductVariant{
			{ID: "v27", ProductID: "p9", SKU: "SB-S-IVR", Size: "S", Color: "Ivory", ColorHex: "#FFFFF0", Stock: 20},
			{ID: "v28", ProductID: "p9", SKU: "SB-M-IVR", Size: "M", Color: "Ivory", ColorHex: "#FFFFF0", Stock: 25},
			{ID: "v29", ProductID: "p9", SKU: "SB-L-IVR", Size: "L", Color: "Ivory", ColorHex: "#FFFFF0", Stock: 18},
		},
	},
	{
		ID:          "p10",
		Name:        "Little Black Dress",
		Slug:        "little-black-dress",
		Description: "Classic LBD perfect for any occasion. Timeless elegance.",
		Price:       money("129.99"),
		CategoryID:  "cat2",
		Images:      []string{"https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=800"},
		Material:    "95% Polyester, 5% Elastane",
		CareInfo:    "Machine wash cold, hang dry",
		Featured:    true,
		Active:      true,
		Variants: []domain.ProductVariant{
			{ID: "v30", ProductID: "p10", SKU: "LBD-S-BLK", Size: "S", Color: "Black", ColorHex: "#000000", Stock: 25},
			{ID: "v31", ProductID: "p10", SKU: "LBD-M-BLK", Size: "M", Color: "Black", ColorHex: "#000000", Stock: 35},
			{ID: "v32", ProductID: "p10", SKU: "LBD-L-BLK", Size: "L", Color: "Black", ColorHex: "#000000", Stock: 30},
		},
	},
	{
		ID:          "p11",
		Name:        "High-Waist Yoga Pants",
		Slug:        "high-waist-yoga-pants",
		Description: "Comfortable high-waist yoga pants with moisture-wicking fabric.",
		Price:       money("49.99"),
		CategoryID:  "cat2",
		Images:      []string{"https://images.unsplash.com/photo-1506629082955-511b1aa562c8?w=800"},
		Material:    "88% Nylon, 12% Spandex",
		CareInfo:    "Machine wash cold, tumble dry low",
		Featured:    true,
		Active:      true,
		Variants: []domain.ProductVariant{
			{ID: "v33", ProductID: "p11", SKU: "HYP-S-BLK", Size: "S", Color: "Black", ColorHex: "#000000", Stock: 60},
			{ID: "v34", ProductID: "p11", SKU: "HYP-M-BLK", Size: "M", Color: "Black", ColorHex: "#000000", Stock: 80},
			{ID: "v35", ProductID: "p11", SKU: "HYP-L-BLK", Size: "L", Color: "Black", ColorHex: "#000000", Stock: 55},
		},
	},
	{
		ID:          "p12",
		Name:        "Trench Coat",
		Slug:        "trench-coat",
		Description: "Classic trench coat with belt. Timeless outerwear essential.",
		Price:       money("149.99"),
		CompareAt:   moneyPtr("189.99"),
		CategoryID:  "cat2",
		Images:      []string{"https://images.unsplash.com/photo-1539533018447-63fcce2678e4?w=800"},
		Material:    "100% Cotton",
		CareInfo:    "Dry clean only",
		Featured:    true,
		Active:      true,
		Variants: []domain.ProductVariant{
			{ID: "v36", ProductID: "p12", SKU: "TC-S-BGE", Size: "S", Color: "Beige", ColorHex: "#F5F5DC", Stock: 20},
			{ID: "v37", ProductID: "p12", SKU: "TC-M-BGE", Size: "M", Color: "Beige", ColorHex: "#F5F5DC", Stock: 30},
			{ID: "v38", ProductID: "p12", SKU: "TC-L-BGE", Size: "L", Color: "Beige", ColorHex: "#F5F5DC", Stock: 25},
		},
	},
	{
		ID:          "p13",
		Name:        "Maxi Dress",
		Slug:        "maxi-dress",
		Description: "Bohemian maxi dress with flowing fabric. Perfect for beach days.",
		Price:       money("79.99"),
		CategoryID:  "cat2",
		Images:      []string{"https://images.unsplash.com/photo-1496747611176-843222e1e57c?w=800"},
		Material:    "100% Rayon",
		CareInfo:    "Hand wash cold, line dry",
		Featured:    false,
		Active:      true,
		Variants: []domain.ProductVariant{
			{ID: "v39", ProductID: "p13", SKU: "MD-S-TQL", Size: "S", Color: "Teal", ColorHex: "#008080", Stock: 30},
			{ID: "v40", ProductID: "p13", SKU: "MD-M-TQL", Size: "M", Color: "Teal", ColorHex: "#008080", Stock: 40},
			{ID: "v41", ProductID: "p13", SKU: "MD-L-TQL", Size: "L", Color: "Teal", ColorHex: "#008080", Stock: 35},
		},
	},
	{
		ID:          "p14",
		Name:        "Leather Crossbody Bag",
		Slug:        "leather-crossbody-bag",
		Description: "Premium leather crossbody bag with adjustable strap and multiple compartments.",
		Price:       money("129.99"),
		CompareAt:   moneyPtr("159.99"),
		CategoryID:  "cat3",
		Images:      []string{"https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=800"},
		Material:    "Genuine Leather",
		CareInfo:    "Wipe with damp cloth",
		Featured:    true,
		Active:      true,
		Variants: []domain.ProductVariant{
			{ID: "v42", ProductID: "p14", SKU: "LCB-TAN", Size: "One Size", Color: "Tan", ColorHex: "#D2B48C", Stock: 30},
			{ID: "v43", ProductID: "p14", SKU: "LCB-BLK", Size: "One Size", Color: "Black", ColorHex: "#000000", Stock: 45},
		},
	},
	{
		ID:          "p15",
		Name:        "Canvas Sneakers",
		Slug:        "canvas-sneakers",
		Description: "Classic canvas sneakers with cushioned insole for all-day comfort.",
		Price:       money("69.99"),
		CategoryID:  "cat3",
		Images:      []string{"https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?w=800"},
		Material:    "Canvas, Rubber",
		CareInfo:    "Machine washable",
		Featured:    true,
		Active:      true,
		Variants: []domain.ProductVariant{
			{ID: "v44", ProductID: "p15", SKU: "CS-7-WHT", Size: "7", Color: "White", ColorHex: "#FFFFFF", Stock: 40},
			{ID: "v45", ProductID: "p15", SKU: "CS-8-WHT", Size: "8", Color: "White", ColorHex: "#FFFFFF", Stock: 50},
			{ID: "v46", ProductID: "p15", SKU: "CS-9-WHT", Size: "9", Color: "White", ColorHex: "#FFFFFF", Stock: 45},
			{ID: "v47", ProductID: "p15", SKU: "CS-9-BLK", Size: "9", Color: "Black", ColorHex: "#000000", Stock: 30},
		},
	},
	{
		ID:          "p16",
		Name:        "Minimalist Watch",
		Slug:        "minimalist-watch",
		Description: "Sleek minimalist watch with genuine leather strap and water resistance.",
		Price:       money("149.99"),
		CategoryID:  "cat3",
		Images:      []string{"https://images.unsplash.com/photo-1524592094714-0f0654e20314?w=800"},
		Material:    "Stainless Steel, Leather",
		CareInfo:    "Water resistant to 30m",
		Featured:    false,
		Active:      true,
		Variants: []domain.ProductVariant{
			{ID: "v48", ProductID: "p16", SKU: "MW-SLV-BRN", Size: "One Size", Color: "Silver/Brown", ColorHex: "#C0C0C0", Stock: 25},
			{ID: "v49", ProductID: "p16", SKU: "MW-GLD-BLK", Size: "One Size", Color: "Gold/Black", ColorHex: "#FFD700", Stock: 20},
		},
	},
	{
		ID:          "p17",
		Name:        "Sunglasses",
		Slug:        "sunglasses",
		Description: "Classic sunglasses with UV protection. Timeless style.",
		Price:       money("89.99"),
		CategoryID:  "cat3",
		Images:      []string{"https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=800"},
		Material:    "Acetate, Polycarbonate Lenses",
		CareInfo:    "Clean with microfiber cloth",
		Featured:    true,
		Active:      true,
		Variants: []domain.ProductVariant{
			{ID: "v50", ProductID: "p17", SKU: "SG-BLK", Size: "One Size", Color: "Black", ColorHex: "#000000", Stock: 35},
			{ID: "v51", ProductID: "p17", SKU: "SG-TOR", Size: "One Size", Color: "Tortoise", ColorHex: "#8B4513", Stock: 30},
		},
	},
	{
		ID:          "p18",
		Name:        "Ankle Boots",
		Slug:        "ankle-boots",
		Description: "Versatile ankle boots with comfortable heel. Goes with everything.",
		Price:       money("129.99"),
		CompareAt:   moneyPtr("159.99"),
		CategoryID:  "cat3",
		Images:      []string{"https://images.unsplash.com/photo-1543163521-1bf539c55dd2?w=800"},
		Material:    "Genuine Leather",
		CareInfo:    "Wipe with damp cloth",
		Featured:    true,
		Active:      true,
		Variants: []domain.ProductVariant{
			{ID: "v52", ProductID: "p18", SKU: "AB-6-BLK", Size: "6", Color: "Black", ColorHex: "#000000", Stock: 20},
			{ID: "v53", ProductID: "p18", SKU: "AB-7-BLK", Size: "7", Color: "Black", ColorHex: "#000000", Stock: 30},
			{ID: "v54", ProductID: "p18", SKU: "AB-8-BLK", Size: "8", Color: "Black", ColorHex: "#000000", Stock: 25},
		},
	},
	{
		ID:          "p19",
		Name:        "Wool Peacoat",
		Slug:        "wool-peacoat",
		Description: "Classic wool peacoat for sophisticated style. Double-breasted.",
		Price:       money("199.99"),
		CompareAt:   moneyPtr("249.99"),
		CategoryID:  "cat1",
		Images:      []string{"https://images.unsplash.com/photo-1539109136881-3be0616acf4b?w=800"},
		Material:    "80% Wool, 20% Polyester",
		CareInfo:    "Dry clean only",
		Featured:    false,
		Active:      true,
		Variants: []domain.ProductVariant{
			{ID: "v55", ProductID: "p19", SKU: "WP-S-BLK", Size: "S", Color: "Black", ColorHex: "#000000", Stock: 15},
			{ID: "v56", ProductID: "p19", SKU: "WP-M-BLK", Size: "M", Color: "Black", ColorHex: "#000000", Stock: 20},
			{ID: "v57", ProductID: "p19", SKU: "WP-L-BLK", Size: "L", Color: "Black", ColorHex: "#000000", Stock: 18},
		},
	},
	{
		ID:          "p20",
		Name:        "Faux Fur Coat",
		Slug:        "faux-fur-coat",
		Description: "Luxurious faux fur coat for glamorous winter style.",
		Price:       money("179.99"),
		CategoryID:  "cat2",
		Images:      []string{"https://images.unsplash.com/photo-1539533113208-f6df8cc8b543?w=800"},
		Material:    "100% Polyester",
		CareInfo:    "Dry clean only",
		Featured:    false,
		Active:      true,
		Variants: []domain.ProductVariant{
			{ID: "v58", ProductID: "p20", SKU: "FFC-S-BRN", Size: "S", Color: "Brown", ColorHex: "#8B4513", Stock: 15},
			{ID: "v59", ProductID: "p20", SKU: "FFC-M-BRN", Size: "M", Color: "Brown", ColorHex: "#8B4513", Stock: 20},
			{ID: "v60", ProductID: "p20", SKU: "FFC-L-BRN", Size: "L", Color: "Brown", ColorHex: "#8B4513", Stock: 18},
		},
	},
}
