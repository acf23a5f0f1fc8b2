package config

// BusinessType describes one entry in the static business-type directory
// offered during setup.
type BusinessType struct {
	ID          string
	Name        string
	Description string
}

// BusinessTypes returns the static directory of supported business types.
// Types without a dedicated category list fall back to DefaultCategories.
func BusinessTypes() []BusinessType {
	return []BusinessType{
		{ID: "grocery", Name: "Grocery Store", Description: "Food, beverages, and household items"},
		{ID: "electronics", Name: "Electronics Store", Description: "Mobile phones, computers, and gadgets"},
		{ID: "hair_salon", Name: "Hair Salon", Description: "Hair care products and styling tools"},
		{ID: "tailoring", Name: "Tailoring Shop", Description: "Fabrics, threads, and sewing supplies"},
		{ID: "pharmacy", Name: "Pharmacy", Description: "Medicines and health products"},
		{ID: "restaurant", Name: "Restaurant/Cafe", Description: "Food and beverage service"},
		{ID: "bookstore", Name: "Bookstore", Description: "Books and stationery items"},
		{ID: "clothing", Name: "Clothing Store", Description: "Fashion and accessories"},
		{ID: "auto_parts", Name: "Auto Parts Store", Description: "Car parts, accessories, and automotive supplies"},
		{ID: "bakery", Name: "Bakery", Description: "Bread, cakes, pastries, and baking supplies"},
		{ID: "hardware", Name: "Hardware Store", Description: "Tools, construction materials, and home improvement"},
		{ID: "jewelry", Name: "Jewelry Store", Description: "Jewelry, watches, and precious accessories"},
		{ID: "sports", Name: "Sports Store", Description: "Sports equipment, fitness gear, and athletic wear"},
		{ID: "pet_store", Name: "Pet Store", Description: "Pet supplies, food, toys, and accessories"},
		{ID: "flower_shop", Name: "Flower Shop", Description: "Fresh flowers, plants, and gardening supplies"},
		{ID: "office_supplies", Name: "Office Supplies", Description: "Business equipment, stationery, and office furniture"},
		{ID: "cosmetics", Name: "Cosmetics Store", Description: "Beauty products, makeup, and skincare"},
		{ID: "toy_store", Name: "Toy Store", Description: "Toys, games, and children's entertainment"},
		{ID: "mobile_shop", Name: "Mobile Phone Shop", Description: "Mobile phones, accessories, and repair services"},
		{ID: "furniture", Name: "Furniture Store", Description: "Home and office furniture, decor items"},
		{ID: "paint_shop", Name: "Paint Shop", Description: "Paints, brushes, and painting supplies"},
		{ID: "shoe_store", Name: "Shoe Store", Description: "Footwear, sandals, and shoe accessories"},
		{ID: "fabric_shop", Name: "Fabric Shop", Description: "Textiles, fabrics, and sewing materials"},
		{ID: "computer_shop", Name: "Computer Shop", Description: "Computers, laptops, and IT equipment"},
		{ID: "gift_shop", Name: "Gift Shop", Description: "Gifts, souvenirs, and novelty items"},
		{ID: "music_store", Name: "Music Store", Description: "Musical instruments, audio equipment, and music accessories"},
		{ID: "bicycle_shop", Name: "Bicycle Shop", Description: "Bicycles, cycling gear, and repair services"},
		{ID: "general_store", Name: "General Store", Description: "Mixed goods and everyday essentials"},
		{ID: "other", Name: "Other Business", Description: "Custom business type with general categories"},
	}
}

// DefaultCategories returns the generic category list used when a business
// type has no dedicated list in the category table.
func DefaultCategories() []string {
	return []string{"General", "Other"}
}
