package menu

import (
	"github.com/vini-501/FoodBase/entities"
)

// SeedMenuItems returns the canonical South Indian menu used to bootstrap a
// fresh database. IDs are fixed so the storefront can reference dishes across
// reseeds.
func SeedMenuItems() []*entities.MenuItem {
	return []*entities.MenuItem{
		{
			ID:                 "menu-1",
			Name:               "Open Butter Masala Dosa",
			Description:        "Crispy dosa filled with spiced potato filling and butter",
			Price:              80,
			Category:           "Breakfast",
			ImageURL:           "/imgg1.avif?height=160&width=300",
			RestaurantLocation: "The Rameshwaram Cafe - 32, Gandhi Bazaar Main Road, Basavanagudi, Bangalore",
		},
		{
			ID:                 "menu-2",
			Name:               "Ghee Pudi Idli with Coconut Chutney",
			Description:        "Steamed rice cakes served with lentil soup",
			Price:              60,
			Category:           "Breakfast",
			ImageURL:           "/imgg2.jpeg?height=160&width=300",
			RestaurantLocation: "Central Tiffin Room (CTR/Sri Sagar) - 7th Cross, Margosa Road, Malleshwaram, Bangalore",
		},
		{
			ID:                 "menu-3",
			Name:               "Mini Vada with Sambar",
			Description:        "Crispy savory donut made from lentil batter",
			Price:              40,
			Category:           "Breakfast",
			ImageURL:           "/img3.webp?height=160&width=300",
			RestaurantLocation: "Koshy's - 39, St. Mark's Road, Bangalore",
		},
		{
			ID:                 "menu-4",
			Name:               "Pulav and Raitha",
			Description:        "Spicy pulav rice with flavourful spices and raitha",
			Price:              70,
			Category:           "Main Course",
			ImageURL:           "/imgg4.jpeg?height=160&width=300",
			RestaurantLocation: "Toit Brewpub - 298, 100 Feet Road, Indiranagar, Bangalore",
		},
		{
			ID:                 "menu-5",
			Name:               "Hyderabadi Chicken Biryani",
			Description:        "Fragrant rice dish with spices and chicken",
			Price:              150,
			Category:           "Main Course",
			ImageURL:           "/img5.jpg?height=160&width=300",
			RestaurantLocation: "The Rameshwaram Cafe - 252, 36th Cross, 9th Main, 5th Block, Jayanagar, Bangalore",
		},
		{
			ID:                 "menu-6",
			Name:               "Filter Coffee",
			Description:        "Traditional South Indian coffee with frothy milk",
			Price:              25,
			Category:           "Beverages",
			ImageURL:           "/img6.jpeg?height=160&width=300",
			RestaurantLocation: "Karavalli - The Gateway Hotel, 66, Residency Road, Ashok Nagar, Bangalore",
		},
		{
			ID:                 "menu-7",
			Name:               "Puri with Sagu",
			Description:        "Puri served with spicy potato curry",
			Price:              4.99,
			Category:           "Main Course",
			ImageURL:           "/puri.webp?height=160&width=300",
			RestaurantLocation: "Nagarjuna - 44/1, Residency Road, Bangalore",
		},
		{
			ID:                 "menu-8",
			Name:               "Curd Rice",
			Description:        "Curd rice served with pickles and papad",
			Price:              40,
			Category:           "Main Course",
			ImageURL:           "/imgg8.jpeg?height=160&width=300",
			RestaurantLocation: "Sharief Bhai - Koramangala Branch, Bangalore",
		},
		{
			ID:                 "menu-9",
			Name:               "Mysore Pak",
			Description:        "Traditional sweet made with gram flour, ghee and sugar",
			Price:              50,
			Category:           "Desserts",
			ImageURL:           "/imgg9.webp?height=160&width=300",
			RestaurantLocation: "Jamavar - The Leela Palace, 23, Old Airport Road, Bangalore",
		},
		{
			ID:                 "menu-10",
			Name:               "Pongal with Coconut Chutney",
			Description:        "Savory rice and lentil dish, seasoned with spices",
			Price:              80,
			Category:           "Breakfast",
			ImageURL:           "/imgg10.jpg?height=160&width=300",
			RestaurantLocation: "MTR (Mavalli Tiffin Room) - 14, Lalbagh Road, Bangalore",
		},
		{
			ID:                 "menu-11",
			Name:               "Palak Panner",
			Description:        "Green palak served with fresh panner",
			Price:              170,
			Category:           "Breakfast",
			ImageURL:           "/imgg11.jpg?height=160&width=300",
			RestaurantLocation: "Sankalp Restaurant - 1st Floor, Ashoka Nagar, Bangalore",
		},
		{
			ID:                 "menu-12",
			Name:               "Bisi Bele Bath",
			Description:        "Spicy rice dish with lentils and vegetables",
			Price:              60,
			Category:           "Main Course",
			ImageURL:           "/img12.jpg?height=160&width=300",
			RestaurantLocation: "Vidyarthi Bhavan - 32, Gandhi Bazaar Main Road, Basavanagudi, Bangalore",
		},
	}
}
