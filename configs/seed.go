package configs

import (
	"errors"
	"log"

	"github.com/Div1912/Spice-Bite/entity"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the owner account on first boot.
func SeedAdmin(email, pass string) error {
	db := DB()
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Name:     "Restaurant Owner",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

type seedItem struct {
	name, desc, category string
	price                string
	veg, spicy           bool
	rating               float64
	reviews              int
}

var seedCatalog = []seedItem{
	{"Butter Chicken", "Tender chicken in a rich, creamy tomato sauce", "north-indian", "299.99", false, true, 4.7, 42},
	{"Paneer Tikka Masala", "Grilled cottage cheese in a spiced tomato gravy", "north-indian", "249.99", true, true, 4.5, 36},
	{"Dal Makhani", "Black lentils and kidney beans in a creamy butter sauce", "north-indian", "199.99", true, false, 4.3, 28},
	{"Chole Bhature", "Spicy chickpea curry served with fried bread", "north-indian", "189.99", true, true, 4.6, 31},
	{"Malai Kofta", "Vegetable dumplings in a rich, creamy sauce", "north-indian", "229.99", true, false, 4.4, 25},
	{"Masala Dosa", "Crispy rice crepe filled with spiced potato filling", "south-indian", "149.99", true, false, 4.8, 45},
	{"Idli Sambar", "Steamed rice cakes served with lentil soup and chutney", "south-indian", "129.99", true, false, 4.2, 33},
	{"Chettinad Chicken", "Spicy chicken curry with aromatic spices", "south-indian", "279.99", false, true, 4.6, 29},
	{"Mysore Masala Dosa", "Crispy dosa with spicy red chutney and potato filling", "south-indian", "169.99", true, true, 4.7, 38},
	{"Medu Vada", "Crispy lentil donuts served with sambar and coconut chutney", "south-indian", "119.99", true, false, 4.3, 27},
	{"Hyderabadi Chicken Biryani", "Fragrant basmati rice cooked with chicken and spices", "biryani", "299.99", false, true, 4.9, 56},
	{"Vegetable Biryani", "Basmati rice cooked with mixed vegetables and spices", "biryani", "249.99", true, true, 4.4, 32},
	{"Mutton Biryani", "Tender mutton pieces cooked with aromatic rice", "biryani", "349.99", false, true, 4.8, 47},
	{"Prawn Biryani", "Succulent prawns cooked with fragrant basmati rice", "biryani", "329.99", false, true, 4.7, 34},
	{"Egg Biryani", "Flavorful rice dish with boiled eggs and aromatic spices", "biryani", "229.99", false, true, 4.5, 29},
	{"Gulab Jamun", "Deep-fried milk solids soaked in sugar syrup", "desserts", "99.99", true, false, 4.7, 41},
	{"Rasgulla", "Soft cheese balls soaked in light sugar syrup", "desserts", "99.99", true, false, 4.5, 38},
	{"Kulfi", "Traditional Indian ice cream with nuts and cardamom", "desserts", "129.99", true, false, 4.6, 35},
	{"Jalebi", "Crispy, syrup-soaked sweet pretzel-like dessert", "desserts", "89.99", true, false, 4.4, 31},
	{"Gajar Ka Halwa", "Sweet carrot pudding with nuts and cardamom", "desserts", "119.99", true, false, 4.8, 43},
}

// SeedMenu loads the catalog and categories; idempotent across restarts.
func SeedMenu() error {
	db := DB()

	categories := []entity.Category{
		{Slug: "north-indian", Name: "North Indian"},
		{Slug: "south-indian", Name: "South Indian"},
		{Slug: "biryani", Name: "Biryani"},
		{Slug: "desserts", Name: "Desserts"},
	}
	for _, cat := range categories {
		var existing entity.Category
		err := db.Where("slug = ?", cat.Slug).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&cat).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}

	for _, it := range seedCatalog {
		price, err := decimal.NewFromString(it.price)
		if err != nil {
			return err
		}
		item := entity.MenuItem{
			Name:          it.name,
			Description:   it.desc,
			Price:         price,
			CategorySlug:  it.category,
			IsVegetarian:  it.veg,
			IsSpicy:       it.spicy,
			AverageRating: it.rating,
			ReviewCount:   it.reviews,
		}
		var existing entity.MenuItem
		err = db.Where("name = ?", it.name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&item).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}
	return nil
}
