package configs

import (
	"fmt"
	"log"

	"backend/entity"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the initial staff account from env, once.
func SeedAdmin(username, password string) error {
	db := DB()
	if username == "" || password == "" {
		log.Println("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Admin{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.Admin{Username: username, Password: string(hash)}
	return db.Create(&admin).Error
}

// SeedTables creates "Meja 1".."Meja 20" if missing.
func SeedTables() error {
	db := DB()
	for i := 1; i <= 20; i++ {
		name := fmt.Sprintf("Meja %d", i)
		if err := db.FirstOrCreate(&entity.Table{}, entity.Table{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedMenus loads the starter menu when the table is empty.
func SeedMenus() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.Menu{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	type seedMenu struct {
		name     string
		price    int64
		desc     string
		category entity.MenuCategory
	}
	menus := []seedMenu{
		{"Nasi Goreng Spesial", 25000, "Nasi goreng dengan telur, ayam, dan sayuran", entity.CategoryFood},
		{"Mie Goreng", 20000, "Mie goreng dengan sayuran dan telur", entity.CategoryFood},
		{"Ayam Geprek", 28000, "Ayam goreng dengan sambal geprek pedas", entity.CategoryFood},
		{"Sate Ayam", 30000, "10 tusuk sate ayam dengan bumbu kacang", entity.CategoryFood},
		{"Bakso Spesial", 22000, "Bakso sapi dengan mie dan pangsit", entity.CategoryFood},
		{"Es Teh Manis", 5000, "Es teh manis segar", entity.CategoryDrink},
		{"Es Jeruk", 8000, "Es jeruk peras segar", entity.CategoryDrink},
		{"Jus Alpukat", 15000, "Jus alpukat segar dengan susu", entity.CategoryDrink},
		{"Es Cappuccino", 18000, "Kopi cappuccino dingin", entity.CategoryDrink},
		{"Lemon Tea", 10000, "Teh dengan perasan lemon segar", entity.CategoryDrink},
		{"Es Krim Vanilla", 12000, "Es krim vanilla premium", entity.CategoryIceCream},
		{"Es Krim Coklat", 12000, "Es krim coklat premium", entity.CategoryIceCream},
		{"Es Krim Strawberry", 14000, "Es krim strawberry dengan potongan buah", entity.CategoryIceCream},
		{"Sundae Spesial", 20000, "Es krim dengan topping coklat, kacang, dan cherry", entity.CategoryIceCream},
		{"Es Krim Matcha", 16000, "Es krim rasa green tea Jepang", entity.CategoryIceCream},
	}

	for _, m := range menus {
		menu := entity.Menu{
			Name:        m.name,
			Price:       decimal.NewFromInt(m.price),
			Description: m.desc,
			Category:    m.category,
			Status:      entity.MenuAvailable,
		}
		if err := db.Create(&menu).Error; err != nil {
			return err
		}
	}
	log.Printf("seeded %d menus", len(menus))
	return nil
}
