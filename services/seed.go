package services

import (
	"fmt"
	"log"
	"math/rand"

	"storemate-backend/models"

	"gorm.io/gorm"
)

// UnitSizeInfo is the fixed catalog used when seeding an empty facility.
var UnitSizeInfo = map[string]struct {
	Size  string
	Price int
}{
	"small":       {Size: "5x5", Price: 50},
	"medium":      {Size: "10x10", Price: 100},
	"large":       {Size: "10x15", Price: 150},
	"extra-large": {Size: "10x20", Price: 200},
}

// RandomLocation picks a "Floor N, Block X" label for a seeded unit.
func RandomLocation() string {
	floor := rand.Intn(3) + 1
	block := string(rune('A' + rand.Intn(4)))
	return fmt.Sprintf("Floor %d, Block %s", floor, block)
}

// SeedUnits creates one unit per type when the units table is empty. A
// one-time startup convenience, not a repeatable migration.
func SeedUnits(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Unit{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, unitType := range models.UnitTypes {
		info := UnitSizeInfo[unitType]
		unit := models.Unit{
			Type:     unitType,
			Size:     info.Size,
			Price:    info.Price,
			Location: RandomLocation(),
		}
		if err := db.Create(&unit).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded %d starter units", len(models.UnitTypes))
	return nil
}
