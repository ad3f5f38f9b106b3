package catalog

import (
	"github.com/Jose-11-2001/Mechanic-sub000/internal/model"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// defaults.go — seed collections written on the first Load of each category.
// Ids here are small and stable; runtime-created records continue from
// max(existing)+1.

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// DefaultTyres seeds the tyres catalog.
func DefaultTyres() []*model.Product {
	return []*model.Product{
		{ID: 1, Name: "Michelin 165/70R14", Size: "165/70R14", Brand: "Michelin", Type: "tubeless", Price: price("185000"), Quantity: 50, Description: "Passenger car radial"},
		{ID: 2, Name: "Dunlop 185/65R15", Size: "185/65R15", Brand: "Dunlop", Type: "tubeless", Price: price("210000"), Quantity: 30, Description: "All-season"},
		{ID: 3, Name: "Bridgestone 195/55R16", Size: "195/55R16", Brand: "Bridgestone", Type: "tubeless", Price: price("265000"), Quantity: 18, Description: "Low profile"},
	}
}

// DefaultTubes seeds the tubes catalog.
func DefaultTubes() []*model.Product {
	return []*model.Product{
		{ID: 1, Name: "Heavy duty tube 14\"", Size: "14", Brand: "Kenda", Type: "butyl", Price: price("18000"), Quantity: 60},
		{ID: 2, Name: "Heavy duty tube 15\"", Size: "15", Brand: "Kenda", Type: "butyl", Price: price("20000"), Quantity: 45},
	}
}

// DefaultBatteries seeds the batteries catalog.
func DefaultBatteries() []*model.Product {
	return []*model.Product{
		{ID: 1, Name: "Exide N50", Brand: "Exide", Type: "N50", Price: price("145000"), Quantity: 20, Description: "12V 50Ah maintenance free"},
		{ID: 2, Name: "Chloride N70", Brand: "Chloride", Type: "N70", Price: price("198000"), Quantity: 12, Description: "12V 70Ah"},
	}
}

// DefaultOilChange seeds the oil products catalog.
func DefaultOilChange() []*model.Product {
	return []*model.Product{
		{ID: 1, Name: "Castrol GTX 5W-30 4L", Brand: "Castrol", Type: "5W-30", Price: price("85000"), Quantity: 40, Description: "Synthetic blend with filter change"},
		{ID: 2, Name: "Shell Helix HX7 10W-40 4L", Brand: "Shell", Type: "10W-40", Price: price("78000"), Quantity: 35},
	}
}

// DefaultEngineerServices seeds the engineering services list.
func DefaultEngineerServices() []*model.ServiceOffer {
	return []*model.ServiceOffer{
		{ID: 1, Name: "Wheel alignment", Rate: price("35000"), Description: "Front and rear axle"},
		{ID: 2, Name: "Engine diagnostics", Rate: price("50000"), Description: "Full OBD scan and report"},
		{ID: 3, Name: "Suspension overhaul", Rate: price("120000")},
	}
}

// DefaultCars seeds the rental fleet.
func DefaultCars() []*model.Car {
	return []*model.Car{
		{ID: 1, Model: "Toyota Corolla", Year: "2019", Seats: 5, DailyRate: price("90000"), Quantity: 3},
		{ID: 2, Model: "Toyota Land Cruiser", Year: "2021", Seats: 7, DailyRate: price("250000"), Quantity: 2, Description: "With driver on request"},
	}
}

// DefaultUsers seeds the directory with the main admin (id 1). The hash is
// generated at seed time so the demo credentials work out of the box.
func DefaultUsers() []*model.User {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), 12)
	if err != nil {
		// bcrypt only fails on invalid cost; unreachable with a constant.
		panic(err)
	}
	return []*model.User{
		{
			ID:           model.MainAdminID,
			FirstName:    "System",
			LastName:     "Administrator",
			Username:     "admin",
			Email:        "admin@mechanic.local",
			Phone:        "+255700000001",
			PasswordHash: string(hash),
			Role:         model.RoleAdmin,
			Status:       model.StatusActive,
		},
	}
}
