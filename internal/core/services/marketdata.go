package services

import "github.com/shopspring/decimal"

// referenceMarket is a mandi whose prices the daily sync generates quotes for.
type referenceMarket struct {
	Name     string
	District string
	State    string
}

// referenceCommodity is a commodity with its baseline modal price in rupees.
// Daily quotes are derived from the baseline with a small date-seeded drift.
type referenceCommodity struct {
	Name      string
	Category  string
	Unit      string
	BasePrice decimal.Decimal
}

var referenceMarkets = []referenceMarket{
	{Name: "Azadpur Mandi", District: "North Delhi", State: "Delhi"},
	{Name: "Vashi APMC", District: "Thane", State: "Maharashtra"},
	{Name: "Yeshwanthpur APMC", District: "Bengaluru Urban", State: "Karnataka"},
	{Name: "Koyambedu Market", District: "Chennai", State: "Tamil Nadu"},
	{Name: "Bowenpally Market", District: "Secunderabad", State: "Telangana"},
}

var referenceCommodities = []referenceCommodity{
	{Name: "Rice", Category: "Cereals", Unit: "Quintal", BasePrice: decimal.NewFromInt(2850)},
	{Name: "Wheat", Category: "Cereals", Unit: "Quintal", BasePrice: decimal.NewFromInt(2320)},
	{Name: "Maize", Category: "Cereals", Unit: "Quintal", BasePrice: decimal.NewFromInt(2090)},
	{Name: "Tur Dal", Category: "Pulses", Unit: "Quintal", BasePrice: decimal.NewFromInt(9600)},
	{Name: "Moong Dal", Category: "Pulses", Unit: "Quintal", BasePrice: decimal.NewFromInt(8450)},
	{Name: "Tomato", Category: "Vegetables", Unit: "Quintal", BasePrice: decimal.NewFromInt(1750)},
	{Name: "Onion", Category: "Vegetables", Unit: "Quintal", BasePrice: decimal.NewFromInt(2150)},
	{Name: "Potato", Category: "Vegetables", Unit: "Quintal", BasePrice: decimal.NewFromInt(1380)},
	{Name: "Brinjal", Category: "Vegetables", Unit: "Quintal", BasePrice: decimal.NewFromInt(1620)},
	{Name: "Banana", Category: "Fruits", Unit: "Dozen", BasePrice: decimal.NewFromInt(48)},
	{Name: "Mango", Category: "Fruits", Unit: "Quintal", BasePrice: decimal.NewFromInt(5200)},
	{Name: "Groundnut", Category: "Oilseeds", Unit: "Quintal", BasePrice: decimal.NewFromInt(6350)},
	{Name: "Mustard", Category: "Oilseeds", Unit: "Quintal", BasePrice: decimal.NewFromInt(5480)},
	{Name: "Cotton", Category: "Fibres", Unit: "Quintal", BasePrice: decimal.NewFromInt(7020)},
	{Name: "Sugarcane", Category: "Cash Crops", Unit: "Tonne", BasePrice: decimal.NewFromInt(3150)},
}
