package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Concept classifies why money moved. The set is fixed; freeform text is
// allowed only through ConceptOther.
type Concept string

const (
	ConceptRent               Concept = "Rent"
	ConceptPropertyPurchase   Concept = "Property Purchase"
	ConceptPropertySale       Concept = "Property Sale"
	ConceptHouseConstruction  Concept = "House Construction"
	ConceptHotelConstruction  Concept = "Hotel Construction"
	ConceptMortgage           Concept = "Mortgage"
	ConceptUnmortgage         Concept = "Unmortgage"
	ConceptLuxuryTax          Concept = "Luxury Tax"
	ConceptIncomeTax          Concept = "Income Tax"
	ConceptChanceCard         Concept = "Chance Card"
	ConceptCommunityChestCard Concept = "Community Chest Card"
	ConceptSalary             Concept = "Salary"
	ConceptJailBail           Concept = "Jail Bail"
	ConceptOther              Concept = "Other"
)

// Concepts lists the fixed concept set in display order.
func Concepts() []Concept {
	return []Concept{
		ConceptRent, ConceptPropertyPurchase, ConceptPropertySale,
		ConceptHouseConstruction, ConceptHotelConstruction,
		ConceptMortgage, ConceptUnmortgage,
		ConceptLuxuryTax, ConceptIncomeTax,
		ConceptChanceCard, ConceptCommunityChestCard,
		ConceptSalary, ConceptJailBail, ConceptOther,
	}
}

// ColorGroup is the board property color classification.
type ColorGroup string

const (
	ColorBrown     ColorGroup = "Brown"
	ColorLightBlue ColorGroup = "Light Blue"
	ColorPink      ColorGroup = "Pink"
	ColorOrange    ColorGroup = "Orange"
	ColorRed       ColorGroup = "Red"
	ColorYellow    ColorGroup = "Yellow"
	ColorGreen     ColorGroup = "Green"
	ColorDarkBlue  ColorGroup = "Dark Blue"
	ColorRailroad  ColorGroup = "Railroad"
	ColorUtility   ColorGroup = "Utility"
)

// ColorGroups lists the fixed palette in board order.
func ColorGroups() []ColorGroup {
	return []ColorGroup{
		ColorBrown, ColorLightBlue, ColorPink, ColorOrange,
		ColorRed, ColorYellow, ColorGreen, ColorDarkBlue,
		ColorRailroad, ColorUtility,
	}
}

// Transaction is one directed movement of money between two participants.
// Either side may be the bank sentinel or a dangling player id; referential
// integrity is resolved at read time, never enforced here.
type Transaction struct {
	ID         string          `json:"id"`
	Timestamp  time.Time       `json:"timestamp"`
	FromPlayer string          `json:"fromPlayerId"`
	ToPlayer   string          `json:"toPlayerId"`
	Concept    Concept         `json:"concept"`
	Amount     decimal.Decimal `json:"amount"`
	Property   string          `json:"propertyName,omitempty"`
	ColorGroup ColorGroup      `json:"colorGroup,omitempty"`
	Houses     int             `json:"houseCount"`
	Hotel      bool            `json:"hotelFlag"`
	Notes      string          `json:"notes,omitempty"`
}
