package pricing

import (
	"encoding/json"
	"os"

	"boat-quotes/internal/pkg/errs"
)

const (
	DefaultTierID   = "regular"
	DefaultSourceID = "direct"

	// TourTypeFishing gates the fishing-license charge.
	TourTypeFishing = "Fishing"
)

// Reprice kind codes. The single-character codes come from the quote form and
// are part of the stored inquiry format, so they are kept as-is.
const (
	RepriceNone        = ""
	RepricePercentage  = "%"
	RepriceFixedAmount = "#"
	RepriceFixedPrice  = "$"
	RepriceCoupon      = "coupon"
)

type Tier struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Description        string  `json:"description,omitempty"`
	HourlyRate         float64 `json:"hourlyRate"`
	ExtraPassengerRate float64 `json:"extraPassengerRate"`
}

type Source struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	HasFee        bool    `json:"hasFee"`
	FeePercentage float64 `json:"feePercentage"`
	FeeNote       string  `json:"feeNote,omitempty"`
}

// FeeRule overrides a source's default fee for one pricing tier.
type FeeRule struct {
	HasFee        bool    `json:"hasFee"`
	FeePercentage float64 `json:"feePercentage"`
}

type RepriceKind struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Prefix      string `json:"prefix"`
}

type Constants struct {
	MinDuration         float64 `json:"minDuration"`
	MaxDuration         float64 `json:"maxDuration"`
	MaxPassengers       int     `json:"maxPassengers"`
	IncludedPassengers  int     `json:"includedPassengers"`
	FishingLicensePrice float64 `json:"fishingLicensePrice"`
}

// Rules is the versioned rule table the calculator runs against. It is loaded
// once at startup and treated as read-only afterwards.
type Rules struct {
	Version     string    `json:"version"`
	LastUpdated string    `json:"lastUpdated,omitempty"`
	Constants   Constants `json:"constants"`
	Tiers       []Tier    `json:"pricingTypes"`
	Sources     []Source  `json:"sources"`
	// FeeRules[sourceID][tierID] supersedes the source's default fee.
	FeeRules map[string]map[string]FeeRule `json:"feeRules"`
	// RateOverrides[sourceID][tierID] replaces the tier's hourly rate with a
	// negotiated per-source rate.
	RateOverrides map[string]map[string]float64 `json:"hourlyRateOverrides"`
	TourTypes     []string                      `json:"tourTypes"`
	RepriceKinds  []RepriceKind                 `json:"repriceTypes"`
}

// DefaultRules returns the embedded rule table.
func DefaultRules() *Rules {
	return &Rules{
		Version:     "2.0.0",
		LastUpdated: "2026-02-09",
		Constants: Constants{
			MinDuration:         2,
			MaxDuration:         8,
			MaxPassengers:       50,
			IncludedPassengers:  14,
			FishingLicensePrice: 22,
		},
		Tiers: []Tier{
			{
				ID:                 "regular",
				Name:               "Regular",
				Description:        "Standard pricing: $600/hour, $100 extra passenger",
				HourlyRate:         600,
				ExtraPassengerRate: 100,
			},
			{
				ID:                 "snack",
				Name:               "Snack Price",
				Description:        "Discounted pricing: $450/hour, $75 extra passenger",
				HourlyRate:         450,
				ExtraPassengerRate: 75,
			},
		},
		Sources: []Source{
			{ID: "direct", Name: "Direct - Call", HasFee: false},
			{ID: "get-my-boat", Name: "Get My Boat", HasFee: true, FeePercentage: 0.115, FeeNote: "11.5% fee"},
			{ID: "viator", Name: "Viator", HasFee: true, FeePercentage: 0.15, FeeNote: "15% fee"},
			{ID: "fareharbor", Name: "Fareharbor", HasFee: true, FeePercentage: 0.12, FeeNote: "12% fee"},
			{ID: "travel-cabo-tours", Name: "Travel Cabo Tours", HasFee: true, FeePercentage: 0.1, FeeNote: "10% fee"},
			{ID: "anchor-rides", Name: "Anchor Rides"},
			{ID: "andres-lopez", Name: "Andres Lopez"},
			{ID: "mauricio-bojorquez", Name: "Mauricio Bojorquez"},
			{ID: "jose-ferron", Name: "Jose Ferron"},
			{ID: "ramiro-munguia", Name: "Ramiro Munguia"},
			{ID: "adriana-transcabo", Name: "Adriana Transcabo"},
			{ID: "grand-solmar", Name: "Grand Solmar - Luis Roberts"},
			{ID: "eduardo-araujo", Name: "Eduardo Araujo"},
		},
		FeeRules: map[string]map[string]FeeRule{
			"get-my-boat": {
				"regular": {HasFee: true, FeePercentage: 0.115},
				"snack":   {HasFee: true, FeePercentage: 0.115},
			},
			"viator": {
				"regular": {HasFee: true, FeePercentage: 0.15},
				"snack":   {HasFee: true, FeePercentage: 0.15},
			},
			"fareharbor": {
				"regular": {HasFee: true, FeePercentage: 0.12},
				"snack":   {HasFee: true, FeePercentage: 0.12},
			},
			"travel-cabo-tours": {
				"regular": {HasFee: true, FeePercentage: 0.1},
				"snack":   {HasFee: true, FeePercentage: 0.1},
			},
		},
		// Get My Boat negotiated a flat $500/hr on the regular tier instead of
		// the listed $600.
		RateOverrides: map[string]map[string]float64{
			"get-my-boat": {
				"regular": 500,
			},
		},
		TourTypes: []string{
			"Bay Trip",
			"Whale Watching",
			"Snorkeling Tour",
			"Sunset Cruise",
			"Fishing",
		},
		RepriceKinds: []RepriceKind{
			{Code: RepriceNone, Name: "None", Description: "No discount applied"},
			{Code: RepricePercentage, Name: "Percentage", Description: "Percentage discount", Prefix: "%"},
			{Code: RepriceFixedAmount, Name: "Fixed Amount", Description: "Fixed amount discount", Prefix: "$"},
			{Code: RepriceFixedPrice, Name: "Fixed Price", Description: "Override to fixed final price", Prefix: "$"},
			{Code: RepriceCoupon, Name: "Coupon", Description: "Coupon price override", Prefix: "$"},
		},
	}
}

// LoadRules reads a rule table from a JSON file. An empty path returns the
// embedded defaults. Missing constants and out-of-range fee percentages are
// normalized instead of rejected.
func LoadRules(path string) (*Rules, error) {
	if path == "" {
		return DefaultRules(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read pricing rules file")
	}

	var rules Rules
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, errs.Wrap(err, "failed to parse pricing rules file")
	}

	rules.normalize()
	return &rules, nil
}

func (r *Rules) normalize() {
	def := DefaultRules()

	if r.Constants.MinDuration <= 0 {
		r.Constants.MinDuration = def.Constants.MinDuration
	}
	if r.Constants.MaxDuration <= 0 {
		r.Constants.MaxDuration = def.Constants.MaxDuration
	}
	if r.Constants.MaxPassengers <= 0 {
		r.Constants.MaxPassengers = def.Constants.MaxPassengers
	}
	if r.Constants.IncludedPassengers <= 0 {
		r.Constants.IncludedPassengers = def.Constants.IncludedPassengers
	}
	if r.Constants.FishingLicensePrice <= 0 {
		r.Constants.FishingLicensePrice = def.Constants.FishingLicensePrice
	}

	if len(r.Tiers) == 0 {
		r.Tiers = def.Tiers
	}
	if len(r.Sources) == 0 {
		r.Sources = def.Sources
	}
	if len(r.RepriceKinds) == 0 {
		r.RepriceKinds = def.RepriceKinds
	}
	if len(r.TourTypes) == 0 {
		r.TourTypes = def.TourTypes
	}

	// Fee percentages must stay below 1: the gross-up divides by (1 - p).
	clampFee := func(p float64) float64 {
		if p < 0 {
			return 0
		}
		if p >= 1 {
			return 0.99
		}
		return p
	}
	for i := range r.Sources {
		r.Sources[i].FeePercentage = clampFee(r.Sources[i].FeePercentage)
	}
	for _, byTier := range r.FeeRules {
		for tierID, rule := range byTier {
			rule.FeePercentage = clampFee(rule.FeePercentage)
			byTier[tierID] = rule
		}
	}
}
