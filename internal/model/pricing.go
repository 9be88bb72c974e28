package model

import "strings"

type Plan struct {
	ID           string
	Name         string
	Price        int64 // minor units per card
	DisplayPrice string
	Description  string
	Features     []string
}

var Plans = map[string]Plan{
	"starter": {
		ID:           "starter",
		Name:         "Starter",
		Price:        20000,
		DisplayPrice: "GHS200",
		Description:  "Perfect for individuals and small businesses",
		Features: []string{
			"Digital business card",
			"QR code sharing",
			"Contact info management",
			"Basic analytics",
			"Mobile optimized",
			"Email support",
		},
	},
	"professional": {
		ID:           "professional",
		Name:         "Professional",
		Price:        25000,
		DisplayPrice: "GHS250",
		Description:  "Best for growing businesses and professionals",
		Features: []string{
			"Everything in Starter",
			"NFC-enabled physical card",
			"Custom branding & colors",
			"Social media integration",
			"Advanced analytics",
			"Lead capture forms",
			"Priority support",
		},
	},
	"enterprise": {
		ID:           "enterprise",
		Name:         "Enterprise",
		Price:        40000,
		DisplayPrice: "GHS400",
		Description:  "For large teams and corporations",
		Features: []string{
			"Everything in Professional",
			"Team management dashboard",
			"Bulk ordering discounts",
			"Custom integrations",
			"White-label options",
			"Dedicated account manager",
			"24/7 phone support",
		},
	},
}

// PlanByName matches either the plan ID or its display name, case-insensitively.
func PlanByName(name string) (Plan, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if plan, ok := Plans[key]; ok {
		return plan, true
	}
	for _, plan := range Plans {
		if strings.EqualFold(plan.Name, key) {
			return plan, true
		}
	}
	return Plan{}, false
}
