package config

import "clearahead/internal/model"

// Default catalogs seeding a fresh profile. Everything starts disabled
// with an empty amount; the anchor date defaults to today so recurrence
// expansion has a sane seed as soon as an item is switched on.

// DefaultIncomes returns the starter income catalog: a wage row, the
// common UK benefits, and one free-form other-income row.
func DefaultIncomes(anchor string) []model.Obligation {
	rows := []struct {
		id    string
		kind  model.ObligationKind
		label string
		freq  model.Frequency
	}{
		{"wage_salary", model.KindWage, "Wage / Salary", model.Monthly},
		{"universal_credit", model.KindBenefit, "Universal Credit", model.Monthly},
		{"child_benefit", model.KindBenefit, "Child Benefit", model.Weekly},
		{"esa", model.KindBenefit, "Employment and Support Allowance (ESA)", model.Monthly},
		{"jsa", model.KindBenefit, "Jobseeker's Allowance (JSA)", model.Monthly},
		{"housing_benefit", model.KindBenefit, "Housing Benefit", model.Monthly},
		{"pension_credit", model.KindBenefit, "Pension Credit", model.Monthly},
		{"income_support", model.KindBenefit, "Income Support", model.Monthly},
		{"maternity_allowance", model.KindBenefit, "Maternity Allowance", model.Monthly},
		{"state_pension", model.KindBenefit, "State Pension", model.Monthly},
		{"dla", model.KindBenefit, "Disability Living Allowance (DLA)", model.Monthly},
		{"pip", model.KindBenefit, "Personal Independence Payment (PIP)", model.FourWeekly},
		{"carers_allowance", model.KindBenefit, "Carers Allowance", model.Weekly},
		{"attendance_allowance", model.KindBenefit, "Attendance Allowance", model.Weekly},
		{"other_income_1", model.KindOtherIncome, "Other income", model.Monthly},
	}

	out := make([]model.Obligation, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.Obligation{
			ID:        r.id,
			Kind:      r.kind,
			Label:     r.label,
			Frequency: r.freq,
			Anchor:    anchor,
		})
	}
	return out
}

// DefaultBills returns the starter essential-bill catalog. Vehicle costs
// are not a bill row; they live behind their own toggle with four
// sub-costs.
func DefaultBills(anchor string) []model.Obligation {
	labels := []struct {
		id    string
		label string
	}{
		{"rent_housing", "Rent / Housing"},
		{"council_tax", "Council Tax"},
		{"gas", "Gas"},
		{"electric", "Electric"},
		{"water", "Water"},
		{"phone", "Phone"},
		{"internet", "Internet"},
		{"tv_licence", "TV Licence"},
		{"home_insurance", "Home Insurance"},
		{"child_maintenance", "Child maintenance"},
		{"credit_cards", "Credit cards (minimum payments)"},
		{"other_essential_bills", "Other essential bills"},
	}

	out := make([]model.Obligation, 0, len(labels))
	for _, r := range labels {
		out = append(out, model.Obligation{
			ID:        r.id,
			Kind:      model.KindFixedBill,
			Label:     r.label,
			Frequency: model.Monthly,
			Anchor:    anchor,
		})
	}
	return out
}

// DefaultVehicle returns the empty vehicle-cost group.
func DefaultVehicle(anchor string) model.VehicleCosts {
	item := func(label string) model.VehicleItem {
		return model.VehicleItem{Label: label, Frequency: model.Monthly, Due: anchor}
	}
	return model.VehicleCosts{
		Finance:   item("Vehicle payment / finance"),
		Insurance: item("Car insurance"),
		Tax:       item("Car tax"),
		Breakdown: item("Breakdown cover"),
	}
}
