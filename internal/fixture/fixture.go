// Package fixture holds the deterministic offline datasets substituted when
// the remote store is unreachable. The data is fixed so demo screens stay
// populated and tests stay reproducible. Fixtures are keyed by known ids:
// property "1" carries a matching transaction and activity log, unknown ids
// resolve to nothing.
package fixture

import (
	"github.com/shopspring/decimal"

	"nexuscrm/internal/model"
)

func strptr(s string) *string { return &s }

// Properties returns the offline property inventory.
func Properties() []model.Property {
	return []model.Property{
		{
			ID:        "1",
			Title:     "Modern Apartment in City Center",
			Address:   "Av. Reforma 222, Mexico City",
			Price:     decimal.NewFromInt(450000),
			Status:    model.StatusCaptado,
			AgentID:   "a1",
			OwnerName: "Roberto Gomez",
			CreatedAt: "2023-10-15",
			ImageURL:  strptr("https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?w=500"),
		},
		{
			ID:        "2",
			Title:     "Luxury Villa with Pool",
			Address:   "Lomas de Chapultepec, Sierra Gorda 15",
			Price:     decimal.NewFromInt(1250000),
			Status:    model.StatusVendido,
			AgentID:   "a2",
			OwnerName: "Maria Sanchez",
			CreatedAt: "2023-09-20",
			ImageURL:  strptr("https://images.unsplash.com/photo-1613977257363-707ba9348227?w=500"),
		},
		{
			ID:        "3",
			Title:     "Cozy Family Home",
			Address:   "Col. Del Valle, Patricio Sanz 45",
			Price:     decimal.NewFromInt(320000),
			Status:    model.StatusVisitado,
			AgentID:   "a1",
			OwnerName: "Juan Perez",
			CreatedAt: "2023-11-05",
			ImageURL:  strptr("https://images.unsplash.com/photo-1580587771525-78b9dba3b91d?w=500"),
		},
		{
			ID:        "4",
			Title:     "Commercial Office Space",
			Address:   "Polanco, Masaryk 101",
			Price:     decimal.NewFromInt(850000),
			Status:    model.StatusEnTramite,
			AgentID:   "a3",
			OwnerName: "Inversiones SA",
			CreatedAt: "2023-10-01",
		},
	}
}

// PropertyByID returns the fixture listing with the given id, or nil.
// Arbitrary unknown ids have no substitute — the screen stays empty.
func PropertyByID(id string) *model.Property {
	for _, p := range Properties() {
		if p.ID == id {
			p := p
			return &p
		}
	}
	return nil
}

// TransactionForProperty returns the fixture transaction owned by the given
// property, or nil. Only property "1" has one.
func TransactionForProperty(propertyID string) *model.Transaction {
	if propertyID != "1" {
		return nil
	}
	return &model.Transaction{
		ID:               "t1",
		PropertyID:       "1",
		BuyerName:        "Ana García",
		FinalPrice:       decimal.NewFromInt(445000),
		CommissionAmount: decimal.NewFromInt(22250),
		NotaryName:       "Lic. Pablo Notario",
		SurveyorName:     "Ing. Luis Perito",
		SignatureDate:    "2024-02-15",
		Status:           model.TransactionPendiente,
	}
}

// ActivitiesForProperty returns the fixture activity log for the given
// property, most recent first. Only property "1" has entries — exactly two.
func ActivitiesForProperty(propertyID string) []model.PropertyActivity {
	if propertyID != "1" {
		return nil
	}
	return []model.PropertyActivity{
		{
			ID:          "act1",
			PropertyID:  "1",
			PerformedBy: strptr("a1"),
			Type:        model.ActivityOferta,
			Notes:       "Avalúo completado. Ing. Luis Perito entregó el dictamen.",
			CreatedAt:   "2024-02-10",
		},
		{
			ID:          "act2",
			PropertyID:  "1",
			PerformedBy: strptr("a1"),
			Type:        model.ActivityVisita,
			Notes:       "Visita con cliente. Ana García mostró mucho interés.",
			CreatedAt:   "2024-02-05",
		},
	}
}

// Agents returns the offline team roster, ordered by full name.
func Agents() []model.Profile {
	return []model.Profile{
		{ID: "1", FullName: "Carlos Agente", Email: "carlos@nexus.com", Role: model.RoleAgent},
		{ID: "2", FullName: "Ana García", Email: "ana@nexus.com", Role: model.RoleEditor},
		{ID: "3", FullName: "Luis Admin", Email: "luis@nexus.com", Role: model.RoleAdmin},
	}
}

// AgentByID returns the fixture profile with the given id, or nil.
func AgentByID(id string) *model.Profile {
	for _, a := range Agents() {
		if a.ID == id {
			a := a
			return &a
		}
	}
	return nil
}

// Finance fallback figures. When the remote collections come back empty the
// dashboard shows these fixed illustrative amounts instead of zeros.
var (
	FallbackIncome   = decimal.NewFromInt(32400)
	FallbackExpenses = decimal.NewFromInt(12850)
)

// MonthlyPoint is one month of the revenue chart series.
type MonthlyPoint struct {
	Name     string          `json:"name"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// MonthlySeries returns the illustrative revenue chart data. The chart widget
// is an opaque renderer of whatever series it is handed.
func MonthlySeries() []MonthlyPoint {
	mk := func(name string, income, expenses int64) MonthlyPoint {
		return MonthlyPoint{Name: name, Income: decimal.NewFromInt(income), Expenses: decimal.NewFromInt(expenses)}
	}
	return []MonthlyPoint{
		mk("Ene", 4500, 2100),
		mk("Feb", 5200, 1800),
		mk("Mar", 4800, 2400),
		mk("Abr", 6100, 1900),
		mk("May", 5900, 2200),
		mk("Jun", 7200, 2500),
	}
}

// CategorySlice is one wedge of the expense distribution chart.
type CategorySlice struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// ExpenseBreakdown returns the illustrative expense distribution by category.
func ExpenseBreakdown() []CategorySlice {
	return []CategorySlice{
		{Name: "Marketing", Value: decimal.NewFromInt(4500)},
		{Name: "Operativo", Value: decimal.NewFromInt(3200)},
		{Name: "Personal", Value: decimal.NewFromInt(4150)},
		{Name: "Otros", Value: decimal.NewFromInt(1000)},
	}
}
