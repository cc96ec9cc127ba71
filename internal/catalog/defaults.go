package catalog

import (
	"strconv"

	"github.com/shopspring/decimal"

	"florada/internal/availability"
	"florada/internal/models"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newMaterialID(n int) string { return strconv.Itoa(n) }

func strptr(s string) *string { return &s }

func mustRange(start, end string) availability.DateRange {
	return availability.DateRange{
		Start: availability.MustDate(start),
		End:   availability.MustDate(end),
	}
}

// DefaultFlowers seeds the flower catalog when no persisted blob exists yet.
func DefaultFlowers() []models.Flower {
	return []models.Flower{
		{ID: 1, Name: "Rosa Vermelha", Price: dec("8.50")},
		{ID: 2, Name: "Rosa Branca", Price: dec("8.50")},
		{ID: 3, Name: "Lírio", Price: dec("12.00")},
		{ID: 4, Name: "Orquídea Phalaenopsis", Price: dec("45.00")},
		{ID: 5, Name: "Gérbera", Price: dec("6.00")},
		{ID: 6, Name: "Astromélia", Price: dec("5.50")},
		{ID: 7, Name: "Tango", Price: dec("4.00")},
		{ID: 8, Name: "Mosquitinho", Price: dec("3.50")},
		{ID: 9, Name: "Eucalipto", Price: dec("7.00")},
		{ID: 10, Name: "Copo de Leite", Price: dec("9.00")},
	}
}

// FurnitureItems is the rentable furniture collection with its current
// reservation agendas.
func FurnitureItems() []models.ResourceItem {
	return []models.ResourceItem{
		{
			ID: "m1", Name: "Mesa Rústica 2m", Category: "Mesas",
			Ownership: models.OwnershipOwned, DailyRate: dec("180"),
			Reservations: []availability.DateRange{
				mustRange("2025-11-10", "2025-11-12"),
				mustRange("2025-12-01", "2025-12-03"),
			},
		},
		{
			ID: "m2", Name: "Cadeira Tiffany Branca", Category: "Cadeiras",
			Ownership: models.OwnershipOwned, DailyRate: dec("12"),
		},
		{
			ID: "m3", Name: "Sofá Chesterfield", Category: "Sofás",
			Ownership: models.OwnershipThirdParty, DailyRate: dec("350"),
			Reservations: []availability.DateRange{
				mustRange("2025-10-20", "2025-10-22"),
			},
		},
		{
			ID: "m4", Name: "Estante de Ferro", Category: "Estantes",
			Ownership: models.OwnershipThirdParty, DailyRate: dec("90"),
		},
	}
}

// Professionals is the bookable staff roster with existing agendas.
func Professionals() []models.Professional {
	return []models.Professional{
		{
			ID: 1, Name: "João Silva", Role: "Florista", DailyRate: dec("350.00"),
			ImageURL: strptr("/images/joao-silva.jpg"),
			Bookings: []availability.Booking{
				{EventName: "Casamento B&J", DateRange: mustRange("2025-11-05", "2025-11-08")},
				{EventName: "Evento Corporativo", DateRange: mustRange("2025-11-20", "2025-11-22")},
			},
		},
		{
			ID: 2, Name: "Maria Oliveira", Role: "Montador", DailyRate: dec("280.00"),
			ImageURL: strptr("/images/maria-oliveira.jpg"),
		},
		{
			ID: 3, Name: "Carlos Pereira", Role: "Ajudante", DailyRate: dec("200.00"),
			ImageURL: strptr("/images/carlos-pereira.jpg"),
			Bookings: []availability.Booking{
				{EventName: "Aniversário L&P", DateRange: mustRange("2025-11-10", "2025-11-10")},
			},
		},
	}
}

// Suppliers groups purchasable scenography and cleaning materials.
func Suppliers() []models.Supplier {
	return []models.Supplier{
		{
			ID: 1, Name: "Madeiras RJ", Category: models.SupplierMadeira,
			Items: []models.SupplierItem{
				{ID: "m1", Name: "Pinus 30mm", Unit: models.UnitMTS, Value: dec("25.00")},
				{ID: "m2", Name: "MDF 15mm", Unit: models.UnitMTS, Value: dec("32.50")},
				{ID: "m3", Name: "Compensado 10mm", Unit: models.UnitMTS, Value: dec("22.00")},
			},
		},
		{
			ID: 2, Name: "Cenografia Art", Category: models.SupplierCenografia,
			Items: []models.SupplierItem{
				{ID: "c1", Name: "Tecido Lona", Unit: models.UnitMTS, Value: dec("18.00")},
				{ID: "c2", Name: "Spray Fosco", Unit: models.UnitLata, Value: dec("28.90")},
				{ID: "c3", Name: "Parafuso 8mm", Unit: models.UnitCX, Value: dec("69.00")},
			},
		},
		{
			ID: 3, Name: "Limpeza Pro", Category: models.SupplierLimpeza,
			Items: []models.SupplierItem{
				{ID: "l1", Name: "Detergente Neutro", Unit: models.UnitUND, Value: dec("4.50")},
				{ID: "l2", Name: "Desinfetante Floral", Unit: models.UnitUND, Value: dec("7.80")},
				{ID: "l3", Name: "Papel Toalha Industrial", Unit: "ROLO", Value: dec("8.90")},
			},
		},
	}
}

// materialDefault seeds one scenography material row at quantity zero.
type materialDefault struct {
	Name  string
	Unit  string
	Value string
}

// scenographyDefaults is the standard scenography shopping list. Rows start
// at quantity zero and only count once the user fills a quantity in.
var scenographyDefaults = []materialDefault{
	{"TECIDO DIOLEN", models.UnitMTS, "4.00"},
	{"TECIDO OXFORD", models.UnitMTS, "16.00"},
	{"PARAFUSO", models.UnitCX, "74.00"},
	{"PREGOS", models.UnitSC, "14.00"},
	{"ARAMES", models.UnitKG, "14.00"},
	{"FITA DUPLA FACE", models.UnitUND, "30.00"},
	{"FITA CETIM", models.UnitUND, "28.00"},
	{"FITA ISOLANTE", models.UnitUND, "5.00"},
	{"FITA CADARÇO", models.UnitMTS, "0.25"},
	{"FITA ADESIVA", models.UnitUND, "10.00"},
	{"FITILHO", models.UnitUND, "16.00"},
	{"THINNER", models.UnitUND, "86.00"},
	{"TINTAS", models.UnitGalao, "130.00"},
	{"SPRAY", models.UnitLata, "25.00"},
	{"GRAMPO", models.UnitCX, "19.00"},
	{"COLA TUDO", models.UnitUND, "28.00"},
}

// cleaningDefaults is the standard cleaning-materials list.
var cleaningDefaults = []materialDefault{
	{"SACO DE LIXO", models.UnitSC, "89.00"},
	{"DETERGENTE", models.UnitUND, "3.00"},
	{"DESINFETANTE", models.UnitUND, "6.00"},
	{"ÁLCOOL", models.UnitUND, "11.99"},
	{"LIMPA VIDRO", models.UnitUND, "12.99"},
	{"PAPEL TOALHA", "ROLO", "6.00"},
	{"PANO DE CHAO", models.UnitUND, "4.00"},
	{"FLANELA DE LIMPEZA", models.UnitUND, "3.00"},
	{"FLOTADOR", "LITRO", "110.00"},
	{"PLASTISCO BOLHA", "BOBINA", "300.00"},
	{"PLASTISCO FILME", "BOBINA", "200.00"},
	{"SACO TRANSPARENTE", "BOBINA", "150.00"},
}

// DefaultScenographyMaterials builds the initial material rows, all at
// quantity zero.
func DefaultScenographyMaterials() []models.MaterialLine {
	lines := make([]models.MaterialLine, len(scenographyDefaults))
	for i, d := range scenographyDefaults {
		lines[i] = models.MaterialLine{
			ID:        newMaterialID(i + 2),
			Name:      d.Name,
			Unit:      d.Unit,
			UnitValue: dec(d.Value),
		}
	}
	return lines
}

// DefaultCleaningMaterials builds the initial cleaning rows, all at
// quantity zero.
func DefaultCleaningMaterials() []models.MaterialLine {
	lines := make([]models.MaterialLine, len(cleaningDefaults))
	for i, d := range cleaningDefaults {
		lines[i] = models.MaterialLine{
			ID:        newMaterialID(i + 100),
			Name:      d.Name,
			Unit:      d.Unit,
			UnitValue: dec(d.Value),
		}
	}
	return lines
}

// DefaultWoodLine builds the single distinguished wood line.
func DefaultWoodLine() models.MaterialLine {
	return models.MaterialLine{
		ID:   "1",
		Name: "MADEIRA",
		Unit: models.UnitMTS,
	}
}
