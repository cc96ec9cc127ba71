package models

// Unit labels used on labor and material lines. Kept in the business's
// own vocabulary since they appear verbatim on printed quotes.
const (
	UnitUND    = "UND"
	UnitMTS    = "MTS"
	UnitKG     = "KG"
	UnitLT     = "LT"
	UnitDIA    = "DIA"
	UnitDiaria = "DIÁRIA"
	UnitHR     = "HR"
	UnitPAR    = "PAR"
	UnitCX     = "CX"
	UnitPCT    = "PCT"
	UnitROL    = "ROL"
	UnitM2     = "M²"
	UnitM3     = "M³"
)

// Extra unit labels used only by scenography materials.
const (
	UnitSC    = "SC"
	UnitGalao = "GALÃO"
	UnitLata  = "LATA"
)

// Units lists every valid labor unit label.
var Units = []string{
	UnitUND, UnitMTS, UnitKG, UnitLT, UnitDIA, UnitDiaria,
	UnitHR, UnitPAR, UnitCX, UnitPCT, UnitROL, UnitM2, UnitM3,
}

// ScenographyUnits lists every valid scenography unit label.
var ScenographyUnits = []string{
	UnitMTS, UnitUND, UnitKG, UnitCX, UnitSC, UnitGalao, UnitLata,
}

// ValidUnit reports whether s is a known labor unit label.
func ValidUnit(s string) bool {
	for _, u := range Units {
		if u == s {
			return true
		}
	}
	return false
}

// ValidScenographyUnit reports whether s is a known scenography unit label.
func ValidScenographyUnit(s string) bool {
	for _, u := range ScenographyUnits {
		if u == s {
			return true
		}
	}
	return false
}
