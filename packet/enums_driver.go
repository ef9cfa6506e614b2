package packet

// Team is the closed enumeration of team ids, covering the current grid,
// classic-season variants, F2 entries, safety/medical cars, and the
// custom-livery slot. Numeric codes not listed here decode to TeamUnknown
// rather than failing — a future game patch can add teams without
// breaking historical captures.
type Team uint8

const (
	TeamMercedes Team = iota
	TeamFerrari
	TeamRedBullRacing
	TeamWilliams
	TeamAstonMartin
	TeamAlpine
	TeamAlphaTauri
	TeamHaas
	TeamMcLaren
	TeamAlfaRomeo
)

const (
	TeamMercedes2020 Team = iota + 85
	TeamFerrari2020
	TeamRedBull2020
	TeamWilliams2020
	TeamRacingPoint2020
	TeamRenault2020
	TeamAlphaTauri2020
	TeamHaas2020
	TeamMcLaren2020
	TeamAlfaRomeo2020
)

const (
	TeamF2Team1 Team = iota + 112
	TeamF2Team2
	TeamF2Team3
	TeamF2Team4
	TeamF2Team5
	TeamF2Team6
	TeamF2Team7
	TeamF2Team8
	TeamF2Team9
	TeamF2Team10
	TeamF2Team11
	TeamF2Team12
)

const (
	TeamArtGP Team = iota + 143
	TeamCampos
	TeamCarlin
	TeamCharouz
	TeamDAMS
	TeamUNI
	TeamMPMotorsport
	TeamPrema
	TeamTrident
	TeamArden
	TeamHitech
	TeamVanAmersfoort
)

const (
	TeamSafetyCar Team = 155
	TeamMedicalCar Team = 156
	TeamCustomTeam Team = 255
	TeamUnknown    Team = 254
)

func TeamFromCode(code uint8) Team {
	switch {
	case code <= uint8(TeamAlfaRomeo):
		return Team(code)
	case code >= uint8(TeamMercedes2020) && code <= uint8(TeamAlfaRomeo2020):
		return Team(code)
	case code >= uint8(TeamF2Team1) && code <= uint8(TeamF2Team12):
		return Team(code)
	case code >= uint8(TeamArtGP) && code <= uint8(TeamVanAmersfoort):
		return Team(code)
	case code == uint8(TeamSafetyCar), code == uint8(TeamMedicalCar):
		return Team(code)
	case code == uint8(TeamCustomTeam):
		return TeamCustomTeam
	default:
		return TeamUnknown
	}
}

// Nationality is a closed enumeration spanning codes 1-87, each mapped to
// an ISO 3166-1 alpha-3 country code. Code 0 and codes above 87 decode to
// NationalityUnknown.
type Nationality uint8

const NationalityUnknown Nationality = 0

//nolint:gochecknoglobals // static protocol lookup table, not mutated.
var nationalityISO = map[Nationality]string{
	1: "AME", 2: "ARG", 3: "AUS", 4: "AUT", 5: "BHS", 6: "BRB", 7: "BEL",
	8: "BWA", 9: "BRA", 10: "GBR", 11: "BGR", 12: "CMR", 13: "CAN", 14: "CHL",
	15: "CHN", 16: "COL", 17: "CRI", 18: "HRV", 19: "CYP", 20: "CZE",
	21: "DNK", 22: "NLD", 23: "EST", 24: "FIN", 25: "FRA", 26: "DEU",
	27: "GHA", 28: "GRC", 29: "GTM", 30: "GUY", 31: "HND", 32: "HKG",
	33: "HUN", 34: "ISL", 35: "IND", 36: "IDN", 37: "IRL", 38: "ISR",
	39: "ITA", 40: "JAM", 41: "JPN", 42: "JOR", 43: "KWT", 44: "LVA",
	45: "LBN", 46: "LTU", 47: "LUX", 48: "MYS", 49: "MLT", 50: "MEX",
	51: "MCO", 52: "MAR", 53: "NPL", 54: "NZL", 55: "NIC", 56: "NGA",
	57: "NOR", 58: "OMN", 59: "PAK", 60: "PAN", 61: "PRY", 62: "PER",
	63: "PHL", 64: "POL", 65: "PRT", 66: "QAT", 67: "ROU", 68: "RUS",
	69: "SLV", 70: "SAU", 71: "SCT", 72: "SRB", 73: "SGP", 74: "SVK",
	75: "SVN", 76: "ZAF", 77: "KOR", 78: "ESP", 79: "SWE", 80: "CHE",
	81: "THA", 82: "TTO", 83: "TUN", 84: "TUR", 85: "UKR", 86: "ARE",
	87: "URY",
}

// IsoAlpha3 returns the ISO 3166-1 alpha-3 country code for a nationality,
// or "" for NationalityUnknown / out-of-range codes.
func (n Nationality) IsoAlpha3() string {
	return nationalityISO[n]
}

func NationalityFromCode(code uint8) Nationality {
	n := Nationality(code)
	if _, ok := nationalityISO[n]; ok {
		return n
	}
	return NationalityUnknown
}

// Platform is the platform a driver/lobby entry connected from.
type Platform uint8

const (
	PlatformSteam Platform = iota + 1
	PlatformPlaystation
	PlatformXbox
	PlatformOrigin
	PlatformUnknown Platform = 255
)

func PlatformFromCode(code uint8) Platform {
	switch code {
	case 1, 2, 3, 4:
		return Platform(code)
	default:
		return PlatformUnknown
	}
}

// TyreCompoundActual is the physical compound fitted, covering both the
// modern C0-C5/Inter/Wet set and the historical Soft/Medium/Hard/Supersoft
// set used by classic cars.
type TyreCompoundActual uint8

const (
	TyreActualUnknown TyreCompoundActual = 0
	TyreActualC5      TyreCompoundActual = 16
	TyreActualC4      TyreCompoundActual = 17
	TyreActualC3      TyreCompoundActual = 18
	TyreActualC2      TyreCompoundActual = 19
	TyreActualC1      TyreCompoundActual = 20
	TyreActualC0      TyreCompoundActual = 21
	TyreActualInter   TyreCompoundActual = 7
	TyreActualWet     TyreCompoundActual = 8
	TyreActualClassicDry   TyreCompoundActual = 9
	TyreActualClassicWet   TyreCompoundActual = 10
	TyreActualSuperSoft    TyreCompoundActual = 11
	TyreActualSoft         TyreCompoundActual = 12
	TyreActualMedium       TyreCompoundActual = 13
	TyreActualHard         TyreCompoundActual = 14
	TyreActualF2SuperSoft  TyreCompoundActual = 15
)

func TyreCompoundActualFromCode(code uint8) TyreCompoundActual {
	switch TyreCompoundActual(code) {
	case TyreActualC5, TyreActualC4, TyreActualC3, TyreActualC2, TyreActualC1, TyreActualC0,
		TyreActualInter, TyreActualWet, TyreActualClassicDry, TyreActualClassicWet,
		TyreActualSuperSoft, TyreActualSoft, TyreActualMedium, TyreActualHard, TyreActualF2SuperSoft:
		return TyreCompoundActual(code)
	default:
		return TyreActualUnknown
	}
}

// TyreCompoundVisual is the compound as shown in the HUD, which collapses
// several actual compounds (e.g. all classic dry tyres) onto one icon.
type TyreCompoundVisual uint8

const (
	TyreVisualUnknown TyreCompoundVisual = 0
	TyreVisualSoft     TyreCompoundVisual = 16
	TyreVisualMedium   TyreCompoundVisual = 17
	TyreVisualHard     TyreCompoundVisual = 18
	TyreVisualInter    TyreCompoundVisual = 7
	TyreVisualWet      TyreCompoundVisual = 8
	TyreVisualClassicDry  TyreCompoundVisual = 9
	TyreVisualClassicWet  TyreCompoundVisual = 10
	TyreVisualSuperSoft   TyreCompoundVisual = 19
	TyreVisualF2SuperSoft TyreCompoundVisual = 15
)

func TyreCompoundVisualFromCode(code uint8) TyreCompoundVisual {
	switch TyreCompoundVisual(code) {
	case TyreVisualSoft, TyreVisualMedium, TyreVisualHard, TyreVisualInter, TyreVisualWet,
		TyreVisualClassicDry, TyreVisualClassicWet, TyreVisualSuperSoft, TyreVisualF2SuperSoft:
		return TyreCompoundVisual(code)
	default:
		return TyreVisualUnknown
	}
}
