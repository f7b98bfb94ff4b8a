package commute

// fallbackMinutes maps known origin stations and towns to pre-computed
// one-way commute minutes toward Paris. Keys use the exact French
// spelling, diacritics included; lookups are literal.
var fallbackMinutes = map[string]int{
	"Mantes-la-Jolie":        50,
	"Vernon":                 55,
	"Évreux":                 70,
	"Dreux":                  75,
	"Rambouillet":            45,
	"Chartres":               75,
	"Étampes":                50,
	"Dourdan":                60,
	"Fontainebleau-Avon":     50,
	"Nemours":                65,
	"Montereau":              75,
	"Sens":                   85,
	"Compiègne":              55,
	"Beauvais":               80,
	"Château-Thierry":        55,
	"Provins":                85,
	"Coulommiers":            70,
	"La Ferté-sous-Jouarre":  55,
}

// FallbackMinutes returns the static estimate for origin, if known.
func FallbackMinutes(origin string) (int, bool) {
	m, ok := fallbackMinutes[origin]
	return m, ok
}
