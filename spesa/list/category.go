package list

import "strings"

// CategoryOther is the fallback label for names no keyword matches.
const CategoryOther = "Altro"

type categoryEntry struct {
	name     string
	keywords []string
}

// Declaration order matters: the first matching category wins even when a
// later one would also match.
var categoryTable = []categoryEntry{
	{"Frutta e Verdura", []string{
		"mela", "mele", "banana", "banane", "arancia", "arance", "limone", "limoni",
		"fragola", "fragole", "kiwi", "pesca", "pesche", "uva", "pera", "pere",
		"pomodoro", "pomodori", "patata", "patate", "carota", "carote", "zucchina",
		"zucchine", "melanzana", "melanzane", "insalata", "lattuga", "spinaci",
		"broccoli", "cavolo", "cipolla", "cipolle", "aglio", "sedano", "peperone",
		"peperoni", "funghi", "verdura", "frutta",
	}},
	{"Carne e Pesce", []string{
		"carne", "pollo", "tacchino", "manzo", "maiale", "vitello", "salsiccia",
		"salsicce", "prosciutto", "salame", "speck", "bresaola", "pesce", "salmone",
		"tonno", "merluzzo", "gamberi", "vongole", "cozze", "alici",
	}},
	{"Latticini", []string{
		"latte", "formaggio", "yogurt", "burro", "panna", "mozzarella", "ricotta",
		"parmigiano", "grana", "pecorino", "stracchino", "scamorza", "mascarpone",
		"uova", "uovo", "kefir",
	}},
	{"Pane e Cereali", []string{
		"pane", "pasta", "riso", "cereali", "farina", "avena", "orzo", "farro",
		"quinoa", "cous cous", "mais", "muesli", "spaghetti", "penne", "fusilli",
	}},
	{"Bevande", []string{
		"acqua", "succo", "tè", "the", "caffè", "caffe", "vino", "birra",
		"limonata", "aranciata", "cola", "tisana", "spremuta",
	}},
	{"Condimenti", []string{
		"sale", "pepe", "olio", "aceto", "spezie", "origano", "basilico", "salsa",
		"maionese", "ketchup", "senape", "zucchero", "pesto", "soia",
	}},
	{"Surgelati", []string{
		"surgelat", "gelato", "bastoncini", "ghiaccio",
	}},
	{"Legumi e Frutta Secca", []string{
		"legumi", "lenticchie", "ceci", "fagioli", "piselli", "fave", "noci",
		"mandorle", "nocciole", "arachidi", "pistacchi", "frutta secca",
	}},
	{"Snack e Dolci", []string{
		"biscotti", "cioccolato", "caramelle", "torta", "merendine", "patatine",
		"marmellata", "miele", "nutella", "wafer", "snack", "crackers", "grissini",
	}},
	{"Prodotti da Forno", []string{
		"croissant", "brioche", "focaccia", "pizza", "piadina", "pancarrè",
	}},
	{"Casa e Igiene", []string{
		"detersivo", "sapone", "shampoo", "dentifricio", "spazzolino", "carta igienica",
		"scottex", "spugna", "candeggina", "deodorante", "bagnoschiuma",
	}},
}

// Categorize maps an item name to a category label. The match is a
// bidirectional substring check, so short keywords can match generously;
// that looseness is intentional. It always returns a label.
func Categorize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return CategoryOther
	}
	for _, c := range categoryTable {
		for _, kw := range c.keywords {
			if strings.Contains(n, kw) || strings.Contains(kw, n) {
				return c.name
			}
		}
	}
	return CategoryOther
}
