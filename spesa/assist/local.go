package assist

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"
)

// DisclaimerSuffix closes every locally generated reply.
const DisclaimerSuffix = "Sistema AI avanzato non disponibile al momento."

type suggestion struct {
	item   string
	emoji  string
	reason string
}

var localSuggestions = []suggestion{
	{"Frutta di stagione", "🍎", "Ottima per una alimentazione sana ed equilibrata"},
	{"Cereali integrali", "🌾", "Fonte di energia a lento rilascio, ideali per la colazione"},
	{"Yogurt", "🥛", "Ricco di probiotici, ottimo per la digestione"},
	{"Uova", "🥚", "Fonte completa di proteine, versatili in cucina"},
	{"Pane integrale", "🍞", "Base per colazione o pranzo, ricco di fibre"},
	{"Legumi", "🌱", "Proteine vegetali, economici e nutrienti"},
	{"Pesce", "🐟", "Ricco di omega-3, importante per la salute cardiovascolare"},
	{"Verdure a foglia verde", "🥬", "Ricche di vitamine e minerali, poche calorie"},
	{"Formaggio", "🧀", "Fonte di calcio e proteine, ottimo come snack"},
	{"Olio d'oliva", "🫒", "Grassi sani, base della dieta mediterranea"},
	{"Frutta secca", "🌰", "Snack nutriente ricco di grassi sani"},
	{"Erbe aromatiche", "🌿", "Per insaporire i piatti senza aggiungere sale"},
	{"Pomodori", "🍅", "Versatili, si prestano a molte preparazioni"},
	{"Aglio", "🧄", "Insaporitore naturale con proprietà benefiche"},
	{"Cipolle", "🧅", "Base per molti piatti, ricche di antiossidanti"},
}

type localCategory struct {
	name  string
	emoji string
	items []string
}

// Independent grouping table for the offline categorizer, coarser than the
// store taxonomy on purpose.
var localCategories = []localCategory{
	{"Frutta e Verdura", "🍅", []string{
		"mele", "banane", "arance", "carote", "zucchine", "pomodori", "insalata", "spinaci",
		"fragole", "kiwi", "pesche", "melanzane", "broccoli", "patate", "cipolle", "aglio",
	}},
	{"Proteine", "🥩", []string{
		"carne", "pollo", "pesce", "uova", "tofu", "legumi", "lenticchie", "ceci",
		"fagioli", "tacchino", "salmone", "tonno", "maiale", "manzo", "seitan", "tempeh",
	}},
	{"Latticini", "🧀", []string{
		"latte", "formaggio", "yogurt", "burro", "panna", "mozzarella", "ricotta",
		"parmigiano", "pecorino", "stracchino", "scamorza", "mascarpone", "kefir",
	}},
	{"Pane e Cereali", "🍞", []string{
		"pane", "pasta", "riso", "cereali", "farina", "crackers", "grissini", "pizza",
		"avena", "orzo", "farro", "quinoa", "cous cous", "mais", "muesli",
	}},
	{"Dolci e Snack", "🍪", []string{
		"biscotti", "cioccolato", "gelato", "caramelle", "torta", "merendine", "patatine",
		"croissant", "brioche", "marmellata", "miele", "nutella", "wafer", "snack",
	}},
	{"Bevande", "🥤", []string{
		"acqua", "succo", "tè", "caffè", "vino", "birra", "soda", "limonata",
		"aranciata", "cola", "energy drink", "tisana", "smoothie", "spremuta",
	}},
	{"Condimenti", "🧂", []string{
		"sale", "pepe", "olio", "aceto", "spezie", "erbe", "salsa", "maionese",
		"ketchup", "senape", "zucchero", "tabasco", "soia", "pesto",
	}},
	{"Surgelati", "❄️", []string{
		"surgelati", "gelato", "verdure surgelate", "pesce surgelato", "pizza surgelata",
		"patatine surgelate", "bastoncini",
	}},
}

var localMealPlans = []string{
	`📅 Piano dei pasti per 3 giorni:

🌅 Giorno 1:
- Colazione: Yogurt con frutta fresca e cereali
- Pranzo: Pasta al pomodoro con insalata mista
- Cena: Petto di pollo alla griglia con verdure saltate

🌅 Giorno 2:
- Colazione: Toast con uova strapazzate
- Pranzo: Insalata di riso con tonno e verdure
- Cena: Pesce al forno con patate

🌅 Giorno 3:
- Colazione: Smoothie di frutta con biscotti integrali
- Pranzo: Panino con formaggio e verdure grigliate
- Cena: Zuppa di legumi con crostini di pane

Buon appetito! 😋`,

	`📅 Piano alimentare personalizzato:

🍳 Giorno 1:
- Colazione: Porridge di avena con frutta secca
- Pranzo: Riso integrale con verdure saltate e uova
- Cena: Minestrone di verdure con crostini

🥗 Giorno 2:
- Colazione: Pancake integrali con miele
- Pranzo: Bowl di quinoa con legumi e verdure
- Cena: Frittata di verdure con insalata mista

🍲 Giorno 3:
- Colazione: Yogurt greco con frutta fresca e muesli
- Pranzo: Wrap con hummus e verdure
- Cena: Risotto con zucchine e formaggio

Consiglio: prepara porzioni extra per avere avanzi per il giorno dopo! 👨‍🍳`,

	`📅 Menù settimanale (primi 3 giorni):

🌞 Giorno 1:
- Colazione: Fette biscottate con marmellata e tè
- Pranzo: Pasta integrale al pesto
- Cena: Merluzzo al vapore con piselli

☀️ Giorno 2:
- Colazione: Yogurt con cereali e miele
- Pranzo: Insalata di farro con pomodorini e mozzarella
- Cena: Frittata di verdure con pane integrale

🌤️ Giorno 3:
- Colazione: Frullato di frutta con biscotti secchi
- Pranzo: Zuppa di lenticchie con crostini
- Cena: Pizza fatta in casa con verdure

Suggerimento: bevi almeno 1,5 litri di acqua al giorno! 💧`,
}

var localAnswers = []string{
	"In base alla tua lista della spesa, ti suggerisco di organizzare i pasti settimanali in anticipo per utilizzare al meglio gli ingredienti.",
	"Gli ingredienti nella tua lista sembrano ottimi per preparare piatti equilibrati. Ricorda di includere sempre proteine, carboidrati e verdure in ogni pasto.",
	"Per risparmiare, controlla sempre cosa hai già in dispensa prima di fare la spesa e approfitta delle offerte stagionali.",
	"Considera di aggiungere più varietà di frutta e verdura alla tua lista per garantire un apporto completo di nutrienti.",
	"Con questi ingredienti potresti preparare diversi piatti in anticipo e congelarli per avere pasti pronti durante la settimana.",
	"Per ridurre gli sprechi, pianifica i pasti in modo da utilizzare gli ingredienti più deperibili per primi.",
	"La tua lista sembra ben bilanciata. Ricorda che una buona regola è riempire metà del piatto con verdure, un quarto con proteine e un quarto con carboidrati.",
	"Prova a sperimentare nuove ricette con gli ingredienti che hai scelto per aggiungere varietà alla tua alimentazione.",
	"Gli alimenti nella tua lista si prestano bene a preparazioni veloci e salutari, perfette per chi ha poco tempo per cucinare.",
	"Ricorda che una buona conservazione degli alimenti è fondamentale per mantenerne la freschezza e ridurre gli sprechi.",
}

// Local produces plausible domain text without network access. It never
// fails, keeping the bot responsive when every remote tier is down.
type Local struct {
	rnd *rand.Rand
}

func NewLocal() *Local {
	return &Local{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Suggestions picks a random subset of the fixed catalog.
func (l *Local) Suggestions() string {
	n := 3 + l.rnd.Intn(3)
	perm := l.rnd.Perm(len(localSuggestions))

	var b strings.Builder
	for _, idx := range perm[:n] {
		s := localSuggestions[idx]
		fmt.Fprintf(&b, "%s %s - %s\n", s.emoji, s.item, s.reason)
	}
	b.WriteString("\n⚠️ Nota: Utilizzando il sistema di suggerimenti locale. " + DisclaimerSuffix)
	return b.String()
}

// Categorize buckets the given item names with the local grouping table;
// unmatched names land in "Altro".
func (l *Local) Categorize(items []string) string {
	type bucket struct {
		emoji string
		items []string
	}
	grouped := map[string]*bucket{}
	order := []string{}

	assign := func(category, emoji, item string) {
		bk, ok := grouped[category]
		if !ok {
			bk = &bucket{emoji: emoji}
			grouped[category] = bk
			order = append(order, category)
		}
		bk.items = append(bk.items, item)
	}

	for _, raw := range items {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		assigned := false
		for _, c := range localCategories {
			for _, kw := range c.items {
				if strings.Contains(name, kw) || strings.Contains(kw, name) {
					assign(c.name, c.emoji, name)
					assigned = true
					break
				}
			}
			if assigned {
				break
			}
		}
		if !assigned {
			assign("Altro", "📦", name)
		}
	}

	var b strings.Builder
	for _, category := range order {
		bk := grouped[category]
		fmt.Fprintf(&b, "%s %s (%d):\n", bk.emoji, category, len(bk.items))
		for _, item := range bk.items {
			fmt.Fprintf(&b, "- %s\n", capitalize(item))
		}
		b.WriteString("\n")
	}
	b.WriteString("⚠️ Nota: Utilizzando il sistema di categorizzazione locale. " + DisclaimerSuffix)
	return b.String()
}

// MealPlan returns one of the fixed multi-day templates.
func (l *Local) MealPlan() string {
	plan := localMealPlans[l.rnd.Intn(len(localMealPlans))]
	return plan + "\n\n⚠️ Nota: Utilizzando il sistema di pianificazione pasti locale. " + DisclaimerSuffix
}

// Answer returns one of the fixed generic advice strings.
func (l *Local) Answer() string {
	answer := localAnswers[l.rnd.Intn(len(localAnswers))]
	return answer + "\n\n⚠️ Nota: Utilizzando il sistema di risposte locale. " + DisclaimerSuffix
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
