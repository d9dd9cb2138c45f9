package tgbot

// Bot reply texts. The bot speaks Italian.

const msgStart = `👋 Benvenuto alla tua Lista della Spesa personale!

Puoi usare i seguenti comandi:
/aggiungi [articolo] - Aggiungi un articolo alla lista
/lista - Mostra la tua lista della spesa
/rimuovi [numero] - Rimuovi un articolo dalla lista
/svuota - Cancella l'intera lista
/aggiorna [numero] [quantità] - Cambia la quantità di un articolo
/suggerisci - Ottieni suggerimenti intelligenti
/categorie - Organizza la lista per categorie
/pasti - Ottieni un piano dei pasti basato sulla lista
/ai [domanda] - Fai una domanda sulla tua lista

Digita /aiuto per vedere questo messaggio di nuovo.`

const msgHelp = `📝 *Comandi della Lista della Spesa*

/aggiungi [articolo] - Aggiungi un articolo alla lista
Esempio: ` + "`/aggiungi 2 kg di patate`" + `

/lista - Mostra la tua lista della spesa attuale

/rimuovi [numero] - Rimuovi un articolo dalla lista usando il suo numero
Esempio: ` + "`/rimuovi 1`" + `

/svuota - Cancella l'intera lista

/aggiorna [numero] [quantità] - Cambia la quantità di un articolo
Esempio: ` + "`/aggiorna 1 500g`" + `

*Funzioni AI* 🧠

/suggerisci - Ottieni suggerimenti per altri articoli in base alla tua lista attuale

/categorie - Organizza la tua lista per categorie (latticini, frutta, ecc.)

/pasti - Genera un piano dei pasti basato sugli articoli nella tua lista

/ai [domanda] - Fai una domanda sulla tua lista della spesa
Esempio: ` + "`/ai Cosa posso cucinare con questi ingredienti?`"

const (
	msgItemAdded   = "✅ \"%s\" (%s) aggiunto alla tua lista della spesa!"
	msgListEmpty   = "📝 La tua lista della spesa è vuota. Aggiungi qualcosa con /aggiungi [articolo]"
	msgListHeader  = "📝 *La tua lista della spesa:*"
	msgItemRemoved = "🗑️ \"%s\" rimosso dalla lista!"
	msgListCleared = "🧹 La tua lista della spesa è stata svuotata!"
	msgQtyUpdated  = "📝 Quantità di \"%s\" aggiornata a \"%s\"!"

	msgSuggestHeader = "🧠 *Ecco alcuni suggerimenti in base alla tua lista:*\n\n%s"

	msgAddUsage     = "Per favore, specifica un articolo da aggiungere. Esempio: /aggiungi pane"
	msgRemoveUsage  = "Per favore, specifica il numero dell'articolo da rimuovere. Esempio: /rimuovi 1"
	msgUpdateUsage  = "Per favore, specifica numero e quantità. Esempio: /aggiorna 1 500g"
	msgAskUsage     = "Cosa vuoi sapere sulla tua lista della spesa? Esempio: /ai Come posso usare questi ingredienti per una cena?"
	msgBadNumber    = "Per favore, inserisci un numero valido. Usa /lista per vedere i numeri degli articoli."
	msgNotFound     = "Non ho trovato questo articolo nella tua lista."
	msgNeedItems    = "La tua lista della spesa è vuota. Aggiungi qualche articolo prima!"
	msgAddFailed    = "Non sono riuscito ad aggiungere l'articolo."
	msgThinking     = "Sto pensando... 🧠 Questo potrebbe richiedere alcuni secondi."
)
