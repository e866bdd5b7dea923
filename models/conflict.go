package models

// EntityType names the collection a conflicting record belongs to.
type EntityType string

const (
	EntityTransaction EntityType = "transaction"
	EntityCategory    EntityType = "category"
	EntityAccount     EntityType = "account"
)

// Conflict pairs two differing versions of the same entity id: the record
// currently in local storage and the one arriving in an imported snapshot.
// Conflicts are ephemeral, computed per import attempt and never persisted.
type Conflict struct {
	Type        EntityType `json:"type"`
	ID          string     `json:"id"`
	Local       any        `json:"local"`
	Imported    any        `json:"imported"`
	Description string     `json:"description"`
}

// Choice is a per-conflict resolution decision.
type Choice string

const (
	ChoiceLocal    Choice = "local"
	ChoiceImported Choice = "imported"
)

// Resolution is the outcome of the interactive conflict-resolution step.
// Proceed false means the user cancelled the whole import; Choices are
// positional, one per detected conflict, defaulting to ChoiceLocal.
type Resolution struct {
	Proceed bool
	Choices []Choice
}

// ResolveAll builds a Resolution applying the same choice to every conflict.
func ResolveAll(n int, choice Choice) Resolution {
	choices := make([]Choice, n)
	for i := range choices {
		choices[i] = choice
	}
	return Resolution{Proceed: true, Choices: choices}
}
