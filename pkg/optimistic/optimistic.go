package optimistic

// Txn past een mutatie direct toe op een in-memory lijst, vóór de remote
// schrijfactie. Slaagt de remote actie, dan bevestigt Commit de nieuwe staat;
// mislukt hij, dan zet Rollback de snapshot van vóór de mutatie terug. Zo
// blijft de lijst zichtbaar snel zonder read-after-write refresh.
type Txn[T any] struct {
	target   *[]T
	snapshot []T
	done     bool
}

// Begin maakt een snapshot van de lijst en geeft een transactie terug.
func Begin[T any](target *[]T) *Txn[T] {
	snap := make([]T, len(*target))
	copy(snap, *target)
	return &Txn[T]{target: target, snapshot: snap}
}

// Remove haalt alle elementen die aan match voldoen uit de lijst.
func (t *Txn[T]) Remove(match func(T) bool) {
	kept := make([]T, 0, len(*t.target))
	for _, item := range *t.target {
		if !match(item) {
			kept = append(kept, item)
		}
	}
	*t.target = kept
}

// Update past apply toe op alle elementen die aan match voldoen.
func (t *Txn[T]) Update(match func(T) bool, apply func(*T)) {
	for i := range *t.target {
		if match((*t.target)[i]) {
			apply(&(*t.target)[i])
		}
	}
}

// Commit laat de gemuteerde staat staan en geeft de snapshot vrij.
func (t *Txn[T]) Commit() {
	t.done = true
	t.snapshot = nil
}

// Rollback zet de staat van vóór de mutatie terug. Na Commit doet Rollback
// niets meer.
func (t *Txn[T]) Rollback() {
	if t.done {
		return
	}
	*t.target = t.snapshot
	t.done = true
}
