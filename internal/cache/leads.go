package cache

import (
	"sync"

	"wrapsite_backend/internal/model"
	"wrapsite_backend/pkg/optimistic"
)

// LeadCache houdt het samengevoegde leadoverzicht in het geheugen. De store
// blijft de bron van waarheid: na gewone mutaties wordt de cache ongeldig
// gemaakt en opnieuw opgebouwd uit een volledige fetch. Alleen delete- en
// statusmutaties gaan optimistisch: eerst lokaal toepassen, daarna de remote
// actie, en bij een fout de snapshot terugzetten.
type LeadCache struct {
	mu    sync.Mutex
	leads []model.LeadSummary
	valid bool
}

func (c *LeadCache) Get() ([]model.LeadSummary, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid {
		return nil, false
	}
	out := make([]model.LeadSummary, len(c.leads))
	copy(out, c.leads)
	return out, true
}

func (c *LeadCache) Set(leads []model.LeadSummary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.leads = leads
	c.valid = true
}

func (c *LeadCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.leads = nil
	c.valid = false
}

// Mutate voert een optimistische mutatie uit: apply muteert de gecachte
// lijst, remote doet de echte schrijfactie. Mislukt remote, dan wordt de
// lijst teruggedraaid en de fout teruggegeven.
func (c *LeadCache) Mutate(apply func(*optimistic.Txn[model.LeadSummary]), remote func() error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid {
		// Geen cache om te muteren; alleen de remote actie uitvoeren.
		return remote()
	}
	txn := optimistic.Begin(&c.leads)
	apply(txn)
	if err := remote(); err != nil {
		txn.Rollback()
		return err
	}
	txn.Commit()
	return nil
}
