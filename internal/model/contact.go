package model

import "strings"

// Contacttypen in de contactendirectory.
const (
	ContactTypeLead  = "lead"
	ContactTypeKlant = "klant"
)

// Contact is een afgeleide projectie voor de contactendirectory; het is geen
// opgeslagen entiteit.
type Contact struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Type    string `json:"type"`   // lead of klant
	Source  string `json:"source"` // leadbron, leeg voor klanten
}

func (c Customer) ToContact() Contact {
	return Contact{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
		Type:    ContactTypeKlant,
	}
}

func (l ConfiguratorLead) ToContact() Contact {
	return Contact{
		ID:      l.ID,
		Name:    l.Name,
		Email:   l.Email,
		Phone:   l.Phone,
		Address: l.Address,
		Type:    ContactTypeLead,
		Source:  LeadSourceConfigurator,
	}
}

func (l ContactLead) ToContact() Contact {
	return Contact{
		ID:     l.ID,
		Name:   l.Name,
		Email:  l.Email,
		Phone:  l.Phone,
		Type:   ContactTypeLead,
		Source: LeadSourceContactForm,
	}
}

// MergeContacts voegt de groepen samen in prioriteitsvolgorde en ontdubbelt
// op e-mailadres (kleine letters); de eerste treffer wint. Klanten horen als
// eerste groep aangeleverd te worden zodat zij voorrang krijgen op leads.
func MergeContacts(groups ...[]Contact) []Contact {
	seen := make(map[string]bool)
	out := make([]Contact, 0)
	for _, group := range groups {
		for _, c := range group {
			key := strings.ToLower(strings.TrimSpace(c.Email))
			if key != "" {
				if seen[key] {
					continue
				}
				seen[key] = true
			}
			out = append(out, c)
		}
	}
	return out
}
