package status

// Statusvocabulaires per bron. Leads kennen geen bewaakte overgangen: binnen
// het eigen vocabulaire mag elke status naar elke andere. Alleen reminders
// hebben een echte overgangstabel.

// Generic lead statuses (configurator, campaign, contact_form)
const (
	LeadNew        = "new"
	LeadInProgress = "in_progress"
	LeadCompleted  = "completed"
	LeadArchived   = "archived"
)

// Keuzehulp lead statuses
const (
	KeuzehulpNew       = "new"
	KeuzehulpContacted = "contacted"
	KeuzehulpOfferSent = "offer_sent"
	KeuzehulpAccepted  = "accepted"
	KeuzehulpRejected  = "rejected"
	KeuzehulpArchived  = "archived"
)

// Appointment statuses
const (
	AppointmentGepland     = "gepland"
	AppointmentVoltooid    = "voltooid"
	AppointmentGeannuleerd = "geannuleerd"
)

// Reminder statuses
const (
	ReminderGepland     = "gepland"
	ReminderVerzonden   = "verzonden"
	ReminderGeannuleerd = "geannuleerd"
)

var genericLeadVocabulary = []string{LeadNew, LeadInProgress, LeadCompleted, LeadArchived}

var keuzehulpVocabulary = []string{
	KeuzehulpNew, KeuzehulpContacted, KeuzehulpOfferSent,
	KeuzehulpAccepted, KeuzehulpRejected, KeuzehulpArchived,
}

var appointmentVocabulary = []string{AppointmentGepland, AppointmentVoltooid, AppointmentGeannuleerd}

// VocabularyForSource geeft het geordende statusvocabulaire voor een leadbron.
func VocabularyForSource(source string) []string {
	if source == "keuzehulp" {
		return keuzehulpVocabulary
	}
	return genericLeadVocabulary
}

func AppointmentVocabulary() []string {
	return appointmentVocabulary
}

// IsValidForSource controleert of een statuswaarde in het vocabulaire van de
// bron valt.
func IsValidForSource(source, value string) bool {
	for _, v := range VocabularyForSource(source) {
		if v == value {
			return true
		}
	}
	return false
}

func IsValidAppointmentStatus(value string) bool {
	for _, v := range appointmentVocabulary {
		if v == value {
			return true
		}
	}
	return false
}

// TerminalForSource is de status waarop een lead gezet wordt na conversie
// naar klant.
func TerminalForSource(source string) string {
	if source == "keuzehulp" {
		return KeuzehulpAccepted
	}
	return LeadCompleted
}

var labels = map[string]string{
	LeadNew:                "Nieuw",
	LeadInProgress:         "In behandeling",
	LeadCompleted:          "Afgerond",
	LeadArchived:           "Gearchiveerd",
	KeuzehulpContacted:     "Contact gehad",
	KeuzehulpOfferSent:     "Offerte verstuurd",
	KeuzehulpAccepted:      "Geaccepteerd",
	KeuzehulpRejected:      "Afgewezen",
	AppointmentGepland:     "Gepland",
	AppointmentVoltooid:    "Voltooid",
	AppointmentGeannuleerd: "Geannuleerd",
	ReminderVerzonden:      "Verzonden",
}

// Label geeft het weergavelabel voor een statuswaarde. Onbekende waarden
// komen ongewijzigd terug.
func Label(value string) string {
	if l, ok := labels[value]; ok {
		return l
	}
	return value
}

var colorClasses = map[string]string{
	LeadNew:                "blue",
	LeadInProgress:         "yellow",
	LeadCompleted:          "green",
	LeadArchived:           "gray",
	KeuzehulpContacted:     "yellow",
	KeuzehulpOfferSent:     "purple",
	KeuzehulpAccepted:      "green",
	KeuzehulpRejected:      "red",
	AppointmentGepland:     "blue",
	AppointmentVoltooid:    "green",
	AppointmentGeannuleerd: "red",
	ReminderVerzonden:      "green",
}

// ColorClass geeft de presentatietag voor een statuswaarde.
func ColorClass(value string) string {
	if c, ok := colorClasses[value]; ok {
		return c
	}
	return "gray"
}

// reminderTransitions: gepland kan verzonden of geannuleerd worden; verzonden
// is een eindstatus; geannuleerd kan alleen nog verwijderd worden.
var reminderTransitions = map[string]map[string]bool{
	ReminderGepland:     {ReminderVerzonden: true, ReminderGeannuleerd: true},
	ReminderVerzonden:   {},
	ReminderGeannuleerd: {},
}

// CanTransitionReminder controleert een reminderovergang.
func CanTransitionReminder(from, to string) bool {
	next, ok := reminderTransitions[from]
	if !ok {
		return false
	}
	return next[to]
}

// CanDeleteReminder: alleen geannuleerde reminders zijn verwijderbaar via het
// normale pad.
func CanDeleteReminder(current string) bool {
	return current == ReminderGeannuleerd
}
