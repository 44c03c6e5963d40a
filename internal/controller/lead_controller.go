package controller

import (
	"errors"
	"fmt"
	"strconv"

	"wrapsite_backend/internal/cache"
	"wrapsite_backend/internal/model"
	"wrapsite_backend/pkg/database"
	"wrapsite_backend/pkg/optimistic"
	"wrapsite_backend/pkg/status"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// leadCache is het samengevoegde overzicht voor de admin. De store blijft de
// bron van waarheid; delete- en statusacties muteren de cache optimistisch.
var leadCache cache.LeadCache

func InitLeadController() {
	leadCache.Invalidate()
}

// fetchLeadSummaries haalt alle vier de bronnen op. Faalt één fetch, dan
// faalt de hele aggregatie; er wordt niet gedeeltelijk gerenderd.
func fetchLeadSummaries() ([]model.LeadSummary, error) {
	db := database.GetDB()

	var configurator []model.ConfiguratorLead
	if err := db.Find(&configurator).Error; err != nil {
		return nil, fmt.Errorf("could not fetch configurator leads: %w", err)
	}

	var campaign []model.CampaignLead
	if err := db.Find(&campaign).Error; err != nil {
		return nil, fmt.Errorf("could not fetch campaign leads: %w", err)
	}

	var contact []model.ContactLead
	if err := db.Find(&contact).Error; err != nil {
		return nil, fmt.Errorf("could not fetch contact form leads: %w", err)
	}

	var keuzehulp []model.KeuzehulpLead
	if err := db.Find(&keuzehulp).Error; err != nil {
		return nil, fmt.Errorf("could not fetch keuzehulp leads: %w", err)
	}

	return model.AggregateLeads(configurator, campaign, contact, keuzehulp), nil
}

// GetLeads geeft het samengevoegde leadoverzicht, aflopend op created_at.
// Source- en statusfilters zijn pure predicaten over de lijst; er wordt geen
// nieuwe query per filter gedaan.
func GetLeads(c *fiber.Ctx) error {
	leads, ok := leadCache.Get()
	if !ok {
		fresh, err := fetchLeadSummaries()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not fetch leads",
			})
		}
		leadCache.Set(fresh)
		leads = fresh
	}

	filtered := model.FilterLeads(leads, c.Query("source"), c.Query("status"))

	return c.JSON(fiber.Map{
		"leads": filtered,
		"total": len(filtered),
	})
}

// GetLead geeft de volledige rij van één lead.
func GetLead(c *fiber.Ctx) error {
	source := c.Params("source")
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid lead ID",
		})
	}

	db := database.GetDB()

	switch source {
	case model.LeadSourceConfigurator:
		var lead model.ConfiguratorLead
		if err := db.First(&lead, id).Error; err != nil {
			return leadLookupError(c, err)
		}
		return c.JSON(lead)
	case model.LeadSourceCampaign:
		var lead model.CampaignLead
		if err := db.First(&lead, id).Error; err != nil {
			return leadLookupError(c, err)
		}
		return c.JSON(lead)
	case model.LeadSourceContactForm:
		var lead model.ContactLead
		if err := db.First(&lead, id).Error; err != nil {
			return leadLookupError(c, err)
		}
		return c.JSON(lead)
	case model.LeadSourceKeuzehulp:
		var lead model.KeuzehulpLead
		if err := db.First(&lead, id).Error; err != nil {
			return leadLookupError(c, err)
		}
		return c.JSON(lead)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown lead source",
		})
	}
}

func leadNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Lead not found",
	})
}

// leadLookupError vertaalt een First-fout: alleen een ontbrekende rij is een
// 404, al het andere (bijvoorbeeld een weggevallen verbinding) is een 500.
func leadLookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leadNotFound(c)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Could not fetch lead",
	})
}

// leadTableModel geeft het modelobject voor GORM-operaties op een bron.
func leadTableModel(source string) (interface{}, bool) {
	switch source {
	case model.LeadSourceConfigurator:
		return &model.ConfiguratorLead{}, true
	case model.LeadSourceCampaign:
		return &model.CampaignLead{}, true
	case model.LeadSourceContactForm:
		return &model.ContactLead{}, true
	case model.LeadSourceKeuzehulp:
		return &model.KeuzehulpLead{}, true
	default:
		return nil, false
	}
}

// UpdateLeadStatus zet de status van een lead. Binnen het vocabulaire van de
// bron is elke overgang toegestaan; de mutatie gaat optimistisch door de cache.
func UpdateLeadStatus(c *fiber.Ctx) error {
	source := c.Params("source")
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid lead ID",
		})
	}

	tableModel, ok := leadTableModel(source)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown lead source",
		})
	}

	input := struct {
		Status string `json:"status"`
	}{}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if !status.IsValidForSource(source, input.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":          "Invalid status value",
			"valid_statuses": status.VocabularyForSource(source),
		})
	}

	leadID := uint(id)
	err = leadCache.Mutate(
		func(txn *optimistic.Txn[model.LeadSummary]) {
			txn.Update(
				func(l model.LeadSummary) bool { return l.Source == source && l.ID == leadID },
				func(l *model.LeadSummary) { l.Status = input.Status },
			)
		},
		func() error {
			result := database.GetDB().Model(tableModel).
				Where("id = ?", leadID).
				Update("status", input.Status)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("lead %s/%d not found", source, leadID)
			}
			return nil
		},
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update lead status",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Lead status updated successfully",
		"status":  input.Status,
		"label":   status.Label(input.Status),
	})
}

// UpdateLeadNotes werkt de admin-notities bij.
func UpdateLeadNotes(c *fiber.Ctx) error {
	source := c.Params("source")
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid lead ID",
		})
	}

	tableModel, ok := leadTableModel(source)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown lead source",
		})
	}

	input := struct {
		AdminNotes string `json:"admin_notes"`
	}{}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if err := database.GetDB().Model(tableModel).
		Where("id = ?", id).
		Update("admin_notes", input.AdminNotes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update lead notes",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Lead notes updated successfully",
	})
}

// DeleteLead verwijdert een lead. De verwijdering gaat optimistisch: de rij
// verdwijnt direct uit het gecachte overzicht en komt terug als de remote
// delete faalt. AI-kostregels blijven staan; de kostenteller telt nooit terug.
func DeleteLead(c *fiber.Ctx) error {
	source := c.Params("source")
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid lead ID",
		})
	}

	tableModel, ok := leadTableModel(source)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown lead source",
		})
	}

	leadID := uint(id)
	err = leadCache.Mutate(
		func(txn *optimistic.Txn[model.LeadSummary]) {
			txn.Remove(func(l model.LeadSummary) bool {
				return l.Source == source && l.ID == leadID
			})
		},
		func() error {
			return database.GetDB().Unscoped().Delete(tableModel, leadID).Error
		},
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete lead",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Lead deleted successfully",
	})
}
