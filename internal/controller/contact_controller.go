package controller

import (
	"log"

	"wrapsite_backend/internal/model"
	"wrapsite_backend/pkg/database"

	"github.com/gofiber/fiber/v2"
)

const contactSearchLimit = 10

// SearchContacts doorzoekt klanten, configurator-leads en
// contactformulier-leads op naam, e-mail of telefoon. Resultaten worden
// samengevoegd in prioriteitsvolgorde (klanten eerst) en ontdubbeld op
// e-mailadres. Faalt één van de queries, dan faalt de hele zoekopdracht;
// deelresultaten worden weggegooid.
func SearchContacts(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return c.JSON([]model.Contact{})
	}

	pattern := "%" + q + "%"
	db := database.GetDB()

	var customers []model.Customer
	if err := db.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", pattern, pattern, pattern).
		Limit(contactSearchLimit).
		Find(&customers).Error; err != nil {
		log.Printf("contact search: customer query failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not search contacts",
		})
	}

	var configuratorLeads []model.ConfiguratorLead
	if err := db.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", pattern, pattern, pattern).
		Limit(contactSearchLimit).
		Find(&configuratorLeads).Error; err != nil {
		log.Printf("contact search: configurator query failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not search contacts",
		})
	}

	var contactLeads []model.ContactLead
	if err := db.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", pattern, pattern, pattern).
		Limit(contactSearchLimit).
		Find(&contactLeads).Error; err != nil {
		log.Printf("contact search: contact form query failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not search contacts",
		})
	}

	customerContacts := make([]model.Contact, 0, len(customers))
	for _, cust := range customers {
		customerContacts = append(customerContacts, cust.ToContact())
	}
	configuratorContacts := make([]model.Contact, 0, len(configuratorLeads))
	for _, l := range configuratorLeads {
		configuratorContacts = append(configuratorContacts, l.ToContact())
	}
	formContacts := make([]model.Contact, 0, len(contactLeads))
	for _, l := range contactLeads {
		formContacts = append(formContacts, l.ToContact())
	}

	return c.JSON(model.MergeContacts(customerContacts, configuratorContacts, formContacts))
}
