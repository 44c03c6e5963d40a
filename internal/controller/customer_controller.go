package controller

import (
	"encoding/json"
	"errors"
	"log"
	"strconv"

	"wrapsite_backend/internal/model"
	"wrapsite_backend/pkg/database"
	"wrapsite_backend/pkg/status"
	"wrapsite_backend/pkg/utils/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func customerLookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Customer not found",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Could not fetch customer",
	})
}

// ListCustomers geeft alle klanten, nieuwste eerst.
func ListCustomers(c *fiber.Ctx) error {
	var customers []model.Customer
	query := database.GetDB().Order("created_at desc")

	if q := c.Query("q"); q != "" {
		pattern := "%" + q + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", pattern, pattern, pattern)
	}

	if err := query.Find(&customers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch customers",
		})
	}

	return c.JSON(customers)
}

// GetCustomer geeft één klant, inclusief de afspraken die via contact_id
// naar deze klant verwijzen.
func GetCustomer(c *fiber.Ctx) error {
	id := c.Params("id")

	var customer model.Customer
	if err := database.GetDB().First(&customer, id).Error; err != nil {
		return customerLookupError(c, err)
	}

	var appointments []model.Appointment
	if err := database.GetDB().
		Where("contact_id = ?", customer.ID).
		Order("date desc").
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch customer appointments",
		})
	}

	return c.JSON(fiber.Map{
		"customer":     customer,
		"appointments": appointments,
	})
}

type CustomerInput struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	ProjectType string `json:"project_type"`
	AdminNotes  string `json:"admin_notes"`
}

// CreateCustomer maakt een klant aan via directe admin-invoer.
func CreateCustomer(c *fiber.Ctx) error {
	input := new(CustomerInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}

	customer := model.Customer{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Address:     input.Address,
		ProjectType: input.ProjectType,
		AdminNotes:  input.AdminNotes,
	}

	if err := database.GetDB().Create(&customer).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create customer",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(customer)
}

// customerUpdates bouwt de updatemap uit de invoer. Lege velden blijven
// buiten de map zodat een gedeeltelijke body bestaande waarden niet wist.
func customerUpdates(input *CustomerInput) map[string]interface{} {
	updates := map[string]interface{}{}
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.Email != "" {
		updates["email"] = input.Email
	}
	if input.Phone != "" {
		updates["phone"] = input.Phone
	}
	if input.Address != "" {
		updates["address"] = input.Address
	}
	if input.ProjectType != "" {
		updates["project_type"] = input.ProjectType
	}
	if input.AdminNotes != "" {
		updates["admin_notes"] = input.AdminNotes
	}
	return updates
}

// UpdateCustomer werkt klantvelden bij. Alleen gevulde velden worden
// geschreven, net als bij afspraken.
func UpdateCustomer(c *fiber.Ctx) error {
	id := c.Params("id")

	var customer model.Customer
	if err := database.GetDB().First(&customer, id).Error; err != nil {
		return customerLookupError(c, err)
	}

	input := new(CustomerInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	updates := customerUpdates(input)
	if len(updates) == 0 {
		return c.JSON(customer)
	}

	if err := database.GetDB().Model(&customer).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update customer",
		})
	}

	return c.JSON(customer)
}

// DeleteCustomer verwijdert een klant. Afspraken blijven bestaan; hun
// contact_id is een zwakke verwijzing.
func DeleteCustomer(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := database.GetDB().Unscoped().Delete(&model.Customer{}, id).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete customer",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Customer deleted successfully",
	})
}

type ConvertLeadInput struct {
	Source string `json:"source"`
	LeadID uint   `json:"lead_id"`
}

// ConvertLead promoveert een lead tot klant. De conversie is twee stappen:
// eerst de klant-insert, dan de terminale status op de bronlead. Faalt de
// statusupdate, dan wordt de zojuist aangemaakte klant weer verwijderd zodat
// er geen actieve klant naast een niet-terminale lead achterblijft.
func ConvertLead(c *fiber.Ctx) error {
	input := new(ConvertLeadInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	db := database.GetDB()

	var customer model.Customer
	switch input.Source {
	case model.LeadSourceConfigurator:
		var lead model.ConfiguratorLead
		if err := db.First(&lead, input.LeadID).Error; err != nil {
			return leadLookupError(c, err)
		}
		customer = lead.ToCustomer()
	case model.LeadSourceCampaign:
		var lead model.CampaignLead
		if err := db.First(&lead, input.LeadID).Error; err != nil {
			return leadLookupError(c, err)
		}
		customer = lead.ToCustomer()
	case model.LeadSourceContactForm:
		var lead model.ContactLead
		if err := db.First(&lead, input.LeadID).Error; err != nil {
			return leadLookupError(c, err)
		}
		customer = lead.ToCustomer()
	case model.LeadSourceKeuzehulp:
		var lead model.KeuzehulpLead
		if err := db.First(&lead, input.LeadID).Error; err != nil {
			return leadLookupError(c, err)
		}
		customer = lead.ToCustomer()
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown lead source",
		})
	}

	if err := db.Create(&customer).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not create customer",
		})
	}

	tableModel, _ := leadTableModel(input.Source)
	terminal := status.TerminalForSource(input.Source)
	if err := db.Model(tableModel).
		Where("id = ?", input.LeadID).
		Update("status", terminal).Error; err != nil {
		// Compenserende actie: de klant-insert terugdraaien zodat de
		// conversie als geheel faalt in plaats van half slaagt.
		if delErr := db.Unscoped().Delete(&model.Customer{}, customer.ID).Error; delErr != nil {
			log.Printf("conversion rollback failed for customer %d: %v", customer.ID, delErr)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not update lead status; conversion rolled back",
		})
	}

	leadCache.Invalidate()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Lead converted to customer",
		"customer": customer,
	})
}

// UploadCustomerPhoto uploadt een projectfoto en voegt de publieke URL toe
// aan de fotolijst van de klant.
func UploadCustomerPhoto(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid customer ID",
		})
	}

	var customer model.Customer
	if err := database.GetDB().First(&customer, id).Error; err != nil {
		return customerLookupError(c, err)
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file provided",
		})
	}

	url, err := storage.UploadImage(c.Context(), file, "customer", strconv.FormatUint(id, 10))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var urls []string
	if len(customer.PhotoURLs) > 0 {
		if err := json.Unmarshal(customer.PhotoURLs, &urls); err != nil {
			log.Printf("could not parse photo URLs for customer %d: %v", customer.ID, err)
			urls = nil
		}
	}
	urls = append(urls, url)

	encoded, err := json.Marshal(urls)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not encode photo URLs",
		})
	}

	if err := database.GetDB().Model(&customer).
		Update("photo_urls", datatypes.JSON(encoded)).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save photo URL",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"url":        url,
		"photo_urls": urls,
	})
}
