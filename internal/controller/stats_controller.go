package controller

import (
	"time"

	"wrapsite_backend/internal/model"
	"wrapsite_backend/pkg/database"
	"wrapsite_backend/pkg/status"

	"github.com/gofiber/fiber/v2"
)

// DashboardStats is het overzicht op het admin-dashboard.
type DashboardStats struct {
	TotalLeads        int64               `json:"total_leads"`
	LeadsPerSource    map[string]int64    `json:"leads_per_source"`
	NewLeads          int64               `json:"new_leads"`
	TotalCustomers    int64               `json:"total_customers"`
	TotalAppointments int64               `json:"total_appointments"`
	PlannedToday      int64               `json:"planned_today"`
	RemindersPlanned  int64               `json:"reminders_planned"`
	AIUsageCostEUR    float64             `json:"ai_usage_cost_eur"`
	RecentLeads       []model.LeadSummary `json:"recent_leads"`
}

// GetDashboardStats telt leads per bron, klanten, afspraken en de monotone
// AI-kostenteller. De kostenteller staat los van het leadaantal: verwijderde
// leads verlagen hem niet.
func GetDashboardStats(c *fiber.Ctx) error {
	db := database.GetDB()

	var stats DashboardStats
	stats.LeadsPerSource = make(map[string]int64)

	sources := []struct {
		name  string
		table interface{}
	}{
		{model.LeadSourceConfigurator, &model.ConfiguratorLead{}},
		{model.LeadSourceCampaign, &model.CampaignLead{}},
		{model.LeadSourceContactForm, &model.ContactLead{}},
		{model.LeadSourceKeuzehulp, &model.KeuzehulpLead{}},
	}

	for _, s := range sources {
		var count int64
		if err := db.Model(s.table).Count(&count).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not fetch lead counts",
			})
		}
		stats.LeadsPerSource[s.name] = count
		stats.TotalLeads += count

		var newCount int64
		db.Model(s.table).Where("status = ?", "new").Count(&newCount)
		stats.NewLeads += newCount
	}

	db.Model(&model.Customer{}).Count(&stats.TotalCustomers)
	db.Model(&model.Appointment{}).Count(&stats.TotalAppointments)

	today := time.Now().Format("2006-01-02")
	db.Model(&model.Appointment{}).
		Where("DATE(date) = ? AND status = ?", today, status.AppointmentGepland).
		Count(&stats.PlannedToday)

	db.Model(&model.AppointmentReminder{}).
		Where("status = ?", status.ReminderGepland).
		Count(&stats.RemindersPlanned)

	cost, err := model.TotalAIUsageCost()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch AI usage cost",
		})
	}
	stats.AIUsageCostEUR = cost

	leads, ok := leadCache.Get()
	if !ok {
		leads, err = fetchLeadSummaries()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not fetch leads",
			})
		}
		leadCache.Set(leads)
	}
	if len(leads) > 5 {
		leads = leads[:5]
	}
	stats.RecentLeads = leads

	return c.JSON(stats)
}
