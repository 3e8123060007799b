// controllers/report.go
package controllers

import (
	"fmt"
	"net/http"
	"time"

	"storemate-backend/config"
	"storemate-backend/models"
	"storemate-backend/services"
	"storemate-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ReportController handles all reporting functions
type ReportController struct{}

// ReportSummary represents the chart-ready report data
type ReportSummary struct {
	Revenue          []services.RevenuePoint   `json:"revenue"`
	RevenueChange    float64                   `json:"revenueChange"`
	OccupancyHistory []services.OccupancyPoint `json:"occupancyHistory"`
	PaymentsDue      services.DueBuckets       `json:"paymentsDue"`
}

// GetReports returns the revenue, occupancy and payment-due series
func (rc *ReportController) GetReports(c *gin.Context) {
	payments, units, bookings, ok := rc.loadEntities(c)
	if !ok {
		return
	}

	now := time.Now()
	revenue := services.MonthlyRevenue(payments, now)

	summary := ReportSummary{
		Revenue:          revenue,
		RevenueChange:    services.RevenueChange(revenue[2].Revenue, revenue[1].Revenue),
		OccupancyHistory: services.OccupancyHistory(units, bookings, now),
		PaymentsDue:      services.PaymentDueBuckets(payments, now),
	}

	c.JSON(http.StatusOK, summary)
}

// ExportCollections streams the collections work queue as an Excel workbook.
func (rc *ReportController) ExportCollections(c *gin.Context) {
	payments, _, bookings, ok := rc.loadEntities(c)
	if !ok {
		return
	}
	var customers []models.Customer
	if err := config.DB.Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	accounts := services.BuildCollections(payments, customers, bookings, time.Now(), services.CollectionsFilter{})

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Collections"
	f.SetSheetName("Sheet1", sheet)
	headers := []string{"Tenant", "Email", "Phone", "Balance", "Days Overdue", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for row, account := range accounts {
		values := []interface{}{
			account.Customer.Name,
			account.Customer.Email,
			account.Customer.Phone,
			account.Balance,
			account.DaysOverdue,
			account.Status,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	filename := fmt.Sprintf("collections-%s.xlsx", utils.FormatDate(time.Now()))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to export report")
	}
}

func (rc *ReportController) loadEntities(c *gin.Context) ([]models.Payment, []models.Unit, []models.Booking, bool) {
	var payments []models.Payment
	var units []models.Unit
	var bookings []models.Booking

	if err := config.DB.Find(&payments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payments")
		return nil, nil, nil, false
	}
	if err := config.DB.Find(&units).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve units")
		return nil, nil, nil, false
	}
	if err := config.DB.Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return nil, nil, nil, false
	}
	return payments, units, bookings, true
}
