// services/invoice_service.go
package services

import (
	"fmt"
	"os"
	"time"

	"github.com/dhouwanderer/wanderer-backend/models"
	"github.com/dhouwanderer/wanderer-backend/utils"
	"github.com/xuri/excelize/v2"
)

// InvoiceMimeType is the content type of generated invoice attachments
const InvoiceMimeType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// InvoiceService renders invoice documents attached to payment receipts
type InvoiceService struct {
	logoPath string
}

// NewInvoiceService creates a new invoice service. logoPath points at the
// company logo image; a missing logo degrades to a text title.
func NewInvoiceService(logoPath string) *InvoiceService {
	return &InvoiceService{logoPath: logoPath}
}

// Build renders the invoice for a paid booking. It is a pure function of the
// booking, the charged price (major units), the gateway payment id and the
// invoice date. Returns the document bytes and a filename.
func (s *InvoiceService) Build(booking *models.Booking, price int, paymentID string, date time.Time) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Invoice"
	f.NewSheet(sheet)
	f.DeleteSheet("Sheet1")

	// Header: logo, or a text title when the asset is missing
	logoPlaced := false
	if s.logoPath != "" {
		if _, err := os.Stat(s.logoPath); err == nil {
			if err := f.AddPicture(sheet, "A1", s.logoPath, nil); err == nil {
				logoPlaced = true
			}
		}
	}
	if !logoPlaced {
		f.SetCellValue(sheet, "A1", "Wanderer Travels")
		titleStyle, _ := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true, Size: 16},
		})
		f.SetCellStyle(sheet, "A1", "A1", titleStyle)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})

	// Invoice metadata
	f.SetCellValue(sheet, "A3", "INVOICE")
	f.SetCellStyle(sheet, "A3", "A3", boldStyle)
	f.SetCellValue(sheet, "A4", "Invoice No:")
	f.SetCellValue(sheet, "B4", "INV-"+booking.ID)
	f.SetCellValue(sheet, "A5", "Date:")
	f.SetCellValue(sheet, "B5", date.Format("02 Jan, 2006"))
	f.SetCellValue(sheet, "A6", "Payment ID:")
	f.SetCellValue(sheet, "B6", paymentID)

	// Bill-to block
	f.SetCellValue(sheet, "A8", "Bill To:")
	f.SetCellStyle(sheet, "A8", "A8", boldStyle)
	f.SetCellValue(sheet, "A9", booking.Name)
	f.SetCellValue(sheet, "A10", booking.Email)

	// Line items
	headers := []string{"Description", "Qty", "Unit Price", "Amount"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s12", string(rune('A'+i)))
		f.SetCellValue(sheet, cell, header)
	}
	f.SetCellStyle(sheet, "A12", "D12", headerStyle)

	amount := fmt.Sprintf("%.2f", float64(price))
	f.SetCellValue(sheet, "A13", booking.Trip+" Package")
	f.SetCellValue(sheet, "B13", 1)
	f.SetCellValue(sheet, "C13", amount)
	f.SetCellValue(sheet, "D13", amount)

	// Total
	f.SetCellValue(sheet, "C15", "Total")
	f.SetCellValue(sheet, "D15", amount)
	f.SetCellStyle(sheet, "C15", "D15", boldStyle)

	// Footer
	f.SetCellValue(sheet, "A17", "Thank you for travelling with Wanderer Travels.")

	f.SetColWidth(sheet, "A", "A", 35)
	f.SetColWidth(sheet, "B", "D", 12)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write invoice: %v", err)
	}

	filename := fmt.Sprintf("Invoice_%s_%s.xlsx",
		utils.CleanFileName(booking.Trip),
		date.Format("2006-01-02"))

	return buf.Bytes(), filename, nil
}
