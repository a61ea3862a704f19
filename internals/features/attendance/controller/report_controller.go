package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"absenku_backend/internals/configs"
	"absenku_backend/internals/constants"
	"absenku_backend/internals/features/attendance/model"
	tendikModel "absenku_backend/internals/features/tendik/model"
	helper "absenku_backend/internals/helpers"
)

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

func formatIndonesianDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), indonesianMonths[t.Month()-1], t.Year())
}

type recapRow struct {
	TendikName string
	Position   string
	Date       string
	Checkin    string
	Checkout   string
	Status     string
}

// =============================
// GET /api/a/attendance/recapitulation/export/pdf
// =============================
func (ctrl *AttendanceController) ExportRecapPDF(c *fiber.Ctx) error {
	filter, err := parseRecapFilter(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	recs, err := ctrl.Service.Recapitulation(c.Context(), filter)
	if err != nil {
		return attendanceError(c, err)
	}
	rows, err := ctrl.buildRecapRows(c, recs)
	if err != nil {
		log.Println("[ERROR] export pdf:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun data rekap")
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	// Judul
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, "REKAP ABSENSI TENDIK", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, periodLabel(filter.StartDate, filter.EndDate), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Header tabel
	widths := []float64{12, 60, 40, 35, 30, 30, 30}
	headers := []string{"No", "Nama", "Jabatan", "Tanggal", "Check-in", "Check-out", "Status"}
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for i, row := range rows {
		pdf.CellFormat(widths[0], 7, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 7, row.TendikName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, row.Position, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 7, row.Date, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], 7, row.Checkin, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[5], 7, row.Checkout, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[6], 7, row.Status, "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	// Blok tanda tangan
	now := time.Now().In(configs.AppLocation)
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, "Ponorogo, "+formatIndonesianDate(now), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 6, "Kepala Madrasah", "", 1, "R", false, 0, "")
	pdf.Ln(18)
	pdf.SetFont("Arial", "BU", 10)
	pdf.CellFormat(0, 6, ctrl.headmasterName(c), "", 1, "R", false, 0, "")

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="rekap-absensi.pdf"`)
	if err := pdf.Output(c.Response().BodyWriter()); err != nil {
		log.Println("[ERROR] tulis pdf:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat PDF")
	}
	return nil
}

// =============================
// GET /api/a/attendance/recapitulation/export/excel
// =============================
func (ctrl *AttendanceController) ExportRecapExcel(c *fiber.Ctx) error {
	filter, err := parseRecapFilter(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	recs, err := ctrl.Service.Recapitulation(c.Context(), filter)
	if err != nil {
		return attendanceError(c, err)
	}
	rows, err := ctrl.buildRecapRows(c, recs)
	if err != nil {
		log.Println("[ERROR] export excel:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun data rekap")
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Rekap"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"No", "Nama", "Jabatan", "Tanggal", "Check-in", "Check-out", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for i, row := range rows {
		values := []any{i + 1, row.TendikName, row.Position, row.Date, row.Checkin, row.Checkout, row.Status}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}
	f.SetColWidth(sheet, "B", "C", 28)

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="rekap-absensi.xlsx"`)
	if err := f.Write(c.Response().BodyWriter()); err != nil {
		log.Println("[ERROR] tulis excel:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat Excel")
	}
	return nil
}

/* =========================================
   Helpers
========================================= */

// buildRecapRows melengkapi record dengan nama & jabatan tendik
// (satu query untuk semua ID yang muncul).
func (ctrl *AttendanceController) buildRecapRows(c *fiber.Ctx, recs []model.AttendanceModel) ([]recapRow, error) {
	ids := make([]uuid.UUID, 0, len(recs))
	seen := map[uuid.UUID]bool{}
	for _, rec := range recs {
		if !seen[rec.AttendanceTendikID] {
			seen[rec.AttendanceTendikID] = true
			ids = append(ids, rec.AttendanceTendikID)
		}
	}

	names := map[uuid.UUID]tendikModel.TendikModel{}
	if len(ids) > 0 {
		var tendiks []tendikModel.TendikModel
		if err := ctrl.DB.WithContext(c.Context()).
			Where("tendik_id IN ?", ids).
			Find(&tendiks).Error; err != nil {
			return nil, err
		}
		for _, t := range tendiks {
			names[t.TendikID] = t
		}
	}

	rows := make([]recapRow, 0, len(recs))
	for _, rec := range recs {
		t := names[rec.AttendanceTendikID]
		rows = append(rows, recapRow{
			TendikName: t.TendikName,
			Position:   t.TendikPosition,
			Date:       time.Time(rec.AttendanceDate).Format("02-01-2006"),
			Checkin:    formatClock(rec.AttendanceCheckinTime),
			Checkout:   formatClock(rec.AttendanceCheckoutTime),
			Status:     rec.AttendanceStatus,
		})
	}
	return rows, nil
}

func (ctrl *AttendanceController) headmasterName(c *fiber.Ctx) string {
	var head tendikModel.TendikModel
	err := ctrl.DB.WithContext(c.Context()).
		Where("tendik_position = ?", constants.PositionKepalaMadrasah).
		First(&head).Error
	if err != nil || head.TendikName == "" {
		return "(..............................)"
	}
	return head.TendikName
}

func formatClock(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.In(configs.AppLocation).Format("15:04")
}

func periodLabel(start, end *time.Time) string {
	switch {
	case start != nil && end != nil:
		return "Periode " + formatIndonesianDate(*start) + " s.d. " + formatIndonesianDate(*end)
	case start != nil:
		return "Periode mulai " + formatIndonesianDate(*start)
	case end != nil:
		return "Periode sampai " + formatIndonesianDate(*end)
	default:
		return "Seluruh periode"
	}
}
