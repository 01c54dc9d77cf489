package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportPersonasExcel builds a workbook with the full registry: one row per
// person with computed age, catalogs resolved, visit count and last visit.
// The caller owns the returned file and must Close it.
func ExportPersonasExcel(db *gorm.DB) (*excelize.File, error) {
	resumen, err := GetPersonasConResumen(db, 0, 100000)
	if err != nil {
		return nil, fmt.Errorf("failed to build registry summary: %w", err)
	}

	f := excelize.NewFile()
	sheet := "Registro"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "RUT", "Nombre Completo", "Edad", "Género", "Macrosector", "Total Atenciones", "Última Atención"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "H1", headerStyle)
	f.SetColWidth(sheet, "B", "C", 25)
	f.SetColWidth(sheet, "E", "H", 18)

	for i, r := range resumen {
		row := i + 2
		ultima := ""
		if r.UltimaAtencion != nil {
			ultima = r.UltimaAtencion.Format("2006-01-02")
		}
		values := []interface{}{r.ID, r.Rut, r.NombreCompleto, r.Edad, r.Genero, r.Macrosector, r.TotalAtenciones, ultima}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return f, nil
}
