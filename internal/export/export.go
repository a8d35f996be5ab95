// Package export writes meals to CSV or XLSX, one row per meal.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/idilsaglam/mealdb/internal/model"
	"github.com/idilsaglam/mealdb/internal/render"
)

const sheetName = "Recipes"

// ErrUnsupportedFormat is returned for paths not ending in .csv or .xlsx.
var ErrUnsupportedFormat = errors.New("out must end with .csv or .xlsx")

var header = []string{
	"id", "name", "category", "area", "ingredients", "instructions", "video", "thumbnail",
}

// Write picks the format from the path extension.
func Write(path string, meals []model.Meal) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return WriteCSV(path, meals)
	case ".xlsx":
		return WriteXLSX(path, meals)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

func WriteCSV(path string, meals []model.Meal) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, m := range meals {
		if err := w.Write(record(m)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func WriteXLSX(path string, meals []model.Meal) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("sheet: %w", err)
	}
	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return fmt.Errorf("stream writer: %w", err)
	}
	if err := sw.SetRow("A1", cells(header)); err != nil {
		return err
	}
	for i, m := range meals {
		addr, _ := excelize.CoordinatesToCellName(1, i+2) // A2, A3, ...
		if err := sw.SetRow(addr, cells(record(m))); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	return f.SaveAs(path)
}

func record(m model.Meal) []string {
	return []string{
		m.ID, m.Name, m.Category, m.Area,
		ingredientList(m), m.Instructions, m.Video, m.Thumbnail,
	}
}

func ingredientList(m model.Meal) string {
	items := render.Ingredients(m)
	parts := make([]string, 0, len(items))
	for _, in := range items {
		p := strings.TrimSpace(in.Name)
		if ms := strings.TrimSpace(in.Measure); ms != "" {
			p = ms + " " + p
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, "; ")
}

func cells(row []string) []interface{} {
	out := make([]interface{}, len(row))
	for i, s := range row {
		out[i] = s
	}
	return out
}
