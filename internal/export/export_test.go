package export

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/idilsaglam/mealdb/internal/model"
)

func sampleMeals() []model.Meal {
	m := model.Meal{
		ID: "52772", Name: "Teriyaki Chicken Casserole", Category: "Chicken", Area: "Japanese",
		Instructions: "Preheat oven to 350.\nCombine soy sauce.",
	}
	m.Ingredients[0], m.Measures[0] = "soy sauce", "3/4 cup"
	m.Ingredients[1], m.Measures[1] = "water", ""
	m.Ingredients[4] = "  "
	return []model.Meal{m, {ID: "1", Name: "Plain"}}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, Write(path, sampleMeals()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, header, rows[0])
	assert.Equal(t, "52772", rows[1][0])
	assert.Equal(t, "3/4 cup soy sauce; water", rows[1][4])
	assert.Equal(t, "Preheat oven to 350.\nCombine soy sauce.", rows[1][5])
	assert.Equal(t, "", rows[2][4])
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.XLSX")
	require.NoError(t, Write(path, sampleMeals()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "ingredients", rows[0][4])
	assert.Equal(t, "Teriyaki Chicken Casserole", rows[1][1])
	assert.Equal(t, "3/4 cup soy sauce; water", rows[1][4])
}

func TestWriteUnsupported(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "out.json"), sampleMeals())
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}
