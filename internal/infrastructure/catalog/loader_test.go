package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutriscan/backend/internal/domain"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ingredients.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	t.Run("loads well-formed dataset", func(t *testing.T) {
		path := writeCSV(t, "Food_Ingredient,Nutrition_Score,Health_Label,Remarks,Category\n"+
			"Water,10,Healthy,Essential for hydration,Beverages\n"+
			"Sugar,2.5,Caution,Limit intake,Sweeteners\n")

		entries, err := LoadCSV(path)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		assert.Equal(t, "Water", entries[0].Name)
		assert.Equal(t, 10.0, entries[0].Score)
		assert.Equal(t, "Healthy", entries[0].Label)
		assert.Equal(t, "Essential for hydration", entries[0].Remark)
		assert.Equal(t, "Beverages", entries[0].Category)
		assert.Equal(t, 2.5, entries[1].Score)
	})

	t.Run("missing file wraps ErrDataLoad", func(t *testing.T) {
		_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDataLoad))
	})

	t.Run("missing required column wraps ErrDataLoad", func(t *testing.T) {
		path := writeCSV(t, "Food_Ingredient,Nutrition_Score,Remarks,Category\n"+
			"Water,10,Essential,Beverages\n")

		_, err := LoadCSV(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDataLoad))
		assert.Contains(t, err.Error(), "Health_Label")
	})

	t.Run("blank cells default to empty strings", func(t *testing.T) {
		path := writeCSV(t, "Food_Ingredient,Nutrition_Score,Health_Label,Remarks,Category\n"+
			"Water,,,,\n")

		entries, err := LoadCSV(path)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		assert.Equal(t, 0.0, entries[0].Score)
		assert.Equal(t, "", entries[0].Label)
		assert.Equal(t, "", entries[0].Remark)
		assert.Equal(t, "", entries[0].Category)
	})

	t.Run("short rows are padded with empty strings", func(t *testing.T) {
		path := writeCSV(t, "Food_Ingredient,Nutrition_Score,Health_Label,Remarks,Category\n"+
			"Water,10\n")

		entries, err := LoadCSV(path)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "", entries[0].Category)
	})

	t.Run("rows without an ingredient name are skipped", func(t *testing.T) {
		path := writeCSV(t, "Food_Ingredient,Nutrition_Score,Health_Label,Remarks,Category\n"+
			",5,Unknown,,\n"+
			"Water,10,Healthy,,Beverages\n")

		entries, err := LoadCSV(path)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Water", entries[0].Name)
	})

	t.Run("unparseable score defaults to zero", func(t *testing.T) {
		path := writeCSV(t, "Food_Ingredient,Nutrition_Score,Health_Label,Remarks,Category\n"+
			"Water,n/a,Healthy,,Beverages\n")

		entries, err := LoadCSV(path)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 0.0, entries[0].Score)
	})
}

func TestLoad(t *testing.T) {
	t.Run("builds a queryable catalog end to end", func(t *testing.T) {
		path := writeCSV(t, "Food_Ingredient,Nutrition_Score,Health_Label,Remarks,Category\n"+
			"Natural Cocoa Powder,6.5,Healthy,Antioxidant source,Confectionery\n")

		cat, err := Load(path)
		require.NoError(t, err)

		entry, ok := cat.Lookup("cocoa")
		require.True(t, ok)
		assert.Equal(t, "Natural Cocoa Powder", entry.Name)
	})
}
