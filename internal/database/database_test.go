package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grihaplan/server/internal/catalog"
	"grihaplan/server/internal/layout"
	"grihaplan/server/internal/models"
	"grihaplan/server/internal/project"
	"grihaplan/server/internal/regulation"
)

func testDB(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSaveAndLoadProject(t *testing.T) {
	db := testDB(t)

	p := project.Project{
		Name:          "Anna Nagar Towers",
		City:          regulation.Chennai,
		UsePremiumFSI: true,
		UnitMix:       layout.UnitMix{catalog.BHK2: 60, catalog.BHK3: 40},
		Buildings: []*models.Building{
			{ID: "b1", FootprintSqm: 400, Floors: 6, FloorHeightM: 3},
		},
	}
	require.NoError(t, db.SaveProject(p))

	loaded, err := db.LoadProject("Anna Nagar Towers")
	require.NoError(t, err)
	assert.Equal(t, regulation.Chennai, loaded.City)
	assert.True(t, loaded.UsePremiumFSI)
	assert.Equal(t, 60.0, loaded.UnitMix[catalog.BHK2])
	require.Len(t, loaded.Buildings, 1)
	assert.Equal(t, 6, loaded.Buildings[0].Floors)
}

func TestSaveProject_UpsertsByName(t *testing.T) {
	db := testDB(t)

	p := project.Project{Name: "Site A", City: regulation.Chennai}
	require.NoError(t, db.SaveProject(p))

	p.City = regulation.Coimbatore
	require.NoError(t, db.SaveProject(p))

	loaded, err := db.LoadProject("Site A")
	require.NoError(t, err)
	assert.Equal(t, regulation.Coimbatore, loaded.City)

	names, err := db.ListProjects()
	require.NoError(t, err)
	assert.Len(t, names, 1)
}

func TestLoadProject_NotFound(t *testing.T) {
	db := testDB(t)
	_, err := db.LoadProject("missing")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestDeleteProject(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.SaveProject(project.Project{Name: "Doomed", City: regulation.Chennai}))

	require.NoError(t, db.DeleteProject("Doomed"))
	assert.ErrorIs(t, db.DeleteProject("Doomed"), ErrProjectNotFound)

	_, err := db.LoadProject("Doomed")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}
