package downloads

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"folio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStaticFile(t *testing.T, root, relPath string) {
	t.Helper()
	full := filepath.Join(root, relPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte("content"), 0o644))
}

func TestResolveProjectPrefersGithub(t *testing.T) {
	root := t.TempDir()
	writeStaticFile(t, root, "uploads/project_files/a.zip")

	project := &models.Project{
		GithubLink:      "https://github.com/example/repo",
		GoogleDriveLink: "https://drive.google.com/file/d/abc",
		FilePath:        "uploads/project_files/a.zip",
		IsActive:        true,
	}

	outcome := ResolveProject(project, root)
	assert.Equal(t, KindRedirect, outcome.Kind)
	assert.Equal(t, "https://github.com/example/repo", outcome.URL)
}

func TestResolveProjectFallsBackToDrive(t *testing.T) {
	project := &models.Project{
		GoogleDriveLink: "https://drive.google.com/file/d/abc",
		FilePath:        "uploads/project_files/a.zip",
		IsActive:        true,
	}

	outcome := ResolveProject(project, t.TempDir())
	assert.Equal(t, KindRedirect, outcome.Kind)
	assert.Equal(t, "https://drive.google.com/file/d/abc", outcome.URL)
}

func TestResolveProjectServesLocalFile(t *testing.T) {
	root := t.TempDir()
	writeStaticFile(t, root, "uploads/project_files/a.zip")

	project := &models.Project{FilePath: "uploads/project_files/a.zip", IsActive: true}

	outcome := ResolveProject(project, root)
	assert.Equal(t, KindServeFile, outcome.Kind)
	assert.Equal(t, filepath.Join(root, "uploads/project_files/a.zip"), outcome.Path)
}

func TestResolveProjectMissingFile(t *testing.T) {
	project := &models.Project{FilePath: "uploads/project_files/gone.zip", IsActive: true}

	outcome := ResolveProject(project, t.TempDir())
	assert.Equal(t, KindRejected, outcome.Kind)
	assert.Equal(t, ReasonFileMissing, outcome.Reason)
}

func TestResolveProjectNoSource(t *testing.T) {
	project := &models.Project{IsActive: true}

	outcome := ResolveProject(project, t.TempDir())
	assert.Equal(t, KindRejected, outcome.Kind)
	assert.Equal(t, ReasonNoSource, outcome.Reason)
}

func TestResolveProjectInactive(t *testing.T) {
	project := &models.Project{GithubLink: "https://github.com/example/repo"}

	outcome := ResolveProject(project, t.TempDir())
	assert.Equal(t, KindRejected, outcome.Kind)
	assert.Equal(t, ReasonUnavailable, outcome.Reason)
}

func TestResolveMaterialPaidAlwaysRejected(t *testing.T) {
	root := t.TempDir()
	writeStaticFile(t, root, "uploads/materials/notes.pdf")

	material := &models.StudyMaterial{
		DocURL:       "https://docs.example.com/notes",
		FilePath:     "uploads/materials/notes.pdf",
		MaterialType: models.MaterialPaid,
		IsActive:     true,
	}

	outcome := ResolveMaterial(material, root)
	assert.Equal(t, KindRejected, outcome.Kind)
	assert.Equal(t, ReasonPaymentRequired, outcome.Reason)
}

func TestResolveMaterialPrefersDocURL(t *testing.T) {
	root := t.TempDir()
	writeStaticFile(t, root, "uploads/materials/notes.pdf")

	material := &models.StudyMaterial{
		DocURL:       "https://docs.example.com/notes",
		FilePath:     "uploads/materials/notes.pdf",
		MaterialType: models.MaterialFree,
		IsActive:     true,
	}

	outcome := ResolveMaterial(material, root)
	assert.Equal(t, KindRedirect, outcome.Kind)
	assert.Equal(t, "https://docs.example.com/notes", outcome.URL)
}

func TestResolveMaterialServesLocalFile(t *testing.T) {
	root := t.TempDir()
	writeStaticFile(t, root, "uploads/materials/notes.pdf")

	material := &models.StudyMaterial{
		FilePath:     "uploads/materials/notes.pdf",
		MaterialType: models.MaterialFree,
		IsActive:     true,
	}

	outcome := ResolveMaterial(material, root)
	assert.Equal(t, KindServeFile, outcome.Kind)
}

func TestResolveMaterialInactive(t *testing.T) {
	material := &models.StudyMaterial{
		DocURL:       "https://docs.example.com/notes",
		MaterialType: models.MaterialFree,
	}

	outcome := ResolveMaterial(material, t.TempDir())
	assert.Equal(t, KindRejected, outcome.Kind)
	assert.Equal(t, ReasonUnavailable, outcome.Reason)
}

func TestRejectionResponseStatuses(t *testing.T) {
	status, _ := RejectionResponse(ReasonPaymentRequired)
	assert.Equal(t, http.StatusPaymentRequired, status)

	status, _ = RejectionResponse(ReasonUnavailable)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = RejectionResponse(ReasonFileMissing)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = RejectionResponse(ReasonNoSource)
	assert.Equal(t, http.StatusNotFound, status)
}
