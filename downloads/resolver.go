// Package downloads selects among the possible sources of a downloadable
// item and records accesses. Source selection never mutates anything;
// Record commits the counter increment and the tracking row in one
// transaction.
package downloads

import (
	"net/http"
	"os"
	"path/filepath"

	"folio/models"
)

type OutcomeKind int

const (
	KindRedirect OutcomeKind = iota
	KindServeFile
	KindRejected
)

// Rejection reasons
const (
	ReasonUnavailable     = "unavailable"
	ReasonPaymentRequired = "payment_required"
	ReasonFileMissing     = "file_missing"
	ReasonNoSource        = "no_source"
)

// Outcome is the result of resolving a download request
type Outcome struct {
	Kind   OutcomeKind
	URL    string // set for KindRedirect
	Path   string // absolute path on disk, set for KindServeFile
	Reason string // set for KindRejected
}

func redirect(url string) Outcome { return Outcome{Kind: KindRedirect, URL: url} }

func serve(path string) Outcome { return Outcome{Kind: KindServeFile, Path: path} }

func rejected(reason string) Outcome { return Outcome{Kind: KindRejected, Reason: reason} }

// localFile verifies the stored relative path exists under the static root
func localFile(staticRoot, relPath string) Outcome {
	full := filepath.Join(staticRoot, relPath)
	if _, err := os.Stat(full); err != nil {
		return rejected(ReasonFileMissing)
	}
	return serve(full)
}

// ResolveProject picks a download source for a project.
// Priority: GitHub > Google Drive > uploaded file.
func ResolveProject(project *models.Project, staticRoot string) Outcome {
	if !project.IsActive {
		return rejected(ReasonUnavailable)
	}
	if project.GithubLink != "" {
		return redirect(project.GithubLink)
	}
	if project.GoogleDriveLink != "" {
		return redirect(project.GoogleDriveLink)
	}
	if project.FilePath == "" {
		return rejected(ReasonNoSource)
	}
	return localFile(staticRoot, project.FilePath)
}

// RejectionResponse maps a rejection reason to an HTTP status and a
// user-facing message
func RejectionResponse(reason string) (int, string) {
	switch reason {
	case ReasonUnavailable:
		return http.StatusNotFound, "This item is not available for download."
	case ReasonPaymentRequired:
		return http.StatusPaymentRequired, "This is a paid study material. Purchase functionality coming soon!"
	case ReasonFileMissing:
		return http.StatusNotFound, "File not found."
	default:
		return http.StatusNotFound, "No download link or file available for this item."
	}
}

// ResolveMaterial picks a download source for a study material.
// Paid materials are always rejected: the purchase flow is not implemented.
// Priority: external document URL > uploaded file.
func ResolveMaterial(material *models.StudyMaterial, staticRoot string) Outcome {
	if !material.IsActive {
		return rejected(ReasonUnavailable)
	}
	if material.MaterialType != models.MaterialFree {
		return rejected(ReasonPaymentRequired)
	}
	if material.DocURL != "" {
		return redirect(material.DocURL)
	}
	if material.FilePath == "" {
		return rejected(ReasonNoSource)
	}
	return localFile(staticRoot, material.FilePath)
}
