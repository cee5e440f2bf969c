// internal/app/features/imports/handler.go
package imports

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	uierrors "github.com/acervodigital/oedhub/internal/app/features/errors"
	"github.com/acervodigital/oedhub/internal/app/system/importer"
	"github.com/acervodigital/oedhub/internal/app/system/rowmap"
	"github.com/acervodigital/oedhub/internal/app/system/sqlitesrc"
	"github.com/acervodigital/oedhub/internal/app/system/timeouts"
	"github.com/acervodigital/oedhub/internal/app/system/xlsxsrc"
	"go.uber.org/zap"
)

// MaxUploadSize bounds workbook and database uploads (32 MB).
const MaxUploadSize = 32 << 20

// Handler owns the import endpoints. Each wraps one Runner batch: parse
// the uploaded source, run the pipeline, answer with the run summary.
type Handler struct {
	Runner *importer.Runner

	// BNCCPath is the configured legacy database location, used when
	// the request carries no upload of its own.
	BNCCPath string

	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(runner *importer.Runner, bnccPath string, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Runner:   runner,
		BNCCPath: bnccPath,
		ErrLog:   errLog,
		Log:      logger,
	}
}

// HandleImportOEDs handles POST /api/imports/oeds. The request is
// multipart with the workbook under "file".
func (h *Handler) HandleImportOEDs(w http.ResponseWriter, r *http.Request) {
	rows, ok := h.workbookRows(w, r)
	if !ok {
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Batch(), h.Log, "learning object import")
	defer cancel()

	res, err := h.Runner.ImportLearningObjects(ctx, rows)
	if err != nil {
		h.ErrLog.Internal(w, "imports: learning objects", err)
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, res)
}

// HandleImportAudiovisuals handles POST /api/imports/audiovisuals.
func (h *Handler) HandleImportAudiovisuals(w http.ResponseWriter, r *http.Request) {
	rows, ok := h.workbookRows(w, r)
	if !ok {
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Batch(), h.Log, "audiovisual import")
	defer cancel()

	res, err := h.Runner.ImportAudiovisuals(ctx, rows)
	if err != nil {
		h.ErrLog.Internal(w, "imports: audiovisuals", err)
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, res)
}

// HandleImportBNCC handles POST /api/imports/bncc. An uploaded legacy
// database (multipart "file") takes precedence over the configured path.
func (h *Handler) HandleImportBNCC(w http.ResponseWriter, r *http.Request) {
	path, cleanup, ok := h.bnccSource(w, r)
	if !ok {
		return
	}
	defer cleanup()

	skillRows, err := sqlitesrc.LoadSkills(path)
	if errors.Is(err, sqlitesrc.ErrSourceNotFound) {
		h.ErrLog.BadRequest(w, "legacy database not found")
		return
	}
	if err != nil {
		h.ErrLog.BadRequest(w, "legacy database could not be read: "+err.Error())
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Batch(), h.Log, "curriculum skill import")
	defer cancel()

	res, err := h.Runner.ImportSkills(ctx, skillRows)
	if err != nil {
		h.ErrLog.Internal(w, "imports: curriculum skills", err)
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, res)
}

// workbookRows reads the uploaded spreadsheet into source rows. Replies
// itself on failure and returns ok=false.
func (h *Handler) workbookRows(w http.ResponseWriter, r *http.Request) ([]rowmap.Row, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)

	file, _, err := r.FormFile("file")
	if err != nil {
		msg := "workbook file is required"
		if strings.Contains(err.Error(), "request body too large") {
			msg = "workbook is too large"
		}
		h.ErrLog.BadRequest(w, msg)
		return nil, false
	}
	defer file.Close()

	rows, err := xlsxsrc.Read(file)
	if err != nil {
		h.ErrLog.BadRequest(w, "workbook could not be parsed: "+err.Error())
		return nil, false
	}
	return rows, true
}

// bnccSource resolves the legacy database path for this request: the
// uploaded file spooled to disk, or the configured fallback. The cleanup
// removes any spooled copy.
func (h *Handler) bnccSource(w http.ResponseWriter, r *http.Request) (path string, cleanup func(), ok bool) {
	cleanup = func() {}

	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)

	file, _, err := r.FormFile("file")
	if err != nil {
		if h.BNCCPath == "" {
			h.ErrLog.BadRequest(w, "database file is required (no fallback path configured)")
			return "", cleanup, false
		}
		return h.BNCCPath, cleanup, true
	}
	defer file.Close()

	tmp, err := os.CreateTemp("", "bncc-*.db")
	if err != nil {
		h.ErrLog.Internal(w, "imports: spool legacy database", err)
		return "", cleanup, false
	}
	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		h.ErrLog.Internal(w, "imports: spool legacy database", err)
		return "", cleanup, false
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		h.ErrLog.Internal(w, "imports: spool legacy database", err)
		return "", cleanup, false
	}

	name := tmp.Name()
	return name, func() { os.Remove(filepath.Clean(name)) }, true
}
