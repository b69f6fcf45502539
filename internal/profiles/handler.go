package profiles

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"smartresume-backend/internal/shared/server/respond"
	"smartresume-backend/internal/shared/telemetry"
)

const maxImportBytes = 5 << 20

// RegisterRoutes mounts the profile import endpoint.
func RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/profiles/import", importDocument)
}

type importResponse struct {
	FileName string `json:"fileName"`
	Text     string `json:"text"`
}

// importDocument accepts a multipart PDF or DOCX upload and returns its
// extracted text so the client can prefill the profile form.
func importDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	if fileHeader.Size > maxImportBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file exceeds size limit", nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImportBytes+1))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return
	}
	if int64(len(data)) > maxImportBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file exceeds size limit", nil)
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	text, err := ExtractDocumentText(data, mimeType, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, ErrUnsupportedDocument) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "only PDF and DOCX files are supported", nil)
			return
		}
		telemetry.Error("profiles.import.failed", map[string]any{
			"err":        err.Error(),
			"file_name":  fileHeader.Filename,
			"mime_type":  mimeType,
			"request_id": c.GetString("requestId"),
		})
		respond.Error(c, http.StatusBadRequest, "validation_error", "failed to extract text from document", nil)
		return
	}
	if strings.TrimSpace(text) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "document contains no extractable text", nil)
		return
	}

	respond.JSON(c, http.StatusOK, importResponse{
		FileName: fileHeader.Filename,
		Text:     text,
	})
}
