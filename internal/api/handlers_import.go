package api

import (
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/ARR-GOD/vip-tiers-calculator/internal/ingest"
)

// ImportCustomers parses an uploaded customer file. Accepts either a
// multipart form with a "file" field or a raw CSV body. Parse failures
// are the one user-facing error in the system: the merchant must be
// told their upload was not understood.
func (h *Handlers) ImportCustomers(w http.ResponseWriter, r *http.Request) {
	maxBytes := int64(h.engineCfg.MaxUploadSizeMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	var reader io.Reader = r.Body
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, _, err := r.FormFile("file")
		if err != nil {
			respondError(w, http.StatusBadRequest, "missing file field: "+err.Error())
			return
		}
		defer file.Close()
		reader = file
	}

	result, err := ingest.ParseCustomers(reader)
	if err != nil {
		log.Printf("ERROR: customer import failed: %v", err)
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if len(result.Customers) > h.engineCfg.MaxCustomerRows {
		respondError(w, http.StatusRequestEntityTooLarge, "file exceeds the configured row limit")
		return
	}

	respondJSON(w, http.StatusOK, result)
}
