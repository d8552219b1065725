package itinerary

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"voyago/db"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// qrPayload returns itineraryID|userID|timestamp|signature so a printed plan
// can be verified against the issuing server.
func (h *Handler) qrPayload(itineraryID, userID string) string {
	data := fmt.Sprintf("%s|%s|%d", itineraryID, userID, time.Now().Unix())
	mac := hmac.New(sha256.New, h.secret)
	mac.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return fmt.Sprintf("%s|%s", data, sig)
}

// GET /api/itineraries/:id/pdf
func (h *Handler) ExportPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	it, err := db.Itineraries.FindByID(ctx, ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Itinerary not found")
		return
	}

	if it.UserID != userID {
		utils.RespondWithError(w, http.StatusUnauthorized, "You do not have permission to view this itinerary")
		return
	}

	pkg, _ := db.Packages.FindByID(ctx, it.PackageID)

	qrPNG, err := qrcode.Encode(h.qrPayload(it.ItineraryID, userID), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Travel Itinerary")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	if pkg != nil {
		pdf.Cell(0, 10, fmt.Sprintf("Package: %s (%s)", pkg.Name, pkg.Category))
		pdf.Ln(8)
	}
	pdf.Cell(0, 10, fmt.Sprintf("Dates: %s - %s",
		it.StartDate.Format("2006-01-02"), it.EndDate.Format("2006-01-02")))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Status: %s", it.Status))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Total price: %.2f", it.TotalPrice))
	pdf.Ln(12)

	if len(it.Activities) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 10, "Scheduled activities")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 11)
		for _, a := range it.Activities {
			line := a.Activity
			if a.ScheduledTime != nil {
				line = fmt.Sprintf("%s - %s", a.ScheduledTime.Format("2006-01-02 15:04"), line)
			}
			if a.Notes != "" {
				line = fmt.Sprintf("%s (%s)", line, a.Notes)
			}
			pdf.Cell(0, 8, line)
			pdf.Ln(6)
		}
		pdf.Ln(6)
	}

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=itinerary-"+it.ItineraryID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
