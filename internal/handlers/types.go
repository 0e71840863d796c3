package handlers

import (
	"time"

	"groeipaden_app/internal/catalog"
	"groeipaden_app/internal/locale"
	"groeipaden_app/internal/services"
	"groeipaden_app/internal/viewer"
)

// consultationLayout is language neutral so it reads the same in nl and en
const consultationLayout = "02-01-2006 15:04"

// Site groups what the route pages need besides the request itself
type Site struct {
	Catalog      *catalog.Catalog
	Links        viewer.Links
	Consultation *services.Consultation
	Location     *time.Location
	Now          func() time.Time
}

func (s Site) consultationText(loc *locale.Localizer) string {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	next, ok := s.Consultation.Next(now())
	if !ok {
		return ""
	}
	if s.Location != nil {
		next = next.In(s.Location)
	}
	return loc.Tf("consultation_next", "When", next.Format(consultationLayout))
}
