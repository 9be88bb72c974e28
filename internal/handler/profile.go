package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"digital-cards/internal/dto"
	"digital-cards/internal/model"
	"digital-cards/internal/repository"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type ProfileHandler struct {
	profiles repository.ProfileRepository
}

func NewProfileHandler(profiles repository.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{
		profiles: profiles,
	}
}

func (h *ProfileHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()

	userID := c.QueryParam("userId")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "User ID is required")
	}

	profile, err := h.profiles.FindByUserID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusOK, dto.SearchResponse{
			Found:   false,
			Message: fmt.Sprintf("No digital business card found with ID: %s", strings.ToUpper(userID)),
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.SearchResponse{
			Found:   false,
			Message: "An error occurred while searching",
		})
	}

	return c.JSON(http.StatusOK, dto.SearchResponse{
		Found: true,
		Profile: &dto.CardSummary{
			UserID:   profile.UserID,
			FullName: profile.FullName,
			JobTitle: profile.JobTitle,
			Company:  profile.Company,
			Bio:      profile.Bio,
		},
		Message: fmt.Sprintf("Found card for %s", profile.FullName),
	})
}

// VCard exports a published card as a downloadable vCard 3.0 contact file.
func (h *ProfileHandler) VCard(c echo.Context) error {
	ctx := c.Request().Context()

	userID := c.Param("userId")
	profile, err := h.profiles.FindByUserID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "card not found")
	}
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, profile.FullName+".vcf"))
	return c.Blob(http.StatusOK, "text/vcard", []byte(renderVCard(profile)))
}

func renderVCard(p *model.Profile) string {
	var b strings.Builder
	write := func(field, value string) {
		if value != "" {
			b.WriteString(field + ":" + value + "\r\n")
		}
	}

	b.WriteString("BEGIN:VCARD\r\n")
	b.WriteString("VERSION:3.0\r\n")
	write("FN", p.FullName)
	write("TITLE", p.JobTitle)
	write("ORG", p.Company)
	write("EMAIL", p.Email)
	write("TEL", p.Phone)
	write("URL", p.Website)
	write("NOTE", p.Bio)
	b.WriteString("END:VCARD\r\n")
	return b.String()
}
