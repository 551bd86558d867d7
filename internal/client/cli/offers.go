package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/talentumplus/talentum/internal/client/models"
)

// Offers lists currently open job offers.
func (a *App) Offers(ctx context.Context) error {
	if !a.requireRole("") {
		return nil
	}

	offers, err := a.api.ListOffers(ctx, "abierta", "")
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if len(offers) == 0 {
		printlnFn("No open offers")
		return nil
	}
	for _, o := range offers {
		line := fmt.Sprintf("%s  %s @ %s", o.ID, o.Titulo, o.EmpresaEmail)
		if len(o.SkillsRequeridos) > 0 {
			line += " (" + strings.Join(o.SkillsRequeridos, ", ") + ")"
		}
		printlnFn(line)
	}
	return nil
}

// Apply submits an application for an offer.
func (a *App) Apply(ctx context.Context) error {
	if !a.requireRole(models.RoleCandidato) {
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter offer id", os.Stdout)
	if err != nil {
		return err
	}

	application, err := a.api.Apply(ctx, id)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Applied, current state: %s", application.Estado))
	return nil
}

// Applications lists the candidate's applications and their states.
func (a *App) Applications(ctx context.Context) error {
	if !a.requireRole(models.RoleCandidato) {
		return nil
	}

	applications, err := a.api.MyApplications(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if len(applications) == 0 {
		printlnFn("No applications yet")
		return nil
	}
	for _, ap := range applications {
		title := ap.OfertaID
		if ap.Oferta != nil {
			title = ap.Oferta.Titulo
		}
		printlnFn(fmt.Sprintf("%s  %s: %s", ap.ID, title, ap.Estado))
	}
	return nil
}
