package cli

import (
	"context"
	"fmt"
	"os"
)

// Contacts lists the user's confirmed professional network.
func (a *App) Contacts(ctx context.Context) error {
	if !a.requireRole("") {
		return nil
	}

	contacts, err := a.api.Contacts(ctx, a.session.User().Email)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if len(contacts) == 0 {
		printlnFn("Your network is empty")
		return nil
	}
	for _, c := range contacts {
		printlnFn(fmt.Sprintf("%s <%s> [%s]", c.Nombre, c.Email, c.Rol))
	}
	return nil
}

// Invite sends a connection request to another user.
func (a *App) Invite(ctx context.Context) error {
	if !a.requireRole("") {
		return nil
	}

	destinatario, err := getSimpleText(a.reader, "Enter recipient email", os.Stdout)
	if err != nil {
		return err
	}
	mensaje, err := getSimpleText(a.reader, "Enter message (optional)", os.Stdout)
	if err != nil {
		return err
	}

	request, err := a.api.SendRequest(ctx, destinatario, mensaje)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Request %s sent to %s", request.ID, request.DestinatarioEmail))
	return nil
}

// Requests lists pending connection requests addressed to the user.
func (a *App) Requests(ctx context.Context) error {
	if !a.requireRole("") {
		return nil
	}

	requests, err := a.api.PendingRequests(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if len(requests) == 0 {
		printlnFn("No pending requests")
		return nil
	}
	for _, r := range requests {
		line := fmt.Sprintf("%s  from %s", r.ID, r.RemitenteEmail)
		if r.Mensaje != "" {
			line += ": " + r.Mensaje
		}
		printlnFn(line)
	}
	return nil
}

// Respond accepts or rejects a pending connection request.
func (a *App) Respond(ctx context.Context) error {
	if !a.requireRole("") {
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter request id", os.Stdout)
	if err != nil {
		return err
	}
	accion, err := getSimpleText(a.reader, "Enter action (aceptar/rechazar)", os.Stdout)
	if err != nil {
		return err
	}

	request, err := a.api.RespondRequest(ctx, id, accion)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Request from %s is now %s", request.RemitenteEmail, request.Estado))
	return nil
}

// Search finds users by name or email fragment.
func (a *App) Search(ctx context.Context) error {
	if !a.requireRole("") {
		return nil
	}

	query, err := getSimpleText(a.reader, "Search users by name or email", os.Stdout)
	if err != nil {
		return err
	}

	users, err := a.api.SearchUsers(ctx, query, 20)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if len(users) == 0 {
		printlnFn("Nobody found")
		return nil
	}
	for _, u := range users {
		printlnFn(fmt.Sprintf("%s <%s> [%s]", u.Nombre, u.Email, u.Rol))
	}
	return nil
}
