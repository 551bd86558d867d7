// Package cli implements the interactive Talentum client. It wires the HTTP
// adapter and the session store into a REPL whose command surface depends on
// the session state and the caller's role.
package cli

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/talentumplus/talentum/internal/client/api"
	"github.com/talentumplus/talentum/internal/client/config"
	"github.com/talentumplus/talentum/internal/client/models"
	"github.com/talentumplus/talentum/internal/client/session"
)

// backendAPI is the slice of the HTTP client the CLI commands need beyond
// authentication. Tests substitute a stub.
type backendAPI interface {
	ListCourses(ctx context.Context, categoria, nivel string) ([]*models.Course, error)
	Enroll(ctx context.Context, cursoCodigo string) (*models.Enrollment, error)
	MyEnrollments(ctx context.Context) ([]*models.Enrollment, error)
	UpdateProgress(ctx context.Context, enrollmentID string, progreso float64) (*models.Enrollment, error)
	TakeExam(ctx context.Context, enrollmentID string) (*models.Enrollment, error)
	ListOffers(ctx context.Context, estado, skill string) ([]*models.Offer, error)
	Apply(ctx context.Context, ofertaID string) (*models.Application, error)
	MyApplications(ctx context.Context) ([]*models.Application, error)
	Contacts(ctx context.Context, email string) ([]*models.Contact, error)
	SendRequest(ctx context.Context, destinatario, mensaje string) (*models.ConnectionRequest, error)
	PendingRequests(ctx context.Context) ([]*models.ConnectionRequest, error)
	RespondRequest(ctx context.Context, id, accion string) (*models.ConnectionRequest, error)
	SearchUsers(ctx context.Context, query string, limit int) ([]*models.User, error)
}

type App struct {
	config      *config.Config
	session     *session.Store
	guard       *session.Guard
	api         backendAPI
	reader      *bufio.Reader
	currentView string
}

func NewApp(c *config.Config) (*App, error) {

	tokenFile := c.TokenFile
	if tokenFile == "" {
		path, err := session.DefaultTokenFile()
		if err != nil {
			return nil, err
		}
		tokenFile = path
	}
	tokens := session.NewFileTokenStore(tokenFile)

	app := &App{config: c, reader: bufio.NewReader(os.Stdin), currentView: models.ViewLogin}

	client := api.NewClient(c, tokens, app)
	app.api = client
	app.session = session.NewStore(tokens, client, app)
	app.guard = session.NewGuard(app.session)

	return app, nil
}

// CurrentView and Navigate make the App the navigation target for the HTTP
// adapter and the session store.
func (a *App) CurrentView() string { return a.currentView }

func (a *App) Navigate(view string) {
	if a.currentView != view {
		a.currentView = view
		log.Printf("Switched to %s view\n", view)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// requireRole runs the route guard for a command. On denial it reports the
// refusal and navigates to the guard's redirect view.
func (a *App) requireRole(rol string) bool {
	d := a.guard.Check(rol)
	if !d.Allowed {
		printlnFn("Access denied")
		a.Navigate(d.Redirect)
		return false
	}
	return true
}

func (a *App) getStatus() string {
	user := a.session.User()
	if user == nil {
		return ""
	}
	return "(" + user.Email + " " + user.Rol + ")"
}

func (a *App) Run(ctx context.Context) {

	// A token left from a previous run is only trusted after verification.
	if err := a.session.Init(ctx); err != nil {
		log.Printf("Stored session is no longer valid: %s\n", err.Error())
	}
	if a.session.IsAuthenticated() {
		log.Printf("Welcome back, %s!\n", a.session.User().Nombre)
		a.Navigate(models.ViewDashboard)
	}

	log.Println("Welcome to Talentum CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	runREPL(ctx, a, a.getStatus, scanner)
}
