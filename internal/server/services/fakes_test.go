package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/talentumplus/talentum/internal/common"
	"github.com/talentumplus/talentum/internal/dbx"
	"github.com/talentumplus/talentum/internal/server/models"
	applicationsrepo "github.com/talentumplus/talentum/internal/server/repositories/applications"
	connectionsrepo "github.com/talentumplus/talentum/internal/server/repositories/connections"
	coursesrepo "github.com/talentumplus/talentum/internal/server/repositories/courses"
	enrollmentsrepo "github.com/talentumplus/talentum/internal/server/repositories/enrollments"
	offersrepo "github.com/talentumplus/talentum/internal/server/repositories/offers"
	processesrepo "github.com/talentumplus/talentum/internal/server/repositories/processes"
	profilesrepo "github.com/talentumplus/talentum/internal/server/repositories/profiles"
	usersrepo "github.com/talentumplus/talentum/internal/server/repositories/users"
)

// In-memory repository fakes. The fake repo manager hands them out no matter
// which DBTX is passed in, so transactional service code paths work against
// a plain sqlmock connection with ExpectBegin/ExpectCommit.

type fakeUsersRepo struct {
	users map[string]*models.User

	// mirrors the search anti-join on solicitudes_conexion
	connections *fakeConnectionsRepo
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{users: make(map[string]*models.User)}
}

func (f *fakeUsersRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if _, ok := f.users[user.Email]; ok {
		return nil, common.ErrorEmailTaken
	}
	user.CreatedAt = time.Now()
	f.users[user.Email] = user
	return user, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return user, nil
}

func (f *fakeUsersRepo) Search(ctx context.Context, query, excludeEmail string, limit int) ([]*models.User, error) {
	var result []*models.User
	for _, u := range f.users {
		if u.Email == excludeEmail || f.hasRequestWith(excludeEmail, u.Email) {
			continue
		}
		if strings.Contains(u.Email, query) || strings.Contains(u.Nombre, query) {
			result = append(result, u)
		}
		if len(result) == limit {
			break
		}
	}
	return result, nil
}

func (f *fakeUsersRepo) hasRequestWith(a, b string) bool {
	if f.connections == nil {
		return false
	}
	_, err := f.connections.FindBetween(context.Background(), a, b,
		models.RequestPending, models.RequestAccepted)
	return err == nil
}

type fakeProfilesRepo struct {
	profiles map[string]*models.Profile
}

func newFakeProfilesRepo() *fakeProfilesRepo {
	return &fakeProfilesRepo{profiles: make(map[string]*models.Profile)}
}

func (f *fakeProfilesRepo) Get(ctx context.Context, email string) (*models.Profile, error) {
	p, ok := f.profiles[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *p
	cp.Skills = append([]string(nil), p.Skills...)
	return &cp, nil
}

func (f *fakeProfilesRepo) Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	profile.UpdatedAt = time.Now()
	cp := *profile
	f.profiles[profile.Email] = &cp
	return profile, nil
}

func (f *fakeProfilesRepo) List(ctx context.Context, skill, seniority string, limit int) ([]*models.Profile, error) {
	var result []*models.Profile
	for _, p := range f.profiles {
		if seniority != "" && (p.Seniority == nil || *p.Seniority != seniority) {
			continue
		}
		if skill != "" {
			found := false
			for _, s := range p.Skills {
				if s == skill {
					found = true
				}
			}
			if !found {
				continue
			}
		}
		result = append(result, p)
		if len(result) == limit {
			break
		}
	}
	return result, nil
}

type fakeCoursesRepo struct {
	courses map[string]*models.Course
}

func newFakeCoursesRepo() *fakeCoursesRepo {
	return &fakeCoursesRepo{courses: make(map[string]*models.Course)}
}

func (f *fakeCoursesRepo) Create(ctx context.Context, course *models.Course) (*models.Course, error) {
	if _, ok := f.courses[course.Codigo]; ok {
		return nil, common.ErrorAlreadyExists
	}
	f.courses[course.Codigo] = course
	return course, nil
}

func (f *fakeCoursesRepo) GetByCode(ctx context.Context, codigo string) (*models.Course, error) {
	c, ok := f.courses[codigo]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return c, nil
}

func (f *fakeCoursesRepo) List(ctx context.Context, categoria, nivel string) ([]*models.Course, error) {
	var result []*models.Course
	for _, c := range f.courses {
		if categoria != "" && c.Categoria != categoria {
			continue
		}
		if nivel != "" && c.Nivel != nivel {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}

type fakeEnrollmentsRepo struct {
	seq         int
	enrollments map[string]*models.Enrollment
	courses     *fakeCoursesRepo
}

func newFakeEnrollmentsRepo(courses *fakeCoursesRepo) *fakeEnrollmentsRepo {
	return &fakeEnrollmentsRepo{
		enrollments: make(map[string]*models.Enrollment),
		courses:     courses,
	}
}

func (f *fakeEnrollmentsRepo) Create(ctx context.Context, e *models.Enrollment) (*models.Enrollment, error) {
	for _, existing := range f.enrollments {
		if existing.CandidatoEmail == e.CandidatoEmail && existing.CursoCodigo == e.CursoCodigo {
			return nil, common.ErrorAlreadyEnrolled
		}
	}
	f.seq++
	e.ID = fmt.Sprintf("ins-%d", f.seq)
	e.FechaInscripcion = time.Now()
	cp := *e
	f.enrollments[e.ID] = &cp
	return e, nil
}

func (f *fakeEnrollmentsRepo) GetByID(ctx context.Context, id string) (*models.Enrollment, error) {
	e, ok := f.enrollments[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEnrollmentsRepo) Update(ctx context.Context, e *models.Enrollment) error {
	if _, ok := f.enrollments[e.ID]; !ok {
		return common.ErrorNotFound
	}
	cp := *e
	cp.Curso = nil
	f.enrollments[e.ID] = &cp
	return nil
}

func (f *fakeEnrollmentsRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.enrollments[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.enrollments, id)
	return nil
}

func (f *fakeEnrollmentsRepo) ListByCandidate(ctx context.Context, candidatoEmail string) ([]*models.Enrollment, error) {
	var result []*models.Enrollment
	for _, e := range f.enrollments {
		if e.CandidatoEmail != candidatoEmail {
			continue
		}
		cp := *e
		if f.courses != nil {
			cp.Curso = f.courses.courses[e.CursoCodigo]
		}
		result = append(result, &cp)
	}
	return result, nil
}

type fakeOffersRepo struct {
	seq    int
	offers map[string]*models.Offer
}

func newFakeOffersRepo() *fakeOffersRepo {
	return &fakeOffersRepo{offers: make(map[string]*models.Offer)}
}

func (f *fakeOffersRepo) Create(ctx context.Context, offer *models.Offer) (*models.Offer, error) {
	f.seq++
	offer.ID = fmt.Sprintf("of-%d", f.seq)
	offer.FechaPublicacion = time.Now()
	cp := *offer
	f.offers[offer.ID] = &cp
	return offer, nil
}

func (f *fakeOffersRepo) GetByID(ctx context.Context, id string) (*models.Offer, error) {
	o, ok := f.offers[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOffersRepo) Update(ctx context.Context, offer *models.Offer) error {
	if _, ok := f.offers[offer.ID]; !ok {
		return common.ErrorNotFound
	}
	cp := *offer
	f.offers[offer.ID] = &cp
	return nil
}

func (f *fakeOffersRepo) List(ctx context.Context, filter offersrepo.ListFilter) ([]*models.Offer, error) {
	var result []*models.Offer
	for _, o := range f.offers {
		if filter.Estado != "" && o.Estado != filter.Estado {
			continue
		}
		if filter.EmpresaEmail != "" && o.EmpresaEmail != filter.EmpresaEmail {
			continue
		}
		if filter.Modalidad != "" && o.Modalidad != filter.Modalidad {
			continue
		}
		if filter.Ubicacion != "" && o.Ubicacion != filter.Ubicacion {
			continue
		}
		result = append(result, o)
	}
	return result, nil
}

type fakeApplicationsRepo struct {
	seq          int
	applications map[string]*models.Application
	offers       *fakeOffersRepo
}

func newFakeApplicationsRepo(offers *fakeOffersRepo) *fakeApplicationsRepo {
	return &fakeApplicationsRepo{
		applications: make(map[string]*models.Application),
		offers:       offers,
	}
}

func (f *fakeApplicationsRepo) Create(ctx context.Context, a *models.Application) (*models.Application, error) {
	for _, existing := range f.applications {
		if existing.CandidatoEmail == a.CandidatoEmail && existing.OfertaID == a.OfertaID {
			return nil, common.ErrorAlreadyApplied
		}
	}
	f.seq++
	a.ID = fmt.Sprintf("ap-%d", f.seq)
	a.FechaAplicacion = time.Now()
	cp := *a
	f.applications[a.ID] = &cp
	return a, nil
}

func (f *fakeApplicationsRepo) GetByID(ctx context.Context, id string) (*models.Application, error) {
	a, ok := f.applications[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeApplicationsRepo) UpdateEstado(ctx context.Context, id, estado string) error {
	a, ok := f.applications[id]
	if !ok {
		return common.ErrorNotFound
	}
	a.Estado = estado
	return nil
}

func (f *fakeApplicationsRepo) ListByCandidate(ctx context.Context, candidatoEmail string) ([]*models.Application, error) {
	var result []*models.Application
	for _, a := range f.applications {
		if a.CandidatoEmail != candidatoEmail {
			continue
		}
		cp := *a
		if f.offers != nil {
			cp.Oferta = f.offers.offers[a.OfertaID]
		}
		result = append(result, &cp)
	}
	return result, nil
}

func (f *fakeApplicationsRepo) ListByOffer(ctx context.Context, ofertaID string) ([]*models.Application, error) {
	var result []*models.Application
	for _, a := range f.applications {
		if a.OfertaID == ofertaID {
			result = append(result, a)
		}
	}
	return result, nil
}

type fakeProcessesRepo struct {
	seq         int
	processes   map[string]*models.Process
	interviews  map[string]*models.Interview
	evaluations map[string]*models.Evaluation
}

func newFakeProcessesRepo() *fakeProcessesRepo {
	return &fakeProcessesRepo{
		processes:   make(map[string]*models.Process),
		interviews:  make(map[string]*models.Interview),
		evaluations: make(map[string]*models.Evaluation),
	}
}

func (f *fakeProcessesRepo) Create(ctx context.Context, p *models.Process) (*models.Process, error) {
	f.seq++
	p.ID = fmt.Sprintf("pr-%d", f.seq)
	p.UpdatedAt = time.Now()
	cp := *p
	f.processes[p.ID] = &cp
	return p, nil
}

func (f *fakeProcessesRepo) GetByID(ctx context.Context, id string) (*models.Process, error) {
	p, ok := f.processes[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProcessesRepo) Update(ctx context.Context, p *models.Process) error {
	if _, ok := f.processes[p.ID]; !ok {
		return common.ErrorNotFound
	}
	cp := *p
	f.processes[p.ID] = &cp
	return nil
}

func (f *fakeProcessesRepo) ListAll(ctx context.Context) ([]*models.Process, error) {
	var result []*models.Process
	for _, p := range f.processes {
		cp := *p
		result = append(result, &cp)
	}
	return result, nil
}

func (f *fakeProcessesRepo) ListByCandidate(ctx context.Context, email string) ([]*models.Process, error) {
	var result []*models.Process
	for _, p := range f.processes {
		if p.CandidatoEmail == email {
			cp := *p
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (f *fakeProcessesRepo) CreateInterview(ctx context.Context, iv *models.Interview) (*models.Interview, error) {
	f.seq++
	iv.ID = fmt.Sprintf("iv-%d", f.seq)
	cp := *iv
	f.interviews[iv.ID] = &cp
	return iv, nil
}

func (f *fakeProcessesRepo) GetInterview(ctx context.Context, id string) (*models.Interview, error) {
	iv, ok := f.interviews[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *iv
	return &cp, nil
}

func (f *fakeProcessesRepo) UpdateInterview(ctx context.Context, iv *models.Interview) error {
	if _, ok := f.interviews[iv.ID]; !ok {
		return common.ErrorNotFound
	}
	cp := *iv
	f.interviews[iv.ID] = &cp
	return nil
}

func (f *fakeProcessesRepo) ListInterviewsByProcess(ctx context.Context, procesoID string) ([]*models.Interview, error) {
	var result []*models.Interview
	for _, iv := range f.interviews {
		if iv.ProcesoID == procesoID {
			result = append(result, iv)
		}
	}
	return result, nil
}

func (f *fakeProcessesRepo) ListInterviewsByCandidate(ctx context.Context, email string) ([]*models.Interview, error) {
	var result []*models.Interview
	for _, iv := range f.interviews {
		p, ok := f.processes[iv.ProcesoID]
		if ok && p.CandidatoEmail == email {
			cp := *iv
			cp.Puesto = p.Puesto
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (f *fakeProcessesRepo) CreateEvaluation(ctx context.Context, ev *models.Evaluation) (*models.Evaluation, error) {
	f.seq++
	ev.ID = fmt.Sprintf("ev-%d", f.seq)
	cp := *ev
	f.evaluations[ev.ID] = &cp
	return ev, nil
}

func (f *fakeProcessesRepo) GetEvaluation(ctx context.Context, id string) (*models.Evaluation, error) {
	ev, ok := f.evaluations[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *ev
	return &cp, nil
}

func (f *fakeProcessesRepo) UpdateEvaluation(ctx context.Context, ev *models.Evaluation) error {
	if _, ok := f.evaluations[ev.ID]; !ok {
		return common.ErrorNotFound
	}
	cp := *ev
	f.evaluations[ev.ID] = &cp
	return nil
}

func (f *fakeProcessesRepo) ListEvaluationsByProcess(ctx context.Context, procesoID string) ([]*models.Evaluation, error) {
	var result []*models.Evaluation
	for _, ev := range f.evaluations {
		if ev.ProcesoID == procesoID {
			result = append(result, ev)
		}
	}
	return result, nil
}

func (f *fakeProcessesRepo) ListEvaluationsByCandidate(ctx context.Context, email string) ([]*models.Evaluation, error) {
	var result []*models.Evaluation
	for _, ev := range f.evaluations {
		p, ok := f.processes[ev.ProcesoID]
		if ok && p.CandidatoEmail == email {
			cp := *ev
			cp.Puesto = p.Puesto
			result = append(result, &cp)
		}
	}
	return result, nil
}

type fakeConnectionsRepo struct {
	seq      int
	requests map[string]*models.ConnectionRequest
	users    *fakeUsersRepo
}

func newFakeConnectionsRepo(users *fakeUsersRepo) *fakeConnectionsRepo {
	return &fakeConnectionsRepo{
		requests: make(map[string]*models.ConnectionRequest),
		users:    users,
	}
}

func (f *fakeConnectionsRepo) Create(ctx context.Context, r *models.ConnectionRequest) (*models.ConnectionRequest, error) {
	f.seq++
	r.ID = fmt.Sprintf("rq-%d", f.seq)
	r.FechaSolicitud = time.Now()
	cp := *r
	f.requests[r.ID] = &cp
	return r, nil
}

func (f *fakeConnectionsRepo) GetByID(ctx context.Context, id string) (*models.ConnectionRequest, error) {
	r, ok := f.requests[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeConnectionsRepo) UpdateEstado(ctx context.Context, id, estado string) error {
	r, ok := f.requests[id]
	if !ok {
		return common.ErrorNotFound
	}
	r.Estado = estado
	return nil
}

func (f *fakeConnectionsRepo) FindBetween(ctx context.Context, a, b string, estados ...string) (*models.ConnectionRequest, error) {
	for _, r := range f.requests {
		direct := r.RemitenteEmail == a && r.DestinatarioEmail == b
		reverse := r.RemitenteEmail == b && r.DestinatarioEmail == a
		if !direct && !reverse {
			continue
		}
		for _, estado := range estados {
			if r.Estado == estado {
				cp := *r
				return &cp, nil
			}
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeConnectionsRepo) ListReceived(ctx context.Context, email, estado string) ([]*models.ConnectionRequest, error) {
	var result []*models.ConnectionRequest
	for _, r := range f.requests {
		if r.DestinatarioEmail == email && (estado == "" || r.Estado == estado) {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeConnectionsRepo) ListSent(ctx context.Context, email, estado string) ([]*models.ConnectionRequest, error) {
	var result []*models.ConnectionRequest
	for _, r := range f.requests {
		if r.RemitenteEmail == email && (estado == "" || r.Estado == estado) {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeConnectionsRepo) ListContacts(ctx context.Context, email string) ([]*models.Contact, error) {
	var result []*models.Contact
	for _, r := range f.requests {
		if r.Estado != models.RequestAccepted {
			continue
		}
		var other string
		switch email {
		case r.RemitenteEmail:
			other = r.DestinatarioEmail
		case r.DestinatarioEmail:
			other = r.RemitenteEmail
		default:
			continue
		}
		contact := &models.Contact{Email: other, FechaConexion: r.FechaSolicitud}
		if f.users != nil {
			if u, ok := f.users.users[other]; ok {
				contact.Nombre = u.Nombre
				contact.Rol = u.Rol
			}
		}
		result = append(result, contact)
	}
	return result, nil
}

type fakeRepoManager struct {
	users        *fakeUsersRepo
	profiles     *fakeProfilesRepo
	courses      *fakeCoursesRepo
	enrollments  *fakeEnrollmentsRepo
	offers       *fakeOffersRepo
	applications *fakeApplicationsRepo
	processes    *fakeProcessesRepo
	connections  *fakeConnectionsRepo
}

func newFakeRepoManager() *fakeRepoManager {
	users := newFakeUsersRepo()
	courses := newFakeCoursesRepo()
	offers := newFakeOffersRepo()
	connections := newFakeConnectionsRepo(users)
	users.connections = connections
	return &fakeRepoManager{
		users:        users,
		profiles:     newFakeProfilesRepo(),
		courses:      courses,
		enrollments:  newFakeEnrollmentsRepo(courses),
		offers:       offers,
		applications: newFakeApplicationsRepo(offers),
		processes:    newFakeProcessesRepo(),
		connections:  connections,
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) usersrepo.Repository          { return m.users }
func (m *fakeRepoManager) Profiles(dbx.DBTX) profilesrepo.Repository    { return m.profiles }
func (m *fakeRepoManager) Courses(dbx.DBTX) coursesrepo.Repository      { return m.courses }
func (m *fakeRepoManager) Enrollments(dbx.DBTX) enrollmentsrepo.Repository {
	return m.enrollments
}
func (m *fakeRepoManager) Offers(dbx.DBTX) offersrepo.Repository { return m.offers }
func (m *fakeRepoManager) Applications(dbx.DBTX) applicationsrepo.Repository {
	return m.applications
}
func (m *fakeRepoManager) Processes(dbx.DBTX) processesrepo.Repository { return m.processes }
func (m *fakeRepoManager) Connections(dbx.DBTX) connectionsrepo.Repository {
	return m.connections
}
