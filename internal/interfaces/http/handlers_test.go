package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/tekup-hr/payroll-api/internal/application/auth"
	"github.com/tekup-hr/payroll-api/internal/application/usecase"
	"github.com/tekup-hr/payroll-api/internal/domain"
	"github.com/tekup-hr/payroll-api/internal/domain/entity"
	apphttp "github.com/tekup-hr/payroll-api/internal/interfaces/http"
	pkgjwt "github.com/tekup-hr/payroll-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "payroll-api-test"
	testExpMin    = 60
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	users []*entity.User
	err   error // si se fija, todas las operaciones fallan
}

func (r *memUserRepo) Create(u *entity.User) error {
	if r.err != nil {
		return r.err
	}
	for _, e := range r.users {
		if e.Email == u.Email {
			return domain.ErrUserAlreadyExists
		}
	}
	cp := *u
	r.users = append(r.users, &cp)
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(u *entity.User) error {
	if r.err != nil {
		return r.err
	}
	for i, e := range r.users {
		if e.ID == u.ID {
			cp := *u
			r.users[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *memUserRepo) List() ([]*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.users, nil
}

func (r *memUserRepo) ListByRoles(roles []string, onlyVerified bool) ([]*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	var list []*entity.User
	for _, u := range r.users {
		if onlyVerified && !u.IsVerified {
			continue
		}
		for _, role := range roles {
			if u.Role == role {
				list = append(list, u)
				break
			}
		}
	}
	return list, nil
}

type memPaymentRepo struct {
	payments []*entity.Payment
}

func (r *memPaymentRepo) Create(p *entity.Payment) error {
	for _, e := range r.payments {
		if e.EmployeeID == p.EmployeeID && e.PaidFor == p.PaidFor && e.Year == p.Year {
			return domain.ErrPaymentExists
		}
	}
	cp := *p
	r.payments = append(r.payments, &cp)
	return nil
}

func (r *memPaymentRepo) GetByPeriod(employeeID string, paidFor, year int) (*entity.Payment, error) {
	for _, p := range r.payments {
		if p.EmployeeID == employeeID && p.PaidFor == paidFor && p.Year == year {
			return p, nil
		}
	}
	return nil, nil
}

// sorted devuelve los pagos en el orden del contrato: año desc, mes desc.
func (r *memPaymentRepo) sorted(keep func(*entity.Payment) bool) []*entity.Payment {
	var list []*entity.Payment
	for _, p := range r.payments {
		if keep(p) {
			list = append(list, p)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Year != list[j].Year {
			return list[i].Year > list[j].Year
		}
		return list[i].PaidFor > list[j].PaidFor
	})
	return list
}

func (r *memPaymentRepo) ListByEmail(email string, limit, offset int) ([]*entity.Payment, error) {
	list := r.sorted(func(p *entity.Payment) bool { return p.Email == email })
	if offset >= len(list) {
		return nil, nil
	}
	list = list[offset:]
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (r *memPaymentRepo) ListByEmployee(employeeID string, limit int) ([]*entity.Payment, error) {
	list := r.sorted(func(p *entity.Payment) bool { return p.EmployeeID == employeeID })
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (r *memPaymentRepo) CountByEmail(email string) (int64, error) {
	var count int64
	for _, p := range r.payments {
		if p.Email == email {
			count++
		}
	}
	return count, nil
}

type memWorkRepo struct {
	works []*entity.WorkLog
}

func (r *memWorkRepo) Create(w *entity.WorkLog) error {
	cp := *w
	r.works = append(r.works, &cp)
	return nil
}

func (r *memWorkRepo) sorted(keep func(*entity.WorkLog) bool) []*entity.WorkLog {
	var list []*entity.WorkLog
	for _, w := range r.works {
		if keep(w) {
			list = append(list, w)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return list
}

func (r *memWorkRepo) ListByEmail(email string) ([]*entity.WorkLog, error) {
	return r.sorted(func(w *entity.WorkLog) bool { return w.Email == email }), nil
}

func (r *memWorkRepo) ListFiltered(name string, month int) ([]*entity.WorkLog, error) {
	return r.sorted(func(w *entity.WorkLog) bool {
		return (name == "" || w.Name == name) && (month == 0 || w.Month == month)
	}), nil
}

type memContactRepo struct {
	msgs []*entity.ContactMessage
}

func (r *memContactRepo) Create(m *entity.ContactMessage) error {
	cp := *m
	r.msgs = append(r.msgs, &cp)
	return nil
}

func (r *memContactRepo) List() ([]*entity.ContactMessage, error) {
	return r.msgs, nil
}

// intentsFake fake del colaborador de pagos; captura la última petición.
type intentsFake struct {
	secret      string
	err         error
	gotAmount   int64
	gotCurrency string
}

func (f *intentsFake) CreateIntent(amountMinor int64, currency string) (string, error) {
	f.gotAmount = amountMinor
	f.gotCurrency = currency
	if f.err != nil {
		return "", f.err
	}
	return f.secret, nil
}

var errInfra = errors.New("db caída")

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app      *fiber.App
	users    *memUserRepo
	payments *memPaymentRepo
	works    *memWorkRepo
	contacts *memContactRepo
	intents  *intentsFake
}

// buildTestApp construye la aplicación completa con fakes en memoria.
func buildTestApp(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		users:    &memUserRepo{},
		payments: &memPaymentRepo{},
		works:    &memWorkRepo{},
		contacts: &memContactRepo{},
		intents:  &intentsFake{secret: "pi_test_secret_123"},
	}
	authUC := auth.NewAuthUseCase(auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})
	env.app = fiber.New()
	apphttp.Router(env.app, apphttp.RouterDeps{
		AuthUC:    authUC,
		UserUC:    usecase.NewUserUseCase(env.users),
		PaymentUC: usecase.NewPaymentUseCase(env.payments, env.intents, "usd"),
		WorkUC:    usecase.NewWorkUseCase(env.works),
		ContactUC: usecase.NewContactUseCase(env.contacts),
		JWTSecret: testJWTSecret,
		AppName:   "Payroll",
	})
	return env
}

// seedUser inserta un usuario directo en el fake y lo devuelve.
func (e *testEnv) seedUser(t *testing.T, id, email, role string, verified bool) *entity.User {
	t.Helper()
	u := &entity.User{ID: id, Email: email, Name: email, Role: role, IsVerified: verified}
	require.NoError(t, e.users.Create(u))
	return u
}

// tokenFor genera un Authorization header válido para el email dado.
func tokenFor(t *testing.T, email string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, email, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doJSON lanza una petición con cuerpo JSON opcional y devuelve la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path, authHeader string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decode deserializa el cuerpo de la respuesta en out.
func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
