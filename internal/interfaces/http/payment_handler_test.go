package http_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tekup-hr/payroll-api/internal/domain/entity"
)

func paymentBody(month, year int) map[string]interface{} {
	return map[string]interface{}{
		"employeeId":    "u1",
		"email":         "emp@x.com",
		"salary":        1000,
		"paidFor":       month,
		"year":          year,
		"transactionId": "tx_abc",
	}
}

// Dos pagos para el mismo (employeeId, paidFor, year): el segundo es 400
// y el primero queda intacto.
func TestPostPayments_PeriodoDuplicado_Retorna400(t *testing.T) {
	env := buildTestApp(t)

	resp := doJSON(t, env.app, http.MethodPost, "/payments", "", paymentBody(5, 2024))
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, env.app, http.MethodPost, "/payments", "", paymentBody(5, 2024))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "DUPLICATE_PAYMENT", body["code"])
	require.Len(t, env.payments.payments, 1)
	assert.Equal(t, "tx_abc", env.payments.payments[0].TransactionID,
		"el primer pago debe quedar almacenado sin cambios")
}

func TestPostPayments_MesFueraDeRango_Retorna400(t *testing.T) {
	env := buildTestApp(t)

	resp := doJSON(t, env.app, http.MethodPost, "/payments", "", paymentBody(13, 2024))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, env.payments.payments)
}

// page=1 devuelve del 6.º al 10.º pago más reciente (skip=5, limit=5),
// ordenados por año desc y mes desc.
func TestPaymentHistory_Paginacion(t *testing.T) {
	env := buildTestApp(t)
	env.seedUser(t, "u1", "emp@x.com", entity.RoleEmployee, true)
	// 12 pagos de 2024: enero..diciembre
	for m := 1; m <= 12; m++ {
		resp := doJSON(t, env.app, http.MethodPost, "/payments", "", paymentBody(m, 2024))
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}
	header := tokenFor(t, "emp@x.com")

	resp := doJSON(t, env.app, http.MethodGet, "/payment-history?page=1", header, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page []map[string]interface{}
	decode(t, resp, &page)
	require.Len(t, page, 5)
	// Más recientes: dic..ago en page=0; page=1 trae jul..mar
	for i, want := range []int{7, 6, 5, 4, 3} {
		assert.Equal(t, float64(want), page[i]["paidFor"],
			fmt.Sprintf("posición %d de la segunda página", i))
	}
}

func TestPaymentHistoryPorEmpleado_MaximoSeis(t *testing.T) {
	env := buildTestApp(t)
	env.seedUser(t, "hr", "hr@x.com", entity.RoleHR, true)
	for m := 1; m <= 9; m++ {
		resp := doJSON(t, env.app, http.MethodPost, "/payments", "", paymentBody(m, 2024))
		resp.Body.Close()
	}

	resp := doJSON(t, env.app, http.MethodGet, "/payment-history/u1", tokenFor(t, "hr@x.com"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []map[string]interface{}
	decode(t, resp, &list)
	assert.Len(t, list, 6)
	assert.Equal(t, float64(9), list[0]["paidFor"], "primero el mes más reciente")
}

func TestPaymentCount(t *testing.T) {
	env := buildTestApp(t)
	env.seedUser(t, "u1", "emp@x.com", entity.RoleEmployee, true)
	for m := 1; m <= 3; m++ {
		resp := doJSON(t, env.app, http.MethodPost, "/payments", "", paymentBody(m, 2024))
		resp.Body.Close()
	}

	resp := doJSON(t, env.app, http.MethodGet, "/paymentCount", tokenFor(t, "emp@x.com"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]int64
	decode(t, resp, &body)
	assert.Equal(t, int64(3), body["count"])
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /create-payment-intent — puente con el colaborador de pagos
// ──────────────────────────────────────────────────────────────────────────────

func TestCreatePaymentIntent_ConvierteAUnidadesMenores(t *testing.T) {
	env := buildTestApp(t)

	resp := doJSON(t, env.app, http.MethodPost, "/create-payment-intent", "",
		map[string]interface{}{"salary": 2550.75})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "pi_test_secret_123", body["clientSecret"])
	assert.Equal(t, int64(255075), env.intents.gotAmount, "2550.75 USD son 255075 centavos")
	assert.Equal(t, "usd", env.intents.gotCurrency)
}

func TestCreatePaymentIntent_MontoNoPositivo_Retorna400(t *testing.T) {
	env := buildTestApp(t)

	resp := doJSON(t, env.app, http.MethodPost, "/create-payment-intent", "",
		map[string]interface{}{"salary": 0})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, env.intents.gotAmount, "no debe llamarse al colaborador")
}

func TestCreatePaymentIntent_FalloUpstream_Retorna502(t *testing.T) {
	env := buildTestApp(t)
	env.intents.err = errInfra

	resp := doJSON(t, env.app, http.MethodPost, "/create-payment-intent", "",
		map[string]interface{}{"salary": 100})
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "UPSTREAM", body["code"])
}
