package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/srgjo27/seat_reservation/internal/adapter/handler"
	"github.com/srgjo27/seat_reservation/internal/adapter/repository/memory"
	"github.com/srgjo27/seat_reservation/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
}

func newServer(t *testing.T, opts ...memory.Option) *httptest.Server {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := memory.NewReservationRepository(opts...)
	svc := services.NewReservationService(repo, nil, nil, log)
	h := handler.NewReservationHandler(svc, log)

	srv := httptest.NewServer(h.Routes())
	t.Cleanup(srv.Close)

	return srv
}

func do(t *testing.T, method, url, body string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(res.Body).Decode(&env))

	return res.StatusCode, env
}

const anaSeat5 = `{"first_name":"Ana","last_name":"Martinez","date":{"day":1,"month":3,"year":2024},"seat":5}`

func TestCreateReservation_Success(t *testing.T) {
	srv := newServer(t)

	code, env := do(t, http.MethodPost, srv.URL+"/reservations", anaSeat5)

	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "OK", env.Status)
	assert.Contains(t, string(env.Data), `"seat":5`)

	code, env = do(t, http.MethodGet, srv.URL+"/seats/5", "")
	assert.Equal(t, http.StatusOK, code)

	var seat handler.SeatResponse
	require.NoError(t, json.Unmarshal(env.Data, &seat))
	assert.Equal(t, 5, seat.Seat)
	assert.True(t, seat.Occupied)
	require.NotNil(t, seat.Reservation)
	assert.Equal(t, "Ana", seat.Reservation.FirstName)
	assert.Equal(t, "Martinez", seat.Reservation.LastName)
	assert.Equal(t, 5, seat.Reservation.SeatNumber)

	_, env = do(t, http.MethodGet, srv.URL+"/seats/6", "")
	assert.JSONEq(t, `{"seat":6,"occupied":false}`, string(env.Data))
}

func TestCreateReservation_Fail_SeatTaken(t *testing.T) {
	srv := newServer(t)

	code, _ := do(t, http.MethodPost, srv.URL+"/reservations", anaSeat5)
	require.Equal(t, http.StatusCreated, code)

	code, env := do(t, http.MethodPost, srv.URL+"/reservations",
		`{"first_name":"Luis","last_name":"Gomez","date":{"day":2,"month":3,"year":2024},"seat":5}`)

	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "seat is already taken", env.Error)

	_, env = do(t, http.MethodGet, srv.URL+"/reservations", "")
	var list []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 1)
}

func TestCreateReservation_Fail_InvalidSeat(t *testing.T) {
	srv := newServer(t)

	code, env := do(t, http.MethodPost, srv.URL+"/reservations",
		`{"first_name":"Ana","last_name":"Martinez","date":{"day":1,"month":3,"year":2024},"seat":150}`)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid seat number", env.Error)

	_, env = do(t, http.MethodGet, srv.URL+"/seats/150", "")
	assert.JSONEq(t, `{"seat":150,"occupied":false}`, string(env.Data))
}

func TestCreateReservation_Fail_Validation(t *testing.T) {
	srv := newServer(t)

	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad json", `{"first_name":`, "invalid json body"},
		{"missing seat", `{"first_name":"Ana","last_name":"Martinez","date":{"day":1,"month":3,"year":2024}}`, "Seat"},
		{"missing name", `{"last_name":"Martinez","date":{"day":1,"month":3,"year":2024},"seat":1}`, "FirstName"},
		{"blank first name", `{"first_name":"   ","last_name":"Martinez","date":{"day":1,"month":3,"year":2024},"seat":1}`, "FirstName"},
		{"blank last name", `{"first_name":"Ana","last_name":"\t","date":{"day":1,"month":3,"year":2024},"seat":1}`, "LastName"},
		{"long name", `{"first_name":"` + strings.Repeat("a", 65) + `","last_name":"Martinez","date":{"day":1,"month":3,"year":2024},"seat":1}`, "FirstName"},
		{"bad date", `{"first_name":"Ana","last_name":"Martinez","date":{"day":40,"month":3,"year":2024},"seat":1}`, "invalid date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := do(t, http.MethodPost, srv.URL+"/reservations", tt.body)

			assert.Equal(t, http.StatusBadRequest, code)
			assert.Contains(t, env.Error, tt.want)
		})
	}
}

func TestCreateReservation_Fail_OutOfMemory(t *testing.T) {
	srv := newServer(t, memory.WithCapacity(1))

	code, _ := do(t, http.MethodPost, srv.URL+"/reservations", anaSeat5)
	require.Equal(t, http.StatusCreated, code)

	code, env := do(t, http.MethodPost, srv.URL+"/reservations",
		`{"first_name":"Luis","last_name":"Gomez","date":{"day":1,"month":3,"year":2024},"seat":6}`)

	assert.Equal(t, http.StatusInsufficientStorage, code)
	assert.Equal(t, "registry is out of memory", env.Error)
}

func TestCancelReservation(t *testing.T) {
	srv := newServer(t)

	code, env := do(t, http.MethodDelete, srv.URL+"/reservations/5", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "reservation not found", env.Error)

	code, _ = do(t, http.MethodPost, srv.URL+"/reservations", anaSeat5)
	require.Equal(t, http.StatusCreated, code)

	code, env = do(t, http.MethodDelete, srv.URL+"/reservations/5", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"active":false`)

	_, env = do(t, http.MethodGet, srv.URL+"/seats/5", "")
	assert.JSONEq(t, `{"seat":5,"occupied":false}`, string(env.Data))

	code, _ = do(t, http.MethodDelete, srv.URL+"/reservations/500", "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, http.MethodDelete, srv.URL+"/reservations/abc", "")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestGetSeats(t *testing.T) {
	srv := newServer(t)

	code, _ := do(t, http.MethodPost, srv.URL+"/reservations", anaSeat5)
	require.Equal(t, http.StatusCreated, code)

	code, env := do(t, http.MethodGet, srv.URL+"/seats", "")
	require.Equal(t, http.StatusOK, code)

	var seats []struct {
		Seat     int  `json:"seat"`
		Occupied bool `json:"occupied"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &seats))
	require.Len(t, seats, 100)
	assert.True(t, seats[5].Occupied)
	assert.False(t, seats[4].Occupied)
}

func TestHealth(t *testing.T) {
	srv := newServer(t)

	code, env := do(t, http.MethodGet, srv.URL+"/health", "")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "OK", env.Status)
}

func TestCreateReservation_TrimsNames(t *testing.T) {
	srv := newServer(t)

	code, env := do(t, http.MethodPost, srv.URL+"/reservations",
		`{"first_name":"  Ana ","last_name":" Martinez","date":{"day":1,"month":3,"year":2024},"seat":3}`)

	require.Equal(t, http.StatusCreated, code)
	assert.Contains(t, string(env.Data), `"first_name":"Ana"`)
	assert.Contains(t, string(env.Data), `"last_name":"Martinez"`)
}
