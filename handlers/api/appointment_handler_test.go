package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharpcut.app/configs/configslog"
	"sharpcut.app/dto"
	"sharpcut.app/pkg/queryparams"
	"sharpcut.app/services"
)

func TestMain(m *testing.M) {
	configslog.InitLogger()
	m.Run()
}

type fakeApptService struct {
	appointments map[uint]dto.AppointmentDto
	nextID       uint
}

func newFakeApptService() *fakeApptService {
	return &fakeApptService{appointments: map[uint]dto.AppointmentDto{}, nextID: 1}
}

func (f *fakeApptService) ListAppointments(_ context.Context, _ queryparams.AppointmentParams) ([]dto.AppointmentDto, error) {
	result := make([]dto.AppointmentDto, 0, len(f.appointments))
	for _, a := range f.appointments {
		result = append(result, a)
	}
	return result, nil
}

func (f *fakeApptService) GetTakenSlots(_ context.Context, _ queryparams.AppointmentParams) ([]dto.CalendarSlotDto, error) {
	result := make([]dto.CalendarSlotDto, 0, len(f.appointments))
	for _, a := range f.appointments {
		result = append(result, dto.CalendarSlotDto{DateFrom: a.StartsAt, DateTo: a.EndsAt})
	}
	return result, nil
}

func (f *fakeApptService) GetAppointmentByID(_ context.Context, id uint) (*dto.AppointmentDto, error) {
	a, ok := f.appointments[id]
	if !ok {
		return nil, services.ErrAppointmentNotFound
	}
	return &a, nil
}

func (f *fakeApptService) CreateAppointment(_ context.Context, input dto.AppointmentDto) (*dto.AppointmentDto, error) {
	if !input.StartsAt.Before(input.EndsAt) {
		return nil, services.ErrApptInvalidInput
	}
	input.ID = f.nextID
	f.nextID++
	f.appointments[input.ID] = input
	return &input, nil
}

func (f *fakeApptService) UpdateAppointment(_ context.Context, id uint, input dto.AppointmentDto) (*dto.AppointmentDto, error) {
	if _, ok := f.appointments[id]; !ok {
		return nil, services.ErrAppointmentNotFound
	}
	input.ID = id
	f.appointments[id] = input
	return &input, nil
}

func (f *fakeApptService) CompleteAppointment(_ context.Context, id uint) error {
	return f.transition(id)
}

func (f *fakeApptService) CancelAppointment(_ context.Context, id uint) error {
	return f.transition(id)
}

func (f *fakeApptService) transition(id uint) error {
	if _, ok := f.appointments[id]; !ok {
		return services.ErrAppointmentNotFound
	}
	return nil
}

func (f *fakeApptService) DeleteAppointment(_ context.Context, id uint) error {
	if _, ok := f.appointments[id]; !ok {
		return services.ErrAppointmentNotFound
	}
	delete(f.appointments, id)
	return nil
}

var _ services.IAppointmentService = (*fakeApptService)(nil)

func newTestApp(svc services.IAppointmentService) *fiber.App {
	app := fiber.New()
	handler := NewAppointmentHandler(svc)
	group := app.Group("/api/appointments")
	group.Get("/taken-slots", handler.GetTakenSlots)
	group.Get("/", handler.ListAppointments)
	group.Get("/:id", handler.GetAppointment)
	group.Post("/", handler.CreateAppointment)
	group.Put("/:id/complete", handler.CompleteAppointment)
	group.Put("/:id/cancel", handler.CancelAppointment)
	group.Put("/:id", handler.UpdateAppointment)
	group.Delete("/:id", handler.DeleteAppointment)
	return app
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestListAppointments_MissingRangeIs400(t *testing.T) {
	app := newTestApp(newFakeApptService())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/appointments/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, queryparams.ErrDateRangeRequired.Error(), body["error"])
}

func TestListAppointments_EmptyRangeIsEmptyArray(t *testing.T) {
	app := newTestApp(newFakeApptService())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/appointments/?dateFrom=2024-01-01&dateTo=2024-01-07", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[[]dto.AppointmentDto](t, resp)
	assert.NotNil(t, body)
	assert.Empty(t, body)
}

func TestCreateAppointment_201WithLocation(t *testing.T) {
	app := newTestApp(newFakeApptService())

	input := dto.AppointmentDto{
		StartsAt:            time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
		EndsAt:              time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC),
		AppointmentTypeID:   1,
		AppointmentStatusID: 1,
		ClientID:            1,
		BarberID:            1,
	}
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/appointments/", input))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	created := decodeBody[dto.AppointmentDto](t, resp)
	assert.NotZero(t, created.ID)
	assert.Equal(t, fmt.Sprintf("/api/appointments/%d", created.ID), resp.Header.Get(fiber.HeaderLocation))
}

func TestCreateAppointment_InvalidInputIs400(t *testing.T) {
	app := newTestApp(newFakeApptService())

	input := dto.AppointmentDto{
		StartsAt: time.Date(2024, 1, 2, 11, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
	}
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/appointments/", input))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetAppointment_NotFoundIs404(t *testing.T) {
	app := newTestApp(newFakeApptService())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/appointments/99", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTransitions_NotFoundIs400(t *testing.T) {
	app := newTestApp(newFakeApptService())

	for _, path := range []string{"/api/appointments/99/complete", "/api/appointments/99/cancel"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodPut, path, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
	}
}

func TestTransitions_KnownIdIs200(t *testing.T) {
	svc := newFakeApptService()
	svc.appointments[7] = dto.AppointmentDto{ID: 7}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodPut, "/api/appointments/7/cancel", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDeleteAppointment(t *testing.T) {
	svc := newFakeApptService()
	svc.appointments[7] = dto.AppointmentDto{ID: 7}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/appointments/7", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody[map[string]bool](t, resp)
	assert.True(t, body["deleted"])

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/appointments/7", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInvalidIdIs400(t *testing.T) {
	app := newTestApp(newFakeApptService())

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/appointments/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
