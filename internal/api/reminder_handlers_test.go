package api_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/limbo/fitrack/internal/api"
	errorvalues "github.com/limbo/fitrack/internal/error_values"
	"github.com/limbo/fitrack/internal/service"
	"github.com/limbo/fitrack/internal/service/mocks"
	"github.com/limbo/fitrack/pkg/entity"
	"github.com/limbo/fitrack/pkg/reminder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	rService := mocks.NewMockRemindersServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		RemindersService: rService,
	})
	cfg := &entity.ReminderConfig{UserID: userID, Cadence: "weekly", Hour: 7, Minute: 30}

	t.Run("get", func(t *testing.T) {
		rService.EXPECT().GetReminder(gomock.Any(), userID).Return(cfg, nil)
		rr := httptest.NewRecorder()
		serv.GetReminder(rr, authedRequest(http.MethodGet, "/api/v1/reminder", nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("update", func(t *testing.T) {
		body := mustJSON(t, api.ReminderRequest{Cadence: "weekly", Hour: 7, Minute: 30})
		rService.EXPECT().UpdateReminder(gomock.Any(), userID, &service.ReminderRequest{Cadence: "weekly", Hour: 7, Minute: 30}).Return(cfg, nil)
		rr := httptest.NewRecorder()
		serv.UpdateReminder(rr, authedRequest(http.MethodPut, "/api/v1/reminder", bytes.NewReader(body)))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("update invalid", func(t *testing.T) {
		body := mustJSON(t, api.ReminderRequest{Cadence: "hourly", Hour: 7})
		rService.EXPECT().UpdateReminder(gomock.Any(), userID, gomock.Any()).Return(nil, errorvalues.ErrValidation)
		rr := httptest.NewRecorder()
		serv.UpdateReminder(rr, authedRequest(http.MethodPut, "/api/v1/reminder", bytes.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("enable with permissions", func(t *testing.T) {
		body := mustJSON(t, api.EnableReminderRequest{NotificationsGranted: true, ExactAlarmsGranted: true})
		rService.EXPECT().EnableReminder(gomock.Any(), userID, true).Return(cfg, nil)
		rr := httptest.NewRecorder()
		serv.EnableReminder(rr, authedRequest(http.MethodPost, "/api/v1/reminder/enable", bytes.NewReader(body)))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("enable without exact alarms", func(t *testing.T) {
		body := mustJSON(t, api.EnableReminderRequest{NotificationsGranted: true})
		rService.EXPECT().EnableReminder(gomock.Any(), userID, false).Return(nil, errorvalues.ErrPermissionDenied)
		rr := httptest.NewRecorder()
		serv.EnableReminder(rr, authedRequest(http.MethodPost, "/api/v1/reminder/enable", bytes.NewReader(body)))
		assert.Equal(t, http.StatusForbidden, rr.Result().StatusCode)
	})
	t.Run("disable", func(t *testing.T) {
		rService.EXPECT().DisableReminder(gomock.Any(), userID).Return(cfg, nil)
		rr := httptest.NewRecorder()
		serv.DisableReminder(rr, authedRequest(http.MethodPost, "/api/v1/reminder/disable", nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
}

func TestNextReminder(t *testing.T) {
	ctrl := gomock.NewController(t)
	rService := mocks.NewMockRemindersServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		RemindersService: rService,
		Clock:            fixedClock,
	})
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	schedule, err := reminder.DescribeRepeatingSchedule(reminder.Daily, 20, 0)
	require.NoError(t, err)

	t.Run("caller timezone", func(t *testing.T) {
		rService.EXPECT().NextReminder(gomock.Any(), userID, gomock.Any()).DoAndReturn(
			func(_ any, _ any, now time.Time) (*service.NextReminder, error) {
				assert.Equal(t, berlin.String(), now.Location().String())
				assert.True(t, now.Equal(fixedNow))
				fireAt, err := reminder.NextOccurrence(reminder.Daily, 20, 0, now)
				return &service.NextReminder{FireAt: fireAt, Schedule: schedule}, err
			})
		rr := httptest.NewRecorder()
		serv.NextReminder(rr, authedRequest(http.MethodGet, "/api/v1/reminder/next?tz=Europe/Berlin", nil))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp struct {
			FireAt   time.Time `json:"fire_at"`
			Timezone string    `json:"timezone"`
		}
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Europe/Berlin", resp.Timezone)
		assert.True(t, resp.FireAt.Equal(time.Date(2024, time.April, 1, 20, 0, 0, 0, berlin)))
	})
	t.Run("unknown timezone", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.NextReminder(rr, authedRequest(http.MethodGet, "/api/v1/reminder/next?tz=Mars/Olympus", nil))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("inactive", func(t *testing.T) {
		rService.EXPECT().NextReminder(gomock.Any(), userID, gomock.Any()).Return(nil, errorvalues.ErrReminderInactive)
		rr := httptest.NewRecorder()
		serv.NextReminder(rr, authedRequest(http.MethodGet, "/api/v1/reminder/next", nil))
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
}
