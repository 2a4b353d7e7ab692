package bootstrap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medicare-api/config"
	"medicare-api/internal/delivery/dto"
	"medicare-api/internal/domain/entity"
	"medicare-api/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

type testServer struct {
	handler http.Handler
	db      *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db := testutil.NewTestDB(t)
	_, redisClient := testutil.NewTestRedis(t)
	cfg := &config.Config{Notification: config.NotificationConfig{TTL: time.Hour}}

	return &testServer{
		handler: NewHTTPHandler(cfg, db, redisClient, nil, testutil.NewTestLogger()),
		db:      db,
	}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) (int, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func decodeData(t *testing.T, env envelope, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, v))
}

func bookingBody(email, doctor, date string) map[string]string {
	return map[string]string{
		"name":   "Jane Doe",
		"email":  email,
		"phone":  "+1 (555) 987-6543",
		"doctor": doctor,
		"date":   date,
		"time":   "14:30",
		"reason": "Chest pain",
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(t, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}

func TestBookingEndpoint(t *testing.T) {
	s := newTestServer(t)
	testutil.CreateDoctor(t, s.db, "Dr. Sarah Smith", "Cardiologist")

	code, env := s.do(t, http.MethodPost, "/api/appointments", bookingBody("jane@example.com", "Dr. Sarah Smith - Cardiologist", "2026-11-03"))
	require.Equal(t, http.StatusCreated, code, string(env.Error))

	var appointment dto.AppointmentResponse
	decodeData(t, env, &appointment)
	assert.Equal(t, "pending", appointment.Status)
	require.NotNil(t, appointment.Doctor)
	assert.Equal(t, "Dr. Sarah Smith", appointment.Doctor.Name)
	assert.Equal(t, "Cardiologist", appointment.Doctor.Specialty)
	require.NotNil(t, appointment.Patient)
	assert.Equal(t, "jane@example.com", appointment.Patient.Email)

	code, env = s.do(t, http.MethodGet, "/api/appointments/"+appointment.ID.String(), nil)
	assert.Equal(t, http.StatusOK, code)

	code, env = s.do(t, http.MethodGet, "/api/notifications/user/"+appointment.PatientID.String(), nil)
	require.Equal(t, http.StatusOK, code)
	var notifications dto.NotificationListResponse
	decodeData(t, env, &notifications)
	require.Equal(t, 1, notifications.Total)
	assert.Equal(t, "Appointment requested", notifications.Notifications[0].Title)

	path := fmt.Sprintf("/api/notifications/user/%s/%s/read", appointment.PatientID, notifications.Notifications[0].ID)
	code, env = s.do(t, http.MethodPatch, path, nil)
	require.Equal(t, http.StatusOK, code)
	var read dto.NotificationResponse
	decodeData(t, env, &read)
	assert.True(t, read.Read)
}

func TestBookingUnknownDoctor(t *testing.T) {
	s := newTestServer(t)
	testutil.CreateDoctor(t, s.db, "Dr. Sarah Smith", "Cardiologist")

	code, env := s.do(t, http.MethodPost, "/api/appointments", bookingBody("new@example.com", "Dr. Unknown - X", "2026-11-03"))

	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)
	assert.Equal(t, "Doctor not found in the system", env.Message)
	assert.Equal(t, int64(0), testutil.CountRows(t, s.db, &entity.User{}))
	assert.Equal(t, int64(0), testutil.CountRows(t, s.db, &entity.Appointment{}))
}

func TestBookingValidation(t *testing.T) {
	s := newTestServer(t)

	body := bookingBody("not-an-email", "", "03/11/2026")
	delete(body, "reason")

	code, env := s.do(t, http.MethodPost, "/api/appointments", body)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Validation failed", env.Message)

	var errs map[string]string
	require.NoError(t, json.Unmarshal(env.Error, &errs))
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "doctor")
	assert.Contains(t, errs, "date")
	assert.Contains(t, errs, "reason")
}

func TestAppointmentStatusAndCancel(t *testing.T) {
	s := newTestServer(t)
	testutil.CreateDoctor(t, s.db, "Dr. Sarah Smith", "Cardiologist")

	code, env := s.do(t, http.MethodPost, "/api/appointments", bookingBody("jane@example.com", "Dr. Sarah Smith - Cardiologist", "2026-11-03"))
	require.Equal(t, http.StatusCreated, code)
	var appointment dto.AppointmentResponse
	decodeData(t, env, &appointment)
	base := "/api/appointments/" + appointment.ID.String()

	code, _ = s.do(t, http.MethodPatch, base+"/status", map[string]string{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = s.do(t, http.MethodPatch, base+"/status", map[string]string{"status": "confirmed", "doctorNotes": "Fasting required"})
	require.Equal(t, http.StatusOK, code)
	decodeData(t, env, &appointment)
	assert.Equal(t, "confirmed", appointment.Status)
	assert.Equal(t, "Fasting required", appointment.Notes.DoctorNotes)

	code, env = s.do(t, http.MethodPatch, base+"/status", map[string]string{"status": "completed", "doctor_notes": "Follow up in two weeks"})
	require.Equal(t, http.StatusOK, code)
	decodeData(t, env, &appointment)
	assert.Equal(t, "completed", appointment.Status)
	assert.Equal(t, "Follow up in two weeks", appointment.Notes.DoctorNotes)

	for i := 0; i < 2; i++ {
		code, env = s.do(t, http.MethodDelete, base, nil)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "Appointment cancelled successfully", env.Message)
		decodeData(t, env, &appointment)
		assert.Equal(t, "cancelled", appointment.Status)
	}

	code, _ = s.do(t, http.MethodDelete, "/api/appointments/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestReviewsUpdateDoctorRating(t *testing.T) {
	s := newTestServer(t)
	doctor := testutil.CreateDoctor(t, s.db, "Dr. Sarah Smith", "Cardiologist")

	for _, rating := range []int{4, 5, 3} {
		code, env := s.do(t, http.MethodPost, "/api/appointments", bookingBody("jane@example.com", "Dr. Sarah Smith - Cardiologist", "2026-11-03"))
		require.Equal(t, http.StatusCreated, code)
		var appointment dto.AppointmentResponse
		decodeData(t, env, &appointment)

		code, env = s.do(t, http.MethodPost, "/api/reviews", map[string]interface{}{
			"appointment_id": appointment.ID,
			"patient_id":     appointment.PatientID,
			"doctor_id":      doctor.ID,
			"rating":         rating,
		})
		require.Equal(t, http.StatusCreated, code, string(env.Error))
	}

	code, env := s.do(t, http.MethodGet, "/api/doctors/"+doctor.ID.String(), nil)
	require.Equal(t, http.StatusOK, code)
	var detail dto.DoctorDetailResponse
	decodeData(t, env, &detail)
	assert.Equal(t, 4.0, detail.AverageRating)
	assert.Equal(t, 3, detail.TotalReviews)
	assert.Len(t, detail.Reviews, 3)

	code, env = s.do(t, http.MethodGet, "/api/reviews/doctor/"+doctor.ID.String(), nil)
	require.Equal(t, http.StatusOK, code)
	var reviews dto.ReviewListResponse
	decodeData(t, env, &reviews)
	assert.Equal(t, 3, reviews.Total)

	code, _ = s.do(t, http.MethodPost, "/api/reviews", map[string]interface{}{
		"appointment_id": doctor.ID,
		"patient_id":     doctor.ID,
		"doctor_id":      doctor.ID,
		"rating":         6,
	})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestUsersEndpoint(t *testing.T) {
	s := newTestServer(t)

	body := map[string]interface{}{
		"name":          "Jane Doe",
		"email":         "jane@example.com",
		"phone":         "+1 (555) 987-6543",
		"date_of_birth": "1990-04-12",
		"blood_type":    "O+",
	}
	code, env := s.do(t, http.MethodPost, "/api/users", body)
	require.Equal(t, http.StatusCreated, code, string(env.Error))
	var user dto.UserResponse
	decodeData(t, env, &user)

	code, _ = s.do(t, http.MethodPost, "/api/users", body)
	assert.Equal(t, http.StatusConflict, code)

	code, env = s.do(t, http.MethodPut, "/api/users/"+user.ID.String(), map[string]interface{}{"allergies": []string{"latex"}})
	require.Equal(t, http.StatusOK, code)
	decodeData(t, env, &user)
	assert.Equal(t, []string{"latex"}, user.Allergies)

	code, env = s.do(t, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, code)
	var users dto.UserListResponse
	decodeData(t, env, &users)
	assert.Equal(t, 1, users.Total)

	code, env = s.do(t, http.MethodGet, "/api/audit-logs", nil)
	require.Equal(t, http.StatusOK, code)
	var logs dto.AuditLogListResponse
	decodeData(t, env, &logs)
	assert.Equal(t, 2, logs.Total)

	code, _ = s.do(t, http.MethodGet, fmt.Sprintf("/api/audit-logs/%d", logs.Logs[0].ID), nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestDoctorsEndpoint(t *testing.T) {
	s := newTestServer(t)
	testutil.CreateDoctor(t, s.db, "Dr. Sarah Smith", "Cardiologist")
	testutil.CreateDoctor(t, s.db, "Dr. Emily Brown", "Pediatrician")

	code, env := s.do(t, http.MethodPost, "/api/doctors", map[string]interface{}{
		"name":      "Dr. Rachel Green",
		"email":     "rachel.green@medicare.com",
		"specialty": "Cardiologist",
	})
	require.Equal(t, http.StatusCreated, code, string(env.Error))

	code, env = s.do(t, http.MethodGet, "/api/doctors?specialty=Cardiologist", nil)
	require.Equal(t, http.StatusOK, code)
	var doctors dto.DoctorListResponse
	decodeData(t, env, &doctors)
	assert.Equal(t, 2, doctors.Total)

	code, _ = s.do(t, http.MethodGet, "/api/doctors/"+"00000000-0000-0000-0000-000000000000", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/appointments", nil)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}
