package mockbackend

import (
	"errors"
	"net/http"
	"reservation-center/internal/app/models"
	"reservation-center/internal/pkg/constvars"
	"reservation-center/internal/pkg/dto/requests"
	"reservation-center/internal/pkg/dto/responses"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Server exposes a Store over the reservation backend HTTP contract.
type Server struct {
	Router *chi.Mux
	store  *Store
	log    *zap.Logger
}

func NewServer(store *Store, logger *zap.Logger) *Server {
	srv := &Server{
		Router: chi.NewRouter(),
		store:  store,
		log:    logger,
	}
	srv.registerRoutes()
	return srv
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) registerRoutes() {
	s.Router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, responses.ChangeReservationStatus{Success: true, Message: constvars.HealthCheckSuccessMessage})
	})

	s.Router.Route("/api", func(r chi.Router) {
		r.Get("/currentUser", s.handleCurrentUser)
		r.Get("/reservations", s.handleListReservations)
		r.Get("/records", s.handleListRecords)
		r.Get("/bills", s.handleListBills)
		r.Post("/reservations/status", s.handleChangeStatus)
	})
}

func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) (models.UserProfile, bool) {
	token := strings.TrimPrefix(r.Header.Get(constvars.HeaderAuthorization), constvars.AuthorizationBearerPrefix)
	profile, ok := s.store.FindUserByToken(token)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, responses.BackendEnvelope[any]{ErrorMessage: constvars.ErrClientNotLoggedIn})
		return models.UserProfile{}, false
	}
	return profile, true
}

// patientScope authenticates and checks that the queried patient is the caller.
func (s *Server) patientScope(w http.ResponseWriter, r *http.Request) (string, bool) {
	profile, ok := s.authenticate(w, r)
	if !ok {
		return "", false
	}
	patientID := r.URL.Query().Get(constvars.BackendQueryParamPatientID)
	if patientID != profile.ID {
		writeJSON(w, http.StatusForbidden, responses.BackendEnvelope[any]{ErrorMessage: constvars.ErrClientNotAuthorized})
		return "", false
	}
	return patientID, true
}

func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.authenticate(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, responses.BackendEnvelope[models.UserProfile]{Success: true, Data: profile})
}

func (s *Server) handleListReservations(w http.ResponseWriter, r *http.Request) {
	patientID, ok := s.patientScope(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, responses.BackendEnvelope[[]models.Reservation]{Success: true, Data: s.store.ListReservations(patientID)})
}

func (s *Server) handleListRecords(w http.ResponseWriter, r *http.Request) {
	patientID, ok := s.patientScope(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, responses.BackendEnvelope[[]models.MedicalRecord]{Success: true, Data: s.store.ListRecords(patientID)})
}

func (s *Server) handleListBills(w http.ResponseWriter, r *http.Request) {
	patientID, ok := s.patientScope(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, responses.BackendEnvelope[[]models.Bill]{Success: true, Data: s.store.ListBills(patientID)})
}

func (s *Server) handleChangeStatus(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	request := new(requests.ChangeReservationStatus)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, responses.ChangeReservationStatus{Message: constvars.ErrDevCannotParseJSON})
		return
	}

	status := models.ReservationStatus(request.Action.Status)
	err = s.store.ChangeStatus(profile.ID, request.AID, status, request.Action.EndTime)

	var rejected *RejectedError
	switch {
	case err == nil:
		s.log.Info("mockbackend status changed",
			zap.String(constvars.LoggingReservationIDKey, request.AID),
			zap.String("status", string(status)),
		)
		writeJSON(w, http.StatusOK, responses.ChangeReservationStatus{Success: true})
	case errors.Is(err, ErrReservationNotFound):
		writeJSON(w, http.StatusNotFound, responses.ChangeReservationStatus{Message: err.Error()})
	case errors.As(err, &rejected):
		s.log.Info("mockbackend status change rejected",
			zap.String(constvars.LoggingReservationIDKey, request.AID),
			zap.String(constvars.LoggingErrorMessageKey, rejected.Reason),
		)
		writeJSON(w, http.StatusOK, responses.ChangeReservationStatus{Message: rejected.Reason})
	default:
		writeJSON(w, http.StatusInternalServerError, responses.ChangeReservationStatus{Message: err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}
