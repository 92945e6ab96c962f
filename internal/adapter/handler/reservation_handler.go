package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/srgjo27/seat_reservation/internal/core/domain"
	"github.com/srgjo27/seat_reservation/internal/core/services"
	resp "github.com/srgjo27/seat_reservation/internal/lib/api/response"
	"github.com/srgjo27/seat_reservation/internal/lib/logger/sl"
)

type CreateReservationRequest struct {
	FirstName string      `json:"first_name" validate:"required,max=64"`
	LastName  string      `json:"last_name" validate:"required,max=64"`
	Date      domain.Date `json:"date"`
	Seat      *int        `json:"seat" validate:"required"`
}

type SeatResponse struct {
	Seat        int                 `json:"seat"`
	Occupied    bool                `json:"occupied"`
	Reservation *domain.Reservation `json:"reservation,omitempty"`
}

type ReservationHandler struct {
	svc      *services.ReservationService
	log      *slog.Logger
	validate *validator.Validate
}

func NewReservationHandler(svc *services.ReservationService, log *slog.Logger) *ReservationHandler {
	return &ReservationHandler{
		svc:      svc,
		log:      log,
		validate: validator.New(),
	}
}

func (h *ReservationHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", h.Health)

	r.Route("/reservations", func(r chi.Router) {
		r.Get("/", h.ListReservations)
		r.Post("/", h.CreateReservation)
		r.Delete("/{seat}", h.CancelReservation)
	})

	r.Route("/seats", func(r chi.Router) {
		r.Get("/", h.GetSeats)
		r.Get("/{seat}", h.GetSeat)
	})

	return r
}

func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	const op = "handler.ReservationHandler.CreateReservation"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req CreateReservationRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.Error("invalid json body"))

		return
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)

	if err := h.validate.Struct(req); err != nil {
		var validateErr validator.ValidationErrors
		if !errors.As(err, &validateErr) {
			log.Error("failed to validate request", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error("invalid request"))

			return
		}

		log.Warn("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.ValidationError(validateErr))

		return
	}

	if err := req.Date.Validate(); err != nil {
		log.Warn("invalid date", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.Error(err.Error()))

		return
	}

	res, err := h.svc.Book(r.Context(), services.BookRequest{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Date:       req.Date,
		SeatNumber: *req.Seat,
	})
	if err != nil {
		h.renderError(w, r, log, err)
		return
	}

	log.Info("reservation created", slog.Int("seat", res.SeatNumber))

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, resp.OKWithData(res))
}

func (h *ReservationHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	const op = "handler.ReservationHandler.CancelReservation"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	seat, ok := seatParam(w, r)
	if !ok {
		return
	}

	res, err := h.svc.Cancel(r.Context(), seat)
	if err != nil {
		h.renderError(w, r, log, err)
		return
	}

	render.JSON(w, r, resp.OKWithData(res))
}

func (h *ReservationHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, resp.OKWithData(h.svc.Reservations(r.Context())))
}

func (h *ReservationHandler) GetSeats(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, resp.OKWithData(h.svc.SeatMap(r.Context())))
}

func (h *ReservationHandler) GetSeat(w http.ResponseWriter, r *http.Request) {
	seat, ok := seatParam(w, r)
	if !ok {
		return
	}

	out := SeatResponse{Seat: seat}
	if res, ok := h.svc.Reservation(r.Context(), seat); ok {
		out.Occupied = true
		out.Reservation = res
	}

	render.JSON(w, r, resp.OKWithData(out))
}

func (h *ReservationHandler) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, resp.OK())
}

// seatParam accepts any integer; range checks belong to the registry.
func seatParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	seat, err := strconv.Atoi(chi.URLParam(r, "seat"))
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.Error("seat must be an integer"))

		return 0, false
	}

	return seat, true
}

func (h *ReservationHandler) renderError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidSeat):
		log.Warn("invalid seat", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.Error(domain.ErrInvalidSeat.Error()))
	case errors.Is(err, domain.ErrSeatTaken):
		log.Warn("seat taken", sl.Err(err))
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, resp.Error(domain.ErrSeatTaken.Error()))
	case errors.Is(err, domain.ErrReservationNotFound):
		log.Warn("reservation not found", sl.Err(err))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, resp.Error(domain.ErrReservationNotFound.Error()))
	case errors.Is(err, domain.ErrOutOfMemory):
		log.Error("registry exhausted", sl.Err(err))
		render.Status(r, http.StatusInsufficientStorage)
		render.JSON(w, r, resp.Error(domain.ErrOutOfMemory.Error()))
	default:
		log.Error("request failed", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, resp.Error("internal server error"))
	}
}
