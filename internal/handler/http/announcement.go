package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/nexus-os/office-backend/internal/domain/announcement"
	"github.com/nexus-os/office-backend/internal/domain/auth"
	"github.com/nexus-os/office-backend/internal/handler/http/response"
)

type AnnouncementHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Draft(w http.ResponseWriter, r *http.Request)
}

type announcementHandlerImpl struct {
	announcementService announcement.AnnouncementService
}

func NewAnnouncementHandler(announcementService announcement.AnnouncementService) AnnouncementHandler {
	return &announcementHandlerImpl{
		announcementService: announcementService,
	}
}

func (h *announcementHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.announcementService.List(r.Context(), announcement.ListAnnouncementsFilter{
		Limit: getIntQueryParam(r, "limit", 0),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *announcementHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var req announcement.CreateAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateAnnouncement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.AuthorID = sess.UserID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.announcementService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Announcement published", created)
}

// Draft always answers 200: assistant failures come back as text
func (h *announcementHandlerImpl) Draft(w http.ResponseWriter, r *http.Request) {
	var req announcement.DraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("DraftAnnouncement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, h.announcementService.Draft(r.Context(), req))
}
