package http

import (
	"net/http"

	"github.com/nexus-os/office-backend/internal/domain/auth"
	"github.com/nexus-os/office-backend/internal/domain/payroll"
	"github.com/nexus-os/office-backend/internal/handler/http/response"
)

type PayrollHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetMyPayroll(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// List handles GET /payroll
func (h *payrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	summary, err := h.payrollService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// GetMyPayroll handles GET /payroll/me
func (h *payrollHandlerImpl) GetMyPayroll(w http.ResponseWriter, r *http.Request) {
	sess, ok := sessionFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	summary, err := h.payrollService.ListByUser(r.Context(), sess.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
