package router

import (
	"net/http"

	"applicant_review_system/internal/api/handlers"
	"applicant_review_system/internal/api/middleware"
	"applicant_review_system/internal/services"

	"go.uber.org/zap"
)

func NewRouter(approvals services.ApprovalService, students services.StudentService, logger *zap.SugaredLogger) *http.ServeMux {
	mux := http.NewServeMux()

	approvalHandler := handlers.NewApprovalHandler(approvals, logger)
	studentHandler := handlers.NewStudentHandler(students, logger)

	mux.HandleFunc("GET /healthcheck", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("I'm alive"))
	})

	mux.HandleFunc("POST /api/add-approval", middleware.WithLogging(logger, approvalHandler.AddApproval))
	mux.HandleFunc("POST /api/addApproval", middleware.WithLogging(logger, approvalHandler.AddApproval))
	mux.HandleFunc("GET /api/applicants/{partitionKey}/{rowKey}/votes", middleware.WithLogging(logger, approvalHandler.GetVotes))

	mux.HandleFunc("POST /api/init-student", middleware.WithLogging(logger, studentHandler.InitStudent))
	mux.HandleFunc("POST /api/populate-student", middleware.WithLogging(logger, studentHandler.PopulateStudent))

	return mux
}
