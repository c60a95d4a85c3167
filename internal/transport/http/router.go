package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/amathumitha2210/Customer-Management/internal/middleware"
)

func NewRouter(h *Handler, allowOrigins []string) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.CORS(allowOrigins))

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	r.HandleFunc("/api/customers/bulk-upload", h.BulkUpload).Methods(http.MethodPost)
	r.HandleFunc("/api/customers", h.ListCustomers).Methods(http.MethodGet)
	r.HandleFunc("/api/customers/{id}", h.GetCustomer).Methods(http.MethodGet)
	r.HandleFunc("/api/customers", h.CreateCustomer).Methods(http.MethodPost)
	r.HandleFunc("/api/customers/{id}", h.UpdateCustomer).Methods(http.MethodPut)

	return r
}
