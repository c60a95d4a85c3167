package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/amathumitha2210/Customer-Management/internal/domain"
	"github.com/amathumitha2210/Customer-Management/internal/dto"
	"github.com/amathumitha2210/Customer-Management/internal/pkg/log"
)

// maxUploadSize caps the multipart form for bulk uploads (20MB).
const maxUploadSize = 20 << 20

type Handler struct {
	UC  domain.CustomerUsecase
	Val *validator.Validate
}

func NewHandler(uc domain.CustomerUsecase) *Handler { return &Handler{UC: uc, Val: validator.New()} }

func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	search := q.Get("search")

	rows, total, err := h.UC.List(r.Context(), search, page, limit)
	if err != nil {
		log.Error.Printf("list_customers repo_err err=%v", err)
		writeErr(w, StatusInternalServerError, err.Error(), nil)
		return
	}

	out := make([]dto.CustomerResponse, 0, len(rows))
	for _, c := range rows {
		out = append(out, toResponse(c))
	}
	log.Info.Printf("list_customers ok total=%d page=%d", total, page)
	writeJSON(w, StatusOK, dto.CustomerListResponse{Total: total, Page: page, Limit: limit, Customers: out})
}

func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	c, err := h.UC.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidID) {
			writeErr(w, StatusBadRequest, MsgInvalidID, nil)
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			writeErr(w, StatusNotFound, MsgNotFound, nil)
			return
		}
		log.Error.Printf("get_customer repo_err id=%s err=%v", id, err)
		writeErr(w, StatusInternalServerError, err.Error(), nil)
		return
	}
	if c == nil {
		writeErr(w, StatusNotFound, MsgNotFound, nil)
		return
	}
	log.Info.Printf("get_customer ok id=%s", id)
	writeJSON(w, StatusOK, toResponse(*c))
}

func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error.Printf("create_customer decode_json err=%v", err)
		writeErr(w, StatusBadRequest, MsgInvalidJSON, nil)
		return
	}
	if err := h.Val.Struct(req); err != nil {
		log.Error.Printf("create_customer validate err=%v", err)
		writeErr(w, StatusBadRequest, MsgValidation, nil)
		return
	}
	dob, err := time.Parse("2006-01-02", req.Dob)
	if err != nil {
		log.Error.Printf("create_customer bad_dob dob=%s", req.Dob)
		writeErr(w, StatusBadRequest, "invalid dob", map[string]string{"dob": "YYYY-MM-DD"})
		return
	}

	c := toDomain(req, dob)
	id, err := h.UC.Create(r.Context(), c)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateNIC) {
			log.Info.Printf("create_customer duplicate nic=%q", c.NIC)
			writeErr(w, StatusBadRequest, MsgDuplicateNIC, map[string]string{"nic": "already exists"})
			return
		}
		if errors.Is(err, domain.ErrMissingFields) {
			writeErr(w, StatusBadRequest, MsgValidation, nil)
			return
		}
		log.Error.Printf("create_customer repo_err nic=%q err=%v", c.NIC, err)
		writeErr(w, StatusInternalServerError, err.Error(), nil)
		return
	}

	resp := toResponse(c)
	resp.ID = id
	log.Info.Printf("create_customer ok id=%s nic=%q family=%d", id, c.NIC, len(c.FamilyMembers))
	writeJSON(w, StatusCreated, resp)
}

func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req dto.UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error.Printf("update_customer decode_json err=%v", err)
		writeErr(w, StatusBadRequest, MsgInvalidJSON, nil)
		return
	}
	if err := h.Val.Struct(req); err != nil {
		log.Error.Printf("update_customer validate err=%v", err)
		writeErr(w, StatusBadRequest, MsgValidation, nil)
		return
	}
	dob, err := time.Parse("2006-01-02", req.Dob)
	if err != nil {
		log.Error.Printf("update_customer bad_dob dob=%s", req.Dob)
		writeErr(w, StatusBadRequest, "invalid dob", map[string]string{"dob": "YYYY-MM-DD"})
		return
	}

	c := toDomain(req, dob)
	if err := h.UC.Update(r.Context(), id, c); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidID):
			writeErr(w, StatusBadRequest, MsgInvalidID, nil)
		case errors.Is(err, domain.ErrNotFound):
			writeErr(w, StatusNotFound, MsgNotFound, nil)
		case errors.Is(err, domain.ErrDuplicateNIC):
			log.Info.Printf("update_customer duplicate id=%s nic=%q", id, c.NIC)
			writeErr(w, StatusBadRequest, MsgDuplicateNIC, map[string]string{"nic": "already exists"})
		case errors.Is(err, domain.ErrMissingFields):
			writeErr(w, StatusBadRequest, MsgValidation, nil)
		default:
			log.Error.Printf("update_customer repo_err id=%s err=%v", id, err)
			writeErr(w, StatusInternalServerError, err.Error(), nil)
		}
		return
	}
	log.Info.Printf("update_customer ok id=%s family=%d", id, len(c.FamilyMembers))
	writeJSON(w, StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) BulkUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Error.Printf("bulk_upload parse_form err=%v", err)
		writeErr(w, StatusBadRequest, MsgNoFile, nil)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		log.Error.Printf("bulk_upload no_file err=%v", err)
		writeErr(w, StatusBadRequest, MsgNoFile, nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Error.Printf("bulk_upload read_file err=%v", err)
		writeErr(w, StatusInternalServerError, err.Error(), nil)
		return
	}

	sum, err := h.UC.Import(r.Context(), header.Filename, data)
	if err != nil {
		var rowErr *domain.RowError
		switch {
		case errors.Is(err, domain.ErrEmptyFile):
			writeErr(w, StatusBadRequest, MsgEmptyFile, nil)
		case errors.As(err, &rowErr):
			log.Info.Printf("bulk_upload rejected file=%q line=%d reason=%q", header.Filename, rowErr.Line, rowErr.Reason)
			writeErr(w, StatusBadRequest, rowErr.Error(), nil)
		default:
			log.Error.Printf("bulk_upload failed file=%q err=%v", header.Filename, err)
			writeErr(w, StatusInternalServerError, err.Error(), nil)
		}
		return
	}

	writeJSON(w, StatusOK, dto.ImportResponse{
		Message: fmt.Sprintf("Bulk upload successful. Created: %d, Updated: %d", sum.Created, sum.Updated),
	})
}

func toDomain(req dto.CreateCustomerRequest, dob time.Time) domain.Customer {
	c := domain.Customer{
		Name:          req.Name,
		Dob:           dob,
		NIC:           req.NIC,
		Mobiles:       req.Mobiles,
		Addresses:     []domain.Address{},
		FamilyMembers: []domain.FamilyMember{},
	}
	if c.Mobiles == nil {
		c.Mobiles = []string{}
	}
	for _, a := range req.Addresses {
		c.Addresses = append(c.Addresses, domain.Address(a))
	}
	for _, f := range req.FamilyMembers {
		c.FamilyMembers = append(c.FamilyMembers, domain.FamilyMember(f))
	}
	return c
}

func toResponse(c domain.Customer) dto.CustomerResponse {
	resp := dto.CustomerResponse{
		ID:            c.ID.Hex(),
		Name:          c.Name,
		Dob:           c.Dob.Format("2006-01-02"),
		NIC:           c.NIC,
		Mobiles:       c.Mobiles,
		Addresses:     make([]dto.AddressPayload, 0, len(c.Addresses)),
		FamilyMembers: make([]dto.FamilyMemberPayload, 0, len(c.FamilyMembers)),
	}
	if resp.Mobiles == nil {
		resp.Mobiles = []string{}
	}
	for _, a := range c.Addresses {
		resp.Addresses = append(resp.Addresses, dto.AddressPayload(a))
	}
	// Family members are exposed as name and nic only.
	for _, f := range c.FamilyMembers {
		resp.FamilyMembers = append(resp.FamilyMembers, dto.FamilyMemberPayload(f))
	}
	return resp
}
