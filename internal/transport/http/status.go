package http

import "net/http"

const (
	StatusOK                  = http.StatusOK // 200
	StatusCreated             = http.StatusCreated
	StatusBadRequest          = http.StatusBadRequest // 400
	StatusNotFound            = http.StatusNotFound   // 404
	StatusInternalServerError = http.StatusInternalServerError
)
