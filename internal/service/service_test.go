package service

import (
	"errors"
	"net/http"

	"oms-client/internal/transport"
)

var errTransport = errors.New("transport down")

func notFoundErr(path string) error {
	return &transport.StatusError{
		Method: http.MethodGet,
		Path:   path,
		Status: http.StatusNotFound,
		Body:   "not found",
	}
}
