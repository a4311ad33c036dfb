package transport

import (
	"github.com/ds124wfegd/flagcomposer/internal/service"
)

type FlagHandler struct {
	service service.FlagService
}

func NewFlagHandler(service service.FlagService) *FlagHandler {
	return &FlagHandler{service: service}
}
