package service

import (
	"context"

	"github.com/ds124wfegd/flagcomposer/internal/database"
	"github.com/ds124wfegd/flagcomposer/internal/entity"
	"github.com/ds124wfegd/flagcomposer/internal/pkg/composer"
	"github.com/ds124wfegd/flagcomposer/internal/pkg/kafka"
)

type FlagService interface {
	Combine(ctx context.Context, req entity.CombineRequest) (*entity.CombineResult, error)
}

type flagService struct {
	repo     database.FlagRepository
	producer kafka.Producer
	composer composer.FlagComposer
	maskName string
}

func NewFlagService(repo database.FlagRepository, producer kafka.Producer, composer composer.FlagComposer, maskName string) FlagService {
	return &flagService{
		repo:     repo,
		producer: producer,
		composer: composer,
		maskName: maskName,
	}
}
