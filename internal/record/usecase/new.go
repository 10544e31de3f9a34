package usecase

import (
	"records-srv/internal/record"
	"records-srv/internal/record/repository"
	"records-srv/internal/revalidate"
	pkgLog "records-srv/pkg/log"
)

type usecase struct {
	l      pkgLog.Logger
	repo   repository.Repository
	signal revalidate.Signal
}

func New(l pkgLog.Logger, repo repository.Repository, signal revalidate.Signal) record.UseCase {
	return &usecase{
		l:      l,
		repo:   repo,
		signal: signal,
	}
}
