package scrap

import (
	"context"

	"go.uber.org/zap"

	"github.com/Anukhusdevlopers/scrap-pickup-backend/constant"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/model"
	scraprepo "github.com/Anukhusdevlopers/scrap-pickup-backend/repository/scrap"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/utils/errors"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/utils/logger"
)

type ScrapApp interface {
	AddAll(ctx context.Context, categories []model.ScrapCategory) error
	GetAll(ctx context.Context) ([]model.ScrapCategory, error)
}

type scrapAppImpl struct {
	repo scraprepo.ScrapRepository
}

func NewScrapApp(repo scraprepo.ScrapRepository) ScrapApp {
	return &scrapAppImpl{repo: repo}
}

func (s *scrapAppImpl) AddAll(ctx context.Context, categories []model.ScrapCategory) error {
	if len(categories) == 0 {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := s.repo.InsertAll(ctx, categories); err != nil {
		logger.Error("[AddAll] err repo.InsertAll", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *scrapAppImpl) GetAll(ctx context.Context) ([]model.ScrapCategory, error) {
	categories, err := s.repo.GetAll(ctx)
	if err != nil {
		logger.Error("[GetAll] err repo.GetAll", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return categories, nil
}
