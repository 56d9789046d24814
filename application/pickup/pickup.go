package pickup

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/Anukhusdevlopers/scrap-pickup-backend/cmd/config"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/constant"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/model"
	pickuprepo "github.com/Anukhusdevlopers/scrap-pickup-backend/repository/pickup"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/thirdparty/rabbitmq"
	cerrors "github.com/Anukhusdevlopers/scrap-pickup-backend/utils/errors"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/utils/logger"
)

// Two concurrent creates can read the same count; the unique index on
// request_id rejects the loser and we retry with a fresh count.
const maxRequestIDRetries = 3

// EventPublisher is the slice of the message broker this app needs.
type EventPublisher interface {
	PublishPickupCreated(msg rabbitmq.PickupCreatedMessage) error
}

type PickupApp interface {
	Create(ctx context.Context, ownerID uint64, authToken string, req *model.CreatePickupRequest) (*model.CreatePickupResponse, error)
	ListByOwner(ctx context.Context, authToken string, ownerID uint64) ([]*model.PickupRequest, error)
	GetByRequestID(ctx context.Context, requestID string) (*model.PickupRequest, error)
}

type pickupAppImpl struct {
	config    *config.Config
	repo      pickuprepo.PickupRepository
	publisher EventPublisher
	now       func() time.Time
}

func NewPickupApp(config *config.Config, repo pickuprepo.PickupRepository, publisher EventPublisher) PickupApp {
	return NewPickupAppWithClock(config, repo, publisher, time.Now)
}

// NewPickupAppWithClock lets tests pin the date used in request ids.
func NewPickupAppWithClock(config *config.Config, repo pickuprepo.PickupRepository, publisher EventPublisher, now func() time.Time) PickupApp {
	return &pickupAppImpl{
		config:    config,
		repo:      repo,
		publisher: publisher,
		now:       now,
	}
}

// Create stores the request under a DDMMYY+sequence id and returns only the
// generated id.
func (s *pickupAppImpl) Create(ctx context.Context, ownerID uint64, authToken string, req *model.CreatePickupRequest) (*model.CreatePickupResponse, error) {
	datePart := s.now().Format("020106")

	for attempt := 0; attempt < maxRequestIDRetries; attempt++ {
		count, err := s.repo.Count(ctx)
		if err != nil {
			logger.Error("[CreatePickup] err repo.Count", zap.String("error", err.Error()))
			return nil, cerrors.SetCustomError(constant.ErrInternal)
		}

		entity := &model.PickupRequest{
			RequestID:  datePart + strconv.FormatInt(count+1, 10),
			AuthToken:  authToken,
			OwnerID:    ownerID,
			Items:      req.Items,
			Name:       req.Name,
			Image:      req.ImagePath,
			PickUpDate: req.PickUpDate,
			PickUpTime: req.PickUpTime,
			Location:   req.Location,
			Latitude:   req.Latitude,
			Longitude:  req.Longitude,
		}

		err = s.repo.Create(ctx, entity)
		if err == nil {
			s.publishCreated(entity)
			return &model.CreatePickupResponse{RequestID: entity.RequestID}, nil
		}
		if !errors.Is(err, pickuprepo.ErrDuplicateRequestID) {
			logger.Error("[CreatePickup] err repo.Create", zap.String("error", err.Error()))
			return nil, cerrors.SetCustomError(constant.ErrInternal)
		}

		logger.Warn("[CreatePickup] request id collision, retrying",
			zap.String("request_id", entity.RequestID), zap.Int("attempt", attempt+1))
	}

	logger.Error("[CreatePickup] request id retries exhausted")
	return nil, cerrors.SetCustomError(constant.ErrInternal)
}

func (s *pickupAppImpl) ListByOwner(ctx context.Context, authToken string, ownerID uint64) ([]*model.PickupRequest, error) {
	requests, err := s.repo.ListByToken(ctx, authToken, ownerID)
	if err != nil {
		logger.Error("[ListByOwner] err repo.ListByToken", zap.String("error", err.Error()))
		return nil, cerrors.SetCustomError(constant.ErrInternal)
	}
	if len(requests) == 0 {
		return nil, cerrors.SetCustomError(constant.ErrNotFound)
	}
	return requests, nil
}

func (s *pickupAppImpl) GetByRequestID(ctx context.Context, requestID string) (*model.PickupRequest, error) {
	request, err := s.repo.GetByRequestID(ctx, requestID)
	if err != nil {
		logger.Error("[GetByRequestID] err repo.GetByRequestID", zap.String("error", err.Error()))
		return nil, cerrors.SetCustomError(constant.ErrInternal)
	}
	if request == nil {
		return nil, cerrors.SetCustomError(constant.ErrNotFound)
	}
	return request, nil
}

// publishCreated is best-effort; a broker outage never fails the request.
func (s *pickupAppImpl) publishCreated(entity *model.PickupRequest) {
	if s.publisher == nil {
		return
	}
	msg := rabbitmq.PickupCreatedMessage{
		RequestID:  entity.RequestID,
		UserID:     entity.OwnerID,
		Location:   entity.Location,
		PickUpDate: entity.PickUpDate,
		PickUpTime: entity.PickUpTime,
		CreatedAt:  s.now(),
	}
	if err := s.publisher.PublishPickupCreated(msg); err != nil {
		logger.Error("[CreatePickup] publish pickup created", zap.String("error", err.Error()))
	}
}
