package pickup_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	pickupapp "github.com/Anukhusdevlopers/scrap-pickup-backend/application/pickup"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/cmd/config"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/constant"
	pickupmocks "github.com/Anukhusdevlopers/scrap-pickup-backend/mocks/application/pickup"
	repomocks "github.com/Anukhusdevlopers/scrap-pickup-backend/mocks/repository/pickup"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/model"
	pickuprepo "github.com/Anukhusdevlopers/scrap-pickup-backend/repository/pickup"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/thirdparty/rabbitmq"
	cerr "github.com/Anukhusdevlopers/scrap-pickup-backend/utils/errors"
)

// 1 Jan 2025 formats to the 010125 date part.
func pinnedClock() time.Time {
	return time.Date(2025, time.January, 1, 10, 0, 0, 0, time.UTC)
}

func createReq() *model.CreatePickupRequest {
	return &model.CreatePickupRequest{
		Items: []model.ScrapItem{
			{Name: "Newspaper", Price: "12/kg", Weight: 3},
		},
		Name:       "Test User",
		PickUpDate: "2025-01-02",
		PickUpTime: "10:00",
		Location:   "12 Main St",
	}
}

func TestPickupApp_Create(t *testing.T) {
	cfg := &config.Config{}

	t.Run("success: id is date part plus count plus one", func(t *testing.T) {
		repo := repomocks.NewPickupRepository(t)
		publisher := pickupmocks.NewEventPublisher(t)
		app := pickupapp.NewPickupAppWithClock(cfg, repo, publisher, pinnedClock)

		repo.On("Count", mock.Anything).Return(int64(0), nil).Once()
		repo.
			On("Create", mock.Anything, mock.MatchedBy(func(ent *model.PickupRequest) bool {
				return ent.RequestID == "0101251" &&
					ent.OwnerID == uint64(7) &&
					ent.AuthToken == "token-abc"
			})).
			Return(nil).
			Once()
		publisher.
			On("PublishPickupCreated", mock.MatchedBy(func(msg rabbitmq.PickupCreatedMessage) bool {
				return msg.RequestID == "0101251" && msg.UserID == uint64(7)
			})).
			Return(nil).
			Once()

		got, err := app.Create(context.Background(), 7, "token-abc", createReq())
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if got.RequestID != "0101251" {
			t.Fatalf("Create() requestId = %s, want 0101251", got.RequestID)
		}
	})

	t.Run("success: sequential creates on one day get consecutive ids", func(t *testing.T) {
		repo := repomocks.NewPickupRepository(t)
		app := pickupapp.NewPickupAppWithClock(cfg, repo, nil, pinnedClock)

		repo.On("Count", mock.Anything).Return(int64(0), nil).Once()
		repo.On("Create", mock.Anything, mock.AnythingOfType("*model.PickupRequest")).Return(nil).Once()

		first, err := app.Create(context.Background(), 7, "token-abc", createReq())
		if err != nil {
			t.Fatalf("first Create() error = %v", err)
		}

		repo.On("Count", mock.Anything).Return(int64(1), nil).Once()
		repo.On("Create", mock.Anything, mock.AnythingOfType("*model.PickupRequest")).Return(nil).Once()

		second, err := app.Create(context.Background(), 7, "token-abc", createReq())
		if err != nil {
			t.Fatalf("second Create() error = %v", err)
		}

		if first.RequestID != "0101251" || second.RequestID != "0101252" {
			t.Fatalf("request ids = %s, %s, want 0101251, 0101252", first.RequestID, second.RequestID)
		}
	})

	t.Run("success: collision retried with a fresh count", func(t *testing.T) {
		repo := repomocks.NewPickupRepository(t)
		publisher := pickupmocks.NewEventPublisher(t)
		app := pickupapp.NewPickupAppWithClock(cfg, repo, publisher, pinnedClock)

		repo.On("Count", mock.Anything).Return(int64(5), nil).Once()
		repo.
			On("Create", mock.Anything, mock.MatchedBy(func(ent *model.PickupRequest) bool {
				return ent.RequestID == "0101256"
			})).
			Return(pickuprepo.ErrDuplicateRequestID).
			Once()
		repo.On("Count", mock.Anything).Return(int64(6), nil).Once()
		repo.
			On("Create", mock.Anything, mock.MatchedBy(func(ent *model.PickupRequest) bool {
				return ent.RequestID == "0101257"
			})).
			Return(nil).
			Once()
		publisher.
			On("PublishPickupCreated", mock.AnythingOfType("rabbitmq.PickupCreatedMessage")).
			Return(nil).
			Once()

		got, err := app.Create(context.Background(), 7, "token-abc", createReq())
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if got.RequestID != "0101257" {
			t.Fatalf("Create() requestId = %s, want 0101257", got.RequestID)
		}
	})

	t.Run("error: retries exhausted", func(t *testing.T) {
		repo := repomocks.NewPickupRepository(t)
		app := pickupapp.NewPickupAppWithClock(cfg, repo, nil, pinnedClock)

		repo.On("Count", mock.Anything).Return(int64(5), nil).Times(3)
		repo.
			On("Create", mock.Anything, mock.AnythingOfType("*model.PickupRequest")).
			Return(pickuprepo.ErrDuplicateRequestID).
			Times(3)

		_, err := app.Create(context.Background(), 7, "token-abc", createReq())
		var ce cerr.CustomError
		if !errors.As(err, &ce) || ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrInternal] {
			t.Fatalf("Create() error = %v, want ErrInternal", err)
		}
	})

	t.Run("success: nil publisher is skipped", func(t *testing.T) {
		repo := repomocks.NewPickupRepository(t)
		app := pickupapp.NewPickupAppWithClock(cfg, repo, nil, pinnedClock)

		repo.On("Count", mock.Anything).Return(int64(0), nil).Once()
		repo.On("Create", mock.Anything, mock.AnythingOfType("*model.PickupRequest")).Return(nil).Once()

		if _, err := app.Create(context.Background(), 7, "token-abc", createReq()); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	})

	t.Run("success: publish failure does not fail the request", func(t *testing.T) {
		repo := repomocks.NewPickupRepository(t)
		publisher := pickupmocks.NewEventPublisher(t)
		app := pickupapp.NewPickupAppWithClock(cfg, repo, publisher, pinnedClock)

		repo.On("Count", mock.Anything).Return(int64(0), nil).Once()
		repo.On("Create", mock.Anything, mock.AnythingOfType("*model.PickupRequest")).Return(nil).Once()
		publisher.
			On("PublishPickupCreated", mock.AnythingOfType("rabbitmq.PickupCreatedMessage")).
			Return(errors.New("broker down")).
			Once()

		if _, err := app.Create(context.Background(), 7, "token-abc", createReq()); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	})
}

func TestPickupApp_ListByOwner(t *testing.T) {
	cfg := &config.Config{}

	t.Run("success", func(t *testing.T) {
		repo := repomocks.NewPickupRepository(t)
		app := pickupapp.NewPickupAppWithClock(cfg, repo, nil, pinnedClock)

		repo.
			On("ListByToken", mock.Anything, "token-abc", uint64(7)).
			Return([]*model.PickupRequest{{RequestID: "0101251", OwnerID: 7}}, nil).
			Once()

		got, err := app.ListByOwner(context.Background(), "token-abc", 7)
		if err != nil {
			t.Fatalf("ListByOwner() error = %v", err)
		}
		if len(got) != 1 || got[0].RequestID != "0101251" {
			t.Fatalf("ListByOwner() = %+v", got)
		}
	})

	t.Run("error: no requests for this token and owner", func(t *testing.T) {
		repo := repomocks.NewPickupRepository(t)
		app := pickupapp.NewPickupAppWithClock(cfg, repo, nil, pinnedClock)

		repo.
			On("ListByToken", mock.Anything, "other-token", uint64(7)).
			Return([]*model.PickupRequest{}, nil).
			Once()

		_, err := app.ListByOwner(context.Background(), "other-token", 7)
		var ce cerr.CustomError
		if !errors.As(err, &ce) || ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrNotFound] {
			t.Fatalf("ListByOwner() error = %v, want ErrNotFound", err)
		}
	})
}

func TestPickupApp_GetByRequestID(t *testing.T) {
	cfg := &config.Config{}

	t.Run("success", func(t *testing.T) {
		repo := repomocks.NewPickupRepository(t)
		app := pickupapp.NewPickupAppWithClock(cfg, repo, nil, pinnedClock)

		repo.
			On("GetByRequestID", mock.Anything, "0101251").
			Return(&model.PickupRequest{RequestID: "0101251"}, nil).
			Once()

		got, err := app.GetByRequestID(context.Background(), "0101251")
		if err != nil {
			t.Fatalf("GetByRequestID() error = %v", err)
		}
		if got.RequestID != "0101251" {
			t.Fatalf("GetByRequestID() = %+v", got)
		}
	})

	t.Run("error: unknown request id", func(t *testing.T) {
		repo := repomocks.NewPickupRepository(t)
		app := pickupapp.NewPickupAppWithClock(cfg, repo, nil, pinnedClock)

		repo.
			On("GetByRequestID", mock.Anything, "9999999").
			Return(nil, nil).
			Once()

		_, err := app.GetByRequestID(context.Background(), "9999999")
		var ce cerr.CustomError
		if !errors.As(err, &ce) || ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrNotFound] {
			t.Fatalf("GetByRequestID() error = %v, want ErrNotFound", err)
		}
	})
}
