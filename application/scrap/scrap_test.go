package scrap_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/mock"

	scrapapp "github.com/Anukhusdevlopers/scrap-pickup-backend/application/scrap"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/constant"
	scrapmocks "github.com/Anukhusdevlopers/scrap-pickup-backend/mocks/repository/scrap"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/model"
	cerr "github.com/Anukhusdevlopers/scrap-pickup-backend/utils/errors"
)

func sampleCategories() []model.ScrapCategory {
	return []model.ScrapCategory{
		{
			CategoryID: 1,
			Name:       "Paper",
			Types: []model.ScrapType{
				{TypeID: 1, Name: "Newspaper", Price: "12/kg", OnlyPrice: 12, Slug: "newspaper"},
			},
		},
	}
}

func TestScrapApp_AddAll(t *testing.T) {
	tests := []struct {
		name       string
		categories []model.ScrapCategory
		mockCall   func(repo *scrapmocks.ScrapRepository)
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name:       "success",
			categories: sampleCategories(),
			mockCall: func(repo *scrapmocks.ScrapRepository) {
				repo.On("InsertAll", mock.Anything, sampleCategories()).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name:       "error: empty payload",
			categories: nil,
			wantErr:    true,
			errCode:    constant.ErrInvalidRequest,
		},
		{
			name:       "error: insert fails",
			categories: sampleCategories(),
			mockCall: func(repo *scrapmocks.ScrapRepository) {
				repo.On("InsertAll", mock.Anything, sampleCategories()).Return(errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := scrapmocks.NewScrapRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}
			app := scrapapp.NewScrapApp(repo)

			err := app.AddAll(context.Background(), tt.categories)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AddAll() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestScrapApp_GetAll(t *testing.T) {
	repo := scrapmocks.NewScrapRepository(t)
	app := scrapapp.NewScrapApp(repo)

	want := sampleCategories()
	repo.On("GetAll", mock.Anything).Return(want, nil).Once()

	got, err := app.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("GetAll() = %+v, want %+v", got, want)
	}
}
