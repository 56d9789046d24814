package transport

import (
	"encoding/json"
	"net/http"

	"github.com/Anukhusdevlopers/scrap-pickup-backend/constant"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/model"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/utils/errors"
	validatorx "github.com/Anukhusdevlopers/scrap-pickup-backend/utils/validator"
)

// AddScrapList handler
// @Summary Add scrap categories
// @Description Bulk-insert scrap category definitions
// @Tags Scrap
// @Accept json
// @Produce json
// @Param request body []model.ScrapCategory true "Scrap categories"
// @Success 201 {object} []model.ScrapCategory
// @Router /scraplist [post]
func (s *RestHandler) AddScrapList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var categories []model.ScrapCategory
	if err := json.NewDecoder(r.Body).Decode(&categories); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	for i := range categories {
		if err := validatorx.ValidateStruct(&categories[i]); err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
	}

	if err := s.ScrapApp.AddAll(ctx, categories); err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, categories)
}

// GetScrapList handler
// @Summary List scrap categories
// @Tags Scrap
// @Produce json
// @Success 200 {object} []model.ScrapCategory
// @Router /scraplist [get]
func (s *RestHandler) GetScrapList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categories, err := s.ScrapApp.GetAll(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, categories)
}
