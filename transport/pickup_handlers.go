package transport

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/Anukhusdevlopers/scrap-pickup-backend/constant"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/model"
	utilsContext "github.com/Anukhusdevlopers/scrap-pickup-backend/utils/context"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/utils/errors"
	validatorx "github.com/Anukhusdevlopers/scrap-pickup-backend/utils/validator"
)

const maxUploadSize = 10 << 20 // 10 MiB

// CreatePickup handler
// @Summary Create a pickup request
// @Description Multipart submission with a JSON scrapItems field and an optional image
// @Tags Pickup
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.CreatePickupResponse
// @Router /create-request/api [post]
func (s *RestHandler) CreatePickup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrForbidden))
		return
	}
	token, ok := utilsContext.GetAuthToken(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorized))
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var items []model.ScrapItem
	if err := json.Unmarshal([]byte(r.FormValue("scrapItems")), &items); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrMalformedItems))
		return
	}

	req := &model.CreatePickupRequest{
		Items:      items,
		Name:       r.FormValue("name"),
		PickUpDate: r.FormValue("pickUpDate"),
		PickUpTime: r.FormValue("pickUpTime"),
		Location:   r.FormValue("location"),
	}

	var parseErr error
	if req.Latitude, parseErr = parseCoordinate(r.FormValue("latitude")); parseErr != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if req.Longitude, parseErr = parseCoordinate(r.FormValue("longitude")); parseErr != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	imagePath, err := s.saveImage(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}
	req.ImagePath = imagePath

	if err := validatorx.ValidateStruct(req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.PickupApp.Create(ctx, userID, token, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListPickupsByOwner handler
// @Summary List pickup requests owned by the caller
// @Tags Pickup
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} []model.PickupRequest
// @Router /requests/{id} [get]
func (s *RestHandler) ListPickupsByOwner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, ok := utilsContext.GetAuthToken(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorized))
		return
	}

	ownerID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	requests, listErr := s.PickupApp.ListByOwner(ctx, token, ownerID)
	if listErr != nil {
		writeError(w, listErr)
		return
	}

	writeSuccess(w, requests)
}

// GetPickupByRequestID handler
// @Summary Get one pickup request by its request id
// @Tags Pickup
// @Produce json
// @Security BearerAuth
// @Param requestId path string true "Request ID"
// @Success 200 {object} model.PickupRequest
// @Router /request/{requestId} [get]
func (s *RestHandler) GetPickupByRequestID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requestID := mux.Vars(r)["requestId"]
	if requestID == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	request, err := s.PickupApp.GetByRequestID(ctx, requestID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, request)
}

func parseCoordinate(value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// saveImage stores an optional image attachment under the upload dir and
// returns its path, or "" when no file was sent.
func (s *RestHandler) saveImage(r *http.Request) (string, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	name := uuid.NewString() + filepath.Ext(header.Filename)
	path := filepath.Join(s.Config.Server.UploadDir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}
	return path, nil
}
