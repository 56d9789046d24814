package transport_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"

	"github.com/Anukhusdevlopers/scrap-pickup-backend/constant"
	authmocks "github.com/Anukhusdevlopers/scrap-pickup-backend/mocks/application/auth"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/model"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/transport"
	utilsContext "github.com/Anukhusdevlopers/scrap-pickup-backend/utils/context"
)

func authRouter(t *testing.T, authApp *authmocks.AuthApp, probe http.HandlerFunc) *mux.Router {
	t.Helper()
	r := mux.NewRouter()
	r.HandleFunc("/user-profile", probe).Methods(http.MethodGet)
	r.HandleFunc("/scraplist", probe).Methods(http.MethodGet)
	r.Use(transport.AuthMiddleware(authApp))
	return r
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	authApp := authmocks.NewAuthApp(t)
	router := authRouter(t, authApp, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler reached without a token")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/user-profile", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	var body struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Code != constant.ErrorTypeCode[constant.ErrUnauthorized] {
		t.Fatalf("code = %s, want %s", body.Code, constant.ErrorTypeCode[constant.ErrUnauthorized])
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	authApp := authmocks.NewAuthApp(t)
	authApp.
		On("ValidateToken", mock.Anything, "bad-token").
		Return(nil, errors.New("invalid token")).
		Once()

	router := authRouter(t, authApp, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler reached with an invalid token")
	})

	req := httptest.NewRequest(http.MethodGet, "/user-profile", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestAuthMiddleware_ValidTokenReachesHandler(t *testing.T) {
	claims := &model.SessionClaims{UserID: "42", Role: "customer"}

	authApp := authmocks.NewAuthApp(t)
	authApp.
		On("ValidateToken", mock.Anything, "good-token").
		Return(claims, nil).
		Once()

	var reached bool
	router := authRouter(t, authApp, func(w http.ResponseWriter, r *http.Request) {
		reached = true

		gotClaims, ok := utilsContext.GetClaims(r.Context())
		if !ok || gotClaims.UserID != "42" {
			t.Fatalf("claims not in context: %+v", gotClaims)
		}
		gotToken, ok := utilsContext.GetAuthToken(r.Context())
		if !ok || gotToken != "good-token" {
			t.Fatalf("token not in context: %q", gotToken)
		}
		userID, ok := utilsContext.GetUserID(r.Context())
		if !ok || userID != 42 {
			t.Fatalf("user id = %d, want 42", userID)
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/user-profile", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if !reached {
		t.Fatalf("handler never reached")
	}
}

// The legacy authToken header wins over Authorization when both are present.
func TestAuthMiddleware_AuthTokenHeaderPriority(t *testing.T) {
	authApp := authmocks.NewAuthApp(t)
	authApp.
		On("ValidateToken", mock.Anything, "legacy-token").
		Return(&model.SessionClaims{UserID: "1", Role: "customer"}, nil).
		Once()

	router := authRouter(t, authApp, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/user-profile", nil)
	req.Header.Set("authToken", "legacy-token")
	req.Header.Set("Authorization", "Bearer other-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestAuthMiddleware_PublicPathSkipsValidation(t *testing.T) {
	authApp := authmocks.NewAuthApp(t)
	router := authRouter(t, authApp, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/scraplist", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
