package v1handler_test

import (
	"casino/internal/api/handler/v1handler"
	"casino/internal/auth"
	mockauth "casino/internal/auth/mock"
	"casino/internal/deposit"
	mockdeposit "casino/internal/deposit/mock"
	mockmlm "casino/internal/mlm/mock"
	mockreferral "casino/internal/referral/mock"
	"casino/internal/users"
	mockusers "casino/internal/users/mock"
	"casino/pkg/domain"
	"casino/pkg/logger"
	"casino/pkg/serrors"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const goodToken = "good-token"

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type fixture struct {
	users    *mockusers.MockService
	auth     *mockauth.MockService
	referral *mockreferral.MockService
	deposit  *mockdeposit.MockService
	mlm      *mockmlm.MockService
	router   chi.Router
	userID   domain.UserID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		users:    mockusers.NewMockService(ctrl),
		auth:     mockauth.NewMockService(ctrl),
		referral: mockreferral.NewMockService(ctrl),
		deposit:  mockdeposit.NewMockService(ctrl),
		mlm:      mockmlm.NewMockService(ctrl),
		userID:   domain.UserID(uuid.New()),
	}
	f.auth.EXPECT().Authenticate(gomock.Any(), goodToken).Return(f.userID, nil).AnyTimes()
	f.auth.EXPECT().Authenticate(gomock.Any(), gomock.Not(goodToken)).
		Return(domain.UserID{}, serrors.With(serrors.ErrUnauthorized, "invalid or expired token")).AnyTimes()

	h := v1handler.New(v1handler.Deps{
		Users:    f.users,
		Auth:     f.auth,
		Referral: f.referral,
		Deposit:  f.deposit,
		MLM:      f.mlm,
	})
	sec := v1handler.NewSecHandler(f.auth, f.users)

	r := chi.NewRouter()
	h.MountInline(r, sec)
	h.Mount(r, sec, func(next http.Handler) http.Handler { return next })
	f.router = r

	return f
}

func (f *fixture) asAdmin(admin bool) {
	role := domain.RoleUser
	if admin {
		role = domain.RoleAdmin
	}
	f.users.EXPECT().Get(gomock.Any(), f.userID).Return(&domain.User{ID: f.userID, Role: role}, nil)
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (f *fixture) do(t *testing.T, method, target, token, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func TestRoot(t *testing.T) {
	f := newFixture(t)

	rec, _ := f.do(t, http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain"))
	require.Equal(t, v1handler.Banner, rec.Body.String())
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	rec, _ := f.do(t, http.MethodGet, "/api/health", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"success","message":"API is live"}`, rec.Body.String())
}

func TestFindUsers(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		f.asAdmin(true)
		f.users.EXPECT().List(gomock.Any()).Return([]domain.User{{Username: "alice"}, {Username: "bob"}}, nil)

		rec, env := f.do(t, http.MethodGet, "/api/ufindusers", goodToken, "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "success", env.Status)

		var list []domain.User
		require.NoError(t, json.Unmarshal(env.Data, &list))
		require.Len(t, list, 2)
	})

	t.Run("empty", func(t *testing.T) {
		f := newFixture(t)
		f.asAdmin(true)
		f.users.EXPECT().List(gomock.Any()).Return([]domain.User{}, nil)

		rec, env := f.do(t, http.MethodGet, "/api/ufindusers", goodToken, "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `[]`, string(env.Data))
	})

	t.Run("data layer failure", func(t *testing.T) {
		f := newFixture(t)
		f.asAdmin(true)
		f.users.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection refused"))

		rec, _ := f.do(t, http.MethodGet, "/api/ufindusers", goodToken, "")
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.JSONEq(t, `{"status":"error","message":"Failed to fetch users"}`, rec.Body.String())
	})

	t.Run("unauthenticated", func(t *testing.T) {
		f := newFixture(t)

		rec, env := f.do(t, http.MethodGet, "/api/ufindusers", "", "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "error", env.Status)
	})

	t.Run("non admin", func(t *testing.T) {
		f := newFixture(t)
		f.asAdmin(false)

		rec, env := f.do(t, http.MethodGet, "/api/ufindusers", goodToken, "")
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Equal(t, "admin access required", env.Message)
	})
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	f := newFixture(t)

	rec, env := f.do(t, http.MethodGet, "/api/users/me", "forged", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "invalid or expired token", env.Message)
}

func TestRequireAuth_NotBearer(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUsers_Me(t *testing.T) {
	f := newFixture(t)
	f.users.EXPECT().Get(gomock.Any(), f.userID).
		Return(&domain.User{ID: f.userID, Username: "alice", PasswordHash: "hash"}, nil)

	rec, env := f.do(t, http.MethodGet, "/api/users/me", goodToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotContains(t, string(env.Data), "hash")
	require.Contains(t, string(env.Data), `"username":"alice"`)
}

func TestUsers_UpdateMe(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		f := newFixture(t)
		name := "alice_2"
		f.users.EXPECT().Update(gomock.Any(), f.userID, users.Updates{Username: &name}).
			Return(&domain.User{ID: f.userID, Username: name}, nil)

		rec, _ := f.do(t, http.MethodPatch, "/api/users/me", goodToken, `{"username":"alice_2"}`)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("too short", func(t *testing.T) {
		f := newFixture(t)

		rec, env := f.do(t, http.MethodPatch, "/api/users/me", goodToken, `{"username":"al"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "username must be at least 3", env.Message)
	})

	t.Run("unknown field", func(t *testing.T) {
		f := newFixture(t)

		rec, _ := f.do(t, http.MethodPatch, "/api/users/me", goodToken, `{"role":"admin"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUsers_GetPublicProfile(t *testing.T) {
	f := newFixture(t)
	other := domain.UserID(uuid.New())
	f.users.EXPECT().Get(gomock.Any(), other).
		Return(&domain.User{ID: other, Username: "bob", Email: "bob@example.com", Balance: 100}, nil)

	rec, env := f.do(t, http.MethodGet, "/api/users/"+other.String(), goodToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotContains(t, string(env.Data), "bob@example.com")
	require.NotContains(t, string(env.Data), "balance")

	rec, _ = f.do(t, http.MethodGet, "/api/users/not-a-uuid", goodToken, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuth_Register(t *testing.T) {
	f := newFixture(t)
	f.auth.EXPECT().Register(gomock.Any(), auth.RegisterInput{
		Username:     "alice",
		Email:        "alice@example.com",
		Password:     "correct horse",
		ReferralCode: "ABCD2345",
	}).Return(&auth.Session{Token: "t", User: &domain.User{Username: "alice"}}, nil)

	rec, env := f.do(t, http.MethodPost, "/api/auth/register", "",
		`{"username":"alice","email":"alice@example.com","password":"correct horse","referralCode":"ABCD2345"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, string(env.Data), `"token":"t"`)
}

func TestAuth_Register_Invalid(t *testing.T) {
	f := newFixture(t)

	rec, env := f.do(t, http.MethodPost, "/api/auth/register", "",
		`{"username":"alice","email":"alice@example.com","password":"short"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "password must be at least 8", env.Message)
}

func TestAuth_Login_WrongCredentials(t *testing.T) {
	f := newFixture(t)
	f.auth.EXPECT().Login(gomock.Any(), "alice@example.com", "nope-nope").
		Return(nil, serrors.With(serrors.ErrUnauthorized, "invalid email or password"))

	rec, env := f.do(t, http.MethodPost, "/api/auth/login", "", `{"email":"alice@example.com","password":"nope-nope"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "invalid email or password", env.Message)
}

func TestAuth_RateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	authSvc := mockauth.NewMockService(ctrl)
	h := v1handler.New(v1handler.Deps{Auth: authSvc})

	r := chi.NewRouter()
	blocked := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})
	}
	h.Mount(r, v1handler.NewSecHandler(authSvc, nil), blocked)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{}`)))
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestTree(t *testing.T) {
	t.Run("explicit depth", func(t *testing.T) {
		f := newFixture(t)
		root := domain.UserID(uuid.New())
		f.referral.EXPECT().Tree(gomock.Any(), root, 2).
			Return(&domain.TreeNode{Children: []domain.TreeNode{}}, nil)

		rec, env := f.do(t, http.MethodGet, "/api/tree/"+root.String()+"?depth=2", goodToken, "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, string(env.Data), `"children":[]`)
	})

	t.Run("default depth", func(t *testing.T) {
		f := newFixture(t)
		f.referral.EXPECT().Tree(gomock.Any(), f.userID, 0).Return(&domain.TreeNode{}, nil)

		rec, _ := f.do(t, http.MethodGet, "/api/referral/tree", goodToken, "")
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad depth", func(t *testing.T) {
		f := newFixture(t)

		rec, _ := f.do(t, http.MethodGet, "/api/tree/"+f.userID.String()+"?depth=-1", goodToken, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReferral_Link(t *testing.T) {
	f := newFixture(t)
	f.referral.EXPECT().Link(gomock.Any(), f.userID, "ABCD2345").
		Return(nil, serrors.With(serrors.ErrConflict, "referrer already set"))

	rec, env := f.do(t, http.MethodPost, "/api/referral", goodToken, `{"code":"ABCD2345"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "referrer already set", env.Message)
}

func TestReferral_CodeAndStats(t *testing.T) {
	f := newFixture(t)
	f.referral.EXPECT().Code(gomock.Any(), f.userID).Return("ABCD2345", nil)
	f.referral.EXPECT().Stats(gomock.Any(), f.userID).
		Return(&domain.ReferralStats{DirectReferrals: 2, TotalDownline: 5, TotalEarnings: 70}, nil)

	_, env := f.do(t, http.MethodGet, "/api/referral/code", goodToken, "")
	require.JSONEq(t, `{"code":"ABCD2345"}`, string(env.Data))

	_, env = f.do(t, http.MethodGet, "/api/referral/stats", goodToken, "")
	require.JSONEq(t, `{"directReferrals":2,"totalDownline":5,"totalEarnings":70}`, string(env.Data))
}

func TestDeposit_Create(t *testing.T) {
	f := newFixture(t)
	f.deposit.EXPECT().Create(gomock.Any(), f.userID, deposit.CreateInput{Amount: 500, Currency: "USDT", TxHash: "0xabc"}).
		Return(&domain.Deposit{Amount: 500, Status: domain.DepositStatusPending}, nil)

	rec, env := f.do(t, http.MethodPost, "/api/deposit", goodToken, `{"amount":500,"currency":"USDT","txHash":"0xabc"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, string(env.Data), `"status":"PENDING"`)

	rec, env = f.do(t, http.MethodPost, "/api/deposit", goodToken, `{"amount":0,"currency":"USDT","txHash":"0xabc"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "amount must be greater than 0", env.Message)

	rec, env = f.do(t, http.MethodPost, "/api/deposit", goodToken,
		`{"amount":1000000000000000001,"currency":"USDT","txHash":"0xabc"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "amount must be at most 1000000000000000000", env.Message)
}

func TestDeposit_Get_OtherUser(t *testing.T) {
	f := newFixture(t)
	id := domain.DepositID(uuid.New())
	f.deposit.EXPECT().Get(gomock.Any(), f.userID, id).Return(nil, serrors.With(serrors.ErrNotFound, "deposit not found"))

	rec, _ := f.do(t, http.MethodGet, "/api/deposit/"+id.String(), goodToken, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeposit_Confirm(t *testing.T) {
	t.Run("admin", func(t *testing.T) {
		f := newFixture(t)
		f.asAdmin(true)
		id := domain.DepositID(uuid.New())
		f.deposit.EXPECT().Confirm(gomock.Any(), id).
			Return(&domain.Deposit{ID: id, Status: domain.DepositStatusConfirmed}, nil)

		rec, env := f.do(t, http.MethodPost, "/api/deposit/"+id.String()+"/confirm", goodToken, "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, string(env.Data), `"status":"CONFIRMED"`)
	})

	t.Run("not admin", func(t *testing.T) {
		f := newFixture(t)
		f.asAdmin(false)

		rec, env := f.do(t, http.MethodPost, "/api/deposit/"+uuid.NewString()+"/confirm", goodToken, "")
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Equal(t, "admin access required", env.Message)
	})

	t.Run("already processed", func(t *testing.T) {
		f := newFixture(t)
		f.asAdmin(true)
		id := domain.DepositID(uuid.New())
		f.deposit.EXPECT().Reject(gomock.Any(), id).
			Return(nil, serrors.With(serrors.ErrConflict, "deposit is already CONFIRMED"))

		rec, _ := f.do(t, http.MethodPost, "/api/deposit/"+id.String()+"/reject", goodToken, "")
		require.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestMLM_PlanIsPublic(t *testing.T) {
	f := newFixture(t)
	f.mlm.EXPECT().Plan().Return([]domain.CommissionLevel{{Level: 1, RateBps: 1000}, {Level: 2, RateBps: 500}})

	rec, env := f.do(t, http.MethodGet, "/api/mlm/plan", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[{"level":1,"rateBps":1000},{"level":2,"rateBps":500}]`, string(env.Data))
}

func TestMLM_Earnings(t *testing.T) {
	f := newFixture(t)
	f.mlm.EXPECT().Earnings(gomock.Any(), f.userID).Return(domain.Earnings{Total: 150, Count: 3}, nil)

	_, env := f.do(t, http.MethodGet, "/api/mlm/earnings", goodToken, "")
	require.JSONEq(t, `{"total":150,"count":3}`, string(env.Data))
}

func TestMLM_Distribute(t *testing.T) {
	t.Run("enqueued", func(t *testing.T) {
		f := newFixture(t)
		f.asAdmin(true)
		id := domain.DepositID(uuid.New())
		f.mlm.EXPECT().Enqueue(gomock.Any(), id).Return(true, nil)

		rec, env := f.do(t, http.MethodPost, "/api/mlm/distribute/"+id.String(), goodToken, "")
		require.Equal(t, http.StatusAccepted, rec.Code)
		require.JSONEq(t, `{"enqueued":true}`, string(env.Data))
	})

	t.Run("not confirmed", func(t *testing.T) {
		f := newFixture(t)
		f.asAdmin(true)
		id := domain.DepositID(uuid.New())
		f.mlm.EXPECT().Enqueue(gomock.Any(), id).
			Return(false, serrors.With(serrors.ErrConflict, "deposit is PENDING, not CONFIRMED"))

		rec, _ := f.do(t, http.MethodPost, "/api/mlm/distribute/"+id.String(), goodToken, "")
		require.Equal(t, http.StatusConflict, rec.Code)
	})
}
