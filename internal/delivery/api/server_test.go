package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"tripbook/config"
	apimiddleware "tripbook/internal/delivery/api/middleware"
	"tripbook/internal/delivery/api/router"
	"tripbook/internal/delivery/api/router/handler"
	"tripbook/internal/domain/entity"
	domainerrors "tripbook/internal/domain/errors"
	"tripbook/internal/domain/service"
	"tripbook/internal/errors"
	mockservice "tripbook/internal/mocks/service"
	mockusecase "tripbook/internal/mocks/usecase"
	"tripbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	e         *echo.Echo
	agencyUC  *mockusecase.MockAgencyUsecase
	packageUC *mockusecase.MockPackageUsecase
	bookingUC *mockusecase.MockBookingUsecase
	adminUC   *mockusecase.MockAdminUsecase
	profileUC *mockusecase.MockProfileUsecase
	paymentUC *mockusecase.MockPaymentUsecase
	mediaUC   *mockusecase.MockMediaUsecase
}

var (
	customer = usecase.Actor{UID: "cust-1", Email: "c@example.com", Role: entity.RoleCustomer}
	agencyA  = usecase.Actor{UID: "agency-1", Email: "a@example.com", Role: entity.RoleAgency}
	admin    = usecase.Actor{UID: "admin-1", Email: "root@example.com", Role: entity.RoleAdmin}
)

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	identity := mockservice.NewMockIdentityProvider(t)
	for token, actor := range map[string]usecase.Actor{"customer-token": customer, "agency-token": agencyA, "admin-token": admin} {
		identity.EXPECT().VerifyIDToken(mock.Anything, token).
			Return(&service.VerifiedToken{UID: actor.UID, Email: actor.Email, Role: actor.Role}, nil).Maybe()
	}
	identity.EXPECT().VerifyIDToken(mock.Anything, "expired").Return(nil, service.ErrInvalidIDToken).Maybe()

	ts := &testServer{
		agencyUC:  mockusecase.NewMockAgencyUsecase(t),
		packageUC: mockusecase.NewMockPackageUsecase(t),
		bookingUC: mockusecase.NewMockBookingUsecase(t),
		adminUC:   mockusecase.NewMockAdminUsecase(t),
		profileUC: mockusecase.NewMockProfileUsecase(t),
		paymentUC: mockusecase.NewMockPaymentUsecase(t),
		mediaUC:   mockusecase.NewMockMediaUsecase(t),
	}

	ts.e = newEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		AgencyHandler:  handler.NewAgencyHandler(handler.AgencyHandlerParams{AgencyUC: ts.agencyUC, Logger: logger}),
		PackageHandler: handler.NewPackageHandler(handler.PackageHandlerParams{PackageUC: ts.packageUC, BookingUC: ts.bookingUC, Logger: logger}),
		BookingHandler: handler.NewBookingHandler(handler.BookingHandlerParams{BookingUC: ts.bookingUC, Logger: logger}),
		AdminHandler:   handler.NewAdminHandler(ts.adminUC),
		ProfileHandler: handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: ts.profileUC, Logger: logger}),
		PaymentHandler: handler.NewPaymentHandler(ts.paymentUC),
		MediaHandler:   handler.NewMediaHandler(ts.mediaUC),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(identity, logger),
	}).RegisterRoutes(ts.e)

	return ts
}

func (ts *testServer) do(method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/nope", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "ROUTE_NOT_FOUND", body["errorCode"])
}

func TestAuthentication(t *testing.T) {
	ts := newTestServer(t)

	t.Run("missing header", func(t *testing.T) {
		rec := ts.do(http.MethodGet, "/api/profile", "", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "MISSING_TOKEN", body["errorCode"])
	})

	t.Run("rejected token", func(t *testing.T) {
		rec := ts.do(http.MethodGet, "/api/profile", "expired", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_TOKEN", decode(t, rec)["errorCode"])
	})

	t.Run("customer cannot read admin stats", func(t *testing.T) {
		rec := ts.do(http.MethodGet, "/api/admin/stats", "customer-token", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("customer cannot list pending agencies", func(t *testing.T) {
		rec := ts.do(http.MethodGet, "/api/agencies/fetch-agencies", "customer-token", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestAdminStats(t *testing.T) {
	ts := newTestServer(t)
	ts.adminUC.EXPECT().GetStats(mock.Anything).Return(&entity.AdminStats{TotalBookings: 7}, nil)

	rec := ts.do(http.MethodGet, "/api/admin/stats", "admin-token", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, http.StatusOK, body["code"])
	assert.NotNil(t, body["data"])
}

func TestUpdateBooking(t *testing.T) {
	t.Run("unknown patch key is rejected", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodPost, "/api/bookings/update", "customer-token",
			`{"bookingId":"b1","updates":{"status":"confirmed"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode(t, rec)["errorCode"])
	})

	t.Run("typed patch reaches the use case", func(t *testing.T) {
		ts := newTestServer(t)
		ts.bookingUC.EXPECT().
			UpdateBooking(mock.Anything, customer, "b1", mock.MatchedBy(func(p *usecase.UpdateBookingInput) bool {
				return p.NumberOfTravelers != nil && *p.NumberOfTravelers == 3
			})).
			Return(&entity.Booking{BookingID: "b1", NumberOfTravelers: 3}, nil)

		rec := ts.do(http.MethodPost, "/api/bookings/update", "customer-token",
			`{"bookingId":"b1","updates":{"numberOfTravelers":3}}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid patch value", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodPost, "/api/bookings/update", "customer-token",
			`{"bookingId":"b1","updates":{"numberOfTravelers":0}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCancelBooking_ErrorEnvelope(t *testing.T) {
	t.Run("domain error keeps its status and code", func(t *testing.T) {
		ts := newTestServer(t)
		ts.bookingUC.EXPECT().CancelBooking(mock.Anything, customer, "missing").Return(nil, domainerrors.ErrBookingNotFound)

		rec := ts.do(http.MethodPost, "/api/bookings/cancel", "customer-token", `{"bookingId":"missing"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, "BOOKING_NOT_FOUND", body["errorCode"])
		assert.Equal(t, false, body["success"])
	})

	t.Run("unexpected errors are not leaked", func(t *testing.T) {
		ts := newTestServer(t)
		ts.bookingUC.EXPECT().CancelBooking(mock.Anything, customer, "b1").
			Return(nil, errors.New("rpc error: deadline exceeded on host 10.0.0.3"))

		rec := ts.do(http.MethodPost, "/api/bookings/cancel", "customer-token", `{"bookingId":"b1"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "10.0.0.3")
		assert.Equal(t, "INTERNAL_ERROR", decode(t, rec)["errorCode"])
	})
}

func TestAgencySignup_Validation(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/agency/signup", "", `{"password":"secret1","name":"Sunny Tours","location":"Goa"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "email is required")
}

func TestAgencyRoutes(t *testing.T) {
	t.Run("public agency lookup", func(t *testing.T) {
		ts := newTestServer(t)
		ts.agencyUC.EXPECT().GetApproved(mock.Anything, "agency-9").Return(&entity.Agency{UID: "agency-9", Approved: true}, nil)

		rec := ts.do(http.MethodGet, "/api/agency/agency-9", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("agency lists its own packages", func(t *testing.T) {
		ts := newTestServer(t)
		ts.packageUC.EXPECT().ListAgencyPackages(mock.Anything, "agency-1").Return([]*entity.PackageWithStats{}, nil)

		rec := ts.do(http.MethodGet, "/api/agency/packages", "agency-token", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("admin must name the agency", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodGet, "/api/agency/packages", "admin-token", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("admin reads another agency", func(t *testing.T) {
		ts := newTestServer(t)
		ts.packageUC.EXPECT().ListAgencyPackages(mock.Anything, "agency-7").Return([]*entity.PackageWithStats{}, nil)

		rec := ts.do(http.MethodGet, "/api/agency/packages?agencyId=agency-7", "admin-token", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("customer cannot create packages", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodPost, "/api/agency/packages", "customer-token", `{"title":"x"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("approval decision", func(t *testing.T) {
		ts := newTestServer(t)
		ts.agencyUC.EXPECT().Decide(mock.Anything, "agency-3", entity.AgencyRejected).
			Return(&usecase.AgencyDecisionResult{AgencyID: "agency-3", Decision: entity.AgencyRejected}, nil)

		rec := ts.do(http.MethodPost, "/api/agencies/approve-agency", "admin-token", `{"agencyId":"agency-3","decision":"rejected"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown decision", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodPost, "/api/agencies/approve-agency", "admin-token", `{"agencyId":"agency-3","decision":"maybe"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBookingTicket(t *testing.T) {
	ts := newTestServer(t)
	png := []byte{0x89, 'P', 'N', 'G'}
	ts.bookingUC.EXPECT().GetTicket(mock.Anything, customer, "b1").Return(png, nil)

	rec := ts.do(http.MethodGet, "/api/bookings/b1/ticket", "customer-token", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestVerifyPayment_Mismatch(t *testing.T) {
	ts := newTestServer(t)
	ts.paymentUC.EXPECT().VerifyPayment(mock.Anything, &usecase.VerifyPaymentInput{OrderID: "o1", PaymentID: "p1", Signature: "bad"}).
		Return(false, nil)

	rec := ts.do(http.MethodPost, "/api/bookings/verify-payment", "customer-token", `{"orderId":"o1","paymentId":"p1","signature":"bad"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "PAYMENT_SIGNATURE_INVALID", decode(t, rec)["errorCode"])
}

func TestUpload(t *testing.T) {
	ts := newTestServer(t)
	ts.mediaUC.EXPECT().
		Upload(mock.Anything, customer, mock.MatchedBy(func(in *usecase.UploadInput) bool {
			return in.Filename == "beach.png" && in.ContentType == "image/png" && in.Size == 4
		})).
		Return(&usecase.UploadOutput{URL: "https://cdn.example.com/uploads/cust-1/x.png", Key: "uploads/cust-1/x.png"}, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="beach.png"`)
	hdr.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer customer-token")
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}
