package icare

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"simrs-service/internal/app/models"
	"simrs-service/internal/pkg/dto/requests"
	"simrs-service/internal/pkg/exceptions"
)

type fakeVClaimGateway struct {
	grant      *models.HistoryAccessGrant
	err        error
	cardNumber string
	doctorCode int
}

func (f *fakeVClaimGateway) ExecuteGrouper(_ context.Context, _ *models.Claim) (*models.GroupingResult, error) {
	return nil, nil
}

func (f *fakeVClaimGateway) FinalizeClaim(_ context.Context, _ *models.Claim) error { return nil }

func (f *fakeVClaimGateway) SubmitClaim(_ context.Context, _ *models.Claim) error { return nil }

func (f *fakeVClaimGateway) ValidateHistoryAccess(_ context.Context, cardNumber string, doctorCode int) (*models.HistoryAccessGrant, error) {
	f.cardNumber = cardNumber
	f.doctorCode = doctorCode
	if f.err != nil {
		return nil, f.err
	}
	return f.grant, nil
}

func TestHistoryAccessUsecaseValidate(t *testing.T) {
	t.Run("returns the grant issued by the gateway", func(t *testing.T) {
		expiresAt := time.Now().Add(5 * time.Minute)
		gateway := &fakeVClaimGateway{grant: &models.HistoryAccessGrant{
			CardNumber:  "0001234567890",
			DoctorCode:  12345,
			URL:         "https://icare.bpjs-kesehatan.go.id/more/?token=eyJhbGciOi",
			AccessToken: "eyJhbGciOi",
			ExpiresAt:   expiresAt,
		}}
		usecase := &historyAccessUsecase{VClaimGateway: gateway, Log: zap.NewNop()}

		result, err := usecase.Validate(context.Background(), &requests.HistoryAccess{
			Param:       "0001234567890",
			KodeDokter:  12345,
			Purpose:     "poli review",
			RequestedBy: "session-1",
			RequestIP:   "10.1.2.3",
		})
		require.NoError(t, err)

		assert.Equal(t, "https://icare.bpjs-kesehatan.go.id/more/?token=eyJhbGciOi", result.URL)
		assert.Equal(t, "eyJhbGciOi", result.Token)
		assert.Equal(t, expiresAt, result.ExpiresAt)
		assert.Equal(t, "0001234567890", gateway.cardNumber)
		assert.Equal(t, 12345, gateway.doctorCode)
	})

	t.Run("propagates gateway failures unchanged", func(t *testing.T) {
		gateway := &fakeVClaimGateway{err: exceptions.ErrBPJSUnauthorized(nil)}
		usecase := &historyAccessUsecase{VClaimGateway: gateway, Log: zap.NewNop()}

		_, err := usecase.Validate(context.Background(), &requests.HistoryAccess{
			Param:      "0001234567890",
			KodeDokter: 12345,
		})
		require.Error(t, err)
		assert.Equal(t, exceptions.KindAuthentication, exceptions.KindOf(err))
	})
}
