package contracts

import (
	"context"
	"simrs-service/internal/pkg/dto/requests"
	"simrs-service/internal/pkg/dto/responses"
)

type HistoryAccessUsecase interface {
	Validate(ctx context.Context, request *requests.HistoryAccess) (*responses.HistoryAccess, error)
}
