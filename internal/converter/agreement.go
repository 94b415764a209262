package converter

import (
	dto "snakes_backend/internal/api/dto/agreement"
	"snakes_backend/internal/model"
)

func ToAgreementResponse(data model.AgreementData) dto.AgreementResponse {
	return dto.AgreementResponse{
		SessionID:   data.SessionID,
		AccessToken: data.AccessToken,
	}
}
