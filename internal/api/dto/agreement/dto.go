package agreement

type AgreementRequest struct {
	Accepted bool `json:"accepted"` // Согласие с условиями и подтверждение возраста
}

type AgreementResponse struct {
	SessionID   string `json:"session_id"`
	AccessToken string `json:"access_token"`
}
