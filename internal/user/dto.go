package user

type GoogleLoginDTO struct {
	Code string `json:"code"`
}

type UpdatePersonaDTO struct {
	Persona string `json:"persona"`
}

type googleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}
