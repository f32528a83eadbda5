package company

type CompanyResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Mission     string `json:"mission"`
	LogoURL     string `json:"logo_url"`
}

// UpdateCompanyRequest is partial: nil fields are left untouched.
type UpdateCompanyRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=150"`
	Description *string `json:"description"`
	Mission     *string `json:"mission"`
	LogoURL     *string `json:"logo_url" binding:"omitempty,url"`
}
