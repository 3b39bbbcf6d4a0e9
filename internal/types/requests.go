package types

// LoginRequest carries login credentials. Emptiness is checked in the
// handler so missing fields and blank fields produce the same error.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateRecipeRequest is the body for POST /recipes.
type CreateRecipeRequest struct {
	Name       string `json:"name" binding:"required"`
	Difficulty int    `json:"difficulty" binding:"omitempty,gte=0,lte=5"`
	Vegetarian bool   `json:"vegetarian"`
}

// UpdateRecipeRequest is the body for PATCH /recipes/:id. All fields are
// optional; only those present are merged into the stored record.
type UpdateRecipeRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=1"`
	Difficulty *int    `json:"difficulty" binding:"omitempty,gte=0,lte=5"`
	Vegetarian *bool   `json:"vegetarian"`
}

// Fields returns the column updates requested by the patch body.
func (r *UpdateRecipeRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Difficulty != nil {
		fields["difficulty"] = *r.Difficulty
	}
	if r.Vegetarian != nil {
		fields["vegetarian"] = *r.Vegetarian
	}
	return fields
}
