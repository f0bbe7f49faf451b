package dtos

type AdminCreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type AdminUpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

type CreateJobRequest struct {
	Title    string `json:"title" binding:"required"`
	Company  string `json:"company" binding:"required"`
	Location string `json:"location"`
	Status   string `json:"status" binding:"omitempty,oneof=active closed draft"`
}

type UpdateJobRequest struct {
	Title    *string `json:"title"`
	Company  *string `json:"company"`
	Location *string `json:"location"`
	Status   *string `json:"status" binding:"omitempty,oneof=active closed draft"`
}

type CreateCompanyRequest struct {
	Name     string `json:"name" binding:"required"`
	Industry string `json:"industry"`
	Size     string `json:"size" binding:"omitempty,oneof=startup small medium large"`
	Status   string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type UpdateCompanyRequest struct {
	Name     *string `json:"name"`
	Industry *string `json:"industry"`
	Size     *string `json:"size" binding:"omitempty,oneof=startup small medium large"`
	Status   *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type UpdateApplicationRequest struct {
	Status *string `json:"status" binding:"omitempty,oneof=pending reviewed accepted rejected"`
}
