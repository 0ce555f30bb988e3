package dto

type CreateCommentReq struct {
	BlogID  int64  `json:"blogId" validate:"required,gt=0"`
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

type UpdateCommentReq struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}
