package comment

type AddCommentRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}
