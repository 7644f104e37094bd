package gallery

type AddPhotoRequest struct {
	Title       string `form:"title"`
	Category    string `form:"category"`
	Description string `form:"description"`
}
