package forms

import (
	"fmt"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"autobroker/internal/upload"
	"autobroker/internal/validate"
)

// RatingChoices are the options offered by the rating select ("N звезд").
type RatingChoice struct {
	Value int
	Label string
}

func RatingChoices() []RatingChoice {
	out := make([]RatingChoice, 0, 5)
	for i := 1; i <= 5; i++ {
		out = append(out, RatingChoice{Value: i, Label: fmt.Sprintf("%d звезд", i)})
	}
	return out
}

// ReviewForm is the review intake: rating, text and an optional photo.
type ReviewForm struct {
	RatingRaw  string
	Rating     int
	ReviewText string
	Photo      *multipart.FileHeader

	Errors map[string]string
}

func ParseReviewForm(c *fiber.Ctx) *ReviewForm {
	f := &ReviewForm{
		RatingRaw:  c.FormValue("rating"),
		ReviewText: c.FormValue("review_text"),
		Errors:     map[string]string{},
	}
	if fh, err := c.FormFile("photo"); err == nil {
		f.Photo = fh
	}
	return f
}

func (f *ReviewForm) Valid() bool {
	if f.Errors == nil {
		f.Errors = map[string]string{}
	}
	if v, ok := validate.Rating(f.RatingRaw); ok {
		f.Rating = v
	} else {
		f.Errors["rating"] = "Оценка должна быть от 1 до 5"
	}
	if v, ok := validate.Text(f.ReviewText, 4000); ok {
		f.ReviewText = v
	} else {
		f.Errors["review_text"] = msgRequired
	}
	if f.Photo != nil {
		if err := upload.ValidateImage(f.Photo); err != nil {
			f.Errors["photo"] = "Фото должно быть JPG или PNG не больше 10 МБ"
		}
	}
	return len(f.Errors) == 0
}
