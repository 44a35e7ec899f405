package domain

// Project is a single portfolio entry. The JSON names are the public wire
// format and must not change.
type Project struct {
	ID               string `json:"id" db:"id"`
	Title            string `json:"title" db:"title"`
	ShortDescription string `json:"shortDescription" db:"short_description"`
	FullDescription  string `json:"fullDescription" db:"full_description"`
	ImageURL         string `json:"imageUrl" db:"image_url"`
	Category         string `json:"category" db:"category"`
	Location         string `json:"location" db:"location"`
	Year             int    `json:"year" db:"year"`
}

// ProjectPatch carries a partial update. Nil fields keep their stored value.
type ProjectPatch struct {
	Title            *string
	ShortDescription *string
	FullDescription  *string
	ImageURL         *string
	Category         *string
	Location         *string
	Year             *int
}

// Apply copies every non-nil field of the patch onto p.
func (patch ProjectPatch) Apply(p *Project) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.ShortDescription != nil {
		p.ShortDescription = *patch.ShortDescription
	}
	if patch.FullDescription != nil {
		p.FullDescription = *patch.FullDescription
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.Year != nil {
		p.Year = *patch.Year
	}
}
