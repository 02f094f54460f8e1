package gallery

import "fmt"

// Slide is one full-size image in the carousel.
type Slide struct {
	Index int
	Src   string
	Alt   string
	Title string
}

// Thumb is a thumbnail that jumps the carousel to Slide.
type Thumb struct {
	Slide int
	Src   string
	Alt   string
}

// Gallery is the carousel plus its thumbnail strip.
type Gallery struct {
	Carousel Carousel
	Slides   []Slide
	Thumbs   []Thumb
}

// PathFunc resolves an image file name to a URL path.
type PathFunc func(name string) (string, error)

// Build creates one slide and one thumbnail per image, in order. label is
// used for alt text ("<label> - Image 1").
func Build(label string, images []string, image, thumb PathFunc) (Gallery, error) {
	g := Gallery{
		Carousel: Carousel{Len: len(images), Loop: true},
		Slides:   make([]Slide, 0, len(images)),
		Thumbs:   make([]Thumb, 0, len(images)),
	}
	for i, name := range images {
		src, err := image(name)
		if err != nil {
			return Gallery{}, fmt.Errorf("gallery: slide %d: %w", i, err)
		}
		tsrc, err := thumb(name)
		if err != nil {
			return Gallery{}, fmt.Errorf("gallery: thumbnail %d: %w", i, err)
		}
		n := i + 1
		g.Slides = append(g.Slides, Slide{
			Index: i,
			Src:   src,
			Alt:   fmt.Sprintf("%s - Image %d", label, n),
			Title: fmt.Sprintf("%s - Image %d", label, n),
		})
		g.Thumbs = append(g.Thumbs, Thumb{
			Slide: g.Carousel.Slide(i),
			Src:   tsrc,
			Alt:   fmt.Sprintf("%s - Thumbnail %d", label, n),
		})
	}
	return g, nil
}

// Empty reports whether there is nothing to show.
func (g Gallery) Empty() bool { return len(g.Slides) == 0 }

// Carousel addresses slides by index.
type Carousel struct {
	Len  int
	Loop bool
}

// Slide normalises i to a valid slide index. Looping carousels wrap in both
// directions; others clamp to the ends. An empty carousel always yields 0.
func (c Carousel) Slide(i int) int {
	if c.Len <= 0 {
		return 0
	}
	if c.Loop {
		i %= c.Len
		if i < 0 {
			i += c.Len
		}
		return i
	}
	if i < 0 {
		return 0
	}
	if i >= c.Len {
		return c.Len - 1
	}
	return i
}
